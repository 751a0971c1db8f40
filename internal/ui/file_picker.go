package ui

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/eraser-editor/eraser/internal/models"
)

// MaxPickerFiles bounds the directory walk behind the Open dialog
const MaxPickerFiles = 2000

// FileEntry is a candidate in the Open dialog
type FileEntry struct {
	Path    string // absolute
	Display string // relative to the working directory when below it
	Name    string
	ModTime time.Time
	Recent  bool
}

var skippedDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
}

// ListFiles returns the recent files followed by files below root whose
// extension matches filters. Hidden directories are not entered and at
// most limit entries are returned.
func ListFiles(root string, filters, recent []string, limit int) ([]FileEntry, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", root, err)
	}

	seen := make(map[string]bool)
	var files []FileEntry
	add := func(path string, info fs.FileInfo, isRecent bool) {
		if seen[path] {
			return
		}
		seen[path] = true
		display := path
		if rel, err := filepath.Rel(absRoot, path); err == nil && !strings.HasPrefix(rel, "..") {
			display = rel
		}
		files = append(files, FileEntry{
			Path:    path,
			Display: display,
			Name:    filepath.Base(path),
			ModTime: info.ModTime(),
			Recent:  isRecent,
		})
	}

	for _, path := range recent {
		if len(files) >= limit {
			return files, nil
		}
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			add(path, info, true)
		}
	}

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			name := d.Name()
			if path != absRoot && (strings.HasPrefix(name, ".") || skippedDirs[name]) {
				return fs.SkipDir
			}
			return nil
		}
		if !models.HasAllowedExtension(path, filters) {
			return nil
		}
		if len(files) >= limit {
			return fs.SkipAll
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		add(path, info, false)
		return nil
	})
	if err != nil {
		return files, fmt.Errorf("failed to list %s: %w", root, err)
	}
	return files, nil
}

// fileRow adapts a FileEntry to the Table
type fileRow struct {
	entry FileEntry
	match FileMatchResult
}

func (r *fileRow) GetCell(col int) string {
	switch col {
	case 0:
		return r.entry.Display
	case 1:
		if r.entry.Recent {
			return "recent"
		}
		return r.entry.ModTime.Format("2006-01-02 15:04")
	}
	return ""
}

func (r *fileRow) GetCellStyle(col int, selected bool) *tcell.Style {
	if col == 1 && !selected {
		st := tcell.StyleDefault.Background(ColorBgDark).Foreground(ColorDimmed)
		if r.entry.Recent {
			st = st.Foreground(ColorGreen)
		}
		return &st
	}
	return nil
}

// GetHighlightPositions maps name matches onto the end of the display path
func (r *fileRow) GetHighlightPositions(col int) []int {
	if col != 0 || len(r.match.Positions) == 0 {
		return nil
	}
	if r.match.MatchField == "name" {
		offset := len([]rune(r.entry.Display)) - len([]rune(r.entry.Name))
		return shiftPositions(r.match.Positions, offset)
	}
	return r.match.Positions
}

// FilePicker is the Open dialog: a query line over a fuzzy-filtered table
type FilePicker struct {
	visible  bool
	search   *SearchState
	table    *Table
	files    []FileEntry
	filtered []*fileRow
	onSelect func(string)
}

func NewFilePicker() *FilePicker {
	table := NewTable()
	table.SetColumns([]TableColumn{
		{Title: "File", FlexWeight: 1, MinWidth: 20},
		{Title: "Modified", Width: 16, Align: AlignRight},
	})
	return &FilePicker{
		search: NewSearchState(),
		table:  table,
	}
}

// Show opens the picker over files. onSelect receives the chosen path.
func (f *FilePicker) Show(files []FileEntry, onSelect func(string)) {
	f.visible = true
	f.files = files
	f.onSelect = onSelect
	f.search.Clear()
	f.applyFilter()
	f.table.SelectFirst()
}

func (f *FilePicker) Hide() {
	f.visible = false
	f.onSelect = nil
}

func (f *FilePicker) IsVisible() bool {
	return f.visible
}

// Matches returns the displayed paths in order
func (f *FilePicker) Matches() []string {
	out := make([]string, len(f.filtered))
	for i, r := range f.filtered {
		out[i] = r.entry.Path
	}
	return out
}

func (f *FilePicker) applyFilter() {
	f.filtered = f.filtered[:0]
	for _, entry := range f.files {
		if ok, match := f.search.MatchFile(entry.Name, entry.Display); ok {
			f.filtered = append(f.filtered, &fileRow{entry: entry, match: match})
		}
	}

	if f.search.Query() != "" {
		sort.SliceStable(f.filtered, func(i, j int) bool {
			return f.filtered[i].match.Score > f.filtered[j].match.Score
		})
	}

	rows := make([]TableRow, len(f.filtered))
	for i, r := range f.filtered {
		rows[i] = r
	}
	f.table.SetRows(rows)
}

func (f *FilePicker) HandleKey(ev *tcell.EventKey) bool {
	if !f.visible {
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		f.Hide()
	case tcell.KeyEnter:
		row, ok := f.table.GetSelectedRow().(*fileRow)
		fn := f.onSelect
		f.Hide()
		if ok && fn != nil {
			fn(row.entry.Path)
		}
	case tcell.KeyUp, tcell.KeyCtrlP:
		f.table.SelectPrevious()
	case tcell.KeyDown, tcell.KeyCtrlN:
		f.table.SelectNext()
	case tcell.KeyPgUp:
		f.table.PageUp()
	case tcell.KeyPgDn:
		f.table.PageDown()
	default:
		before := f.search.Query()
		f.search.HandleKey(ev)
		if f.search.Query() != before {
			f.applyFilter()
			f.table.SelectFirst()
		}
	}
	return true
}

func (f *FilePicker) Draw(s tcell.Screen) {
	if !f.visible {
		return
	}

	w, h := s.Size()
	dialogWidth := w * 4 / 5
	if dialogWidth < 40 {
		dialogWidth = min(w, 40)
	}
	dialogHeight := h * 7 / 10
	if dialogHeight < 8 {
		dialogHeight = min(h, 8)
	}
	startX := (w - dialogWidth) / 2
	startY := (h - dialogHeight) / 2

	style := tcell.StyleDefault.Background(ColorBgDark).Foreground(ColorFg)
	drawBox(s, startX, startY, dialogWidth, dialogHeight, style, style.Foreground(ColorBlue))
	drawText(s, startX+2, startY, style.Foreground(ColorYellow).Bold(true), " Open file ")

	// Query line
	prompt := "> "
	queryStyle := style.Foreground(ColorCyan)
	drawText(s, startX+2, startY+1, queryStyle, prompt)
	query := f.search.Query()
	drawTextClipped(s, startX+2+len(prompt), startY+1, dialogWidth-6-len(prompt), style, query)
	cursor := []rune(query)[:f.search.CursorPos()]
	s.ShowCursor(startX+2+len(prompt)+runewidth.StringWidth(string(cursor)), startY+1)

	_, _, total := f.table.GetScrollInfo()
	count := fmt.Sprintf("%d/%d", total, len(f.files))
	drawText(s, startX+dialogWidth-2-len(count), startY+1, style.Foreground(ColorDimmed), count)

	f.table.SetBounds(startX+1, startY+2, dialogWidth-2, dialogHeight-3)
	f.table.Draw(s)
}
