package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TableColumn defines a column in the table
type TableColumn struct {
	Title      string
	Width      int     // 0 means flexible width
	MinWidth   int     // Minimum width for flexible columns
	FlexWeight float64 // Weight for distributing available space
	Align      Alignment
}

// Alignment specifies text alignment within a cell
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// TableRow represents a single row of data
type TableRow interface {
	// GetCell returns the content for a specific column index
	GetCell(columnIndex int) string
	// GetCellStyle returns the style for a specific cell (can return nil for default)
	GetCellStyle(columnIndex int, selected bool) *tcell.Style
	// GetHighlightPositions returns rune positions to highlight in a cell
	GetHighlightPositions(columnIndex int) []int
}

// Table is a scrollable list of rows with a selection
type Table struct {
	columns      []TableColumn
	rows         []TableRow
	selectedIdx  int
	scrollOffset int

	x, y          int
	width, height int
	showHeader    bool

	selectionIndicator string

	headerStyle    tcell.Style
	defaultStyle   tcell.Style
	selectedStyle  tcell.Style
	highlightStyle tcell.Style

	columnWidths []int
}

// NewTable creates a new table widget
func NewTable() *Table {
	return &Table{
		showHeader:         true,
		selectionIndicator: "> ",
		headerStyle:        tcell.StyleDefault.Bold(true).Foreground(ColorHeader).Background(ColorBgDark),
		defaultStyle:       tcell.StyleDefault.Foreground(ColorFg).Background(ColorBgDark),
		selectedStyle:      tcell.StyleDefault.Background(ColorSelection).Foreground(ColorBright),
		highlightStyle:     tcell.StyleDefault.Foreground(ColorHighlight).Background(ColorBgDark).Bold(true),
	}
}

// SetColumns sets the column configuration
func (t *Table) SetColumns(columns []TableColumn) {
	t.columns = columns
	t.calculateColumnWidths()
}

// SetRows sets the data rows and keeps the selection in range
func (t *Table) SetRows(rows []TableRow) {
	t.rows = rows
	t.adjustSelection()
}

// SetBounds places the table on screen
func (t *Table) SetBounds(x, y, width, height int) {
	t.x, t.y = x, y
	t.width, t.height = width, height
	t.calculateColumnWidths()
	t.adjustSelection()
}

// GetSelectedRow returns the currently selected row
func (t *Table) GetSelectedRow() TableRow {
	if t.selectedIdx >= 0 && t.selectedIdx < len(t.rows) {
		return t.rows[t.selectedIdx]
	}
	return nil
}

// SelectNext moves selection to the next row
func (t *Table) SelectNext() bool {
	if t.selectedIdx < len(t.rows)-1 {
		t.selectedIdx++
		t.ensureVisible()
		return true
	}
	return false
}

// SelectPrevious moves selection to the previous row
func (t *Table) SelectPrevious() bool {
	if t.selectedIdx > 0 {
		t.selectedIdx--
		t.ensureVisible()
		return true
	}
	return false
}

// SelectFirst moves selection to the first row
func (t *Table) SelectFirst() {
	t.selectedIdx = 0
	t.scrollOffset = 0
}

// PageDown moves selection down by one page
func (t *Table) PageDown() bool {
	return t.moveBy(t.pageSize())
}

// PageUp moves selection up by one page
func (t *Table) PageUp() bool {
	return t.moveBy(-t.pageSize())
}

func (t *Table) pageSize() int {
	if n := t.getVisibleHeight() - 1; n > 1 {
		return n
	}
	return 1
}

func (t *Table) moveBy(n int) bool {
	if len(t.rows) == 0 {
		return false
	}
	idx := t.selectedIdx + n
	if idx >= len(t.rows) {
		idx = len(t.rows) - 1
	}
	if idx < 0 {
		idx = 0
	}
	if idx == t.selectedIdx {
		return false
	}
	t.selectedIdx = idx
	t.ensureVisible()
	return true
}

// Draw renders the table to the screen
func (t *Table) Draw(s tcell.Screen) {
	if t.width <= 0 || t.height <= 0 {
		return
	}

	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			s.SetContent(t.x+x, t.y+y, ' ', nil, t.defaultStyle)
		}
	}

	currentY := t.y
	if t.showHeader {
		t.drawHeader(s, currentY)
		currentY++
	}

	visibleHeight := t.getVisibleHeight()
	for i := 0; i < visibleHeight && i+t.scrollOffset < len(t.rows); i++ {
		rowIdx := i + t.scrollOffset
		t.drawRow(s, currentY+i, t.rows[rowIdx], rowIdx == t.selectedIdx)
	}
}

// GetScrollInfo returns information about the current scroll position
func (t *Table) GetScrollInfo() (firstVisible, lastVisible, total int) {
	firstVisible = t.scrollOffset + 1
	lastVisible = t.scrollOffset + t.getVisibleHeight()
	if lastVisible > len(t.rows) {
		lastVisible = len(t.rows)
	}
	return firstVisible, lastVisible, len(t.rows)
}

func (t *Table) getVisibleHeight() int {
	height := t.height
	if t.showHeader {
		height--
	}
	if height < 0 {
		height = 0
	}
	return height
}

func (t *Table) ensureVisible() {
	visibleHeight := t.getVisibleHeight()
	if visibleHeight <= 0 {
		return
	}
	if t.selectedIdx < t.scrollOffset {
		t.scrollOffset = t.selectedIdx
	}
	if t.selectedIdx >= t.scrollOffset+visibleHeight {
		t.scrollOffset = t.selectedIdx - visibleHeight + 1
	}
}

func (t *Table) adjustSelection() {
	if len(t.rows) == 0 {
		t.selectedIdx = 0
		t.scrollOffset = 0
		return
	}
	if t.selectedIdx >= len(t.rows) {
		t.selectedIdx = len(t.rows) - 1
	}
	if t.selectedIdx < 0 {
		t.selectedIdx = 0
	}
	t.ensureVisible()
}

func (t *Table) calculateColumnWidths() {
	if len(t.columns) == 0 || t.width <= 0 {
		return
	}

	t.columnWidths = make([]int, len(t.columns))
	indicatorWidth := runewidth.StringWidth(t.selectionIndicator)

	fixedWidth := 0
	totalFlexWeight := 0.0
	for i, col := range t.columns {
		if col.Width > 0 {
			width := col.Width
			if i == 0 {
				width += indicatorWidth
			}
			t.columnWidths[i] = width
			fixedWidth += width
			continue
		}
		if col.FlexWeight > 0 {
			totalFlexWeight += col.FlexWeight
		} else {
			totalFlexWeight += 1.0
		}
	}

	padding := len(t.columns) - 1
	availableWidth := t.width - fixedWidth - padding
	if availableWidth <= 0 || totalFlexWeight == 0 {
		return
	}
	for i, col := range t.columns {
		if col.Width > 0 {
			continue
		}
		weight := col.FlexWeight
		if weight <= 0 {
			weight = 1.0
		}
		width := int(float64(availableWidth) * (weight / totalFlexWeight))
		if col.MinWidth > 0 && width < col.MinWidth {
			width = col.MinWidth
		}
		if i == 0 {
			width += indicatorWidth
		}
		t.columnWidths[i] = width
	}
}

func (t *Table) drawHeader(s tcell.Screen, y int) {
	x := t.x
	for i, col := range t.columns {
		if i > 0 {
			x++
		}
		width := t.columnWidths[i]
		title := col.Title
		if i == 0 {
			title = strings.Repeat(" ", runewidth.StringWidth(t.selectionIndicator)) + title
		}
		t.drawText(s, x, y, width, title, t.headerStyle, nil, col.Align)
		x += width
	}
}

func (t *Table) drawRow(s tcell.Screen, y int, row TableRow, selected bool) {
	if selected {
		for x := 0; x < t.width; x++ {
			s.SetContent(t.x+x, y, ' ', nil, t.selectedStyle)
		}
	}

	x := t.x
	for i, col := range t.columns {
		if i > 0 {
			x++
		}

		content := row.GetCell(i)
		highlights := row.GetHighlightPositions(i)
		if i == 0 && t.selectionIndicator != "" {
			indicator := t.selectionIndicator
			if !selected {
				indicator = strings.Repeat(" ", runewidth.StringWidth(indicator))
			}
			content = indicator + content
			highlights = shiftPositions(highlights, len([]rune(indicator)))
		}

		style := t.defaultStyle
		if selected {
			style = t.selectedStyle
		}
		if cellStyle := row.GetCellStyle(i, selected); cellStyle != nil {
			style = *cellStyle
		}

		t.drawText(s, x, y, t.columnWidths[i], content, style, highlights, col.Align)
		x += t.columnWidths[i]
	}
}

// drawText draws text truncated with an ellipsis to width cells.
// highlights are rune indexes into text.
func (t *Table) drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style, highlights []int, align Alignment) {
	if width <= 0 {
		return
	}

	highlightMap := make(map[int]bool, len(highlights))
	for _, pos := range highlights {
		highlightMap[pos] = true
	}

	highlightStyle := t.highlightStyle
	if _, bg, _ := style.Decompose(); bg == ColorSelection {
		highlightStyle = style.Foreground(ColorBgDark).Background(ColorHighlight).Bold(true)
	}

	display := text
	if runewidth.StringWidth(text) > width {
		display = runewidth.Truncate(text, width, "...")
	}

	startX := x
	if align == AlignRight {
		startX = x + width - runewidth.StringWidth(display)
	}

	col := startX
	for i, r := range []rune(display) {
		charStyle := style
		if highlightMap[i] {
			charStyle = highlightStyle
		}
		s.SetContent(col, y, r, nil, charStyle)
		col += runewidth.RuneWidth(r)
	}
}
