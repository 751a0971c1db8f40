package ui

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/eraser-editor/eraser/internal/editor"
	"github.com/eraser-editor/eraser/internal/markdown"
	"github.com/eraser-editor/eraser/internal/models"
)

type App struct {
	screen        tcell.Screen
	quit          chan struct{}
	quitOnce      sync.Once
	configDir     string
	settings      *Settings
	recent        *models.RecentFiles
	buffer        *editor.Buffer
	document      *models.Document
	converter     *markdown.MarkdownConverter
	editorView    *EditorView
	preview       *PreviewView
	menuBar       *MenuBar
	helpDialog    *HelpDialog
	confirmDialog *ConfirmationDialog
	prompt        *PromptDialog
	filePicker    *FilePicker
	focus         Focus
	fullscreen    bool
	showPreview   bool
	renderedRev   int
	statusMessage string
}

// Focus selects the pane that receives editing keys
type Focus int

const (
	FocusEditor Focus = iota
	FocusPreview
)

type View interface {
	Draw(s tcell.Screen)
	HandleKey(ev *tcell.EventKey) bool
}

// DefaultConfigDir returns <user config dir>/eraser
func DefaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("Failed to get config directory: %v", err)
		configDir = "."
	}
	return filepath.Join(configDir, "eraser")
}

// NewApp creates the editor with an empty document. An empty configDir
// selects DefaultConfigDir.
func NewApp(configDir string) *App {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	buffer := editor.NewBuffer()
	app := &App{
		quit:          make(chan struct{}),
		configDir:     configDir,
		buffer:        buffer,
		document:      models.NewDocument(),
		converter:     markdown.NewMarkdownConverter(),
		editorView:    NewEditorView(buffer),
		preview:       NewPreviewView(),
		helpDialog:    NewHelpDialog(),
		confirmDialog: NewConfirmationDialog(),
		prompt:        NewPromptDialog(),
		filePicker:    NewFilePicker(),
		showPreview:   true,
		renderedRev:   -1,
	}

	settings, err := LoadSettings(configDir)
	if err != nil {
		log.Printf("Failed to load settings, using defaults: %v", err)
		settings = DefaultSettings()
	}
	app.settings = settings

	recent, err := models.LoadRecentFiles(configDir)
	if err != nil {
		log.Printf("Failed to load recent files: %v", err)
		recent = &models.RecentFiles{}
	}
	app.recent = recent

	app.menuBar = NewMenuBar(app.menus())
	return app
}

func (a *App) menus() []Menu {
	return []Menu{
		{Title: "File", Items: []MenuItem{
			{Label: "New", Shortcut: "Ctrl+N", Action: a.newDocument},
			{Label: "Open...", Shortcut: "Ctrl+O", Action: a.openFile},
			{Label: "Save", Shortcut: "Ctrl+S", Action: func() { a.save(nil) }},
			{Label: "Save as...", Shortcut: "Ctrl+W", Action: func() { a.saveAs(nil) }},
			{Label: "Exit", Shortcut: "Ctrl+Q", Action: a.requestQuit},
		}},
		{Title: "Edit", Items: []MenuItem{
			{Label: "Open in external editor", Shortcut: "Ctrl+E", Action: a.openExternalEditor},
		}},
		{Title: "View", Items: []MenuItem{
			{Label: "Fullscreen", Shortcut: "F11", Action: a.toggleFullscreen},
			{Label: "Toggle preview", Shortcut: "F9", Action: a.togglePreview},
			{Label: "Switch focus", Shortcut: "F6", Action: a.toggleFocus},
		}},
		{Title: "Help", Items: []MenuItem{
			{Label: "Keybindings", Shortcut: "F1", Action: a.helpDialog.Show},
			{Label: "GitHub", Action: func() { a.openURL(a.settings.GitHubURL) }},
			{Label: "Website", Action: func() { a.openURL(a.settings.WebsiteURL) }},
		}},
	}
}

// Open loads path into the editor. A path that does not exist yet starts
// an empty document bound to it.
func (a *App) Open(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	doc, content, err := models.OpenDocument(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		a.recent.Remove(abs)
		doc, content = &models.Document{Path: abs}, ""
		a.statusMessage = "New file: " + doc.Name()
	case err != nil:
		return err
	default:
		a.statusMessage = "Opened " + doc.Name()
		a.addRecent(abs)
	}

	a.buffer.SetText(content)
	// Tabs and CRLF are normalized on load; that is the saved baseline
	doc.MarkSaved(a.buffer.Text())
	a.document = doc
	a.editorView.ResetScroll()
	return nil
}

func (a *App) Run() error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	a.screen = s

	if err := s.Init(); err != nil {
		return err
	}

	defer func() {
		a.stop()
		s.Fini()

		if r := recover(); r != nil {
			log.Printf("Panic during shutdown: %v", r)
		}
	}()

	s.SetStyle(tcell.StyleDefault.Background(ColorBg).Foreground(ColorFg))
	s.EnablePaste()
	s.Clear()

	// SIGTERM exits without the unsaved changes prompt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		select {
		case sig := <-sigCh:
			log.Printf("Received %v, shutting down...", sig)
			a.stop()
		case <-a.quit:
		}
	}()

	go a.handleEvents()
	a.draw()

	<-a.quit
	signal.Stop(sigCh)

	log.Println("Shutdown complete")
	return nil
}

// stop ends the event loop. Safe to call more than once.
func (a *App) stop() {
	a.quitOnce.Do(func() {
		close(a.quit)
		if a.screen != nil {
			a.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	})
}

func (a *App) handleEvents() {
	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-a.quit:
			return
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				a.screen.Sync()
				a.draw()
			case *tcell.EventKey:
				if a.handleKey(ev) {
					a.draw()
				}
			case *tcell.EventInterrupt:
				return
			}
		}
	}
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	// Modal dialogs take precedence over all other input
	if a.helpDialog.IsVisible() {
		return a.helpDialog.HandleKey(ev)
	}
	if a.confirmDialog.IsVisible() {
		return a.confirmDialog.HandleKey(ev)
	}
	if a.prompt.IsVisible() {
		return a.prompt.HandleKey(ev)
	}
	if a.filePicker.IsVisible() {
		return a.filePicker.HandleKey(ev)
	}
	if a.menuBar.IsOpen() {
		return a.menuBar.HandleKey(ev)
	}

	a.statusMessage = ""

	switch ev.Key() {
	case tcell.KeyCtrlQ:
		a.requestQuit()
	case tcell.KeyCtrlN:
		a.newDocument()
	case tcell.KeyCtrlO:
		a.openFile()
	case tcell.KeyCtrlS:
		a.save(nil)
	case tcell.KeyCtrlW:
		a.saveAs(nil)
	case tcell.KeyCtrlE:
		a.openExternalEditor()
	case tcell.KeyF1:
		a.helpDialog.Show()
	case tcell.KeyF6:
		a.toggleFocus()
	case tcell.KeyF9:
		a.togglePreview()
	case tcell.KeyF10:
		a.menuBar.Open(0)
	case tcell.KeyF11:
		a.toggleFullscreen()
	default:
		return a.focusedView().HandleKey(ev)
	}
	return true
}

func (a *App) focusedView() View {
	if a.focus == FocusPreview && a.showPreview {
		return a.preview
	}
	return a.editorView
}

func (a *App) toggleFocus() {
	if !a.showPreview {
		a.focus = FocusEditor
		return
	}
	if a.focus == FocusEditor {
		a.focus = FocusPreview
	} else {
		a.focus = FocusEditor
	}
}

func (a *App) togglePreview() {
	a.showPreview = !a.showPreview
	if !a.showPreview {
		a.focus = FocusEditor
	}
}

func (a *App) toggleFullscreen() {
	a.fullscreen = !a.fullscreen
}

func (a *App) isModified() bool {
	return a.document.IsModified(a.buffer.Text())
}

// confirmUnsaved runs next, first offering to save unsaved changes.
// Esc on the question abandons next.
func (a *App) confirmUnsaved(next func()) {
	if !a.isModified() {
		next()
		return
	}
	a.confirmDialog.Show(
		"Unsaved changes",
		fmt.Sprintf("Save changes to %s before continuing?", a.document.Name()),
		func() { a.save(next) },
		next,
	)
	a.confirmDialog.OnCancel(func() { a.statusMessage = "Cancelled" })
}

func (a *App) requestQuit() {
	a.confirmUnsaved(a.stop)
}

func (a *App) newDocument() {
	a.confirmUnsaved(func() {
		a.buffer.SetText("")
		a.document = models.NewDocument()
		a.editorView.ResetScroll()
		a.statusMessage = "New document"
	})
}

func (a *App) openFile() {
	a.confirmUnsaved(func() {
		files, err := ListFiles(".", a.settings.FileFilters, a.recent.Paths, MaxPickerFiles)
		if err != nil {
			log.Printf("Failed to list files: %v", err)
			a.statusMessage = err.Error()
		}
		a.filePicker.Show(files, func(path string) {
			if err := a.Open(path); err != nil {
				log.Printf("Failed to open %s: %v", path, err)
				a.statusMessage = err.Error()
			}
		})
	})
}

// save writes to the current path, prompting for one when the document
// has none. then runs only after a successful write.
func (a *App) save(then func()) {
	if !a.document.HasPath() {
		a.saveAs(then)
		return
	}
	if a.saveTo(a.document.Path) && then != nil {
		then()
	}
}

func (a *App) saveAs(then func()) {
	seed := a.settings.DefaultFileName
	if a.document.HasPath() {
		seed = a.document.Path
	}
	a.prompt.Show("Save as", seed, func(name string) {
		path, err := expandPath(models.EnsureExtension(strings.TrimSpace(name)))
		if err != nil {
			a.statusMessage = err.Error()
			return
		}
		write := func() {
			if a.saveTo(path) && then != nil {
				then()
			}
		}
		if _, err := os.Stat(path); err == nil && path != a.document.Path {
			a.confirmDialog.Show("Overwrite", fmt.Sprintf("%s exists. Replace it?", filepath.Base(path)), write, nil)
			return
		}
		write()
	})
}

func (a *App) saveTo(path string) bool {
	if err := a.document.SaveAs(path, a.buffer.Text()); err != nil {
		log.Printf("Failed to save %s: %v", path, err)
		a.statusMessage = err.Error()
		return false
	}
	a.addRecent(path)
	a.statusMessage = "Saved " + a.document.Name()
	return true
}

func (a *App) addRecent(path string) {
	a.recent.Add(path)
	if err := a.recent.Save(); err != nil {
		log.Printf("Failed to save recent files: %v", err)
	}
}

// expandPath resolves ~ and makes path absolute
func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}

// openExternalEditor suspends the screen and edits a copy of the buffer
// with the configured editor, loading the result back
func (a *App) openExternalEditor() {
	tmp, err := os.CreateTemp("", "eraser-*.md")
	if err != nil {
		a.statusMessage = "Failed to create temp file: " + err.Error()
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	_, err = tmp.WriteString(a.buffer.Text())
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		a.statusMessage = "Failed to write temp file: " + err.Error()
		return
	}

	name, args, err := a.settings.EditorCommand(tmpPath)
	if err != nil {
		a.statusMessage = err.Error()
		return
	}
	if _, err := exec.LookPath(name); err != nil {
		a.statusMessage = fmt.Sprintf("Editor '%s' not found", name)
		return
	}

	cmd := exec.Command(name, args...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr

	if a.screen != nil {
		if err := a.screen.Suspend(); err != nil {
			a.statusMessage = "Failed to suspend screen: " + err.Error()
			return
		}
	}
	runErr := cmd.Run()
	if a.screen != nil {
		if err := a.screen.Resume(); err != nil {
			log.Printf("Failed to resume screen: %v", err)
		}
	}
	if runErr != nil {
		log.Printf("Editor %s failed: %v", name, runErr)
		a.statusMessage = "Editor exited with error: " + runErr.Error()
		return
	}

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		a.statusMessage = "Failed to read edited file: " + err.Error()
		return
	}
	if edited := string(data); edited != a.buffer.Text() {
		row, col := a.buffer.Cursor()
		a.buffer.SetText(edited)
		a.buffer.SetCursor(row, col)
		a.statusMessage = "Loaded changes from " + filepath.Base(name)
	}
}

// openURL hands url to the platform opener
func (a *App) openURL(url string) {
	if url == "" {
		return
	}
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open %s: %v", url, err)
		a.statusMessage = "Failed to open browser: " + err.Error()
		return
	}
	go cmd.Wait()
	a.statusMessage = "Opened " + url
}

// refreshPreview re-renders the buffer when it changed. On failure the
// previous preview stays up.
func (a *App) refreshPreview() {
	rev := a.buffer.Revision()
	if rev == a.renderedRev {
		return
	}
	a.renderedRev = rev

	doc, err := a.converter.Convert(a.buffer.Text())
	if err != nil {
		log.Printf("Preview render failed: %v", err)
		a.statusMessage = "Preview: " + err.Error()
		return
	}
	a.preview.SetDocument(doc)
}

// layout assigns pane bounds for a w x h screen
func (a *App) layout(w, h int) {
	top, bottom := 1, h-1
	if a.fullscreen {
		top, bottom = 0, h
	}
	height := bottom - top
	if height < 0 {
		height = 0
	}

	a.editorView.SetFocused(a.focus == FocusEditor)
	a.preview.SetFocused(a.focus == FocusPreview)

	if !a.showPreview {
		a.editorView.SetBounds(0, top, w, height)
		a.preview.SetBounds(0, top, 0, 0)
		return
	}
	previewWidth := w * a.settings.PreviewRatio / 100
	editorWidth := w - previewWidth - 1
	a.editorView.SetBounds(0, top, editorWidth, height)
	a.preview.SetBounds(editorWidth+1, top, previewWidth, height)
}

func (a *App) draw() {
	w, h := a.screen.Size()
	style := tcell.StyleDefault.Background(ColorBg).Foreground(ColorFg)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	a.screen.HideCursor()

	a.refreshPreview()
	a.layout(w, h)

	a.editorView.Draw(a.screen)
	if a.showPreview {
		a.preview.Draw(a.screen)
		dividerX := a.preview.x - 1
		for y := a.preview.y; y < a.preview.y+a.preview.height; y++ {
			a.screen.SetContent(dividerX, y, '│', nil, style.Foreground(ColorFgGutter))
		}
	}

	if !a.fullscreen {
		a.drawStatusBar()
		a.menuBar.SetTitle(a.title())
		a.menuBar.Draw(a.screen)
	}

	if a.menuBar.IsOpen() || a.helpDialog.IsVisible() || a.confirmDialog.IsVisible() {
		a.screen.HideCursor()
	}
	a.filePicker.Draw(a.screen)
	a.prompt.Draw(a.screen)
	a.helpDialog.Draw(a.screen)
	a.confirmDialog.Draw(a.screen)

	a.screen.Show()
}

// title is the document name with a marker for unsaved changes
func (a *App) title() string {
	name := a.document.Name()
	if a.isModified() {
		name += " [+]"
	}
	return name + " - eraser"
}

func (a *App) drawStatusBar() {
	w, h := a.screen.Size()
	style := tcell.StyleDefault.Background(ColorBgHighlight).Foreground(ColorFg)

	for x := 0; x < w; x++ {
		a.screen.SetContent(x, h-1, ' ', nil, style)
	}

	modeStr := " EDIT "
	modeStyle := style.Background(ColorBlue).Foreground(ColorBgDark).Bold(true)
	if a.focus == FocusPreview {
		modeStr = " PREVIEW "
		modeStyle = modeStyle.Background(ColorMagenta)
	}
	drawText(a.screen, 0, h-1, modeStyle, modeStr)
	x := runewidth.StringWidth(modeStr) + 1

	name := a.document.Name()
	nameStyle := style
	if a.isModified() {
		name += " [+]"
		nameStyle = style.Foreground(ColorModified)
	}
	drawText(a.screen, x, h-1, nameStyle, name)
	x += runewidth.StringWidth(name) + 2

	var position string
	if a.focus == FocusPreview {
		position = fmt.Sprintf("Row %d/%d", a.preview.ScrollOffset()+1, max(a.preview.LineCount(), 1))
	} else {
		row, col := a.buffer.Cursor()
		position = fmt.Sprintf("Ln %d, Col %d", row+1, col+1)
	}
	posX := w - runewidth.StringWidth(position) - 1
	drawText(a.screen, posX, h-1, style.Foreground(ColorDimmed), position)

	if a.statusMessage != "" {
		msgStyle := style.Foreground(ColorYellow)
		drawTextClipped(a.screen, x, h-1, posX-x-1, msgStyle, a.statusMessage)
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	pos := 0
	for _, r := range text {
		s.SetContent(x+pos, y, r, nil, style)
		pos += runewidth.RuneWidth(r)
	}
}

// drawTextClipped draws text into at most width cells, ending in "..."
// when cut
func drawTextClipped(s tcell.Screen, x, y, width int, style tcell.Style, text string) {
	if width <= 0 {
		return
	}
	if runewidth.StringWidth(text) > width {
		text = runewidth.Truncate(text, width, "...")
	}
	drawText(s, x, y, style, text)
}

// drawBox fills a rectangle with style and draws a single line border
func drawBox(s tcell.Screen, x, y, width, height int, style, borderStyle tcell.Style) {
	if width < 2 || height < 2 {
		return
	}
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			s.SetContent(col, row, ' ', nil, style)
		}
	}
	for col := x + 1; col < x+width-1; col++ {
		s.SetContent(col, y, '─', nil, borderStyle)
		s.SetContent(col, y+height-1, '─', nil, borderStyle)
	}
	for row := y + 1; row < y+height-1; row++ {
		s.SetContent(x, row, '│', nil, borderStyle)
		s.SetContent(x+width-1, row, '│', nil, borderStyle)
	}
	s.SetContent(x, y, '┌', nil, borderStyle)
	s.SetContent(x+width-1, y, '┐', nil, borderStyle)
	s.SetContent(x, y+height-1, '└', nil, borderStyle)
	s.SetContent(x+width-1, y+height-1, '┘', nil, borderStyle)
}
