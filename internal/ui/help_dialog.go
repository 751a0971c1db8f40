package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

type HelpDialog struct {
	visible      bool
	scrollOffset int
	visibleLines int // from the last draw
}

func NewHelpDialog() *HelpDialog {
	return &HelpDialog{visibleLines: 15}
}

func (h *HelpDialog) Show() {
	h.visible = true
	h.scrollOffset = 0
}

func (h *HelpDialog) Hide() {
	h.visible = false
}

func (h *HelpDialog) IsVisible() bool {
	return h.visible
}

func (h *HelpDialog) Draw(s tcell.Screen) {
	if !h.visible {
		return
	}

	w, screenHeight := s.Size()
	helpLines := helpContent

	maxLineWidth := 0
	for _, line := range helpLines {
		maxLineWidth = max(maxLineWidth, runewidth.StringWidth(line))
	}

	// 2 for borders, 2 for margins
	dialogWidth := maxLineWidth + 4
	if dialogWidth > w-4 {
		dialogWidth = w - 4
	}
	if dialogWidth < 40 {
		dialogWidth = 40
	}

	dialogHeight := len(helpLines) + 6
	if dialogHeight > screenHeight-4 {
		dialogHeight = screenHeight - 4
	}
	if dialogHeight < 10 {
		dialogHeight = 10
	}

	startX := (w - dialogWidth) / 2
	startY := (screenHeight - dialogHeight) / 2
	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}

	dialogStyle := tcell.StyleDefault.Background(ColorBgDark).Foreground(ColorFg)
	drawBox(s, startX, startY, dialogWidth, dialogHeight, dialogStyle, dialogStyle.Foreground(ColorBlue))

	titleStyle := dialogStyle.Foreground(ColorYellow).Bold(true)
	title := "Help - Keybindings"
	drawText(s, startX+(dialogWidth-runewidth.StringWidth(title))/2, startY+1, titleStyle, title)

	contentStartY := startY + 3
	h.visibleLines = dialogHeight - 5 // borders, title and footer
	if h.visibleLines < 1 {
		h.visibleLines = 1
	}
	h.clampScroll()

	for i := 0; i < h.visibleLines && i+h.scrollOffset < len(helpLines); i++ {
		line := helpLines[i+h.scrollOffset]
		drawTextClipped(s, startX+2, contentStartY+i, dialogWidth-4, dialogStyle, line)
	}

	footerStyle := dialogStyle.Foreground(ColorDimmed)
	footer := "Press Esc or F1 to close"
	if len(helpLines) > h.visibleLines {
		switch {
		case h.scrollOffset > 0 && h.scrollOffset+h.visibleLines < len(helpLines):
			footer = "↑↓ Up/Down to scroll, Esc to close"
		case h.scrollOffset > 0:
			footer = "↑ Up to scroll up, Esc to close"
		default:
			footer = "↓ Down to scroll down, Esc to close"
		}
	}
	footerX := startX + (dialogWidth-runewidth.StringWidth(footer))/2
	if footerX < startX+2 {
		footerX = startX + 2
	}
	drawTextClipped(s, footerX, startY+dialogHeight-2, dialogWidth-4, footerStyle, footer)
}

func (h *HelpDialog) HandleKey(ev *tcell.EventKey) bool {
	if !h.visible {
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyF1:
		h.Hide()
	case tcell.KeyUp:
		h.scrollOffset--
	case tcell.KeyDown:
		h.scrollOffset++
	case tcell.KeyPgUp:
		h.scrollOffset -= h.visibleLines
	case tcell.KeyPgDn:
		h.scrollOffset += h.visibleLines
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'j':
			h.scrollOffset++
		case 'k':
			h.scrollOffset--
		case 'g':
			h.scrollOffset = 0
		case 'G':
			h.scrollOffset = len(helpContent)
		case 'q', '?':
			h.Hide()
		}
	}
	h.clampScroll()

	return true // Consume all other keys when visible
}

func (h *HelpDialog) clampScroll() {
	maxScroll := len(helpContent) - h.visibleLines
	if maxScroll < 0 {
		maxScroll = 0
	}
	if h.scrollOffset > maxScroll {
		h.scrollOffset = maxScroll
	}
	if h.scrollOffset < 0 {
		h.scrollOffset = 0
	}
}

var helpContent = []string{
	"",
	"File:",
	"  Ctrl+N        New document",
	"  Ctrl+O        Open file",
	"  Ctrl+S        Save",
	"  Ctrl+W        Save as",
	"  Ctrl+Q        Quit",
	"",
	"Editing:",
	"  Arrows        Move the cursor",
	"  Home / End    Start / end of line",
	"  PgUp / PgDn   Move by a page",
	"  Alt+F / B     Next / previous word",
	"  Ctrl+K        Delete to end of line",
	"  Tab           Indent with spaces",
	"  Ctrl+E        Edit in external editor",
	"",
	"View:",
	"  F6            Switch focus between editor and preview",
	"  F9            Show / hide preview",
	"  F11           Fullscreen (hide menu and status bars)",
	"  j / k         Scroll preview when focused",
	"",
	"Menus and dialogs:",
	"  F10           Open the menu bar",
	"  Enter         Run menu item / confirm",
	"  Esc           Close menu or dialog",
	"  F1            Show this help",
}
