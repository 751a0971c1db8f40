package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// ConfirmationDialog asks a yes/no question. Esc cancels without choosing.
type ConfirmationDialog struct {
	visible  bool
	title    string
	message  string
	onYes    func()
	onNo     func()
	onCancel func()
}

func NewConfirmationDialog() *ConfirmationDialog {
	return &ConfirmationDialog{}
}

func (c *ConfirmationDialog) Show(title, message string, onYes, onNo func()) {
	c.visible = true
	c.title = title
	c.message = message
	c.onYes = onYes
	c.onNo = onNo
	c.onCancel = nil
}

// OnCancel sets the callback for Esc on the dialog currently shown
func (c *ConfirmationDialog) OnCancel(fn func()) {
	c.onCancel = fn
}

func (c *ConfirmationDialog) Hide() {
	c.visible = false
	c.title = ""
	c.message = ""
	c.onYes = nil
	c.onNo = nil
	c.onCancel = nil
}

func (c *ConfirmationDialog) IsVisible() bool {
	return c.visible
}

func (c *ConfirmationDialog) Draw(s tcell.Screen) {
	if !c.visible {
		return
	}

	w, screenHeight := s.Size()

	dialogWidth := 50
	if dialogWidth > w {
		dialogWidth = w
	}
	messageLines := wrapText(c.message, dialogWidth-4)
	dialogHeight := len(messageLines) + 6
	if dialogHeight > screenHeight {
		dialogHeight = screenHeight
	}
	startX := (w - dialogWidth) / 2
	startY := (screenHeight - dialogHeight) / 2

	dialogStyle := tcell.StyleDefault.Background(ColorBgHighlight).Foreground(ColorFg)
	drawBox(s, startX, startY, dialogWidth, dialogHeight, dialogStyle, dialogStyle.Foreground(ColorRed))

	titleStyle := dialogStyle.Foreground(ColorYellow).Bold(true)
	titleX := startX + (dialogWidth-runewidth.StringWidth(c.title))/2
	if titleX < startX+2 {
		titleX = startX + 2
	}
	drawTextClipped(s, titleX, startY+1, dialogWidth-4, titleStyle, c.title)

	for i, line := range messageLines {
		if 3+i >= dialogHeight-2 {
			break
		}
		drawTextClipped(s, startX+2, startY+3+i, dialogWidth-4, dialogStyle, line)
	}

	buttonStyle := dialogStyle.Bold(true)
	buttons := "[Y]es   [N]o   [Esc] Cancel"
	buttonsX := startX + (dialogWidth-runewidth.StringWidth(buttons))/2
	if buttonsX < startX+1 {
		buttonsX = startX + 1
	}
	drawTextClipped(s, buttonsX, startY+dialogHeight-2, dialogWidth-2, buttonStyle, buttons)
}

func (c *ConfirmationDialog) HandleKey(ev *tcell.EventKey) bool {
	if !c.visible {
		return false
	}

	// Callbacks may open another dialog, so hide first
	run := func(fn func()) {
		c.Hide()
		if fn != nil {
			fn()
		}
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		run(c.onCancel)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'y', 'Y':
			run(c.onYes)
		case 'n', 'N':
			run(c.onNo)
		}
	}

	return true // Consume all other keys when visible
}

// wrapText wraps text to fit within the specified width
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	return strings.Split(wordwrap.String(text, width), "\n")
}
