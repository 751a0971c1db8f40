package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// PromptDialog reads a single line of text, used for file names
type PromptDialog struct {
	visible  bool
	title    string
	input    LineInput
	onSubmit func(string)
}

func NewPromptDialog() *PromptDialog {
	return &PromptDialog{}
}

// Show opens the prompt seeded with initial
func (p *PromptDialog) Show(title, initial string, onSubmit func(string)) {
	p.visible = true
	p.title = title
	p.input.SetText(initial)
	p.onSubmit = onSubmit
}

func (p *PromptDialog) Hide() {
	p.visible = false
	p.onSubmit = nil
	p.input.Clear()
}

func (p *PromptDialog) IsVisible() bool {
	return p.visible
}

// Value returns the current input
func (p *PromptDialog) Value() string {
	return p.input.Text()
}

func (p *PromptDialog) HandleKey(ev *tcell.EventKey) bool {
	if !p.visible {
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		p.Hide()
	case tcell.KeyEnter:
		value, fn := p.input.Text(), p.onSubmit
		p.Hide()
		if value != "" && fn != nil {
			fn(value)
		}
	default:
		p.input.HandleKey(ev)
	}
	return true
}

func (p *PromptDialog) Draw(s tcell.Screen) {
	if !p.visible {
		return
	}

	w, h := s.Size()
	dialogWidth := 60
	if dialogWidth > w-2 {
		dialogWidth = w - 2
	}
	dialogHeight := 6
	startX := (w - dialogWidth) / 2
	startY := (h - dialogHeight) / 2

	style := tcell.StyleDefault.Background(ColorBgHighlight).Foreground(ColorFg)
	drawBox(s, startX, startY, dialogWidth, dialogHeight, style, style.Foreground(ColorBlue))
	drawTextClipped(s, startX+2, startY+1, dialogWidth-4, style.Foreground(ColorYellow).Bold(true), p.title)

	// Input field, scrolled so the cursor stays visible
	fieldWidth := dialogWidth - 4
	fieldStyle := tcell.StyleDefault.Background(ColorBgDark).Foreground(ColorFg)
	for x := 0; x < fieldWidth; x++ {
		s.SetContent(startX+2+x, startY+3, ' ', nil, fieldStyle)
	}
	text := []rune(p.input.Text())
	cursor := p.input.CursorPos()
	offset := 0
	if cursor >= fieldWidth {
		offset = cursor - fieldWidth + 1
	}
	drawTextClipped(s, startX+2, startY+3, fieldWidth, fieldStyle, string(text[offset:]))
	s.ShowCursor(startX+2+runewidth.StringWidth(string(text[offset:cursor])), startY+3)

	drawTextClipped(s, startX+2, startY+4, fieldWidth, style.Foreground(ColorDimmed), "Enter to confirm, Esc to cancel")
}
