package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/eraser-editor/eraser/internal/editor"
)

// EditorView draws a Buffer and routes editing keys to it
type EditorView struct {
	buffer    *editor.Buffer
	scrollRow int
	scrollCol int // in cells
	focused   bool

	x, y          int
	width, height int
}

func NewEditorView(buffer *editor.Buffer) *EditorView {
	return &EditorView{buffer: buffer, focused: true}
}

func (e *EditorView) SetBounds(x, y, width, height int) {
	e.x, e.y = x, y
	e.width, e.height = width, height
}

func (e *EditorView) SetFocused(focused bool) {
	e.focused = focused
}

// ResetScroll returns to the top left, used after loading a new document
func (e *EditorView) ResetScroll() {
	e.scrollRow, e.scrollCol = 0, 0
}

func (e *EditorView) bodyHeight() int {
	if e.height <= 1 {
		return 0
	}
	return e.height - 1
}

// cursorCell returns the cursor's display column within its line
func (e *EditorView) cursorCell() int {
	row, col := e.buffer.Cursor()
	line := []rune(e.buffer.Line(row))
	return runewidth.StringWidth(string(line[:col]))
}

// ensureCursorVisible scrolls so the cursor is inside the pane
func (e *EditorView) ensureCursorVisible() {
	row, _ := e.buffer.Cursor()
	height := e.bodyHeight()
	if row < e.scrollRow {
		e.scrollRow = row
	}
	if height > 0 && row >= e.scrollRow+height {
		e.scrollRow = row - height + 1
	}

	cell := e.cursorCell()
	width := e.width - 1
	if cell < e.scrollCol {
		e.scrollCol = cell
	}
	if width > 0 && cell >= e.scrollCol+width {
		e.scrollCol = cell - width + 1
	}
}

func (e *EditorView) Draw(s tcell.Screen) {
	if e.width <= 0 || e.height <= 0 {
		return
	}
	e.ensureCursorVisible()

	style := tcell.StyleDefault.Background(ColorBg).Foreground(ColorFg)
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			s.SetContent(e.x+x, e.y+y, ' ', nil, style)
		}
	}

	drawPaneTitle(s, e.x, e.y, e.width, "Markdown Editor", e.focused)

	for i := 0; i < e.bodyHeight(); i++ {
		row := e.scrollRow + i
		if row >= e.buffer.LineCount() {
			s.SetContent(e.x, e.y+1+i, '~', nil, style.Foreground(ColorFgGutter))
			continue
		}
		cell := 0
		for _, r := range e.buffer.Line(row) {
			w := runewidth.RuneWidth(r)
			screenX := cell - e.scrollCol
			cell += w
			if screenX < 0 {
				continue
			}
			if screenX+w > e.width {
				break
			}
			s.SetContent(e.x+screenX, e.y+1+i, r, nil, style)
		}
	}

	if e.focused {
		row, _ := e.buffer.Cursor()
		s.ShowCursor(e.x+e.cursorCell()-e.scrollCol, e.y+1+row-e.scrollRow)
	}
}

// HandleKey applies an editing or movement key to the buffer
func (e *EditorView) HandleKey(ev *tcell.EventKey) bool {
	b := e.buffer
	switch ev.Key() {
	case tcell.KeyLeft:
		b.MoveLeft()
	case tcell.KeyRight:
		b.MoveRight()
	case tcell.KeyUp:
		b.MoveUp(1)
	case tcell.KeyDown:
		b.MoveDown(1)
	case tcell.KeyPgUp:
		b.MoveUp(e.pageSize())
	case tcell.KeyPgDn:
		b.MoveDown(e.pageSize())
	case tcell.KeyHome, tcell.KeyCtrlA:
		b.MoveLineStart()
	case tcell.KeyEnd:
		b.MoveLineEnd()
	case tcell.KeyEnter:
		b.InsertNewline()
	case tcell.KeyTab:
		b.InsertRune('\t')
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		b.Backspace()
	case tcell.KeyDelete:
		b.Delete()
	case tcell.KeyCtrlK:
		b.DeleteToEnd()
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			switch ev.Rune() {
			case 'f':
				b.MoveWordForward()
			case 'b':
				b.MoveWordBackward()
			default:
				return false
			}
			break
		}
		b.InsertRune(ev.Rune())
	default:
		return false
	}
	e.ensureCursorVisible()
	return true
}

func (e *EditorView) pageSize() int {
	if n := e.bodyHeight() - 1; n > 1 {
		return n
	}
	return 1
}
