package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/eraser-editor/eraser/internal/markdown"
)

// previewLine is one screen row of the preview
type previewLine struct {
	text  string
	style tcell.Style
}

// previewLayout is a markdown.Surface that stacks every block vertically,
// wrapping runs to width
type previewLayout struct {
	width int
	lines []previewLine
}

func (l *previewLayout) AppendStyledText(text string, style markdown.Style) {
	st := GetTcellStyle(style)
	for _, line := range markdown.WrapText(text, l.width) {
		l.lines = append(l.lines, previewLine{text: line, style: st})
	}
}

func (l *previewLayout) AppendSpace() {
	l.lines = append(l.lines, previewLine{text: " ", style: GetTcellStyle(markdown.PlainStyle())})
}

func (l *previewLayout) AppendSeparator() {
	l.lines = append(l.lines, previewLine{
		text:  strings.Repeat("─", l.width),
		style: tcell.StyleDefault.Background(ColorBg).Foreground(ColorFgGutter),
	})
}

// PreviewView shows the rendered document in a scrollable pane
type PreviewView struct {
	doc          *markdown.Document
	lines        []previewLine
	layoutWidth  int
	scrollOffset int
	focused      bool

	x, y          int
	width, height int
}

func NewPreviewView() *PreviewView {
	return &PreviewView{doc: markdown.NewDocument(), layoutWidth: -1}
}

// SetDocument replaces the rendered document, keeping the scroll position
// where possible
func (p *PreviewView) SetDocument(doc *markdown.Document) {
	p.doc = doc
	p.layoutWidth = -1
}

func (p *PreviewView) Document() *markdown.Document {
	return p.doc
}

func (p *PreviewView) SetBounds(x, y, width, height int) {
	p.x, p.y = x, y
	p.width, p.height = width, height
}

func (p *PreviewView) SetFocused(focused bool) {
	p.focused = focused
}

// contentWidth leaves one column of left padding
func (p *PreviewView) contentWidth() int {
	if p.width <= 2 {
		return 1
	}
	return p.width - 2
}

func (p *PreviewView) layout() {
	width := p.contentWidth()
	if width == p.layoutWidth {
		return
	}
	l := &previewLayout{width: width}
	p.doc.Replay(l)
	p.lines = l.lines
	p.layoutWidth = width
	p.clampScroll()
}

// LineCount returns the number of laid out rows
func (p *PreviewView) LineCount() int {
	p.layout()
	return len(p.lines)
}

func (p *PreviewView) bodyHeight() int {
	if p.height <= 1 {
		return 0
	}
	return p.height - 1
}

func (p *PreviewView) clampScroll() {
	maxOffset := len(p.lines) - p.bodyHeight()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.scrollOffset > maxOffset {
		p.scrollOffset = maxOffset
	}
	if p.scrollOffset < 0 {
		p.scrollOffset = 0
	}
}

// Scroll moves the view by n rows
func (p *PreviewView) Scroll(n int) {
	p.layout()
	p.scrollOffset += n
	p.clampScroll()
}

// ScrollOffset returns the first visible row
func (p *PreviewView) ScrollOffset() int {
	return p.scrollOffset
}

func (p *PreviewView) Draw(s tcell.Screen) {
	if p.width <= 0 || p.height <= 0 {
		return
	}
	p.layout()

	bg := tcell.StyleDefault.Background(ColorBg).Foreground(ColorFg)
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			s.SetContent(p.x+x, p.y+y, ' ', nil, bg)
		}
	}

	drawPaneTitle(s, p.x, p.y, p.width, "Preview", p.focused)

	for i := 0; i < p.bodyHeight() && i+p.scrollOffset < len(p.lines); i++ {
		line := p.lines[i+p.scrollOffset]
		col := p.x + 1
		for _, r := range line.text {
			w := runewidth.RuneWidth(r)
			if col+w > p.x+p.width {
				break
			}
			s.SetContent(col, p.y+1+i, r, nil, line.style)
			col += w
		}
	}
}

// HandleKey scrolls the preview when it has focus
func (p *PreviewView) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		p.Scroll(-1)
	case tcell.KeyDown:
		p.Scroll(1)
	case tcell.KeyPgUp:
		p.Scroll(-p.pageSize())
	case tcell.KeyPgDn:
		p.Scroll(p.pageSize())
	case tcell.KeyHome:
		p.scrollOffset = 0
	case tcell.KeyEnd:
		p.Scroll(len(p.lines))
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'j':
			p.Scroll(1)
		case 'k':
			p.Scroll(-1)
		case 'g':
			p.scrollOffset = 0
		case 'G':
			p.Scroll(len(p.lines))
		default:
			return false
		}
	default:
		return false
	}
	return true
}

func (p *PreviewView) pageSize() int {
	if n := p.bodyHeight() - 1; n > 1 {
		return n
	}
	return 1
}

// drawPaneTitle draws a pane heading on row y
func drawPaneTitle(s tcell.Screen, x, y, width int, title string, focused bool) {
	style := tcell.StyleDefault.Background(ColorBgDark).Foreground(ColorDimmed).Bold(true)
	if focused {
		style = style.Foreground(ColorHeader)
	}
	for i := 0; i < width; i++ {
		s.SetContent(x+i, y, ' ', nil, style)
	}
	drawTextClipped(s, x+1, y, width-1, style, title)
}
