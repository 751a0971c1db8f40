// Package printer writes a rendered markdown preview to a terminal or
// plain text stream. Each run is printed on its own line(s), the same way
// the preview pane stacks them.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/eraser-editor/eraser/internal/markdown"
)

// DefaultWidth is used when neither the caller nor the terminal provides one
const DefaultWidth = 80

// Options controls how a Printer lays out runs
type Options struct {
	Width int
	// Plain disables all ANSI styling
	Plain bool
}

// Printer is a markdown.Surface that writes each appended block to w.
// The first write error is kept and later writes are skipped.
type Printer struct {
	w        io.Writer
	width    int
	plain    bool
	renderer *lipgloss.Renderer
	err      error
}

// New creates a printer writing to w
func New(w io.Writer, opts Options) *Printer {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	return &Printer{
		w:        w,
		width:    width,
		plain:    opts.Plain,
		renderer: lipgloss.NewRenderer(w),
	}
}

// Err returns the first write error, if any
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) AppendStyledText(text string, style markdown.Style) {
	st := p.styleFor(style)
	for _, line := range markdown.WrapText(text, p.width) {
		if !p.plain {
			line = st.Render(line)
		}
		p.writeLine(line)
	}
}

func (p *Printer) AppendSpace() {
	p.writeLine(" ")
}

func (p *Printer) AppendSeparator() {
	line := strings.Repeat("─", p.width)
	if !p.plain {
		line = p.renderer.NewStyle().Foreground(lipgloss.Color(colorGutter)).Render(line)
	}
	p.writeLine(line)
}

func (p *Printer) writeLine(line string) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintln(p.w, line); err != nil {
		p.err = fmt.Errorf("write preview: %w", err)
	}
}

// TokyoNight palette, matching the interactive preview
const (
	colorFg      = "#c0caf5"
	colorDimmed  = "#565f89"
	colorGutter  = "#3b4261"
	colorBlue    = "#7aa2f7"
	colorCyan    = "#7dcfff"
	colorTeal    = "#73daca"
	colorMagenta = "#bb9af7"
	colorCodeBg  = "#16161e"
)

func (p *Printer) styleFor(style markdown.Style) lipgloss.Style {
	st := p.renderer.NewStyle().
		Bold(style.Bold).
		Italic(style.Italic).
		Foreground(lipgloss.Color(fontSizeColor(style.FontSize)))

	if style.FontSize >= 24 {
		st = st.Underline(true)
	}
	if style.Monospace {
		st = st.Foreground(lipgloss.Color(colorDimmed)).Background(lipgloss.Color(colorCodeBg))
	}
	return st
}

// fontSizeColor stands in for font size, which a terminal cannot change
func fontSizeColor(size float32) string {
	switch {
	case size >= 24:
		return colorMagenta
	case size >= 20:
		return colorBlue
	case size >= 18:
		return colorCyan
	case size >= 16:
		return colorTeal
	case size < markdown.DefaultFontSize:
		return colorDimmed
	default:
		return colorFg
	}
}
