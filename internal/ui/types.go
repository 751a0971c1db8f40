package ui

import (
	"github.com/eraser-editor/eraser/internal/markdown"
	"github.com/gdamore/tcell/v2"
)

// GetTcellStyle converts a resolved markdown style to a tcell Style on the
// preview background
func GetTcellStyle(style markdown.Style) tcell.Style {
	st := tcell.StyleDefault.Background(ColorBg).Foreground(fontSizeColor(style.FontSize))
	if style.Bold {
		st = st.Bold(true)
	}
	if style.Italic {
		st = st.Italic(true)
	}
	if style.FontSize >= 24 {
		st = st.Underline(true)
	}
	if style.Monospace {
		st = st.Foreground(ColorComment).Background(ColorCodeBg)
	}
	return st
}

func fontSizeColor(size float32) tcell.Color {
	for _, fc := range fontSizeColors {
		if size >= fc.minSize {
			return fc.color
		}
	}
	if size < markdown.DefaultFontSize {
		return ColorDimmed
	}
	return ColorFg
}
