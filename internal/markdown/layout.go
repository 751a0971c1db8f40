package markdown

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// WrapText splits the text of a run into display lines no wider than
// width cells. Words are kept whole where possible and hard-broken when
// longer than a line. A single trailing newline, as carried by code block
// lines, is dropped. Width <= 0 disables wrapping.
func WrapText(text string, width int) []string {
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	if width <= 0 {
		return lines
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		// Lines that fit are kept verbatim; wordwrap drops trailing blanks
		if runewidth.StringWidth(line) <= width {
			out = append(out, line)
			continue
		}
		wrapped := wrap.String(wordwrap.String(line, width), width)
		out = append(out, strings.Split(wrapped, "\n")...)
	}
	return out
}
