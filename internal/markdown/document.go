package markdown

import "strings"

// Document is a Surface that records every appended block. It is what the
// preview pane and the printer lay out.
type Document struct {
	Blocks []Block
}

// NewDocument returns an empty document
func NewDocument() *Document {
	return &Document{}
}

func (d *Document) AppendStyledText(text string, style Style) {
	d.Blocks = append(d.Blocks, Block{Kind: BlockRun, Text: text, Style: style})
}

func (d *Document) AppendSpace() {
	d.Blocks = append(d.Blocks, Block{Kind: BlockSpace})
}

func (d *Document) AppendSeparator() {
	d.Blocks = append(d.Blocks, Block{Kind: BlockSeparator})
}

// Len returns the number of recorded blocks
func (d *Document) Len() int {
	return len(d.Blocks)
}

// Runs returns only the text runs, in order
func (d *Document) Runs() []Block {
	var runs []Block
	for _, b := range d.Blocks {
		if b.Kind == BlockRun {
			runs = append(runs, b)
		}
	}
	return runs
}

// Replay appends every recorded block to another surface
func (d *Document) Replay(s Surface) {
	for _, b := range d.Blocks {
		switch b.Kind {
		case BlockRun:
			s.AppendStyledText(b.Text, b.Style)
		case BlockSpace:
			s.AppendSpace()
		case BlockSeparator:
			s.AppendSeparator()
		}
	}
}

// PlainText concatenates the document without styling. Spaces become a
// single blank and separators a newline.
func (d *Document) PlainText() string {
	var sb strings.Builder
	for _, b := range d.Blocks {
		switch b.Kind {
		case BlockRun:
			sb.WriteString(b.Text)
		case BlockSpace:
			sb.WriteByte(' ')
		case BlockSeparator:
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
