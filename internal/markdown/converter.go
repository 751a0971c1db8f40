package markdown

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// MarkdownConverter parses markdown with goldmark (CommonMark plus
// strikethrough) and flattens the syntax tree into an event stream
type MarkdownConverter struct {
	md goldmark.Markdown
}

// NewMarkdownConverter creates a converter with the strikethrough extension enabled
func NewMarkdownConverter() *MarkdownConverter {
	return &MarkdownConverter{
		md: goldmark.New(goldmark.WithExtensions(extension.Strikethrough)),
	}
}

// Events parses src and returns its event stream
func (mc *MarkdownConverter) Events(src []byte) ([]Event, error) {
	root := mc.md.Parser().Parse(text.NewReader(src))

	w := &eventWalker{source: src}
	if err := ast.Walk(root, w.walk); err != nil {
		return nil, fmt.Errorf("walk markdown tree: %w", err)
	}
	return w.events, nil
}

// Render parses src and renders it onto s
func (mc *MarkdownConverter) Render(src string, s Surface) error {
	events, err := mc.Events([]byte(src))
	if err != nil {
		return err
	}
	return Render(events, s)
}

// Convert renders src into a new Document. On error the returned document
// is nil so callers keep whatever they displayed before.
func (mc *MarkdownConverter) Convert(src string) (*Document, error) {
	doc := NewDocument()
	if err := mc.Render(src, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

type eventWalker struct {
	source []byte
	events []Event
}

func (w *eventWalker) emit(ev Event) {
	w.events = append(w.events, ev)
}

// container emits Start on entry and End on exit
func (w *eventWalker) container(tag Tag, entering bool) {
	if entering {
		w.emit(Start(tag))
	} else {
		w.emit(End(tag))
	}
}

func (w *eventWalker) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := n.(type) {
	case *ast.Document, *ast.TextBlock:
		// Tight list items hold a TextBlock instead of a paragraph; neither produces events

	case *ast.Paragraph:
		w.container(Paragraph(), entering)

	case *ast.Heading:
		w.container(Heading(n.Level), entering)

	case *ast.Blockquote:
		w.container(Tag{Kind: TagBlockQuote}, entering)

	case *ast.List:
		w.container(Tag{Kind: TagList, Ordered: n.IsOrdered()}, entering)

	case *ast.ListItem:
		w.container(Item(), entering)

	case *ast.CodeBlock:
		w.codeBlock(IndentedCodeBlock(), n.Lines(), entering)

	case *ast.FencedCodeBlock:
		w.codeBlock(FencedCodeBlock(string(n.Language(w.source))), n.Lines(), entering)

	case *ast.ThematicBreak:
		if entering {
			w.emit(Rule())
		}

	case *ast.HTMLBlock:
		if entering {
			w.emit(Event{Kind: EventHTML, Text: w.linesText(n.Lines())})
		}
		return ast.WalkSkipChildren, nil

	case *ast.Emphasis:
		if n.Level >= 2 {
			w.container(Strong(), entering)
		} else {
			w.container(Emphasis(), entering)
		}

	case *east.Strikethrough:
		w.container(Tag{Kind: TagStrikethrough}, entering)

	case *ast.Link:
		w.container(Tag{Kind: TagLink, Destination: string(n.Destination)}, entering)

	case *ast.Image:
		w.container(Tag{Kind: TagImage, Destination: string(n.Destination)}, entering)

	case *ast.AutoLink:
		if entering {
			tag := Tag{Kind: TagLink, Destination: string(n.URL(w.source))}
			w.emit(Start(tag))
			w.emit(Text(string(n.Label(w.source))))
			w.emit(End(tag))
		}

	case *ast.CodeSpan:
		if entering {
			w.emit(Event{Kind: EventCode, Text: w.childText(n)})
		}
		return ast.WalkSkipChildren, nil

	case *ast.RawHTML:
		if entering {
			w.emit(Event{Kind: EventHTML, Text: w.linesText(n.Segments)})
		}
		return ast.WalkSkipChildren, nil

	case *ast.Text:
		if entering {
			w.text(n)
		}

	case *ast.String:
		if entering {
			w.emit(Text(string(n.Value)))
		}

	default:
		w.container(Tag{Kind: TagOther}, entering)
	}
	return ast.WalkContinue, nil
}

func (w *eventWalker) codeBlock(tag Tag, lines *text.Segments, entering bool) {
	if !entering {
		w.emit(End(tag))
		return
	}
	w.emit(Start(tag))
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		w.emit(Text(string(seg.Value(w.source))))
	}
}

func (w *eventWalker) text(n *ast.Text) {
	value := n.Segment.Value(w.source)
	if !n.IsRaw() {
		value = util.UnescapePunctuations(value)
		value = util.ResolveNumericReferences(value)
		value = util.ResolveEntityNames(value)
	}
	if len(value) > 0 {
		w.emit(Text(string(value)))
	}
	switch {
	case n.HardLineBreak():
		w.emit(HardBreak())
	case n.SoftLineBreak():
		w.emit(SoftBreak())
	}
}

func (w *eventWalker) childText(n ast.Node) string {
	var buf []byte
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			buf = append(buf, c.Segment.Value(w.source)...)
		case *ast.String:
			buf = append(buf, c.Value...)
		}
	}
	return string(buf)
}

func (w *eventWalker) linesText(lines *text.Segments) string {
	var buf []byte
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf = append(buf, seg.Value(w.source)...)
	}
	return string(buf)
}

