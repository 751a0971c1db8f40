package markdown

import "fmt"

// EventKind is the kind of a markdown structural event
type EventKind int

const (
	EventStart EventKind = iota
	EventEnd
	EventText
	EventCode // Inline code span; never rendered
	EventHTML // Raw inline or block HTML; never rendered
	EventSoftBreak
	EventHardBreak
	EventRule
	EventTaskMarker
)

var eventKindNames = [...]string{
	EventStart:      "Start",
	EventEnd:        "End",
	EventText:       "Text",
	EventCode:       "Code",
	EventHTML:       "Html",
	EventSoftBreak:  "SoftBreak",
	EventHardBreak:  "HardBreak",
	EventRule:       "Rule",
	EventTaskMarker: "TaskMarker",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// TagKind identifies the container opened or closed by a Start/End event
type TagKind int

const (
	TagOther TagKind = iota
	TagParagraph
	TagHeading
	TagBlockQuote
	TagCodeBlock
	TagList
	TagItem
	TagEmphasis
	TagStrong
	TagStrikethrough
	TagLink
	TagImage
)

var tagKindNames = [...]string{
	TagOther:         "Other",
	TagParagraph:     "Paragraph",
	TagHeading:       "Heading",
	TagBlockQuote:    "BlockQuote",
	TagCodeBlock:     "CodeBlock",
	TagList:          "List",
	TagItem:          "Item",
	TagEmphasis:      "Emphasis",
	TagStrong:        "Strong",
	TagStrikethrough: "Strikethrough",
	TagLink:          "Link",
	TagImage:         "Image",
}

func (k TagKind) String() string {
	if k >= 0 && int(k) < len(tagKindNames) {
		return tagKindNames[k]
	}
	return fmt.Sprintf("TagKind(%d)", int(k))
}

// Tag describes a container. Level is set for headings, Fenced and Info
// for code blocks, Ordered for lists, Destination for links and images.
type Tag struct {
	Kind        TagKind
	Level       int
	Fenced      bool
	Info        string
	Ordered     bool
	Destination string
}

func (t Tag) String() string {
	switch t.Kind {
	case TagHeading:
		return fmt.Sprintf("Heading(%d)", t.Level)
	case TagCodeBlock:
		if t.Fenced {
			return fmt.Sprintf("CodeBlock(Fenced %q)", t.Info)
		}
		return "CodeBlock(Indented)"
	default:
		return t.Kind.String()
	}
}

// Event is one notification in a flattened markdown event stream
type Event struct {
	Kind EventKind
	Tag  Tag    // Set for EventStart and EventEnd
	Text string // Set for EventText, EventCode and EventHTML
}

func (e Event) String() string {
	switch e.Kind {
	case EventStart, EventEnd:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Tag)
	case EventText, EventCode, EventHTML:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Text)
	default:
		return e.Kind.String()
	}
}

// Event and tag constructors, mainly for building streams by hand.

func Start(tag Tag) Event { return Event{Kind: EventStart, Tag: tag} }
func End(tag Tag) Event { return Event{Kind: EventEnd, Tag: tag} }
func Text(s string) Event { return Event{Kind: EventText, Text: s} }
func SoftBreak() Event { return Event{Kind: EventSoftBreak} }
func HardBreak() Event { return Event{Kind: EventHardBreak} }
func Rule() Event { return Event{Kind: EventRule} }

func Emphasis() Tag { return Tag{Kind: TagEmphasis} }
func Strong() Tag { return Tag{Kind: TagStrong} }
func Heading(level int) Tag { return Tag{Kind: TagHeading, Level: level} }
func Item() Tag { return Tag{Kind: TagItem} }
func Paragraph() Tag { return Tag{Kind: TagParagraph} }
func IndentedCodeBlock() Tag { return Tag{Kind: TagCodeBlock} }
func FencedCodeBlock(info string) Tag {
	return Tag{Kind: TagCodeBlock, Fenced: true, Info: info}
}
