package markdown

import "fmt"

// MarkerKind identifies one of the style scopes the tracker can hold
type MarkerKind int

const (
	MarkerItalic MarkerKind = iota
	MarkerBold
	MarkerHeading
	MarkerCodeBlock
)

func (k MarkerKind) String() string {
	switch k {
	case MarkerItalic:
		return "Italic"
	case MarkerBold:
		return "Bold"
	case MarkerHeading:
		return "Heading"
	case MarkerCodeBlock:
		return "CodeBlock"
	default:
		return fmt.Sprintf("MarkerKind(%d)", int(k))
	}
}

// StyleMarker is one active nested style scope. Level is only meaningful
// for MarkerHeading.
type StyleMarker struct {
	Kind  MarkerKind
	Level int
}

func (m StyleMarker) String() string {
	if m.Kind == MarkerHeading {
		return fmt.Sprintf("Heading(%d)", m.Level)
	}
	return m.Kind.String()
}

// DefaultFontSize is the body text size used when no heading is active
const DefaultFontSize float32 = 14

// headingSizes is indexed by heading level - 1
var headingSizes = [6]float32{24, 20, 18, 16, 14, 12}

// HeadingFontSize returns the font size for a heading level. Levels outside
// 1..6 are clamped.
func HeadingFontSize(level int) float32 {
	return headingSizes[clampLevel(level)-1]
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}

// Style is the flattened style of a single run
type Style struct {
	Italic    bool
	Bold      bool
	FontSize  float32
	Monospace bool
}

// PlainStyle returns the style of text outside any marker
func PlainStyle() Style {
	return Style{FontSize: DefaultFontSize}
}

// BlockKind distinguishes styled runs from layout directives
type BlockKind int

const (
	BlockRun BlockKind = iota
	BlockSpace
	BlockSeparator
)

func (k BlockKind) String() string {
	switch k {
	case BlockRun:
		return "Run"
	case BlockSpace:
		return "Space"
	case BlockSeparator:
		return "Separator"
	default:
		return fmt.Sprintf("BlockKind(%d)", int(k))
	}
}

// Block is one unit appended to a surface: a run of text or a directive
type Block struct {
	Kind  BlockKind
	Text  string // Only set for BlockRun
	Style Style  // Only set for BlockRun
}
