package markdown

import "log"

// StyleTracker holds the nesting of active style markers and the list-item
// flag while an event stream is consumed. The zero value is ready to use.
type StyleTracker struct {
	stack  []StyleMarker
	inList bool
}

// Apply updates the tracker for a Start or End event. It reports whether
// the event was one the tracker handles; all other events are ignored.
func (t *StyleTracker) Apply(ev Event) bool {
	switch ev.Kind {
	case EventStart:
		return t.open(ev.Tag)
	case EventEnd:
		return t.close(ev.Tag)
	default:
		return false
	}
}

func (t *StyleTracker) open(tag Tag) bool {
	switch tag.Kind {
	case TagEmphasis:
		t.push(StyleMarker{Kind: MarkerItalic})
	case TagStrong:
		t.push(StyleMarker{Kind: MarkerBold})
	case TagHeading:
		t.push(StyleMarker{Kind: MarkerHeading, Level: tag.Level})
	case TagCodeBlock:
		// Fenced and indented blocks share one marker
		t.push(StyleMarker{Kind: MarkerCodeBlock})
	case TagItem:
		t.inList = true
	default:
		return false
	}
	return true
}

func (t *StyleTracker) close(tag Tag) bool {
	switch tag.Kind {
	case TagEmphasis, TagStrong, TagHeading, TagCodeBlock:
		if _, ok := t.pop(); !ok {
			log.Printf("markdown: ignoring End(%s) with no open style", tag)
		}
	case TagItem:
		t.inList = false
	default:
		return false
	}
	return true
}

func (t *StyleTracker) push(m StyleMarker) {
	t.stack = append(t.stack, m)
}

// pop removes the innermost marker. It does not check that the marker
// matches the closing tag; well-formed streams always close in order.
func (t *StyleTracker) pop() (StyleMarker, bool) {
	if len(t.stack) == 0 {
		return StyleMarker{}, false
	}
	m := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	return m, true
}

// Depth returns the number of open markers
func (t *StyleTracker) Depth() int {
	return len(t.stack)
}

// Markers returns a copy of the stack, outermost first
func (t *StyleTracker) Markers() []StyleMarker {
	out := make([]StyleMarker, len(t.stack))
	copy(out, t.stack)
	return out
}

// InList reports whether the current position is inside a list item
func (t *StyleTracker) InList() bool {
	return t.inList
}

// Reset returns the tracker to its initial state
func (t *StyleTracker) Reset() {
	t.stack = t.stack[:0]
	t.inList = false
}

// Resolve folds the stack from outermost to innermost marker into a
// single style. When several headings are open the innermost one decides
// the font size.
func (t *StyleTracker) Resolve() Style {
	style := PlainStyle()
	for _, m := range t.stack {
		switch m.Kind {
		case MarkerItalic:
			style.Italic = true
		case MarkerBold:
			style.Bold = true
		case MarkerHeading:
			style.FontSize = HeadingFontSize(m.Level)
			if clampLevel(m.Level) <= 3 {
				style.Bold = true
			}
		case MarkerCodeBlock:
			style.Monospace = true
		}
	}
	return style
}
