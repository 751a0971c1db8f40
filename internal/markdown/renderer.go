package markdown

import "fmt"

// Bullet is prefixed to every text run inside a list item
const Bullet = "• "

// Surface receives the output of a render pass in event order
type Surface interface {
	AppendStyledText(text string, style Style)
	AppendSpace()
	AppendSeparator()
}

// Render consumes events in order and appends runs and directives to s.
// Each call starts from an empty style stack. A panic during the pass is
// recovered and returned as an error; s may then hold partial output.
func Render(events []Event, s Surface) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render markdown: %v", r)
		}
	}()

	var t StyleTracker
	for _, ev := range events {
		renderEvent(&t, ev, s)
	}
	return nil
}

func renderEvent(t *StyleTracker, ev Event, s Surface) {
	switch ev.Kind {
	case EventStart, EventEnd:
		t.Apply(ev)
	case EventText:
		style := t.Resolve()
		text := ev.Text
		if t.InList() {
			text = Bullet + text
		}
		s.AppendStyledText(text, style)
	case EventSoftBreak, EventHardBreak:
		s.AppendSpace()
	case EventRule:
		s.AppendSeparator()
	default:
		// Code spans, HTML and task markers are not rendered
	}
}
