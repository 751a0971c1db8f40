package markdown

import (
	"testing"
)

func TestStyleTrackerPushPop(t *testing.T) {
	var tr StyleTracker

	if tr.Depth() != 0 || tr.InList() {
		t.Fatal("Expected empty tracker")
	}

	events := []Event{
		Start(Heading(2)),
		Start(Strong()),
		Start(Emphasis()),
		End(Emphasis()),
		End(Strong()),
		End(Heading(2)),
	}
	wantDepth := []int{1, 2, 3, 2, 1, 0}

	for i, ev := range events {
		if !tr.Apply(ev) {
			t.Errorf("Expected %s to be handled", ev)
		}
		if tr.Depth() != wantDepth[i] {
			t.Errorf("After %s: expected depth %d, got %d", ev, wantDepth[i], tr.Depth())
		}
	}
}

func TestStyleTrackerIgnoresOtherTags(t *testing.T) {
	var tr StyleTracker

	ignored := []Event{
		Start(Paragraph()),
		Start(Tag{Kind: TagLink, Destination: "https://example.com"}),
		Start(Tag{Kind: TagBlockQuote}),
		Start(Tag{Kind: TagStrikethrough}),
		End(Tag{Kind: TagStrikethrough}),
		Text("hello"),
		SoftBreak(),
		Rule(),
	}
	for _, ev := range ignored {
		if tr.Apply(ev) {
			t.Errorf("Expected %s to be ignored", ev)
		}
	}
	if tr.Depth() != 0 {
		t.Errorf("Expected depth 0, got %d", tr.Depth())
	}
}

func TestStyleTrackerUnmatchedEnd(t *testing.T) {
	var tr StyleTracker

	// Must not panic
	tr.Apply(End(Strong()))
	tr.Apply(End(Heading(1)))

	if tr.Depth() != 0 {
		t.Errorf("Expected depth 0 after unmatched End, got %d", tr.Depth())
	}

	tr.Apply(Start(Emphasis()))
	if got := tr.Resolve(); !got.Italic || got.Bold {
		t.Errorf("Expected italic only after recovery, got %+v", got)
	}
}

func TestStyleTrackerListFlag(t *testing.T) {
	var tr StyleTracker

	tr.Apply(Start(Item()))
	if !tr.InList() {
		t.Error("Expected list flag after Start(Item)")
	}
	if tr.Depth() != 0 {
		t.Error("Start(Item) must not use the stack")
	}

	// Nested items share the flag; the inner End clears it
	tr.Apply(Start(Item()))
	tr.Apply(End(Item()))
	if tr.InList() {
		t.Error("Expected list flag cleared by inner End(Item)")
	}
}

func TestStyleTrackerCodeBlockVariants(t *testing.T) {
	for _, tag := range []Tag{IndentedCodeBlock(), FencedCodeBlock("go"), FencedCodeBlock("")} {
		var tr StyleTracker
		tr.Apply(Start(tag))
		markers := tr.Markers()
		if len(markers) != 1 || markers[0].Kind != MarkerCodeBlock {
			t.Errorf("%s: expected a single CodeBlock marker, got %v", tag, markers)
		}
		if !tr.Resolve().Monospace {
			t.Errorf("%s: expected monospace", tag)
		}
	}
}

func TestResolveHeadingLevels(t *testing.T) {
	tests := []struct {
		level    int
		fontSize float32
		bold     bool
	}{
		{1, 24, true},
		{2, 20, true},
		{3, 18, true},
		{4, 16, false},
		{5, 14, false},
		{6, 12, false},
	}

	for _, tt := range tests {
		var tr StyleTracker
		tr.Apply(Start(Heading(tt.level)))
		got := tr.Resolve()
		if got.FontSize != tt.fontSize {
			t.Errorf("H%d: expected font size %v, got %v", tt.level, tt.fontSize, got.FontSize)
		}
		if got.Bold != tt.bold {
			t.Errorf("H%d: expected bold=%v, got %v", tt.level, tt.bold, got.Bold)
		}
		if got.Italic || got.Monospace {
			t.Errorf("H%d: unexpected flags %+v", tt.level, got)
		}
	}
}

func TestResolveLastHeadingWins(t *testing.T) {
	var tr StyleTracker
	tr.Apply(Start(Heading(1)))
	tr.Apply(Start(Heading(5)))

	got := tr.Resolve()
	if got.FontSize != 14 {
		t.Errorf("Expected innermost heading size 14, got %v", got.FontSize)
	}
	// H1 already set bold and H5 does not clear it
	if !got.Bold {
		t.Error("Expected bold carried from outer H1")
	}
}

func TestResolveOrderIndependent(t *testing.T) {
	var a, b StyleTracker
	a.Apply(Start(Strong()))
	a.Apply(Start(Emphasis()))
	b.Apply(Start(Emphasis()))
	b.Apply(Start(Strong()))

	if a.Resolve() != b.Resolve() {
		t.Errorf("Expected same style for either nesting, got %+v and %+v", a.Resolve(), b.Resolve())
	}
	if got := a.Resolve(); !got.Bold || !got.Italic {
		t.Errorf("Expected bold and italic, got %+v", got)
	}
}

func TestStyleTrackerReset(t *testing.T) {
	var tr StyleTracker
	tr.Apply(Start(Strong()))
	tr.Apply(Start(Item()))
	tr.Reset()

	if tr.Depth() != 0 || tr.InList() {
		t.Error("Expected reset tracker to be empty")
	}
	if tr.Resolve() != PlainStyle() {
		t.Errorf("Expected plain style, got %+v", tr.Resolve())
	}
}
