package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/eraser-editor/eraser/internal/markdown"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

// screenRow returns row y as text with trailing blanks removed
func screenRow(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func mustConvert(t *testing.T, src string) *markdown.Document {
	t.Helper()
	doc, err := markdown.NewMarkdownConverter().Convert(src)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	return doc
}

func TestPreviewLayout(t *testing.T) {
	l := &previewLayout{width: 10}
	mustConvert(t, "# Title\n\none\ntwo\n\n---\n\nsome longer words here").Replay(l)

	var texts []string
	for _, line := range l.lines {
		texts = append(texts, line.text)
	}
	want := []string{"Title", "one", " ", "two", strings.Repeat("─", 10), "some", "longer", "words here"}
	if strings.Join(texts, "|") != strings.Join(want, "|") {
		t.Errorf("Expected %q, got %q", want, texts)
	}

	if _, _, attr := l.lines[0].style.Decompose(); attr&tcell.AttrBold == 0 {
		t.Error("Expected heading row to be bold")
	}
}

func TestPreviewViewDraw(t *testing.T) {
	s := newTestScreen(t, 30, 6)
	p := NewPreviewView()
	p.SetBounds(0, 0, 30, 6)
	p.SetDocument(mustConvert(t, "# Hello\n\n- item\n"))
	p.Draw(s)

	if got := screenRow(s, 0); got != " Preview" {
		t.Errorf("Expected title row, got %q", got)
	}
	if got := screenRow(s, 1); got != " Hello" {
		t.Errorf("Expected heading row, got %q", got)
	}
	if got := screenRow(s, 2); got != " • item" {
		t.Errorf("Expected bullet row, got %q", got)
	}
}

func TestPreviewViewScroll(t *testing.T) {
	p := NewPreviewView()
	p.SetBounds(0, 0, 20, 4) // three body rows
	p.SetDocument(mustConvert(t, "a\n\nb\n\nc\n\nd\n\ne"))

	if p.LineCount() != 5 {
		t.Fatalf("Expected 5 rows, got %d", p.LineCount())
	}
	p.Scroll(10)
	if p.ScrollOffset() != 2 {
		t.Errorf("Expected scroll clamped to 2, got %d", p.ScrollOffset())
	}
	p.HandleKey(runeKey('k'))
	if p.ScrollOffset() != 1 {
		t.Errorf("Expected scroll 1, got %d", p.ScrollOffset())
	}
	p.HandleKey(runeKey('g'))
	if p.ScrollOffset() != 0 {
		t.Errorf("Expected top, got %d", p.ScrollOffset())
	}

	// A shorter document pulls the offset back in range
	p.Scroll(10)
	p.SetDocument(mustConvert(t, "only"))
	if p.LineCount() != 1 || p.ScrollOffset() != 0 {
		t.Errorf("Expected offset reset for short document, got %d", p.ScrollOffset())
	}
}

func TestGetTcellStyle(t *testing.T) {
	tests := []struct {
		name  string
		style markdown.Style
		fg    tcell.Color
	}{
		{"Plain", markdown.PlainStyle(), ColorFg},
		{"H1", markdown.Style{FontSize: 24, Bold: true}, ColorMagenta},
		{"H2", markdown.Style{FontSize: 20, Bold: true}, ColorBlue},
		{"H3", markdown.Style{FontSize: 18, Bold: true}, ColorCyan},
		{"H4", markdown.Style{FontSize: 16}, ColorGreen1},
		{"H6", markdown.Style{FontSize: 12}, ColorDimmed},
		{"Code", markdown.Style{FontSize: 14, Monospace: true}, ColorComment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fg, _, attr := GetTcellStyle(tt.style).Decompose()
			if fg != tt.fg {
				t.Errorf("Expected foreground %v, got %v", tt.fg, fg)
			}
			if tt.style.Bold != (attr&tcell.AttrBold != 0) {
				t.Errorf("Bold mismatch for %+v", tt.style)
			}
		})
	}
}
