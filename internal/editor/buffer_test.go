package editor

import (
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()
	if b.LineCount() != 1 || b.Text() != "" {
		t.Errorf("Expected one empty line, got %d lines %q", b.LineCount(), b.Text())
	}
	if row, col := b.Cursor(); row != 0 || col != 0 {
		t.Errorf("Expected cursor at 0,0, got %d,%d", row, col)
	}
}

func TestSetTextRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		lines    int
	}{
		{"Simple", "# Title\n\nbody", "# Title\n\nbody", 3},
		{"Trailing newline", "a\n", "a\n", 2},
		{"CRLF", "a\r\nb", "a\nb", 2},
		{"Tabs", "\tcode", "    code", 1},
		{"Empty", "", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer()
			b.SetText(tt.input)
			if b.Text() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, b.Text())
			}
			if b.LineCount() != tt.lines {
				t.Errorf("Expected %d lines, got %d", tt.lines, b.LineCount())
			}
		})
	}
}

func TestInsertAndNewline(t *testing.T) {
	b := NewBuffer()
	b.InsertText("hello world")
	b.SetCursor(0, 5)
	b.InsertNewline()

	if b.Text() != "hello\n world" {
		t.Errorf("Expected split line, got %q", b.Text())
	}
	if row, col := b.Cursor(); row != 1 || col != 0 {
		t.Errorf("Expected cursor at 1,0, got %d,%d", row, col)
	}

	b.InsertRune('\t')
	if b.Line(1) != "     world" {
		t.Errorf("Expected tab expanded to spaces, got %q", b.Line(1))
	}
}

func TestInsertNewlineMiddle(t *testing.T) {
	b := NewBuffer()
	b.SetText("a\nb\nc")
	b.SetCursor(1, 1)
	b.InsertNewline()
	b.InsertText("x")

	if b.Text() != "a\nb\nx\nc" {
		t.Errorf("Expected %q, got %q", "a\nb\nx\nc", b.Text())
	}
}

func TestBackspace(t *testing.T) {
	b := NewBuffer()
	b.SetText("ab\ncd")

	b.SetCursor(1, 0)
	if !b.Backspace() {
		t.Fatal("Expected join at column 0")
	}
	if b.Text() != "abcd" {
		t.Errorf("Expected joined line, got %q", b.Text())
	}
	if row, col := b.Cursor(); row != 0 || col != 2 {
		t.Errorf("Expected cursor at 0,2, got %d,%d", row, col)
	}

	b.Backspace()
	if b.Text() != "acd" {
		t.Errorf("Expected %q, got %q", "acd", b.Text())
	}

	b.SetCursor(0, 0)
	if b.Backspace() {
		t.Error("Expected no-op at start of buffer")
	}
}

func TestDelete(t *testing.T) {
	b := NewBuffer()
	b.SetText("ab\ncd")

	b.SetCursor(0, 2)
	b.Delete()
	if b.Text() != "abcd" {
		t.Errorf("Expected join, got %q", b.Text())
	}

	b.SetCursor(0, 0)
	b.Delete()
	if b.Text() != "bcd" {
		t.Errorf("Expected %q, got %q", "bcd", b.Text())
	}

	b.MoveLineEnd()
	if b.Delete() {
		t.Error("Expected no-op at end of buffer")
	}
}

func TestDeleteToEnd(t *testing.T) {
	b := NewBuffer()
	b.SetText("hello world\nnext")
	b.SetCursor(0, 5)
	b.DeleteToEnd()
	if b.Text() != "hello\nnext" {
		t.Errorf("Expected %q, got %q", "hello\nnext", b.Text())
	}
	// At end of line it joins the next one
	b.DeleteToEnd()
	if b.Text() != "hellonext" {
		t.Errorf("Expected %q, got %q", "hellonext", b.Text())
	}
}

func TestCursorMovement(t *testing.T) {
	b := NewBuffer()
	b.SetText("long line\nab\nlonger line")

	b.SetCursor(0, 9)
	b.MoveDown(1)
	if row, col := b.Cursor(); row != 1 || col != 2 {
		t.Errorf("Expected column clamped to 2, got %d,%d", row, col)
	}

	b.MoveRight()
	if row, col := b.Cursor(); row != 2 || col != 0 {
		t.Errorf("Expected wrap to next line, got %d,%d", row, col)
	}

	b.MoveLeft()
	if row, col := b.Cursor(); row != 1 || col != 2 {
		t.Errorf("Expected wrap to previous line end, got %d,%d", row, col)
	}

	b.MoveDown(10)
	if row, _ := b.Cursor(); row != 2 {
		t.Errorf("Expected row clamped to 2, got %d", row)
	}
	b.MoveUp(10)
	if row, _ := b.Cursor(); row != 0 {
		t.Errorf("Expected row clamped to 0, got %d", row)
	}
}

func TestWordMovement(t *testing.T) {
	b := NewBuffer()
	b.SetText("one two  three")

	b.MoveWordForward()
	if _, col := b.Cursor(); col != 4 {
		t.Errorf("Expected col 4, got %d", col)
	}
	b.MoveWordForward()
	if _, col := b.Cursor(); col != 9 {
		t.Errorf("Expected col 9, got %d", col)
	}
	b.MoveWordBackward()
	if _, col := b.Cursor(); col != 4 {
		t.Errorf("Expected col 4, got %d", col)
	}
}

func TestRevision(t *testing.T) {
	b := NewBuffer()
	start := b.Revision()

	b.MoveRight()
	if b.Revision() != start {
		t.Error("Cursor movement must not change revision")
	}

	b.InsertRune('x')
	if b.Revision() == start {
		t.Error("Expected revision to change after insert")
	}
}
