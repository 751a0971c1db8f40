// Package editor holds the text being edited as lines of runes with a
// single cursor.
package editor

import (
	"strings"
	"unicode"
)

// TabWidth is the number of spaces a tab expands to
const TabWidth = 4

// A Buffer is the editable markdown source
type Buffer struct {
	lines    [][]rune
	row, col int
	revision int
}

// NewBuffer returns a buffer holding a single empty line
func NewBuffer() *Buffer {
	return &Buffer{lines: [][]rune{{}}}
}

// SetText replaces the whole content and moves the cursor to the start.
// Tabs are expanded to spaces and carriage returns dropped.
func (b *Buffer) SetText(text string) {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", TabWidth))
	parts := strings.Split(text, "\n")
	b.lines = make([][]rune, len(parts))
	for i, p := range parts {
		b.lines[i] = []rune(p)
	}
	b.row, b.col = 0, 0
	b.revision++
}

// Text returns the content joined with newlines
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Revision increases with every change to the content
func (b *Buffer) Revision() int {
	return b.revision
}

func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns line i, or "" when out of range
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return string(b.lines[i])
}

// Cursor returns the cursor position as row and rune column
func (b *Buffer) Cursor() (row, col int) {
	return b.row, b.col
}

// SetCursor moves the cursor, clamping to the content
func (b *Buffer) SetCursor(row, col int) {
	if row < 0 {
		row = 0
	}
	if row >= len(b.lines) {
		row = len(b.lines) - 1
	}
	b.row = row
	b.col = col
	b.clampCol()
}

func (b *Buffer) clampCol() {
	if b.col < 0 {
		b.col = 0
	}
	if n := len(b.lines[b.row]); b.col > n {
		b.col = n
	}
}

// InsertRune inserts r at the cursor. A tab inserts spaces.
func (b *Buffer) InsertRune(r rune) {
	if r == '\t' {
		for i := 0; i < TabWidth; i++ {
			b.InsertRune(' ')
		}
		return
	}
	line := b.lines[b.row]
	next := make([]rune, 0, len(line)+1)
	next = append(next, line[:b.col]...)
	next = append(next, r)
	next = append(next, line[b.col:]...)
	b.lines[b.row] = next
	b.col++
	b.revision++
}

// InsertText inserts text at the cursor, splitting on newlines
func (b *Buffer) InsertText(text string) {
	for _, r := range strings.ReplaceAll(text, "\r", "") {
		if r == '\n' {
			b.InsertNewline()
		} else {
			b.InsertRune(r)
		}
	}
}

// InsertNewline splits the current line at the cursor
func (b *Buffer) InsertNewline() {
	line := b.lines[b.row]
	head := append([]rune{}, line[:b.col]...)
	tail := append([]rune{}, line[b.col:]...)

	b.lines[b.row] = head
	b.lines = append(b.lines, nil)
	copy(b.lines[b.row+2:], b.lines[b.row+1:])
	b.lines[b.row+1] = tail

	b.row++
	b.col = 0
	b.revision++
}

// Backspace deletes the rune before the cursor, joining lines at column 0
func (b *Buffer) Backspace() bool {
	if b.col > 0 {
		line := b.lines[b.row]
		b.lines[b.row] = append(line[:b.col-1:b.col-1], line[b.col:]...)
		b.col--
		b.revision++
		return true
	}
	if b.row == 0 {
		return false
	}
	prev := b.lines[b.row-1]
	b.col = len(prev)
	b.lines[b.row-1] = append(prev, b.lines[b.row]...)
	b.lines = append(b.lines[:b.row], b.lines[b.row+1:]...)
	b.row--
	b.revision++
	return true
}

// Delete deletes the rune under the cursor, joining the next line at end of line
func (b *Buffer) Delete() bool {
	line := b.lines[b.row]
	if b.col < len(line) {
		b.lines[b.row] = append(line[:b.col:b.col], line[b.col+1:]...)
		b.revision++
		return true
	}
	if b.row >= len(b.lines)-1 {
		return false
	}
	b.lines[b.row] = append(line, b.lines[b.row+1]...)
	b.lines = append(b.lines[:b.row+1], b.lines[b.row+2:]...)
	b.revision++
	return true
}

// DeleteToEnd deletes from the cursor to the end of the line (Ctrl+K)
func (b *Buffer) DeleteToEnd() bool {
	line := b.lines[b.row]
	if b.col >= len(line) {
		return b.Delete()
	}
	b.lines[b.row] = line[:b.col:b.col]
	b.revision++
	return true
}

func (b *Buffer) MoveLeft() {
	if b.col > 0 {
		b.col--
	} else if b.row > 0 {
		b.row--
		b.col = len(b.lines[b.row])
	}
}

func (b *Buffer) MoveRight() {
	if b.col < len(b.lines[b.row]) {
		b.col++
	} else if b.row < len(b.lines)-1 {
		b.row++
		b.col = 0
	}
}

func (b *Buffer) MoveUp(n int) {
	b.SetCursor(b.row-n, b.col)
}

func (b *Buffer) MoveDown(n int) {
	b.SetCursor(b.row+n, b.col)
}

func (b *Buffer) MoveLineStart() {
	b.col = 0
}

func (b *Buffer) MoveLineEnd() {
	b.col = len(b.lines[b.row])
}

// MoveWordForward moves to the start of the next word (Alt+F)
func (b *Buffer) MoveWordForward() {
	line := b.lines[b.row]
	if b.col >= len(line) {
		b.MoveRight()
		return
	}
	for b.col < len(line) && !unicode.IsSpace(line[b.col]) {
		b.col++
	}
	for b.col < len(line) && unicode.IsSpace(line[b.col]) {
		b.col++
	}
}

// MoveWordBackward moves to the start of the previous word (Alt+B)
func (b *Buffer) MoveWordBackward() {
	if b.col == 0 {
		b.MoveLeft()
		return
	}
	line := b.lines[b.row]
	for b.col > 0 && unicode.IsSpace(line[b.col-1]) {
		b.col--
	}
	for b.col > 0 && !unicode.IsSpace(line[b.col-1]) {
		b.col--
	}
}
