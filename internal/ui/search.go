package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// LineInput is a single-line text field with readline-style editing.
// It backs the file picker query and the save-as prompt.
type LineInput struct {
	text      []rune
	cursorPos int
}

// SetText sets the content and moves the cursor to the end
func (l *LineInput) SetText(text string) {
	l.text = []rune(text)
	l.cursorPos = len(l.text)
}

func (l *LineInput) Text() string {
	return string(l.text)
}

func (l *LineInput) CursorPos() int {
	return l.cursorPos
}

// Clear empties the field
func (l *LineInput) Clear() {
	l.text = nil
	l.cursorPos = 0
}

// InsertChar inserts a character at the cursor position
func (l *LineInput) InsertChar(ch rune) {
	l.text = append(l.text, 0)
	copy(l.text[l.cursorPos+1:], l.text[l.cursorPos:])
	l.text[l.cursorPos] = ch
	l.cursorPos++
}

// DeleteChar deletes the character before the cursor (backspace)
func (l *LineInput) DeleteChar() {
	if l.cursorPos > 0 {
		l.text = append(l.text[:l.cursorPos-1], l.text[l.cursorPos:]...)
		l.cursorPos--
	}
}

// DeleteCharForward deletes the character at the cursor (delete)
func (l *LineInput) DeleteCharForward() {
	if l.cursorPos < len(l.text) {
		l.text = append(l.text[:l.cursorPos], l.text[l.cursorPos+1:]...)
	}
}

func (l *LineInput) MoveCursorLeft() {
	if l.cursorPos > 0 {
		l.cursorPos--
	}
}

func (l *LineInput) MoveCursorRight() {
	if l.cursorPos < len(l.text) {
		l.cursorPos++
	}
}

// MoveCursorStart moves cursor to start (Ctrl+A)
func (l *LineInput) MoveCursorStart() {
	l.cursorPos = 0
}

// MoveCursorEnd moves cursor to end (Ctrl+E)
func (l *LineInput) MoveCursorEnd() {
	l.cursorPos = len(l.text)
}

// DeleteToEnd deletes from cursor to end (Ctrl+K)
func (l *LineInput) DeleteToEnd() {
	l.text = l.text[:l.cursorPos]
}

// DeleteWord deletes the word before cursor (Ctrl+W)
func (l *LineInput) DeleteWord() {
	if l.cursorPos == 0 {
		return
	}

	start := l.cursorPos
	for start > 0 && l.text[start-1] == ' ' {
		start--
	}
	for start > 0 && l.text[start-1] != ' ' {
		start--
	}

	l.text = append(l.text[:start], l.text[l.cursorPos:]...)
	l.cursorPos = start
}

// MoveCursorWordForward moves cursor forward by one word (Alt+F)
func (l *LineInput) MoveCursorWordForward() {
	for l.cursorPos < len(l.text) && l.text[l.cursorPos] != ' ' {
		l.cursorPos++
	}
	for l.cursorPos < len(l.text) && l.text[l.cursorPos] == ' ' {
		l.cursorPos++
	}
}

// MoveCursorWordBackward moves cursor backward by one word (Alt+B)
func (l *LineInput) MoveCursorWordBackward() {
	for l.cursorPos > 0 && l.text[l.cursorPos-1] == ' ' {
		l.cursorPos--
	}
	for l.cursorPos > 0 && l.text[l.cursorPos-1] != ' ' {
		l.cursorPos--
	}
}

// HandleKey applies an editing key. It returns false for keys it does not
// handle so the caller can act on them.
func (l *LineInput) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		l.DeleteChar()
	case tcell.KeyDelete:
		l.DeleteCharForward()
	case tcell.KeyLeft:
		l.MoveCursorLeft()
	case tcell.KeyRight:
		l.MoveCursorRight()
	case tcell.KeyHome, tcell.KeyCtrlA:
		l.MoveCursorStart()
	case tcell.KeyEnd, tcell.KeyCtrlE:
		l.MoveCursorEnd()
	case tcell.KeyCtrlK:
		l.DeleteToEnd()
	case tcell.KeyCtrlW:
		l.DeleteWord()
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			switch ev.Rune() {
			case 'f':
				l.MoveCursorWordForward()
			case 'b':
				l.MoveCursorWordBackward()
			default:
				return false
			}
			return true
		}
		l.InsertChar(ev.Rune())
	default:
		return false
	}
	return true
}

// SearchState holds the query for fuzzy filtering
type SearchState struct {
	LineInput
	caseSensitive bool
	minScore      int // Minimum score threshold for matches
}

// Score threshold constants (based on raw fzf scores)
const (
	ScoreThresholdStrict     = 70 // Only high quality matches
	ScoreThresholdNormal     = 50 // Balanced
	ScoreThresholdPermissive = 30 // Include marginal matches
	ScoreThresholdNone       = 0  // Accept all matches
)

// NewSearchState creates a new search state. Paths are short, so the
// default threshold is permissive.
func NewSearchState() *SearchState {
	return &SearchState{minScore: ScoreThresholdPermissive}
}

// Query returns the current query
func (s *SearchState) Query() string {
	return s.Text()
}

// SetMinScore sets the minimum score threshold
func (s *SearchState) SetMinScore(score int) {
	s.minScore = score
}

// MatchResult contains match score and positions
type MatchResult struct {
	Score     int
	Positions []int
}

// matchWithPositions calculates match score and rune positions for highlighting
func (s *SearchState) matchWithPositions(text string) MatchResult {
	query := s.Query()
	if query == "" {
		return MatchResult{}
	}

	algo.Init("default")

	searchText := text
	pattern := query
	if !s.caseSensitive {
		searchText = strings.ToLower(text)
		pattern = strings.ToLower(query)
	}

	chars := util.ToChars([]byte(searchText))
	patternRunes := []rune(pattern)

	slab := util.MakeSlab(16384, 1024)
	result, positions := algo.FuzzyMatchV2(s.caseSensitive, false, true, &chars, patternRunes, true, slab)

	if result.Start < 0 {
		return MatchResult{Score: -1}
	}

	var matchPositions []int
	if positions != nil {
		matchPositions = make([]int, len(*positions))
		copy(matchPositions, *positions)
	}
	return MatchResult{Score: result.Score, Positions: matchPositions}
}

func (s *SearchState) accept(r MatchResult) bool {
	return r.Score >= 0 && (s.minScore == 0 || r.Score >= s.minScore)
}

// MatchFile checks a file's base name first, then its display path
func (s *SearchState) MatchFile(name, path string) (bool, FileMatchResult) {
	if s.Query() == "" {
		return true, FileMatchResult{}
	}

	if r := s.matchWithPositions(name); s.accept(r) {
		return true, FileMatchResult{MatchResult: r, MatchField: "name"}
	}
	if r := s.matchWithPositions(path); s.accept(r) {
		return true, FileMatchResult{MatchResult: r, MatchField: "path"}
	}
	return false, FileMatchResult{MatchResult: MatchResult{Score: -1}}
}
