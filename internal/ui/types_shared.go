package ui

// FileMatchResult stores a file picker match and which field matched
type FileMatchResult struct {
	MatchResult
	MatchField string // "name" or "path"
}

// shiftPositions offsets highlight positions by n runes
func shiftPositions(positions []int, n int) []int {
	if len(positions) == 0 {
		return nil
	}
	out := make([]int, len(positions))
	for i, p := range positions {
		out[i] = p + n
	}
	return out
}
