package engine

import "fmt"

// FormatScore renders a search score as "cp <n>" or "mate <n>" the way the
// harness commands print it. Mate distances are in moves, not plies.
func FormatScore(score int32) string {
	if score >= Checkmate {
		pliesToMate := MaxScore - score
		if pliesToMate < 0 {
			pliesToMate = 0
		}
		return fmt.Sprintf("mate %d", (pliesToMate+1)/2)
	}
	if score <= -Checkmate {
		pliesToMate := MaxScore + score
		if pliesToMate < 0 {
			pliesToMate = 0
		}
		return fmt.Sprintf("mate %d", -(pliesToMate+1)/2)
	}
	return fmt.Sprintf("cp %d", score)
}
