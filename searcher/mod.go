package searcher

import (
	"errors"
	"math"
)

// ErrSearchBudgetTooSmall is returned when the search ends before the root
// was expanded.
var ErrSearchBudgetTooSmall = errors.New("search budget too small")

// ucb1 scores a child for selection. wins are stored from the root player's
// point of view, so when the opponent made the move into the child the win
// rate is flipped.
func ucb1(wins float64, visits int, lnN float64, c float64, opponent bool) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return math.Inf(1)
	}

	rate := wins / float64(visits)
	if opponent {
		rate = 1 - rate
	}
	return rate + c*math.Sqrt(lnN/float64(visits))
}
