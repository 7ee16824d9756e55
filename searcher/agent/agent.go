package agent

import (
	"kalah/experiments/metrics"
	"kalah/game"
)

type Agent interface {
	// FindMove returns the house to sow from and the metrics of the search (if collected)
	FindMove(state game.State) (int, metrics.SearchMetric, error)
}
