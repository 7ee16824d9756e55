package engine

import "kalah/experiments/metrics"

type Engine interface {
	// Run plays a game till one side runs out of seeds or a max number of moves is reached.
	// The winner is 0 or 1, or -1 on a tie.
	Run() (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
