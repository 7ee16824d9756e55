package agent

import (
	"kalah/experiments/metrics"
	"kalah/game"
	"kalah/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns an agent that plays the move chosen by mcts.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(state game.State) (int, metrics.SearchMetric, error) {
	return a.mcts.ChooseMove(state.Player, state.Board)
}
