package agent

import (
	"testing"

	"kalah/game"
	"kalah/searcher"

	"github.com/stretchr/testify/require"
)

func TestEvaluationAgent(t *testing.T) {
	state, err := game.StandardConfig().NewState()
	require.NoError(t, err)
	a := NewEvaluationAgent(searcher.NewMCTS(searcher.WithEpisodes(200), searcher.WithSeed(1), searcher.WithMetrics()))

	house, metric, err := a.FindMove(state)

	require.NoError(t, err)
	require.Contains(t, state.LegalMoves(), house)
	require.Equal(t, 200, metric.Episodes)
}

func TestRandomAgent(t *testing.T) {
	t.Run("playing only legal moves", func(t *testing.T) {
		a := NewRandomAgent(4)
		state := game.State{Player: game.Player1, Board: game.Board{{1, 1, 1, 0}, {0, 2, 0, 0}}}

		for i := 0; i < 20; i++ {
			house, _, err := a.FindMove(state)
			require.NoError(t, err)
			require.Equal(t, 1, house, "Should play the only non-empty house")
		}
	})

	t.Run("reproducing moves with the same seed", func(t *testing.T) {
		state, err := game.StandardConfig().NewState()
		require.NoError(t, err)
		a, b := NewRandomAgent(9), NewRandomAgent(9)

		for i := 0; i < 20; i++ {
			got, _, err := a.FindMove(state)
			require.NoError(t, err)
			want, _, err := b.FindMove(state)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	})

	t.Run("failing on a finished game", func(t *testing.T) {
		_, _, err := NewRandomAgent(1).FindMove(game.State{Board: game.Board{{0, 0, 9}, {1, 0, 2}}})

		require.ErrorIs(t, err, game.ErrInvalidBoard)
	})
}
