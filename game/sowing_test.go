package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestSowingSteps(t *testing.T) {
	t.Run("dropping one seed per step", func(t *testing.T) {
		board := Board{{4, 4, 3, 4, 4, 0, 0}, {4, 4, 4, 4, 4, 4, 0}}
		s, err := NewSowing(Player0, board, 2)
		require.NoError(t, err)

		require.True(t, s.Step(), "Should pick up the seeds")
		require.Equal(t, 3, s.InHand())
		require.Zero(t, s.Board()[Player0][2], "Should empty the source house")

		var visited []int
		for s.InHand() > 0 {
			require.True(t, s.Step())
			side, pit := s.Pit()
			require.Equal(t, Player0, side)
			visited = append(visited, pit)
		}
		require.Equal(t, []int{3, 4, 5}, visited, "Should sow into the following houses")
		require.False(t, s.Done(), "Should wait for the finishing step")

		require.True(t, s.Step(), "Should perform the capture step")
		require.True(t, s.Done())
		require.False(t, s.Step(), "Should not step after finishing")

		next, got := s.Result()
		require.Equal(t, Player1, next)
		require.Equal(t, Board{{4, 4, 0, 5, 5, 0, 5}, {0, 4, 4, 4, 4, 4, 0}}, got)
		require.Equal(t, Board{{4, 4, 3, 4, 4, 0, 0}, {4, 4, 4, 4, 4, 4, 0}}, board, "Should not modify the input board")
	})

	t.Run("ignoring writes to the returned board", func(t *testing.T) {
		board := Board{{4, 4, 3, 4, 4, 0, 0}, {4, 4, 4, 4, 4, 4, 0}}
		s, err := NewSowing(Player0, board, 2)
		require.NoError(t, err)
		wantNext, want, err := ApplyMove(Player0, board, 2)
		require.NoError(t, err)

		for s.Step() {
			b := s.Board()
			b[Player0][2] = 9
			b[Player1][0] = 0
		}

		next, got := s.Result()
		require.Equal(t, wantNext, next)
		require.Equal(t, want, got, "Should still match ApplyMove")
	})

	t.Run("skipping the opponent store", func(t *testing.T) {
		s, err := NewSowing(Player1, Board{{0, 0, 0}, {0, 4, 0}}, 1)
		require.NoError(t, err)

		var pits [][2]int
		s.Step()
		for s.InHand() > 0 {
			s.Step()
			side, pit := s.Pit()
			pits = append(pits, [2]int{int(side), pit})
		}

		require.Equal(t, [][2]int{{1, 2}, {0, 0}, {0, 1}, {1, 0}}, pits,
			"Should pass the own store, the opponent houses and wrap to the own row")
	})

	t.Run("rejecting illegal moves", func(t *testing.T) {
		_, err := NewSowing(Player0, Board{{0, 1, 0}, {1, 1, 0}}, 0)

		require.ErrorIs(t, err, ErrIllegalMove)
	})
}

func TestSowingMatchesApplyMove(t *testing.T) {
	r := rand.New(rand.NewSource(3))

	for i := 0; i < 1000; i++ {
		houses := 2 + r.Intn(8)
		board := randomBoard(r, houses, 4*houses)
		player := Player(r.Intn(2))
		moves := LegalMoves(player, board)
		if len(moves) == 0 {
			continue
		}
		house := moves[r.Intn(len(moves))]
		wantNext, wantBoard, err := ApplyMove(player, board, house)
		require.NoError(t, err)

		s, err := NewSowing(player, board, house)
		require.NoError(t, err)
		steps := 0
		for s.Step() {
			steps++
		}
		gotNext, gotBoard := s.Result()

		require.Equal(t, board[player][house]+2, steps, "Should take one step per seed plus pick-up and finish")
		require.Equal(t, wantNext, gotNext, "Should hand the turn to the same player as ApplyMove")
		require.Equal(t, wantBoard, gotBoard, "Should converge to the ApplyMove board")
	}
}
