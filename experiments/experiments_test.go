package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"kalah/experiments/metrics"
	"kalah/game"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRun(t *testing.T) {
	t.Run("writing one row per game and move", func(t *testing.T) {
		random := metrics.AgentConfig{ID: 0, Kind: "random", Seed: 3}
		mcts := metrics.AgentConfig{ID: 1, Kind: "mcts", Goroutines: 2, Episodes: 20, Seed: 5}
		matchUps := [][]metrics.AgentConfig{{mcts, random}, {random, mcts}}

		dir, err := Run("tiny", t.TempDir(), game.Config{Houses: 3, Seeds: 2}, []metrics.AgentConfig{random, mcts}, matchUps, 2)
		require.NoError(t, err)

		configs := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
		require.Len(t, configs, 3, "Header plus one row per agent")

		games := readCSV(t, filepath.Join(dir, "game_records.csv"))
		require.Len(t, games, 5, "Header plus two games per match up")
		require.Equal(t, "1", games[1][1], "First match up should seat the MCTS agent as player0")
		require.Equal(t, "0", games[3][1])

		moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
		require.Greater(t, len(moves), 4, "Every game should have moves")
	})

	t.Run("rejecting an unknown agent kind", func(t *testing.T) {
		bad := metrics.AgentConfig{ID: 0, Kind: "minimax"}

		_, err := Run("bad", t.TempDir(), game.StandardConfig(), []metrics.AgentConfig{bad}, [][]metrics.AgentConfig{{bad, bad}}, 1)

		require.Error(t, err)
	})

	t.Run("rejecting an invalid configuration", func(t *testing.T) {
		_, err := Run("bad", t.TempDir(), game.Config{Houses: 0, Seeds: 4}, nil, nil, 1)

		require.ErrorIs(t, err, game.ErrInvalidConfig)
	})
}

func TestRunBaseline(t *testing.T) {
	dir, err := RunBaseline(t.TempDir(), game.Config{Houses: 3, Seeds: 2}, 1)
	require.NoError(t, err)

	configs := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Len(t, configs, 3)

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 3, "Header plus one game per seating")
	require.Equal(t, []string{"1", "0"}, games[1][1:3], "MCTS should move first in the first match up")
	require.Equal(t, []string{"0", "1"}, games[2][1:3])
}

func TestRunParallelization(t *testing.T) {
	dir, err := RunParallelization(t.TempDir(), game.Config{Houses: 2, Seeds: 1}, 1)
	require.NoError(t, err)

	configs := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Len(t, configs, len(parallelConfigs)+2, "Header, baseline and every parallel agent")
	require.Equal(t, "0", configs[1][0], "Baseline should be listed first")

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 2*len(parallelConfigs)+1, "Header plus both seatings per parallel agent")
	for _, row := range games[1:] {
		require.Contains(t, row[1:3], "0", "Every game should include the baseline")
	}
}

func TestCreateAgent(t *testing.T) {
	state, err := game.StandardConfig().NewState()
	require.NoError(t, err)

	for _, config := range []metrics.AgentConfig{
		{Kind: "random", Seed: 1},
		{Kind: "random"},
		{Kind: "mcts", Episodes: 30, Seed: 1},
		{Kind: "", Episodes: 30, Goroutines: 2},
	} {
		a, err := CreateAgent(config, 0)
		require.NoError(t, err)

		house, _, err := a.FindMove(state)
		require.NoError(t, err)
		require.Contains(t, state.LegalMoves(), house)
	}
}
