package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting concurrently", func(t *testing.T) {
		c := NewCollector()
		c.Start(4, time.Second)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func(depth int) {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.AddEpisode()
					c.AddNodes(2)
					c.ObserveDepth(depth)
				}
				c.AddChain()
			}(i + 3)
		}
		wg.Wait()

		m := c.Complete()
		require.Equal(t, 4, m.Goroutines)
		require.Equal(t, time.Second, m.Budget)
		require.Equal(t, 400, m.Episodes)
		require.Equal(t, 800, m.Nodes)
		require.Equal(t, 6, m.MaxDepth, "Should keep the deepest observed depth")
		require.Equal(t, 4, m.Chains)
	})

	t.Run("restarting resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, 0)
		c.AddEpisode()
		c.Start(1, 0)

		require.Zero(t, c.Complete().Episodes)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(2, time.Second)
		c.AddEpisode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "unit")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
		{ID: 1, Kind: "mcts", Goroutines: 2, Duration: 50 * time.Millisecond},
		{ID: 2, Kind: "random", Seed: 9},
	}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{
		{ID: 1, Agent1: 1, Agent2: 2, GameMetric: GameMetric{Winner: 0, Score0: 30, Score1: 18, TotalMoves: 40}},
	}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{
		{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: 0, House: 2, SearchMetric: SearchMetric{Episodes: 500}}},
	}))

	rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Len(t, rows, 3, "Should write a header and one row per config")
	require.Equal(t, []string{"1", "mcts", "2", "50ms", "0", "0"}, rows[1])
	require.Equal(t, "random", rows[2][1])

	rows = readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"1", "1", "2", "0", "0", "30", "18"}, rows[1][:7])

	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, "2", rows[1][3], "Should record the chosen house")
	require.Equal(t, "500", rows[1][6], "Should record the episode count")
}

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
