package searcher

import (
	"fmt"
	"time"

	"kalah/experiments/metrics"
	"kalah/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

type Option func(mcts *MCTS)

type MCTS struct {
	goroutines  int
	duration    time.Duration
	episodes    int
	exploration float64
	seed        uint64
	seeded      bool
	metrics     metrics.Collector
}

// WithDuration bounds each search by wall-clock time. The deadline is checked
// between cycles, so a search may overrun it by one cycle.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithEpisodes runs exactly this many cycles per search and takes precedence
// over WithDuration.
func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

// WithGoroutines grows that many independent trees in parallel and merges
// their root statistics. Results are no longer reproducible when n > 1.
func WithGoroutines(goroutines int) Option {
	return func(m *MCTS) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

// WithSeed fixes the rollout random source.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
		m.seeded = true
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines:  1,
		exploration: C,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// ChooseMove returns a house index in 0..houses-1 to sow from.
func ChooseMove(player game.Player, board game.Board, budget time.Duration) (int, error) {
	if budget <= 0 {
		return -1, fmt.Errorf("%w: budget %s", ErrSearchBudgetTooSmall, budget)
	}
	house, _, err := NewMCTS(WithDuration(budget)).ChooseMove(player, board)
	return house, err
}

// ChooseMove searches the position for player and returns the chosen house
// together with the search metrics. The tree is discarded afterwards.
func (m *MCTS) ChooseMove(player game.Player, board game.Board) (int, metrics.SearchMetric, error) {
	if err := checkPosition(player, board); err != nil {
		return -1, metrics.SearchMetric{}, err
	}
	if m.episodes > 0 && m.episodes < MinEpisodes {
		return -1, metrics.SearchMetric{}, fmt.Errorf("%w: %d episodes", ErrSearchBudgetTooSmall, m.episodes)
	}

	seed := m.seed
	if !m.seeded {
		seed = uint64(time.Now().UnixNano())
	}

	m.metrics.Start(m.goroutines, m.duration)
	roots := make([]rootStats, m.goroutines)
	var g errgroup.Group
	for i := range roots {
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed + uint64(i)))
			t := newTree(player, board, m.exploration)
			if err := m.grow(t, rng); err != nil {
				return err
			}
			roots[i] = t.rootStats()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return -1, m.metrics.Complete(), err
	}

	stats := mergeRoots(roots)
	house, err := bestHouse(stats)
	metric := m.metrics.Complete()
	if err != nil {
		return -1, metric, err
	}

	log.Debug().
		Str("player", player.String()).
		Int("house", house).
		Int("cycles", stats.visits).
		Int("goroutines", m.goroutines).
		Msg("search-complete")
	return house, metric, nil
}

func checkPosition(player game.Player, board game.Board) error {
	if err := board.Validate(); err != nil {
		return err
	}
	if !player.Valid() {
		return fmt.Errorf("%w: unknown player %d", game.ErrInvalidBoard, player)
	}
	if game.IsTerminal(board) || len(game.LegalMoves(player, board)) == 0 {
		return fmt.Errorf("%w: no legal move for %s", game.ErrInvalidBoard, player)
	}
	return nil
}

// grow runs select, expand, rollout and backpropagate cycles on t until the
// budget is used up.
func (m *MCTS) grow(t *tree, rng *rand.Rand) error {
	start := time.Now()
	path := make([]int, 0, 64)
	for episode := 0; m.running(t, episode, start); episode++ {
		path = t.traverse(path)

		leaf := path[len(path)-1]
		if n := t.nodes[leaf]; n.visits > 0 && !n.terminal {
			var chains int
			var err error
			size := t.size()
			path, chains, err = t.expand(leaf, path)
			if err != nil {
				return err
			}
			m.metrics.AddNodes(t.size() - size)
			for i := 0; i < chains; i++ {
				m.metrics.AddChain()
			}
		}

		result, diff, err := t.rollout(path[len(path)-1], rng)
		if err != nil {
			return err
		}
		t.backpropagate(path, result, diff)

		m.metrics.AddEpisode()
		m.metrics.ObserveDepth(len(path) - 1)
	}
	return nil
}

// running reports whether another cycle should start. In duration mode the
// search continues past the deadline until the root has children.
func (m *MCTS) running(t *tree, episode int, start time.Time) bool {
	if m.episodes > 0 {
		return episode < m.episodes
	}
	return time.Since(start) < m.duration || len(t.nodes[rootID].children) == 0
}
