package engine

import (
	"fmt"
	"time"

	"kalah/experiments/metrics"
	"kalah/game"
	"kalah/meta"
	"kalah/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Update records one move of a game and the position it produced.
type Update struct {
	Player game.Player
	House  int
	State  game.State
	Hash   game.StateHash
}

var _ Engine = (*LocalEngine)(nil)

type LocalEngine struct {
	State    game.State
	Agents   []agent.Agent // Indexed by player
	History  []Update
	MaxMoves int
}

// NewLocalEngine prepares a game from cfg between two agents. agents[0] plays
// player0 and agents[1] plays player1.
func NewLocalEngine(cfg game.Config, agents []agent.Agent) (*LocalEngine, error) {
	if len(agents) != 2 {
		return nil, fmt.Errorf("need exactly two agents, got %d", len(agents))
	}
	state, err := cfg.NewState()
	if err != nil {
		return nil, err
	}

	return &LocalEngine{
		State:    state,
		Agents:   agents,
		MaxMoves: meta.MAX_TURNS,
	}, nil
}

// Run executes the entire game loop until the board is terminal. Extra moves
// are handled by asking the same agent again.
func (e *LocalEngine) Run() (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.State.Player),
		Winner:         -1,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.State.Player)

	step := 1
	for !e.State.IsTerminal() && step <= e.MaxMoves {
		player := e.State.Player
		house, searchMetric, err := e.Agents[player].FindMove(e.State)
		if err != nil {
			return -1, gameMetric, moveMetrics, fmt.Errorf("%s failed to find a move: %w", player, err)
		}

		next, err := e.State.Play(house)
		if err != nil {
			return -1, gameMetric, moveMetrics, fmt.Errorf("%s chose house %d: %w", player, house, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       int(player),
			House:        house,
			SearchMetric: searchMetric,
		})
		e.History = append(e.History, Update{
			Player: player,
			House:  house,
			State:  next,
			Hash:   next.Hash(),
		})
		log.Debug().Int("step", step).Str("player", player.String()).Int("house", house).Msgf("board\n%s", next.Board)

		e.State = next
		step++
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if !e.State.IsTerminal() {
		log.Warn().Msgf("stopped after %d moves without a result", e.MaxMoves)
		return -1, gameMetric, moveMetrics, nil
	}

	e.State.Board = game.Finalize(e.State.Board)
	scores := e.State.Scores()
	gameMetric.Score0, gameMetric.Score1 = scores[game.Player0], scores[game.Player1]
	if winner, ok := e.State.Winner(); ok {
		gameMetric.Winner = int(winner)
	}

	log.Info().Int("score0", gameMetric.Score0).Int("score1", gameMetric.Score1).Int("moves", gameMetric.TotalMoves).
		Msgf("game over, winner %d", gameMetric.Winner)
	return gameMetric.Winner, gameMetric, moveMetrics, nil
}
