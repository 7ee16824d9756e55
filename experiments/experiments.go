package experiments

import (
	"fmt"
	"time"

	"kalah/engine"
	"kalah/experiments/metrics"
	"kalah/game"
	"kalah/meta"
	"kalah/searcher"
	"kalah/searcher/agent"

	"github.com/rs/zerolog/log"
)

const (
	NumGames   = 30 // Per match up
	TimeBudget = 10 * time.Millisecond
)

var parallelConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "mcts", Goroutines: 1, Duration: TimeBudget},
	{ID: 2, Kind: "mcts", Goroutines: 2, Duration: TimeBudget},
	{ID: 3, Kind: "mcts", Goroutines: 4, Duration: TimeBudget},
	{ID: 4, Kind: "mcts", Goroutines: meta.GO_ROUTINES, Duration: TimeBudget},
}

// RunParallelization pairs each root-parallel agent against the sequential
// baseline, with both seatings, and writes the results under dir.
func RunParallelization(dir string, cfg game.Config, games int) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: "mcts", Goroutines: 1, Duration: TimeBudget}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range parallelConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config}, []metrics.AgentConfig{config, baseline})
	}

	return Run("parallelization", dir, cfg, append([]metrics.AgentConfig{baseline}, parallelConfigs...), matchUps, games)
}

// RunBaseline pairs an MCTS agent with a fixed episode budget against a random agent.
func RunBaseline(dir string, cfg game.Config, games int) (string, error) {
	random := metrics.AgentConfig{ID: 0, Kind: "random", Seed: 1}
	mcts := metrics.AgentConfig{ID: 1, Kind: "mcts", Goroutines: 1, Episodes: meta.EPISODES}
	matchUps := [][]metrics.AgentConfig{{mcts, random}, {random, mcts}}

	return Run("baseline", dir, cfg, []metrics.AgentConfig{random, mcts}, matchUps, games)
}

// Run plays games per match up, where the first config of a match up plays
// player0, and stores the configs, games and moves as CSV files. It returns
// the directory holding the files.
func Run(name, dir string, cfg game.Config, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, games int) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		if len(matchUp) != 2 {
			return "", fmt.Errorf("match up %d has %d agents, want 2", mi, len(matchUp))
		}
		config1, config2 := matchUp[0], matchUp[1]

		log.Info().Msgf("starting match up %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < games; i++ {
			count++
			winner, gameMetric, moveMetrics, err := runGame(cfg, config1, config2, uint64(count))
			if err != nil {
				return "", fmt.Errorf("match up %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed match up %d of %d game %d with winner: %d", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed match up %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")

	return writer.Dir(), nil
}

// runGame plays a single game. The game number is mixed into the seeds so
// repeated games between the same agents differ.
func runGame(cfg game.Config, config1, config2 metrics.AgentConfig, n uint64) (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	agent1, err := CreateAgent(config1, n)
	if err != nil {
		return -1, metrics.GameMetric{}, nil, err
	}
	agent2, err := CreateAgent(config2, n)
	if err != nil {
		return -1, metrics.GameMetric{}, nil, err
	}

	local, err := engine.NewLocalEngine(cfg, []agent.Agent{agent1, agent2})
	if err != nil {
		return -1, metrics.GameMetric{}, nil, err
	}
	return play(local)
}

func play(e engine.Engine) (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	return e.Run()
}

// CreateAgent builds the agent described by config. offset is added to a
// configured seed; agents without a seed are seeded from the clock.
func CreateAgent(config metrics.AgentConfig, offset uint64) (agent.Agent, error) {
	switch config.Kind {
	case "random":
		seed := config.Seed + offset
		if config.Seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		return agent.NewRandomAgent(seed), nil
	case "mcts", "":
		return agent.NewEvaluationAgent(createMCTS(config, offset)), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}

func createMCTS(config metrics.AgentConfig, offset uint64) *searcher.MCTS {
	options := []searcher.Option{}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Episodes <= 0 && config.Duration <= 0 {
		options = append(options, searcher.WithDuration(meta.TIME_BUDGET*time.Millisecond))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.Seed > 0 {
		options = append(options, searcher.WithSeed(config.Seed+offset))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(options...)
}
