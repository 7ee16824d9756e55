package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"kalah/engine"
	"kalah/experiments"
	"kalah/experiments/metrics"
	"kalah/game"
	"kalah/meta"
	"kalah/render"
	"kalah/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type options struct {
	mode       string
	houses     int
	seeds      int
	start      int
	budget     time.Duration
	budget2    time.Duration
	goroutines int
	opponent   string
	games      int
	seed       uint64
	out        string
	verbose    bool
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.mode, "mode", "single", "single, experiment, parallelization or baseline")
	flag.IntVar(&o.houses, "houses", meta.HOUSES, "Houses per side")
	flag.IntVar(&o.seeds, "seeds", meta.SEEDS, "Seeds per house")
	flag.IntVar(&o.start, "start", 0, "Starting player (0 or 1)")
	flag.DurationVar(&o.budget, "budget", meta.TIME_BUDGET*time.Millisecond, "Search time per move of the first agent")
	flag.DurationVar(&o.budget2, "budget2", 0, "Search time per move of an MCTS opponent (defaults to -budget)")
	flag.IntVar(&o.goroutines, "goroutines", 1, "Number of goroutines for root-parallel search")
	flag.StringVar(&o.opponent, "opponent", "mcts", "Opponent kind: mcts or random")
	flag.IntVar(&o.games, "games", experiments.NumGames, "Games per match up in experiment modes")
	flag.Uint64Var(&o.seed, "seed", 0, "Random seed, 0 seeds from the clock")
	flag.StringVar(&o.out, "out", "results", "Directory for experiment results")
	flag.BoolVar(&o.verbose, "v", false, "Log every move")
	flag.Parse()

	if o.budget2 <= 0 {
		o.budget2 = o.budget
	}
	return o
}

func main() {
	o := parseFlags()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if o.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg := game.Config{Houses: o.houses, Seeds: o.seeds, StartPlayer: game.Player(o.start)}
	if err := validate(o.houses, o.seeds); err != nil {
		log.Fatal().Err(err).Msg("invalid board size")
	}

	first := metrics.AgentConfig{ID: 1, Kind: "mcts", Goroutines: o.goroutines, Duration: o.budget, Seed: o.seed}
	second := metrics.AgentConfig{ID: 2, Kind: o.opponent, Goroutines: o.goroutines, Duration: o.budget2, Seed: o.seed}
	if o.seed != 0 {
		second.Seed = o.seed + 1_000_003
	}

	switch o.mode {
	case "single":
		if err := playSingle(cfg, first, second); err != nil {
			log.Fatal().Err(err).Msg("game failed")
		}
	case "experiment":
		matchUps := [][]metrics.AgentConfig{{first, second}, {second, first}}
		dir, err := experiments.Run("match", o.out, cfg, []metrics.AgentConfig{first, second}, matchUps, o.games)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		fmt.Println(dir)
	case "parallelization":
		dir, err := experiments.RunParallelization(o.out, cfg, o.games)
		if err != nil {
			log.Fatal().Err(err).Msg("parallelization experiment failed")
		}
		fmt.Println(dir)
	case "baseline":
		dir, err := experiments.RunBaseline(o.out, cfg, o.games)
		if err != nil {
			log.Fatal().Err(err).Msg("baseline experiment failed")
		}
		fmt.Println(dir)
	default:
		log.Fatal().Msgf("unknown mode %q", o.mode)
	}
}

func validate(houses, seeds int) error {
	if houses < meta.MIN_HOUSES || houses > meta.MAX_HOUSES {
		return fmt.Errorf("%w: houses must be in [%d, %d]", game.ErrInvalidConfig, meta.MIN_HOUSES, meta.MAX_HOUSES)
	}
	if seeds < meta.MIN_SEEDS || seeds > meta.MAX_SEEDS {
		return fmt.Errorf("%w: seeds must be in [%d, %d]", game.ErrInvalidConfig, meta.MIN_SEEDS, meta.MAX_SEEDS)
	}
	return nil
}

func playSingle(cfg game.Config, first, second metrics.AgentConfig) error {
	agent1, err := experiments.CreateAgent(first, 0)
	if err != nil {
		return err
	}
	agent2, err := experiments.CreateAgent(second, 0)
	if err != nil {
		return err
	}

	e, err := engine.NewLocalEngine(cfg, []agent.Agent{agent1, agent2})
	if err != nil {
		return err
	}
	winner, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}

	if err := render.Board(os.Stdout, e.State.Board); err != nil {
		return err
	}
	switch winner {
	case -1:
		fmt.Printf("Tie %d:%d after %d moves\n", gameMetric.Score0, gameMetric.Score1, gameMetric.TotalMoves)
	default:
		fmt.Printf("Player %d wins %d:%d after %d moves\n", winner, gameMetric.Score0, gameMetric.Score1, gameMetric.TotalMoves)
	}
	return nil
}
