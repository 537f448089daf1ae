package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"pacagent/engine"
	"pacagent/experiments"
	"pacagent/experiments/metrics"
	"pacagent/game"
	"pacagent/searcher"
	"pacagent/searcher/agent"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML file with searcher hyperparameters")
	strategy := flag.String("strategy", searcher.DepthFirst, "Search strategy: "+strings.Join(searcher.Strategies(), ", "))
	depth := flag.Int("depth", searcher.DefaultDepth, "Search depth in ticks, the largest depth swept by the depth experiment")
	budget := flag.Duration("budget", experiments.TimeBudget, "Time budget per move, 0 for none")
	seed := flag.Uint64("seed", 1, "Seed for stochastic strategies and ghosts")
	chase := flag.Bool("chase", false, "Reward closing in on edible ghosts")
	explore := flag.Float64("explore", 0, "Sample moves from a softmax over branch values at this temperature")
	aggression := flag.Float64("ghosts", 0.8, "Probability that a ghost chases the agent")
	ticks := flag.Int("ticks", engine.MaxTicks, "Maximum ticks per game")
	experiment := flag.String("experiment", "", "Run an experiment instead of a single game: strategies, depth, budget")
	games := flag.Int("games", experiments.NumGames, "Games per agent in experiments")
	out := flag.String("out", "experiments", "Output directory for experiment results")
	level := flag.String("log-level", envOr("LOG_LEVEL", "info"), "Log level")
	flag.Parse()

	configureLogger(*level)

	config := searcher.DefaultConfig()
	if *configPath != "" {
		loaded, err := searcher.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		config = loaded
	}
	// Flags given explicitly override the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strategy":
			config.Strategy = *strategy
		case "depth":
			config.Depth = *depth
		case "seed":
			config.Seed = *seed
		}
	})
	if *configPath == "" {
		config.Strategy, config.Depth, config.Seed = *strategy, *depth, *seed
	}
	config.Duration = *budget
	if err := config.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid searcher config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *experiment != "" {
		opts := experiments.DefaultOptions()
		opts.Dir = *out
		opts.Games = *games
		opts.Budget = *budget
		opts.MaxTicks = *ticks
		opts.Seed = config.Seed
		opts.Aggression = *aggression
		opts.Search = config
		opts.Search.Weights.ChaseEdible = config.Weights.ChaseEdible || *chase
		if err := runExperiment(ctx, *experiment, opts); err != nil {
			log.Fatal().Err(err).Msgf("%s experiment failed", *experiment)
		}
		return
	}

	weights := config.Weights
	weights.ChaseEdible = weights.ChaseEdible || *chase
	s := searcher.NewSearcher(searcher.WithConfig(config), searcher.WithWeights(weights), searcher.WithMetrics())
	a := agent.NewEvaluationAgent(s)
	if *explore > 0 {
		a = agent.NewExploringAgent(s, *explore, config.Seed)
	}
	arena := game.NewArena(game.CreateMaze(), game.NewStandardRules())
	e := engine.LocalEngine(arena, a, engine.NewGhostPolicy(*aggression, config.Seed), *budget, *ticks)
	e.Seed = config.Seed

	log.Info().Msgf("playing with %s at depth %d and %v per move", config.Strategy, config.Depth, *budget)
	gameMetric, moves, err := e.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
	report(gameMetric, moves)
}

func runExperiment(ctx context.Context, name string, opts experiments.Options) error {
	var err error
	switch name {
	case "strategies":
		_, err = experiments.RunStrategyComparison(ctx, opts)
	case "depth":
		_, err = experiments.RunDepthExperiment(ctx, opts, opts.Search.Depth)
	case "budget":
		_, err = experiments.RunBudgetExperiment(ctx, opts)
	default:
		err = fmt.Errorf("unknown experiment %q", name)
	}
	return err
}

func report(gameMetric metrics.GameMetric, moves []metrics.MoveMetric) {
	var searching time.Duration
	timeouts := 0
	for _, m := range moves {
		searching += m.Duration
		if m.TimedOut {
			timeouts++
		}
	}
	if len(moves) > 0 {
		searching /= time.Duration(len(moves))
	}
	log.Info().
		Int("score", gameMetric.Score).
		Int("lives", gameMetric.Lives).
		Int("ticks", gameMetric.TotalTicks).
		Bool("cleared", gameMetric.Cleared).
		Dur("mean_search", searching).
		Int("timeouts", timeouts).
		Dur("duration", gameMetric.Duration).
		Msg("game over")
}

func configureLogger(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Msgf("unknown log level %q, using info", level)
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
