package experiments

import (
	"context"
	"fmt"
	"pacagent/engine"
	"pacagent/experiments/metrics"
	"pacagent/game"
	"pacagent/searcher"
	"pacagent/searcher/agent"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	NumGames   = 10 // Per agent config
	TimeBudget = 40 * time.Millisecond
	MaxTicks   = 2000
)

type Options struct {
	Dir        string // Results go to Dir/<experiment>/<timestamp>
	Games      int
	Budget     time.Duration
	MaxTicks   int
	Workers    int
	Seed       uint64
	Aggression float64 // Ghost chase probability
	Search     searcher.Config
}

func DefaultOptions() Options {
	return Options{
		Dir:        "experiments",
		Games:      NumGames,
		Budget:     TimeBudget,
		MaxTicks:   MaxTicks,
		Workers:    runtime.NumCPU(),
		Seed:       1,
		Aggression: 0.8,
		Search:     searcher.DefaultConfig(),
	}
}

// RunStrategyComparison plays every registered strategy at the configured depth.
func RunStrategyComparison(ctx context.Context, opts Options) ([]metrics.Summary, error) {
	var configs []metrics.AgentConfig
	for i, name := range searcher.Strategies() {
		configs = append(configs, metrics.AgentConfig{
			ID:       i + 1,
			Strategy: name,
			Depth:    opts.Search.Depth,
			Duration: opts.Budget,
			Seed:     opts.Seed,
		})
	}
	return runExperiment(ctx, "strategy_comparison", opts, configs)
}

// RunDepthExperiment plays the configured strategy at every depth up to maxDepth.
func RunDepthExperiment(ctx context.Context, opts Options, maxDepth int) ([]metrics.Summary, error) {
	var configs []metrics.AgentConfig
	for depth := 1; depth <= min(maxDepth, searcher.MaxDepth); depth++ {
		configs = append(configs, metrics.AgentConfig{
			ID:       depth,
			Strategy: opts.Search.Strategy,
			Depth:    depth,
			Duration: opts.Budget,
			Seed:     opts.Seed,
		})
	}
	return runExperiment(ctx, "depth", opts, configs)
}

type job struct {
	config metrics.AgentConfig
	seed   uint64
}

type result struct {
	game  metrics.GameMetric
	moves []metrics.MoveMetric
}

func runExperiment(ctx context.Context, name string, opts Options, configs []metrics.AgentConfig) ([]metrics.Summary, error) {
	var jobs []job
	for _, config := range configs {
		for i := 0; i < opts.Games; i++ {
			jobs = append(jobs, job{config: config, seed: opts.Seed + uint64(i)})
		}
	}

	log.Info().Msgf("starting %s experiment with %d agents and %d games...", name, len(configs), len(jobs))

	maze := game.CreateMaze()
	results := make([]result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))
	for i, j := range jobs {
		g.Go(func() error {
			gameMetric, moveMetrics, err := runGame(ctx, opts, maze, j)
			if err != nil {
				return fmt.Errorf("failed to play game %d of agent %d: %w", i+1, j.config.ID, err)
			}
			results[i] = result{game: gameMetric, moves: moveMetrics}
			log.Info().Msgf("completed game %d of %d: agent=%d score=%d ticks=%d",
				i+1, len(jobs), j.config.ID, gameMetric.Score, gameMetric.TotalTicks)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Msgf("completed %s experiment", name)

	gameRecords := make([]metrics.GameRecord, 0, len(jobs))
	moveRecords := []metrics.MoveRecord{}
	for i, j := range jobs {
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Agent:      j.config.ID,
			GameMetric: results[i].game,
		})
		for _, mm := range results[i].moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i + 1,
				Agent:      j.config.ID,
				MoveMetric: mm,
			})
		}
	}

	if err := store(name, opts.Dir, configs, gameRecords, moveRecords); err != nil {
		return nil, err
	}

	summaries := make([]metrics.Summary, 0, len(configs))
	for _, config := range configs {
		s := metrics.Summarize(config.ID, gameRecords, moveRecords)
		summaries = append(summaries, s)
		log.Info().
			Int("agent", config.ID).
			Str("strategy", config.Strategy).
			Int("depth", config.Depth).
			Float64("score_mean", s.Score.Mean).
			Float64("score_std", s.Score.StdDev).
			Float64("ticks_mean", s.Ticks.Mean).
			Float64("search_ms_mean", s.SearchMs.Mean).
			Float64("timeout_rate", s.TimeoutRate).
			Int("cleared", s.Cleared).
			Msg("agent summary")
	}
	return summaries, nil
}

func runGame(ctx context.Context, opts Options, maze *game.Maze, j job) (metrics.GameMetric, []metrics.MoveMetric, error) {
	config := opts.Search
	config.Strategy = j.config.Strategy
	config.Depth = j.config.Depth
	config.Duration = j.config.Duration
	config.Seed = j.seed

	a := agent.NewEvaluationAgent(searcher.NewSearcher(searcher.WithConfig(config), searcher.WithMetrics()))
	arena := game.NewArena(maze, game.NewStandardRules())
	e := engine.LocalEngine(arena, a, engine.NewGhostPolicy(opts.Aggression, j.seed), j.config.Duration, opts.MaxTicks)
	e.Seed = j.seed

	gameMetric, moveMetrics, err := e.Run(ctx)
	gameMetric.Seed = j.seed
	return gameMetric, moveMetrics, err
}

func store(name, dir string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(games); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	if err := writer.WriteMoveParquet(moves); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}
