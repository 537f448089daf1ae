package searcher

import (
	"context"
	"fmt"
	"pacagent/experiments/metrics"
	"pacagent/game"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(s *Searcher)

// Searcher picks one action per tick with a single configured strategy.
// It is not safe for concurrent use.
type Searcher struct {
	config   Config
	evaluate game.Evaluate
	metrics  metrics.Collector
	rng      *rand.Rand
}

func WithConfig(config Config) Option {
	return func(s *Searcher) {
		s.config = config
	}
}

func WithStrategy(name string) Option {
	return func(s *Searcher) {
		s.config.Strategy = name
	}
}

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.config.Depth = depth
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(s *Searcher) {
		if duration > 0 {
			s.config.Duration = duration
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.config.Seed = seed
	}
}

func WithWeights(weights game.Weights) Option {
	return func(s *Searcher) {
		s.config.Weights = weights
	}
}

// WithEvaluationFn replaces the weighted evaluation built from the config.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		config:  DefaultConfig(),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if err := s.config.Validate(); err != nil {
		panic(fmt.Sprintf("invalid search config: %v", err))
	}
	if s.evaluate == nil {
		s.evaluate = game.NewEvaluator(s.config.Weights)
	}
	s.rng = rand.New(rand.NewSource(s.config.Seed))
	return s
}

func (s *Searcher) Config() Config {
	return s.config
}

// Seed resets the random source shared by the stochastic strategies. Reseeding before a
// search makes its result independent of earlier searches.
func (s *Searcher) Seed(seed uint64) {
	s.rng.Seed(seed)
}

// FindMove searches from state, assuming every opponent repeats its predicted action for the
// whole horizon. It returns Neutral when no branch is viable. The search stops at the first
// expansion after the configured duration or the context deadline and returns its best so far.
// An error from the forward model aborts the tick with Neutral.
func (s *Searcher) FindMove(ctx context.Context, state game.State, predicted []game.Action) (game.Action, metrics.SearchMetric, error) {
	if len(predicted) != state.Opponents() {
		return game.Neutral, metrics.SearchMetric{Strategy: s.config.Strategy, Depth: s.config.Depth},
			fmt.Errorf("%w: expected %d, got %d", game.ErrOpponentCount, state.Opponents(), len(predicted))
	}

	start := time.Now()
	run := strategies[s.config.Strategy]
	current := &search{
		root:       state,
		predicted:  predicted,
		config:     s.config,
		depth:      s.config.Depth,
		evaluateFn: s.evaluate,
		rng:        s.rng,
		budget:     newBudget(ctx, s.config.Duration),
		metrics:    s.metrics,
		branches:   [4]int64{MinScore, MinScore, MinScore, MinScore},
	}

	s.metrics.Start()
	action, err := run(current)
	metric := s.metrics.Complete()
	metric.Strategy = s.config.Strategy
	metric.Depth = s.config.Depth
	metric.TimedOut = current.budget.stopped
	metric.Branches = current.branches
	if err != nil {
		metric.Action = game.Neutral
		return game.Neutral, metric, fmt.Errorf("failed to search with %s: %w", s.config.Strategy, err)
	}
	metric.Action = action

	if metric.TimedOut {
		log.Warn().
			Str("strategy", s.config.Strategy).
			Dur("budget", s.config.Duration).
			Str("action", action.String()).
			Msg("search timed out, using best so far")
	}
	log.Debug().
		Str("strategy", s.config.Strategy).
		Str("action", action.String()).
		Ints64("branches", current.branches[:]).
		Dur("elapsed", time.Since(start)).
		Msg("found move")
	return action, metric, nil
}

// search holds everything one FindMove call shares between its expansions.
type search struct {
	root       game.State
	predicted  []game.Action
	config     Config
	depth      int
	evaluateFn game.Evaluate
	rng        *rand.Rand
	budget     *budget
	metrics    metrics.Collector
	branches   [4]int64 // Root branch values for diagnostics, in game.Branches order
}

// checkpoint marks an expansion boundary and reports whether the search must stop.
func (s *search) checkpoint() bool {
	s.metrics.AddNode()
	return s.budget.Stop()
}

// advance clones state and plays action on the copy. It reports false without
// simulating when action is not legal from state.
func (s *search) advance(state game.State, action game.Action) (game.State, bool, error) {
	if !game.IsLegal(state, action) {
		return nil, false, nil
	}
	next := state.Copy()
	s.metrics.AddClone()
	if err := next.Advance(action, s.predicted); err != nil {
		return nil, false, fmt.Errorf("failed to advance %s: %w", action, err)
	}
	return next, true, nil
}

func (s *search) evaluate(state game.State) int64 {
	s.metrics.AddEvaluation()
	return s.evaluateFn(state)
}

// movable reports whether the agent has any legal action in state.
func movable(state game.State) bool {
	for _, action := range game.Branches {
		if game.IsLegal(state, action) {
			return true
		}
	}
	return false
}
