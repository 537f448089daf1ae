package agent

import (
	"context"
	"math"
	"pacagent/experiments/metrics"
	"pacagent/game"
	"pacagent/searcher"

	"golang.org/x/exp/rand"
)

type exploringAgent struct {
	searcher    *searcher.Searcher
	temperature float64 // In evaluation units
	rng         *rand.Rand
}

// NewExploringAgent returns an agent that samples root branches by a softmax over their
// values, for varied self-play. It plays the searcher's choice when no branch has a value.
func NewExploringAgent(s *searcher.Searcher, temperature float64, seed uint64) Agent {
	return &exploringAgent{
		searcher:    s,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// Seed reseeds both the search and the sampling.
func (a *exploringAgent) Seed(seed uint64) {
	a.searcher.Seed(seed)
	a.rng.Seed(seed)
}

func (a *exploringAgent) FindMove(ctx context.Context, state game.State, predicted []game.Action) (game.Action, metrics.SearchMetric, error) {
	action, metric, err := a.searcher.FindMove(ctx, state, predicted)
	if err != nil || a.temperature <= 0 {
		return action, metric, err
	}

	policy := softmax(metric.Branches, a.temperature)
	if policy == nil {
		return action, metric, nil
	}
	metric.Action = sample(policy, a.rng.Float64())
	return metric.Action, metric, nil
}

// softmax turns branch values into probabilities in game.Branches order, or nil when
// every branch is pruned.
func softmax(values [4]int64, temperature float64) []float64 {
	best := searcher.MinScore
	for _, value := range values {
		best = max(best, value)
	}
	if best == searcher.MinScore {
		return nil
	}

	sum := 0.0
	policy := make([]float64, len(values))
	for i, value := range values {
		if value == searcher.MinScore {
			continue
		}
		policy[i] = math.Exp(float64(value-best) / temperature)
		sum += policy[i]
	}
	// Normalize
	for i := range policy {
		policy[i] /= sum
	}
	return policy
}

func sample(policy []float64, sampled float64) game.Action {
	cumulative := 0.0
	last := game.Neutral
	for i, prob := range policy {
		if prob == 0 {
			continue
		}
		last = game.Branches[i]
		cumulative += prob
		if sampled < cumulative {
			return last
		}
	}
	return last // Fallback in case of rounding errors
}
