package experiments

import (
	"context"
	"pacagent/experiments/metrics"
	"time"
)

var budgets = []time.Duration{
	5 * time.Millisecond,
	10 * time.Millisecond,
	20 * time.Millisecond,
	40 * time.Millisecond,
	80 * time.Millisecond,
}

// RunBudgetExperiment plays the configured strategy and depth under growing
// per tick budgets, showing how much of the tree each budget affords.
func RunBudgetExperiment(ctx context.Context, opts Options) ([]metrics.Summary, error) {
	configs := make([]metrics.AgentConfig, 0, len(budgets))
	for i, budget := range budgets {
		configs = append(configs, metrics.AgentConfig{
			ID:       i + 1,
			Strategy: opts.Search.Strategy,
			Depth:    opts.Search.Depth,
			Duration: budget,
			Seed:     opts.Seed,
		})
	}
	return runExperiment(ctx, "budget", opts, configs)
}
