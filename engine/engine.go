package engine

import (
	"context"
	"pacagent/experiments/metrics"
)

const MaxTicks = 10000

type Engine interface {
	// Run plays until the game is over or a max number of ticks is reached
	Run(ctx context.Context) (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
