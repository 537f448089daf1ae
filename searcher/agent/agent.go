package agent

import (
	"context"
	"pacagent/experiments/metrics"
	"pacagent/game"
)

type Agent interface {
	// FindMove returns the action to play this tick and performance metrics (if collected) from the search
	FindMove(ctx context.Context, state game.State, predicted []game.Action) (game.Action, metrics.SearchMetric, error)
}

// Seeder is implemented by agents whose random choices can be replayed tick by tick.
type Seeder interface {
	Seed(seed uint64)
}
