package agent

import (
	"context"
	"pacagent/experiments/metrics"
	"pacagent/game"
	"pacagent/searcher"
)

type evaluationAgent struct {
	searcher *searcher.Searcher
}

// NewEvaluationAgent returns an agent that always plays the searcher's choice.
func NewEvaluationAgent(s *searcher.Searcher) Agent {
	return evaluationAgent{searcher: s}
}

func (a evaluationAgent) Seed(seed uint64) {
	a.searcher.Seed(seed)
}

func (a evaluationAgent) FindMove(ctx context.Context, state game.State, predicted []game.Action) (game.Action, metrics.SearchMetric, error) {
	return a.searcher.FindMove(ctx, state, predicted)
}
