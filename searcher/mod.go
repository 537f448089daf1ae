package searcher

import (
	"errors"
	"math"
	"pacagent/game"
	"sort"
)

const (
	MinScore int64 = math.MinInt64 // Pruned branch, never chosen
	MaxScore int64 = math.MaxInt64
)

const (
	DepthFirst         = "dfs"
	BreadthFirst       = "bfs"
	IterativeDeepening = "iterative-deepening"
	AlphaBeta          = "alphabeta"
	AStar              = "astar"
	HillClimbing       = "hill-climbing"
	Annealing          = "annealing"
	Genetic            = "genetic"
	Evolution          = "evolution"
	KNearest           = "knn"
)

var ErrUnknownStrategy = errors.New("unknown search strategy")

type strategy func(s *search) (game.Action, error)

var strategies = map[string]strategy{
	DepthFirst:         depthFirst,
	BreadthFirst:       breadthFirst,
	IterativeDeepening: iterativeDeepening,
	AlphaBeta:          alphaBeta,
	AStar:              aStar,
	HillClimbing:       hillClimbing,
	Annealing:          annealing,
	Genetic:            genetic,
	Evolution:          evolution,
	KNearest:           kNearest,
}

// Strategies lists every registered strategy name in sorted order.
func Strategies() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// bestAction picks the branch with the largest value, earliest in game.Branches on ties.
// Pruned branches are skipped and Neutral is returned when every branch is pruned.
func bestAction(values [4]int64) game.Action {
	best, bestValue := game.Neutral, MinScore
	for i, value := range values {
		if value != MinScore && (best == game.Neutral || value > bestValue) {
			best, bestValue = game.Branches[i], value
		}
	}
	return best
}

func branchIndex(action game.Action) int {
	for i, branch := range game.Branches {
		if branch == action {
			return i
		}
	}
	return -1
}
