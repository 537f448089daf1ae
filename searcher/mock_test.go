package searcher

import (
	"context"
	"errors"
	"pacagent/experiments/metrics"
	"pacagent/game"
	"slices"

	"golang.org/x/exp/rand"
)

var errCorrupt = errors.New("corrupt snapshot")

// mockState moves the agent on an open grid and records the actions played.
type mockState struct {
	played []game.Action
	legal  func(played []game.Action) []game.Action // nil allows every branch
	goal   game.Position                            // Pills run out once the agent stands here
	fault  bool
}

func (m *mockState) Copy() game.State {
	c := *m
	c.played = slices.Clone(m.played)
	return &c
}

func (m *mockState) Advance(action game.Action, _ []game.Action) error {
	if m.fault {
		return errCorrupt
	}
	m.played = append(m.played, action)
	return nil
}

func (m *mockState) AgentPosition() game.Position {
	x, y := 0, 0
	for _, action := range m.played {
		switch action {
		case game.Left:
			x--
		case game.Right:
			x++
		case game.Up:
			y--
		case game.Down:
			y++
		}
	}
	return gridPosition(x, y)
}

func gridPosition(x, y int) game.Position {
	return game.Position((y+100)*1000 + x + 100)
}

func (m *mockState) Opponents() int                     { return 0 }
func (m *mockState) OpponentPosition(int) game.Position { return game.NoPosition }
func (m *mockState) OpponentEdible(int) bool            { return false }
func (m *mockState) OpponentLairTime(int) int           { return 0 }
func (m *mockState) PowerPills() []game.Position        { return nil }
func (m *mockState) Score() int                         { return 0 }
func (m *mockState) Lives() int                         { return 1 }

func (m *mockState) Distance(game.Position, game.Position) int { return -1 }

func (m *mockState) Pills() []game.Position {
	if m.goal != 0 && m.AgentPosition() == m.goal {
		return nil
	}
	return []game.Position{m.goal}
}

func (m *mockState) LegalActions(game.Position) []game.Action {
	if m.legal == nil {
		return game.Branches[:]
	}
	return m.legal(m.played)
}

// pathHash is FNV-1a over the actions played, salted to vary the landscape.
func pathHash(played []game.Action, salt uint64) uint64 {
	h := uint64(14695981039346656037) ^ salt
	for _, action := range played {
		h ^= uint64(action)
		h *= 1099511628211
	}
	return h
}

func hashEvaluator(salt uint64) game.Evaluate {
	return func(s game.State) int64 {
		return int64(pathHash(s.(*mockState).played, salt) % 1000)
	}
}

// sparseLegal allows roughly three of four actions, sometimes none.
func sparseLegal(played []game.Action) []game.Action {
	h := pathHash(played, 7)
	var legal []game.Action
	for i, action := range game.Branches {
		if (h>>(i*3))%4 != 0 {
			legal = append(legal, action)
		}
	}
	return legal
}

func scriptedEvaluator(scores map[string]int64) game.Evaluate {
	return func(s game.State) int64 {
		return scores[pathKey(s.(*mockState).played)]
	}
}

func pathKey(played []game.Action) string {
	key := ""
	for _, action := range played {
		key += action.String()[:1]
	}
	return key
}

func newTestSearch(root game.State, config Config, evaluate game.Evaluate) *search {
	return &search{
		root:       root,
		config:     config,
		depth:      config.Depth,
		evaluateFn: evaluate,
		rng:        rand.New(rand.NewSource(config.Seed)),
		budget:     newBudget(context.Background(), 0),
		metrics:    metrics.NewDummyCollector(),
		branches:   [4]int64{MinScore, MinScore, MinScore, MinScore},
	}
}
