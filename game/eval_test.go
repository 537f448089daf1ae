package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type stubGhost struct {
	pos    Position
	edible bool
	lair   int
}

// stubState places everything on a line so distances are absolute differences.
type stubState struct {
	agent  Position
	ghosts []stubGhost
	pills  []Position
	power  []Position
	score  int
	lives  int
}

func (s *stubState) Copy() State {
	c := *s
	return &c
}

func (s *stubState) Advance(Action, []Action) error { return nil }
func (s *stubState) AgentPosition() Position        { return s.agent }
func (s *stubState) Opponents() int                 { return len(s.ghosts) }
func (s *stubState) OpponentPosition(i int) Position {
	return s.ghosts[i].pos
}
func (s *stubState) OpponentEdible(i int) bool  { return s.ghosts[i].edible }
func (s *stubState) OpponentLairTime(i int) int { return s.ghosts[i].lair }
func (s *stubState) Pills() []Position          { return s.pills }
func (s *stubState) PowerPills() []Position     { return s.power }
func (s *stubState) Score() int                 { return s.score }
func (s *stubState) Lives() int                 { return s.lives }

func (s *stubState) LegalActions(Position) []Action { return Branches[:] }

func (s *stubState) Distance(from, to Position) int {
	if from == NoPosition || to == NoPosition {
		return -1
	}
	if from > to {
		return int(from - to)
	}
	return int(to - from)
}

func TestEvaluateState(t *testing.T) {
	t.Run("far threats beat near threats", func(t *testing.T) {
		near := &stubState{ghosts: []stubGhost{{pos: 5}, {pos: 8}}, pills: []Position{3}, lives: 3}
		far := &stubState{ghosts: []stubGhost{{pos: 20}, {pos: 25}}, pills: []Position{3}, lives: 3}

		require.Less(t, EvaluateState(near), EvaluateState(far), "Distant ghosts should score higher")
		require.Equal(t, int64(6_500), DefaultWeights().proximityScore(near), "Two close threats are averaged")
		require.Equal(t, int64(25_000), DefaultWeights().proximityScore(far), "No threat grants the margin")
	})

	t.Run("evaluation is deterministic", func(t *testing.T) {
		s := &stubState{ghosts: []stubGhost{{pos: 4}}, pills: []Position{9}, score: 70, lives: 2}

		require.Equal(t, EvaluateState(s), EvaluateState(s.Copy()), "Same state should give same value")
	})

	t.Run("lives dominate score", func(t *testing.T) {
		more := &stubState{ghosts: []stubGhost{{pos: 1}}, lives: 3}
		richer := &stubState{score: 5_000, lives: 2}

		require.Greater(t, EvaluateState(more), EvaluateState(richer), "A life should outweigh any score")
	})

	t.Run("score dominates proximity", func(t *testing.T) {
		risky := &stubState{ghosts: []stubGhost{{pos: 1}}, score: 110, lives: 3}
		safe := &stubState{score: 100, lives: 3}

		require.Greater(t, EvaluateState(risky), EvaluateState(safe), "A pill should outweigh ghost distance")
	})

	t.Run("ignoring ghosts in the lair", func(t *testing.T) {
		lair := &stubState{ghosts: []stubGhost{{pos: 1, lair: 5}}, lives: 3}
		empty := &stubState{lives: 3}

		require.Equal(t, EvaluateState(empty), EvaluateState(lair), "Lair ghosts are no threat")
	})

	t.Run("ignoring ghosts off the board", func(t *testing.T) {
		off := &stubState{ghosts: []stubGhost{{pos: NoPosition}}, lives: 3}
		empty := &stubState{lives: 3}

		require.Equal(t, EvaluateState(empty), EvaluateState(off), "Off board ghosts are no threat")
	})

	t.Run("approaching the nearest pill", func(t *testing.T) {
		nearby := &stubState{pills: []Position{2, 30}, lives: 3}
		distant := &stubState{pills: []Position{12, 30}, lives: 3}
		power := &stubState{pills: []Position{12}, power: []Position{1}, lives: 3}

		require.Greater(t, EvaluateState(nearby), EvaluateState(distant), "Closer pills should score higher")
		require.Greater(t, EvaluateState(power), EvaluateState(nearby), "Power pills count as objectives")
	})

	t.Run("chasing edible ghosts when enabled", func(t *testing.T) {
		w := DefaultWeights()
		w.ChaseEdible = true
		evaluate := NewEvaluator(w)
		near := &stubState{ghosts: []stubGhost{{pos: 10, edible: true}}, lives: 3}
		far := &stubState{ghosts: []stubGhost{{pos: 50, edible: true}}, lives: 3}

		require.Greater(t, evaluate(near), evaluate(far), "Nearer edible ghosts should score higher")
		require.Equal(t, EvaluateState(near), EvaluateState(far), "Edible ghosts are ignored by default")
	})
}

func TestEvaluateArena(t *testing.T) {
	t.Run("copies evaluate the same", func(t *testing.T) {
		a := NewArena(CreateMaze(), NewStandardRules())
		c := a.Copy()

		require.Equal(t, EvaluateState(a), EvaluateState(c), "Copy should evaluate the same as its source")
		require.NoError(t, c.Advance(Left, make([]Action, c.Opponents())))
		require.Equal(t, EvaluateState(a), EvaluateState(a.Copy()), "Advancing a copy should not change the source")
	})
}

func TestAction(t *testing.T) {
	t.Run("opposites", func(t *testing.T) {
		for _, a := range Branches {
			require.Equal(t, a, a.Opposite().Opposite(), "Opposite should be an involution")
		}
		require.Equal(t, Neutral, Neutral.Opposite(), "Neutral has no opposite")
	})

	t.Run("neutral is never legal", func(t *testing.T) {
		s := &stubState{lives: 3}

		require.False(t, IsLegal(s, Neutral), "Neutral is not a move")
		require.True(t, IsLegal(s, Left), "Stub allows every branch")
	})
}
