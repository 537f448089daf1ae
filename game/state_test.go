package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestArena(t *testing.T, layout string, ghosts int) *Arena {
	t.Helper()
	m, err := ParseMaze(layout)
	require.NoError(t, err)
	rules := NewStandardRules()
	rules.Ghosts = ghosts
	rules.LairStagger = 0
	return NewArena(m, rules)
}

func TestArenaAdvance(t *testing.T) {
	t.Run("eating a pill", func(t *testing.T) {
		a := newTestArena(t, "#######\n#P..oG#\n#######", 0)

		err := a.Advance(Right, nil)

		require.NoError(t, err)
		require.Equal(t, a.Maze.At(1, 2), a.AgentPosition(), "Agent should move right")
		require.Equal(t, 10, a.Score(), "Pill should score")
		require.Len(t, a.Pills(), 1, "One pill should remain")
		require.Len(t, a.PowerPills(), 1, "Power pill should remain")
	})

	t.Run("ignoring an illegal move", func(t *testing.T) {
		a := newTestArena(t, "#######\n#P..oG#\n#######", 0)

		err := a.Advance(Up, nil)

		require.NoError(t, err)
		require.Equal(t, a.Maze.AgentStart, a.AgentPosition(), "Agent should not move into a wall")
		require.Equal(t, 1, a.Tick(), "Tick should still advance")
	})

	t.Run("faulting on a wrong number of opponent actions", func(t *testing.T) {
		a := newTestArena(t, "#######\n#P..oG#\n#######", 0)

		err := a.Advance(Right, []Action{Left})

		require.ErrorIs(t, err, ErrOpponentCount)
	})

	t.Run("copies do not alias", func(t *testing.T) {
		a := newTestArena(t, "#######\n#P..oG#\n#######", 0)

		c := a.Copy()
		require.NoError(t, c.Advance(Right, nil))

		require.Equal(t, 0, a.Score(), "Source score should not change")
		require.Len(t, a.Pills(), 2, "Source pills should not change")
		require.Equal(t, 10, c.Score(), "Copy should advance")
	})

	t.Run("losing a life to a ghost", func(t *testing.T) {
		a := newTestArena(t, "######\n#P.G.#\n######", 1)

		require.NoError(t, a.Advance(Right, []Action{Left}))
		require.Equal(t, a.Maze.LairExit, a.OpponentPosition(0), "Ghost should leave the lair")
		require.Equal(t, 3, a.Lives(), "No contact yet")

		require.NoError(t, a.Advance(Right, []Action{Left}))
		require.Equal(t, 2, a.Lives(), "Contact should cost a life")
		require.Equal(t, a.Maze.AgentStart, a.AgentPosition(), "Agent should respawn")
		require.Equal(t, NoPosition, a.OpponentPosition(0), "Ghost should return to the lair")
	})

	t.Run("eating an edible ghost", func(t *testing.T) {
		a := newTestArena(t, "######\n#PoG.#\n######", 1)

		require.NoError(t, a.Advance(Right, []Action{Left}))
		require.True(t, a.OpponentEdible(0), "Power pill should make the ghost edible")

		require.NoError(t, a.Advance(Right, []Action{Left}))
		require.Equal(t, 50+200, a.Score(), "Power pill and ghost should score")
		require.Equal(t, 3, a.Lives(), "Eating a ghost costs no life")
		require.Greater(t, a.OpponentLairTime(0), 0, "Eaten ghost should be in the lair")
		require.Equal(t, NoPosition, a.OpponentPosition(0), "Eaten ghost should be off board")
	})

	t.Run("clearing the maze ends the game", func(t *testing.T) {
		a := newTestArena(t, "#####\n#P.G#\n#####", 0)

		require.NoError(t, a.Advance(Right, nil))

		require.True(t, a.Cleared(), "No pill should remain")
		require.True(t, a.GameOver(), "Cleared maze ends the game")
		require.NoError(t, a.Advance(Left, nil))
		require.Equal(t, 1, a.Tick(), "Finished games do not advance")
	})
}
