package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMaze(t *testing.T) {
	t.Run("parsing the default layout", func(t *testing.T) {
		m := CreateMaze()

		require.Equal(t, 19, m.Width, "Width should match the layout")
		require.Equal(t, 17, m.Height, "Height should match the layout")
		require.Len(t, m.PowerPills, 4, "Layout has four power pills")
		require.NotEqual(t, NoPosition, m.AgentStart, "Agent start should be set")
		require.NotEqual(t, NoPosition, m.LairExit, "Lair exit should be set")
	})

	t.Run("every cell is reachable from the agent start", func(t *testing.T) {
		m := CreateMaze()

		for _, cell := range m.Cells {
			require.GreaterOrEqual(t, m.Distance(m.AgentStart, cell.ID), 0,
				"Cell (%d,%d) should be reachable", cell.Row, cell.Col)
		}
	})

	t.Run("wrapping through the tunnel", func(t *testing.T) {
		m := CreateMaze()
		west, east := m.At(7, 0), m.At(7, 18)

		require.Equal(t, east, m.Neighbor(west, Left), "Moving left off the west edge should wrap east")
		require.Equal(t, 1, m.Distance(west, east), "Tunnel ends should be adjacent")
	})

	t.Run("legal actions follow walls", func(t *testing.T) {
		m, err := ParseMaze("#####\n#P.G#\n#####")
		require.NoError(t, err)

		require.Equal(t, []Action{Right}, m.LegalActions(m.AgentStart), "Only right is open from the start")
		require.Equal(t, NoPosition, m.Neighbor(m.AgentStart, Up), "Up runs into a wall")
		require.Equal(t, 2, m.Distance(m.AgentStart, m.LairExit), "Lair exit is two cells away")
		require.Equal(t, -1, m.Distance(NoPosition, m.LairExit), "Off board positions have no distance")
	})

	t.Run("rejecting invalid layouts", func(t *testing.T) {
		for name, layout := range map[string]string{
			"uneven rows":       "#####\n#P.G\n#####",
			"missing start":     "#####\n#..G#\n#####",
			"missing lair exit": "#####\n#P..#\n#####",
			"unknown tile":      "#####\n#PxG#\n#####",
			"empty":             "",
		} {
			_, err := ParseMaze(layout)
			require.ErrorIs(t, err, ErrInvalidLayout, "Layout %q should be rejected", name)
		}
	})
}
