package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"pacagent/game"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting search work", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		c.AddNode()
		c.AddNode()
		c.AddClone()
		c.AddEvaluation()

		metric := c.Complete()

		require.Equal(t, 2, metric.Nodes, "Nodes should be counted")
		require.Equal(t, 1, metric.Clones, "Clones should be counted")
		require.Equal(t, 1, metric.Evaluations, "Evaluations should be counted")
		require.GreaterOrEqual(t, metric.Duration, time.Duration(0), "Duration should be measured")
	})

	t.Run("restarting resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		c.AddClone()
		c.Start()

		require.Zero(t, c.Complete().Clones, "Start should reset counters")
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start()
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete(), "Dummy should return an empty metric")
	})
}

func TestSummarize(t *testing.T) {
	games := []GameRecord{
		{ID: 1, Agent: 1, GameMetric: GameMetric{Score: 100, Lives: 0, TotalTicks: 50}},
		{ID: 2, Agent: 1, GameMetric: GameMetric{Score: 300, Lives: 2, TotalTicks: 150, Cleared: true}},
		{ID: 3, Agent: 2, GameMetric: GameMetric{Score: 999}},
	}
	moves := []MoveRecord{
		{Game: 1, Agent: 1, MoveMetric: MoveMetric{SearchMetric: SearchMetric{Duration: 2 * time.Millisecond, Clones: 10, TimedOut: true}}},
		{Game: 2, Agent: 1, MoveMetric: MoveMetric{SearchMetric: SearchMetric{Duration: 4 * time.Millisecond, Clones: 30}}},
		{Game: 3, Agent: 2, MoveMetric: MoveMetric{SearchMetric: SearchMetric{Clones: 1000}}},
	}

	t.Run("aggregating one agent", func(t *testing.T) {
		s := Summarize(1, games, moves)

		require.Equal(t, 2, s.Games, "Only the agent's games should count")
		require.Equal(t, 1, s.Cleared, "One game cleared the maze")
		require.InDelta(t, 200.0, s.Score.Mean, 1e-9, "Mean score")
		require.InDelta(t, 141.421356, s.Score.StdDev, 1e-6, "Sample standard deviation of score")
		require.InDelta(t, 3.0, s.SearchMs.Mean, 1e-9, "Mean search time in milliseconds")
		require.InDelta(t, 20.0, s.Clones.Mean, 1e-9, "Mean clones per move")
		require.InDelta(t, 0.5, s.TimeoutRate, 1e-9, "Half the moves timed out")
	})

	t.Run("aggregating an unknown agent", func(t *testing.T) {
		s := Summarize(7, games, moves)

		require.Zero(t, s.Games, "No games for an unknown agent")
		require.Equal(t, Stat{}, s.Score, "Empty stats should be zero")
	})
}

func TestWriter(t *testing.T) {
	records := []MoveRecord{
		{Game: 1, Agent: 2, MoveMetric: MoveMetric{Tick: 3, Score: 40, Lives: 3, SearchMetric: SearchMetric{
			Strategy: "dfs",
			Depth:    5,
			Duration: time.Millisecond,
			Clones:   12,
			Action:   game.Left,
			Branches: [4]int64{10, 20, -30, 40},
		}}},
	}

	t.Run("writing csv files", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "unit")
		require.NoError(t, err)

		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 2, Strategy: "dfs", Depth: 5, Seed: 9}}))
		require.NoError(t, w.WriteGameRecords([]GameRecord{{ID: 1, Agent: 2}}))
		require.NoError(t, w.WriteMoveRecords(records))

		f, err := os.Open(filepath.Join(w.Dir(), "move_records.csv"))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2, "Header and one row")
		require.Equal(t, "left", rows[1][4], "Action should be written by name")
	})

	t.Run("writing parquet files", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "unit")
		require.NoError(t, err)

		require.NoError(t, w.WriteMoveParquet(records))

		rows, err := ReadMoveRows(filepath.Join(w.Dir(), "move_records.parquet"))
		require.NoError(t, err)
		require.Len(t, rows, 1, "One row should be stored")
		require.Equal(t, "dfs", rows[0].Strategy, "Strategy should be stored")
		require.Equal(t, []int64{10, 20, -30, 40}, rows[0].Branches, "Branch values should be stored")
		require.Equal(t, int32(12), rows[0].Clones, "Clones should be stored")
	})
}
