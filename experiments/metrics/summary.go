package metrics

import (
	"gonum.org/v1/gonum/stat"
)

type Stat struct {
	Mean   float64
	StdDev float64
}

// Summary aggregates the games and moves of one agent.
type Summary struct {
	Agent       int
	Games       int
	Cleared     int
	Score       Stat
	Lives       Stat
	Ticks       Stat
	SearchMs    Stat // Per move wall time in milliseconds
	Clones      Stat // Per move
	TimeoutRate float64
}

func Summarize(agent int, games []GameRecord, moves []MoveRecord) Summary {
	var scores, lives, ticks, searchMs, clones []float64
	summary := Summary{Agent: agent}

	for _, record := range games {
		if record.Agent != agent {
			continue
		}
		summary.Games++
		if record.Cleared {
			summary.Cleared++
		}
		scores = append(scores, float64(record.Score))
		lives = append(lives, float64(record.Lives))
		ticks = append(ticks, float64(record.TotalTicks))
	}

	timeouts := 0
	for _, record := range moves {
		if record.Agent != agent {
			continue
		}
		if record.TimedOut {
			timeouts++
		}
		searchMs = append(searchMs, float64(record.Duration.Microseconds())/1000)
		clones = append(clones, float64(record.Clones))
	}
	if len(searchMs) > 0 {
		summary.TimeoutRate = float64(timeouts) / float64(len(searchMs))
	}

	summary.Score = describe(scores)
	summary.Lives = describe(lives)
	summary.Ticks = describe(ticks)
	summary.SearchMs = describe(searchMs)
	summary.Clones = describe(clones)
	return summary
}

func describe(x []float64) Stat {
	switch len(x) {
	case 0:
		return Stat{}
	case 1:
		return Stat{Mean: x[0]}
	}
	mean, std := stat.MeanStdDev(x, nil)
	return Stat{Mean: mean, StdDev: std}
}
