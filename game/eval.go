package game

import "math"

// Weights tunes the evaluation. The magnitudes keep a strict precedence within realistic game
// ranges: lives > score > ghost proximity > distance to the nearest pill.
type Weights struct {
	ThreatThreshold int   `yaml:"threat_threshold"` // ghosts closer than this are a threat
	NoThreatMargin  int   `yaml:"no_threat_margin"` // bonus distance granted when no ghost is a threat
	ThreatWeight    int64 `yaml:"threat_weight"`
	PairThreats     bool  `yaml:"pair_threats"` // average the two nearest threats when both are close

	ChaseEdible     bool  `yaml:"chase_edible"`
	EdibleThreshold int   `yaml:"edible_threshold"`
	EdibleWeight    int64 `yaml:"edible_weight"`

	ScoreWeight       int64 `yaml:"score_weight"`
	LivesWeight       int64 `yaml:"lives_weight"`
	ObjectiveHeadroom int64 `yaml:"objective_headroom"`
}

// DefaultWeights are tuned to clear the default maze. Each weight dwarfs the range of the
// terms below it.
func DefaultWeights() Weights {
	return Weights{
		ThreatThreshold:   15,
		NoThreatMargin:    10,
		ThreatWeight:      1_000,
		PairThreats:       true,
		ChaseEdible:       false,
		EdibleThreshold:   100,
		EdibleWeight:      50,
		ScoreWeight:       100_000,
		LivesWeight:       10_000_000_000,
		ObjectiveHeadroom: 200,
	}
}

var defaultWeights = DefaultWeights()

// EvaluateState scores a state with DefaultWeights.
func EvaluateState(s State) int64 {
	return defaultWeights.Evaluate(s)
}

// NewEvaluator binds weights into an Evaluate function.
func NewEvaluator(w Weights) Evaluate {
	return w.Evaluate
}

// Evaluate is a pure function of the snapshot:
// threat term + score*ScoreWeight + lives*LivesWeight + (ObjectiveHeadroom - pill distance)
func (w Weights) Evaluate(s State) int64 {
	return w.proximityScore(s) +
		int64(s.Score())*w.ScoreWeight +
		int64(s.Lives())*w.LivesWeight +
		(w.ObjectiveHeadroom - int64(nearestPillDistance(s)))
}

func (w Weights) proximityScore(s State) int64 {
	agent := s.AgentPosition()
	nearest, second, nearestEdible := math.MaxInt, math.MaxInt, math.MaxInt

	for i := 0; i < s.Opponents(); i++ {
		// Ghosts in the lair are not on the board yet
		if s.OpponentLairTime(i) > 0 {
			continue
		}
		distance := s.Distance(agent, s.OpponentPosition(i))
		if distance < 0 {
			continue
		}

		if s.OpponentEdible(i) {
			nearestEdible = min(nearestEdible, distance)
			continue
		}
		if distance < nearest {
			second = nearest
			nearest = distance
		} else if distance < second {
			second = distance
		}
	}

	var distance float64
	if nearest < w.ThreatThreshold {
		if w.PairThreats && second < w.ThreatThreshold {
			distance = float64(nearest+second) / 2
		} else {
			distance = float64(nearest)
		}
	} else {
		// Flat reward above any in-threshold value, so hovering at the threshold never pays
		distance = float64(w.ThreatThreshold + w.NoThreatMargin)
	}
	score := int64(distance * float64(w.ThreatWeight))

	if w.ChaseEdible && nearestEdible < w.EdibleThreshold {
		score += int64(w.EdibleThreshold-nearestEdible) * w.EdibleWeight
	}
	return score
}

// nearestPillDistance merges ordinary and power pills into one candidate set.
// Returns 0 when no pill is left or reachable.
func nearestPillDistance(s State) int {
	agent := s.AgentPosition()
	best := -1
	for _, pills := range [][]Position{s.Pills(), s.PowerPills()} {
		for _, pill := range pills {
			d := s.Distance(agent, pill)
			if d >= 0 && (best < 0 || d < best) {
				best = d
			}
		}
	}
	return max(best, 0)
}
