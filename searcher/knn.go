package searcher

import (
	"math"
	"pacagent/game"
)

// kNearest scatters random points of each legal action's class over a square around the
// origin and picks the class with the most points within a radius of depth.
func kNearest(s *search) (game.Action, error) {
	radius := float64(s.depth)
	for k, action := range game.Branches {
		if s.checkpoint() {
			break
		}
		if !game.IsLegal(s.root, action) {
			continue
		}
		s.branches[k] = 0
		for range s.config.Points {
			if math.Hypot(s.coordinate(), s.coordinate()) < radius {
				s.branches[k]++
			}
		}
	}
	return bestAction(s.branches), nil
}

// coordinate draws from 101 evenly spaced values in [-Extent, Extent].
func (s *search) coordinate() float64 {
	return float64(s.rng.Intn(101)-50) / 50 * s.config.Extent
}
