package searcher

import (
	"math"
	"pacagent/game"
)

// hillClimbing walks down the tree to the best child while it strictly improves on the
// current node, and returns the root action of the node it stops at.
func hillClimbing(s *search) (game.Action, error) {
	t := newTree(s.root, s.depth)
	current := 0
	for !t.leaf(current) {
		if s.checkpoint() {
			break
		}
		next, nextScore, err := s.bestChild(t, current)
		if err != nil {
			return game.Neutral, err
		}
		if next < 0 || nextScore <= s.score(t, current) {
			break
		}
		current = next
	}
	return t.rootAction(current), nil
}

// bestChild expands the children of i and returns the highest scoring one, latest in
// game.Branches on ties, or -1 when every child is pruned.
func (s *search) bestChild(t *tree, i int) (int, int64, error) {
	best, bestScore := -1, MinScore
	for k := range game.Branches {
		c := t.child(i, k)
		ok, err := s.expand(t, c)
		if err != nil {
			return -1, MinScore, err
		}
		if !ok {
			continue
		}
		score := s.score(t, c)
		if i == 0 {
			s.branches[k] = score
		}
		if best < 0 || score >= bestScore {
			best, bestScore = c, score
		}
	}
	return best, bestScore, nil
}

// annealing walks the tree in both directions while the temperature cools geometrically.
// It stops once the temperature has reached zero and no neighbor improves.
func annealing(s *search) (game.Action, error) {
	t := newTree(s.root, s.depth)
	current := 0
	temperature := s.config.Temperature
	for {
		if s.checkpoint() {
			break
		}
		next, err := s.anneal(t, current, temperature)
		if err != nil {
			return game.Neutral, err
		}
		if next == current && temperature == 0 {
			break
		}
		current = next
		temperature = int64(float64(temperature) * s.config.Cooling)
	}
	return t.rootAction(current), nil
}

// anneal picks the next node: a strictly better predecessor, else the best strictly better
// child, else the first neighbor accepted with probability exp(delta/temperature).
func (s *search) anneal(t *tree, current int, temperature int64) (int, error) {
	score := s.score(t, current)
	parent := t.nodes[current].parent
	if parent >= 0 && s.score(t, parent) > score {
		return parent, nil
	}

	var neighbors []int
	if parent >= 0 {
		neighbors = append(neighbors, parent)
	}
	if !t.leaf(current) {
		child, childScore, err := s.bestChild(t, current)
		if err != nil {
			return current, err
		}
		if child >= 0 && childScore > score {
			return child, nil
		}
		for k := range game.Branches {
			if c := t.child(current, k); t.nodes[c].state != nil {
				neighbors = append(neighbors, c)
			}
		}
	}

	if temperature <= 0 {
		return current, nil
	}
	for _, neighbor := range neighbors {
		delta := float64(s.score(t, neighbor) - score)
		if s.rng.Float64() < math.Exp(delta/float64(temperature)) {
			return neighbor, nil
		}
	}
	return current, nil
}
