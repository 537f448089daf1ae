package searcher

import (
	"pacagent/game"

	"github.com/rs/zerolog/log"
)

func depthFirst(s *search) (game.Action, error) {
	values, _, err := s.exhaust(newTree(s.root, s.depth))
	if err != nil {
		return game.Neutral, err
	}
	s.branches = values
	return bestAction(values), nil
}

type frame struct {
	node int
	next int // Next child to visit
}

// exhaust values every root branch as the maximum over its leaves, walking the tree depth
// first with an explicit stack. A node with no legal action is valued as a leaf. After a
// timeout only the branches that finished keep a value.
func (s *search) exhaust(t *tree) ([4]int64, bool, error) {
	values := make([]int64, len(t.nodes))
	for i := range values {
		values[i] = MinScore
	}
	result := func() [4]int64 {
		return [4]int64{values[1], values[2], values[3], values[4]}
	}

	stack := []frame{{node: 0}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.node != 0 && (t.leaf(top.node) || top.next == len(game.Branches)) {
			i := top.node
			stack = stack[:len(stack)-1]
			if values[i] == MinScore {
				values[i] = s.evaluate(t.nodes[i].state)
			}
			parent := t.nodes[i].parent
			values[parent] = max(values[parent], values[i])
			continue
		}
		if top.next == len(game.Branches) {
			break // Root done
		}

		if s.checkpoint() {
			if len(stack) > 1 {
				values[stack[1].node] = MinScore
			}
			return result(), false, nil
		}
		child := t.child(top.node, top.next)
		top.next++
		ok, err := s.expand(t, child)
		if err != nil {
			return result(), false, err
		}
		if ok {
			t.nodes[child].visited = true
			stack = append(stack, frame{node: child})
		}
	}
	return result(), true, nil
}

func breadthFirst(s *search) (game.Action, error) {
	t := newTree(s.root, s.depth)
	values := [4]int64{MinScore, MinScore, MinScore, MinScore}

	t.nodes[0].visited = true
	queue := make([]int, 0, len(game.Branches))
	for k := range game.Branches {
		queue = append(queue, t.child(0, k))
	}

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		if t.nodes[i].visited {
			continue
		}
		if s.checkpoint() {
			break
		}
		t.nodes[i].visited = true

		ok, err := s.expand(t, i)
		if err != nil {
			return game.Neutral, err
		}
		if !ok {
			continue
		}
		if !t.leaf(i) && movable(t.nodes[i].state) {
			for k := range game.Branches {
				queue = append(queue, t.child(i, k))
			}
			continue
		}

		// Attribute the leaf to the branch it descends from
		b := t.branch(i) - 1
		values[b] = max(values[b], s.evaluate(t.nodes[i].state))
	}

	s.branches = values
	return bestAction(values), nil
}

// iterativeDeepening searches depth first at depths 1..N on fresh trees and keeps the
// deepest result that completed.
func iterativeDeepening(s *search) (game.Action, error) {
	best := [4]int64{MinScore, MinScore, MinScore, MinScore}
	reached := 0
	for depth := 1; depth <= s.depth; depth++ {
		values, complete, err := s.exhaust(newTree(s.root, depth))
		if err != nil {
			return game.Neutral, err
		}
		if complete || depth == 1 {
			best = values
			reached = depth
		}
		if !complete {
			break
		}
	}

	log.Debug().Int("reached", reached).Int("depth", s.depth).Msg("iterative deepening finished")
	s.branches = best
	return bestAction(best), nil
}
