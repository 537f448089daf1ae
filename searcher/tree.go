package searcher

import "pacagent/game"

type node struct {
	action  game.Action
	parent  int // -1 at the root
	depth   int
	state   game.State // Lazily cloned from the parent's state
	pruned  bool       // Action is illegal from the parent's state
	visited bool
	value   int64
	valued  bool
}

// tree is a complete 4-ary lookahead tree stored in one slice. The children of node i
// sit at 4i+1..4i+4 in game.Branches order, so its shape never changes once built.
type tree struct {
	nodes []node
	depth int
}

func newTree(root game.State, depth int) *tree {
	size, width := 0, 1
	for d := 0; d <= depth; d++ {
		size += width
		width *= len(game.Branches)
	}

	t := &tree{nodes: make([]node, size), depth: depth}
	t.nodes[0] = node{action: game.Neutral, parent: -1, state: root}
	for i := 1; i < size; i++ {
		parent := (i - 1) / len(game.Branches)
		t.nodes[i] = node{
			action: game.Branches[(i-1)%len(game.Branches)],
			parent: parent,
			depth:  t.nodes[parent].depth + 1,
		}
	}
	return t
}

func (t *tree) child(i, k int) int {
	return len(game.Branches)*i + 1 + k
}

func (t *tree) leaf(i int) bool {
	return t.nodes[i].depth == t.depth
}

// branch returns the root child on the path to i, or 0 for the root itself.
func (t *tree) branch(i int) int {
	for i > 0 && t.nodes[i].parent != 0 {
		i = t.nodes[i].parent
	}
	return i
}

func (t *tree) rootAction(i int) game.Action {
	return t.nodes[t.branch(i)].action
}

// expand computes the state of node i from its parent, reporting false if it is pruned.
func (s *search) expand(t *tree, i int) (bool, error) {
	n := &t.nodes[i]
	if n.state != nil {
		return true, nil
	}
	if n.pruned {
		return false, nil
	}

	if t.nodes[n.parent].state == nil {
		ok, err := s.expand(t, n.parent)
		if err != nil || !ok {
			return false, err
		}
	}
	state, ok, err := s.advance(t.nodes[n.parent].state, n.action)
	if err != nil {
		return false, err
	}
	if !ok {
		n.pruned = true
		return false, nil
	}
	n.state = state
	return true, nil
}

// score evaluates an expanded node once.
func (s *search) score(t *tree, i int) int64 {
	n := &t.nodes[i]
	if !n.valued {
		n.value = s.evaluate(n.state)
		n.valued = true
	}
	return n.value
}
