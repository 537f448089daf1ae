package searcher

import (
	"container/heap"
	"pacagent/game"
)

// starNode is one agent position in the best-first search graph.
type starNode struct {
	id     int // Insertion order, breaks ties between equal costs
	state  game.State
	action game.Action // Action that reached this node from parent
	parent *starNode
	g      int   // Ticks from the root
	f      int64 // g minus evaluation
	index  int   // Position in the open set, -1 once popped
	closed bool
}

// firstAction returns the root action on the path to n, or Neutral for the root.
func (n *starNode) firstAction() game.Action {
	if n == nil || n.parent == nil {
		return game.Neutral
	}
	for n.parent.parent != nil {
		n = n.parent
	}
	return n.action
}

type openSet []*starNode

func (o openSet) Len() int { return len(o) }

func (o openSet) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].id < o[j].id
}

func (o openSet) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}

func (o *openSet) Push(x any) {
	n := x.(*starNode)
	n.index = len(*o)
	*o = append(*o, n)
}

func (o *openSet) Pop() any {
	old := *o
	n := old[len(old)-1]
	old[len(old)-1] = nil
	n.index = -1
	*o = old[:len(old)-1]
	return n
}

func aStar(s *search) (game.Action, error) {
	last, _, err := s.bestFirst()
	if err != nil {
		return game.Neutral, err
	}
	if action := last.firstAction(); action != game.Neutral {
		return action, nil
	}
	// Nothing beyond the root was closed
	return bestAction(s.branches), nil
}

// bestFirst expands agent positions in ascending g+h order, where g counts ticks and h is the
// negated evaluation, up to the configured depth. Successors never reverse the action that
// reached a node and closed positions are never reopened. It stops early on the first
// successor with no ordinary pill left and returns the last closed node together with the
// expansion order.
func (s *search) bestFirst() (*starNode, []*starNode, error) {
	root := &starNode{state: s.root, action: game.Neutral, f: -s.evaluate(s.root)}
	seen := map[game.Position]*starNode{s.root.AgentPosition(): root}
	open := &openSet{}
	heap.Push(open, root)

	var (
		last     *starNode
		expanded []*starNode
	)
	for open.Len() > 0 {
		if s.checkpoint() {
			break
		}
		current := heap.Pop(open).(*starNode)
		current.closed = true
		last = current
		expanded = append(expanded, current)
		if current != root && len(current.state.Pills()) == 0 {
			break
		}
		if current.g == s.depth {
			continue
		}

		for k, action := range game.Branches {
			if current.parent != nil && action == current.action.Opposite() {
				continue
			}
			state, ok, err := s.advance(current.state, action)
			if err != nil {
				return last, expanded, err
			}
			if !ok {
				continue
			}

			g := current.g + 1
			next, found := seen[state.AgentPosition()]
			switch {
			case !found:
				value := s.evaluate(state)
				if current == root {
					s.branches[k] = value
				}
				next = &starNode{id: len(seen), state: state, action: action, parent: current, g: g, f: int64(g) - value}
				seen[state.AgentPosition()] = next
				heap.Push(open, next)
			case next.closed || g >= next.g:
			default:
				next.state, next.action, next.parent, next.g = state, action, current, g
				next.f = int64(g) - s.evaluate(state)
				heap.Fix(open, next.index)
			}
		}
	}
	return last, expanded, nil
}
