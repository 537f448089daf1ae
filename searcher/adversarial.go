package searcher

import "pacagent/game"

// alphaBeta runs one full window search per root action, with the agent maximizing at the
// root. Both plies advance the same predicted opponent actions: the minimizing ply models
// the agent's own worst alternative, not a separate opponent.
func alphaBeta(s *search) (game.Action, error) {
	for k, action := range game.Branches {
		if s.checkpoint() {
			break
		}
		child, ok, err := s.advance(s.root, action)
		if err != nil {
			return game.Neutral, err
		}
		if !ok {
			continue
		}
		value, complete, err := s.minimax(child, false, s.depth-1)
		if err != nil {
			return game.Neutral, err
		}
		if !complete {
			break
		}
		s.branches[k] = value
	}
	return bestAction(s.branches), nil
}

type ply struct {
	state      game.State
	maximizing bool
	alpha      int64
	beta       int64
	depth      int
	next       int  // Next action to try
	legal      bool // At least one child was searched
}

// minimax is fail-hard alpha-beta over an explicit stack of plies. A ply with no legal
// action is evaluated as a leaf. It reports false if the budget ran out first.
func (s *search) minimax(state game.State, maximizing bool, depth int) (int64, bool, error) {
	stack := []ply{{state: state, maximizing: maximizing, alpha: MinScore, beta: MaxScore, depth: depth}}

	var (
		value    int64
		returned bool
	)
	for {
		top := &stack[len(stack)-1]
		if returned {
			returned = false
			top.legal = true
			if top.maximizing {
				top.alpha = max(top.alpha, value)
			} else {
				top.beta = min(top.beta, value)
			}
			if top.beta <= top.alpha {
				top.next = len(game.Branches) // Prune the remaining actions
			}
		}

		if top.depth > 0 && top.next < len(game.Branches) {
			action := game.Branches[top.next]
			top.next++
			if s.checkpoint() {
				return 0, false, nil
			}
			child, ok, err := s.advance(top.state, action)
			if err != nil {
				return 0, false, err
			}
			if ok {
				stack = append(stack, ply{
					state:      child,
					maximizing: !top.maximizing,
					alpha:      top.alpha,
					beta:       top.beta,
					depth:      top.depth - 1,
				})
			}
			continue
		}

		switch {
		case top.depth == 0 || !top.legal:
			value = s.evaluate(top.state)
		case top.maximizing:
			value = top.alpha
		default:
			value = top.beta
		}
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return value, true, nil
		}
		returned = true
	}
}
