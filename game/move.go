package game

import "pacagent/utils"

// Action is one of the four cardinal moves, or Neutral when no action has been taken.
type Action int

const (
	Neutral Action = iota
	Up
	Down
	Left
	Right
)

// Branches lists the actions in the order children are laid out in a decision tree.
var Branches = [4]Action{Left, Right, Up, Down}

func (a Action) String() string {
	switch a {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "neutral"
	}
}

// Opposite returns the reverse direction. Neutral is its own opposite.
func (a Action) Opposite() Action {
	switch a {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return Neutral
	}
}

// IsLegal reports whether the agent may take action in state.
func IsLegal(state State, action Action) bool {
	if action == Neutral {
		return false
	}
	return utils.Contains(state.LegalActions(state.AgentPosition()), action)
}
