package engine

import (
	"pacagent/game"
	"pacagent/utils"

	"golang.org/x/exp/rand"
)

type GhostPolicy interface {
	// Actions returns one action per ghost for the next tick
	Actions(arena *game.Arena) []game.Action
}

type chaser struct {
	aggression float64 // Chance of taking the greedy action
	rng        *rand.Rand
}

// NewGhostPolicy returns ghosts that never reverse unless cornered, chase the agent (or flee
// it while edible) with the given probability, and wander randomly otherwise.
func NewGhostPolicy(aggression float64, seed uint64) GhostPolicy {
	return &chaser{aggression: aggression, rng: rand.New(rand.NewSource(seed))}
}

func (c *chaser) Actions(arena *game.Arena) []game.Action {
	actions := make([]game.Action, arena.Opponents())
	for i := range actions {
		pos := arena.OpponentPosition(i)
		if arena.OpponentLairTime(i) > 0 || pos == game.NoPosition {
			continue
		}

		options := c.options(arena.Maze, pos, arena.OpponentLastAction(i))
		if len(options) == 0 {
			continue
		}
		if c.rng.Float64() < c.aggression {
			actions[i] = greedy(arena.Maze, pos, arena.AgentPosition(), options, arena.OpponentEdible(i))
		} else {
			actions[i] = options[c.rng.Intn(len(options))]
		}
	}
	return actions
}

func (c *chaser) options(m *game.Maze, pos game.Position, last game.Action) []game.Action {
	legal := m.LegalActions(pos)
	options := utils.Filter(legal, func(action game.Action) bool {
		return last == game.Neutral || action != last.Opposite()
	})
	if len(options) == 0 {
		return legal // Dead end
	}
	return options
}

// greedy picks the option closest to the target, or furthest when fleeing.
func greedy(m *game.Maze, pos, target game.Position, options []game.Action, flee bool) game.Action {
	best, bestDistance := options[0], -1
	for _, action := range options {
		d := m.Distance(m.Neighbor(pos, action), target)
		if d < 0 {
			continue
		}
		if bestDistance < 0 || (!flee && d < bestDistance) || (flee && d > bestDistance) {
			best, bestDistance = action, d
		}
	}
	return best
}
