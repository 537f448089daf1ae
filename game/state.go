package game

import "fmt"

type ghost struct {
	pos    Position
	last   Action
	edible int // Remaining edible ticks
	lair   int // Remaining lair ticks, off board while positive
}

// Arena is the reference forward model: one agent, a few ghosts, pills and power pills on a
// static Maze. It implements State.
type Arena struct {
	Maze  *Maze  // Shared, immutable
	Rules *Rules // Shared, immutable

	agent     Position
	agentLast Action
	ghosts    []ghost
	pills     []bool // Indexed by Position
	power     []bool // Indexed by Position
	remaining int    // Ordinary pills left
	powerLeft int
	score     int
	lives     int
	tick      int
	eaten     int // Ghosts eaten since the last power pill
}

// NewArena places the agent at its start and every ghost in the lair.
func NewArena(m *Maze, r *Rules) *Arena {
	a := &Arena{
		Maze:   m,
		Rules:  r,
		ghosts: make([]ghost, r.Ghosts),
		pills:  make([]bool, len(m.Cells)),
		power:  make([]bool, len(m.Cells)),
		lives:  r.Lives,
	}
	for _, p := range m.Pills {
		a.pills[p] = true
	}
	for _, p := range m.PowerPills {
		a.power[p] = true
	}
	a.remaining = len(m.Pills)
	a.powerLeft = len(m.PowerPills)
	a.resetPositions()
	return a
}

func (a *Arena) resetPositions() {
	a.agent = a.Maze.AgentStart
	a.agentLast = Neutral
	for i := range a.ghosts {
		a.ghosts[i] = ghost{pos: NoPosition, lair: 1 + i*a.Rules.LairStagger}
	}
	a.eaten = 0
}

func (a *Arena) Copy() State {
	return a.Clone()
}

// Clone is Copy without the interface conversion.
func (a *Arena) Clone() *Arena {
	c := *a
	c.ghosts = append([]ghost(nil), a.ghosts...)
	c.pills = append([]bool(nil), a.pills...)
	c.power = append([]bool(nil), a.power...)
	return &c
}

// Advance simulates one tick. Illegal moves are ignored: the actor stays put (agent) or keeps
// going (ghosts). Advancing a finished game is a no-op.
func (a *Arena) Advance(agent Action, opponents []Action) error {
	if len(opponents) != len(a.ghosts) {
		return fmt.Errorf("%w: expected %d, got %d", ErrOpponentCount, len(a.ghosts), len(opponents))
	}
	if a.GameOver() {
		return nil
	}
	a.tick++

	if next := a.Maze.Neighbor(a.agent, agent); next != NoPosition {
		a.agent = next
		a.agentLast = agent
	}
	if a.collide() {
		return nil
	}

	for i, action := range opponents {
		a.moveGhost(i, action)
	}
	if a.collide() {
		return nil
	}

	a.eat()
	for i := range a.ghosts {
		if a.ghosts[i].edible > 0 {
			a.ghosts[i].edible--
		}
	}
	return nil
}

func (a *Arena) moveGhost(i int, action Action) {
	g := &a.ghosts[i]
	if g.lair > 0 {
		g.lair--
		if g.lair == 0 {
			g.pos = a.Maze.LairExit
			g.last = Neutral
		}
		return
	}

	// Ghosts never stop: fall back to the previous heading, then to any open direction
	for _, candidate := range []Action{action, g.last} {
		if next := a.Maze.Neighbor(g.pos, candidate); next != NoPosition {
			g.pos = next
			g.last = candidate
			return
		}
	}
	if legal := a.Maze.LegalActions(g.pos); len(legal) > 0 {
		g.pos = a.Maze.Neighbor(g.pos, legal[0])
		g.last = legal[0]
	}
}

// collide resolves contact between the agent and any ghost. Returns true if a life was lost.
func (a *Arena) collide() bool {
	for i := range a.ghosts {
		g := &a.ghosts[i]
		if g.lair > 0 || g.pos != a.agent {
			continue
		}
		if g.edible > 0 {
			a.score += a.Rules.GhostScore << a.eaten
			a.eaten++
			*g = ghost{pos: NoPosition, lair: a.Rules.LairTime}
			continue
		}
		a.lives--
		a.resetPositions()
		return true
	}
	return false
}

func (a *Arena) eat() {
	switch {
	case a.pills[a.agent]:
		a.pills[a.agent] = false
		a.remaining--
		a.score += a.Rules.PillScore
	case a.power[a.agent]:
		a.power[a.agent] = false
		a.powerLeft--
		a.score += a.Rules.PowerPillScore
		a.eaten = 0
		for i := range a.ghosts {
			if a.ghosts[i].lair == 0 {
				a.ghosts[i].edible = a.Rules.EdibleTime
			}
		}
	}
}

func (a *Arena) AgentPosition() Position { return a.agent }
func (a *Arena) Opponents() int          { return len(a.ghosts) }

func (a *Arena) OpponentPosition(i int) Position { return a.ghosts[i].pos }
func (a *Arena) OpponentEdible(i int) bool       { return a.ghosts[i].edible > 0 }
func (a *Arena) OpponentLairTime(i int) int      { return a.ghosts[i].lair }

// OpponentLastAction is the last move a ghost made, Neutral while in the lair.
func (a *Arena) OpponentLastAction(i int) Action { return a.ghosts[i].last }

func (a *Arena) Distance(from, to Position) int { return a.Maze.Distance(from, to) }

func (a *Arena) Pills() []Position {
	return a.collect(a.pills, a.remaining)
}

func (a *Arena) PowerPills() []Position {
	return a.collect(a.power, a.powerLeft)
}

func (a *Arena) collect(flags []bool, n int) []Position {
	positions := make([]Position, 0, n)
	for p, ok := range flags {
		if ok {
			positions = append(positions, Position(p))
		}
	}
	return positions
}

func (a *Arena) Score() int { return a.score }
func (a *Arena) Lives() int { return a.lives }
func (a *Arena) Tick() int  { return a.tick }

func (a *Arena) LegalActions(at Position) []Action { return a.Maze.LegalActions(at) }

// Cleared reports whether every pill and power pill has been eaten.
func (a *Arena) Cleared() bool { return a.remaining == 0 && a.powerLeft == 0 }

func (a *Arena) GameOver() bool { return a.lives <= 0 || a.Cleared() }
