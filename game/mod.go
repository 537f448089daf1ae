package game

import "errors"

// Position identifies a walkable node of the arena graph.
type Position int

// NoPosition is reported for actors that are not on the board (e.g. ghosts in the lair).
const NoPosition Position = -1

var (
	ErrOpponentCount = errors.New("wrong number of predicted opponent actions")
	ErrInvalidLayout = errors.New("invalid maze layout")
)

// State is a snapshot of the simulated world at one tick.
//
// Copy returns an independent deep copy. Advance mutates the snapshot in place by simulating
// exactly one tick for the agent and every opponent; it only fails if the model itself faults.
// All other methods are read-only queries against this snapshot.
type State interface {
	Copy() State
	Advance(agent Action, opponents []Action) error

	AgentPosition() Position
	Opponents() int
	OpponentPosition(i int) Position
	OpponentEdible(i int) bool
	OpponentLairTime(i int) int
	// Distance returns the shortest path distance between two positions, or -1 if either is off board
	Distance(from, to Position) int
	Pills() []Position
	PowerPills() []Position
	Score() int
	Lives() int
	LegalActions(at Position) []Action
}

// Evaluate scores a state, higher is better for the agent.
type Evaluate func(State) int64
