package game

import (
	"fmt"
	"strings"
)

// Cell is a walkable node of the maze graph.
type Cell struct {
	ID        Position
	Row       int
	Col       int
	Neighbors [5]Position // Indexed by Action, NoPosition where blocked
	Actions   []Action    // Legal actions, in Branches order
}

// Maze is the static arena graph shared by every snapshot.
type Maze struct {
	Width      int
	Height     int
	Cells      []*Cell
	AgentStart Position
	LairExit   Position
	Pills      []Position
	PowerPills []Position
	grid       []Position // row*Width+col -> cell ID or NoPosition
	distances  [][]int
}

// DefaultLayout is a small symmetric maze with a wrap-around tunnel on the lair row.
//
//	# wall, . pill, o power pill, P agent start, G lair exit
var DefaultLayout = strings.Join([]string{
	"###################",
	"#o.......#.......o#",
	"#.##.###.#.###.##.#",
	"#.................#",
	"#.##.#.#####.#.##.#",
	"#....#...#...#....#",
	"####.###.#.###.####",
	"    .#...G...#.    ",
	"####.#.#####.#.####",
	"#........#........#",
	"#.##.###.#.###.##.#",
	"#o.#.....P.....#.o#",
	"##.#.#.#####.#.#.##",
	"#....#...#...#....#",
	"#.######.#.######.#",
	"#.................#",
	"###################",
}, "\n")

// CreateMaze parses DefaultLayout.
func CreateMaze() *Maze {
	m, err := ParseMaze(DefaultLayout)
	if err != nil {
		panic(fmt.Sprintf("default layout is invalid: %v", err))
	}
	return m
}

// ParseMaze builds the maze graph and all-pairs shortest path distances from an ASCII layout.
func ParseMaze(layout string) (*Maze, error) {
	rows := strings.Split(strings.Trim(layout, "\n"), "\n")
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidLayout)
	}

	m := &Maze{
		Width:      len(rows[0]),
		Height:     len(rows),
		AgentStart: NoPosition,
		LairExit:   NoPosition,
	}
	m.grid = make([]Position, m.Width*m.Height)

	for r, row := range rows {
		if len(row) != m.Width {
			return nil, fmt.Errorf("%w: row %d has width %d, expected %d", ErrInvalidLayout, r, len(row), m.Width)
		}
		for c, ch := range row {
			if ch == '#' {
				m.grid[r*m.Width+c] = NoPosition
				continue
			}
			id := Position(len(m.Cells))
			m.grid[r*m.Width+c] = id
			m.Cells = append(m.Cells, &Cell{ID: id, Row: r, Col: c})

			switch ch {
			case '.':
				m.Pills = append(m.Pills, id)
			case 'o':
				m.PowerPills = append(m.PowerPills, id)
			case 'P':
				m.AgentStart = id
			case 'G':
				m.LairExit = id
			case ' ':
			default:
				return nil, fmt.Errorf("%w: unknown tile %q at row %d col %d", ErrInvalidLayout, ch, r, c)
			}
		}
	}
	if m.AgentStart == NoPosition {
		return nil, fmt.Errorf("%w: missing agent start", ErrInvalidLayout)
	}
	if m.LairExit == NoPosition {
		return nil, fmt.Errorf("%w: missing lair exit", ErrInvalidLayout)
	}

	m.connect()
	m.computeDistances()
	return m, nil
}

// connect links each cell to its walkable neighbors, wrapping horizontally through open edges.
func (m *Maze) connect() {
	offsets := map[Action][2]int{Up: {-1, 0}, Down: {1, 0}, Left: {0, -1}, Right: {0, 1}}
	for _, cell := range m.Cells {
		cell.Neighbors[Neutral] = NoPosition
		for _, action := range Branches {
			off := offsets[action]
			r, c := cell.Row+off[0], (cell.Col+off[1]+m.Width)%m.Width
			next := NoPosition
			if r >= 0 && r < m.Height {
				next = m.grid[r*m.Width+c]
			}
			cell.Neighbors[action] = next
			if next != NoPosition {
				cell.Actions = append(cell.Actions, action)
			}
		}
	}
}

// computeDistances runs a breadth first search from every cell.
func (m *Maze) computeDistances() {
	n := len(m.Cells)
	m.distances = make([][]int, n)
	queue := make([]Position, 0, n)
	for _, source := range m.Cells {
		dist := make([]int, n)
		for i := range dist {
			dist[i] = -1
		}
		dist[source.ID] = 0
		queue = append(queue[:0], source.ID)
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			for _, action := range m.Cells[p].Actions {
				next := m.Cells[p].Neighbors[action]
				if dist[next] < 0 {
					dist[next] = dist[p] + 1
					queue = append(queue, next)
				}
			}
		}
		m.distances[source.ID] = dist
	}
}

func (m *Maze) valid(p Position) bool {
	return p >= 0 && int(p) < len(m.Cells)
}

// Neighbor returns the cell reached by taking action from p, or NoPosition.
func (m *Maze) Neighbor(p Position, action Action) Position {
	if !m.valid(p) {
		return NoPosition
	}
	return m.Cells[p].Neighbors[action]
}

// LegalActions returns the actions that do not run into a wall.
func (m *Maze) LegalActions(p Position) []Action {
	if !m.valid(p) {
		return nil
	}
	return m.Cells[p].Actions
}

// Distance returns the shortest path distance, -1 if either position is off board.
func (m *Maze) Distance(from, to Position) int {
	if !m.valid(from) || !m.valid(to) {
		return -1
	}
	return m.distances[from][to]
}

// At returns the cell at row and column, or NoPosition for walls and out of range.
func (m *Maze) At(row, col int) Position {
	if row < 0 || row >= m.Height || col < 0 || col >= m.Width {
		return NoPosition
	}
	return m.grid[row*m.Width+col]
}
