package game

// Rules holds the scoring and timing constants of the arena.
type Rules struct {
	Lives          int
	Ghosts         int
	PillScore      int
	PowerPillScore int
	GhostScore     int // Doubles for each ghost eaten during one power pill
	EdibleTime     int // Ticks ghosts stay edible after a power pill
	LairTime       int // Ticks a ghost spends in the lair after being eaten
	LairStagger    int // Extra lair ticks per ghost index at (re)spawn
}
