package game

func NewStandardRules() *Rules {
	return &Rules{
		Lives:          3,
		Ghosts:         4,
		PillScore:      10,
		PowerPillScore: 50,
		GhostScore:     200,
		EdibleTime:     40,
		LairTime:       20,
		LairStagger:    8,
	}
}
