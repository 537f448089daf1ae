package metrics

import (
	"pacagent/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy    string
	Depth       int
	Duration    time.Duration
	Nodes       int // Expansion checkpoints passed
	Clones      int // Snapshots cloned and advanced
	Evaluations int
	TimedOut    bool
	Action      game.Action
	Branches    [4]int64 // Root branch values in game.Branches order
}

type MoveMetric struct {
	Tick  int
	Score int
	Lives int
	SearchMetric
}

type GameMetric struct {
	Seed       uint64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalTicks int
	Score      int
	Lives      int
	Cleared    bool
}

type Collector interface {
	Start()
	AddNode()
	AddClone()
	AddEvaluation()
	Complete() SearchMetric
}

type collector struct {
	startTime   time.Time
	nodes       atomic.Int32
	clones      atomic.Int32
	evaluations atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.clones.Store(0)
	m.evaluations.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddClone() {
	m.clones.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:    time.Since(m.startTime),
		Nodes:       int(m.nodes.Load()),
		Clones:      int(m.clones.Load()),
		Evaluations: int(m.evaluations.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddClone()              {}
func (m *dummyCollector) AddEvaluation()         {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
