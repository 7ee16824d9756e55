package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Budget     time.Duration // Configured time budget, 0 when bounded by episodes
	Duration   time.Duration
	Episodes   int
	Nodes      int
	MaxDepth   int
	Chains     int // Extra-move chain expansions
}

type MoveMetric struct {
	Step   int
	Player int // 0 or 1
	House  int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Winner         int // -1 on a tie
	Score0         int
	Score1         int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers search statistics. Implementations must be safe for use
// by concurrent search workers.
type Collector interface {
	Start(goroutines int, budget time.Duration)
	AddEpisode()
	AddNodes(n int)
	AddChain()
	ObserveDepth(depth int)
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	budget     time.Duration
	startTime  time.Time
	episodes   atomic.Int32
	nodes      atomic.Int32
	chains     atomic.Int32
	maxDepth   atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int, budget time.Duration) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.budget = budget
	m.episodes.Store(0)
	m.nodes.Store(0)
	m.chains.Store(0)
	m.maxDepth.Store(0)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddNodes(n int) {
	m.nodes.Add(int32(n))
}

func (m *collector) AddChain() {
	m.chains.Add(1)
}

func (m *collector) ObserveDepth(depth int) {
	d := int32(depth)
	for {
		current := m.maxDepth.Load()
		if d <= current || m.maxDepth.CompareAndSwap(current, d) {
			return
		}
	}
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Budget:     m.budget,
		Duration:   time.Since(m.startTime),
		Episodes:   int(m.episodes.Load()),
		Nodes:      int(m.nodes.Load()),
		MaxDepth:   int(m.maxDepth.Load()),
		Chains:     int(m.chains.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int, budget time.Duration) {}
func (m *dummyCollector) AddEpisode()                                {}
func (m *dummyCollector) AddNodes(n int)                             {}
func (m *dummyCollector) AddChain()                                  {}
func (m *dummyCollector) ObserveDepth(depth int)                     {}
func (m *dummyCollector) Complete() SearchMetric                     { return SearchMetric{} }
