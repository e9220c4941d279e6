package searcher

import (
	"time"
)

type Outcome string

const (
	Solved         Outcome = "solved"
	NotSolvable    Outcome = "not_solvable"
	BudgetExceeded Outcome = "budget_exceeded"
)

// SearchMetric describes a single Solve call.
type SearchMetric struct {
	StartTime     time.Time
	Duration      time.Duration
	Expanded      int   // Nodes dequeued and expanded
	Generated     int   // Successor states produced by Play
	Duplicates    int   // Successors skipped because already visited
	MaxFrontier   int   // Peak frontier length
	SolutionDepth int   // Number of moves in the solution, -1 if none
	Levels        []int // Distinct states discovered per depth, root at index 0
	Outcome       Outcome
}

type MetricsCollector interface {
	Start()
	AddExpansion(frontier int)
	AddGenerated()
	AddDuplicate()
	AddDiscovered(depth int)
	Complete(outcome Outcome, solutionDepth int) SearchMetric
}

// Solve runs on a single goroutine, so the collector needs no synchronization.
type metricsCollector struct {
	startTime   time.Time
	expanded    int
	generated   int
	duplicates  int
	maxFrontier int
	levels      []int
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	*m = metricsCollector{startTime: time.Now()}
}

// AddExpansion records a dequeue; frontier is the queue length before the dequeue.
func (m *metricsCollector) AddExpansion(frontier int) {
	m.expanded++
	if frontier > m.maxFrontier {
		m.maxFrontier = frontier
	}
}

func (m *metricsCollector) AddGenerated() {
	m.generated++
}

func (m *metricsCollector) AddDuplicate() {
	m.duplicates++
}

func (m *metricsCollector) AddDiscovered(depth int) {
	for len(m.levels) <= depth {
		m.levels = append(m.levels, 0)
	}
	m.levels[depth]++
}

func (m *metricsCollector) Complete(outcome Outcome, solutionDepth int) SearchMetric {
	return SearchMetric{
		StartTime:     m.startTime,
		Duration:      time.Since(m.startTime),
		Expanded:      m.expanded,
		Generated:     m.generated,
		Duplicates:    m.duplicates,
		MaxFrontier:   m.maxFrontier,
		SolutionDepth: solutionDepth,
		Levels:        m.levels,
		Outcome:       outcome,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()            {}
func (m *noMetricsCollector) AddExpansion(int)  {}
func (m *noMetricsCollector) AddGenerated()     {}
func (m *noMetricsCollector) AddDuplicate()     {}
func (m *noMetricsCollector) AddDiscovered(int) {}
func (m *noMetricsCollector) Complete(outcome Outcome, solutionDepth int) SearchMetric {
	return SearchMetric{Outcome: outcome, SolutionDepth: solutionDepth}
}
