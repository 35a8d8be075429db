package benchmark

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-nms/profiler"
	"github.com/nvr-ai/go-nms/suppression"
)

// Suite manages and executes suppression benchmark scenarios.
type Suite struct {
	mu        sync.RWMutex
	scenarios []Scenario
	results   []Metrics
	prof      *profiler.Profiler
}

// NewSuite creates an empty benchmark suite.
func NewSuite() *Suite {
	return &Suite{
		scenarios: make([]Scenario, 0),
		results:   make([]Metrics, 0),
	}
}

// AddScenario adds a scenario to the suite.
func (s *Suite) AddScenario(sc Scenario) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenarios = append(s.scenarios, sc)
}

// AddScenarioSet adds every scenario of a set to the suite.
func (s *Suite) AddScenarioSet(set ScenarioSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenarios = append(s.scenarios, set.Scenarios...)
}

// SetProfiler attaches a profiler; each scenario run is then timed and its
// throughput recorded as a metric.
func (s *Suite) SetProfiler(p *profiler.Profiler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prof = p
}

// Run executes every scenario in order, recording one Metrics per
// scenario.
func (s *Suite) Run() error {
	s.mu.RLock()
	scenarios := make([]Scenario, len(s.scenarios))
	copy(scenarios, s.scenarios)
	s.mu.RUnlock()

	for _, sc := range scenarios {
		m, err := s.runScenario(sc)
		if err != nil {
			return errors.Wrapf(err, "scenario %s", sc.Name)
		}
		s.mu.Lock()
		s.results = append(s.results, m)
		s.mu.Unlock()
	}
	return nil
}

// runScenario generates the scenario's candidate field once and measures
// repeated suppression over it.
func (s *Suite) runScenario(sc Scenario) (Metrics, error) {
	if sc.Iterations <= 0 {
		return Metrics{}, errors.Errorf("iterations must be positive, got %d", sc.Iterations)
	}
	if sc.candidateCount() <= 0 {
		return Metrics{}, errors.Errorf("empty candidate field (%d clusters x %d)", sc.Clusters, sc.PerCluster)
	}
	s.mu.RLock()
	prof := s.prof
	s.mu.RUnlock()
	if prof != nil {
		defer prof.StartOperation(sc.Name)()
	}

	gen := NewGenerator(sc.Seed, 1920, 1080)
	classes := sc.Classes
	if classes <= 0 {
		classes = 1
	}
	input := gen.Clustered(sc.Clusters, sc.PerCluster, classes)

	cfg := suppression.DefaultConfig()
	cfg.Algorithm = sc.Algorithm
	cfg.ClassAgnostic = sc.ClassAgnostic
	cfg.ConfidenceThreshold = 0.1
	processor := suppression.NewProcessor(cfg)

	for i := 0; i < sc.WarmupRuns; i++ {
		processor.Apply(input)
	}
	processor.ResetStats()

	start := time.Now()
	var suppressionTime time.Duration
	var lastStats suppression.Stats
	for i := 0; i < sc.Iterations; i++ {
		_, stats := processor.Apply(input)
		suppressionTime += stats.Elapsed
		lastStats = stats
	}
	total := time.Since(start)
	if prof != nil {
		prof.RecordMetric("boxes_per_second", float64(len(input)*sc.Iterations)/total.Seconds())
	}

	return Metrics{
		Scenario:            sc,
		Timestamp:           time.Now(),
		TotalDuration:       total,
		SuppressionDuration: suppressionTime,
		BoxesPerSecond:      float64(len(input)*sc.Iterations) / total.Seconds(),
		CallsPerSecond:      float64(sc.Iterations) / total.Seconds(),
		MemoryStats:         captureMemory(),
		InputBoxes:          lastStats.InputBoxes,
		OutputBoxes:         lastStats.OutputBoxes,
		SuppressedBoxes:     lastStats.SuppressedBoxes,
	}, nil
}

// Results returns a copy of the metrics recorded so far.
func (s *Suite) Results() []Metrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Metrics, len(s.results))
	copy(out, s.results)
	return out
}

// WriteResults dumps the recorded metrics to a JSON file.
func (s *Suite) WriteResults(path string) error {
	data, err := json.MarshalIndent(s.Results(), "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding results")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing results to %s", path)
	}
	return nil
}
