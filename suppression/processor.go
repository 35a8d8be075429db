package suppression

import (
	"sync"
	"time"

	"github.com/nvr-ai/go-nms/boxes"
)

// Processor dispatches detection candidates to the configured suppression
// algorithm. The computation itself is pure; the only mutable state is the
// configuration and the last/accumulated stats, both guarded by a mutex so
// a single Processor can be shared by a pool of frame workers.
//
// Callers that need per-call configuration isolation should use
// ApplyWithConfig rather than mutating shared state with SetConfig while
// calls are in flight.
type Processor struct {
	mu     sync.Mutex
	config Config
	last   Stats
	total  Stats
}

// NewProcessor creates a Processor with the given configuration.
// Out-of-range values are clamped; see Config.Sanitize.
func NewProcessor(cfg Config) *Processor {
	return &Processor{
		config: cfg.Sanitize(),
		last:   Stats{PerClass: map[int]int{}},
		total:  Stats{PerClass: map[int]int{}},
	}
}

// SetConfig replaces the processor's configuration, clamping out-of-range
// values.
func (p *Processor) SetConfig(cfg Config) {
	cfg = cfg.Sanitize()
	p.mu.Lock()
	p.config = cfg
	p.mu.Unlock()
}

// Config returns the effective (clamped) configuration.
func (p *Processor) Config() Config {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.config
}

// Apply runs the configured algorithm over the candidates and returns the
// surviving boxes, confidence-descending, together with the run's stats.
// Invalid boxes and boxes below the confidence threshold count as
// suppressed; an empty input is a normal case yielding empty output and
// zeroed stats.
func (p *Processor) Apply(input []boxes.BoundingBox) ([]boxes.BoundingBox, Stats) {
	return p.run(input, p.Config())
}

// ApplyWithConfig runs one call under its own configuration, leaving the
// processor's configuration untouched.
func (p *Processor) ApplyWithConfig(input []boxes.BoundingBox, cfg Config) ([]boxes.BoundingBox, Stats) {
	return p.run(input, cfg.Sanitize())
}

// run is the shared pipeline: admit, group, suppress per group, re-merge,
// cap. cfg must already be sanitized.
func (p *Processor) run(input []boxes.BoundingBox, cfg Config) ([]boxes.BoundingBox, Stats) {
	start := time.Now()

	kept := admit(input, cfg.ConfidenceThreshold)
	out := make([]boxes.BoundingBox, 0, len(kept))
	for _, group := range groupByClass(kept, cfg.ClassAgnostic) {
		out = append(out, suppressGroup(group, cfg)...)
	}
	out = finalize(out, cfg.MaxDetections)

	stats := buildStats(len(input), out, time.Since(start))
	p.record(stats)
	return out, stats
}

// suppressGroup dispatches one group to the configured algorithm.
func suppressGroup(group []boxes.BoundingBox, cfg Config) []boxes.BoundingBox {
	switch cfg.Algorithm {
	case Soft:
		return softNMS(group, cfg.SoftSigma, cfg.ConfidenceThreshold)
	case Weighted:
		return weightedNMS(group, cfg.IoUThreshold)
	case Adaptive:
		return adaptiveNMS(group, cfg.AdaptiveBaseThreshold, cfg.Density)
	default:
		return standardNMS(group, cfg.IoUThreshold)
	}
}

// record stores the call's stats as the most recent result and folds them
// into the running totals.
func (p *Processor) record(s Stats) {
	p.mu.Lock()
	p.last = s.clone()
	p.total.add(s)
	p.mu.Unlock()
}

// LastStats returns the stats of the most recent call.
func (p *Processor) LastStats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last.clone()
}

// AccumulatedStats returns the totals across every call since the last
// reset.
func (p *Processor) AccumulatedStats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total.clone()
}

// ResetStats zeroes both the last and the accumulated stats.
func (p *Processor) ResetStats() {
	p.mu.Lock()
	p.last = Stats{PerClass: map[int]int{}}
	p.total = Stats{PerClass: map[int]int{}}
	p.mu.Unlock()
}
