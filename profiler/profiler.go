// Package profiler - Lightweight runtime monitoring for long-running
// suppression workloads.
//
// A Profiler samples runtime health (goroutines, memory) in the background
// and aggregates the metrics and operation timings the benchmark suite
// feeds it, emitting periodic reports. It never touches the suppression
// algorithms themselves; they stay pure.
package profiler

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"
)

// Collector exposes point-in-time metrics for periodic sampling.
type Collector interface {
	CollectMetrics() map[string]float64
}

// CollectorFunc adapts a closure into a Collector.
type CollectorFunc func() map[string]float64

func (f CollectorFunc) CollectMetrics() map[string]float64 { return f() }

// Options configures a Profiler.
type Options struct {
	// ReportInterval is how often to print a status report (default 2s).
	ReportInterval time.Duration
	// SampleInterval is how often to poll collectors (default 100ms).
	SampleInterval time.Duration
	// MaxSamples bounds the per-metric history (default 600).
	MaxSamples int
}

// Profiler aggregates metrics and operation timings from a running
// benchmark or pipeline.
type Profiler struct {
	reportInterval time.Duration
	sampleInterval time.Duration
	maxSamples     int

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	running   bool
	startTime time.Time

	metrics    map[string]*metricTracker
	timings    map[string]*timeTracker
	collectors []Collector
}

type metricTracker struct {
	values []float64
	sum    float64
	min    float64
	max    float64
}

type timeTracker struct {
	total time.Duration
	min   time.Duration
	max   time.Duration
	count int64
}

// New creates a Profiler with the given options, applying defaults for
// zero values.
func New(opts Options) *Profiler {
	if opts.ReportInterval == 0 {
		opts.ReportInterval = 2 * time.Second
	}
	if opts.SampleInterval == 0 {
		opts.SampleInterval = 100 * time.Millisecond
	}
	if opts.MaxSamples == 0 {
		opts.MaxSamples = 600
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Profiler{
		reportInterval: opts.ReportInterval,
		sampleInterval: opts.SampleInterval,
		maxSamples:     opts.MaxSamples,
		ctx:            ctx,
		cancel:         cancel,
		startTime:      time.Now(),
		metrics:        map[string]*metricTracker{},
		timings:        map[string]*timeTracker{},
	}
}

// AddCollector registers a metrics source to be polled every sample
// interval while the profiler runs.
func (p *Profiler) AddCollector(c Collector) {
	p.mu.Lock()
	p.collectors = append(p.collectors, c)
	p.mu.Unlock()
}

// RecordMetric records one value of a named metric.
func (p *Profiler) RecordMetric(name string, value float64) {
	p.mu.Lock()
	p.record(name, value)
	p.mu.Unlock()
}

// record must be called with the mutex held.
func (p *Profiler) record(name string, value float64) {
	t, ok := p.metrics[name]
	if !ok {
		t = &metricTracker{min: value, max: value}
		p.metrics[name] = t
	}
	t.values = append(t.values, value)
	if len(t.values) > p.maxSamples {
		t.sum -= t.values[0]
		t.values = t.values[1:]
	}
	t.sum += value
	t.min = min(t.min, value)
	t.max = max(t.max, value)
}

// StartOperation begins timing a named operation and returns the function
// to call when it completes.
func (p *Profiler) StartOperation(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		p.mu.Lock()
		t, ok := p.timings[name]
		if !ok {
			t = &timeTracker{min: d, max: d}
			p.timings[name] = t
		}
		t.total += d
		t.count++
		t.min = min(t.min, d)
		t.max = max(t.max, d)
		p.mu.Unlock()
	}
}

// Start launches the background sampling and reporting goroutines. Safe to
// call more than once.
func (p *Profiler) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return
	}
	p.running = true
	p.startTime = time.Now()

	p.wg.Add(1)
	go p.sampleLoop()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(p.reportInterval)
		defer ticker.Stop()
		for {
			select {
			case <-p.ctx.Done():
				return
			case <-ticker.C:
				p.report()
			}
		}
	}()
}

// Stop halts sampling and waits for the background goroutines.
func (p *Profiler) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	p.mu.Unlock()

	p.cancel()
	p.wg.Wait()
}

func (p *Profiler) sampleLoop() {
	defer p.wg.Done()
	ticker := time.NewTicker(p.sampleInterval)
	defer ticker.Stop()
	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.mu.Lock()
			p.record("goroutines", float64(runtime.NumGoroutine()))
			for _, c := range p.collectors {
				for name, value := range c.CollectMetrics() {
					p.record(name, value)
				}
			}
			p.mu.Unlock()
		}
	}
}

// report prints a snapshot of everything tracked so far.
func (p *Profiler) report() {
	p.mu.Lock()
	defer p.mu.Unlock()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	fmt.Printf("PROFILER %s (uptime %v)\n",
		time.Now().Format("15:04:05.000"), time.Since(p.startTime).Truncate(time.Millisecond))
	fmt.Printf("  heap=%s sys=%s gc=%d goroutines=%d\n",
		formatBytes(mem.HeapAlloc), formatBytes(mem.Sys), mem.NumGC, runtime.NumGoroutine())

	for name, t := range p.metrics {
		if len(t.values) == 0 {
			continue
		}
		fmt.Printf("  %s: avg=%.2f min=%.2f max=%.2f samples=%d\n",
			name, t.sum/float64(len(t.values)), t.min, t.max, len(t.values))
	}
	for name, t := range p.timings {
		if t.count == 0 {
			continue
		}
		fmt.Printf("  %s: avg=%v min=%v max=%v count=%d\n",
			name, (t.total / time.Duration(t.count)).Truncate(time.Microsecond),
			t.min.Truncate(time.Microsecond), t.max.Truncate(time.Microsecond), t.count)
	}
}

// Snapshot returns the current metric aggregates, keyed by metric name.
func (p *Profiler) Snapshot() map[string]MetricSummary {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]MetricSummary, len(p.metrics))
	for name, t := range p.metrics {
		if len(t.values) == 0 {
			continue
		}
		out[name] = MetricSummary{
			Avg:     t.sum / float64(len(t.values)),
			Min:     t.min,
			Max:     t.max,
			Samples: len(t.values),
		}
	}
	return out
}

// MetricSummary is the aggregate view of one tracked metric.
type MetricSummary struct {
	Avg     float64 `json:"avg"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Samples int     `json:"samples"`
}

func formatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
