package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordMetricAggregates(t *testing.T) {
	p := New(Options{})
	p.RecordMetric("latency_ms", 10)
	p.RecordMetric("latency_ms", 20)
	p.RecordMetric("latency_ms", 30)

	snap := p.Snapshot()
	require.Contains(t, snap, "latency_ms")
	m := snap["latency_ms"]
	assert.InDelta(t, 20, m.Avg, 1e-9)
	assert.Equal(t, float64(10), m.Min)
	assert.Equal(t, float64(30), m.Max)
	assert.Equal(t, 3, m.Samples)
}

func TestMetricHistoryIsBounded(t *testing.T) {
	p := New(Options{MaxSamples: 5})
	for i := 0; i < 20; i++ {
		p.RecordMetric("m", float64(i))
	}
	snap := p.Snapshot()
	assert.Equal(t, 5, snap["m"].Samples)
	assert.InDelta(t, 17, snap["m"].Avg, 1e-9, "average covers only the retained window")
	assert.Equal(t, float64(19), snap["m"].Max, "min/max span the full history")
}

func TestStartOperationTimes(t *testing.T) {
	p := New(Options{})
	done := p.StartOperation("suppress")
	time.Sleep(5 * time.Millisecond)
	done()

	p.mu.Lock()
	tr := p.timings["suppress"]
	p.mu.Unlock()
	require.NotNil(t, tr)
	assert.Equal(t, int64(1), tr.count)
	assert.GreaterOrEqual(t, tr.total, 5*time.Millisecond)
}

func TestCollectorsArePolled(t *testing.T) {
	p := New(Options{SampleInterval: time.Millisecond, ReportInterval: time.Hour})
	p.AddCollector(CollectorFunc(func() map[string]float64 {
		return map[string]float64{"queue_depth": 3}
	}))

	p.Start()
	time.Sleep(20 * time.Millisecond)
	p.Stop()

	snap := p.Snapshot()
	require.Contains(t, snap, "queue_depth")
	assert.Equal(t, float64(3), snap["queue_depth"].Max)
	assert.Positive(t, snap["goroutines"].Samples, "runtime health is sampled alongside collectors")
}

func TestStartStopIdempotent(t *testing.T) {
	p := New(Options{SampleInterval: time.Millisecond, ReportInterval: time.Hour})
	p.Start()
	p.Start()
	p.Stop()
	p.Stop()
}
