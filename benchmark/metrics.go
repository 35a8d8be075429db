// Package benchmark - Throughput measurement for suppression workloads.
package benchmark

import (
	"runtime"
	"time"
)

// Metrics captures detailed performance data for one scenario run.
type Metrics struct {
	Scenario            Scenario      `json:"scenario"`
	Timestamp           time.Time     `json:"timestamp"`
	TotalDuration       time.Duration `json:"total_duration"`
	SuppressionDuration time.Duration `json:"suppression_duration"`
	BoxesPerSecond      float64       `json:"boxes_per_second"`
	CallsPerSecond      float64       `json:"calls_per_second"`
	MemoryStats         MemoryMetrics `json:"memory_stats"`
	InputBoxes          int           `json:"input_boxes"`
	OutputBoxes         int           `json:"output_boxes"`
	SuppressedBoxes     int           `json:"suppressed_boxes"`
}

// MemoryMetrics captures memory usage statistics.
type MemoryMetrics struct {
	AllocBytes      uint64 `json:"alloc_bytes"`
	TotalAllocBytes uint64 `json:"total_alloc_bytes"`
	SysBytes        uint64 `json:"sys_bytes"`
	NumGC           uint32 `json:"num_gc"`
	HeapAllocBytes  uint64 `json:"heap_alloc_bytes"`
	HeapSysBytes    uint64 `json:"heap_sys_bytes"`
}

// captureMemory snapshots the runtime's memory statistics.
func captureMemory() MemoryMetrics {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemoryMetrics{
		AllocBytes:      m.Alloc,
		TotalAllocBytes: m.TotalAlloc,
		SysBytes:        m.Sys,
		NumGC:           m.NumGC,
		HeapAllocBytes:  m.HeapAlloc,
		HeapSysBytes:    m.HeapSys,
	}
}
