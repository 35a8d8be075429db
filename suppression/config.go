// Package suppression - Non-maximum suppression over detection candidates.
//
// A Processor turns a raw candidate set produced by a detector into a final
// candidate set, according to its Config. The algorithms are pure given
// (boxes, config) and perform no I/O; every call returns a fresh Stats
// value alongside the surviving boxes.
package suppression

// Algorithm selects which suppression variant a Processor runs. The string
// form is what benchmark scenarios and JSON configs use.
type Algorithm string

const (
	// Standard is greedy suppression: keep the most confident box, drop
	// every overlapping rival, repeat.
	Standard Algorithm = "standard"
	// Soft decays the confidence of overlapping rivals instead of dropping
	// them outright, letting crowded-but-distinct objects survive.
	Soft Algorithm = "soft"
	// Weighted replaces each overlapping cluster with a single
	// confidence-weighted merged box.
	Weighted Algorithm = "weighted"
	// Adaptive derives the effective IoU threshold per box from local
	// density: crowded neighborhoods are suppressed more aggressively.
	Adaptive Algorithm = "adaptive"
)

// Defaults mirror common single-stage detector settings.
const (
	DefaultIoUThreshold          float32 = 0.45
	DefaultConfidenceThreshold   float32 = 0.5
	DefaultSoftSigma             float32 = 0.5
	DefaultMaxDetections         int     = 300
	DefaultAdaptiveBaseThreshold float32 = 0.5
)

// Config holds the parameters for one suppression run. It is read-only
// during a run; a Processor snapshots it per call.
type Config struct {
	// IoUThreshold is the overlap at or above which two boxes are
	// considered the same object. Lower values suppress more.
	IoUThreshold float32 `json:"iouThreshold"`
	// ConfidenceThreshold drops candidates below this score before any
	// algorithm runs. Soft suppression also uses it as the floor under
	// which a decayed box is permanently discarded.
	ConfidenceThreshold float32 `json:"confidenceThreshold"`
	// Algorithm selects the suppression variant. Empty means Standard.
	Algorithm Algorithm `json:"algorithm"`
	// ClassAgnostic suppresses across all classes jointly instead of
	// independently per class.
	ClassAgnostic bool `json:"classAgnostic"`
	// SoftSigma is the Gaussian decay parameter for Soft suppression.
	SoftSigma float32 `json:"softSigma"`
	// MaxDetections caps the global output size by confidence.
	// 0 means unlimited.
	MaxDetections int `json:"maxDetections"`
	// AdaptiveBaseThreshold is the starting IoU threshold for Adaptive
	// suppression, relaxed per box as its neighborhood gets denser.
	AdaptiveBaseThreshold float32 `json:"adaptiveBaseThreshold"`
	// Density maps a neighbor count to the effective IoU threshold for
	// Adaptive suppression. Nil uses DefaultDensity.
	Density DensityFunc `json:"-"`
}

// DefaultConfig returns the configuration a Processor starts with.
func DefaultConfig() Config {
	return Config{
		IoUThreshold:          DefaultIoUThreshold,
		ConfidenceThreshold:   DefaultConfidenceThreshold,
		Algorithm:             Standard,
		ClassAgnostic:         false,
		SoftSigma:             DefaultSoftSigma,
		MaxDetections:         DefaultMaxDetections,
		AdaptiveBaseThreshold: DefaultAdaptiveBaseThreshold,
	}
}

// Sanitize returns a copy with every out-of-range value clamped to the
// nearest legal one. A bad live config must not take down an in-flight
// pipeline, so nothing here fails; Processor.Config exposes the clamped
// effective values for observability.
func (c Config) Sanitize() Config {
	c.IoUThreshold = clamp01(c.IoUThreshold, DefaultIoUThreshold)
	c.ConfidenceThreshold = clamp01(c.ConfidenceThreshold, DefaultConfidenceThreshold)
	c.AdaptiveBaseThreshold = clamp01(c.AdaptiveBaseThreshold, DefaultAdaptiveBaseThreshold)
	if !(c.SoftSigma > 0) { // also catches NaN
		c.SoftSigma = DefaultSoftSigma
	}
	if c.MaxDetections < 0 {
		c.MaxDetections = 0
	}
	switch c.Algorithm {
	case Standard, Soft, Weighted, Adaptive:
	default:
		c.Algorithm = Standard
	}
	return c
}

// clamp01 clamps v into [0,1]; NaN has no nearest legal value, so it falls
// back to def.
func clamp01(v, def float32) float32 {
	if v != v {
		return def
	}
	return min(max(v, 0), 1)
}
