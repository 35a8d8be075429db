package suppression

import (
	"github.com/nvr-ai/go-nms/boxes"
)

// DensityFunc converts the neighbor count of a candidate box into the
// effective IoU threshold used for that step of adaptive suppression.
// Implementations must be monotonic: more neighbors never yields a higher
// threshold, so denser neighborhoods are always suppressed at least as
// aggressively as sparse ones.
type DensityFunc func(neighbors int, base float32) float32

// densitySaturation is the neighbor count at which DefaultDensity bottoms
// out; crowds beyond it suppress no harder.
const densitySaturation = 8

// DefaultDensity ramps the effective threshold linearly from base at zero
// neighbors down to base/2 at densitySaturation neighbors.
func DefaultDensity(neighbors int, base float32) float32 {
	if neighbors > densitySaturation {
		neighbors = densitySaturation
	}
	return base * (1 - 0.5*float32(neighbors)/densitySaturation)
}

// adaptiveNMS is the greedy loop with a per-box threshold: each retained
// box counts its neighbors (group members overlapping it at the base
// threshold or more) and suppresses rivals at the density-derived
// effective threshold. Isolated objects keep the conservative base
// threshold; crowds get suppressed harder.
//
// Sorts the group in place.
func adaptiveNMS(group []boxes.BoundingBox, baseThreshold float32, density DensityFunc) []boxes.BoundingBox {
	if density == nil {
		density = DefaultDensity
	}
	boxes.SortByConfidence(group)
	fb := buildIndex(group)

	kept := make([]boxes.BoundingBox, 0, len(group))
	suppressed := make([]bool, len(group))

	for i := range group {
		if suppressed[i] {
			continue
		}
		kept = append(kept, group[i])

		// Density is measured against the raw candidate field, not just
		// the survivors, so the threshold reflects how crowded the scene
		// actually was around this box.
		neighbors := 0
		for _, j := range fb.Search(group[i].X1, group[i].Y1, group[i].X2, group[i].Y2) {
			if j == i {
				continue
			}
			if boxes.IoU(group[i], group[j]) >= baseThreshold {
				neighbors++
			}
		}
		effective := density(neighbors, baseThreshold)

		for j := i + 1; j < len(group); j++ {
			if suppressed[j] {
				continue
			}
			if boxes.IoU(group[i], group[j]) >= effective {
				suppressed[j] = true
			}
		}
	}
	return kept
}
