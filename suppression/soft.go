package suppression

import (
	"github.com/chewxy/math32"

	"github.com/nvr-ai/go-nms/boxes"
)

// softNMS runs the same greedy loop as standardNMS, but instead of dropping
// a rival outright it decays the rival's confidence by a Gaussian penalty
// of the overlap. A box only disappears once its (possibly repeatedly
// decayed) confidence falls below the configured floor, so heavily
// overlapping but distinct objects survive with a reduced score.
func softNMS(group []boxes.BoundingBox, sigma, confidenceThreshold float32) []boxes.BoundingBox {
	pool := make([]boxes.BoundingBox, len(group))
	copy(pool, group)
	kept := make([]boxes.BoundingBox, 0, len(pool))

	for len(pool) > 0 {
		boxes.SortByConfidence(pool)
		top := pool[0]
		kept = append(kept, top)

		remaining := make([]boxes.BoundingBox, 0, len(pool)-1)
		for _, b := range pool[1:] {
			if iou := boxes.IoU(top, b); iou > 0 {
				b.Confidence *= softDecay(iou, sigma)
			}
			if b.Confidence >= confidenceThreshold {
				remaining = append(remaining, b)
			}
		}
		pool = remaining
	}
	return kept
}

// softDecay is the Gaussian score penalty exp(-iou²/sigma).
func softDecay(iou, sigma float32) float32 {
	return math32.Exp(-(iou * iou) / sigma)
}
