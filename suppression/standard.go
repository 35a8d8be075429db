package suppression

import (
	"github.com/nvr-ai/go-nms/boxes"
)

// standardNMS performs greedy suppression within one group: take the most
// confident remaining box, discard every remaining box whose IoU with it
// reaches iouThreshold, repeat until the group is empty. Every pair of
// retained boxes therefore has IoU below the threshold.
//
// Sorts the group in place.
func standardNMS(group []boxes.BoundingBox, iouThreshold float32) []boxes.BoundingBox {
	boxes.SortByConfidence(group)
	kept := make([]boxes.BoundingBox, 0, len(group))
	suppressed := make([]bool, len(group))

	for i := range group {
		if suppressed[i] {
			continue
		}
		kept = append(kept, group[i])

		for j := i + 1; j < len(group); j++ {
			if suppressed[j] {
				continue
			}
			if boxes.IoU(group[i], group[j]) >= iouThreshold {
				suppressed[j] = true
			}
		}
	}
	return kept
}
