package suppression

import (
	"sort"

	"github.com/nvr-ai/go-nms/boxes"
)

// weightedNMS replaces each overlapping cluster with a single merged box.
// The most confident remaining box seeds a cluster; every remaining box
// whose IoU with the seed reaches iouThreshold joins it, and the cluster is
// folded into one box by confidence-weighted merging, most confident
// member first.
//
// Sorts the group in place.
func weightedNMS(group []boxes.BoundingBox, iouThreshold float32) []boxes.BoundingBox {
	boxes.SortByConfidence(group)
	fb := buildIndex(group)

	consumed := make([]bool, len(group))
	out := make([]boxes.BoundingBox, 0, len(group))

	for i := range group {
		if consumed[i] {
			continue
		}
		consumed[i] = true
		merged := group[i]

		// The group is confidence-sorted, so index order is merge order.
		members := fb.Search(group[i].X1, group[i].Y1, group[i].X2, group[i].Y2)
		sort.Ints(members)
		for _, j := range members {
			if consumed[j] {
				continue
			}
			if boxes.IoU(group[i], group[j]) >= iouThreshold {
				consumed[j] = true
				merged = boxes.Merge(merged, group[j])
			}
		}
		out = append(out, merged)
	}
	return out
}
