package suppression

import (
	"sort"

	"github.com/nvr-ai/go-nms/boxes"
)

// admit applies the pre-pass common to every algorithm: geometrically
// invalid boxes and boxes below the confidence threshold are dropped. The
// caller counts the difference as suppressed.
func admit(input []boxes.BoundingBox, confidenceThreshold float32) []boxes.BoundingBox {
	kept := make([]boxes.BoundingBox, 0, len(input))
	for _, b := range input {
		if b.IsValid() && b.Confidence >= confidenceThreshold {
			kept = append(kept, b)
		}
	}
	return kept
}

// groupByClass splits the candidates into per-class groups, returned in
// ascending class order so runs are reproducible. With agnostic set, all
// candidates form a single group and suppression crosses class boundaries.
func groupByClass(bs []boxes.BoundingBox, agnostic bool) [][]boxes.BoundingBox {
	if agnostic {
		if len(bs) == 0 {
			return nil
		}
		group := make([]boxes.BoundingBox, len(bs))
		copy(group, bs)
		return [][]boxes.BoundingBox{group}
	}
	byClass := map[int][]boxes.BoundingBox{}
	for _, b := range bs {
		byClass[b.ClassID] = append(byClass[b.ClassID], b)
	}
	classes := make([]int, 0, len(byClass))
	for class := range byClass {
		classes = append(classes, class)
	}
	sort.Ints(classes)
	groups := make([][]boxes.BoundingBox, 0, len(classes))
	for _, class := range classes {
		groups = append(groups, byClass[class])
	}
	return groups
}

// finalize merges the per-group results into the final output: sorted by
// confidence with the fixed tie-break, then capped globally at
// maxDetections (0 = unlimited).
func finalize(out []boxes.BoundingBox, maxDetections int) []boxes.BoundingBox {
	boxes.SortByConfidence(out)
	if maxDetections > 0 && len(out) > maxDetections {
		out = out[:maxDetections]
	}
	return out
}
