package boxes

import (
	"github.com/chewxy/math32"
)

// IntersectionArea returns the area of the overlap rectangle between a and
// b, or 0 if they do not overlap.
func IntersectionArea(a, b BoundingBox) float32 {
	w := min(a.X2, b.X2) - max(a.X1, b.X1)
	h := min(a.Y2, b.Y2) - max(a.Y1, b.Y1)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// UnionArea returns the total area covered by a and b, counting the
// overlapping region once (inclusion-exclusion).
func UnionArea(a, b BoundingBox) float32 {
	return a.Area() + b.Area() - IntersectionArea(a, b)
}

// IoU (Intersection over Union) measures the overlap between two boxes as a
// value in [0,1]. Identical boxes score 1, disjoint boxes score 0. Defined
// as 0 when the union area is 0, so degenerate boxes never divide by zero.
func IoU(a, b BoundingBox) float32 {
	union := UnionArea(a, b)
	if union <= 0 {
		return 0
	}
	return IntersectionArea(a, b) / union
}

// IsOverlapping reports whether the IoU of a and b reaches threshold.
// A threshold of 0 (or less) means "any positive overlap".
func IsOverlapping(a, b BoundingBox, threshold float32) bool {
	iou := IoU(a, b)
	if threshold <= 0 {
		return iou > 0
	}
	return iou >= threshold
}

// Merge combines two boxes into one: each corner coordinate is the
// confidence-weighted average of the inputs, the confidence is the larger of
// the two, and the class and label follow the more confident input. When
// both confidences are 0 the corners fall back to the unweighted mean.
func Merge(a, b BoundingBox) BoundingBox {
	var out BoundingBox
	total := a.Confidence + b.Confidence
	if total > 0 {
		out.X1 = (a.X1*a.Confidence + b.X1*b.Confidence) / total
		out.Y1 = (a.Y1*a.Confidence + b.Y1*b.Confidence) / total
		out.X2 = (a.X2*a.Confidence + b.X2*b.Confidence) / total
		out.Y2 = (a.Y2*a.Confidence + b.Y2*b.Confidence) / total
	} else {
		out.X1 = (a.X1 + b.X1) / 2
		out.Y1 = (a.Y1 + b.Y1) / 2
		out.X2 = (a.X2 + b.X2) / 2
		out.Y2 = (a.Y2 + b.Y2) / 2
	}
	if b.Confidence > a.Confidence {
		out.ClassID = b.ClassID
		out.Label = b.Label
	} else {
		out.ClassID = a.ClassID
		out.Label = a.Label
	}
	out.Confidence = max(a.Confidence, b.Confidence)
	return out
}

// CenterDistance returns the Euclidean distance between the centers of a
// and b.
func CenterDistance(a, b BoundingBox) float32 {
	ca := a.Center()
	cb := b.Center()
	dx := ca.X - cb.X
	dy := ca.Y - cb.Y
	return math32.Sqrt(dx*dx + dy*dy)
}
