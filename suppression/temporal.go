package suppression

import (
	"time"

	"github.com/nvr-ai/go-nms/boxes"
)

// ApplyTemporal stabilizes video detections across frames. The current
// frame's candidates go through standard suppression; each retained box is
// then matched against the previous frame's *output* (the highest-IoU box
// at or above the IoU threshold) and, when a match exists, its confidence
// and coordinates are blended:
//
//	blended = temporalWeight*current + (1-temporalWeight)*previous
//
// Unmatched boxes pass through unchanged, and an empty previous frame makes
// the call equivalent to plain standard suppression. The processor never
// retains frame history itself; the caller threads each frame's output into
// the next call.
func (p *Processor) ApplyTemporal(current, previous []boxes.BoundingBox, temporalWeight float32) ([]boxes.BoundingBox, Stats) {
	cfg := p.Config()
	w := clamp01(temporalWeight, 1)
	start := time.Now()

	kept := admit(current, cfg.ConfidenceThreshold)
	out := make([]boxes.BoundingBox, 0, len(kept))
	for _, group := range groupByClass(kept, cfg.ClassAgnostic) {
		out = append(out, standardNMS(group, cfg.IoUThreshold)...)
	}
	out = finalize(out, cfg.MaxDetections)

	if len(previous) > 0 {
		blendWithPrevious(out, previous, cfg.IoUThreshold, w)
		// Blending changes confidences, so restore the output ordering.
		boxes.SortByConfidence(out)
	}

	stats := buildStats(len(current), out, time.Since(start))
	p.record(stats)
	return out, stats
}

// blendWithPrevious damps frame-to-frame flicker by pulling each current
// box toward its best previous-frame match.
func blendWithPrevious(out, previous []boxes.BoundingBox, iouThreshold, w float32) {
	fb := buildIndex(previous)
	for i := range out {
		best := -1
		var bestIoU float32
		for _, j := range fb.Search(out[i].X1, out[i].Y1, out[i].X2, out[i].Y2) {
			iou := boxes.IoU(out[i], previous[j])
			if iou >= iouThreshold && iou > bestIoU {
				best = j
				bestIoU = iou
			}
		}
		if best < 0 {
			continue
		}
		match := previous[best]
		out[i].X1 = w*out[i].X1 + (1-w)*match.X1
		out[i].Y1 = w*out[i].Y1 + (1-w)*match.Y1
		out[i].X2 = w*out[i].X2 + (1-w)*match.X2
		out[i].Y2 = w*out[i].Y2 + (1-w)*match.Y2
		out[i].Confidence = w*out[i].Confidence + (1-w)*match.Confidence
	}
}
