package suppression

import (
	"time"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-nms/boxes"
)

// ApplyClassSpecific runs standard suppression with a per-class IoU
// threshold. Classes absent from the map fall back to the processor's
// default IoU threshold; a nil map is caller misuse and the only way this
// entry point fails. Grouping is always per class here, since the
// thresholds are class-keyed.
func (p *Processor) ApplyClassSpecific(input []boxes.BoundingBox, thresholds map[int]float32) ([]boxes.BoundingBox, Stats, error) {
	if thresholds == nil {
		return nil, Stats{}, errors.New("suppression: class threshold map is nil")
	}
	cfg := p.Config()
	start := time.Now()

	kept := admit(input, cfg.ConfidenceThreshold)
	out := make([]boxes.BoundingBox, 0, len(kept))
	for _, group := range groupByClass(kept, false) {
		threshold := cfg.IoUThreshold
		if t, ok := thresholds[group[0].ClassID]; ok {
			threshold = clamp01(t, cfg.IoUThreshold)
		}
		out = append(out, standardNMS(group, threshold)...)
	}
	out = finalize(out, cfg.MaxDetections)

	stats := buildStats(len(input), out, time.Since(start))
	p.record(stats)
	return out, stats, nil
}
