package benchmark

import (
	"math/rand"

	"github.com/nvr-ai/go-nms/boxes"
)

// Generator produces deterministic synthetic candidate fields for
// idempotent benchmarking: the same seed always yields the same boxes, so
// two runs of a scenario measure the same work.
type Generator struct {
	rng    *rand.Rand
	width  float32
	height float32
}

// NewGenerator creates a generator for a frame of the given dimensions.
func NewGenerator(seed int64, width, height float32) *Generator {
	return &Generator{
		rng:    rand.New(rand.NewSource(seed)),
		width:  width,
		height: height,
	}
}

// Clustered emulates a detector's raw output over a crowded scene: cluster
// centers scattered across the frame, each surrounded by jittered,
// heavily-overlapping candidates at descending confidences. This is the
// workload suppression exists for.
func (g *Generator) Clustered(clusters, perCluster, classes int) []boxes.BoundingBox {
	out := make([]boxes.BoundingBox, 0, clusters*perCluster)
	for c := 0; c < clusters; c++ {
		cx := 50 + g.rng.Float32()*(g.width-100)
		cy := 50 + g.rng.Float32()*(g.height-100)
		w := 30 + g.rng.Float32()*60
		h := 30 + g.rng.Float32()*60
		class := g.rng.Intn(classes)
		for i := 0; i < perCluster; i++ {
			jx := (g.rng.Float32() - 0.5) * w * 0.2
			jy := (g.rng.Float32() - 0.5) * h * 0.2
			out = append(out, boxes.BoundingBox{
				X1:         cx - w/2 + jx,
				Y1:         cy - h/2 + jy,
				X2:         cx + w/2 + jx,
				Y2:         cy + h/2 + jy,
				Confidence: 0.95 - 0.6*float32(i)/float32(perCluster),
				ClassID:    class,
			})
		}
	}
	return out
}

// Sparse produces mostly non-overlapping candidates, the easy case where
// suppression should be near pass-through.
func (g *Generator) Sparse(count, classes int) []boxes.BoundingBox {
	out := make([]boxes.BoundingBox, 0, count)
	for i := 0; i < count; i++ {
		x := g.rng.Float32() * (g.width - 40)
		y := g.rng.Float32() * (g.height - 40)
		out = append(out, boxes.BoundingBox{
			X1:         x,
			Y1:         y,
			X2:         x + 20 + g.rng.Float32()*20,
			Y2:         y + 20 + g.rng.Float32()*20,
			Confidence: 0.5 + g.rng.Float32()*0.5,
			ClassID:    g.rng.Intn(classes),
		})
	}
	return out
}
