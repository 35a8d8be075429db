package suppression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-nms/boxes"
)

func TestTemporalFallsBackToStandardWithoutHistory(t *testing.T) {
	input := randomCandidates(17, 80, 3)

	for _, w := range []float32{0, 0.3, 0.7, 1} {
		p := NewProcessor(Config{IoUThreshold: 0.45, ConfidenceThreshold: 0.25})
		standardOut, _ := p.Apply(input)
		temporalOut, _ := p.ApplyTemporal(input, nil, w)
		assert.Equal(t, standardOut, temporalOut,
			"empty previous frame must reduce to plain standard suppression (w=%v)", w)
	}
}

func TestTemporalBlendsMatchedBoxes(t *testing.T) {
	p := NewProcessor(Config{IoUThreshold: 0.4, ConfidenceThreshold: 0.1})

	current := []boxes.BoundingBox{
		{X1: 10, Y1: 10, X2: 110, Y2: 110, Confidence: 0.8, ClassID: 1, Label: "person"},
	}
	previous := []boxes.BoundingBox{
		{X1: 0, Y1: 0, X2: 100, Y2: 100, Confidence: 0.6, ClassID: 1, Label: "person"},
	}
	require.GreaterOrEqual(t, boxes.IoU(current[0], previous[0]), float32(0.4))

	out, _ := p.ApplyTemporal(current, previous, 0.7)

	require.Len(t, out, 1)
	assert.InDelta(t, 0.7*10+0.3*0, out[0].X1, 1e-5)
	assert.InDelta(t, 0.7*110+0.3*100, out[0].X2, 1e-5)
	assert.InDelta(t, 0.7*0.8+0.3*0.6, out[0].Confidence, 1e-5)
	assert.Equal(t, 1, out[0].ClassID, "identity fields stay with the current detection")
}

func TestTemporalUnmatchedBoxesPassThrough(t *testing.T) {
	p := NewProcessor(Config{IoUThreshold: 0.4, ConfidenceThreshold: 0.1})

	current := []boxes.BoundingBox{
		{X1: 0, Y1: 0, X2: 50, Y2: 50, Confidence: 0.9, ClassID: 0},
	}
	previous := []boxes.BoundingBox{
		{X1: 500, Y1: 500, X2: 550, Y2: 550, Confidence: 0.9, ClassID: 0},
	}

	out, _ := p.ApplyTemporal(current, previous, 0.5)

	require.Len(t, out, 1)
	assert.Equal(t, current[0], out[0], "no match above the threshold leaves the box unchanged")
}

func TestTemporalPicksHighestIoUMatch(t *testing.T) {
	p := NewProcessor(Config{IoUThreshold: 0.3, ConfidenceThreshold: 0.1})

	current := []boxes.BoundingBox{
		{X1: 0, Y1: 0, X2: 100, Y2: 100, Confidence: 0.8, ClassID: 1},
	}
	previous := []boxes.BoundingBox{
		{X1: 40, Y1: 0, X2: 140, Y2: 100, Confidence: 0.1, ClassID: 1}, // weaker overlap
		{X1: 5, Y1: 0, X2: 105, Y2: 100, Confidence: 0.5, ClassID: 1},  // best overlap
	}

	out, _ := p.ApplyTemporal(current, previous, 0.5)

	require.Len(t, out, 1)
	assert.InDelta(t, 0.5*0.8+0.5*0.5, out[0].Confidence, 1e-5,
		"blending uses the highest-IoU previous box, not the first above threshold")
}

func TestTemporalStatsAndOrdering(t *testing.T) {
	p := NewProcessor(Config{IoUThreshold: 0.5, ConfidenceThreshold: 0.1})

	current := []boxes.BoundingBox{
		{X1: 0, Y1: 0, X2: 50, Y2: 50, Confidence: 0.6, ClassID: 0},
		{X1: 200, Y1: 200, X2: 250, Y2: 250, Confidence: 0.9, ClassID: 1},
	}
	// The previous frame boosts only the weaker current box enough to
	// reorder the output.
	previous := []boxes.BoundingBox{
		{X1: 0, Y1: 0, X2: 50, Y2: 50, Confidence: 1.0, ClassID: 0},
	}

	out, stats := p.ApplyTemporal(current, previous, 0.2)

	require.Len(t, out, 2)
	assert.GreaterOrEqual(t, out[0].Confidence, out[1].Confidence,
		"output is re-sorted after blending")
	assert.Equal(t, 0, out[0].ClassID)
	assert.Equal(t, 2, stats.InputBoxes)
	assert.Equal(t, map[int]int{0: 1, 1: 1}, stats.PerClass)
}
