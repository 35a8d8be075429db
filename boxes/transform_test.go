package boxes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleAndTranslate(t *testing.T) {
	b := BoundingBox{X1: 10, Y1: 20, X2: 30, Y2: 40, Confidence: 0.8, ClassID: 1, Label: "person"}

	scaled := b.Scale(2, 0.5)
	assert.Equal(t, BoundingBox{X1: 20, Y1: 10, X2: 60, Y2: 20, Confidence: 0.8, ClassID: 1, Label: "person"}, scaled)
	assert.Equal(t, float32(10), b.X1, "transforms never mutate the receiver")

	moved := b.Translate(-10, 5)
	assert.Equal(t, float32(0), moved.X1)
	assert.Equal(t, float32(25), moved.Y1)
	assert.Equal(t, b.Width(), moved.Width(), "translation preserves extent")
}

func TestClip(t *testing.T) {
	t.Run("overhanging box is clamped", func(t *testing.T) {
		b := BoundingBox{X1: -10, Y1: 50, X2: 700, Y2: 500}
		c := b.Clip(640, 480)
		assert.Equal(t, BoundingBox{X1: 0, Y1: 50, X2: 640, Y2: 480}, c)
		assert.True(t, c.IsValid())
	})

	t.Run("box entirely outside collapses to zero area", func(t *testing.T) {
		b := BoundingBox{X1: 700, Y1: 500, X2: 800, Y2: 600, Confidence: 0.9}
		c := b.Clip(640, 480)
		assert.Equal(t, float32(0), c.Area())
		assert.False(t, c.IsValid(), "callers must check area after clipping")
	})
}

func TestCoordinateSpaceRoundTrip(t *testing.T) {
	rel := BoundingBox{X1: 0.1, Y1: 0.25, X2: 0.5, Y2: 0.75, Confidence: 0.6}

	abs := rel.RelativeToAbsolute(1920, 1080)
	assert.InDelta(t, 192, abs.X1, 1e-3)
	assert.InDelta(t, 270, abs.Y1, 1e-3)
	assert.InDelta(t, 960, abs.X2, 1e-3)
	assert.InDelta(t, 810, abs.Y2, 1e-3)

	back := abs.AbsoluteToRelative(1920, 1080)
	assert.InDelta(t, rel.X1, back.X1, 1e-6)
	assert.InDelta(t, rel.Y1, back.Y1, 1e-6)
	assert.InDelta(t, rel.X2, back.X2, 1e-6)
	assert.InDelta(t, rel.Y2, back.Y2, 1e-6)
}
