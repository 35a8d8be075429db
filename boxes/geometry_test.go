package boxes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersectionAndUnion(t *testing.T) {
	a := BoundingBox{X1: 0, Y1: 0, X2: 100, Y2: 100}
	b := BoundingBox{X1: 50, Y1: 50, X2: 150, Y2: 150}
	c := BoundingBox{X1: 200, Y1: 200, X2: 210, Y2: 210}

	assert.Equal(t, float32(2500), IntersectionArea(a, b))
	assert.Equal(t, float32(17500), UnionArea(a, b))
	assert.Equal(t, float32(0), IntersectionArea(a, c), "disjoint boxes have no intersection")
	assert.Equal(t, float32(0), IntersectionArea(c, a), "intersection is symmetric")
}

func TestIoU(t *testing.T) {
	tests := []struct {
		name string
		a, b BoundingBox
		want float32
	}{
		{
			name: "partial overlap",
			a:    BoundingBox{X1: 0, Y1: 0, X2: 100, Y2: 100},
			b:    BoundingBox{X1: 50, Y1: 50, X2: 150, Y2: 150},
			want: 2500.0 / 17500.0,
		},
		{
			name: "identical boxes",
			a:    BoundingBox{X1: 0, Y1: 0, X2: 10, Y2: 10},
			b:    BoundingBox{X1: 0, Y1: 0, X2: 10, Y2: 10},
			want: 1,
		},
		{
			name: "disjoint boxes",
			a:    BoundingBox{X1: 0, Y1: 0, X2: 10, Y2: 10},
			b:    BoundingBox{X1: 20, Y1: 20, X2: 30, Y2: 30},
			want: 0,
		},
		{
			name: "both degenerate",
			a:    BoundingBox{X1: 5, Y1: 5, X2: 5, Y2: 5},
			b:    BoundingBox{X1: 5, Y1: 5, X2: 5, Y2: 5},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, IoU(tt.a, tt.b), 1e-6)
		})
	}
}

func TestIsOverlapping(t *testing.T) {
	a := BoundingBox{X1: 0, Y1: 0, X2: 10, Y2: 10}
	b := BoundingBox{X1: 9, Y1: 9, X2: 19, Y2: 19} // IoU = 1/199
	c := BoundingBox{X1: 50, Y1: 50, X2: 60, Y2: 60}

	assert.True(t, IsOverlapping(a, b, 0), "threshold 0 means any overlap")
	assert.False(t, IsOverlapping(a, c, 0))
	assert.False(t, IsOverlapping(a, b, 0.5))
	assert.True(t, IsOverlapping(a, a, 1))
}

func TestMerge(t *testing.T) {
	t.Run("confidence weighted corners", func(t *testing.T) {
		a := BoundingBox{X1: 0, Y1: 0, X2: 10, Y2: 10, Confidence: 0.9, ClassID: 1, Label: "person"}
		b := BoundingBox{X1: 10, Y1: 10, X2: 20, Y2: 20, Confidence: 0.1, ClassID: 2, Label: "dog"}

		m := Merge(a, b)
		assert.InDelta(t, 1.0, m.X1, 1e-5) // (0*0.9 + 10*0.1) / 1.0
		assert.InDelta(t, 1.0, m.Y1, 1e-5)
		assert.InDelta(t, 11.0, m.X2, 1e-5)
		assert.InDelta(t, 11.0, m.Y2, 1e-5)
		assert.Equal(t, float32(0.9), m.Confidence)
		assert.Equal(t, 1, m.ClassID, "class follows the more confident input")
		assert.Equal(t, "person", m.Label)
	})

	t.Run("zero confidences fall back to the arithmetic mean", func(t *testing.T) {
		a := BoundingBox{X1: 0, Y1: 0, X2: 10, Y2: 10, ClassID: 3, Label: "cat"}
		b := BoundingBox{X1: 2, Y1: 2, X2: 12, Y2: 12, ClassID: 4}

		m := Merge(a, b)
		assert.InDelta(t, 1.0, m.X1, 1e-6)
		assert.InDelta(t, 11.0, m.X2, 1e-6)
		assert.Equal(t, float32(0), m.Confidence)
		assert.Equal(t, 3, m.ClassID, "tie keeps the first input's class")
	})
}

func TestCenterDistance(t *testing.T) {
	a := BoundingBox{X1: 0, Y1: 0, X2: 10, Y2: 10}   // center (5,5)
	b := BoundingBox{X1: 3, Y1: 4, X2: 13, Y2: 14}   // center (8,9)
	assert.InDelta(t, 5.0, CenterDistance(a, b), 1e-6)
	assert.Equal(t, float32(0), CenterDistance(a, a))
}
