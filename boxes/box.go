// Package boxes - Bounding box geometry for detection post-processing.
package boxes

import (
	"fmt"

	"github.com/chewxy/math32"
)

// BoundingBox represents one detected region with its confidence score and
// class. Coordinates are corner-form (X1,Y1) top-left, (X2,Y2) bottom-right,
// either pixel or [0,1]-normalized; the caller decides which space it is in.
//
// Values are never mutated in place: every transform returns a new box.
type BoundingBox struct {
	X1         float32 `json:"x1"`
	Y1         float32 `json:"y1"`
	X2         float32 `json:"x2"`
	Y2         float32 `json:"y2"`
	Confidence float32 `json:"confidence"`
	ClassID    int     `json:"classID"`
	Label      string  `json:"label"` // display name only, never used by suppression logic
}

// Point is a 2D coordinate in the same space as the box corners.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() float32 {
	return b.X2 - b.X1
}

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() float32 {
	return b.Y2 - b.Y1
}

// Area returns the area of the box. A degenerate box yields zero or a
// negative value; callers that care must check IsValid first.
func (b BoundingBox) Area() float32 {
	return b.Width() * b.Height()
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Point {
	return Point{
		X: (b.X1 + b.X2) / 2,
		Y: (b.Y1 + b.Y2) / 2,
	}
}

// IsValid reports whether the box has strictly positive area and all of its
// numeric fields are finite. Suppression drops invalid boxes up front.
func (b BoundingBox) IsValid() bool {
	for _, v := range [5]float32{b.X1, b.Y1, b.X2, b.Y2, b.Confidence} {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return b.X2 > b.X1 && b.Y2 > b.Y1
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("Object %s (confidence %.2f): (%.2f, %.2f), (%.2f, %.2f)",
		b.Label, b.Confidence, b.X1, b.Y1, b.X2, b.Y2)
}
