package boxes

// Scale returns a copy of the box with every corner scaled by (sx, sy)
// around the origin.
func (b BoundingBox) Scale(sx, sy float32) BoundingBox {
	b.X1 *= sx
	b.Y1 *= sy
	b.X2 *= sx
	b.Y2 *= sy
	return b
}

// Translate returns a copy of the box shifted by (dx, dy).
func (b BoundingBox) Translate(dx, dy float32) BoundingBox {
	b.X1 += dx
	b.Y1 += dy
	b.X2 += dx
	b.Y2 += dy
	return b
}

// Clip returns a copy of the box with every corner clamped into
// [0,width] x [0,height]. A box entirely outside the image collapses to zero
// area on the nearest edge; callers must check the resulting area before
// using it.
func (b BoundingBox) Clip(width, height float32) BoundingBox {
	b.X1 = clamp(b.X1, 0, width)
	b.Y1 = clamp(b.Y1, 0, height)
	b.X2 = clamp(b.X2, 0, width)
	b.Y2 = clamp(b.Y2, 0, height)
	return b
}

// RelativeToAbsolute converts a box with [0,1]-normalized coordinates into
// pixel coordinates for an image of the given dimensions.
func (b BoundingBox) RelativeToAbsolute(imageWidth, imageHeight int) BoundingBox {
	w := float32(imageWidth)
	h := float32(imageHeight)
	b.X1 *= w
	b.Y1 *= h
	b.X2 *= w
	b.Y2 *= h
	return b
}

// AbsoluteToRelative converts a box with pixel coordinates into
// [0,1]-normalized coordinates for an image of the given dimensions.
// Round-trips with RelativeToAbsolute up to floating point precision.
func (b BoundingBox) AbsoluteToRelative(imageWidth, imageHeight int) BoundingBox {
	w := float32(imageWidth)
	h := float32(imageHeight)
	b.X1 /= w
	b.Y1 /= h
	b.X2 /= w
	b.Y2 /= h
	return b
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}
