package boxes

// FilterByConfidence returns the boxes whose confidence reaches threshold,
// preserving their relative order.
func FilterByConfidence(bs []BoundingBox, threshold float32) []BoundingBox {
	out := make([]BoundingBox, 0, len(bs))
	for _, b := range bs {
		if b.Confidence >= threshold {
			out = append(out, b)
		}
	}
	return out
}

// FilterByArea returns the boxes whose area lies in [minArea, maxArea]
// inclusive, preserving their relative order.
func FilterByArea(bs []BoundingBox, minArea, maxArea float32) []BoundingBox {
	out := make([]BoundingBox, 0, len(bs))
	for _, b := range bs {
		if a := b.Area(); a >= minArea && a <= maxArea {
			out = append(out, b)
		}
	}
	return out
}
