package suppression

import (
	flatbush "github.com/bmharper/flatbush-go"

	"github.com/nvr-ai/go-nms/boxes"
)

// buildIndex creates a spatial index over the group so candidate lookups
// (cluster members, density neighbors, previous-frame matches) avoid O(N²)
// scans. Search returns candidate indices only; callers still verify IoU.
func buildIndex(bs []boxes.BoundingBox) *flatbush.Flatbush[float32] {
	fb := flatbush.NewFlatbush[float32]()
	fb.Reserve(len(bs))
	for _, b := range bs {
		fb.Add(b.X1, b.Y1, b.X2, b.Y2)
	}
	fb.Finish()
	return fb
}
