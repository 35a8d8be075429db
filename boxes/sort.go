package boxes

import "sort"

// Less is the fixed ranking used wherever suppression needs a deterministic
// order: higher confidence first, ties broken by larger area, then lower
// class ID. Combined with a stable sort, boxes that tie on all three keep
// their original input order, which makes suppression output reproducible.
func Less(a, b BoundingBox) bool {
	if a.Confidence != b.Confidence {
		return a.Confidence > b.Confidence
	}
	if aa, ba := a.Area(), b.Area(); aa != ba {
		return aa > ba
	}
	return a.ClassID < b.ClassID
}

// SortByConfidence sorts in place, highest confidence first, using the
// fixed tie-break rule.
func SortByConfidence(bs []BoundingBox) {
	sort.SliceStable(bs, func(i, j int) bool {
		return Less(bs[i], bs[j])
	})
}

// SortByArea sorts in place, largest area first, with the same tie-break
// rule applied to the remaining fields.
func SortByArea(bs []BoundingBox) {
	sort.SliceStable(bs, func(i, j int) bool {
		if ai, aj := bs[i].Area(), bs[j].Area(); ai != aj {
			return ai > aj
		}
		if bs[i].Confidence != bs[j].Confidence {
			return bs[i].Confidence > bs[j].Confidence
		}
		return bs[i].ClassID < bs[j].ClassID
	})
}
