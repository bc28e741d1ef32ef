package utils

// ScaleFactor is the ratio of a physical dimension to its logical base.
func ScaleFactor(current, base int) float64 {
	if base == 0 {
		return 0
	}
	return float64(current) / float64(base)
}

// RangesOverlap reports whether the closed intervals [aMin, aMax] and
// [bMin, bMax] share at least one point.
func RangesOverlap(aMin, aMax, bMin, bMax float64) bool {
	return aMax >= bMin && aMin <= bMax
}
