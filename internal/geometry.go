package internal

// Geometric predicates for the sweep. None of these use a tolerance. Exact
// float comparison is part of the contract: a collinear triple is "not CCW",
// so touching and overlapping configurations are never reported as crossings.
// Near-degenerate inputs can flip either way, and that instability is
// deliberately left alone.

// Twice the signed area of the triangle abc. Positive when c lies to the left
// of the directed line a->b.
func Orientation(a, b, c Point) float64 {
	return (c.Y-a.Y)*(b.X-a.X) - (b.Y-a.Y)*(c.X-a.X)
}

// Strictly counterclockwise. Collinear points return false.
func IsCCW(a, b, c Point) bool {
	return Orientation(a, b, c) > 0
}

// Do segments p1p2 and p3p4 cross? Shared endpoints are not special cased, so
// callers must filter out edges that share an index before asking.
func SegmentsIntersect(p1, p2, p3, p4 Point) bool {
	return IsCCW(p1, p3, p4) != IsCCW(p2, p3, p4) &&
		IsCCW(p1, p2, p3) != IsCCW(p1, p2, p4)
}

// The Y value of the segment's supporting line at the given X. Vertical
// segments report their lower endpoint.
func SweepOrderKey(start, end Point, atX float64) float64 {
	if start.X == end.X {
		if start.Y < end.Y {
			return start.Y
		}
		return end.Y
	}
	return start.Y + (end.Y-start.Y)*(atX-start.X)/(end.X-start.X)
}
