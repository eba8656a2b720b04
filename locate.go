package topocheck

import (
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy/lineintersection"
	"github.com/twpayne/go-geom/xy/lineintersector"
)

// Where two crossing edges meet in the given plane. The detector decides
// crossings with exact orientation tests, while this uses go-geom's robust
// intersector, so for a nearly degenerate pair the two can disagree. In that
// case ok is false and the crossing simply has no location to show.
func Locate(edges []Edge, points PointSet, crossing Crossing) (p Point, ok bool) {
	a1, a2 := edges[crossing.A].In(points)
	b1, b2 := edges[crossing.B].In(points)

	result := lineintersector.LineIntersectsLine(
		lineintersector.RobustLineIntersector{},
		coord(a1), coord(a2), coord(b1), coord(b2),
	)
	if result.Type() != lineintersection.PointIntersection {
		return Point{}, false
	}
	intersection := result.Intersection()
	if len(intersection) == 0 {
		return Point{}, false
	}
	return Point{X: intersection[0].X(), Y: intersection[0].Y()}, true
}

// Locate every crossing, skipping those without a single meeting point.
func LocateAll(edges []Edge, points PointSet, crossings []Crossing) []Point {
	located := make([]Point, 0, len(crossings))
	for _, crossing := range crossings {
		if p, ok := Locate(edges, points, crossing); ok {
			located = append(located, p)
		}
	}
	return located
}

func coord(p Point) geom.Coord {
	return geom.Coord{p.X, p.Y}
}
