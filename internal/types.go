package internal

import "fmt"

type Point struct {
	X float64
	Y float64
}

// A PointSet is indexed by point identity. Index i names the same logical
// point in every plane the set is paired with.
type PointSet []Point

// Indices into a PointSet. The triangle's winding is irrelevant here.
type Triangle [3]int

// An edge of a triangle, as a pair of point indices. Edges are logically
// undirected, but keep the order they had in their triangle so that edge lists
// are reproducible.
type Edge struct {
	Start, End int
}

// A pair of edge ids whose segments cross. A is the edge that was being
// inserted into the sweep when the crossing was found, and B is the edge that
// was already active.
type Crossing struct {
	A, B int
}

type EventKind int

const (
	Start EventKind = iota
	End
)

// A sweep event. Edge is the edge's id, meaning its position in the edge list.
type SweepEvent struct {
	X    float64
	Edge int
	Kind EventKind
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.Start, e.End)
}

// Whether the edges share an endpoint index. Shared endpoints are a property of
// the index space, not of coordinates, so two edges whose endpoints merely
// coincide geometrically do not count.
func (e Edge) SharesEndpoint(other Edge) bool {
	return e.Start == other.Start ||
		e.Start == other.End ||
		e.End == other.Start ||
		e.End == other.End
}

// Endpoint coordinates of the edge within a plane.
func (e Edge) In(points PointSet) (Point, Point) {
	return points[e.Start], points[e.End]
}

func (k EventKind) String() string {
	switch k {
	case Start:
		return "start"
	case End:
		return "end"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}
