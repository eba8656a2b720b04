package internal

import "sort"

// Plane sweep over edges, left to right. The sweep keeps the set of edges that
// straddle the sweep line, ordered by their height at the current X, and each
// newly started edge is tested against that set only. Edges whose X extents
// don't overlap are never compared.
//
// All coordinates come from a single plane: the one whose crossings we want.
// Events and intersection tests must agree on the plane, otherwise two edges
// that cross could be separated in X and never meet in the active set.

// Edge ids ordered by height at the sweep position. The order is rebuilt in
// full on every insertion.
type ActiveSet []int

type keyedEdge struct {
	edge int
	key  float64
}

type sweeper struct {
	edges     []Edge
	points    PointSet
	active    ActiveSet
	scratch   []keyedEdge
	crossings []Crossing
}

// Report every pair of edges that cross in the given plane and share no
// endpoint index. Each unordered pair of edge ids appears at most once, as
// {later started edge, earlier started edge}, in order of discovery.
func Sweep(edges []Edge, points PointSet) []Crossing {
	for id, edge := range edges {
		if edge.Start < 0 || edge.Start >= len(points) || edge.End < 0 || edge.End >= len(points) {
			fatalf("edge %d (%s) out of range for %d points", id, edge, len(points))
		}
	}

	s := &sweeper{edges: edges, points: points}
	for _, event := range BuildEvents(edges, points) {
		switch event.Kind {
		case Start:
			s.start(event)
		case End:
			s.active.Remove(event.Edge)
		}
	}
	return s.crossings
}

// One start and one end event per edge, sorted by X. Ties keep their build
// order, and an edge always builds its start before its end, so a zero width
// edge is active for an instant and still gets compared.
func BuildEvents(edges []Edge, points PointSet) []SweepEvent {
	events := make([]SweepEvent, 0, len(edges)*2)
	for id, edge := range edges {
		start, end := edge.In(points)
		if start.X < end.X {
			events = append(events, SweepEvent{start.X, id, Start}, SweepEvent{end.X, id, End})
		} else {
			events = append(events, SweepEvent{end.X, id, Start}, SweepEvent{start.X, id, End})
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].X < events[j].X
	})
	return events
}

func (s *sweeper) start(event SweepEvent) {
	edge := s.edges[event.Edge]
	p1, p2 := edge.In(s.points)
	for _, activeID := range s.active {
		other := s.edges[activeID]
		if edge.SharesEndpoint(other) {
			continue
		}
		p3, p4 := other.In(s.points)
		if SegmentsIntersect(p1, p2, p3, p4) {
			s.crossings = append(s.crossings, Crossing{event.Edge, activeID})
		}
	}
	s.active.Insert(event.Edge)
	s.resort(event.X)
}

func (s *sweeper) resort(x float64) {
	s.scratch = s.scratch[:0]
	for _, id := range s.active {
		start, end := s.edges[id].In(s.points)
		s.scratch = append(s.scratch, keyedEdge{id, SweepOrderKey(start, end, x)})
	}
	sort.SliceStable(s.scratch, func(i, j int) bool {
		return s.scratch[i].key < s.scratch[j].key
	})
	for i, keyed := range s.scratch {
		s.active[i] = keyed.edge
	}
}

func (s *ActiveSet) Insert(edge int) {
	*s = append(*s, edge)
}

// Remove the first occurrence of the edge. Reports whether it was present.
func (s *ActiveSet) Remove(edge int) bool {
	for i, id := range *s {
		if id == edge {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return true
		}
	}
	return false
}

func (s ActiveSet) Contains(edge int) bool {
	for _, id := range s {
		if id == edge {
			return true
		}
	}
	return false
}

func (s ActiveSet) Empty() bool {
	return len(s) == 0
}
