// Lower level access to the stages of a topology check. Most users want the
// top level topocheck package. This package is for callers that already have
// an edge list, want to sweep a plane other than the one the top level API
// picks, or want to inspect the sweep events.
package advanced

import "github.com/osuushi/topocheck/internal"

type Point = internal.Point
type PointSet = internal.PointSet
type Triangle = internal.Triangle
type Edge = internal.Edge
type Crossing = internal.Crossing
type SweepEvent = internal.SweepEvent
type EventKind = internal.EventKind
type ActiveSet = internal.ActiveSet
type IndexError = internal.IndexError

const (
	Start = internal.Start
	End   = internal.End
)

// Flatten triangles into edges, three per triangle, without deduplication. All
// indices must be below n, otherwise an *IndexError is returned.
func ExtractEdges(triangles []Triangle, n int) (edges []Edge, err error) {
	defer func() {
		if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
			edges = nil
			err = recoveredErr
		}
	}()
	return internal.ExtractEdges(triangles, n), nil
}

// Sweep a single plane for crossing edges. See internal.Sweep for the ordering
// of the result.
func Sweep(edges []Edge, points PointSet) (crossings []Crossing, err error) {
	defer func() {
		if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
			crossings = nil
			err = recoveredErr
		}
	}()
	return internal.Sweep(edges, points), nil
}

// The sweep's event queue, in processing order.
func BuildEvents(edges []Edge, points PointSet) []SweepEvent {
	return internal.BuildEvents(edges, points)
}

func Orientation(a, b, c Point) float64 { return internal.Orientation(a, b, c) }
func IsCCW(a, b, c Point) bool          { return internal.IsCCW(a, b, c) }

func SegmentsIntersect(p1, p2, p3, p4 Point) bool {
	return internal.SegmentsIntersect(p1, p2, p3, p4)
}

func SweepOrderKey(start, end Point, atX float64) float64 {
	return internal.SweepOrderKey(start, end, atX)
}
