// Detect folds in a point correspondence.
//
// Given two planar point sets whose indices correspond (point i in one set is
// the same logical point as point i in the other), this package triangulates
// the first set, carries the triangle edges over to the second set, and reports
// every pair of edges that cross there. A correspondence that preserves
// topology produces no crossings. Folds and inversions in a matching or
// registration show up as crossing edges.
//
// Crossings are found with a plane sweep, so edges whose X extents never
// overlap are never compared.
package topocheck

import (
	"github.com/golang/glog"
	"github.com/osuushi/topocheck/internal"
	"github.com/pkg/errors"
)

type Point = internal.Point
type PointSet = internal.PointSet
type Triangle = internal.Triangle
type Edge = internal.Edge
type Crossing = internal.Crossing
type IndexError = internal.IndexError

// Returned, wrapped, when the two point sets don't have the same length.
var ErrLengthMismatch = errors.New("point sets differ in length")

// Anything that can triangulate a point set. The triangulation is only used
// for its connectivity, so any algorithm will do, but it should be a valid
// triangulation of its input or the check will report its own crossings.
type Triangulator interface {
	Triangulate(points PointSet) ([]Triangle, error)
}

// The outcome of a full check.
type Result struct {
	Triangles []Triangle
	// Edges in id order. Crossings refer to edges by their index here.
	Edges     []Edge
	Crossings []Crossing
}

// Whether the correspondence is free of crossings.
func (r *Result) OK() bool {
	return len(r.Crossings) == 0
}

// Report crossing edges of the triangulation when its points are moved from a
// to b. Only the length of a is used here; the edges are swept, and tested for
// crossings, in b.
//
// Each returned Crossing names two edge ids. Triangle i owns edge ids 3i, 3i+1
// and 3i+2, for its sides (t[0], t[1]), (t[1], t[2]) and (t[2], t[0]). Shared
// sides are not merged, so a crossing against a side shared by two triangles
// is reported once for each copy. An unordered pair of edge ids is never
// reported twice.
//
// Returns an error wrapping ErrLengthMismatch if the point sets differ in
// length, or an *IndexError if a triangle refers to a point that doesn't exist.
func DetectTopologyErrors(triangles []Triangle, a, b PointSet) ([]Crossing, error) {
	_, crossings, err := detect(triangles, a, b)
	return crossings, err
}

// Triangulate a, then detect crossings in b.
func Check(triangulator Triangulator, a, b PointSet) (*Result, error) {
	if err := checkLengths(a, b); err != nil {
		return nil, err
	}

	triangles, err := triangulator.Triangulate(a)
	if err != nil {
		return nil, errors.Wrap(err, "triangulating source points")
	}
	glog.V(2).Infof("triangulated %d points into %d triangles", len(a), len(triangles))

	edges, crossings, err := detect(triangles, a, b)
	if err != nil {
		return nil, err
	}
	glog.V(1).Infof("checked %d edges, found %d crossings", len(edges), len(crossings))

	return &Result{
		Triangles: triangles,
		Edges:     edges,
		Crossings: crossings,
	}, nil
}

func detect(triangles []Triangle, a, b PointSet) (edges []Edge, crossings []Crossing, err error) {
	if err := checkLengths(a, b); err != nil {
		return nil, nil, err
	}

	defer func() {
		if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
			edges = nil
			crossings = nil
			err = recoveredErr
		}
	}()

	edges = internal.ExtractEdges(triangles, len(a))
	crossings = internal.Sweep(edges, b)
	return edges, crossings, nil
}

func checkLengths(a, b PointSet) error {
	if len(a) != len(b) {
		return errors.Wrapf(ErrLengthMismatch, "%d source points, %d target points", len(a), len(b))
	}
	return nil
}
