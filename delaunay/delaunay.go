// Delaunay triangulation of point sets, for use as a topocheck.Triangulator.
package delaunay

import (
	"github.com/fogleman/delaunay"
	"github.com/osuushi/topocheck/internal"
	"github.com/pkg/errors"
)

// Triangulates with github.com/fogleman/delaunay. The zero value is ready to
// use, and it holds no state between calls.
type Delaunay struct{}

// Triangles are index triples into points. Fewer than three distinct points,
// or all points collinear, give an error.
func (Delaunay) Triangulate(points internal.PointSet) ([]internal.Triangle, error) {
	input := make([]delaunay.Point, len(points))
	for i, p := range points {
		input[i] = delaunay.Point{X: p.X, Y: p.Y}
	}

	triangulation, err := delaunay.Triangulate(input)
	if err != nil {
		return nil, errors.Wrapf(err, "delaunay triangulation of %d points", len(points))
	}

	flat := triangulation.Triangles
	triangles := make([]internal.Triangle, 0, len(flat)/3)
	for i := 0; i+2 < len(flat); i += 3 {
		triangles = append(triangles, internal.Triangle{flat[i], flat[i+1], flat[i+2]})
	}
	return triangles, nil
}
