// Draw a dataset's two planes side by side, source on the left and target on
// the right, with the triangulation in both and a marker wherever two edges
// cross in the target.
package render

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/topocheck"
	"github.com/osuushi/topocheck/advanced"
	"github.com/osuushi/topocheck/config"
	"github.com/osuushi/topocheck/dataset"
	"github.com/pkg/errors"
)

// Maps plane coordinates into one panel of the image. Each plane is fitted to
// its own bounds, so the panels are not to the same scale.
type panel struct {
	origin r2.Point // Lower corner of the plane's bounds
	offset r2.Point // Top left of the panel in the image
	scale  float64
}

func newPanel(points topocheck.PointSet, index int, style config.Render) panel {
	size := float64(style.Size)
	p := panel{
		offset: r2.Point{X: float64(index)*(size+2*style.Padding) + style.Padding, Y: style.Padding},
		scale:  1,
	}
	if len(points) == 0 {
		return p
	}

	vertices := make([]r2.Point, len(points))
	for i, point := range points {
		vertices[i] = r2.Point{X: point.X, Y: point.Y}
	}
	bounds := r2.RectFromPoints(vertices...)
	extent := bounds.Size()
	bounds = bounds.Expanded(extent.Mul(style.Margin))

	p.origin = bounds.Lo()
	if longest := math.Max(bounds.Size().X, bounds.Size().Y); longest > 0 {
		p.scale = size / longest
	}
	return p
}

func (p panel) project(point topocheck.Point) (float64, float64) {
	return p.offset.X + (point.X-p.origin.X)*p.scale,
		p.offset.Y + (point.Y-p.origin.Y)*p.scale
}

// Draw the dataset. Without a stored triangulation only the points are drawn.
func Draw(ds *dataset.Dataset, style config.Render) (*gg.Context, error) {
	size := float64(style.Size)
	width := int(2 * (size + 2*style.Padding))
	height := int(size + 2*style.Padding)
	c := gg.NewContext(width, height)
	c.SetHexColor(style.Background)
	c.Clear()

	planes := []topocheck.PointSet{ds.PointsA, ds.PointsB}
	panels := []panel{
		newPanel(ds.PointsA, 0, style),
		newPanel(ds.PointsB, 1, style),
	}

	var edges []topocheck.Edge
	if len(ds.Triangles) > 0 {
		var err error
		edges, err = advanced.ExtractEdges(ds.Triangles, len(ds.PointsA))
		if err != nil {
			return nil, errors.Wrap(err, "drawing stored triangulation")
		}
	}

	c.SetLineWidth(style.LineWidth)
	c.SetHexColor(style.Edge)
	for i, plane := range planes {
		for _, edge := range edges {
			start, end := edge.In(plane)
			x1, y1 := panels[i].project(start)
			x2, y2 := panels[i].project(end)
			c.DrawLine(x1, y1, x2, y2)
		}
		c.Stroke()
	}

	c.SetHexColor(style.Point)
	for i, plane := range planes {
		for _, point := range plane {
			x, y := panels[i].project(point)
			c.DrawCircle(x, y, style.PointRadius)
		}
		c.Fill()
	}

	if len(ds.Crossings) > 0 && edges != nil {
		for _, crossing := range ds.Crossings {
			if crossing.A < 0 || crossing.A >= len(edges) || crossing.B < 0 || crossing.B >= len(edges) {
				return nil, errors.Errorf("stored crossing %v refers to a missing edge", crossing)
			}
		}
		c.SetHexColor(style.Mark)
		for _, point := range topocheck.LocateAll(edges, ds.PointsB, ds.Crossings) {
			x, y := panels[1].project(point)
			c.DrawCircle(x, y, style.MarkRadius)
		}
		c.Stroke()
	}

	return c, nil
}

// Draw the dataset into a PNG file.
func Save(path string, ds *dataset.Dataset, style config.Render) error {
	c, err := Draw(ds, style)
	if err != nil {
		return err
	}
	return errors.Wrap(c.SavePNG(path), "saving render")
}

// Print a saved PNG inline in the terminal. Only iTerm understands this.
func Show(path string) {
	imgcat.CatFile(path, os.Stdout)
}
