package dataset

import (
	"encoding/json"
	"io"

	"github.com/osuushi/topocheck"
	"github.com/osuushi/topocheck/advanced"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// Export the triangulation as it lands in plane B. Every edge becomes a
// LineString feature with its id, endpoint indices, and whether it takes part in
// any crossing. Every crossing that has a single meeting point becomes a Point
// feature naming its two edges.
//
// The dataset must carry triangles, which is to say it must have been checked.
func WriteGeoJSON(w io.Writer, ds *Dataset) error {
	if len(ds.Triangles) == 0 {
		return errors.New("dataset has no triangulation to export")
	}
	edges, err := advanced.ExtractEdges(ds.Triangles, len(ds.PointsB))
	if err != nil {
		return errors.Wrap(err, "stored triangulation")
	}

	crossed := make(map[int]bool)
	for _, crossing := range ds.Crossings {
		if crossing.A >= len(edges) || crossing.B >= len(edges) || crossing.A < 0 || crossing.B < 0 {
			return errors.Errorf("stored crossing %v refers to a missing edge", crossing)
		}
		crossed[crossing.A] = true
		crossed[crossing.B] = true
	}

	collection := &geojson.FeatureCollection{}
	for id, edge := range edges {
		start, end := edge.In(ds.PointsB)
		line := geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{
			{start.X, start.Y},
			{end.X, end.Y},
		})
		collection.Features = append(collection.Features, &geojson.Feature{
			Geometry: line,
			Properties: map[string]interface{}{
				"edge":     id,
				"start":    edge.Start,
				"end":      edge.End,
				"crossing": crossed[id],
			},
		})
	}

	for _, crossing := range ds.Crossings {
		p, ok := topocheck.Locate(edges, ds.PointsB, crossing)
		if !ok {
			continue
		}
		collection.Features = append(collection.Features, &geojson.Feature{
			Geometry: geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{p.X, p.Y}),
			Properties: map[string]interface{}{
				"edges": []int{crossing.A, crossing.B},
			},
		})
	}

	return errors.Wrap(json.NewEncoder(w).Encode(collection), "encoding geojson")
}
