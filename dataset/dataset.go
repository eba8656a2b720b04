// Load and save topocheck datasets.
//
// A dataset is a JSON document holding two corresponding point sets and,
// optionally, the triangulation and the crossings found for them:
//
//	{
//	  "title": "...",
//	  "pointsA": [{"x": 1, "y": 2}, ...],
//	  "pointsB": [{"x": 1, "y": 2}, ...],
//	  "triangles": [[0, 1, 2], ...],
//	  "topologyErrors": [[16, 0], ...]
//	}
//
// Stored triangles and crossings are only a snapshot for display. They are not
// trusted when checking again.
package dataset

import (
	"encoding/json"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/osuushi/topocheck"
	"github.com/pkg/errors"
)

type Dataset struct {
	Title     string
	PointsA   topocheck.PointSet
	PointsB   topocheck.PointSet
	Triangles []topocheck.Triangle
	Crossings []topocheck.Crossing
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonDataset struct {
	Title          string      `json:"title"`
	PointsA        []jsonPoint `json:"pointsA"`
	PointsB        []jsonPoint `json:"pointsB"`
	Triangles      [][3]int    `json:"triangles,omitempty"`
	TopologyErrors [][2]int    `json:"topologyErrors,omitempty"`
}

// Attach the result of a check, replacing any earlier one.
func (ds *Dataset) SetResult(result *topocheck.Result) {
	ds.Triangles = result.Triangles
	ds.Crossings = result.Crossings
}

// Drop any stored triangulation and crossings. They go stale as soon as a
// point moves.
func (ds *Dataset) ClearResult() {
	ds.Triangles = nil
	ds.Crossings = nil
}

func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening dataset")
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset %s", path)
	}
	return ds, nil
}

func Save(path string, ds *Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating dataset")
	}
	if err := Write(f, ds); err != nil {
		f.Close()
		return errors.Wrapf(err, "dataset %s", path)
	}
	return errors.Wrap(f.Close(), "closing dataset")
}

// Both point sets must be present and equally long.
func Read(r io.Reader) (*Dataset, error) {
	var doc struct {
		Title string `json:"title"`
		// Pointers to tell a missing set from an empty one
		PointsA        *[]jsonPoint `json:"pointsA"`
		PointsB        *[]jsonPoint `json:"pointsB"`
		Triangles      [][3]int     `json:"triangles"`
		TopologyErrors [][2]int     `json:"topologyErrors"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decoding dataset")
	}
	if doc.PointsA == nil || doc.PointsB == nil {
		return nil, errors.New("dataset needs both pointsA and pointsB")
	}

	ds := &Dataset{
		Title:   doc.Title,
		PointsA: fromJSONPoints(*doc.PointsA),
		PointsB: fromJSONPoints(*doc.PointsB),
	}
	if len(ds.PointsA) != len(ds.PointsB) {
		glog.Warningf("dataset %q has %d points in A and %d in B", ds.Title, len(ds.PointsA), len(ds.PointsB))
		return nil, errors.Wrapf(topocheck.ErrLengthMismatch, "%d points in A, %d in B", len(ds.PointsA), len(ds.PointsB))
	}

	for _, triangle := range doc.Triangles {
		ds.Triangles = append(ds.Triangles, topocheck.Triangle(triangle))
	}
	for _, pair := range doc.TopologyErrors {
		ds.Crossings = append(ds.Crossings, topocheck.Crossing{A: pair[0], B: pair[1]})
	}
	return ds, nil
}

func Write(w io.Writer, ds *Dataset) error {
	doc := jsonDataset{
		Title:   ds.Title,
		PointsA: toJSONPoints(ds.PointsA),
		PointsB: toJSONPoints(ds.PointsB),
	}
	for _, triangle := range ds.Triangles {
		doc.Triangles = append(doc.Triangles, [3]int(triangle))
	}
	for _, crossing := range ds.Crossings {
		doc.TopologyErrors = append(doc.TopologyErrors, [2]int{crossing.A, crossing.B})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(doc), "encoding dataset")
}

func toJSONPoints(points topocheck.PointSet) []jsonPoint {
	result := make([]jsonPoint, len(points))
	for i, p := range points {
		result[i] = jsonPoint{p.X, p.Y}
	}
	return result
}

func fromJSONPoints(points []jsonPoint) topocheck.PointSet {
	result := make(topocheck.PointSet, len(points))
	for i, p := range points {
		result[i] = topocheck.Point{X: p.X, Y: p.Y}
	}
	return result
}
