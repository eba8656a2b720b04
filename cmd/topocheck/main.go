// Check point correspondences stored as JSON datasets, generate synthetic ones,
// and draw them.
//
//	topocheck generate -o data.json
//	topocheck check data.json --write
//	topocheck render data.json -o data.png --imgcat
//
// check exits with status 1 when it finds crossings, and 2 on any error.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/golang/glog"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/topocheck"
	"github.com/osuushi/topocheck/config"
	"github.com/osuushi/topocheck/dataset"
	"github.com/osuushi/topocheck/dbg"
	"github.com/osuushi/topocheck/delaunay"
	"github.com/osuushi/topocheck/render"
	"github.com/osuushi/topocheck/synth"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Everything a command needs, passed explicitly rather than kept in globals.
type env struct {
	cfg config.Config
	au  aurora.Aurora
	out io.Writer
}

var errCrossings = errors.New("crossings found")

func main() {
	app := kingpin.New("topocheck", "Detect folds in point correspondences by checking a transported triangulation for crossing edges.")
	configPath := app.Flag("config", "YAML config file.").Short('c').ExistingFile()
	noColor := app.Flag("no-color", "Disable colored output.").Bool()
	verbosity := app.Flag("verbosity", "Log verbosity.").Short('v').Default("0").Int()

	checkCmd := app.Command("check", "Triangulate plane A and report crossing edges in plane B.")
	checkFile := checkCmd.Arg("dataset", "Dataset JSON file.").Required().ExistingFile()
	checkWrite := checkCmd.Flag("write", "Store the triangulation and crossings back into the dataset.").Bool()
	checkGeoJSON := checkCmd.Flag("geojson", "Export plane B edges and crossing points as GeoJSON.").String()
	checkNames := checkCmd.Flag("names", "Show readable names next to edge ids.").Bool()

	generateCmd := app.Command("generate", "Generate a synthetic dataset.")
	generateOut := generateCmd.Flag("output", "Where to write the dataset.").Short('o').Default("testData.json").String()
	generateCount := generateCmd.Flag("count", "Exact number of points, overriding the configured range.").Int()
	generateSeed := generateCmd.Flag("seed", "Random seed, overriding the config. Zero means the clock.").Int64()
	generateCheck := generateCmd.Flag("check", "Check the dataset before writing it.").Bool()

	renderCmd := app.Command("render", "Draw a dataset as a PNG.")
	renderFile := renderCmd.Arg("dataset", "Dataset JSON file.").Required().ExistingFile()
	renderOut := renderCmd.Flag("output", "PNG to write.").Short('o').Default("topocheck.png").String()
	renderCheck := renderCmd.Flag("check", "Check the dataset first, even if it already has a stored result.").Bool()
	renderImgcat := renderCmd.Flag("imgcat", "Print the image inline (iTerm only).").Bool()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	setupLogging(*verbosity)
	defer glog.Flush()

	e := &env{cfg: config.Default(), out: os.Stdout}
	e.au = aurora.NewAurora(!*noColor)
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			exit(e, err)
		}
		e.cfg = cfg
	}

	var err error
	switch command {
	case checkCmd.FullCommand():
		err = e.check(*checkFile, *checkWrite, *checkGeoJSON, *checkNames)
	case generateCmd.FullCommand():
		err = e.generate(*generateOut, *generateCount, *generateSeed, *generateCheck)
	case renderCmd.FullCommand():
		err = e.render(*renderFile, *renderOut, *renderCheck, *renderImgcat)
	}
	exit(e, err)
}

// glog registers its flags on the standard flag set, so route ours through it.
func setupLogging(verbosity int) {
	flag.Set("logtostderr", "true")
	flag.Set("v", strconv.Itoa(verbosity))
	flag.CommandLine.Parse(nil)
}

func exit(e *env, err error) {
	glog.Flush()
	switch {
	case err == nil:
		os.Exit(0)
	case errors.Is(err, errCrossings):
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, e.au.Red("error:"), err)
		os.Exit(2)
	}
}

func (e *env) check(path string, write bool, geoJSONPath string, names bool) error {
	ds, err := dataset.Load(path)
	if err != nil {
		return err
	}

	result, err := topocheck.Check(delaunay.Delaunay{}, ds.PointsA, ds.PointsB)
	if err != nil {
		return err
	}
	ds.SetResult(result)
	e.report(ds, result, names)

	if write {
		if err := dataset.Save(path, ds); err != nil {
			return err
		}
		glog.V(1).Infof("stored result in %s", path)
	}

	if geoJSONPath != "" {
		f, err := os.Create(geoJSONPath)
		if err != nil {
			return errors.Wrap(err, "creating geojson")
		}
		if err := dataset.WriteGeoJSON(f, ds); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return errors.Wrap(err, "closing geojson")
		}
	}

	if !result.OK() {
		return errCrossings
	}
	return nil
}

func (e *env) report(ds *dataset.Dataset, result *topocheck.Result, names bool) {
	title := ds.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(e.out, "%s: %d points, %d triangles, %d edges\n",
		e.au.Bold(title), len(ds.PointsA), len(result.Triangles), len(result.Edges))

	if result.OK() {
		fmt.Fprintln(e.out, e.au.Green("no crossings"))
		return
	}

	fmt.Fprintln(e.out, e.au.Red(fmt.Sprintf("%d crossings", len(result.Crossings))))
	var namer *dbg.Namer
	if names {
		namer = dbg.NewNamer()
	}
	for _, crossing := range result.Crossings {
		a, b := result.Edges[crossing.A], result.Edges[crossing.B]
		line := fmt.Sprintf("  edge %d (%s) x edge %d (%s)", crossing.A, a, crossing.B, b)
		if namer != nil {
			line += fmt.Sprintf("  %s x %s", namer.Name(crossing.A), namer.Name(crossing.B))
		}
		if p, ok := topocheck.Locate(result.Edges, ds.PointsB, crossing); ok {
			line += fmt.Sprintf("  at %s", e.au.Yellow(p))
		}
		fmt.Fprintln(e.out, line)
	}
}

func (e *env) generate(path string, count int, seed int64, check bool) error {
	cfg := e.cfg.Synth
	if count > 0 {
		cfg.Count = config.Range{Min: float64(count), Max: float64(count)}
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if err := (config.Config{Synth: cfg, Render: e.cfg.Render}).Validate(); err != nil {
		return err
	}

	ds := synth.New(cfg, nil).Dataset()
	if check {
		result, err := topocheck.Check(delaunay.Delaunay{}, ds.PointsA, ds.PointsB)
		if err != nil {
			return err
		}
		ds.SetResult(result)
		e.report(ds, result, false)
	}

	if err := dataset.Save(path, ds); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "wrote %s (%d points) to %s\n", e.au.Bold(ds.Title), len(ds.PointsA), path)
	return nil
}

func (e *env) render(path, out string, check, show bool) error {
	ds, err := dataset.Load(path)
	if err != nil {
		return err
	}

	if check || len(ds.Triangles) == 0 {
		result, err := topocheck.Check(delaunay.Delaunay{}, ds.PointsA, ds.PointsB)
		if err != nil {
			return err
		}
		ds.SetResult(result)
	}

	if err := render.Save(out, ds, e.cfg.Render); err != nil {
		return err
	}
	glog.V(1).Infof("rendered %s to %s", path, out)
	if show {
		render.Show(out)
	}
	return nil
}
