// Synthetic point correspondences for exercising topocheck.
//
// The source plane is a uniform scatter. The target plane is the source pushed
// through a random affine transform with a little Gaussian noise on every
// point. Without a mirror and with small noise, the correspondence almost never
// folds, so a clean check is the expected outcome.
package synth

import (
	"math/rand"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/golang/glog"
	"github.com/osuushi/topocheck"
	"github.com/osuushi/topocheck/config"
	"github.com/osuushi/topocheck/dataset"
)

type Generator struct {
	cfg config.Synth
	rng *rand.Rand
}

// A generator drawing from rng. With a nil rng, the config's seed is used, and
// a zero seed means the current time.
func New(cfg config.Synth, rng *rand.Rand) *Generator {
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		glog.V(1).Infof("synth seed %d", seed)
		rng = rand.New(rand.NewSource(seed))
	}
	return &Generator{cfg, rng}
}

// n points uniform in the square [0, extent]².
func (g *Generator) Points(n int) topocheck.PointSet {
	points := make(topocheck.PointSet, n)
	for i := range points {
		points[i] = topocheck.Point{
			X: g.rng.Float64() * g.cfg.Extent,
			Y: g.rng.Float64() * g.cfg.Extent,
		}
	}
	return points
}

func (g *Generator) RandomAffineParams() AffineParams {
	return AffineParams{
		ScaleX:     g.draw(g.cfg.Scale),
		ScaleY:     g.draw(g.cfg.Scale),
		Shear:      g.draw(g.cfg.Shear),
		Rotation:   g.draw(g.cfg.Rotation),
		FlipY:      g.rng.Float64() < g.cfg.FlipY,
		TranslateX: g.draw(g.cfg.Translation),
		TranslateY: g.draw(g.cfg.Translation),
	}
}

// Add zero mean Gaussian noise to every coordinate. Each coordinate gets its
// own standard deviation, drawn from the noise range.
func (g *Generator) Jitter(points topocheck.PointSet) topocheck.PointSet {
	result := make(topocheck.PointSet, len(points))
	for i, p := range points {
		result[i] = topocheck.Point{
			X: p.X + g.rng.NormFloat64()*g.draw(g.cfg.Noise),
			Y: p.Y + g.rng.NormFloat64()*g.draw(g.cfg.Noise),
		}
	}
	return result
}

// A complete dataset, with a point count drawn from the count range and a
// random readable title.
func (g *Generator) Dataset() *dataset.Dataset {
	n := int(g.draw(g.cfg.Count))
	params := g.RandomAffineParams()
	glog.V(2).Infof("synth %d points, transform %+v", n, params)

	pointsA := g.Points(n)
	pointsB := g.Jitter(NewAffine(params).ApplyAll(pointsA))
	return &dataset.Dataset{
		Title:   petname.Generate(2, "-"),
		PointsA: pointsA,
		PointsB: pointsB,
	}
}

func (g *Generator) draw(r config.Range) float64 {
	return r.At(g.rng.Float64())
}
