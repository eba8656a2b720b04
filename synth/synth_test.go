package synth

import (
	"math"
	"math/rand"
	"testing"

	"github.com/osuushi/topocheck"
	"github.com/osuushi/topocheck/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func assertPointInDelta(t *testing.T, expected, actual topocheck.Point) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, epsilon, "x of %s", actual)
	assert.InDelta(t, expected.Y, actual.Y, epsilon, "y of %s", actual)
}

func TestAffine(t *testing.T) {
	p := topocheck.Point{X: 3, Y: 4}

	t.Run("identity", func(t *testing.T) {
		assertPointInDelta(t, p, Identity().Apply(p))
		assertPointInDelta(t, p, NewAffine(AffineParams{ScaleX: 1, ScaleY: 1}).Apply(p))
	})

	t.Run("scale and shear", func(t *testing.T) {
		a := NewAffine(AffineParams{ScaleX: 2, ScaleY: 3, Shear: 0.5})
		assertPointInDelta(t, topocheck.Point{X: 8, Y: 12}, a.Apply(p))
	})

	t.Run("rotation then translation", func(t *testing.T) {
		a := NewAffine(AffineParams{ScaleX: 1, ScaleY: 1, Rotation: math.Pi / 2, TranslateX: 10, TranslateY: -1})
		assertPointInDelta(t, topocheck.Point{X: 6, Y: 2}, a.Apply(p))
	})

	t.Run("flip after rotation", func(t *testing.T) {
		a := NewAffine(AffineParams{ScaleX: 1, ScaleY: 1, Rotation: math.Pi / 2, FlipY: true})
		assertPointInDelta(t, topocheck.Point{X: -4, Y: -3}, a.Apply(p))
	})

	t.Run("compose", func(t *testing.T) {
		shift := NewAffine(AffineParams{ScaleX: 1, ScaleY: 1, TranslateX: 1})
		double := NewAffine(AffineParams{ScaleX: 2, ScaleY: 2})
		assertPointInDelta(t, topocheck.Point{X: 8, Y: 8}, double.Compose(shift).Apply(p))
		assertPointInDelta(t, topocheck.Point{X: 7, Y: 8}, shift.Compose(double).Apply(p))
	})

	t.Run("determinant", func(t *testing.T) {
		assert.InDelta(t, 6, NewAffine(AffineParams{ScaleX: 2, ScaleY: 3, Shear: 1, Rotation: 1}).Det(), epsilon)
		assert.InDelta(t, -1, NewAffine(AffineParams{ScaleX: 1, ScaleY: 1, FlipY: true}).Det(), epsilon)
	})
}

func TestGenerator(t *testing.T) {
	cfg := config.Default().Synth

	t.Run("deterministic for a seed", func(t *testing.T) {
		a := New(cfg, rand.New(rand.NewSource(1))).Dataset()
		b := New(cfg, rand.New(rand.NewSource(1))).Dataset()
		assert.Equal(t, a.PointsA, b.PointsA)
		assert.Equal(t, a.PointsB, b.PointsB)
	})

	t.Run("config seed", func(t *testing.T) {
		seeded := cfg
		seeded.Seed = 5
		a := New(seeded, nil).Dataset()
		b := New(seeded, nil).Dataset()
		assert.Equal(t, a.PointsB, b.PointsB)
	})

	t.Run("shape", func(t *testing.T) {
		g := New(cfg, rand.New(rand.NewSource(2)))
		for i := 0; i < 10; i++ {
			ds := g.Dataset()
			assert.GreaterOrEqual(t, len(ds.PointsA), 400)
			assert.Less(t, len(ds.PointsA), 600)
			assert.Len(t, ds.PointsB, len(ds.PointsA))
			assert.NotEmpty(t, ds.Title)
			for _, p := range ds.PointsA {
				require.True(t, p.X >= 0 && p.X <= cfg.Extent && p.Y >= 0 && p.Y <= cfg.Extent, "%s outside extent", p)
			}
		}
	})

	t.Run("without noise the target is exactly affine", func(t *testing.T) {
		quiet := cfg
		quiet.Noise = config.Range{}
		g := New(quiet, rand.New(rand.NewSource(3)))
		points := g.Points(50)
		params := g.RandomAffineParams()
		affine := NewAffine(params)
		assert.Equal(t, affine.ApplyAll(points), g.Jitter(affine.ApplyAll(points)))
	})
}
