package synth

import (
	"math"

	"github.com/osuushi/topocheck"
	"gonum.org/v1/gonum/mat"
)

// A 2D affine transform, stored as a 3x3 homogeneous matrix.
type Affine struct {
	m *mat.Dense
}

// The parameters of an affine transform, applied in field order: scale and
// shear, then rotation, then an optional Y mirror, then translation.
type AffineParams struct {
	ScaleX, ScaleY float64
	Shear          float64 // Added to X in proportion to Y
	Rotation       float64 // Radians, counterclockwise
	FlipY          bool
	TranslateX     float64
	TranslateY     float64
}

func Identity() Affine {
	return Affine{mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})}
}

func NewAffine(params AffineParams) Affine {
	scale := mat.NewDense(3, 3, []float64{
		params.ScaleX, params.Shear, 0,
		0, params.ScaleY, 0,
		0, 0, 1,
	})
	cos, sin := math.Cos(params.Rotation), math.Sin(params.Rotation)
	rotate := mat.NewDense(3, 3, []float64{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	})
	flip := 1.0
	if params.FlipY {
		flip = -1
	}
	mirror := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, flip, 0,
		0, 0, 1,
	})
	translate := mat.NewDense(3, 3, []float64{
		1, 0, params.TranslateX,
		0, 1, params.TranslateY,
		0, 0, 1,
	})

	// Matrices apply right to left
	var m mat.Dense
	m.Product(translate, mirror, rotate, scale)
	return Affine{&m}
}

func (a Affine) Apply(p topocheck.Point) topocheck.Point {
	m := a.m
	return topocheck.Point{
		X: m.At(0, 0)*p.X + m.At(0, 1)*p.Y + m.At(0, 2),
		Y: m.At(1, 0)*p.X + m.At(1, 1)*p.Y + m.At(1, 2),
	}
}

func (a Affine) ApplyAll(points topocheck.PointSet) topocheck.PointSet {
	result := make(topocheck.PointSet, len(points))
	for i, p := range points {
		result[i] = a.Apply(p)
	}
	return result
}

// Apply a after b.
func (a Affine) Compose(b Affine) Affine {
	var m mat.Dense
	m.Mul(a.m, b.m)
	return Affine{&m}
}

// Determinant of the linear part. Negative means the transform mirrors the
// plane, which turns every triangle inside out.
func (a Affine) Det() float64 {
	return mat.Det(a.m.Slice(0, 2, 0, 2))
}
