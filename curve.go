package bezier

import (
	. "github.com/alexozer/bezier/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

type CurvePoint struct {
	U  float64
	Pt vec3.T
}

// BezierCurve is a cubic Bezier height curve. Curves extracted from a surface
// with Isocurve also know where they lie on that surface.
type BezierCurve struct {
	binomials [GridSize]float64
	heights   [GridSize]float64

	// fixed surface parameter, and whether it is v
	fixed float64
	useV  bool
}

func NewBezierCurve(heights [GridSize]float64) *BezierCurve {
	this := &BezierCurve{heights: heights}
	copy(this.binomials[:], binomialRow(Degree))

	return this
}

func (this *BezierCurve) ControlHeights() [GridSize]float64 {
	return this.heights
}

// Compute the height of the curve at t
func (this *BezierCurve) Height(t float64) float64 {
	var z float64
	for i, h := range this.heights {
		z += h * Bernstein(this.binomials[:], i, t)
	}

	return z
}

// Compute the slope of the curve at t
func (this *BezierCurve) Derivative(t float64) float64 {
	var dz float64
	for i, h := range this.heights {
		dz += h * BernsteinDerivative(this.binomials[:], i, t)
	}

	return dz
}

// Compute the point of the surface the curve was extracted from. For a
// curve of constant u the result is (u, t, height); for constant v it is
// (t, v, height).
func (this *BezierCurve) Point(t float64) CurvePoint {
	pt := vec3.T{this.fixed, t, this.Height(t)}
	if this.useV {
		pt[0], pt[1] = t, this.fixed
	}

	return CurvePoint{t, pt}
}

// Sample the curve at divs+1 equally spaced parameters
func (this *BezierCurve) Tessellate(divs int) []CurvePoint {
	if divs < 1 {
		divs = 1
	}

	pts := make([]CurvePoint, divs+1)
	for i := range pts {
		pts[i] = this.Point(float64(i) / float64(divs))
	}

	return pts
}
