package bezier

import (
	"errors"
	"fmt"

	. "github.com/alexozer/bezier/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

const (
	// Degree of the surface in both parametric directions
	Degree = 3

	// GridSize is the number of control heights along each direction
	GridSize = Degree + 1

	// ControlCount is the number of control heights of a surface
	ControlCount = GridSize * GridSize
)

var ErrControlCount = errors.New("wrong number of control heights")

type UV [2]float64

type SurfacePoint struct {
	UV            UV
	Point, Normal vec3.T
}

// BezierSurface is a tensor-product Bezier height field over the unit
// parameter square. Point (u, v) of the square maps to (u, v, height(u, v)).
//
// A BezierSurface may be read from many goroutines at once, but must not be
// modified with SetControlHeights while any evaluation or tessellation runs.
type BezierSurface struct {
	// binomial coefficients C(Degree, 0..Degree)
	binomials [GridSize]float64

	// control heights, u increases from top to bottom (i), v from left to right (j)
	heights [GridSize][GridSize]float64
}

// Create a surface whose control heights are all zero
func NewBezierSurfaceUnchecked() *BezierSurface {
	this := new(BezierSurface)
	copy(this.binomials[:], binomialRow(Degree))

	return this
}

// Create a surface from exactly ControlCount control heights in row-major order
//
// **params**
// + control heights, grid[0][0], grid[0][1], ..., grid[Degree][Degree]
//
// **returns**
// + the surface, or an error wrapping ErrControlCount
func NewBezierSurface(heights []float64) (*BezierSurface, error) {
	if len(heights) != ControlCount {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrControlCount, len(heights), ControlCount)
	}

	this := NewBezierSurfaceUnchecked()
	this.SetControlHeights(heights)

	return this, nil
}

// Store control heights in row-major order (i then j).
//
// Only the first ControlCount values are consumed. If fewer are given, the
// remaining grid entries keep their previous values. Use NewBezierSurface to
// have the count checked.
//
// **returns**
// + the number of values consumed
func (this *BezierSurface) SetControlHeights(heights []float64) int {
	var k int
	for i := 0; i < GridSize; i++ {
		for j := 0; j < GridSize; j++ {
			if k == len(heights) {
				return k
			}

			this.heights[i][j] = heights[k]
			k++
		}
	}

	return k
}

// Copy of the control grid, indexed [i][j]
func (this *BezierSurface) ControlHeights() [][]float64 {
	grid := make([][]float64, GridSize)
	for i := range grid {
		grid[i] = append([]float64(nil), this.heights[i][:]...)
	}

	return grid
}

func (this *BezierSurface) ControlHeight(i, j int) float64 {
	return this.heights[i][j]
}

func (this *BezierSurface) Binomials() []float64 {
	return append([]float64(nil), this.binomials[:]...)
}

// Compute the height of the surface
//
// Parameters outside of [0, 1] are not rejected; the polynomials simply
// extrapolate, which has no meaning for the surface.
//
// **params**
// + u parameter
// + v parameter
//
// **returns**
// + sum over i, j of grid[i][j] * B_i(u) * B_j(v)
func (this *BezierSurface) EvaluateHeight(u, v float64) float64 {
	var bu, bv [GridSize]float64
	BernsteinAll(bu[:], this.binomials[:], u)
	BernsteinAll(bv[:], this.binomials[:], v)

	return this.sum(&bu, &bv)
}

func (this *BezierSurface) sum(bu, bv *[GridSize]float64) float64 {
	var z float64
	for i := 0; i < GridSize; i++ {
		for j := 0; j < GridSize; j++ {
			z += this.heights[i][j] * bu[i] * bv[j]
		}
	}

	return z
}

// Compute the partial derivatives of the surface
//
// **returns**
// + dS/du = (1, 0, dz/du)
// + dS/dv = (0, 1, dz/dv)
func (this *BezierSurface) Tangents(u, v float64) (du, dv vec3.T) {
	var bu, bv, dbu, dbv [GridSize]float64
	this.basis(u, v, &bu, &bv, &dbu, &dbv)

	return vec3.T{1, 0, this.sum(&dbu, &bv)}, vec3.T{0, 1, this.sum(&bu, &dbv)}
}

func (this *BezierSurface) basis(u, v float64, bu, bv, dbu, dbv *[GridSize]float64) {
	BernsteinAll(bu[:], this.binomials[:], u)
	BernsteinAll(bv[:], this.binomials[:], v)
	BernsteinDerivativeAll(dbu[:], this.binomials[:], u)
	BernsteinDerivativeAll(dbv[:], this.binomials[:], v)
}

// Compute the normal of the surface as dS/du x dS/dv.
//
// The normal is not normalized; for a height field it is (-dz/du, -dz/dv, 1),
// so it always points towards +z.
func (this *BezierSurface) EvaluateNormal(u, v float64) vec3.T {
	du, dv := this.Tangents(u, v)
	return vec3.Cross(&du, &dv)
}

// Compute position and normal in a single pass over the basis functions
func (this *BezierSurface) Evaluate(uv UV) SurfacePoint {
	var bu, bv, dbu, dbv [GridSize]float64
	this.basis(uv[0], uv[1], &bu, &bv, &dbu, &dbv)

	du := vec3.T{1, 0, this.sum(&dbu, &bv)}
	dv := vec3.T{0, 1, this.sum(&bu, &dbv)}

	return SurfacePoint{
		UV:     uv,
		Point:  vec3.T{uv[0], uv[1], this.sum(&bu, &bv)},
		Normal: vec3.Cross(&du, &dv),
	}
}

// Extract the curve of constant u (or of constant v, if useV is set)
//
// **params**
// + the fixed parameter
// + whether the fixed parameter is v
//
// **returns**
// + the cubic height curve running along the other parameter
func (this *BezierSurface) Isocurve(t float64, useV bool) *BezierCurve {
	var b [GridSize]float64
	BernsteinAll(b[:], this.binomials[:], t)

	var heights [GridSize]float64
	for i := 0; i < GridSize; i++ {
		for j := 0; j < GridSize; j++ {
			if useV {
				heights[i] += this.heights[i][j] * b[j]
			} else {
				heights[j] += this.heights[i][j] * b[i]
			}
		}
	}

	curve := NewBezierCurve(heights)
	curve.fixed, curve.useV = t, useV

	return curve
}
