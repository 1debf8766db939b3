package make

import "github.com/alexozer/bezier"

// Generate a surface defined by the heights of its 4 corners
//
// The control grid is the bilinear interpolation of the corners, so the
// surface is the hyperbolic paraboloid through them.
//
// **params**
// + height at (u, v) = (0, 0)
// + height at (0, 1)
// + height at (1, 0)
// + height at (1, 1)
func FourPointSurface(h00, h01, h10, h11 float64) *bezier.BezierSurface {
	heights := make([]float64, 0, bezier.ControlCount)

	for i := 0; i < bezier.GridSize; i++ {
		u := float64(i) / bezier.Degree
		left, right := lerp(h00, h10, u), lerp(h01, h11, u)

		for j := 0; j < bezier.GridSize; j++ {
			heights = append(heights, lerp(left, right, float64(j)/bezier.Degree))
		}
	}

	srf := bezier.NewBezierSurfaceUnchecked()
	srf.SetControlHeights(heights)

	return srf
}

// Generate a surface whose control heights are samples of f at (i/Degree, j/Degree).
// The surface does not interpolate f except at the corners.
func SampledSurface(f func(u, v float64) float64) *bezier.BezierSurface {
	heights := make([]float64, 0, bezier.ControlCount)

	for i := 0; i < bezier.GridSize; i++ {
		for j := 0; j < bezier.GridSize; j++ {
			heights = append(heights, f(float64(i)/bezier.Degree, float64(j)/bezier.Degree))
		}
	}

	srf := bezier.NewBezierSurfaceUnchecked()
	srf.SetControlHeights(heights)

	return srf
}
