package make

import "github.com/alexozer/bezier"

// Create a height curve running linearly from h0 at t = 0 to h1 at t = 1.
//
// Control heights spaced evenly along the line reproduce it exactly, since
// the Bernstein basis has linear precision.
func Line(h0, h1 float64) *bezier.BezierCurve {
	var heights [bezier.GridSize]float64
	for k := range heights {
		heights[k] = lerp(h0, h1, float64(k)/bezier.Degree)
	}

	return bezier.NewBezierCurve(heights)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
