package make

import "github.com/alexozer/bezier"

// Generate a surface by sweeping a height profile across the other parameter
//
// **params**
// + the profile
// + whether the profile runs along u (otherwise it runs along v)
//
// **returns**
// + a surface whose height depends on one parameter only
func ExtrudedSurface(profile *bezier.BezierCurve, alongU bool) *bezier.BezierSurface {
	prof := profile.ControlHeights()
	heights := make([]float64, 0, bezier.ControlCount)

	for i := 0; i < bezier.GridSize; i++ {
		for j := 0; j < bezier.GridSize; j++ {
			if alongU {
				heights = append(heights, prof[i])
			} else {
				heights = append(heights, prof[j])
			}
		}
	}

	srf := bezier.NewBezierSurfaceUnchecked()
	srf.SetControlHeights(heights)

	return srf
}

// Generate a horizontal plane at the given height
func FlatSurface(height float64) *bezier.BezierSurface {
	return ExtrudedSurface(Line(height, height), false)
}
