package intersect

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

const BoundingBoxTolerance = 1e-4

// The zero value for BoundingBox is ready to use
type BoundingBox struct {
	Min, Max    vec3.T
	initialized bool
}

// Adds a point to the bounding box, expanding the bounding box if the point is outside of it.
// If the bounding box is not initialized, this method has that side effect.
//
// **returns**
// + This BoundingBox for chaining
func (this *BoundingBox) Add(point *vec3.T) *BoundingBox {
	if !this.initialized {
		this.Min, this.Max = *point, *point
		this.initialized = true

		return this
	}

	for i, val := range point {
		if val > this.Max[i] {
			this.Max[i] = val
		}
		if val < this.Min[i] {
			this.Min[i] = val
		}
	}

	return this
}

func (this *BoundingBox) AddRange(points []vec3.T) *BoundingBox {
	for i := range points {
		this.Add(&points[i])
	}

	return this
}

func (this *BoundingBox) Initialized() bool {
	return this.initialized
}

// Determines if point is contained in the bounding box
//
// **params**
// + the point
// + the tolerance, negative for BoundingBoxTolerance
func (this *BoundingBox) Contains(point *vec3.T, tol float64) bool {
	if !this.initialized {
		return false
	}

	return this.Intersects(new(BoundingBox).Add(point), tol)
}

// Determines if two intervals on the real number line intersect
func intervalsOverlap(a1, a2, b1, b2 float64, tol float64) bool {
	if tol < 0 {
		tol = BoundingBoxTolerance
	}

	x1, x2 := math.Min(a1, a2)-tol, math.Max(a1, a2)+tol
	y1, y2 := math.Min(b1, b2)-tol, math.Max(b1, b2)+tol

	return x1 <= y2 && y1 <= x2
}

// Determines if this bounding box intersects with another
//
// **params**
// + BoundingBox to check for intersection with this one
// + the tolerance, negative for BoundingBoxTolerance
//
// **returns**
// + true if the two bounding boxes intersect, otherwise false
func (this *BoundingBox) Intersects(bb *BoundingBox, tol float64) bool {
	if !this.initialized || !bb.initialized {
		return false
	}

	for i := range this.Min {
		if !intervalsOverlap(this.Min[i], this.Max[i], bb.Min[i], bb.Max[i], tol) {
			return false
		}
	}

	return true
}

// Clear the bounding box, leaving it in an uninitialized state
func (this *BoundingBox) Clear() *BoundingBox {
	this.initialized = false
	return this
}

// Get longest axis of bounding box
//
// **returns**
// + Index of longest axis
func (this *BoundingBox) LongestAxis() int {
	id, max := 0, 0.0

	for i := range this.Min {
		l := this.AxisLength(i)
		if l > max {
			max = l
			id = i
		}
	}

	return id
}

// Get length of given axis. If axis is out of bounds, returns 0.
func (this *BoundingBox) AxisLength(i int) float64 {
	if i < 0 || i > len(this.Min)-1 {
		return 0
	}
	return math.Abs(this.Min[i] - this.Max[i])
}
