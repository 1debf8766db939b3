package intersect

import (
	"github.com/alexozer/bezier"
	"github.com/ungerik/go3d/float64/vec3"
)

// Get the unit normal of a triangle, following its winding
func TriangleNormal(v0, v1, v2 *vec3.T) vec3.T {
	e1 := vec3.Sub(v1, v0)
	e2 := vec3.Sub(v2, v0)
	n := vec3.Cross(&e1, &e2)

	return *n.Normalize()
}

// Get triangle centroid
func TriangleCentroid(v0, v1, v2 *vec3.T) vec3.T {
	centroid := vec3.Add(v0, v1)
	centroid.Add(v2)

	return *centroid.Scale(1.0 / 3)
}

// Read the positions of triangle n of an interleaved vertex buffer
//
// **params**
// + buffer laid out as written by BezierSurface.TessellateInto
// + index of the triangle
//
// **returns**
// + the three positions in emission order
func BufferTriangle(buf []float32, n int) [3]vec3.T {
	var tri [3]vec3.T
	for i := range tri {
		tri[i] = bufferPosition(buf, 3*n+i)
	}

	return tri
}

// Number of whole triangles held by an interleaved vertex buffer
func BufferTriangleCount(buf []float32) int {
	return len(buf) / (3 * bezier.VertexStride)
}

func bufferPosition(buf []float32, vertex int) vec3.T {
	k := vertex * bezier.VertexStride
	return vec3.T{float64(buf[k]), float64(buf[k+1]), float64(buf[k+2])}
}

// Read the normal stored with vertex i of an interleaved vertex buffer
func BufferNormal(buf []float32, vertex int) vec3.T {
	k := vertex*bezier.VertexStride + 3
	return vec3.T{float64(buf[k]), float64(buf[k+1]), float64(buf[k+2])}
}
