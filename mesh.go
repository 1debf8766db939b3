package bezier

import (
	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

type Tri [3]int

// Mesh is an indexed triangle mesh. Points, Normals and UVs are parallel.
type Mesh struct {
	Faces   []Tri
	Points  []vec3.T
	Normals []vec3.T
	UVs     []UV
}

func newMesh(numPoints, numFaces int) *Mesh {
	return &Mesh{
		Faces:   make([]Tri, 0, numFaces),
		Points:  make([]vec3.T, 0, numPoints),
		Normals: make([]vec3.T, 0, numPoints),
		UVs:     make([]UV, 0, numPoints),
	}
}

// Tessellate the surface on equally spaced intervals into an indexed mesh
//
// The mesh has (accuracy+1)^2 shared vertices and uses the same cell
// corners, diagonal and winding as TessellateInto.
//
// **params**
// + number of cells along each parametric direction
//
// **returns**
// + the mesh, or an error wrapping ErrInvalidAccuracy
func (this *BezierSurface) TessellateMesh(accuracy int) (*Mesh, error) {
	if _, err := RequiredLength(accuracy); err != nil {
		return nil, err
	}

	side := accuracy + 1
	mesh := newMesh(side*side, 2*accuracy*accuracy)

	a := float64(accuracy)
	for i := 0; i <= accuracy; i++ {
		for j := 0; j <= accuracy; j++ {
			p := this.Evaluate(UV{float64(i) / a, float64(j) / a})

			mesh.Points = append(mesh.Points, p.Point)
			mesh.Normals = append(mesh.Normals, p.Normal)
			mesh.UVs = append(mesh.UVs, p.UV)
		}
	}

	for i := 0; i < accuracy; i++ {
		for j := 0; j < accuracy; j++ {
			p1 := i*side + j
			p2 := p1 + side
			p3 := p1 + 1
			p4 := p2 + 1

			mesh.Faces = append(mesh.Faces, Tri{p1, p2, p3}, Tri{p3, p2, p4})
		}
	}

	return mesh, nil
}

// Expand the mesh into an unindexed, interleaved vertex buffer laid out the
// same way as the output of TessellateInto
func (this *Mesh) VertexBuffer() []float32 {
	buf := make([]float32, len(this.Faces)*3*VertexStride)

	var k int
	for _, face := range this.Faces {
		for _, idx := range face {
			p := SurfacePoint{this.UVs[idx], this.Points[idx], this.Normals[idx]}
			k = writeVertex(buf, k, &p)
		}
	}

	return buf
}

// Apply an affine transform to a copy of the mesh. Normals are moved by the
// linear part of the transform only, which keeps them perpendicular for
// rotations, translations and uniform scales.
func (this *Mesh) Transform(mat *mat4.T) *Mesh {
	mesh := &Mesh{
		Faces:   append([]Tri(nil), this.Faces...),
		Points:  make([]vec3.T, len(this.Points)),
		Normals: make([]vec3.T, len(this.Normals)),
		UVs:     append([]UV(nil), this.UVs...),
	}

	var zero vec3.T
	origin := mat.MulVec3(&zero)

	for i := range this.Points {
		mesh.Points[i] = mat.MulVec3(&this.Points[i])
	}

	for i := range this.Normals {
		n := mat.MulVec3(&this.Normals[i])
		mesh.Normals[i] = vec3.Sub(&n, &origin)
	}

	return mesh
}
