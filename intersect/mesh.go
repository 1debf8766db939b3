package intersect

import (
	"github.com/alexozer/bezier"
	"github.com/ungerik/go3d/float64/vec3"
)

type Mesh bezier.Mesh

// Form axis-aligned bounding box from triangles of mesh
//
// **params**
// + face indices of the mesh to include in the bounding box, nil for all faces
//
// **returns**
// + a BoundingBox containing the faces
func (this *Mesh) BoundingBox(faceIndices []int) BoundingBox {
	bb := BoundingBox{}

	if faceIndices == nil {
		for _, face := range this.Faces {
			for _, iPt := range face {
				bb.Add(&this.Points[iPt])
			}
		}

		return bb
	}

	for _, iFace := range faceIndices {
		for _, iPt := range this.Faces[iFace] {
			bb.Add(&this.Points[iPt])
		}
	}

	return bb
}

// Form axis-aligned bounding box from the positions of an interleaved vertex buffer
func BufferBoundingBox(buf []float32) BoundingBox {
	bb := BoundingBox{}

	for i := 0; i < len(buf)/bezier.VertexStride; i++ {
		pt := bufferPosition(buf, i)
		bb.Add(&pt)
	}

	return bb
}

// Get the unit face normal of every face of the mesh
func (this *Mesh) FaceNormals() []vec3.T {
	normals := make([]vec3.T, len(this.Faces))
	for i, face := range this.Faces {
		normals[i] = TriangleNormal(&this.Points[face[0]], &this.Points[face[1]], &this.Points[face[2]])
	}

	return normals
}
