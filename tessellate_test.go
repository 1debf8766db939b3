package bezier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestRequiredLength(t *testing.T) {
	n, err := RequiredLength(10)
	require.NoError(t, err)
	assert.Equal(t, 4800, n)

	n, err = RequiredLength(1)
	require.NoError(t, err)
	assert.Equal(t, 48, n)

	for _, accuracy := range []int{0, -3} {
		_, err = RequiredLength(accuracy)
		assert.ErrorIs(t, err, ErrInvalidAccuracy)
	}

	_, err = RequiredLength(1 << 30)
	assert.ErrorIs(t, err, ErrInvalidAccuracy)
}

func TestTessellateSize(t *testing.T) {
	buf, err := newHill(t).Tessellate(10)
	require.NoError(t, err)
	assert.Len(t, buf, 10*10*6*8)
}

func TestTessellateInvalidAccuracy(t *testing.T) {
	srf := newHill(t)

	_, err := srf.Tessellate(0)
	assert.ErrorIs(t, err, ErrInvalidAccuracy)

	assert.ErrorIs(t, srf.TessellateInto(make([]float32, 48), -1), ErrInvalidAccuracy)
	assert.ErrorIs(t, srf.TessellateConcurrent(make([]float32, 48), 0, 2), ErrInvalidAccuracy)

	_, err = srf.TessellateMesh(0)
	assert.ErrorIs(t, err, ErrInvalidAccuracy)
}

func TestTessellateIntoBufferTooSmall(t *testing.T) {
	srf := newHill(t)
	buf := make([]float32, 4*6*8-1)
	for i := range buf {
		buf[i] = -7
	}

	err := srf.TessellateInto(buf, 2)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
	assert.ErrorContains(t, err, "need 192 floats, have 191")

	for _, f := range buf {
		require.Equal(t, float32(-7), f)
	}

	assert.ErrorIs(t, srf.TessellateConcurrent(buf, 2, 4), ErrBufferTooSmall)
}

func TestTessellateIntoLeavesTailUntouched(t *testing.T) {
	srf := newHill(t)
	buf := make([]float32, 48+3)
	buf[48], buf[49], buf[50] = 5, 6, 7

	require.NoError(t, srf.TessellateInto(buf, 1))
	assert.Equal(t, []float32{5, 6, 7}, buf[48:])
}

func TestTessellateSingleCellLayout(t *testing.T) {
	srf := newHill(t)
	buf, err := srf.Tessellate(1)
	require.NoError(t, err)

	corners := [4]UV{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	order := []int{0, 1, 2, 2, 1, 3}

	for vert, c := range order {
		p := srf.Evaluate(corners[c])
		want := []float32{
			float32(p.Point[0]), float32(p.Point[1]), float32(p.Point[2]),
			float32(p.Normal[0]), float32(p.Normal[1]), float32(p.Normal[2]),
			1, 1,
		}
		assert.Equal(t, want, buf[vert*VertexStride:(vert+1)*VertexStride], "vertex %d", vert)
	}

	// the surface passes through the corner control heights
	assert.Equal(t, float32(srf.ControlHeight(0, 0)), buf[2])
	assert.Equal(t, float32(srf.ControlHeight(Degree, 0)), buf[VertexStride+2])
	assert.Equal(t, float32(srf.ControlHeight(0, Degree)), buf[2*VertexStride+2])
	assert.Equal(t, float32(srf.ControlHeight(Degree, Degree)), buf[5*VertexStride+2])
}

func TestCellCornersTile(t *testing.T) {
	for _, accuracy := range []int{1, 3, 7, 10, 49} {
		d := 1 / float64(accuracy)

		for i := 0; i < accuracy; i++ {
			for j := 0; j < accuracy; j++ {
				c := CellCorners(i, j, accuracy)

				assert.InDelta(t, c[0][0]+d, c[1][0], 1e-15)
				assert.InDelta(t, c[0][1]+d, c[2][1], 1e-15)
				assert.Equal(t, c[0][0], c[2][0])
				assert.Equal(t, c[0][1], c[1][1])
				assert.Equal(t, c[1][0], c[3][0])
				assert.Equal(t, c[2][1], c[3][1])

				if i+1 < accuracy {
					assert.Equal(t, c[1], CellCorners(i+1, j, accuracy)[0])
					assert.Equal(t, c[3], CellCorners(i+1, j, accuracy)[2])
				}
				if j+1 < accuracy {
					assert.Equal(t, c[2], CellCorners(i, j+1, accuracy)[0])
					assert.Equal(t, c[3], CellCorners(i, j+1, accuracy)[1])
				}
			}
		}

		assert.Equal(t, UV{0, 0}, CellCorners(0, 0, accuracy)[0])
		assert.Equal(t, UV{1, 1}, CellCorners(accuracy-1, accuracy-1, accuracy)[3])
	}
}

func TestTessellateWindingFacesNormal(t *testing.T) {
	srf := newHill(t)
	buf, err := srf.Tessellate(8)
	require.NoError(t, err)

	pos := func(vert int) vec3.T {
		k := vert * VertexStride
		return vec3.T{float64(buf[k]), float64(buf[k+1]), float64(buf[k+2])}
	}

	for tri := 0; tri < len(buf)/(3*VertexStride); tri++ {
		a, b, c := pos(3*tri), pos(3*tri+1), pos(3*tri+2)
		e1, e2 := vec3.Sub(&b, &a), vec3.Sub(&c, &a)
		face := vec3.Cross(&e1, &e2)

		// a height field triangle projects counter-clockwise onto the uv plane
		assert.Greater(t, face[2], 0.0, "triangle %d", tri)
	}
}

func TestTessellateConcurrentMatchesSerial(t *testing.T) {
	srf := newHill(t)

	serial, err := srf.Tessellate(17)
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 3, 64} {
		buf := make([]float32, len(serial))
		require.NoError(t, srf.TessellateConcurrent(buf, 17, workers))
		assert.Equal(t, serial, buf, "workers = %d", workers)
	}
}

func TestTessellateMesh(t *testing.T) {
	srf := newHill(t)

	mesh, err := srf.TessellateMesh(6)
	require.NoError(t, err)

	assert.Len(t, mesh.Points, 7*7)
	assert.Len(t, mesh.Normals, 7*7)
	assert.Len(t, mesh.UVs, 7*7)
	assert.Len(t, mesh.Faces, 2*6*6)
	assert.Equal(t, Tri{0, 7, 1}, mesh.Faces[0])
	assert.Equal(t, Tri{1, 7, 8}, mesh.Faces[1])

	flat, err := srf.Tessellate(6)
	require.NoError(t, err)
	assert.Equal(t, flat, mesh.VertexBuffer())
}

func TestMeshTransform(t *testing.T) {
	srf := newHill(t)
	mesh, err := srf.TessellateMesh(2)
	require.NoError(t, err)

	scale := mat4.Ident
	scale[0][0], scale[1][1], scale[2][2] = 2, 2, 2

	moved := mesh.Transform(&scale)
	require.Len(t, moved.Points, len(mesh.Points))

	for i := range mesh.Points {
		for k := 0; k < 3; k++ {
			assert.InDelta(t, 2*mesh.Points[i][k], moved.Points[i][k], 1e-12)
			assert.InDelta(t, 2*mesh.Normals[i][k], moved.Normals[i][k], 1e-12)
		}
	}

	assert.Equal(t, mesh.Faces, moved.Faces)
	assert.Equal(t, mesh.UVs, moved.UVs)
}
