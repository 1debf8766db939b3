package bezier

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

const (
	// VertexStride is the number of floats written per vertex:
	// position (3), normal (3), texture coordinates (2)
	VertexStride = 8

	// VerticesPerCell is the number of vertices emitted per parameter cell,
	// two unindexed triangles
	VerticesPerCell = 6

	// TexCoordPlaceholder fills both texture coordinates of every vertex
	TexCoordPlaceholder = 1.0

	cellStride = VerticesPerCell * VertexStride
)

var (
	ErrInvalidAccuracy = errors.New("accuracy must be at least 1")
	ErrBufferTooSmall  = errors.New("vertex buffer too small")
)

// Compute the number of floats a tessellation at the given accuracy writes
//
// **params**
// + number of cells along each parametric direction
//
// **returns**
// + accuracy * accuracy * VerticesPerCell * VertexStride
func RequiredLength(accuracy int) (int, error) {
	if accuracy < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidAccuracy, accuracy)
	}

	if accuracy > math.MaxInt/cellStride/accuracy {
		return 0, fmt.Errorf("%w: %d cells per side overflows the buffer length", ErrInvalidAccuracy, accuracy)
	}

	return accuracy * accuracy * cellStride, nil
}

// Compute the corners of cell (i, j) in the order P1, P2, P3, P4:
//
//	P3 (i, j+1) ---- P4 (i+1, j+1)
//	 |                |
//	P1 (i, j)   ---- P2 (i+1, j)
//
// Every coordinate is computed from integers alone, so cells that share an
// edge share its coordinates bit for bit and the last row lands on 1 exactly.
func CellCorners(i, j, accuracy int) [4]UV {
	a := float64(accuracy)
	x1, x2 := float64(i)/a, float64(i+1)/a
	y1, y3 := float64(j)/a, float64(j+1)/a

	return [4]UV{
		{x1, y1},
		{x2, y1},
		{x1, y3},
		{x2, y3},
	}
}

// Allocate a vertex buffer of the required length and tessellate into it
func (this *BezierSurface) Tessellate(accuracy int) ([]float32, error) {
	n, err := RequiredLength(accuracy)
	if err != nil {
		return nil, err
	}

	dst := make([]float32, n)
	this.tessellateRows(dst, accuracy, 0, accuracy)

	return dst, nil
}

// Tessellate the unit square into accuracy x accuracy cells of two triangles
// each, (P1, P2, P3) and (P3, P2, P4), and write the unindexed triangle list
// into dst starting at offset 0.
//
// Nothing is written unless dst holds at least RequiredLength(accuracy)
// floats. Values past that length are left untouched.
func (this *BezierSurface) TessellateInto(dst []float32, accuracy int) error {
	if err := checkCapacity(dst, accuracy); err != nil {
		return err
	}

	this.tessellateRows(dst, accuracy, 0, accuracy)

	return nil
}

// Same as TessellateInto, but rows of cells are computed by up to workers
// goroutines. Each row owns a disjoint region of dst, so the output is
// identical to TessellateInto. If workers < 1, GOMAXPROCS is used.
func (this *BezierSurface) TessellateConcurrent(dst []float32, accuracy, workers int) error {
	if err := checkCapacity(dst, accuracy); err != nil {
		return err
	}

	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	var g errgroup.Group
	g.SetLimit(workers)

	for i := 0; i < accuracy; i++ {
		i := i
		g.Go(func() error {
			this.tessellateRows(dst, accuracy, i, i+1)
			return nil
		})
	}

	return g.Wait()
}

func checkCapacity(dst []float32, accuracy int) error {
	n, err := RequiredLength(accuracy)
	if err != nil {
		return err
	}

	if len(dst) < n {
		return fmt.Errorf("%w: need %d floats, have %d", ErrBufferTooSmall, n, len(dst))
	}

	return nil
}

// Tessellate rows [from, to) of cells. Row i starts at float i*accuracy*cellStride.
func (this *BezierSurface) tessellateRows(dst []float32, accuracy, from, to int) {
	k := from * accuracy * cellStride

	for i := from; i < to; i++ {
		for j := 0; j < accuracy; j++ {
			corners := CellCorners(i, j, accuracy)

			var p [4]SurfacePoint
			for c, uv := range corners {
				p[c] = this.Evaluate(uv)
			}

			for _, c := range [VerticesPerCell]int{0, 1, 2, 2, 1, 3} {
				k = writeVertex(dst, k, &p[c])
			}
		}
	}
}

func writeVertex(dst []float32, k int, p *SurfacePoint) int {
	v := dst[k : k+VertexStride : k+VertexStride]

	v[0], v[1], v[2] = float32(p.Point[0]), float32(p.Point[1]), float32(p.Point[2])
	v[3], v[4], v[5] = float32(p.Normal[0]), float32(p.Normal[1]), float32(p.Normal[2])
	v[6], v[7] = TexCoordPlaceholder, TexCoordPlaceholder

	return k + VertexStride
}
