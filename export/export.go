// Package export writes interleaved vertex buffers to files renderers and
// modelling tools can read.
package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/alexozer/bezier"
)

// WriteRaw writes buf as little-endian float32 values, the layout a renderer
// can upload to a vertex buffer unchanged
func WriteRaw(w io.Writer, buf []float32) error {
	return binary.Write(w, binary.LittleEndian, buf)
}

// WriteOBJ writes buf as a Wavefront OBJ triangle list. The buffer is
// unindexed, so every triangle gets its own three v/vn pairs. The texture
// coordinate placeholders are not written.
func WriteOBJ(w io.Writer, buf []float32) error {
	if len(buf)%(3*bezier.VertexStride) != 0 {
		return fmt.Errorf("buffer length %d is not a whole number of triangles", len(buf))
	}

	bw := bufio.NewWriter(w)
	numVerts := len(buf) / bezier.VertexStride

	for i := 0; i < numVerts; i++ {
		v := buf[i*bezier.VertexStride:]
		fmt.Fprintf(bw, "v %g %g %g\n", v[0], v[1], v[2])
		fmt.Fprintf(bw, "vn %g %g %g\n", v[3], v[4], v[5])
	}

	for i := 1; i <= numVerts; i += 3 {
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", i, i, i+1, i+1, i+2, i+2)
	}

	return bw.Flush()
}
