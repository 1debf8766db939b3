package export

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/alexozer/bezier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRaw(t *testing.T) {
	srf := bezier.NewBezierSurfaceUnchecked()
	buf, err := srf.Tessellate(2)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, WriteRaw(&out, buf))
	assert.Equal(t, 4*len(buf), out.Len())

	back := make([]float32, len(buf))
	require.NoError(t, binary.Read(&out, binary.LittleEndian, back))
	assert.Equal(t, buf, back)
}

func TestWriteOBJ(t *testing.T) {
	srf := bezier.NewBezierSurfaceUnchecked()
	buf, err := srf.Tessellate(1)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, WriteOBJ(&out, buf))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6*2+2)
	assert.Equal(t, "v 0 0 0", lines[0])
	assert.Equal(t, "vn 0 0 1", lines[1])
	assert.Equal(t, "v 1 0 0", lines[2])
	assert.Equal(t, "f 1//1 2//2 3//3", lines[12])
	assert.Equal(t, "f 4//4 5//5 6//6", lines[13])
}

func TestWriteOBJPartialTriangle(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, WriteOBJ(&out, make([]float32, bezier.VertexStride*2)))
}
