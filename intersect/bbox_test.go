package intersect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestBoundingBoxZeroValue(t *testing.T) {
	var bb BoundingBox

	assert.False(t, bb.Initialized())
	assert.False(t, bb.Contains(&vec3.T{}, 0))

	bb.Add(&vec3.T{1, 2, 3})
	assert.True(t, bb.Initialized())
	assert.Equal(t, vec3.T{1, 2, 3}, bb.Min)
	assert.Equal(t, vec3.T{1, 2, 3}, bb.Max)
}

func TestBoundingBoxAddRange(t *testing.T) {
	var bb BoundingBox
	bb.AddRange([]vec3.T{{0, 0, 0}, {2, -1, 0.5}, {1, 3, -4}})

	assert.Equal(t, vec3.T{0, -1, -4}, bb.Min)
	assert.Equal(t, vec3.T{2, 3, 0.5}, bb.Max)
	assert.Equal(t, 4.5, bb.AxisLength(2))
	assert.Equal(t, 0.0, bb.AxisLength(3))
	assert.Equal(t, 2, bb.LongestAxis())

	assert.True(t, bb.Contains(&vec3.T{1, 1, 0}, 0))
	assert.True(t, bb.Contains(&vec3.T{2.00001, 1, 0}, -1))
	assert.False(t, bb.Contains(&vec3.T{2.1, 1, 0}, 0))

	bb.Clear()
	assert.False(t, bb.Initialized())
}

func TestBoundingBoxIntersects(t *testing.T) {
	var a, b, c BoundingBox
	a.AddRange([]vec3.T{{0, 0, 0}, {1, 1, 1}})
	b.AddRange([]vec3.T{{0.5, 0.5, 0.5}, {2, 2, 2}})
	c.AddRange([]vec3.T{{3, 3, 3}, {4, 4, 4}})

	assert.True(t, a.Intersects(&b, 0))
	assert.True(t, b.Intersects(&a, 0))
	assert.False(t, a.Intersects(&c, 0))
	assert.False(t, a.Intersects(new(BoundingBox), 0))
}
