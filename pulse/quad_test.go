package pulse

import (
	"testing"
	"unsafe"

	"github.com/oliverbestmann/szark/glm"
	"github.com/stretchr/testify/assert"
)

func TestQuadVerticesCoverViewport(t *testing.T) {
	want := [4]quadVertex{
		// bottom left
		{Position: glm.Vec2f{-1, -1}, UV: glm.Vec2f{0, 0}},
		// bottom right
		{Position: glm.Vec2f{1, -1}, UV: glm.Vec2f{1, 0}},
		// top right
		{Position: glm.Vec2f{1, 1}, UV: glm.Vec2f{1, 1}},
		// top left
		{Position: glm.Vec2f{-1, 1}, UV: glm.Vec2f{0, 1}},
	}

	assert.Equal(t, want, QuadVertices)
}

func TestQuadIndicesUseEveryCorner(t *testing.T) {
	seen := map[uint16]bool{}
	for _, idx := range quadIndices {
		assert.Less(t, int(idx), len(QuadVertices))
		seen[idx] = true
	}

	assert.Len(t, quadIndices, 6)
	assert.Len(t, seen, 4)
}

func TestQuadVertexLayout(t *testing.T) {
	// the vertex buffer layout expects two tightly packed float32x2 attributes
	assert.Equal(t, uintptr(16), unsafe.Sizeof(quadVertex{}))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(quadVertex{}.UV))
}

func TestColorToWGPU(t *testing.T) {
	c := ColorRed.ToWGPU()
	assert.Equal(t, [4]float64{1, 0, 0, 1}, [4]float64{c.R, c.G, c.B, c.A})

	// the zero value is opaque white
	var white Color
	assert.Equal(t, ColorWhite, white)
}

func TestParseLogLevel(t *testing.T) {
	_, ok := parseLogLevel("warn")
	assert.True(t, ok)

	_, ok = parseLogLevel("")
	assert.False(t, ok)

	_, ok = parseLogLevel("verbose")
	assert.False(t, ok)
}
