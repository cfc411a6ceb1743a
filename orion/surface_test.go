package orion

import (
	"errors"
	"testing"

	"github.com/oliverbestmann/szark/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSurfaceIsSnapshot(t *testing.T) {
	c := canvas.New(4, 3)
	c.Fill(canvas.White)

	graphics := &fakeGraphics{}

	surface, err := BuildSurface(graphics, c)
	require.NoError(t, err)

	assert.Equal(t, uint32(4), surface.Width())
	assert.Equal(t, uint32(3), surface.Height())

	uploaded := graphics.textures[0].pixels
	assert.Equal(t, c.Bytes(), uploaded)

	// mutating the canvas must not change the uploaded data
	c.SetPixel(0, 0, canvas.RGBA(9, 8, 7, 6))
	c.Fill(canvas.Black)

	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, uploaded[:4])
	assert.NotEqual(t, c.Bytes(), uploaded)
}

func TestSurfaceRelease(t *testing.T) {
	graphics := &fakeGraphics{}

	surface, err := BuildSurface(graphics, canvas.New(2, 2))
	require.NoError(t, err)
	require.True(t, surface.Valid())

	surface.Release()
	surface.Release()

	assert.False(t, surface.Valid())
	assert.Equal(t, 1, graphics.textures[0].released)

	// never built surfaces are fine too
	var empty *Surface
	assert.NotPanics(t, empty.Release)
	assert.NotPanics(t, (&Surface{}).Release)
}

type failingGraphics struct {
	fakeGraphics
}

func (failingGraphics) BuildTexture(width, height uint32, pixels []byte) (Texture, error) {
	return nil, errors.New("out of memory")
}

func TestBuildSurfaceFails(t *testing.T) {
	_, err := BuildSurface(&failingGraphics{}, canvas.New(2, 2))
	assert.EqualError(t, err, "build surface texture: out of memory")
}

func TestRenderFrame(t *testing.T) {
	graphics := &fakeGraphics{}

	surface, err := BuildSurface(graphics, canvas.New(2, 2))
	require.NoError(t, err)

	var loops int
	require.NoError(t, renderFrame(graphics, 20, 10, surface, func() { loops++ }))

	assert.Equal(t, 1, loops)
	assert.Equal(t, [][2]uint32{{20, 10}}, graphics.viewports)

	// presenting is left to the caller
	assert.Equal(t, 0, graphics.presents)

	// no callback is fine
	require.NoError(t, renderFrame(graphics, 20, 10, surface, nil))
}

func TestRenderFrameWithoutSurface(t *testing.T) {
	graphics := &fakeGraphics{}

	var loops int
	err := renderFrame(graphics, 20, 10, nil, func() { loops++ })

	assert.Error(t, err)
	assert.Equal(t, 0, loops)
	assert.Equal(t, 0, graphics.draws)
}

func TestRenderFrameDrawFails(t *testing.T) {
	graphics := &fakeGraphics{failDraws: 1}

	surface, err := BuildSurface(graphics, canvas.New(2, 2))
	require.NoError(t, err)

	var loops int
	err = renderFrame(graphics, 20, 10, surface, func() { loops++ })

	assert.EqualError(t, err, "draw surface: surface lost")
	assert.Equal(t, 0, loops)
}
