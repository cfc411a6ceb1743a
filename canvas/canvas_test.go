package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/oliverbestmann/szark/glm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsTransparent(t *testing.T) {
	c := New(4, 3)

	require.Equal(t, 4, c.Width())
	require.Equal(t, 3, c.Height())
	require.Len(t, c.Bytes(), 4*3*4)

	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			assert.Equal(t, Transparent, c.Pixel(x, y))
		}
	}
}

func TestNewNegativeSize(t *testing.T) {
	c := New(-3, 5)

	assert.Equal(t, 0, c.Width())
	assert.Equal(t, 5, c.Height())
	assert.Empty(t, c.Bytes())
	assert.Equal(t, Transparent, c.Pixel(0, 0))
}

func TestSetThenGet(t *testing.T) {
	c := New(7, 5)

	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			want := RGBA(uint8(x*30), uint8(y*40), uint8(x+y), uint8(255-x))
			c.SetPixel(x, y, want)
			require.Equal(t, want, c.Pixel(x, y), "pixel (%d, %d)", x, y)
		}
	}

	// the first pixel must not have been overwritten by a neighbour
	assert.Equal(t, RGBA(0, 0, 0, 255), c.Pixel(0, 0))
}

func TestStorageLayout(t *testing.T) {
	c := New(3, 2)
	c.SetPixel(2, 1, RGBA(1, 2, 3, 4))

	i := (1*3 + 2) * 4
	assert.Equal(t, []byte{1, 2, 3, 4}, c.Bytes()[i:i+4])
}

func TestOutOfBounds(t *testing.T) {
	c := New(4, 4)
	c.Fill(White)

	before := c.Snapshot()
	generation := c.Generation()

	outside := []struct{ x, y int }{
		{-1, 0}, {0, -1}, {4, 0}, {0, 4},
		{-100, -100}, {100, 100}, {4, 4}, {-1, 3},
	}

	for _, pos := range outside {
		assert.Equal(t, Transparent, c.Pixel(pos.x, pos.y), "read at %v", pos)

		c.SetPixel(pos.x, pos.y, RGBA(9, 9, 9, 9))
	}

	assert.Equal(t, before, c.Bytes(), "out of bounds writes must not touch the canvas")
	assert.Equal(t, generation, c.Generation(), "ignored writes must not count as modification")
}

func TestFill(t *testing.T) {
	c := New(5, 3)
	red := RGBA(255, 0, 0, 255)
	c.Fill(red)

	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			assert.Equal(t, red, c.Pixel(x, y))
		}
	}
}

func TestGeneration(t *testing.T) {
	c := New(2, 2)
	assert.Equal(t, uint64(0), c.Generation())

	c.SetPixel(1, 1, Black)
	assert.Equal(t, uint64(1), c.Generation())

	c.Fill(White)
	assert.Equal(t, uint64(2), c.Generation())

	_ = c.Pixel(0, 0)
	_ = c.Snapshot()
	assert.Equal(t, uint64(2), c.Generation())
}

func TestSnapshotIsIndependent(t *testing.T) {
	c := New(2, 2)
	c.Fill(Black)

	snapshot := c.Snapshot()
	c.SetPixel(0, 0, White)

	assert.Equal(t, []byte{0, 0, 0, 255}, snapshot[0:4])
	assert.Equal(t, []byte{255, 255, 255, 255}, c.Bytes()[0:4])
}

func TestImageInterfaces(t *testing.T) {
	c := New(4, 4)

	var _ draw.Image = c

	assert.Equal(t, image.Rect(0, 0, 4, 4), c.Bounds())
	assert.Equal(t, color.NRGBAModel, c.ColorModel())

	// draw a fully opaque blue square into the lower right corner
	blue := image.NewUniform(color.RGBA{B: 255, A: 255})
	draw.Draw(c, image.Rect(2, 2, 6, 6), blue, image.Point{}, draw.Src)

	assert.Equal(t, RGBA(0, 0, 255, 255), c.Pixel(3, 3))
	assert.Equal(t, RGBA(0, 0, 255, 255), c.Pixel(2, 2))
	assert.Equal(t, Transparent, c.Pixel(1, 1))

	r, g, b, a := c.At(3, 3).RGBA()
	assert.Equal(t, [4]uint32{0, 0, 0xffff, 0xffff}, [4]uint32{r, g, b, a})
}

func TestSetConvertsPremultiplied(t *testing.T) {
	c := New(1, 1)

	// half transparent white, premultiplied
	c.Set(0, 0, color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x80})

	px := c.Pixel(0, 0)
	assert.Equal(t, uint8(0x80), px.A)
	assert.InDelta(t, 255, int(px.R), 1)
}

func TestLogicalSize(t *testing.T) {
	cases := []struct {
		width, height, pixelSize uint32
		want                     glm.Vec2u
	}{
		{800, 600, 10, glm.Vec2u{80, 60}},
		{801, 600, 10, glm.Vec2u{81, 60}},
		{800, 601, 10, glm.Vec2u{80, 61}},
		{800, 600, 1, glm.Vec2u{800, 600}},
		{800, 600, 0, glm.Vec2u{800, 600}},
		{5, 5, 10, glm.Vec2u{1, 1}},
		{0, 0, 4, glm.Vec2u{0, 0}},
		{4294967295, 600, 10, glm.Vec2u{429496730, 60}},
	}

	for _, c := range cases {
		got := LogicalSize(c.width, c.height, c.pixelSize)
		assert.Equal(t, c.want, got, "LogicalSize(%d, %d, %d)", c.width, c.height, c.pixelSize)
	}
}
