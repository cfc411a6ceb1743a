// Package canvas holds the CPU side pixel grid a caller draws into.
// Pixels are addressed by (x, y) and stored as tightly packed RGBA8,
// which is also the layout the GPU texture is uploaded from.
package canvas

import (
	"image"
	"image/color"

	"github.com/oliverbestmann/szark/glm"
)

// Canvas is a fixed size grid of Color values. Reads and writes outside of
// the grid are not an error: reads return Transparent and writes are
// ignored. A Canvas is not safe for concurrent use.
type Canvas struct {
	width  int
	height int

	// rgba bytes, 4 per pixel, row by row
	pix []uint8

	generation uint64
}

func New(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)

	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

func (c *Canvas) Width() int {
	return c.width
}

func (c *Canvas) Height() int {
	return c.height
}

func (c *Canvas) Size() glm.Vec2u {
	return glm.Vec2u{uint32(c.width), uint32(c.height)}
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Pixel returns the color at (x, y), or Transparent if the
// coordinates are outside of the canvas.
func (c *Canvas) Pixel(x, y int) Color {
	if !c.inBounds(x, y) {
		return Transparent
	}

	i := (y*c.width + x) * 4
	return Color{
		R: c.pix[i+0],
		G: c.pix[i+1],
		B: c.pix[i+2],
		A: c.pix[i+3],
	}
}

// SetPixel stores the color at (x, y). Coordinates outside
// of the canvas are silently ignored.
func (c *Canvas) SetPixel(x, y int, color Color) {
	if !c.inBounds(x, y) {
		return
	}

	i := (y*c.width + x) * 4
	c.pix[i+0] = color.R
	c.pix[i+1] = color.G
	c.pix[i+2] = color.B
	c.pix[i+3] = color.A

	c.generation += 1
}

// Fill sets every pixel of the canvas to the given color.
func (c *Canvas) Fill(color Color) {
	for i := 0; i < len(c.pix); i += 4 {
		c.pix[i+0] = color.R
		c.pix[i+1] = color.G
		c.pix[i+2] = color.B
		c.pix[i+3] = color.A
	}

	c.generation += 1
}

// Bytes returns the backing rgba storage. The slice aliases the canvas,
// later writes to the canvas are visible through it.
func (c *Canvas) Bytes() []byte {
	return c.pix
}

// Snapshot returns a copy of the rgba storage as of now.
func (c *Canvas) Snapshot() []byte {
	return append([]byte(nil), c.pix...)
}

// Generation is incremented on every write that changes the canvas. It can be
// used to find out if the canvas was modified since it was last looked at.
func (c *Canvas) Generation() uint64 {
	return c.generation
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.Pixel(x, y)
}

// Set implements the draw.Image interface.
func (c *Canvas) Set(x, y int, value color.Color) {
	c.SetPixel(x, y, colorOf(value))
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// LogicalSize derives the size of the canvas that covers a client area of
// width x height device pixels when every canvas cell is drawn as a
// pixelSize x pixelSize block. Partially covered blocks count as a full cell.
func LogicalSize(width, height, pixelSize uint32) glm.Vec2u {
	pixelSize = max(pixelSize, 1)

	return glm.CeilDiv(
		glm.Vec2u{width, height},
		glm.Vec2u{pixelSize, pixelSize},
	)
}
