package canvas

import (
	"github.com/furui/fastnoiselite-go"
	"github.com/oliverbestmann/szark/glm"
)

// distance between the sample planes of the three color channels
const channelOffset = 1024

// scale from canvas cells to noise coordinates
const noiseScale = 4

// FillNoise fills the canvas with opaque pixels whose channels are
// sampled from fractal simplex noise. The same offset always
// produces the same pixels.
func FillNoise(c *Canvas, offset glm.Vec2f) {
	noise := fastnoiselite.NewNoise()
	noise.SetNoiseType(fastnoiselite.NoiseTypeOpenSimplex2)
	noise.FractalType = fastnoiselite.FractalTypeFBm

	sample := func(x, y float32) uint8 {
		value := float32(noise.GetNoise2D(fastnoiselite.FNLfloat(x), fastnoiselite.FNLfloat(y)))

		// noise is in [-1, 1]
		value = min(max((value+1)/2, 0), 1)
		return uint8(value * 255)
	}

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			pos := glm.Vec2f{float32(x), float32(y)}.MulScalar(noiseScale).Add(offset)
			px, py := pos.XY()

			i := (y*c.width + x) * 4
			c.pix[i+0] = sample(px, py)
			c.pix[i+1] = sample(px+channelOffset, py)
			c.pix[i+2] = sample(px, py+channelOffset)
			c.pix[i+3] = 0xff
		}
	}

	c.generation += 1
}
