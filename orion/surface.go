package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/szark/canvas"
)

// Surface is the GPU copy of a canvas as of the time it was built.
type Surface struct {
	texture Texture

	width  uint32
	height uint32
}

// BuildSurface uploads a snapshot of the canvas into a new texture. Changes
// to the canvas after BuildSurface returns are not visible in the surface.
func BuildSurface(g Graphics, c *canvas.Canvas) (*Surface, error) {
	width, height := c.Size().XY()

	slog.Info("Allocate surface texture",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	texture, err := g.BuildTexture(width, height, c.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("build surface texture: %w", err)
	}

	surface := &Surface{
		texture: texture,
		width:   width,
		height:  height,
	}

	return surface, nil
}

func (s *Surface) Width() uint32 {
	return s.width
}

func (s *Surface) Height() uint32 {
	return s.height
}

// Valid returns true if the surface was built and not yet released.
func (s *Surface) Valid() bool {
	return s != nil && s.texture != nil
}

// update replaces the pixels of the surface. The pixels must match
// the size of the surface.
func (s *Surface) update(pixels []byte) error {
	if !s.Valid() {
		return fmt.Errorf("update released surface")
	}

	return s.texture.UpdatePixels(pixels)
}

// Release frees the texture. It is a no-op on a nil or released surface.
func (s *Surface) Release() {
	if !s.Valid() {
		return
	}

	s.texture.Release()
	s.texture = nil
}
