package orion

import (
	"errors"
	"fmt"
)

// renderFrame clears the next frame and draws the surface over the full
// viewport. onLoop runs once the draw was submitted. The frame still
// needs to be presented afterwards.
func renderFrame(g Graphics, viewportWidth, viewportHeight uint32, surface *Surface, onLoop func()) error {
	if !surface.Valid() {
		return errors.New("no surface to render")
	}

	if err := g.DrawQuad(viewportWidth, viewportHeight, surface.texture); err != nil {
		return fmt.Errorf("draw surface: %w", err)
	}

	if onLoop != nil {
		onLoop()
	}

	return nil
}
