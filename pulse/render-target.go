package pulse

import "github.com/cogentcore/webgpu/wgpu"

// RenderTarget holds all the information of something that can be rendered to.
// This is normally the texture of the current frame of the window surface.
type RenderTarget struct {
	View *wgpu.TextureView

	// Texture format of View
	Format wgpu.TextureFormat

	// Size of the target to render to
	Width  uint32
	Height uint32
}

func (t *RenderTarget) Bounds() Rectangle2u {
	return RectangleFromXYWH(0, 0, t.Width, t.Height)
}
