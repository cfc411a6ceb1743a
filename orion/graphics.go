package orion

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/szark/glimpse"
	"github.com/oliverbestmann/szark/pulse"
)

// Graphics is the GPU backend of a session.
type Graphics interface {
	// BuildTexture allocates a new texture and uploads the pixels in RGBA8 format.
	BuildTexture(width, height uint32, pixels []byte) (Texture, error)

	// DrawQuad acquires the next frame, clears it and draws texture
	// over the viewport. If DrawQuad fails, there is no frame to present.
	DrawQuad(viewportWidth, viewportHeight uint32, texture Texture) error

	// Present shows the frame drawn by the last successful DrawQuad.
	Present()

	Release()
}

type Texture interface {
	// UpdatePixels replaces the full content of the texture.
	// The pixels may be reused by the caller once UpdatePixels returns.
	UpdatePixels(pixels []byte) error

	Release()
}

// clearColor is shown wherever the quad does not cover the frame.
var clearColor = pulse.ColorRed

type gpuGraphics struct {
	ctx  *pulse.Context
	view *pulse.View
	quad *pulse.QuadCommand

	frame *pulse.Frame
}

// newGPUGraphics creates the webgpu context for the window and configures its
// surface to the current client size.
func newGPUGraphics(win glimpse.Window) (_ Graphics, err error) {
	ctx, err := pulse.New(win.SurfaceDescriptor())
	if err != nil {
		return nil, err
	}

	g := &gpuGraphics{ctx: ctx}

	defer func() {
		if err != nil {
			g.Release()
		}
	}()

	g.view, err = pulse.NewView(ctx)
	if err != nil {
		return nil, err
	}

	width, height := win.ClientSize()
	if err := g.view.Configure(width, height); err != nil {
		return nil, err
	}

	g.quad, err = pulse.NewQuadCommand(ctx)
	if err != nil {
		return nil, err
	}

	if err := g.quad.Prepare(g.view.Format()); err != nil {
		return nil, err
	}

	slog.Info("Surface configured",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
		slog.Any("format", g.view.Format()),
	)

	return g, nil
}

func (g *gpuGraphics) BuildTexture(width, height uint32, pixels []byte) (Texture, error) {
	texture, err := pulse.NewTexture(g.ctx, pulse.NewTextureOptions{
		Label:  "Surface",
		Format: wgpu.TextureFormatRGBA8Unorm,
		Width:  width,
		Height: height,
	})

	if err != nil {
		return nil, err
	}

	if err := texture.WritePixels(g.ctx, pixels); err != nil {
		texture.Release()
		return nil, fmt.Errorf("upload pixels: %w", err)
	}

	return &gpuTexture{ctx: g.ctx, Texture: texture}, nil
}

func (g *gpuGraphics) DrawQuad(viewportWidth, viewportHeight uint32, texture Texture) error {
	source, ok := texture.(*gpuTexture)
	if !ok {
		return fmt.Errorf("texture of type %T was not built by this backend", texture)
	}

	// a frame that was not presented must not leak
	g.discardFrame()

	frame, err := g.view.AcquireFrame()
	if err != nil {
		return err
	}

	target := frame.Target()

	viewport := pulse.RectangleFromXYWH(0, 0,
		min(viewportWidth, target.Width),
		min(viewportHeight, target.Height),
	)

	err = g.quad.Draw(target, source.Texture, pulse.DrawQuadOptions{
		Viewport:   viewport,
		ClearColor: clearColor,
	})

	if err != nil {
		frame.Discard()
		return err
	}

	g.frame = frame

	return nil
}

func (g *gpuGraphics) Present() {
	if g.frame == nil {
		return
	}

	g.frame.Present()
	g.frame = nil
}

func (g *gpuGraphics) discardFrame() {
	if g.frame != nil {
		g.frame.Discard()
		g.frame = nil
	}
}

func (g *gpuGraphics) Release() {
	g.discardFrame()

	if g.quad != nil {
		g.quad.Release()
		g.quad = nil
	}

	g.ctx.Release()
}

type gpuTexture struct {
	*pulse.Texture
	ctx *pulse.Context
}

func (t *gpuTexture) UpdatePixels(pixels []byte) error {
	return t.WritePixels(t.ctx, pixels)
}
