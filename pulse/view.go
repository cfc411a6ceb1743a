package pulse

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/cogentcore/webgpu/wgpu"
)

// View owns the configuration of the window surface and hands out
// the frames to render into.
type View struct {
	*Context

	surfaceConfig *wgpu.SurfaceConfiguration
}

// NewView picks a surface configuration that the adapter supports. The
// surface is not usable before Configure was called.
func NewView(ctx *Context) (*View, error) {
	caps := ctx.Surface.GetCapabilities(ctx.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	config, err := chooseSurfaceConfig(caps)
	if err != nil {
		return nil, initError("configure surface", err)
	}

	return &View{Context: ctx, surfaceConfig: config}, nil
}

// chooseSurfaceConfig prefers an opaque BGRA8 surface and falls back to
// the first format and alpha mode the adapter offers.
func chooseSurfaceConfig(caps wgpu.SurfaceCapabilities) (*wgpu.SurfaceConfiguration, error) {
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		return nil, ErrUnsupportedSurface
	}

	format := caps.Formats[0]
	if slices.Contains(caps.Formats, wgpu.TextureFormatBGRA8Unorm) {
		format = wgpu.TextureFormatBGRA8Unorm
	}

	alphaMode := caps.AlphaModes[0]
	if slices.Contains(caps.AlphaModes, wgpu.CompositeAlphaModeOpaque) {
		alphaMode = wgpu.CompositeAlphaModeOpaque
	}

	config := &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   alphaMode,
	}

	return config, nil
}

func (vs *View) Format() wgpu.TextureFormat {
	return vs.surfaceConfig.Format
}

func (vs *View) Size() (uint32, uint32) {
	return vs.surfaceConfig.Width, vs.surfaceConfig.Height
}

// Configure (re)configures the surface to the given size in device pixels.
func (vs *View) Configure(width, height uint32) error {
	if width == 0 || height == 0 {
		return initError("configure surface", fmt.Errorf("empty surface size %dx%d", width, height))
	}

	slog.Debug("Configure surface",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	vs.surfaceConfig.Width = width
	vs.surfaceConfig.Height = height
	vs.Surface.Configure(vs.Adapter, vs.Device, vs.surfaceConfig)

	return nil
}

// AcquireFrame gets the next texture of the surface to render into.
// The frame must either be presented or discarded.
func (vs *View) AcquireFrame() (*Frame, error) {
	texture, err := vs.Surface.GetCurrentTexture()
	if err != nil {
		// the surface is likely outdated, configure it again so the
		// next frame has a chance to succeed.
		_ = vs.Configure(vs.Size())

		return nil, fmt.Errorf("get current texture: %w", err)
	}

	textureView, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, fmt.Errorf("create view of current texture: %w", err)
	}

	frame := &Frame{
		surface:     vs.Surface,
		texture:     texture,
		textureView: textureView,
		target: RenderTarget{
			View:   textureView,
			Format: vs.surfaceConfig.Format,
			Width:  vs.surfaceConfig.Width,
			Height: vs.surfaceConfig.Height,
		},
	}

	return frame, nil
}

// Frame is a texture of the window surface that was acquired for rendering.
type Frame struct {
	surface     *wgpu.Surface
	texture     *wgpu.Texture
	textureView *wgpu.TextureView
	target      RenderTarget
}

func (f *Frame) Target() *RenderTarget {
	return &f.target
}

// Present shows the frame on screen.
func (f *Frame) Present() {
	f.surface.Present()

	// we do not need to release the texture if present was successful
	f.textureView.Release()
}

// Discard releases the frame without showing it.
func (f *Frame) Discard() {
	f.textureView.Release()
	f.texture.Release()
}
