package pulse

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Texture wraps a wgpu.Texture and an identity wgpu.TextureView.
type Texture struct {
	texture     *wgpu.Texture
	textureView *wgpu.TextureView

	// equal to texture.GetFormat()
	format wgpu.TextureFormat

	width  uint32
	height uint32
}

type NewTextureOptions struct {
	Format wgpu.TextureFormat
	Width  uint32
	Height uint32

	Label string
}

// NewTexture creates a texture that can be sampled from and written to by the queue.
func NewTexture(ctx *Context, opts NewTextureOptions) (*Texture, error) {
	if opts.Format == wgpu.TextureFormatUndefined {
		opts.Format = wgpu.TextureFormatRGBA8Unorm
	}

	desc := &wgpu.TextureDescriptor{
		Label:         opts.Label,
		Format:        opts.Format,
		SampleCount:   1,
		MipLevelCount: 1,

		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              opts.Width,
			Height:             opts.Height,
			DepthOrArrayLayers: 1,
		},

		Usage: wgpu.TextureUsageTextureBinding |
			wgpu.TextureUsageCopyDst,
	}

	return NewTextureFromDesc(ctx, desc)
}

// NewTextureFromDesc gives you full control and creates a texture directly from
// a texture descriptor
func NewTextureFromDesc(ctx *Context, desc *wgpu.TextureDescriptor) (*Texture, error) {
	if desc.Size.Width == 0 || desc.Size.Height == 0 {
		return nil, initError("create texture", fmt.Errorf("empty texture size %dx%d", desc.Size.Width, desc.Size.Height))
	}

	texture, err := ctx.Device.CreateTexture(desc)
	if err != nil {
		return nil, initError("create texture", err)
	}

	// now create a default texture view
	textureView, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()

		return nil, initError("create texture view", err)
	}

	t := &Texture{
		texture:     texture,
		textureView: textureView,
		format:      desc.Format,
		width:       desc.Size.Width,
		height:      desc.Size.Height,
	}

	return t, nil
}

func (t *Texture) Width() uint32 {
	return t.width
}

func (t *Texture) Height() uint32 {
	return t.height
}

func (t *Texture) Bounds() Rectangle2u {
	return RectangleFromXYWH(0, 0, t.width, t.height)
}

func (t *Texture) Format() wgpu.TextureFormat {
	return t.format
}

func (t *Texture) View() *wgpu.TextureView {
	return t.textureView
}

// Released returns true once Release was called.
func (t *Texture) Released() bool {
	return t == nil || t.texture == nil
}

// Release releases the texture and its view. It is safe to call
// Release on a nil or an already released Texture.
func (t *Texture) Release() {
	if t.Released() {
		return
	}

	t.textureView.Release()
	t.texture.Release()

	t.textureView = nil
	t.texture = nil
}

// WritePixels replaces the full content of the texture with the given
// tightly packed pixels.
func (t *Texture) WritePixels(ctx *Context, pixels []byte) error {
	return t.WritePixelsToRect(ctx, WritePixelsOptions{
		Pixels: pixels,
		Region: t.Bounds(),
	})
}

type WritePixelsOptions struct {
	Pixels   []byte
	Region   Rectangle2u
	Stride   uint32
	MipLevel uint32
}

// WritePixelsToRect uploads pixels into a region of the texture. The data is
// copied by the queue before this method returns, the caller is free to
// modify the pixels afterwards.
func (t *Texture) WritePixelsToRect(ctx *Context, opts WritePixelsOptions) error {
	if t.Released() {
		return fmt.Errorf("write to released texture")
	}

	// fail if not in rect
	if !t.Bounds().Contains(opts.Region) {
		return fmt.Errorf("target rect %s not in texture region %s", opts.Region, t.Bounds())
	}

	if opts.Stride == 0 {
		opts.Stride = opts.Region.Width() * 4
	}

	required := uint64(opts.Stride) * uint64(opts.Region.Height())
	if uint64(len(opts.Pixels)) < required {
		return fmt.Errorf("expected at least %d bytes of pixel data, got %d", required, len(opts.Pixels))
	}

	dest, layout, size := t.copyRegion(opts)

	// send data to the gpu
	err := ctx.WriteTexture(dest, opts.Pixels, layout, size)
	if err != nil {
		return fmt.Errorf("copy pixel data to texture: %w", err)
	}

	return nil
}

// copyRegion describes where WritePixelsToRect puts the pixels. opts.Stride must be set.
func (t *Texture) copyRegion(opts WritePixelsOptions) (*wgpu.ImageCopyTexture, *wgpu.TextureDataLayout, *wgpu.Extent3D) {
	dest := &wgpu.ImageCopyTexture{
		Texture:  t.texture,
		MipLevel: opts.MipLevel,
		Origin: wgpu.Origin3D{
			X: opts.Region.Min[0],
			Y: opts.Region.Min[1],
		},
		Aspect: wgpu.TextureAspectAll,
	}

	layout := &wgpu.TextureDataLayout{
		Offset:       0,
		BytesPerRow:  opts.Stride,
		RowsPerImage: opts.Region.Height(),
	}

	size := &wgpu.Extent3D{
		Width:              opts.Region.Width(),
		Height:             opts.Region.Height(),
		DepthOrArrayLayers: 1,
	}

	return dest, layout, size
}
