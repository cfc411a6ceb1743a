package orion

import (
	"errors"
	"slices"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/szark/glimpse"
)

// fakeHost replays a fixed number of paint events between created and close.
type fakeHost struct {
	width, height uint32
	paints        int

	// called before each paint event
	beforePaint func(idx int)

	options    glimpse.Options
	terminated int
}

func (h *fakeHost) ClientSize() (uint32, uint32) {
	return h.width, h.height
}

func (h *fakeHost) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{}
}

func (h *fakeHost) Run(handle func(glimpse.Event) error) error {
	if err := handle(glimpse.EventCreated); err != nil {
		return err
	}

	for idx := range h.paints {
		if h.beforePaint != nil {
			h.beforePaint(idx)
		}

		if err := handle(glimpse.EventPaint); err != nil {
			return err
		}
	}

	return handle(glimpse.EventClose)
}

func (h *fakeHost) Terminate() {
	h.terminated++
}

type fakeTexture struct {
	width, height uint32

	pixels   []byte
	updates  int
	released int

	fail bool
}

func (t *fakeTexture) UpdatePixels(pixels []byte) error {
	if t.fail {
		return errors.New("device lost")
	}

	t.pixels = slices.Clone(pixels)
	t.updates++
	return nil
}

func (t *fakeTexture) Release() {
	t.released++
}

type fakeGraphics struct {
	textures []*fakeTexture

	// number of DrawQuad calls that fail before drawing works
	failDraws int

	draws    int
	presents int
	released int

	viewports [][2]uint32
}

func (g *fakeGraphics) BuildTexture(width, height uint32, pixels []byte) (Texture, error) {
	// keep the slice as given to verify that a copy was passed
	texture := &fakeTexture{width: width, height: height, pixels: pixels}
	g.textures = append(g.textures, texture)
	return texture, nil
}

func (g *fakeGraphics) DrawQuad(viewportWidth, viewportHeight uint32, texture Texture) error {
	if g.failDraws > 0 {
		g.failDraws--
		return errors.New("surface lost")
	}

	g.draws++
	g.viewports = append(g.viewports, [2]uint32{viewportWidth, viewportHeight})
	return nil
}

func (g *fakeGraphics) Present() {
	g.presents++
}

func (g *fakeGraphics) Release() {
	g.released++
}

// recorder records the order of callback invocations.
type recorder struct {
	calls []string
}

func (r *recorder) Opened() { r.calls = append(r.calls, "opened") }
func (r *recorder) Loop()   { r.calls = append(r.calls, "loop") }
func (r *recorder) Closed() { r.calls = append(r.calls, "closed") }

func hostFactoryOf(host *fakeHost) hostFactory {
	return func(opts glimpse.Options) (glimpse.Window, error) {
		host.options = opts
		return host, nil
	}
}

func graphicsFactoryOf(g *fakeGraphics) graphicsFactory {
	return func(win glimpse.Window) (Graphics, error) {
		return g, nil
	}
}
