package orion

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/szark/canvas"
	"github.com/oliverbestmann/szark/glimpse"
	"github.com/oliverbestmann/szark/glm"
	"github.com/oliverbestmann/szark/pulse"
)

var ErrSessionFinished = errors.New("window session already finished")

type hostFactory func(opts glimpse.Options) (glimpse.Window, error)

type graphicsFactory func(win glimpse.Window) (Graphics, error)

// Window is one window session. It owns the native window, the graphics
// backend, the canvas and the surface built from it.
type Window struct {
	opts Options

	newHost     hostFactory
	newGraphics graphicsFactory

	state lifecycle

	host     glimpse.Window
	graphics Graphics

	canvas  *canvas.Canvas
	surface *Surface

	// canvas generation the surface was last synced with
	uploaded uint64

	viewportWidth  uint32
	viewportHeight uint32

	opened bool
	stats  FrameTimes
}

func NewWindow(opts Options) *Window {
	return newWindow(opts, glimpse.NewWindow, newGPUGraphics)
}

func newWindow(opts Options, newHost hostFactory, newGraphics graphicsFactory) *Window {
	return &Window{
		opts:        opts.withDefaults(),
		newHost:     newHost,
		newGraphics: newGraphics,
	}
}

// CreateWindow opens a window and blocks until it was closed.
// It returns the exit code for the process.
func CreateWindow(opts Options) int {
	return NewWindow(opts).Run()
}

// Canvas returns the canvas shown in the window. It is only valid
// between the Opened and Closed callbacks.
func (w *Window) Canvas() *canvas.Canvas {
	return w.canvas
}

func (w *Window) State() State {
	return w.state.Current()
}

// Stats returns the frame statistics of the session.
func (w *Window) Stats() FrameTimes {
	return w.stats
}

// Run opens the window and blocks until it was closed. A window can only be run once.
func (w *Window) Run() int {
	err := w.run()
	if err != nil {
		slog.Error("Window session failed", slog.String("error", err.Error()))
	}

	return ExitCode(err)
}

func (w *Window) run() error {
	if w.state.Current() != StateUncreated {
		return ErrSessionFinished
	}

	host, err := w.newHost(glimpse.Options{
		Title:   w.opts.Title,
		Width:   w.opts.Width,
		Height:  w.opts.Height,
		Profile: w.opts.Profile,
	})

	if err != nil {
		must(w.state.advance(StateDestroyed), "destroy window")
		return fmt.Errorf("open window: %w", err)
	}

	w.host = host
	must(w.state.advance(StateCreated), "create window")

	// runs even if the event loop failed or panicked
	defer w.teardown()

	return w.host.Run(w.handleEvent)
}

func (w *Window) handleEvent(event glimpse.Event) error {
	switch event {
	case glimpse.EventCreated:
		return w.onCreated()

	case glimpse.EventPaint:
		return w.onPaint()

	case glimpse.EventClose:
		w.teardown()
		return nil

	default:
		return fmt.Errorf("unexpected event %s", event)
	}
}

func (w *Window) onCreated() error {
	graphics, err := w.newGraphics(w.host)
	switch {
	case errors.Is(err, pulse.ErrUnsupportedSurface):
		// nothing can ever be shown in this window
		return &glimpse.WindowCreationError{Reason: "negotiate surface format", Err: err}

	case err != nil:
		return fmt.Errorf("initialize graphics: %w", err)
	}

	w.graphics = graphics

	// the actual client area may differ from the requested one
	w.viewportWidth, w.viewportHeight = w.host.ClientSize()

	size := canvas.LogicalSize(w.viewportWidth, w.viewportHeight, w.opts.PixelSize)
	width, height := size.XY()

	slog.Info("Allocate canvas",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
		slog.Int("pixelSize", int(w.opts.PixelSize)),
	)

	w.canvas = canvas.New(int(width), int(height))
	canvas.FillNoise(w.canvas, glm.Vec2f{})

	w.surface, err = BuildSurface(w.graphics, w.canvas)
	if err != nil {
		return err
	}

	w.uploaded = w.canvas.Generation()

	w.opened = true
	w.opts.Callbacks.Opened()

	return nil
}

func (w *Window) onPaint() error {
	if w.state.Current() == StateCreated {
		must(w.state.advance(StateRunning), "start rendering")
	}

	if err := w.syncSurface(); err != nil {
		return err
	}

	err := renderFrame(w.graphics, w.viewportWidth, w.viewportHeight, w.surface, w.opts.Callbacks.Loop)
	if err != nil {
		slog.Warn("Skip frame", slog.String("error", err.Error()))
		return nil
	}

	w.graphics.Present()

	if w.stats.Tick() {
		w.stats.log(slog.Default())
	}

	return nil
}

// syncSurface uploads the canvas if it changed since the last upload.
func (w *Window) syncSurface() error {
	generation := w.canvas.Generation()
	if w.surface.Valid() && generation == w.uploaded {
		return nil
	}

	width, height := w.canvas.Size().XY()

	if w.surface.Valid() && w.surface.Width() == width && w.surface.Height() == height {
		if err := w.surface.update(w.canvas.Bytes()); err != nil {
			return fmt.Errorf("update surface: %w", err)
		}

		w.uploaded = generation
		return nil
	}

	w.surface.Release()

	surface, err := BuildSurface(w.graphics, w.canvas)
	if err != nil {
		return err
	}

	w.surface = surface
	w.uploaded = generation

	return nil
}

// teardown releases all resources of the session. Only the first call has an effect.
func (w *Window) teardown() {
	if w.state.Current() == StateDestroyed {
		return
	}

	w.surface.Release()
	w.surface = nil

	if w.graphics != nil {
		w.graphics.Release()
		w.graphics = nil
	}

	if w.opened {
		w.opts.Callbacks.Closed()
	}

	w.canvas = nil

	w.host.Terminate()

	must(w.state.advance(StateDestroyed), "destroy window")

	slog.Info("Window closed", slog.Uint64("frames", w.stats.FrameCount))
}
