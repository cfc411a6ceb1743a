//go:build js

package glimpse

import (
	"syscall/js"

	"github.com/cogentcore/webgpu/wgpu"
)

type jsWindow struct {
	canvas js.Value
	prof   stopper
}

func NewWindow(opts Options) (Window, error) {
	if opts.Width == 0 || opts.Height == 0 {
		return nil, &WindowCreationError{Reason: "window size must not be empty"}
	}

	document := js.Global().Get("document")
	if !document.Truthy() {
		return nil, &WindowCreationError{Reason: "no document available"}
	}

	prof, err := startProfile(opts.Profile)
	if err != nil {
		return nil, &WindowCreationError{Reason: "start profiling", Err: err}
	}

	canvas := document.Call("createElement", "canvas")
	canvas.Set("width", opts.Width)
	canvas.Set("height", opts.Height)
	document.Get("body").Call("appendChild", canvas)

	document.Set("title", opts.Title)

	win := &jsWindow{
		canvas: canvas,
		prof:   prof,
	}

	return win, nil
}

func (g *jsWindow) ClientSize() (uint32, uint32) {
	width := g.canvas.Get("width").Int()
	height := g.canvas.Get("height").Int()
	return uint32(max(width, 0)), uint32(max(height, 0))
}

func (g *jsWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{Canvas: g.canvas}
}

func (g *jsWindow) Run(handle func(Event) error) error {
	if err := handle(EventCreated); err != nil {
		return err
	}

	done := make(chan error, 1)

	var stopped bool
	stop := func(err error) {
		if !stopped {
			stopped = true
			done <- err
		}
	}

	var frame js.Func
	frame = js.FuncOf(func(this js.Value, args []js.Value) any {
		if stopped {
			return nil
		}

		if err := handle(EventPaint); err != nil {
			stop(err)
			return nil
		}

		js.Global().Call("requestAnimationFrame", frame)
		return nil
	})

	defer frame.Release()

	// the page may be gone once this callback returns,
	// so the close event is delivered synchronously.
	pagehide := js.FuncOf(func(this js.Value, args []js.Value) any {
		if !stopped {
			stop(handle(EventClose))
		}

		return nil
	})

	defer pagehide.Release()

	js.Global().Call("addEventListener", "pagehide", pagehide)
	defer js.Global().Call("removeEventListener", "pagehide", pagehide)

	js.Global().Call("requestAnimationFrame", frame)

	return <-done
}

func (g *jsWindow) Terminate() {
	if g.prof != nil {
		g.prof.Stop()
		g.prof = nil
	}

	g.canvas.Call("remove")
}
