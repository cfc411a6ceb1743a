//go:build !js

package glimpse

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type glfwWindow struct {
	win  *glfw.Window
	prof stopper

	signals *signalRouter

	terminated bool
}

func NewWindow(opts Options) (Window, error) {
	if opts.Width == 0 || opts.Height == 0 {
		return nil, &WindowCreationError{Reason: "window size must not be empty"}
	}

	prof, err := startProfile(opts.Profile)
	if err != nil {
		return nil, &WindowCreationError{Reason: "start profiling", Err: err}
	}

	if err := glfw.Init(); err != nil {
		prof.Stop()
		return nil, &WindowCreationError{Reason: "initialize glfw", Err: err}
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(int(opts.Width), int(opts.Height), opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		prof.Stop()
		return nil, &WindowCreationError{Reason: "create window", Err: err}
	}

	w := &glfwWindow{
		win:  window,
		prof: prof,

		// a termination request takes the same path as closing the window
		signals: routeSignals(glfw.PostEmptyEvent),
	}

	return w, nil
}

func (g *glfwWindow) closeRequested() bool {
	return g.signals.Requested() || g.win.ShouldClose()
}

func (g *glfwWindow) ClientSize() (uint32, uint32) {
	width, height := g.win.GetFramebufferSize()
	return uint32(max(width, 0)), uint32(max(height, 0))
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) Run(handle func(Event) error) error {
	if err := handle(EventCreated); err != nil {
		return err
	}

	for !g.closeRequested() {
		glfw.PollEvents()

		if g.closeRequested() {
			break
		}

		if err := handle(EventPaint); err != nil {
			return err
		}
	}

	return handle(EventClose)
}

func (g *glfwWindow) Terminate() {
	if g.terminated {
		return
	}

	g.terminated = true

	// no wake up may reach glfw once it is terminated
	g.signals.Stop()

	g.prof.Stop()
	g.win.Destroy()
	glfw.Terminate()
}
