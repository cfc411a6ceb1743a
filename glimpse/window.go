package glimpse

import "github.com/cogentcore/webgpu/wgpu"

//go:generate go tool stringer -type=Event -trimprefix=Event

// Event is a notification from the native window that the session
// reacts to.
type Event int

const (
	// EventCreated is emitted exactly once, before any other event.
	EventCreated Event = iota

	// EventPaint is emitted whenever the window wants a new frame.
	EventPaint

	// EventClose is emitted exactly once when the window was closed or the
	// process was asked to terminate. No events follow it.
	EventClose
)

type Options struct {
	Title string

	// requested client size in device pixels
	Width  uint32
	Height uint32

	// Profile enables profiling for the lifetime of the window,
	// see ProfileModes for accepted values.
	Profile string
}

// Window is the native window together with its event loop.
// A Window is created by NewWindow, the implementation is chosen at build time.
type Window interface {
	// ClientSize returns the actual size of the drawable area in device
	// pixels. It may differ from the requested size.
	ClientSize() (uint32, uint32)

	// SurfaceDescriptor describes the window to webgpu.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Run blocks and pumps native events into handle until the
	// window is closed. If handle returns an error, the loop stops
	// and Run returns that error.
	Run(handle func(Event) error) error

	// Terminate destroys the window. It is safe to call Terminate more than once.
	Terminate()
}
