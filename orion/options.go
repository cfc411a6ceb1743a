package orion

import "os"

// Options configure one window session. Zero values are replaced by defaults.
type Options struct {
	// Title of the window, defaults to "szark"
	Title string

	// Requested client size in device pixels, defaults to 800x600.
	Width  uint32
	Height uint32

	// PixelSize is the number of device pixels per canvas pixel
	// in each direction. Defaults to 1.
	PixelSize uint32

	// Callbacks receive the lifecycle notifications of the session.
	Callbacks Callbacks

	// Profile enables profiling for the lifetime of the window, one of
	// cpu, mem, trace, block, mutex or goroutine. Defaults to
	// the value of the SZARK_PROFILE environment variable.
	Profile string
}

func (opts Options) withDefaults() Options {
	if opts.Title == "" {
		opts.Title = "szark"
	}

	if opts.Width == 0 {
		opts.Width = 800
	}

	if opts.Height == 0 {
		opts.Height = 600
	}

	if opts.PixelSize == 0 {
		opts.PixelSize = 1
	}

	if opts.Callbacks == nil {
		opts.Callbacks = Funcs{}
	}

	if opts.Profile == "" {
		opts.Profile = os.Getenv("SZARK_PROFILE")
	}

	return opts
}
