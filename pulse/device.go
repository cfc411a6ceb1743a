package pulse

import (
	"errors"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

var forceFallbackAdapter = os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"

func init() {
	// the window toolkit and the surface must only be touched from the main thread
	runtime.LockOSThread()

	if level, ok := parseLogLevel(os.Getenv("WGPU_LOG_LEVEL")); ok {
		wgpu.SetLogLevel(level)
	}
}

func parseLogLevel(value string) (wgpu.LogLevel, bool) {
	switch strings.ToUpper(value) {
	case "OFF":
		return wgpu.LogLevelOff, true
	case "ERROR":
		return wgpu.LogLevelError, true
	case "WARN":
		return wgpu.LogLevelWarn, true
	case "INFO":
		return wgpu.LogLevelInfo, true
	case "DEBUG":
		return wgpu.LogLevelDebug, true
	case "TRACE":
		return wgpu.LogLevelTrace, true
	}

	return 0, false
}

// Context encapsulates the low level state of the webgpu context,
// this includes the Device, Surface and active Adapter
type Context struct {
	*wgpu.Device
	*wgpu.Queue
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter
}

// New creates the rendering context for the surface described by sd.
// All failures are reported as *GraphicsInitError.
func New(sd *wgpu.SurfaceDescriptor) (st *Context, err error) {
	defer func() {
		if err != nil && st != nil {
			st.Release()
			st = nil
		}
	}()

	if sd == nil {
		return nil, initError("create surface", errors.New("no surface descriptor"))
	}

	st = &Context{}

	// create the webgpu instance
	instance := wgpu.CreateInstance(nil)
	if instance == nil {
		return nil, initError("create instance", errors.New("webgpu is not supported"))
	}

	defer instance.Release()

	// create a Surface based on the window
	st.Surface = instance.CreateSurface(sd)

	// create an adapter that can render to the Surface
	st.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    st.Surface,
	})

	if err != nil {
		return st, initError("request adapter", err)
	}

	// get a Device with the default settings
	st.Device, err = st.Adapter.RequestDevice(nil)
	if err != nil {
		return st, initError("request device", err)
	}

	st.Queue = st.Device.GetQueue()

	slog.Info("Graphics context ready",
		slog.Bool("fallbackAdapter", forceFallbackAdapter),
	)

	return st, nil
}

// Release releases the context and everything cached for its device.
// It is safe to call Release multiple times.
func (d *Context) Release() {
	// cached samplers belong to the device
	purgeSamplerCache()

	if d.Queue != nil {
		d.Queue.Release()
		d.Queue = nil
	}

	if d.Device != nil {
		d.Device.Release()
		d.Device = nil
	}

	if d.Adapter != nil {
		d.Adapter.Release()
		d.Adapter = nil
	}

	if d.Surface != nil {
		d.Surface.Release()
		d.Surface = nil
	}
}
