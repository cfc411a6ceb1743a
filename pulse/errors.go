package pulse

import (
	"errors"
	"fmt"
)

// ErrUnsupportedSurface is returned if the adapter cannot present to the
// window surface in any format.
var ErrUnsupportedSurface = errors.New("surface is not supported by the adapter")

// GraphicsInitError is returned when a gpu resource that is required to
// show anything at all could not be created: the adapter, the device, the
// surface configuration, a texture or a render pipeline.
type GraphicsInitError struct {
	// Op describes what was being created
	Op  string
	Err error
}

func (e *GraphicsInitError) Error() string {
	return fmt.Sprintf("graphics init: %s: %s", e.Op, e.Err)
}

func (e *GraphicsInitError) Unwrap() error {
	return e.Err
}

func initError(op string, err error) error {
	if err == nil {
		return nil
	}

	return &GraphicsInitError{Op: op, Err: err}
}
