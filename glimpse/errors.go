package glimpse

import "fmt"

// WindowCreationError is returned by NewWindow if the native window could not be created.
type WindowCreationError struct {
	Reason string
	Err    error
}

func (e *WindowCreationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("could not create window: %s", e.Reason)
	}

	return fmt.Sprintf("could not create window: %s: %s", e.Reason, e.Err)
}

func (e *WindowCreationError) Unwrap() error {
	return e.Err
}
