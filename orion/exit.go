package orion

import (
	"errors"

	"github.com/oliverbestmann/szark/glimpse"
	"github.com/oliverbestmann/szark/pulse"
)

// Process exit codes returned by Run and CreateWindow.
const (
	ExitOK             = 0
	ExitWindowCreation = 1
	ExitGraphicsInit   = 2
	ExitFailure        = 3
)

// ExitCode maps the error a session ended with to a process exit code.
// A nil error is a clean close, no matter how the close was requested.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var errWindow *glimpse.WindowCreationError
	if errors.As(err, &errWindow) {
		return ExitWindowCreation
	}

	var errGraphics *pulse.GraphicsInitError
	if errors.As(err, &errGraphics) {
		return ExitGraphicsInit
	}

	return ExitFailure
}
