package orion

import (
	"fmt"
	"log/slog"
)

//go:generate go tool stringer -type=State -trimprefix=State

type State int

const (
	StateUncreated State = iota
	StateCreated
	StateRunning
	StateDestroyed
)

// lifecycle only ever moves forward. States may be skipped,
// but never revisited.
type lifecycle struct {
	current State
}

func (l *lifecycle) Current() State {
	return l.current
}

func (l *lifecycle) advance(next State) error {
	if next <= l.current {
		return fmt.Errorf("invalid state transition from %s to %s", l.current, next)
	}

	slog.Debug("Window state changed",
		slog.String("from", l.current.String()),
		slog.String("to", next.String()),
	)

	l.current = next

	return nil
}
