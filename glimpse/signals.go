//go:build !js

package glimpse

import (
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
)

// signalRouter turns termination signals into close requests.
type signalRouter struct {
	signals   chan os.Signal
	requested atomic.Bool
	done      sync.WaitGroup
}

// routeSignals starts watching for SIGINT and SIGTERM. wake is called from
// the watching goroutine after each signal.
func routeSignals(wake func()) *signalRouter {
	r := &signalRouter{signals: make(chan os.Signal, 1)}

	signal.Notify(r.signals, os.Interrupt, syscall.SIGTERM)

	r.done.Add(1)
	go r.watch(wake)

	return r
}

func (r *signalRouter) watch(wake func()) {
	defer r.done.Done()

	for sig := range r.signals {
		slog.Info("Termination requested", slog.String("signal", sig.String()))

		r.requested.Store(true)
		wake()
	}
}

// Requested returns true once a termination signal was received.
func (r *signalRouter) Requested() bool {
	return r.requested.Load()
}

// Stop stops watching for signals. It returns after a wake call that
// is currently running has finished. Stop must be called only once.
func (r *signalRouter) Stop() {
	signal.Stop(r.signals)
	close(r.signals)

	r.done.Wait()
}
