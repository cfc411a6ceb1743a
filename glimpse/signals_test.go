//go:build !js

package glimpse

import (
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalRouterRequestsClose(t *testing.T) {
	var wakes atomic.Int32

	router := routeSignals(func() { wakes.Add(1) })
	assert.False(t, router.Requested())

	router.signals <- syscall.SIGTERM

	require.Eventually(t, router.Requested, time.Second, time.Millisecond)
	router.Stop()

	assert.Equal(t, int32(1), wakes.Load())
}

func TestSignalRouterStopWaitsForWake(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	var finished atomic.Bool

	router := routeSignals(func() {
		close(entered)
		<-release
		finished.Store(true)
	})

	router.signals <- syscall.SIGINT
	<-entered

	stopped := make(chan struct{})
	go func() {
		router.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Stop returned while wake was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	<-stopped

	assert.True(t, finished.Load())
}
