package orion

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

type FrameTimes struct {
	FrameCount      uint64
	AverageDuration time.Duration
	MaxDuration     time.Duration

	// Delta time to previous frame
	Delta time.Duration

	lastTime time.Time
}

func (t *FrameTimes) update(d time.Duration) {
	const window = 64

	t.Delta = d
	t.MaxDuration = max(t.MaxDuration, d)

	if t.FrameCount < window/2 {
		t.AverageDuration = d
	} else {
		t.AverageDuration = ((window-1)*t.AverageDuration + d) / window
	}
}

func (t *FrameTimes) FPS() float64 {
	if t.AverageDuration <= 0 {
		return 0
	}

	return 1.0 / t.AverageDuration.Seconds()
}

// Tick records a presented frame at the current time. It returns true
// every 60 frames.
func (t *FrameTimes) Tick() bool {
	return t.tickAt(time.Now())
}

func (t *FrameTimes) tickAt(now time.Time) bool {
	if t.FrameCount > 0 {
		dt := now.Sub(t.lastTime)
		t.update(dt)
	}

	t.lastTime = now
	t.FrameCount += 1

	return t.FrameCount%60 == 0
}

func (t *FrameTimes) log(logger *slog.Logger) {
	// reading memory stats stops the world
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	logger.Debug("Frame statistics",
		slog.Uint64("frames", t.FrameCount),
		slog.Float64("fps", t.FPS()),
		slog.Duration("average", t.AverageDuration),
		slog.Duration("max", t.MaxDuration),
		slog.Uint64("heapAlloc", mem.HeapAlloc),
		slog.Uint64("gc", uint64(mem.NumGC)),
	)
}
