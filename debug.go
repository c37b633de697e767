package overlay

import (
	"log/slog"
	"time"
)

// FrameStats holds per-frame timing and counters. Timings are only measured
// when Config.Debug is set.
type FrameStats struct {
	ComposeTime time.Duration
	SpriteTime  time.Duration
	CaptionTime time.Duration
	PresentTime time.Duration

	Frames  uint64 // presented frames
	Skipped uint64 // iterations without a surface
	FPS     float64
}

// Total returns the summed phase timings of the last frame.
func (s FrameStats) Total() time.Duration {
	return s.ComposeTime + s.SpriteTime + s.CaptionTime + s.PresentTime
}

// LogValue implements slog.LogValuer.
func (s FrameStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("compose", s.ComposeTime),
		slog.Duration("sprite", s.SpriteTime),
		slog.Duration("caption", s.CaptionTime),
		slog.Duration("present", s.PresentTime),
		slog.Duration("total", s.Total()),
		slog.Uint64("frames", s.Frames),
		slog.Uint64("skipped", s.Skipped),
		slog.Float64("fps", s.FPS),
	)
}

// debugLogEvery is the interval between frame statistics log lines.
const debugLogEvery = time.Second

// missedWarnAfter is the number of consecutive skipped frames after which the
// loop warns that the display has gone away.
const missedWarnAfter = 100

// debugLog logs stats at debug level at most once per debugLogEvery.
func (l *FrameLoop) debugLog(now time.Time) {
	if !l.cfg.Debug || now.Sub(l.lastLog) < debugLogEvery {
		return
	}
	l.lastLog = now
	Logger().Debug("frame stats", "stats", l.stats, "tick", l.tick)
}
