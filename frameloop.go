package overlay

import (
	"context"
	"fmt"
	"time"
)

// FrameLoop draws the overlay frame after frame: acquire a surface, compose
// the backdrop, draw the walker and the caption, release (waiting for the
// display), sleep, repeat.
//
// A FrameLoop is single-threaded. It owns the acquired buffer from Acquire
// to Release and keeps no reference to it afterwards.
type FrameLoop struct {
	cfg     Config
	display Display
	canvas  *Canvas
	scene   *Scene
	walker  *Walker
	caption *Caption

	tick   uint64
	missed int
	stats  FrameStats
	fps    FPSCounter

	// ScreenshotDir receives PNGs queued with Screenshot; ScreenshotScale
	// upscales them.
	ScreenshotDir   string
	ScreenshotScale int

	screenshotQueue []string
	screenshots     []string
	snapBuf         []uint16
	script          *ScriptRunner

	lastLog time.Time
	now     func() time.Time
	sleep   func(context.Context, time.Duration) error
}

// NewFrameLoop creates a loop drawing into d. A nil atlas selects the
// compiled-in art.
func NewFrameLoop(cfg Config, d Display, atlas *Atlas) (*FrameLoop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("overlay: nil display")
	}
	if atlas == nil {
		atlas = DefaultAtlas()
	}
	scene := NewScene(atlas)

	w := NewWalker(cfg.Physics(), cfg.WalkerX, cfg.Height-cfg.WalkerRise, cfg.Width)
	w.Scale = cfg.SpriteScale
	w.Lift = cfg.SpriteLift
	w.Idle = atlas.Bitmap(AssetHeroIdle)
	w.Jump = atlas.Bitmap(AssetHeroJump)

	c := NewCaption(cfg.Captions, cfg.CaptionEvery, cfg.CaptionDrop)
	c.SetStyle(cfg.CaptionStyle())

	return &FrameLoop{
		cfg:     cfg,
		display: d,
		canvas:  NewCanvas(cfg.Width, cfg.Height),
		scene:   scene,
		walker:  w,
		caption: c,
		now:     time.Now,
		sleep:   sleepContext,
	}, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Config returns the loop configuration.
func (l *FrameLoop) Config() Config { return l.cfg }

// Scene returns the backdrop composer.
func (l *FrameLoop) Scene() *Scene { return l.scene }

// Walker returns the animated sprite.
func (l *FrameLoop) Walker() *Walker { return l.walker }

// Caption returns the status caption.
func (l *FrameLoop) Caption() *Caption { return l.caption }

// Tick returns the number of frames drawn.
func (l *FrameLoop) Tick() uint64 { return l.tick }

// Stats returns the statistics of the most recent frame.
func (l *FrameLoop) Stats() FrameStats { return l.stats }

// Step runs one iteration without the trailing sleep. It reports false when
// the display had no surface, in which case nothing is drawn or released and
// the tick does not advance.
func (l *FrameLoop) Step() bool {
	buf, ok := l.display.Acquire()
	if !ok || !l.canvas.Bind(buf) {
		if ok {
			// Surface too small for the canvas; hand it straight back.
			l.display.Release()
		}
		l.stats.Skipped++
		l.missed++
		if l.missed == missedWarnAfter {
			Logger().Warn("display surface unavailable", "consecutive", l.missed)
		}
		return false
	}
	l.missed = 0
	if l.script != nil {
		l.script.step(l)
	}

	timed := l.cfg.Debug
	var t0 time.Time
	mark := func(d *time.Duration) {
		if !timed {
			return
		}
		t := l.now()
		*d = t.Sub(t0)
		t0 = t
	}
	if timed {
		t0 = l.now()
	}

	l.scene.Compose(l.canvas)
	mark(&l.stats.ComposeTime)

	l.walker.Step()
	l.walker.Draw(l.canvas)
	mark(&l.stats.SpriteTime)

	l.caption.Step(l.tick)
	l.caption.Draw(l.canvas)
	mark(&l.stats.CaptionTime)

	l.canvas.Unbind()
	l.display.Release()
	mark(&l.stats.PresentTime)
	l.flushScreenshots()

	l.tick++
	l.stats.Frames++
	if timed {
		now := l.now()
		l.stats.FPS = l.fps.Frame(now)
		l.debugLog(now)
	}
	return true
}

// Run loops forever. It only returns if the loop is stopped through
// RunContext.
func (l *FrameLoop) Run() {
	_ = l.RunContext(context.Background())
}

// RunContext loops until ctx is done and returns ctx.Err().
func (l *FrameLoop) RunContext(ctx context.Context) error {
	Logger().Info("frame loop started",
		"width", l.cfg.Width, "height", l.cfg.Height,
		"interval", time.Duration(l.cfg.FrameInterval))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		l.Step()
		if err := l.sleep(ctx, time.Duration(l.cfg.FrameInterval)); err != nil {
			return err
		}
	}
}
