// Package ebitenhost shows overlay frames in a desktop window.
package ebitenhost

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"

	"github.com/phanxgames/overlay"
)

// Window is an overlay.Display backed by an ebiten window. Release hands the
// frame to the window and blocks until ebiten's Draw has taken it, so the
// frame loop is paced by the window's refresh.
type Window struct {
	cfg   overlay.DisplayConfig
	scale int

	bufs [2][]uint16
	cur  int

	present  chan []uint16
	done     chan struct{}
	once     sync.Once
	teardown *overlay.Teardown
	mu       sync.Mutex

	nrgba *image.NRGBA
	rgba  *image.RGBA
	frame *ebiten.Image
}

// New creates a window display. scale is the initial window zoom.
func New(cfg overlay.DisplayConfig, scale int) (*Window, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if scale < 1 {
		scale = 1
	}
	n := cfg.BufferLen()
	w := &Window{
		cfg:     cfg,
		scale:   scale,
		present: make(chan []uint16),
		done:    make(chan struct{}),
		rgba:    image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
	}
	w.bufs[0] = make([]uint16, n)
	w.bufs[1] = make([]uint16, n)
	w.teardown = overlay.NewTeardown(
		overlay.TeardownStep{Name: "vsync event", Fn: w.closeVsync},
		overlay.TeardownStep{Name: "window", Fn: w.closeFrame},
	)
	return w, nil
}

// Acquire implements overlay.Display.
func (w *Window) Acquire() ([]uint16, bool) {
	select {
	case <-w.done:
		return nil, false
	default:
	}
	return w.bufs[w.cur], true
}

// Release implements overlay.Display. It blocks until Draw receives the
// frame or the window closes.
func (w *Window) Release() {
	buf := w.bufs[w.cur]
	select {
	case w.present <- buf:
		next := w.bufs[1-w.cur]
		// Start from the frame just presented so partially drawn frames never
		// show stale content.
		copy(next, buf)
		w.cur = 1 - w.cur
	case <-w.done:
	}
}

// Close implements overlay.Display. It unblocks a pending Release and frees
// the window texture.
func (w *Window) Close() error {
	return w.teardown.Run()
}

func (w *Window) closeVsync() error {
	w.once.Do(func() { close(w.done) })
	return nil
}

func (w *Window) closeFrame() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.frame != nil {
		w.frame.Deallocate()
		w.frame = nil
	}
	return nil
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	select {
	case <-w.done:
		return ebiten.Termination
	default:
	}
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	defer w.mu.Unlock()
	screen.Fill(color.Black)
	select {
	case <-w.done:
		return
	default:
	}
	if w.frame == nil {
		w.frame = ebiten.NewImage(w.cfg.Width, w.cfg.Height)
	}
	select {
	case buf := <-w.present:
		w.nrgba = overlay.Detile(buf, w.cfg.Width, w.cfg.Height)
		// Premultiply for ebiten.
		draw.Draw(w.rgba, w.rgba.Bounds(), w.nrgba, image.Point{}, draw.Src)
		w.frame.WritePixels(w.rgba.Pix)
	default:
	}
	screen.DrawImage(w.frame, nil)
}

// Layout implements ebiten.Game.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.cfg.Width, w.cfg.Height
}

// Loop draws frames into the window until its context is cancelled.
// *overlay.FrameLoop implements it.
type Loop interface {
	RunContext(ctx context.Context) error
}

// Run opens the window and drives loop on a separate goroutine until the
// window is closed. It must be called from the main goroutine.
func (w *Window) Run(title string, loop Loop) error {
	if loop == nil {
		return fmt.Errorf("ebitenhost: nil frame loop")
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loopDone := make(chan error, 1)
	go func() { loopDone <- loop.RunContext(ctx) }()

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w.cfg.Width*w.scale, w.cfg.Height*w.scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(w.cfg.Vsync)
	overlay.Logger().Info("window opened", "title", title, "scale", w.scale)

	err := ebiten.RunGame(w)
	cancel()
	_ = w.Close()
	if lerr := <-loopDone; lerr != nil && !errors.Is(lerr, context.Canceled) {
		err = errors.Join(err, lerr)
	}
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	return err
}
