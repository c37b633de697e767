package overlay

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Display is the surface provider the frame loop draws into.
//
// Acquire returns the writable back buffer, or false when no surface is
// available this frame. The buffer is valid until Release. Release submits
// the buffer for presentation and blocks until the display can take the next
// frame; it is the loop's only synchronisation point with the screen.
type Display interface {
	Acquire() ([]uint16, bool)
	Release()
	Close() error
}

// DisplayConfig describes the surface a Display provides and where its layer
// sits on the physical screen.
type DisplayConfig struct {
	// Width and Height are the canvas size in pixels.
	Width, Height int
	// Format is the surface pixel format. Only RGBA4444 is drawable.
	Format PixelFormat
	// Buffers is the swap chain length.
	Buffers int

	// ScreenWidth and ScreenHeight are the physical screen size.
	ScreenWidth, ScreenHeight int
	// LayerHeightPercent is the layer height as a percentage of the screen
	// height. The layer width keeps the canvas aspect ratio.
	LayerHeightPercent int
	// LayerZ orders the layer against other overlays.
	LayerZ int

	// Vsync makes Release wait for the next vertical blank.
	Vsync bool
	// RefreshRate is the vertical blank frequency in Hz.
	RefreshRate int
}

// DefaultDisplayConfig returns the 448x720 RGBA4444 double-buffered layer
// centred on a 1920x1080 screen.
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		Width:              DefaultWidth,
		Height:             DefaultHeight,
		Format:             PixelFormatRGBA4444,
		Buffers:            2,
		ScreenWidth:        1920,
		ScreenHeight:       1080,
		LayerHeightPercent: 35,
		LayerZ:             250,
		Vsync:              true,
		RefreshRate:        60,
	}
}

// DisplayConfig returns the display settings matching c's canvas.
func (c Config) DisplayConfig() DisplayConfig {
	dc := DefaultDisplayConfig()
	dc.Width, dc.Height = c.Width, c.Height
	return dc
}

// Validate checks that the configuration describes a drawable surface.
func (c DisplayConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("overlay: display %dx%d must be positive", c.Width, c.Height)
	case c.Width%blockColumn != 0:
		return fmt.Errorf("overlay: display width %d is not a multiple of %d", c.Width, blockColumn)
	case c.Format != PixelFormatRGBA4444:
		return fmt.Errorf("overlay: display format %v is not drawable", c.Format)
	case c.Buffers < 1:
		return fmt.Errorf("overlay: display needs at least one buffer, got %d", c.Buffers)
	case c.Vsync && c.RefreshRate <= 0:
		return fmt.Errorf("overlay: vsync needs a positive refresh rate, got %d", c.RefreshRate)
	}
	return nil
}

// Layer returns the layer rectangle on the physical screen: LayerHeightPercent
// of the screen height, the canvas aspect ratio, centred.
func (c DisplayConfig) Layer() Rect {
	h := c.ScreenHeight * c.LayerHeightPercent / 100
	w := 0
	if c.Height > 0 {
		w = c.ScreenHeight * c.Width / c.Height
	}
	return Rect{
		X:      (c.ScreenWidth - w) / 2,
		Y:      (c.ScreenHeight - h) / 2,
		Width:  w,
		Height: h,
	}
}

// VblankPeriod returns the time between vertical blanks, or zero when Vsync
// is off.
func (c DisplayConfig) VblankPeriod() time.Duration {
	if !c.Vsync || c.RefreshRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.RefreshRate)
}

// BufferLen returns the number of uint16 elements in one surface buffer.
func (c DisplayConfig) BufferLen() int {
	return BufferLen(c.Width, c.Height)
}

// ErrDisplayClosed is returned by operations on a closed display.
var ErrDisplayClosed = errors.New("overlay: display closed")

// MemoryDisplay is an in-memory double-buffered Display. Release swaps the
// back buffer to the front; readers take copies of the front buffer with
// Snapshot. It is safe to read from other goroutines while a loop draws.
type MemoryDisplay struct {
	cfg DisplayConfig

	mu        sync.Mutex
	front     []uint16
	back      []uint16
	acquired  bool
	closed    bool
	available bool
	frames    uint64
	presented chan struct{}
	teardown  *Teardown

	// Vertical blanks fall on epoch + k*period.
	epoch  time.Time
	period time.Duration
	vsync  chan struct{}
	now    func() time.Time
}

// NewMemoryDisplay creates a memory display. Buffers beyond two are ignored.
func NewMemoryDisplay(cfg DisplayConfig) (*MemoryDisplay, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n := cfg.BufferLen()
	d := &MemoryDisplay{
		cfg:       cfg,
		front:     make([]uint16, n),
		back:      make([]uint16, n),
		available: true,
		presented: make(chan struct{}),
		period:    cfg.VblankPeriod(),
		vsync:     make(chan struct{}),
		now:       time.Now,
	}
	d.epoch = d.now()
	d.teardown = NewTeardown(
		TeardownStep{Name: "framebuffer", Fn: d.closeBuffers},
		TeardownStep{Name: "vsync event", Fn: d.closeVsync},
	)
	Logger().Info("memory display opened",
		"width", cfg.Width, "height", cfg.Height,
		"layer", cfg.Layer(), "z", cfg.LayerZ,
		"vsync", cfg.Vsync, "refresh", cfg.RefreshRate)
	return d, nil
}

// Config returns the display configuration.
func (d *MemoryDisplay) Config() DisplayConfig { return d.cfg }

// SetAvailable controls whether Acquire hands out a surface, for simulating
// a display that is temporarily gone.
func (d *MemoryDisplay) SetAvailable(ok bool) {
	d.mu.Lock()
	d.available = ok
	d.mu.Unlock()
}

// Acquire implements Display.
func (d *MemoryDisplay) Acquire() ([]uint16, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || !d.available || d.acquired {
		return nil, false
	}
	d.acquired = true
	return d.back, true
}

// Release implements Display. With Vsync set it blocks until the next
// vertical blank, or until the display is closed.
func (d *MemoryDisplay) Release() {
	d.mu.Lock()
	if !d.acquired || d.closed {
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()
	d.waitVblank()

	d.mu.Lock()
	if !d.acquired || d.closed {
		d.mu.Unlock()
		return
	}
	d.acquired = false
	d.front, d.back = d.back, d.front
	// The new back buffer starts from the presented frame, as a swap chain
	// without clears would.
	copy(d.back, d.front)
	d.frames++
	ch := d.presented
	d.presented = make(chan struct{})
	d.mu.Unlock()
	close(ch)
}

// waitVblank sleeps until the next vertical blank after now.
func (d *MemoryDisplay) waitVblank() {
	if d.period <= 0 {
		return
	}
	since := d.now().Sub(d.epoch)
	next := (since/d.period + 1) * d.period
	t := time.NewTimer(next - since)
	defer t.Stop()
	select {
	case <-t.C:
	case <-d.vsync:
	}
}

// Frames returns the number of frames presented.
func (d *MemoryDisplay) Frames() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames
}

// Presented returns a channel closed at the next Release.
func (d *MemoryDisplay) Presented() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.presented
}

// Snapshot copies the front buffer into dst, growing it if needed, and
// returns it with the number of frames presented so far.
func (d *MemoryDisplay) Snapshot(dst []uint16) ([]uint16, uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if cap(dst) < len(d.front) {
		dst = make([]uint16, len(d.front))
	}
	dst = dst[:len(d.front)]
	copy(dst, d.front)
	return dst, d.frames
}

// Close implements Display. It unblocks a Release waiting for vsync. Later
// calls return the result of the first.
func (d *MemoryDisplay) Close() error {
	return d.teardown.Run()
}

func (d *MemoryDisplay) closeBuffers() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrDisplayClosed
	}
	d.closed = true
	d.acquired = false
	return nil
}

func (d *MemoryDisplay) closeVsync() error {
	close(d.vsync)
	d.mu.Lock()
	ch := d.presented
	d.presented = make(chan struct{})
	d.mu.Unlock()
	close(ch)
	return nil
}
