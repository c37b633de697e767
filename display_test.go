package overlay

import (
	"testing"
	"time"
)

func TestDisplayConfigLayer(t *testing.T) {
	got := DefaultDisplayConfig().Layer()
	want := Rect{X: 624, Y: 351, Width: 672, Height: 378}
	if got != want {
		t.Errorf("Layer = %+v, want %+v", got, want)
	}
}

func TestDisplayConfigValidate(t *testing.T) {
	if err := DefaultDisplayConfig().Validate(); err != nil {
		t.Fatal(err)
	}
	tests := []func(*DisplayConfig){
		func(c *DisplayConfig) { c.Width = 0 },
		func(c *DisplayConfig) { c.Width = 40 },
		func(c *DisplayConfig) { c.Format = PixelFormatRGB565 },
		func(c *DisplayConfig) { c.Buffers = 0 },
		func(c *DisplayConfig) { c.RefreshRate = 0 },
	}
	for i, mutate := range tests {
		c := DefaultDisplayConfig()
		mutate(&c)
		if c.Validate() == nil {
			t.Errorf("case %d: invalid config accepted", i)
		}
	}
}

func TestMemoryDisplayAcquireRelease(t *testing.T) {
	d, err := NewMemoryDisplay(DefaultDisplayConfig())
	if err != nil {
		t.Fatal(err)
	}
	buf, ok := d.Acquire()
	if !ok || len(buf) != BufferLen(448, 720) {
		t.Fatalf("Acquire = len %d, %v", len(buf), ok)
	}
	if _, ok := d.Acquire(); ok {
		t.Error("second Acquire before Release succeeded")
	}
	buf[0] = 0xABCD
	presented := d.Presented()
	d.Release()
	select {
	case <-presented:
	default:
		t.Error("Presented channel not closed by Release")
	}
	if d.Frames() != 1 {
		t.Errorf("Frames = %d, want 1", d.Frames())
	}
	snap, n := d.Snapshot(nil)
	if snap[0] != 0xABCD || n != 1 {
		t.Errorf("Snapshot[0] = %#x, frames %d", snap[0], n)
	}
	// Release without Acquire is ignored.
	d.Release()
	if d.Frames() != 1 {
		t.Error("unpaired Release presented a frame")
	}
}

func TestMemoryDisplayUnavailable(t *testing.T) {
	d, _ := NewMemoryDisplay(DefaultDisplayConfig())
	d.SetAvailable(false)
	if _, ok := d.Acquire(); ok {
		t.Error("Acquire succeeded while unavailable")
	}
	d.SetAvailable(true)
	if _, ok := d.Acquire(); !ok {
		t.Error("Acquire failed after becoming available")
	}
}

func TestMemoryDisplayClose(t *testing.T) {
	d, _ := NewMemoryDisplay(DefaultDisplayConfig())
	presented := d.Presented()
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	select {
	case <-presented:
	default:
		t.Error("Close did not wake Presented waiters")
	}
	if _, ok := d.Acquire(); ok {
		t.Error("Acquire succeeded after Close")
	}
	if err := d.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
}

func TestNewMemoryDisplayRejectsBadConfig(t *testing.T) {
	c := DefaultDisplayConfig()
	c.Height = -1
	if _, err := NewMemoryDisplay(c); err == nil {
		t.Error("bad config accepted")
	}
}

func TestMemoryDisplayVsyncPacesRelease(t *testing.T) {
	c := DefaultDisplayConfig()
	c.RefreshRate = 100
	start := time.Now()
	d, err := NewMemoryDisplay(c)
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()
	for i := 0; i < 5; i++ {
		if _, ok := d.Acquire(); !ok {
			t.Fatalf("Acquire %d failed", i)
		}
		d.Release()
	}
	// Each Release lands on its own vertical blank after the display opened.
	if el := time.Since(start); el < 50*time.Millisecond {
		t.Errorf("5 releases at 100Hz took %v, want >= 50ms", el)
	}
	if d.Frames() != 5 {
		t.Errorf("Frames = %d, want 5", d.Frames())
	}
}

func TestMemoryDisplayWithoutVsyncDoesNotWait(t *testing.T) {
	c := DefaultDisplayConfig()
	c.Vsync = false
	c.RefreshRate = 1
	d, _ := NewMemoryDisplay(c)
	defer d.Close()
	start := time.Now()
	for i := 0; i < 5; i++ {
		d.Acquire()
		d.Release()
	}
	if el := time.Since(start); el > 500*time.Millisecond {
		t.Errorf("releases without vsync took %v", el)
	}
}

func TestMemoryDisplayCloseUnblocksVsync(t *testing.T) {
	c := DefaultDisplayConfig()
	c.RefreshRate = 1
	d, _ := NewMemoryDisplay(c)
	if _, ok := d.Acquire(); !ok {
		t.Fatal("Acquire failed")
	}
	done := make(chan struct{})
	go func() {
		d.Release()
		close(done)
	}()
	time.Sleep(10 * time.Millisecond)
	d.Close()
	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("Release still waiting for vsync after Close")
	}
	if d.Frames() != 0 {
		t.Errorf("Frames = %d, want 0 after Close", d.Frames())
	}
}
