package overlay

import "time"

// fpsWindow is how often FPSCounter refreshes its rate.
const fpsWindow = 500 * time.Millisecond

// FPSCounter measures presented frames per second over a short window.
type FPSCounter struct {
	start  time.Time
	frames int
	rate   float64
}

// Frame records one presented frame at now and returns the current rate.
// The rate is refreshed about every half second.
func (f *FPSCounter) Frame(now time.Time) float64 {
	if f.start.IsZero() {
		f.start = now
	}
	f.frames++
	if el := now.Sub(f.start); el >= fpsWindow {
		f.rate = float64(f.frames) / el.Seconds()
		f.frames = 0
		f.start = now
	}
	return f.rate
}

// Rate returns the last computed rate.
func (f *FPSCounter) Rate() float64 { return f.rate }
