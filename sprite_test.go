package overlay

import "testing"

func TestWalkerIdleStaysOnGround(t *testing.T) {
	p := DefaultPhysics()
	p.JumpEvery = 0
	w := NewWalker(p, 30, 636, 448)
	for i := 0; i < 1000; i++ {
		w.Step()
		if w.Bottom() != 636 || w.State() != Idle {
			t.Fatalf("tick %d: bottom = %d state = %v, want 636 idle", i, w.Bottom(), w.State())
		}
	}
}

func TestWalkerJumpLandsAfter21Ticks(t *testing.T) {
	w := NewWalker(DefaultPhysics(), 30, 636, 448)
	w.Step()
	if w.State() != Airborne || w.Bottom() != 616 || w.Velocity() != -18 {
		t.Fatalf("after first tick: state %v bottom %d vy %d", w.State(), w.Bottom(), w.Velocity())
	}
	peak := w.Bottom()
	for i := 2; i <= 20; i++ {
		w.Step()
		peak = min(peak, w.Bottom())
		if w.State() != Airborne {
			t.Fatalf("landed early at tick %d", i)
		}
	}
	if w.Bottom() != 616 {
		t.Errorf("bottom after 20 ticks = %d, want 616", w.Bottom())
	}
	if peak != 636-110 {
		t.Errorf("peak = %d, want %d", peak, 636-110)
	}
	w.Step()
	if w.State() != Idle || w.Bottom() != 636 || w.Velocity() != 0 {
		t.Errorf("after 21 ticks: state %v bottom %d vy %d", w.State(), w.Bottom(), w.Velocity())
	}
}

func TestWalkerJumpIsPeriodic(t *testing.T) {
	w := NewWalker(DefaultPhysics(), 30, 636, 448)
	var takeoffs []uint64
	for i := 0; i < 100; i++ {
		before := w.State()
		tick := w.Tick()
		w.Step()
		if before == Idle && w.State() == Airborne {
			takeoffs = append(takeoffs, tick)
		}
	}
	want := []uint64{0, 30, 60, 90}
	if len(takeoffs) != len(want) {
		t.Fatalf("takeoffs = %v, want %v", takeoffs, want)
	}
	for i := range want {
		if takeoffs[i] != want[i] {
			t.Errorf("takeoff %d at tick %d, want %d", i, takeoffs[i], want[i])
		}
	}
}

func TestWalkerWraps(t *testing.T) {
	w := NewWalker(DefaultPhysics(), 30, 636, 448)
	for i := 0; i < 114; i++ {
		w.Step()
	}
	if w.X() != 486 {
		t.Fatalf("x after 114 ticks = %d, want 486", w.X())
	}
	w.Step()
	if w.X() != -40 {
		t.Errorf("x after wrap = %d, want -40", w.X())
	}
}

func TestWalkerPoseAndBounds(t *testing.T) {
	w := NewWalker(DefaultPhysics(), 30, 636, 448)
	if w.Pose() != w.Idle {
		t.Error("idle walker should use the idle pose")
	}
	r := w.Bounds()
	want := Rect{X: 30 - 32, Y: 636 - 50 - 40, Width: 65, Height: 80}
	if r != want {
		t.Errorf("Bounds = %+v, want %+v", r, want)
	}
	w.Step()
	if w.Pose() != w.Jump {
		t.Error("airborne walker should use the jump pose")
	}
}

func TestWalkerDraw(t *testing.T) {
	c, buf := newBoundCanvas(t, 448, 768)
	w := NewWalker(DefaultPhysics(), 200, 636, 448)
	w.Draw(c)
	if countNonZero(buf) == 0 {
		t.Fatal("walker drew nothing")
	}
	r := w.Bounds()
	for y := 0; y < 720; y++ {
		for x := 0; x < 448; x++ {
			if p, _ := c.Pixel(x, y); p != Transparent && !(x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height) {
				t.Fatalf("pixel (%d, %d) drawn outside %+v", x, y, r)
			}
		}
	}
}

func TestWalkerStateString(t *testing.T) {
	if Idle.String() != "idle" || Airborne.String() != "airborne" || WalkerState(9).String() != "unknown" {
		t.Error("unexpected WalkerState strings")
	}
}
