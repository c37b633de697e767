package overlay

// WalkerState is the vertical state of the walker.
type WalkerState int

const (
	Idle WalkerState = iota
	Airborne
)

func (s WalkerState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Airborne:
		return "airborne"
	}
	return "unknown"
}

// Physics holds the walker's fixed-step motion constants. One step is one
// rendered frame.
type Physics struct {
	JumpEvery    int // ticks between jump triggers; 0 disables jumping
	JumpVelocity int // initial vertical velocity, negative is up
	Gravity      int // added to the velocity every airborne tick
	WalkStep     int // horizontal advance per tick
	WrapMargin   int // how far past either edge the walker travels before wrapping
}

// DefaultPhysics returns the walk-and-jump constants.
func DefaultPhysics() Physics {
	return Physics{JumpEvery: 30, JumpVelocity: -20, Gravity: 2, WalkStep: 4, WrapMargin: 40}
}

// Walker is the animated sprite: a horizontal walk that wraps around the
// canvas and a periodic jump under constant gravity.
type Walker struct {
	Physics Physics

	// Scale and Lift control drawing: the sprite is Scale times its source
	// size, centred on (X, Bottom-Lift).
	Scale int
	Lift  int

	Idle, Jump Bitmap

	x, bottom, vy int
	ground        int
	width         int
	state         WalkerState
	tick          uint64
}

// NewWalker creates a walker standing at x on the ground line, on a canvas
// width pixels wide.
func NewWalker(p Physics, x, ground, width int) *Walker {
	a := DefaultAtlas()
	return &Walker{
		Physics: p,
		Scale:   5,
		Lift:    50,
		Idle:    a.Bitmap(AssetHeroIdle),
		Jump:    a.Bitmap(AssetHeroJump),
		x:       x,
		bottom:  ground,
		ground:  ground,
		width:   width,
	}
}

// X returns the horizontal centre of the walker.
func (w *Walker) X() int { return w.x }

// Bottom returns the vertical position of the walker's feet.
func (w *Walker) Bottom() int { return w.bottom }

// Velocity returns the current vertical velocity.
func (w *Walker) Velocity() int { return w.vy }

// State returns Idle or Airborne.
func (w *Walker) State() WalkerState { return w.state }

// Tick returns the number of steps taken.
func (w *Walker) Tick() uint64 { return w.tick }

// Ground returns the ground line the walker lands on.
func (w *Walker) Ground() int { return w.ground }

// Step advances the walker by one tick.
func (w *Walker) Step() {
	p := &w.Physics
	if w.state == Idle && p.JumpEvery > 0 && w.tick%uint64(p.JumpEvery) == 0 {
		w.state = Airborne
		w.vy = p.JumpVelocity
	}

	w.x += p.WalkStep
	if w.x > w.width+p.WrapMargin {
		w.x = -p.WrapMargin
	}

	if w.state == Airborne {
		w.bottom += w.vy
		w.vy += p.Gravity
		if w.bottom >= w.ground {
			w.bottom = w.ground
			w.vy = 0
			w.state = Idle
		}
	}
	w.tick++
}

// Pose returns the bitmap for the current state.
func (w *Walker) Pose() Bitmap {
	if w.state == Airborne {
		return w.Jump
	}
	return w.Idle
}

// Bounds returns the on-canvas rectangle of the current pose.
func (w *Walker) Bounds() Rect {
	pose := w.Pose()
	if pose == nil {
		return Rect{}
	}
	pw, ph := pose.Size()
	sw, sh := pw*w.Scale, ph*w.Scale
	return Rect{X: w.x - sw/2, Y: w.bottom - w.Lift - sh/2, Width: sw, Height: sh}
}

// Draw blits the current pose.
func (w *Walker) Draw(c *Canvas) {
	pose := w.Pose()
	if pose == nil {
		return
	}
	r := w.Bounds()
	Blit(c, pose, r.X, r.Y, w.Scale, w.Scale)
}
