package overlay

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// IntTween animates an int field. Time is measured in frame ticks: call
// Update(1) once per frame. The value is rounded to the nearest pixel when
// written back.
//
// There is no global animation manager; owners call Update themselves.
type IntTween struct {
	tween *gween.Tween
	field *int
	Done  bool
}

// Update advances the tween by dt ticks and writes the value to the target
// field.
func (g *IntTween) Update(dt float32) {
	if g == nil || g.Done {
		return
	}
	val, finished := g.tween.Update(dt)
	*g.field = int(math.Round(float64(val)))
	g.Done = finished
}

// TweenOffset creates an IntTween that sets *field to from and animates it
// to to over ticks frames.
func TweenOffset(field *int, from, to, ticks int, fn ease.TweenFunc) *IntTween {
	g := &IntTween{
		tween: gween.New(float32(from), float32(to), float32(ticks), fn),
		field: field,
	}
	*field = from
	if ticks <= 0 {
		*field = to
		g.Done = true
	}
	return g
}
