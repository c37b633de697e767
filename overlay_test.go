package overlay

import (
	"math"
	"testing"
)

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: -5, Width: 10, Height: 10}
	got := a.Intersect(b)
	want := Rect{X: 5, Y: 0, Width: 5, Height: 5}
	if got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}
}

func TestRectIntersectHugeExtent(t *testing.T) {
	canvas := Rect{Width: 64, Height: 128}
	got := Rect{X: 1, Y: 0, Width: math.MaxInt, Height: math.MaxInt}.Intersect(canvas)
	want := Rect{X: 1, Y: 0, Width: 63, Height: 128}
	if got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}
}

func TestRectIntersectDisjoint(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 10, Y: 0, Width: 5, Height: 5}
	if got := a.Intersect(b); !got.Empty() {
		t.Errorf("Intersect of adjacent rects = %+v, want empty", got)
	}
}

func TestRectEmpty(t *testing.T) {
	if !(Rect{Width: 0, Height: 4}).Empty() {
		t.Error("zero-width rect should be empty")
	}
	if !(Rect{Width: 3, Height: -1}).Empty() {
		t.Error("negative-height rect should be empty")
	}
	if (Rect{Width: 1, Height: 1}).Empty() {
		t.Error("1x1 rect should not be empty")
	}
}

func TestBlendModeString(t *testing.T) {
	if BlendOverwrite.String() != "overwrite" || BlendOver.String() != "over" {
		t.Errorf("unexpected names %q %q", BlendOverwrite, BlendOver)
	}
	if BlendMode(9).String() != "unknown" {
		t.Errorf("BlendMode(9) = %q, want unknown", BlendMode(9))
	}
}
