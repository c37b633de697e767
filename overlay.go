package overlay

import "math"

// Default canvas dimensions of the status overlay layer.
const (
	DefaultWidth  = 448
	DefaultHeight = 720
)

// Rect is an axis-aligned integer rectangle. The origin is the top-left
// corner with Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersect returns the overlap of r and other. The result is Empty when they
// do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(addClamped(r.X, r.Width), addClamped(other.X, other.Width))
	y1 := min(addClamped(r.Y, r.Height), addClamped(other.Y, other.Height))
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: subClamped(x1, x0), Height: subClamped(y1, y0)}
}

// addClamped returns a+b saturated to the int range.
func addClamped(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt
	case b < 0 && a < math.MinInt-b:
		return math.MinInt
	}
	return a + b
}

// subClamped returns hi-lo for hi > lo, saturated to math.MaxInt.
func subClamped(hi, lo int) int {
	if lo < 0 && hi > math.MaxInt+lo {
		return math.MaxInt
	}
	return hi - lo
}

// BlendMode selects how a drawing call combines with the pixel already in the
// buffer.
type BlendMode uint8

const (
	BlendOverwrite BlendMode = iota // store the colour as-is
	BlendOver                       // mix with the stored pixel using the incoming alpha
)

// String returns the mode name.
func (m BlendMode) String() string {
	switch m {
	case BlendOverwrite:
		return "overwrite"
	case BlendOver:
		return "over"
	default:
		return "unknown"
	}
}

// PixelFormat identifies the encoding of 16-bit pixel data.
type PixelFormat uint8

const (
	PixelFormatRGBA4444 PixelFormat = iota // 4 bits per channel, R in the low nibble
	PixelFormatRGB565                      // 5/6/5 opaque colour, R in the high bits
)

// String returns the format name.
func (f PixelFormat) String() string {
	switch f {
	case PixelFormatRGBA4444:
		return "RGBA4444"
	case PixelFormatRGB565:
		return "RGB565"
	default:
		return "unknown"
	}
}
