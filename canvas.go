package overlay

import (
	"image"
	"image/color"
)

// Canvas draws into a block-linear RGBA4444 buffer of fixed size. The buffer
// is only reachable between Bind and Unbind; every drawing call is a silent
// no-op while nothing is bound, and coordinates outside [0,width)x[0,height)
// are clipped.
type Canvas struct {
	buf    []uint16
	width  int
	height int
}

// NewCanvas creates an unbound canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{width: width, height: height}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// Bind attaches buf as the drawing target. A buffer shorter than
// BufferLen(width, height) is rejected and the canvas stays unbound.
func (c *Canvas) Bind(buf []uint16) bool {
	if len(buf) < BufferLen(c.width, c.height) {
		c.buf = nil
		return false
	}
	c.buf = buf
	return true
}

// Unbind detaches the current buffer. The canvas must not touch it afterwards.
func (c *Canvas) Unbind() {
	c.buf = nil
}

// Bound reports whether a buffer is attached.
func (c *Canvas) Bound() bool {
	return c.buf != nil
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// SetPixel stores col at (x, y), replacing whatever was there.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if c.buf == nil || !c.inside(x, y) {
		return
	}
	c.buf[PixelOffset(x, y, c.width)] = uint16(Pack(col))
}

// BlendPixel mixes col over the stored pixel using col's alpha.
func (c *Canvas) BlendPixel(x, y int, col Color) {
	if c.buf == nil || !c.inside(x, y) {
		return
	}
	off := PixelOffset(x, y, c.width)
	stored := Unpack(Packed(c.buf[off]))
	c.buf[off] = uint16(Pack(Blend(stored, col)))
}

// Pixel returns the stored colour at (x, y). ok is false when nothing is bound
// or the point is outside the canvas.
func (c *Canvas) Pixel(x, y int) (col Color, ok bool) {
	if c.buf == nil || !c.inside(x, y) {
		return Color{}, false
	}
	return Unpack(Packed(c.buf[PixelOffset(x, y, c.width)])), true
}

// FillRect paints the part of the rectangle that lies on the canvas. A
// rectangle entirely off-canvas, or with a non-positive clipped size, writes
// nothing.
func (c *Canvas) FillRect(x, y, w, h int, col Color, mode BlendMode) {
	if c.buf == nil {
		return
	}
	r := Rect{X: x, Y: y, Width: w, Height: h}.Intersect(Rect{Width: c.width, Height: c.height})
	if r.Empty() {
		return
	}
	if mode == BlendOverwrite {
		p := uint16(Pack(col))
		for yi := r.Y; yi < r.Y+r.Height; yi++ {
			for xi := r.X; xi < r.X+r.Width; xi++ {
				c.buf[PixelOffset(xi, yi, c.width)] = p
			}
		}
		return
	}
	for yi := r.Y; yi < r.Y+r.Height; yi++ {
		for xi := r.X; xi < r.X+r.Width; xi++ {
			c.BlendPixel(xi, yi, col)
		}
	}
}

// FillScreen is FillRect over the whole canvas.
func (c *Canvas) FillScreen(col Color, mode BlendMode) {
	c.FillRect(0, 0, c.width, c.height, col, mode)
}

// --- image.Image ---

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model { return ColorModel }

// At implements image.Image. Unbound or off-canvas reads are transparent.
func (c *Canvas) At(x, y int) color.Color {
	col, _ := c.Pixel(x, y)
	return col
}
