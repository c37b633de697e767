package overlay

import "image/color"

// Color is a straight-alpha colour with four 4-bit channels. Each channel is
// in [0, 15]; Pack masks anything wider.
type Color struct {
	R, G, B, A uint8
}

// Predefined colours used by the status scene.
var (
	Transparent = Color{}
	White       = Color{R: 15, G: 15, B: 15, A: 15}
	Black       = Color{A: 15}
	SkyBlue     = Color{R: 3, G: 6, B: 12, A: 8}
	Brick       = Color{R: 14, G: 8, B: 1, A: 15}
	Magenta     = Color{R: 15, B: 15, A: 15}
)

// Packed is the 16-bit in-buffer encoding of a Color: R in bits 0-3, G in
// 4-7, B in 8-11 and A in 12-15.
type Packed uint16

// Pack encodes c, masking every channel to 4 bits.
func Pack(c Color) Packed {
	return Packed(uint16(c.R&0xF) | uint16(c.G&0xF)<<4 | uint16(c.B&0xF)<<8 | uint16(c.A&0xF)<<12)
}

// Unpack decodes a packed pixel. Unpack(Pack(c)) == c for every valid c and
// Pack(Unpack(p)) == p for every p.
func Unpack(p Packed) Color {
	return Color{
		R: uint8(p) & 0xF,
		G: uint8(p>>4) & 0xF,
		B: uint8(p>>8) & 0xF,
		A: uint8(p>>12) & 0xF,
	}
}

// BlendChannel mixes one channel: (dst*alpha + src*(15-alpha)) / 15, divided
// in floating point and truncated toward zero. The truncation is part of the
// look of the overlay and must not become rounding.
func BlendChannel(src, dst, alpha uint8) uint8 {
	alpha &= 0xF
	n := uint16(dst&0xF)*uint16(alpha) + uint16(src&0xF)*uint16(0xF-alpha)
	return uint8(float32(n) / float32(0xF))
}

// ComposeAlpha sums two alphas, saturating at 15.
func ComposeAlpha(srcA, dstA uint8) uint8 {
	sum := uint16(srcA&0xF) + uint16(dstA&0xF)
	if sum > 0xF {
		return 0xF
	}
	return uint8(sum)
}

// Blend composes dst (the incoming colour) over src (the stored pixel) using
// dst's alpha for every colour channel.
func Blend(src, dst Color) Color {
	return Color{
		R: BlendChannel(src.R, dst.R, dst.A),
		G: BlendChannel(src.G, dst.G, dst.A),
		B: BlendChannel(src.B, dst.B, dst.A),
		A: ComposeAlpha(src.A, dst.A),
	}
}

// FromRGB565 converts an opaque RGB565 value by dropping the low bits of each
// channel.
func FromRGB565(v uint16) Color {
	return Color{
		R: uint8((v>>11)&0x1F) >> 1,
		G: uint8((v>>5)&0x3F) >> 2,
		B: uint8(v&0x1F) >> 1,
		A: 0xF,
	}
}

// NRGBA expands c to 8 bits per channel without premultiplying.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R & 0xF * 0x11, G: c.G & 0xF * 0x11, B: c.B & 0xF * 0x11, A: c.A & 0xF * 0x11}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// ColorModel converts arbitrary colours to Color by truncating each straight
// alpha channel to its top 4 bits.
var ColorModel color.Model = color.ModelFunc(colorModel)

func colorModel(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R >> 4, G: n.G >> 4, B: n.B >> 4, A: n.A >> 4}
}
