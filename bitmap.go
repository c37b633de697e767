package overlay

// Bitmap is a read-only source image for Blit. At reports the colour of the
// source pixel at (col, row) and whether it is drawn at all.
type Bitmap interface {
	Size() (w, h int)
	At(col, row int) (Color, bool)
}

// KeyRGB565 is the transparency key of the compiled-in RGB565 artwork.
const KeyRGB565 uint16 = 0x000E

// Image16 is a row-major image of packed 16-bit pixels with one reserved value
// that is never drawn.
type Image16 struct {
	Width, Height int
	Pix           []uint16
	Key           uint16
	Format        PixelFormat
}

// Size implements Bitmap.
func (m *Image16) Size() (w, h int) { return m.Width, m.Height }

// At implements Bitmap.
func (m *Image16) At(col, row int) (Color, bool) {
	i := row*m.Width + col
	if col < 0 || row < 0 || col >= m.Width || row >= m.Height || i >= len(m.Pix) {
		return Color{}, false
	}
	v := m.Pix[i]
	if v == m.Key {
		return Color{}, false
	}
	if m.Format == PixelFormatRGB565 {
		return FromRGB565(v), true
	}
	return Unpack(Packed(v)), true
}

// Glyph is a 1-bit glyph, one uint16 per row with the most significant bit as
// the leftmost column.
type Glyph [GlyphHeight]uint16

// Set reports whether the glyph pixel at (col, row) is inked.
func (g *Glyph) Set(col, row int) bool {
	if col < 0 || col >= 16 || row < 0 || row >= GlyphHeight {
		return false
	}
	return g[row]&(1<<(15-col)) != 0
}

// Ink pairs a glyph with the colour its set bits are drawn in.
type Ink struct {
	Glyph *Glyph
	Color Color
}

// Size implements Bitmap.
func (k Ink) Size() (w, h int) { return GlyphWidth, GlyphHeight }

// At implements Bitmap. Unset bits are transparent.
func (k Ink) At(col, row int) (Color, bool) {
	if k.Glyph == nil || !k.Glyph.Set(col, row) {
		return Color{}, false
	}
	return k.Color, true
}

// Blit draws src with its top-left corner at (x, y), each source pixel
// becoming a scaleX by scaleY block. Transparent source pixels leave the
// destination untouched and drawn blocks always overwrite, so edges stay
// crisp over any background.
func Blit(c *Canvas, src Bitmap, x, y, scaleX, scaleY int) {
	if c == nil || src == nil || !c.Bound() || scaleX <= 0 || scaleY <= 0 {
		return
	}
	w, h := src.Size()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			px, ok := src.At(col, row)
			if !ok {
				continue
			}
			c.FillRect(x+col*scaleX, y+row*scaleY, scaleX, scaleY, px, BlendOverwrite)
		}
	}
}
