package overlay

// Glyph cell size of the caption font.
const (
	GlyphWidth  = 16
	GlyphHeight = 15
)

// Font maps code points to 1-bit glyphs. It covers only the characters the
// status captions need; anything else lays out as a blank cell.
type Font struct {
	glyphs map[rune]*Glyph
}

// NewFont creates an empty font.
func NewFont() *Font {
	return &Font{glyphs: make(map[rune]*Glyph)}
}

// StatusFont holds the compiled-in caption glyphs (正在备份上传成功失败).
var StatusFont = newStatusFont()

func newStatusFont() *Font {
	f := NewFont()
	for r, g := range statusGlyphs {
		f.Register(r, g)
	}
	return f
}

// Register adds or replaces the glyph for r.
func (f *Font) Register(r rune, g Glyph) {
	f.glyphs[r] = &g
}

// Glyph returns the glyph for r, or nil if the font has none.
func (f *Font) Glyph(r rune) *Glyph {
	return f.glyphs[r]
}

// Len returns the number of glyphs in the font.
func (f *Font) Len() int {
	return len(f.glyphs)
}

// DecodeRune decodes the first UTF-8 sequence in s. Well-formed 1 to 4 byte
// sequences return their code point and length. A lead byte followed by a
// byte that is not a continuation, or a byte that cannot start a sequence,
// yields code point 0 with size 1 so the caller resynchronises on the next
// byte. An empty string yields (0, 0).
func DecodeRune(s string) (r rune, size int) {
	if len(s) == 0 {
		return 0, 0
	}
	c := s[0]
	cont := func(i int) (byte, bool) {
		if i >= len(s) || s[i]&0xC0 != 0x80 {
			return 0, false
		}
		return s[i] & 0x3F, true
	}
	switch {
	case c < 0x80:
		return rune(c), 1
	case c>>5 == 0x6:
		c1, ok := cont(1)
		if !ok {
			return 0, 1
		}
		return rune(c&0x1F)<<6 | rune(c1), 2
	case c>>4 == 0xE:
		c1, ok1 := cont(1)
		c2, ok2 := cont(2)
		if !ok1 || !ok2 {
			return 0, 1
		}
		return rune(c&0x0F)<<12 | rune(c1)<<6 | rune(c2), 3
	case c>>3 == 0x1E:
		c1, ok1 := cont(1)
		c2, ok2 := cont(2)
		c3, ok3 := cont(3)
		if !ok1 || !ok2 || !ok3 {
			return 0, 1
		}
		return rune(c&0x07)<<18 | rune(c1)<<12 | rune(c2)<<6 | rune(c3), 4
	}
	return 0, 1
}

// CountRunes returns the number of cells s lays out to: one per decoded code
// point, malformed bytes included.
func CountRunes(s string) int {
	n := 0
	for i := 0; i < len(s); {
		_, size := DecodeRune(s[i:])
		i += size
		n++
	}
	return n
}

// TextStyle controls caption layout. Cells are GlyphWidth+Spacing wide before
// scaling; ScaleX applies to both glyph and spacing.
type TextStyle struct {
	ScaleX, ScaleY int
	Spacing        int
	Color          Color
}

func (st TextStyle) advance() int {
	return (GlyphWidth + st.Spacing) * st.ScaleX
}

// TextWidth returns the laid-out width of s:
// count*GlyphWidth*scaleX + (count-1)*spacing*scaleX.
func (f *Font) TextWidth(s string, scaleX, spacing int) int {
	n := CountRunes(s)
	if n == 0 {
		return 0
	}
	return n*GlyphWidth*scaleX + (n-1)*spacing*scaleX
}

// DrawText draws s on one line starting at (x, y) and returns the x of the
// next cell. Code points without a glyph, including the 0 produced for
// malformed bytes, advance one blank cell.
func (f *Font) DrawText(c *Canvas, s string, x, y int, st TextStyle) int {
	if c == nil || !c.Bound() {
		return x
	}
	for i := 0; i < len(s); {
		r, size := DecodeRune(s[i:])
		i += size
		if g := f.Glyph(r); g != nil {
			Blit(c, Ink{Glyph: g, Color: st.Color}, x, y, st.ScaleX, st.ScaleY)
		}
		x += st.advance()
	}
	return x
}

// outlineOffsets is the 8-neighbourhood drawn in the outline colour.
var outlineOffsets = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// boldSpread is the side of the square of fill offsets that thickens strokes.
const boldSpread = 4

// DrawTextBold draws s with a one-pixel outline: once per neighbouring offset
// in outline, then a boldSpread x boldSpread grid of offsets in st.Color.
func (f *Font) DrawTextBold(c *Canvas, s string, x, y int, st TextStyle, outline Color) {
	if c == nil || !c.Bound() {
		return
	}
	ost := st
	ost.Color = outline
	for _, off := range outlineOffsets {
		f.DrawText(c, s, x+off[0], y+off[1], ost)
	}
	for dy := 0; dy < boldSpread; dy++ {
		for dx := 0; dx < boldSpread; dx++ {
			f.DrawText(c, s, x+dx, y+dy, st)
		}
	}
}
