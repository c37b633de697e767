package overlay

import "testing"

func TestDecodeRune(t *testing.T) {
	tests := []struct {
		in   string
		r    rune
		size int
	}{
		{"", 0, 0},
		{"A", 'A', 1},
		{"\xE6\xAD\xA3", 0x6B63, 3},
		{"é", 0xE9, 2},
		{"\xF0\x9F\x98\x80", 0x1F600, 4},
		{"\xE6A", 0, 1},
		{"\x80", 0, 1},
		{"\xE6\xAD", 0, 1},
	}
	for _, tt := range tests {
		r, size := DecodeRune(tt.in)
		if r != tt.r || size != tt.size {
			t.Errorf("DecodeRune(%q) = (%#x, %d), want (%#x, %d)", tt.in, r, size, tt.r, tt.size)
		}
	}
}

func TestCountRunesResyncs(t *testing.T) {
	// Lead byte, then ASCII: one bad cell plus "A".
	if got := CountRunes("\xE6A"); got != 2 {
		t.Errorf("CountRunes = %d, want 2", got)
	}
	if got := CountRunes("正在备份"); got != 4 {
		t.Errorf("CountRunes = %d, want 4", got)
	}
}

func TestStatusFontCoversCaptions(t *testing.T) {
	for _, r := range "正在备份上传成功失败" {
		if StatusFont.Glyph(r) == nil {
			t.Errorf("StatusFont missing %q", r)
		}
	}
	if StatusFont.Len() != 10 {
		t.Errorf("Len = %d, want 10", StatusFont.Len())
	}
	if StatusFont.Glyph('A') != nil {
		t.Error("unexpected glyph for 'A'")
	}
}

func TestTextWidth(t *testing.T) {
	tests := []struct {
		s       string
		scaleX  int
		spacing int
		want    int
	}{
		{"", 5, 1, 0},
		{"正在备份", 1, 1, 67},
		{"正在备份", 5, 1, 4*16*5 + 3*5},
		{"正", 3, 2, 48},
	}
	for _, tt := range tests {
		if got := StatusFont.TextWidth(tt.s, tt.scaleX, tt.spacing); got != tt.want {
			t.Errorf("TextWidth(%q, %d, %d) = %d, want %d", tt.s, tt.scaleX, tt.spacing, got, tt.want)
		}
	}
}

func TestDrawTextUnknownLeavesBlankCell(t *testing.T) {
	c, buf := newBoundCanvas(t, 64, 128)
	st := TextStyle{ScaleX: 1, ScaleY: 1, Spacing: 1, Color: White}
	next := StatusFont.DrawText(c, "AB", 0, 0, st)
	if next != 2*(GlyphWidth+1) {
		t.Errorf("next x = %d, want %d", next, 2*(GlyphWidth+1))
	}
	if n := countNonZero(buf); n != 0 {
		t.Errorf("%d pixels written for glyphs the font lacks", n)
	}
}

func TestDrawTextMatchesGlyphBits(t *testing.T) {
	c, _ := newBoundCanvas(t, 64, 128)
	st := TextStyle{ScaleX: 1, ScaleY: 1, Color: Brick}
	StatusFont.DrawText(c, "正", 0, 0, st)
	g := StatusFont.Glyph('正')
	for row := 0; row < GlyphHeight; row++ {
		for col := 0; col < GlyphWidth; col++ {
			got, _ := c.Pixel(col, row)
			want := Transparent
			if g.Set(col, row) {
				want = Brick
			}
			if got != want {
				t.Fatalf("pixel (%d, %d) = %+v, want %+v", col, row, got, want)
			}
		}
	}
}

func TestDrawTextSecondGlyphOffset(t *testing.T) {
	c, _ := newBoundCanvas(t, 64, 128)
	st := TextStyle{ScaleX: 1, ScaleY: 1, Spacing: 1, Color: White}
	StatusFont.DrawText(c, "\xE6A正", 0, 0, st)
	// Two blank cells precede the glyph.
	for x := 0; x < 2*(GlyphWidth+1); x++ {
		for y := 0; y < GlyphHeight; y++ {
			if p, _ := c.Pixel(x, y); p != Transparent {
				t.Fatalf("pixel (%d, %d) drawn in a blank cell", x, y)
			}
		}
	}
}

func TestDrawTextBoldLayersFillOverOutline(t *testing.T) {
	c, _ := newBoundCanvas(t, 128, 128)
	st := TextStyle{ScaleX: 1, ScaleY: 1, Color: Brick}
	StatusFont.DrawTextBold(c, "正", 8, 8, st, White)
	g := StatusFont.Glyph('正')
	var fill, outline int
	for row := 0; row < GlyphHeight; row++ {
		for col := 0; col < GlyphWidth; col++ {
			if !g.Set(col, row) {
				continue
			}
			// The fill grid always covers the glyph's own pixels.
			if p, _ := c.Pixel(8+col, 8+row); p != Brick {
				t.Fatalf("glyph pixel (%d, %d) = %+v, want brick", col, row, p)
			}
		}
	}
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			switch p, _ := c.Pixel(x, y); p {
			case Brick:
				fill++
			case White:
				outline++
			}
		}
	}
	if fill == 0 || outline == 0 {
		t.Errorf("fill = %d, outline = %d; want both drawn", fill, outline)
	}
}

func TestDrawTextUnboundNoop(t *testing.T) {
	c := NewCanvas(64, 128)
	if got := StatusFont.DrawText(c, "正", 3, 0, TextStyle{ScaleX: 1, ScaleY: 1}); got != 3 {
		t.Errorf("DrawText on unbound canvas = %d, want 3", got)
	}
	StatusFont.DrawTextBold(c, "正", 0, 0, TextStyle{ScaleX: 1, ScaleY: 1}, White)
	StatusFont.DrawTextBold(nil, "正", 0, 0, TextStyle{ScaleX: 1, ScaleY: 1}, White)
}
