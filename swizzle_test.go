package overlay

import "testing"

func TestPixelOffsetOrigin(t *testing.T) {
	if got := PixelOffset(0, 0, DefaultWidth); got != 0 {
		t.Errorf("PixelOffset(0, 0) = %d, want 0", got)
	}
}

func TestPixelOffsetWithinGOB(t *testing.T) {
	// Inside the first GOB: x%8 advances by one element, y%2 by eight.
	cases := []struct {
		x, y, want int
	}{
		{1, 0, 1},
		{7, 0, 7},
		{0, 1, 8},
		{8, 0, 16},
		{0, 2, 32},
		{16, 0, 128},
		{0, 8, 256},
		{0, 16, 512},
		{32, 0, 8 * 512},
	}
	for _, c := range cases {
		if got := PixelOffset(c.x, c.y, DefaultWidth); got != c.want {
			t.Errorf("PixelOffset(%d, %d) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestPixelOffsetBijectionAligned(t *testing.T) {
	for _, size := range []struct{ w, h int }{{DefaultWidth, 768}, {64, 128}, {32, 256}} {
		n := size.w * size.h
		seen := make([]bool, n)
		for y := 0; y < size.h; y++ {
			for x := 0; x < size.w; x++ {
				off := PixelOffset(x, y, size.w)
				if off < 0 || off >= n {
					t.Fatalf("%dx%d: PixelOffset(%d, %d) = %d out of [0, %d)", size.w, size.h, x, y, off, n)
				}
				if seen[off] {
					t.Fatalf("%dx%d: PixelOffset(%d, %d) = %d already used", size.w, size.h, x, y, off)
				}
				seen[off] = true
			}
		}
	}
}

func TestPixelOffsetInjectiveDefaultCanvas(t *testing.T) {
	n := BufferLen(DefaultWidth, DefaultHeight)
	seen := make([]bool, n)
	for y := 0; y < DefaultHeight; y++ {
		for x := 0; x < DefaultWidth; x++ {
			off := PixelOffset(x, y, DefaultWidth)
			if off >= n {
				t.Fatalf("PixelOffset(%d, %d) = %d beyond buffer length %d", x, y, off, n)
			}
			if seen[off] {
				t.Fatalf("PixelOffset(%d, %d) = %d collides", x, y, off)
			}
			seen[off] = true
		}
	}
}

func TestAlignedHeight(t *testing.T) {
	cases := map[int]int{0: 0, 1: 128, 128: 128, 129: 256, 720: 768}
	for in, want := range cases {
		if got := AlignedHeight(in); got != want {
			t.Errorf("AlignedHeight(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestDetile(t *testing.T) {
	const w, h = 64, 128
	buf := make([]uint16, BufferLen(w, h))
	buf[PixelOffset(5, 9, w)] = uint16(Pack(White))

	img := Detile(buf, w, h)
	if got := img.NRGBAAt(5, 9); got != White.NRGBA() {
		t.Errorf("pixel (5, 9) = %+v, want white", got)
	}
	if got := img.NRGBAAt(6, 9); got.A != 0 {
		t.Errorf("pixel (6, 9) = %+v, want transparent", got)
	}
}

func BenchmarkPixelOffset(b *testing.B) {
	sum := 0
	for i := 0; i < b.N; i++ {
		sum += PixelOffset(i%DefaultWidth, (i/DefaultWidth)%DefaultHeight, DefaultWidth)
	}
	_ = sum
}
