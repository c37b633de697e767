// Package ansi renders frames as truecolor half-block text for terminals.
package ansi

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
)

const (
	ESC   = "\x1b"
	CSI   = ESC + "["
	Reset = CSI + "0m"

	// HalfBlock draws the upper pixel in the foreground colour and the lower
	// one in the background colour.
	HalfBlock = '▀'
)

// MoveTo positions the cursor at row, col (1-based).
func MoveTo(row, col int) string {
	return fmt.Sprintf("%s%d;%dH", CSI, row, col)
}

// ClearScreen clears the entire screen.
func ClearScreen() string {
	return CSI + "2J"
}

// HideCursor hides the terminal cursor.
func HideCursor() string {
	return CSI + "?25l"
}

// ShowCursor shows the terminal cursor.
func ShowCursor() string {
	return CSI + "?25h"
}

// EnableAltScreen switches to the alternate screen buffer.
func EnableAltScreen() string {
	return CSI + "?1049h"
}

// DisableAltScreen switches back from the alternate screen buffer.
func DisableAltScreen() string {
	return CSI + "?1049l"
}

// Fit returns the largest pixel size with the aspect ratio of srcW x srcH
// that fits in cols x rows cells, two pixels per cell vertically.
func Fit(srcW, srcH, cols, rows int) (w, h int) {
	if srcW <= 0 || srcH <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}
	maxH := rows * 2
	w, h = cols, cols*srcH/srcW
	if h > maxH {
		w, h = maxH*srcW/srcH, maxH
	}
	// Keep h even so the last row has both halves.
	h &^= 1
	return max(w, 1), max(h, 2)
}

// Encoder turns images into half-block text. It reuses its buffers between
// frames.
type Encoder struct {
	// Background is composited under translucent pixels.
	Background color.NRGBA

	small *image.NRGBA
	sb    strings.Builder
}

// Encode renders img into at most cols x rows cells and returns the text,
// starting with a cursor move to the top-left corner.
func (e *Encoder) Encode(img image.Image, cols, rows int) string {
	b := img.Bounds()
	w, h := Fit(b.Dx(), b.Dy(), cols, rows)
	e.sb.Reset()
	if w == 0 || h == 0 {
		return ""
	}
	if e.small == nil || e.small.Bounds().Dx() != w || e.small.Bounds().Dy() != h {
		e.small = image.NewNRGBA(image.Rect(0, 0, w, h))
	}
	draw.NearestNeighbor.Scale(e.small, e.small.Bounds(), img, b, draw.Src, nil)

	e.sb.WriteString(MoveTo(1, 1))
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			top := over(e.small.NRGBAAt(x, y), e.Background)
			bot := over(e.small.NRGBAAt(x, y+1), e.Background)
			writeCell(&e.sb, top, bot)
		}
		e.sb.WriteString(Reset)
		if y+2 < h {
			e.sb.WriteString("\r\n")
		}
	}
	return e.sb.String()
}

// writeCell writes a single cell's full SGR + half block.
func writeCell(sb *strings.Builder, fg, bg color.NRGBA) {
	sb.WriteString("\x1b[38;2;")
	sb.WriteString(strconv.Itoa(int(fg.R)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(fg.G)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(fg.B)))
	sb.WriteString(";48;2;")
	sb.WriteString(strconv.Itoa(int(bg.R)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(bg.G)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(bg.B)))
	sb.WriteByte('m')
	sb.WriteRune(HalfBlock)
}

// over composites c onto an opaque background.
func over(c, bg color.NRGBA) color.NRGBA {
	a := int(c.A)
	mix := func(f, b uint8) uint8 {
		return uint8((int(f)*a + int(b)*(255-a)) / 255)
	}
	return color.NRGBA{R: mix(c.R, bg.R), G: mix(c.G, bg.G), B: mix(c.B, bg.B), A: 255}
}
