// Package assetgen converts images into the compiled-in RGB565 tables the
// overlay draws from.
package assetgen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/draw"

	"github.com/phanxgames/overlay"
)

// MaxColors is the default palette size. One more value is taken by the
// transparency key.
const MaxColors = 15

// Options control conversion.
type Options struct {
	// Colors limits the palette; 0 means MaxColors.
	Colors int
	// AlphaCutoff is the 16-bit alpha below which a pixel becomes the
	// transparency key; 0 means half opacity.
	AlphaCutoff uint32
}

// Decode reads a PNG, GIF or JPEG image.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("assetgen: decode: %w", err)
	}
	return img, nil
}

// Convert quantizes img with a median cut palette and returns it as an
// RGB565 image keyed with overlay.KeyRGB565.
func Convert(img image.Image, opts Options) (*overlay.Image16, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, errors.New("assetgen: empty image")
	}
	n := opts.Colors
	if n <= 0 {
		n = MaxColors
	}
	cutoff := opts.AlphaCutoff
	if cutoff == 0 {
		cutoff = 0x8000
	}

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, n), img))
	draw.Draw(pm, b, img, b.Min, draw.Src)

	out := &overlay.Image16{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    make([]uint16, b.Dx()*b.Dy()),
		Key:    overlay.KeyRGB565,
		Format: overlay.PixelFormatRGB565,
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a < cutoff {
				out.Pix[i] = overlay.KeyRGB565
			} else {
				out.Pix[i] = RGB565(pm.At(x, y))
			}
			i++
		}
	}
	return out, nil
}

// RGB565 packs c into 5-6-5 bits. An opaque colour that would collide with
// the transparency key is moved to the neighbouring blue value, which maps
// to the same 4-bit colour.
func RGB565(c color.Color) uint16 {
	r, g, b, _ := c.RGBA()
	v := uint16(r>>11)<<11 | uint16(g>>10)<<5 | uint16(b>>11)
	if v == overlay.KeyRGB565 {
		v |= 1
	}
	return v
}

// WriteGo writes gofmt'ed Go source declaring name as the pixel table of m.
func WriteGo(w io.Writer, pkg, name string, m *overlay.Image16) error {
	if m == nil || len(m.Pix) != m.Width*m.Height {
		return errors.New("assetgen: image has no pixels")
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by overlay import. DO NOT EDIT.\n\npackage %s\n\n", pkg)
	fmt.Fprintf(&buf, "// %s is a %dx%d RGB565 image keyed with 0x%04X.\n", name, m.Width, m.Height, m.Key)
	fmt.Fprintf(&buf, "var %s = []uint16{\n", name)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			fmt.Fprintf(&buf, "0x%04X,", m.Pix[y*m.Width+x])
			if x < m.Width-1 {
				buf.WriteByte(' ')
			}
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("assetgen: format: %w", err)
	}
	_, err = w.Write(src)
	return err
}
