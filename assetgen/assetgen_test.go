package assetgen

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/overlay"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 255})
	img.SetNRGBA(1, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(2, 0, color.NRGBA{0, 0, 0, 0})
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(1, 1, color.NRGBA{0, 0, 255, 40})
	img.SetNRGBA(2, 1, color.NRGBA{0, 0, 0, 255})
	return img
}

func TestConvert(t *testing.T) {
	m, err := Convert(testImage(), Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, m.Width)
	assert.Equal(t, 2, m.Height)
	assert.Equal(t, overlay.KeyRGB565, m.Pix[2], "transparent pixel")
	assert.Equal(t, overlay.KeyRGB565, m.Pix[4], "mostly transparent pixel")

	c, ok := m.At(0, 0)
	require.True(t, ok)
	assert.Equal(t, overlay.White, c)

	c, ok = m.At(1, 0)
	require.True(t, ok)
	assert.Equal(t, overlay.Color{R: 15, A: 15}, c)

	_, ok = m.At(2, 0)
	assert.False(t, ok)
}

func TestConvertEmpty(t *testing.T) {
	_, err := Convert(image.NewNRGBA(image.Rectangle{}), Options{})
	assert.Error(t, err)
}

func TestRGB565AvoidsKey(t *testing.T) {
	// Pure blue at 14/31 would encode as the key.
	c := color.NRGBA{B: 14 << 3, A: 255}
	v := RGB565(c)
	assert.NotEqual(t, overlay.KeyRGB565, v)
	assert.Equal(t, overlay.FromRGB565(overlay.KeyRGB565), overlay.FromRGB565(v))
	assert.Equal(t, uint16(0xFFFF), RGB565(color.White))
}

func TestDecodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage()))
	img, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())

	_, err = Decode(strings.NewReader("not an image"))
	assert.Error(t, err)
}

func TestWriteGo(t *testing.T) {
	m, err := Convert(testImage(), Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteGo(&buf, "art", "bannerPix", m))
	src := buf.String()
	assert.Contains(t, src, "package art")
	assert.Contains(t, src, "var bannerPix = []uint16{")
	assert.Contains(t, src, "3x2 RGB565")
	assert.Equal(t, 6, strings.Count(src, "0x")-1, "one literal per pixel plus the key in the comment")

	assert.Error(t, WriteGo(&buf, "art", "x", nil))
}
