package overlay

import "image"

// Block-linear layout constants. Each 32x16-pixel block of a 16-bit surface
// spans two 512-byte GOBs; blocks stack eight high into 128-row bands.
const (
	gobBytes    = 16 * 16 * 4
	bandRows    = 128
	blockColumn = 32
)

// PixelOffset maps (x, y) on a canvas of the given width to the index of the
// 16-bit element holding that pixel in a block-linear buffer. Coordinates are
// not checked; callers clip first.
func PixelOffset(x, y, width int) int {
	pos := (y&(bandRows-1))/16 + x/blockColumn*8 + y/16/8*((width/2)/16*8)
	pos *= gobBytes
	pos += (y%16)/8*512 + (x%32)/16*256 + (y%8)/2*64 + (x%16)/8*32 + (y%2)*16 + (x%8)*2
	return pos / 2
}

// AlignedHeight rounds height up to a whole number of 128-row bands, the
// height the display allocates for a block-linear surface.
func AlignedHeight(height int) int {
	return (height + bandRows - 1) / bandRows * bandRows
}

// BufferLen returns the number of 16-bit elements a block-linear surface of
// the given size occupies. For widths that are a multiple of 32 and heights
// that are a multiple of 128 this is exactly width*height.
func BufferLen(width, height int) int {
	return width * AlignedHeight(height)
}

// Detile decodes a block-linear RGBA4444 buffer into a linear image. Pixels
// whose offset falls outside buf are left transparent.
func Detile(buf []uint16, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			off := PixelOffset(x, y, width)
			if off >= len(buf) {
				continue
			}
			c := Unpack(Packed(buf[off])).NRGBA()
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return img
}
