package overlay

// Tile GID flag bits (same convention as Tiled TMX). GID 0 is an empty cell;
// GID n draws Tiles[n-1].
const (
	TileFlipH    uint32 = 1 << 31
	TileFlipV    uint32 = 1 << 30
	tileFlagMask uint32 = TileFlipH | TileFlipV
)

// TileLayer is a grid of tile GIDs drawn as scaled bitmaps. All tiles share
// the cell size of Tiles[0].
type TileLayer struct {
	Tiles []Bitmap
	Scale int

	data   []uint32
	width  int
	height int
}

// NewTileLayer creates an empty cols x rows layer.
func NewTileLayer(tiles []Bitmap, cols, rows, scale int) *TileLayer {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &TileLayer{
		Tiles:  tiles,
		Scale:  scale,
		data:   make([]uint32, cols*rows),
		width:  cols,
		height: rows,
	}
}

// Size returns the layer dimensions in tiles.
func (l *TileLayer) Size() (cols, rows int) { return l.width, l.height }

// CellSize returns the on-screen size of one tile.
func (l *TileLayer) CellSize() (w, h int) {
	if len(l.Tiles) == 0 || l.Tiles[0] == nil {
		return 0, 0
	}
	w, h = l.Tiles[0].Size()
	return w * l.Scale, h * l.Scale
}

// SetTile sets the GID (with flag bits) at col,row. Out-of-range cells are
// ignored.
func (l *TileLayer) SetTile(col, row int, gid uint32) {
	if col < 0 || row < 0 || col >= l.width || row >= l.height {
		return
	}
	l.data[row*l.width+col] = gid
}

// Tile returns the GID at col,row, or 0 outside the layer.
func (l *TileLayer) Tile(col, row int) uint32 {
	if col < 0 || row < 0 || col >= l.width || row >= l.height {
		return 0
	}
	return l.data[row*l.width+col]
}

// Fill sets every cell to gid.
func (l *TileLayer) Fill(gid uint32) {
	for i := range l.data {
		l.data[i] = gid
	}
}

// Draw blits every non-empty cell with its top-left tile at (x, y).
func (l *TileLayer) Draw(c *Canvas, x, y int) {
	cw, ch := l.CellSize()
	if cw == 0 || ch == 0 {
		return
	}
	for row := 0; row < l.height; row++ {
		for col := 0; col < l.width; col++ {
			gid := l.data[row*l.width+col]
			id := gid &^ tileFlagMask
			if id == 0 || int(id) > len(l.Tiles) {
				continue
			}
			var b Bitmap = l.Tiles[id-1]
			if gid&tileFlagMask != 0 {
				b = flipped{Bitmap: b, h: gid&TileFlipH != 0, v: gid&TileFlipV != 0}
			}
			Blit(c, b, x+col*cw, y+row*ch, l.Scale, l.Scale)
		}
	}
}

type flipped struct {
	Bitmap
	h, v bool
}

func (f flipped) At(col, row int) (Color, bool) {
	w, h := f.Bitmap.Size()
	if f.h {
		col = w - 1 - col
	}
	if f.v {
		row = h - 1 - row
	}
	return f.Bitmap.At(col, row)
}

// NewGroundStrip returns a one-row layer of tile repeated across width.
// The last cell may extend past width and is clipped when drawn.
func NewGroundStrip(tile Bitmap, width, scale int) *TileLayer {
	l := NewTileLayer([]Bitmap{tile}, 0, 1, scale)
	cw, _ := l.CellSize()
	if cw <= 0 || width <= 0 {
		return l
	}
	cols := (width + cw - 1) / cw
	l.data = make([]uint32, cols)
	l.width = cols
	l.Fill(1)
	return l
}
