package overlay

import (
	"encoding/json"
	"fmt"
)

// Names of the compiled-in images in DefaultAtlas.
const (
	AssetHeroIdle   = "hero-idle"
	AssetHeroJump   = "hero-jump"
	AssetCloudSmall = "cloud-small"
	AssetCloudWide  = "cloud-wide"
	AssetBush       = "bush"
	AssetGround     = "ground"
	AssetHill       = "hill"
)

// Region describes a sub-rectangle within an atlas page.
type Region struct {
	Page          int
	X, Y          int
	Width, Height int
}

// SubImage is a Bitmap view onto a region of a page.
type SubImage struct {
	Page   *Image16
	Region Region
}

// Size implements Bitmap.
func (s SubImage) Size() (w, h int) { return s.Region.Width, s.Region.Height }

// At implements Bitmap.
func (s SubImage) At(col, row int) (Color, bool) {
	if col < 0 || row < 0 || col >= s.Region.Width || row >= s.Region.Height || s.Page == nil {
		return Color{}, false
	}
	return s.Page.At(s.Region.X+col, s.Region.Y+row)
}

// Atlas maps names to bitmaps. Lookups of unknown names return a magenta
// placeholder so a missing asset shows up on screen instead of vanishing.
type Atlas struct {
	// Pages contains the page images referenced by loaded regions.
	Pages   []*Image16
	entries map[string]Bitmap
}

// NewAtlas creates an empty atlas.
func NewAtlas() *Atlas {
	return &Atlas{entries: make(map[string]Bitmap)}
}

// Add registers b under name, replacing any previous entry.
func (a *Atlas) Add(name string, b Bitmap) {
	a.entries[name] = b
}

// Has reports whether name is registered.
func (a *Atlas) Has(name string) bool {
	_, ok := a.entries[name]
	return ok
}

// Len returns the number of registered entries.
func (a *Atlas) Len() int { return len(a.entries) }

// Bitmap returns the bitmap registered under name, or a 1x1 magenta
// placeholder when there is none.
func (a *Atlas) Bitmap(name string) Bitmap {
	if b, ok := a.entries[name]; ok {
		return b
	}
	Logger().Debug("atlas entry not found, using placeholder", "name", name)
	return magentaPlaceholder
}

var magentaPlaceholder = &Image16{
	Width:  1,
	Height: 1,
	Pix:    []uint16{uint16(Pack(Magenta))},
	Format: PixelFormatRGBA4444,
}

// Merge copies every entry of other into a, overriding same-named entries.
func (a *Atlas) Merge(other *Atlas) {
	if other == nil {
		return
	}
	for name, b := range other.entries {
		a.entries[name] = b
	}
	a.Pages = append(a.Pages, other.Pages...)
}

func rgb565(w, h int, pix []uint16) *Image16 {
	return &Image16{Width: w, Height: h, Pix: pix, Key: KeyRGB565, Format: PixelFormatRGB565}
}

// DefaultAtlas returns an atlas holding the compiled-in scene and walker art.
func DefaultAtlas() *Atlas {
	a := NewAtlas()
	a.Add(AssetHeroIdle, rgb565(13, 16, heroIdlePix))
	a.Add(AssetHeroJump, rgb565(17, 16, heroJumpPix))
	a.Add(AssetCloudSmall, rgb565(13, 12, cloudSmallPix))
	a.Add(AssetCloudWide, rgb565(13, 12, cloudWidePix))
	a.Add(AssetBush, rgb565(21, 9, bushPix))
	a.Add(AssetGround, rgb565(8, 8, groundPix))
	a.Add(AssetHill, rgb565(20, 22, hillPix))
	return a
}

// LoadAtlas parses TexturePacker JSON and associates the given pages.
// Both the hash format (single "frames" object) and the array format
// ("textures" array with per-page frame lists) are accepted.
func LoadAtlas(jsonData []byte, pages []*Image16) (*Atlas, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("overlay: parse atlas JSON: %w", err)
	}

	atlas := NewAtlas()
	atlas.Pages = pages

	switch {
	case probe.Textures != nil:
		var textures []jsonTexturePage
		if err := json.Unmarshal(probe.Textures, &textures); err != nil {
			return nil, fmt.Errorf("overlay: parse atlas textures: %w", err)
		}
		for i, tex := range textures {
			if err := atlas.addFrames(tex.Frames, i); err != nil {
				return nil, err
			}
		}
	case probe.Frames != nil:
		var frames map[string]jsonFrame
		if err := json.Unmarshal(probe.Frames, &frames); err != nil {
			return nil, fmt.Errorf("overlay: parse atlas frames: %w", err)
		}
		if err := atlas.addFrames(frames, 0); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("overlay: atlas JSON has neither \"frames\" nor \"textures\" key")
	}
	return atlas, nil
}

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame   jsonRect `json:"frame"`
	Rotated bool     `json:"rotated"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

func (a *Atlas) addFrames(frames map[string]jsonFrame, page int) error {
	for name, f := range frames {
		if f.Rotated {
			return fmt.Errorf("overlay: atlas frame %q: rotated frames are not supported", name)
		}
		if page >= len(a.Pages) || a.Pages[page] == nil {
			return fmt.Errorf("overlay: atlas frame %q references missing page %d", name, page)
		}
		p := a.Pages[page]
		r := Region{Page: page, X: f.Frame.X, Y: f.Frame.Y, Width: f.Frame.W, Height: f.Frame.H}
		if r.X < 0 || r.Y < 0 || r.Width <= 0 || r.Height <= 0 || r.X+r.Width > p.Width || r.Y+r.Height > p.Height {
			return fmt.Errorf("overlay: atlas frame %q lies outside page %d", name, page)
		}
		a.entries[name] = SubImage{Page: p, Region: r}
	}
	return nil
}
