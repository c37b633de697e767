package overlay

// CloudPlacement positions one cloud. X is measured from the left edge, or
// from the right edge to the cloud's right side when FromRight is set. Top is
// clamped so the cloud stays clear of the ground.
type CloudPlacement struct {
	Asset     string
	X         int
	Top       int
	FromRight bool
}

// SceneLayout holds the per-asset scale and offset constants of the
// background. All positions are derived from these and the canvas size.
type SceneLayout struct {
	Sky Color

	TileScale    int // ground tile scale
	GroundOffset int // distance from the ground strip's bottom to the canvas bottom

	HillScaleX, HillScaleY int
	HillLeft               int

	BushScaleX, BushScaleY int
	BushRight              int // how far the bush hangs past the right edge
	BushSink               int // how far the bush sinks below the ground line

	CloudScale int
	CloudDrop  int // added to every cloud's Top
	CloudGap   int // minimum gap between a cloud and the ground line
	Clouds     []CloudPlacement
}

// DefaultSceneLayout returns the layout of the status overlay backdrop.
func DefaultSceneLayout() SceneLayout {
	return SceneLayout{
		Sky:          SkyBlue,
		TileScale:    6,
		GroundOffset: 60,
		HillScaleX:   6,
		HillScaleY:   8,
		HillLeft:     -10,
		BushScaleX:   6,
		BushScaleY:   8,
		BushRight:    10,
		BushSink:     2,
		CloudScale:   6,
		CloudDrop:    70,
		CloudGap:     10,
		Clouds: []CloudPlacement{
			{Asset: AssetCloudSmall, X: 30, Top: 30},
			{Asset: AssetCloudWide, X: 180, Top: 50},
			{Asset: AssetCloudSmall, X: 30, Top: 40, FromRight: true},
		},
	}
}

// Scene composes the static background. It keeps no per-frame state; every
// call to Compose derives positions from the canvas it is given.
type Scene struct {
	Layout SceneLayout
	Atlas  *Atlas
}

// NewScene creates a scene drawing assets from atlas with the default
// layout. A nil atlas selects DefaultAtlas.
func NewScene(atlas *Atlas) *Scene {
	if atlas == nil {
		atlas = DefaultAtlas()
	}
	return &Scene{Layout: DefaultSceneLayout(), Atlas: atlas}
}

// GroundLine returns the y of the top of the ground strip for a canvas of
// the given height.
func (s *Scene) GroundLine(height int) int {
	_, th := s.Atlas.Bitmap(AssetGround).Size()
	return height - th*s.Layout.TileScale - s.Layout.GroundOffset
}

// Placement is where one background element lands on the canvas.
type Placement struct {
	Asset          string
	X, Y           int
	ScaleX, ScaleY int
}

// Placements returns the hill, bush and cloud positions for a canvas of the
// given size, in draw order. The ground strip is not included.
func (s *Scene) Placements(width, height int) []Placement {
	l := &s.Layout
	ground := s.GroundLine(height)
	out := make([]Placement, 0, 2+len(l.Clouds))

	_, hh := s.Atlas.Bitmap(AssetHill).Size()
	hillTop := max(ground-hh*l.HillScaleY, 0)
	out = append(out, Placement{AssetHill, l.HillLeft, hillTop, l.HillScaleX, l.HillScaleY})

	bw, bh := s.Atlas.Bitmap(AssetBush).Size()
	out = append(out, Placement{
		Asset:  AssetBush,
		X:      width - bw*l.BushScaleX + l.BushRight,
		Y:      ground - bh*l.BushScaleY + l.BushSink,
		ScaleX: l.BushScaleX,
		ScaleY: l.BushScaleY,
	})

	for _, cp := range l.Clouds {
		cw, ch := s.Atlas.Bitmap(cp.Asset).Size()
		maxTop := max(ground-ch*l.CloudScale-l.CloudGap, 0)
		top := min(cp.Top+l.CloudDrop, maxTop)
		x := cp.X
		if cp.FromRight {
			x = width - cp.X - cw*l.CloudScale
		}
		out = append(out, Placement{cp.Asset, x, top, l.CloudScale, l.CloudScale})
	}
	return out
}

// Compose draws the backdrop back to front: translucent sky, hill, bush,
// ground strip, clouds.
func (s *Scene) Compose(c *Canvas) {
	if c == nil || !c.Bound() {
		return
	}
	w, h := c.Width(), c.Height()
	c.FillScreen(s.Layout.Sky, BlendOverwrite)

	places := s.Placements(w, h)
	for _, p := range places[:2] {
		Blit(c, s.Atlas.Bitmap(p.Asset), p.X, p.Y, p.ScaleX, p.ScaleY)
	}
	NewGroundStrip(s.Atlas.Bitmap(AssetGround), w, s.Layout.TileScale).Draw(c, 0, s.GroundLine(h))
	for _, p := range places[2:] {
		Blit(c, s.Atlas.Bitmap(p.Asset), p.X, p.Y, p.ScaleX, p.ScaleY)
	}
}
