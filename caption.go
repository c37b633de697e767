package overlay

import "github.com/tanema/gween/ease"

// DefaultCaptions is the status text rotation shown over the scene.
var DefaultCaptions = []string{"正在备份", "正在上传", "备份成功"}

// CaptionStyle places and colours the status caption.
type CaptionStyle struct {
	Text    TextStyle // Color is the fill colour
	Outline Color
	// TopFraction positions the caption at TopFraction*height plus one and a
	// half text heights from the top of the canvas.
	TopFraction float64
}

// DefaultCaptionStyle returns the bold brick-on-white caption style.
func DefaultCaptionStyle() CaptionStyle {
	return CaptionStyle{
		Text:        TextStyle{ScaleX: 5, ScaleY: 7, Spacing: 1, Color: Brick},
		Outline:     White,
		TopFraction: 0.15,
	}
}

// Caption cycles through a fixed list of status strings, advancing every
// Every ticks. Each change drops the new string in from above over DropTicks
// ticks.
type Caption struct {
	Font  *Font
	Style CaptionStyle

	texts     []string
	every     int
	dropTicks int
	index     int
	offset    int
	drop      *IntTween
}

// NewCaption creates a caption rotating through texts. every <= 0 keeps the
// first text forever; dropTicks <= 0 disables the drop-in.
func NewCaption(texts []string, every, dropTicks int) *Caption {
	c := &Caption{
		Font:      StatusFont,
		Style:     DefaultCaptionStyle(),
		texts:     texts,
		every:     every,
		dropTicks: dropTicks,
	}
	c.startDrop()
	return c
}

// Text returns the current caption, or "" when the rotation is empty.
func (c *Caption) Text() string {
	if len(c.texts) == 0 {
		return ""
	}
	return c.texts[c.index]
}

// Index returns the position of the current caption in the rotation.
func (c *Caption) Index() int { return c.index }

// Offset returns the current vertical drop-in offset in pixels (<= 0).
func (c *Caption) Offset() int { return c.offset }

// Set replaces the current caption text without touching the rotation order.
// The new text drops in like a rotated one.
func (c *Caption) Set(text string) {
	if len(c.texts) == 0 {
		c.texts = []string{text}
	} else {
		texts := make([]string, len(c.texts))
		copy(texts, c.texts)
		texts[c.index] = text
		c.texts = texts
	}
	c.startDrop()
}

// SetStyle replaces the caption style and restarts the drop-in from the new
// text height.
func (c *Caption) SetStyle(st CaptionStyle) {
	c.Style = st
	c.startDrop()
}

// Step advances the caption for frame tick. The rotation moves to the next
// string whenever tick is a positive multiple of the cadence.
func (c *Caption) Step(tick uint64) {
	if c.every > 0 && len(c.texts) > 1 && tick > 0 && tick%uint64(c.every) == 0 {
		c.index = (c.index + 1) % len(c.texts)
		c.startDrop()
	}
	c.drop.Update(1)
}

func (c *Caption) startDrop() {
	h := GlyphHeight * c.Style.Text.ScaleY
	c.drop = TweenOffset(&c.offset, -h, 0, c.dropTicks, ease.OutBounce)
}

// Layout returns the caption's top-left corner on a canvas of the given
// size, including the drop-in offset.
func (c *Caption) Layout(width, height int) (x, y int) {
	st := c.Style.Text
	th := GlyphHeight * st.ScaleY
	tw := c.Font.TextWidth(c.Text(), st.ScaleX, st.Spacing)
	x = (width - tw) / 2
	y = int(float64(height)*c.Style.TopFraction) + th + th/2
	return x, y + c.offset
}

// Draw renders the current caption in bold outline.
func (c *Caption) Draw(cv *Canvas) {
	if cv == nil || !cv.Bound() || c.Text() == "" {
		return
	}
	x, y := c.Layout(cv.Width(), cv.Height())
	c.Font.DrawTextBold(cv, c.Text(), x, y, c.Style.Text, c.Style.Outline)
}
