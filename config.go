package overlay

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Duration is a time.Duration that reads from JSON either as a Go duration
// string ("60ms") or as a number of milliseconds.
type Duration time.Duration

// MarshalJSON writes the duration as a string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON accepts "60ms" or 60.
func (d *Duration) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*d = Duration(v)
		return nil
	}
	ms, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("duration %s: want a string or milliseconds", b)
	}
	*d = Duration(ms * float64(time.Millisecond))
	return nil
}

// Config controls the frame loop. The zero value is not usable; start from
// DefaultConfig or Preset.
type Config struct {
	// Width and Height are the canvas size in pixels. Width must be a
	// multiple of 32 for the block-linear layout.
	Width  int `json:"width"`
	Height int `json:"height"`
	// FrameInterval is the sleep after each presented frame.
	FrameInterval Duration `json:"frame_interval"`

	// JumpEvery is the jump cadence in ticks; 0 keeps the walker grounded.
	JumpEvery    int `json:"jump_every"`
	JumpVelocity int `json:"jump_velocity"`
	Gravity      int `json:"gravity"`
	// WalkStep is the horizontal advance per tick; 0 keeps the walker in place.
	WalkStep   int `json:"walk_step"`
	WrapMargin int `json:"wrap_margin"`
	// WalkerX is the walker's starting centre.
	WalkerX int `json:"walker_x"`
	// WalkerRise lifts the walker's ground line above the canvas bottom.
	WalkerRise  int `json:"walker_rise"`
	SpriteScale int `json:"sprite_scale"`
	SpriteLift  int `json:"sprite_lift"`

	// Captions is the status text rotation.
	Captions []string `json:"captions"`
	// CaptionEvery is the rotation cadence in ticks; 0 shows only the first.
	CaptionEvery   int `json:"caption_every"`
	CaptionScaleX  int `json:"caption_scale_x"`
	CaptionScaleY  int `json:"caption_scale_y"`
	CaptionSpacing int `json:"caption_spacing"`
	// CaptionDrop is the length of the drop-in animation in ticks.
	CaptionDrop int `json:"caption_drop"`

	// Debug enables per-second frame statistics at debug level.
	Debug bool `json:"debug"`
}

// DefaultConfig returns the walk-and-jump configuration.
func DefaultConfig() Config {
	p := DefaultPhysics()
	return Config{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		FrameInterval:  Duration(60 * time.Millisecond),
		JumpEvery:      p.JumpEvery,
		JumpVelocity:   p.JumpVelocity,
		Gravity:        p.Gravity,
		WalkStep:       p.WalkStep,
		WrapMargin:     p.WrapMargin,
		WalkerX:        30,
		WalkerRise:     8*3 + 60,
		SpriteScale:    5,
		SpriteLift:     50,
		Captions:       append([]string(nil), DefaultCaptions...),
		CaptionEvery:   50,
		CaptionScaleX:  5,
		CaptionScaleY:  7,
		CaptionSpacing: 1,
		CaptionDrop:    8,
	}
}

// Preset names accepted by Preset.
const (
	PresetWalk  = "walk"
	PresetStill = "still"
)

// Preset returns a named configuration. "walk" is DefaultConfig; "still"
// keeps the sprite standing at the left with a fixed caption and a slower
// cadence.
func Preset(name string) (Config, error) {
	cfg := DefaultConfig()
	switch name {
	case PresetWalk, "":
		return cfg, nil
	case PresetStill:
		cfg.FrameInterval = Duration(100 * time.Millisecond)
		cfg.JumpEvery = 0
		cfg.WalkStep = 0
		cfg.WalkerRise = 8 * 3
		cfg.SpriteLift = 16 * 5 / 2
		cfg.Captions = cfg.Captions[:1]
		cfg.CaptionEvery = 0
		cfg.CaptionDrop = 0
		return cfg, nil
	}
	return Config{}, fmt.Errorf("overlay: unknown preset %q", name)
}

// ParseConfig decodes JSON over DefaultConfig, so omitted fields keep their
// defaults, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("overlay: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("overlay: invalid config")

// Validate reports the first problem that would make the loop misbehave.
func (c Config) Validate() error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
	}
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return bad("canvas %dx%d must be positive", c.Width, c.Height)
	case c.Width%blockColumn != 0:
		return bad("width %d is not a multiple of %d", c.Width, blockColumn)
	case c.FrameInterval < 0:
		return bad("frame interval %v is negative", time.Duration(c.FrameInterval))
	case c.JumpEvery < 0 || c.CaptionEvery < 0 || c.CaptionDrop < 0:
		return bad("cadences must not be negative")
	case c.WalkStep < 0:
		return bad("walk step %d is negative", c.WalkStep)
	case c.WrapMargin < 0:
		return bad("wrap margin %d is negative", c.WrapMargin)
	case c.SpriteScale <= 0 || c.CaptionScaleX <= 0 || c.CaptionScaleY <= 0:
		return bad("scales must be positive")
	case c.CaptionSpacing < 0:
		return bad("caption spacing %d is negative", c.CaptionSpacing)
	case len(c.Captions) == 0:
		return bad("caption rotation is empty")
	case c.JumpEvery > 0 && c.Gravity <= 0:
		return bad("gravity %d must be positive when jumping", c.Gravity)
	}
	return nil
}

// Physics returns the walker constants from c.
func (c Config) Physics() Physics {
	return Physics{
		JumpEvery:    c.JumpEvery,
		JumpVelocity: c.JumpVelocity,
		Gravity:      c.Gravity,
		WalkStep:     c.WalkStep,
		WrapMargin:   c.WrapMargin,
	}
}

// CaptionStyle returns the caption style from c.
func (c Config) CaptionStyle() CaptionStyle {
	st := DefaultCaptionStyle()
	st.Text.ScaleX = c.CaptionScaleX
	st.Text.ScaleY = c.CaptionScaleY
	st.Text.Spacing = c.CaptionSpacing
	return st
}
