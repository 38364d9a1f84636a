package layout

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/dashstitch/dashstitch/pkg/types"
)

// attribute identifies a camera property a preset can override.
type attribute int

const (
	attrXPos attribute = iota
	attrYPos
	attrWidth
	attrHeight
)

// Camera holds the geometry of one clip slot inside a layout. Positions
// resolve in three tiers: a pinned value set by the caller wins, then the
// preset's override formula, then the stored value.
type Camera struct {
	layout *Layout

	position   types.CameraPosition
	include    bool
	width      int
	height     int
	xpos       int
	xposPinned bool
	ypos       int
	yposPinned bool
	scale      *float64
	mirror     bool
	options    string
}

func newCamera(layout *Layout, position types.CameraPosition) *Camera {
	scale := 1.0
	return &Camera{
		layout:   layout,
		position: position,
		include:  true,
		width:    DefaultClipWidth,
		height:   DefaultClipHeight,
		scale:    &scale,
	}
}

// Position is the camera slot this geometry belongs to.
func (c *Camera) Position() types.CameraPosition {
	return c.position
}

// Include reports whether this camera takes part in the layout. When the
// layout is bound to an event, only cameras the event has footage for are
// included.
func (c *Camera) Include() bool {
	if c.layout.event != nil {
		return c.include && c.layout.event.HasCameraClip(c.position)
	}
	return c.include
}

// SetInclude marks the camera as included or excluded.
func (c *Camera) SetInclude(value bool) {
	c.include = value
}

// includeFactor collapses excluded cameras to zero size.
func (c *Camera) includeFactor() int {
	if c.Include() {
		return 1
	}
	return 0
}

// scaleOr returns the stored scale, falling back when no scale is set
// or when the stored scale is zero.
func (c *Camera) scaleOr(fallback float64) float64 {
	if c.scale != nil && *c.scale != 0 {
		return *c.scale
	}
	return fallback
}

// Width is the effective clip width: the preset override when one is
// registered, otherwise the stored width scaled. Excluded cameras are 0.
func (c *Camera) Width() int {
	if fn := c.layout.override(c.position, attrWidth); fn != nil {
		return fn() * c.includeFactor()
	}
	return int(float64(c.width)*c.scaleOr(1)) * c.includeFactor()
}

// WidthFixed is the stored clip width before scaling and overrides.
func (c *Camera) WidthFixed() int {
	return c.width
}

// SetWidth replaces the stored clip width.
func (c *Camera) SetWidth(value int) {
	c.width = value
}

func (c *Camera) scaleHeight() int {
	if fn := c.layout.override(c.position, attrHeight); fn != nil {
		return fn() * c.includeFactor()
	}
	return int(float64(c.height)*c.scaleOr(1)) * c.includeFactor()
}

// Height is the effective clip height. Side cameras grow by 3/2 when the
// layout renders them with a perspective skew, since the skew needs the
// extra canvas.
func (c *Camera) Height() int {
	if c.layout.perspective && isSideCamera(c.position) {
		return c.scaleHeight() * 3 / 2
	}
	return c.scaleHeight()
}

// HeightFixed is the stored clip height before scaling and overrides.
func (c *Camera) HeightFixed() int {
	return c.height
}

// SetHeight replaces the stored clip height.
func (c *Camera) SetHeight(value int) {
	c.height = value
}

// Ratio is the stored clip aspect ratio, used when a preset derives height
// from width. Defaults to 4:3 when either dimension is unknown.
func (c *Camera) Ratio() float64 {
	if c.width != 0 && c.height != 0 {
		return float64(c.width) / float64(c.height)
	}
	return 4.0 / 3.0
}

// XPos is the effective horizontal position: pinned value, then preset
// formula, then the stored position.
func (c *Camera) XPos() int {
	if c.xposPinned {
		return c.xpos * c.includeFactor()
	}
	if fn := c.layout.override(c.position, attrXPos); fn != nil {
		return fn() * c.includeFactor()
	}
	return c.xpos * c.includeFactor()
}

// SetXPos pins the horizontal position, bypassing the preset formula.
func (c *Camera) SetXPos(value int) {
	c.xpos = value
	c.xposPinned = true
}

// ResetXPos removes the pin, letting the preset formula apply again.
func (c *Camera) ResetXPos() {
	c.xposPinned = false
}

// YPos is the effective vertical position, resolved like XPos.
func (c *Camera) YPos() int {
	if c.yposPinned {
		return c.ypos * c.includeFactor()
	}
	if fn := c.layout.override(c.position, attrYPos); fn != nil {
		return fn() * c.includeFactor()
	}
	return c.ypos * c.includeFactor()
}

// SetYPos pins the vertical position, bypassing the preset formula.
func (c *Camera) SetYPos(value int) {
	c.ypos = value
	c.yposPinned = true
}

// ResetYPos removes the pin, letting the preset formula apply again.
func (c *Camera) ResetYPos() {
	c.yposPinned = false
}

// Scale reports the per-camera scale factor and whether one is set.
func (c *Camera) Scale() (float64, bool) {
	if c.scale == nil {
		return 0, false
	}
	return *c.scale, true
}

// SetScale sets the per-camera scale factor.
func (c *Camera) SetScale(value float64) {
	c.scale = &value
}

// ClearScale removes the scale factor so presets that stretch this camera
// can tell it apart from an explicit scale of 1.
func (c *Camera) ClearScale() {
	c.scale = nil
}

// SetScaleSpec parses a user supplied scale: either a bare multiplier
// ("0.5") or an explicit resolution ("1920x1080"), which also sets the
// stored width and height.
func (c *Camera) SetScaleSpec(spec string) error {
	parts := strings.Split(spec, "x")
	switch len(parts) {
	case 1:
		value, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return errors.Errorf("invalid scale %q: not a number", spec)
		}
		c.SetScale(value)
		return nil
	case 2:
		if parts[0] == "" || parts[1] == "" {
			return errors.Errorf("invalid resolution format: %q. Expected format: WIDTHxHEIGHT (e.g. 1920x1080)", spec)
		}
		width, err := strconv.Atoi(parts[0])
		if err != nil {
			return errors.Errorf("invalid resolution format: %q. Expected format: WIDTHxHEIGHT (e.g. 1920x1080)", spec)
		}
		height, err := strconv.Atoi(parts[1])
		if err != nil {
			return errors.Errorf("invalid resolution format: %q. Expected format: WIDTHxHEIGHT (e.g. 1920x1080)", spec)
		}
		c.width = width
		c.height = height
		c.SetScale(1)
		return nil
	default:
		return errors.Errorf("invalid resolution format: %q. Expected format: WIDTHxHEIGHT (e.g. 1920x1080)", spec)
	}
}

// Mirror reports whether the clip is flipped horizontally.
func (c *Camera) Mirror() bool {
	return c.mirror
}

// SetMirror sets horizontal flipping for the clip.
func (c *Camera) SetMirror(value bool) {
	c.mirror = value
}

// MirrorText is the filter fragment appended when the clip is mirrored.
func (c *Camera) MirrorText() string {
	if c.mirror {
		return ", hflip"
	}
	return ""
}

// Options is the extra filter chain applied to this clip.
func (c *Camera) Options() string {
	return c.options
}

// SetOptions replaces the extra filter chain.
func (c *Camera) SetOptions(value string) {
	c.options = value
}

// Rect is the effective placement of the camera on the canvas.
func (c *Camera) Rect() types.Rect {
	return types.Rect{
		X:      c.XPos(),
		Y:      c.YPos(),
		Width:  c.Width(),
		Height: c.Height(),
	}
}

func isSideCamera(position types.CameraPosition) bool {
	switch position {
	case types.CameraLeft, types.CameraRight, types.CameraLeftPillar, types.CameraRightPillar:
		return true
	}
	return false
}
