package layout

import "github.com/dashstitch/dashstitch/pkg/types"

const defaultFrontRearBoost = 1.3

func init() {
	Register("mosaic", func(style Style) *Layout {
		return NewMosaic(style).Layout
	})
}

// Mosaic is a fullscreen layout where the front and rear clips stretch to
// fill their rows, boosted past the natural row width to dominate the
// frame.
type Mosaic struct {
	*Layout
	boost float64
}

// NewMosaic builds the mosaic preset.
func NewMosaic(style Style) *Mosaic {
	m := &Mosaic{
		Layout: NewFullScreen(style),
		boost:  defaultFrontRearBoost,
	}
	m.Layout.name = "mosaic"
	m.Camera(types.CameraFront).ClearScale()
	m.Camera(types.CameraRear).ClearScale()
	registerStretch(m.Layout, m.boostFactor)
	return m
}

// FrontRearBoost is the stretch multiplier applied to the front and rear
// rows.
func (m *Mosaic) FrontRearBoost() float64 {
	return m.boost
}

// SetFrontRearBoost sets the stretch multiplier, floored at 1.
func (m *Mosaic) SetFrontRearBoost(value float64) {
	if value < 1 {
		value = 1
	}
	m.boost = value
}

func (m *Mosaic) boostActive() bool {
	return true
}

func (m *Mosaic) boostFactor() float64 {
	if m.boostActive() {
		return m.boost
	}
	return 1
}

// registerStretch widens the front and rear clips to fill their rows. A
// camera with an explicit scale keeps its natural size; without one it
// stretches to the boosted row width minus its neighbors.
func registerStretch(l *Layout, boost func() float64) {
	front := l.Camera(types.CameraFront)
	rear := l.Camera(types.CameraRear)
	lp := l.Camera(types.CameraLeftPillar)
	rp := l.Camera(types.CameraRightPillar)
	left := l.Camera(types.CameraLeft)
	right := l.Camera(types.CameraRight)

	frontNormalWidth := func() int {
		return int(float64(front.WidthFixed()) * front.scaleOr(0.5))
	}
	rearNormalWidth := func() int {
		return int(float64(rear.WidthFixed()) * rear.scaleOr(0.5))
	}
	targetWidth := func() int {
		minTopRowWidth := lp.Width() + frontNormalWidth() + rp.Width()
		minBottomRowWidth := left.Width() + rearNormalWidth() + right.Width()
		return int(float64(max(minTopRowWidth, minBottomRowWidth)) * boost())
	}

	l.setOverride(types.CameraFront, attrWidth, func() int {
		if _, ok := front.Scale(); ok {
			return frontNormalWidth()
		}
		return max(frontNormalWidth(), targetWidth()-lp.Width()-rp.Width())
	})
	l.setOverride(types.CameraFront, attrHeight, func() int {
		if scale, ok := front.Scale(); ok {
			return int(float64(front.HeightFixed()) * scale)
		}
		return int(float64(front.Width()) / front.Ratio())
	})
	l.setOverride(types.CameraRear, attrWidth, func() int {
		if _, ok := rear.Scale(); ok {
			return rearNormalWidth()
		}
		return max(rearNormalWidth(), targetWidth()-left.Width()-right.Width())
	})
	l.setOverride(types.CameraRear, attrHeight, func() int {
		if scale, ok := rear.Scale(); ok {
			return int(float64(rear.HeightFixed()) * scale)
		}
		return int(float64(rear.Width()) / rear.Ratio())
	})
}
