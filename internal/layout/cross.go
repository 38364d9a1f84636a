package layout

import "github.com/dashstitch/dashstitch/pkg/types"

func init() {
	Register("cross", NewCross)
}

// NewCross stacks four rows: front on top, the pillar pair, the repeater
// pair, and rear at the bottom. Every row centers against the widest one.
func NewCross(style Style) *Layout {
	l := New(style)
	l.name = "cross"
	l.SetScale(0.5)

	front := l.Camera(types.CameraFront)
	rear := l.Camera(types.CameraRear)
	lp := l.Camera(types.CameraLeftPillar)
	rp := l.Camera(types.CameraRightPillar)
	left := l.Camera(types.CameraLeft)
	right := l.Camera(types.CameraRight)

	pillarRowWidth := func() int {
		return lp.Width() + rp.Width()
	}
	repeaterRowWidth := func() int {
		return left.Width() + right.Width()
	}
	rowWidth := func() int {
		return max(front.Width(), pillarRowWidth(), repeaterRowWidth(), rear.Width())
	}
	pillarRowHeight := func() int {
		return max(lp.Height(), rp.Height())
	}
	repeaterRowHeight := func() int {
		return max(left.Height(), right.Height())
	}

	l.setOverride(types.CameraFront, attrXPos, func() int {
		return rowWidth()/2 - front.Width()/2
	})
	l.setOverride(types.CameraLeftPillar, attrXPos, func() int {
		return rowWidth()/2 - pillarRowWidth()/2
	})
	l.setOverride(types.CameraRightPillar, attrXPos, func() int {
		return lp.XPos() + lp.Width()
	})
	l.setOverride(types.CameraLeft, attrXPos, func() int {
		return rowWidth()/2 - repeaterRowWidth()/2
	})
	l.setOverride(types.CameraRight, attrXPos, func() int {
		return left.XPos() + left.Width()
	})
	l.setOverride(types.CameraRear, attrXPos, func() int {
		return rowWidth()/2 - rear.Width()/2
	})

	l.setOverride(types.CameraLeftPillar, attrYPos, func() int {
		return front.Height() + (pillarRowHeight()-lp.Height())/2
	})
	l.setOverride(types.CameraRightPillar, attrYPos, func() int {
		return front.Height() + (pillarRowHeight()-rp.Height())/2
	})
	l.setOverride(types.CameraLeft, attrYPos, func() int {
		return front.Height() + pillarRowHeight() + (repeaterRowHeight()-left.Height())/2
	})
	l.setOverride(types.CameraRight, attrYPos, func() int {
		return front.Height() + pillarRowHeight() + (repeaterRowHeight()-right.Height())/2
	})
	l.setOverride(types.CameraRear, attrYPos, func() int {
		return front.Height() + pillarRowHeight() + repeaterRowHeight()
	})

	return l
}
