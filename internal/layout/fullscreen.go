package layout

import "github.com/dashstitch/dashstitch/pkg/types"

func init() {
	Register("fullscreen", NewFullScreen)
}

// NewFullScreen arranges the pillar cameras beside the front clip on a top
// row and the repeater cameras beside the rear clip on a bottom row, with
// both rows centered against each other.
func NewFullScreen(style Style) *Layout {
	l := New(style)
	l.name = "fullscreen"
	l.SetScale(0.5)
	registerFullScreen(l)
	return l
}

// registerFullScreen installs the two row formulas. The rows share a width
// (the wider of the two) and each camera centers vertically inside its row.
func registerFullScreen(l *Layout) {
	front := l.Camera(types.CameraFront)
	rear := l.Camera(types.CameraRear)
	lp := l.Camera(types.CameraLeftPillar)
	rp := l.Camera(types.CameraRightPillar)
	left := l.Camera(types.CameraLeft)
	right := l.Camera(types.CameraRight)

	topRowWidth := func() int {
		return lp.Width() + front.Width() + rp.Width()
	}
	bottomRowWidth := func() int {
		return left.Width() + rear.Width() + right.Width()
	}
	rowWidth := func() int {
		return max(topRowWidth(), bottomRowWidth())
	}
	topRowXPos := func() int {
		return rowWidth()/2 - topRowWidth()/2
	}
	bottomRowXPos := func() int {
		return rowWidth()/2 - bottomRowWidth()/2
	}
	topRowHeight := func() int {
		return max(lp.Height(), front.Height(), rp.Height())
	}
	bottomRowHeight := func() int {
		return max(left.Height(), rear.Height(), right.Height())
	}
	bottomRowYPos := func() int {
		return topRowHeight()
	}

	l.setOverride(types.CameraLeftPillar, attrXPos, topRowXPos)
	l.setOverride(types.CameraFront, attrXPos, func() int {
		return topRowXPos() + lp.Width()
	})
	l.setOverride(types.CameraRightPillar, attrXPos, func() int {
		return topRowXPos() + lp.Width() + front.Width()
	})
	l.setOverride(types.CameraLeft, attrXPos, bottomRowXPos)
	l.setOverride(types.CameraRear, attrXPos, func() int {
		return bottomRowXPos() + left.Width()
	})
	l.setOverride(types.CameraRight, attrXPos, func() int {
		return bottomRowXPos() + left.Width() + rear.Width()
	})

	l.setOverride(types.CameraFront, attrHeight, func() int {
		return int(float64(front.Width()) / front.Ratio())
	})

	l.setOverride(types.CameraLeftPillar, attrYPos, func() int {
		return (topRowHeight() - lp.Height()) / 2
	})
	l.setOverride(types.CameraFront, attrYPos, func() int {
		return (topRowHeight() - front.Height()) / 2
	})
	l.setOverride(types.CameraRightPillar, attrYPos, func() int {
		return (topRowHeight() - rp.Height()) / 2
	})
	l.setOverride(types.CameraLeft, attrYPos, func() int {
		return bottomRowYPos() + (bottomRowHeight()-left.Height())/2
	})
	l.setOverride(types.CameraRear, attrYPos, func() int {
		return bottomRowYPos() + (bottomRowHeight()-rear.Height())/2
	})
	l.setOverride(types.CameraRight, attrYPos, func() int {
		return bottomRowYPos() + (bottomRowHeight()-right.Height())/2
	})
}
