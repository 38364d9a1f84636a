package layout

import "github.com/dashstitch/dashstitch/pkg/types"

func init() {
	Register("diamond", NewDiamond)
}

// NewDiamond puts the full size front and rear clips in a center column
// with the side cameras stacked in flanking columns, the shorter columns
// centered against the tallest.
func NewDiamond(style Style) *Layout {
	l := New(style)
	l.name = "diamond"
	l.Font().SetVAlign(AlignMiddle)
	l.SetScale(0.5)
	l.Camera(types.CameraFront).SetScale(1)
	l.Camera(types.CameraRear).SetScale(1)

	front := l.Camera(types.CameraFront)
	rear := l.Camera(types.CameraRear)
	lp := l.Camera(types.CameraLeftPillar)
	rp := l.Camera(types.CameraRightPillar)
	left := l.Camera(types.CameraLeft)
	right := l.Camera(types.CameraRight)

	leftColWidth := func() int {
		return max(lp.Width(), left.Width())
	}
	centerColWidth := func() int {
		return max(front.Width(), rear.Width())
	}
	leftColHeight := func() int {
		return lp.Height() + left.Height()
	}
	rightColHeight := func() int {
		return rp.Height() + right.Height()
	}
	frontRearHeight := func() int {
		return front.Height() + rear.Height()
	}
	frontYPos := func() int {
		return max(0, (max(leftColHeight(), rightColHeight())-frontRearHeight())/2)
	}

	l.setOverride(types.CameraFront, attrXPos, func() int {
		return leftColWidth() + (centerColWidth()-front.Width())/2
	})
	l.setOverride(types.CameraRear, attrXPos, func() int {
		return leftColWidth() + (centerColWidth()-rear.Width())/2
	})
	l.setOverride(types.CameraLeftPillar, attrXPos, func() int {
		return leftColWidth() - lp.Width()
	})
	l.setOverride(types.CameraLeft, attrXPos, func() int {
		return leftColWidth() - left.Width()
	})
	l.setOverride(types.CameraRightPillar, attrXPos, func() int {
		return leftColWidth() + centerColWidth()
	})
	l.setOverride(types.CameraRight, attrXPos, func() int {
		return leftColWidth() + centerColWidth()
	})

	l.setOverride(types.CameraFront, attrYPos, frontYPos)
	l.setOverride(types.CameraRear, attrYPos, func() int {
		return frontYPos() + front.Height()
	})
	l.setOverride(types.CameraLeftPillar, attrYPos, func() int {
		return max(0, (frontRearHeight()-leftColHeight())/2)
	})
	l.setOverride(types.CameraLeft, attrYPos, func() int {
		return max(0, (frontRearHeight()-leftColHeight())/2) + lp.Height()
	})
	l.setOverride(types.CameraRightPillar, attrYPos, func() int {
		return max(0, (frontRearHeight()-rightColHeight())/2)
	})
	l.setOverride(types.CameraRight, attrYPos, func() int {
		return max(0, (frontRearHeight()-rightColHeight())/2) + rp.Height()
	})

	return l
}
