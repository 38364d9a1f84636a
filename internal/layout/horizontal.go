package layout

import "github.com/dashstitch/dashstitch/pkg/types"

func init() {
	Register("horizontal", NewHorizontal)
}

// NewHorizontal lines all six cameras up in a single row, left to right in
// driving order, each centered vertically against the tallest clip.
func NewHorizontal(style Style) *Layout {
	l := New(style)
	l.name = "horizontal"
	l.SetScale(0.5)

	front := l.Camera(types.CameraFront)
	rear := l.Camera(types.CameraRear)
	lp := l.Camera(types.CameraLeftPillar)
	rp := l.Camera(types.CameraRightPillar)
	left := l.Camera(types.CameraLeft)
	right := l.Camera(types.CameraRight)

	order := []*Camera{left, lp, front, rear, rp, right}

	rowHeight := func() int {
		return max(
			left.Height(), lp.Height(), front.Height(),
			rear.Height(), rp.Height(), right.Height(),
		)
	}

	for i, camera := range order {
		before := order[:i]
		l.setOverride(camera.Position(), attrXPos, func() int {
			x := 0
			for _, prev := range before {
				x += prev.Width()
			}
			return x
		})
		l.setOverride(camera.Position(), attrYPos, func() int {
			return (rowHeight() - camera.Height()) / 2
		})
	}

	return l
}
