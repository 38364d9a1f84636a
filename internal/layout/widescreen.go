package layout

import "github.com/dashstitch/dashstitch/pkg/types"

func init() {
	Register("widescreen", NewWideScreen)
}

// NewWideScreen is the fullscreen arrangement with the front and rear
// clips stretched to exactly fill their rows, leaving no background bars.
func NewWideScreen(style Style) *Layout {
	l := NewFullScreen(style)
	l.name = "widescreen"
	l.Camera(types.CameraFront).ClearScale()
	l.Camera(types.CameraRear).ClearScale()
	registerStretch(l, func() float64 { return 1 })
	return l
}
