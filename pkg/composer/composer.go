package composer

import (
	"github.com/pkg/errors"

	"github.com/dashstitch/dashstitch/internal/config"
	"github.com/dashstitch/dashstitch/internal/layout"
	"github.com/dashstitch/dashstitch/internal/timeline"
	"github.com/dashstitch/dashstitch/pkg/types"
)

// CameraGeometry is the resolved placement of one camera clip.
type CameraGeometry struct {
	Camera  string `json:"camera"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Options string `json:"options,omitempty"`
	Mirror  bool   `json:"mirror,omitempty"`
	Include bool   `json:"include"`
}

// FontSpec is the resolved overlay text style.
type FontSpec struct {
	File   string `json:"file,omitempty"`
	Size   int    `json:"size"`
	Color  string `json:"color,omitempty"`
	HAlign string `json:"halign"`
	VAlign string `json:"valign"`
}

// Geometry is a fully resolved composition: canvas, per camera placement
// in stacking order, and overlay text style.
type Geometry struct {
	Layout       string           `json:"layout"`
	CanvasWidth  int              `json:"canvas_width"`
	CanvasHeight int              `json:"canvas_height"`
	CenterX      int              `json:"center_x"`
	CenterY      int              `json:"center_y"`
	Scale        float64          `json:"scale"`
	Background   string           `json:"background"`
	Cameras      []CameraGeometry `json:"cameras"`
	Font         FontSpec         `json:"font"`
}

// Compose resolves the settings into concrete geometry. The event is
// optional; when given, cameras without footage in it drop out of the
// layout.
func Compose(settings *config.ComposeSettings, event *timeline.Event) (*Geometry, error) {
	builder, err := layout.Get(settings.Layout)
	if err != nil {
		return nil, err
	}
	l := builder(layout.DefaultStyle())

	if event != nil {
		l.SetEvent(event)
	}
	l.SetPerspective(settings.Perspective)
	l.SetSwapLeftRight(settings.SwapLeftRight)
	l.SetSwapFrontRear(settings.SwapFrontRear)
	l.SetSwapPillars(settings.SwapPillars)
	if settings.Background != "" {
		l.SetBackgroundColor(settings.Background)
	}

	if len(settings.ClipOrder) > 0 {
		order := make([]types.CameraPosition, 0, len(settings.ClipOrder))
		for _, name := range settings.ClipOrder {
			position, err := types.ParseCameraPosition(name)
			if err != nil {
				return nil, err
			}
			order = append(order, position)
		}
		l.SetClipOrder(order)
	}

	for name, cameraSettings := range settings.Cameras {
		position, err := types.ParseCameraPosition(name)
		if err != nil {
			return nil, err
		}
		camera := l.Camera(position)
		if cameraSettings.Include != nil {
			camera.SetInclude(*cameraSettings.Include)
		}
		if cameraSettings.Scale != "" {
			if err := camera.SetScaleSpec(cameraSettings.Scale); err != nil {
				return nil, errors.Wrapf(err, "camera %s", position)
			}
		}
		if cameraSettings.XPos != nil {
			camera.SetXPos(*cameraSettings.XPos)
		}
		if cameraSettings.YPos != nil {
			camera.SetYPos(*cameraSettings.YPos)
		}
		if cameraSettings.Mirror != nil {
			camera.SetMirror(*cameraSettings.Mirror)
		}
		if cameraSettings.Options != "" {
			camera.SetOptions(cameraSettings.Options)
		}
	}

	font := l.Font()
	if settings.Font.File != "" {
		font.SetFile(settings.Font.File)
	}
	if settings.Font.Size != nil {
		font.SetSize(*settings.Font.Size)
	}
	if settings.Font.Color != "" {
		font.SetColor(settings.Font.Color)
	}
	if settings.Font.HAlign != "" {
		font.SetHAlign(settings.Font.HAlign)
	}
	if settings.Font.VAlign != "" {
		font.SetVAlign(settings.Font.VAlign)
	}
	if settings.Font.XPos != nil {
		font.SetXPos(*settings.Font.XPos)
	}
	if settings.Font.YPos != nil {
		font.SetYPos(*settings.Font.YPos)
	}

	geometry := &Geometry{
		Layout:       l.Name(),
		CanvasWidth:  l.VideoWidth(),
		CanvasHeight: l.VideoHeight(),
		CenterX:      l.CenterXPos(),
		CenterY:      l.CenterYPos(),
		Scale:        l.Scale(),
		Background:   l.BackgroundColor(),
		Font: FontSpec{
			File:   font.File(),
			Size:   font.Size(),
			Color:  font.Color(),
			HAlign: font.HAlign(),
			VAlign: font.VAlign(),
		},
	}
	for _, position := range l.ClipOrder() {
		camera := l.Camera(slotFor(l, position))
		geometry.Cameras = append(geometry.Cameras, CameraGeometry{
			Camera:  position.String(),
			X:       camera.XPos(),
			Y:       camera.YPos(),
			Width:   camera.Width(),
			Height:  camera.Height(),
			Options: camera.Options() + camera.MirrorText(),
			Mirror:  camera.Mirror(),
			Include: camera.Include(),
		})
	}
	return geometry, nil
}

// slotFor maps a camera to the slot its footage renders in, honoring the
// swap flags.
func slotFor(l *layout.Layout, position types.CameraPosition) types.CameraPosition {
	switch position {
	case types.CameraLeft:
		if l.SwapLeftRight() {
			return types.CameraRight
		}
	case types.CameraRight:
		if l.SwapLeftRight() {
			return types.CameraLeft
		}
	case types.CameraFront:
		if l.SwapFrontRear() {
			return types.CameraRear
		}
	case types.CameraRear:
		if l.SwapFrontRear() {
			return types.CameraFront
		}
	case types.CameraLeftPillar:
		if l.SwapPillars() {
			return types.CameraRightPillar
		}
	case types.CameraRightPillar:
		if l.SwapPillars() {
			return types.CameraLeftPillar
		}
	}
	return position
}

// SupportedLayouts lists the available preset names.
func SupportedLayouts() []string {
	return layout.Supported()
}
