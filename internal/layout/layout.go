package layout

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/dashstitch/dashstitch/internal/timeline"
	"github.com/dashstitch/dashstitch/pkg/types"
)

type overrideKey struct {
	camera types.CameraPosition
	attr   attribute
}

// Layout places the six camera clips on a virtual canvas. Presets register
// override formulas per camera attribute; the canvas is the bounding box of
// whatever the formulas produce, recomputed on every read.
type Layout struct {
	name  string
	style Style

	cameras   map[types.CameraPosition]*Camera
	clipOrder []types.CameraPosition
	font      *Font

	swapLeftRight   bool
	swapFrontRear   bool
	swapPillars     bool
	perspective     bool
	titleScreenMap  bool
	backgroundColor string

	event *timeline.Event

	overrides          map[overrideKey]func() int
	fontSizeOverride   func() int
	fontHAlignOverride func() string
	fontVAlignOverride func() string
}

// New builds an unnamed layout where the cameras tile in two rows of
// three. Presets start from this and replace the formulas they care about.
func New(style Style) *Layout {
	l := &Layout{
		name:            "",
		style:           style,
		cameras:         make(map[types.CameraPosition]*Camera, len(types.AllCameraPositions)),
		clipOrder:       slices.Clone(types.AllCameraPositions),
		backgroundColor: style.BackgroundColor,
		overrides:       make(map[overrideKey]func() int),
	}
	for _, position := range types.AllCameraPositions {
		l.cameras[position] = newCamera(l, position)
	}
	l.font = newFont(l, style)

	front := l.cameras[types.CameraFront]
	rear := l.cameras[types.CameraRear]
	lp := l.cameras[types.CameraLeftPillar]
	rp := l.cameras[types.CameraRightPillar]
	left := l.cameras[types.CameraLeft]

	l.setOverride(types.CameraRear, attrXPos, func() int {
		return front.XPos() + front.Width()
	})
	l.setOverride(types.CameraLeftPillar, attrYPos, func() int {
		return max(front.YPos()+front.Height(), rear.YPos()+rear.Height())
	})
	l.setOverride(types.CameraRightPillar, attrXPos, func() int {
		return lp.XPos() + lp.Width()
	})
	l.setOverride(types.CameraRightPillar, attrYPos, func() int {
		return lp.YPos()
	})
	l.setOverride(types.CameraLeft, attrYPos, func() int {
		return max(
			front.YPos()+front.Height(),
			rear.YPos()+rear.Height(),
			lp.YPos()+lp.Height(),
			rp.YPos()+rp.Height(),
		)
	})
	l.setOverride(types.CameraRight, attrXPos, func() int {
		return left.XPos() + left.Width()
	})
	l.setOverride(types.CameraRight, attrYPos, func() int {
		return left.YPos()
	})

	return l
}

func (l *Layout) setOverride(camera types.CameraPosition, attr attribute, fn func() int) {
	l.overrides[overrideKey{camera, attr}] = fn
}

func (l *Layout) override(camera types.CameraPosition, attr attribute) func() int {
	return l.overrides[overrideKey{camera, attr}]
}

// Name is the preset name this layout was built from.
func (l *Layout) Name() string {
	return l.name
}

// Camera returns the geometry for one camera slot.
func (l *Layout) Camera(position types.CameraPosition) *Camera {
	return l.cameras[position]
}

// ClipOrder is the order clips stack on the canvas, later entries on top.
func (l *Layout) ClipOrder() []types.CameraPosition {
	return slices.Clone(l.clipOrder)
}

// SetClipOrder replaces the stacking order. Invalid and duplicate entries
// are dropped, and any camera left out keeps its canonical position at the
// end.
func (l *Layout) SetClipOrder(order []types.CameraPosition) {
	cleaned := make([]types.CameraPosition, 0, len(types.AllCameraPositions))
	for _, position := range order {
		if !position.Valid() || slices.Contains(cleaned, position) {
			continue
		}
		cleaned = append(cleaned, position)
	}
	for _, position := range types.AllCameraPositions {
		if !slices.Contains(cleaned, position) {
			cleaned = append(cleaned, position)
		}
	}
	l.clipOrder = cleaned
}

// Font is the overlay text style for this layout.
func (l *Layout) Font() *Font {
	return l.font
}

// SwapLeftRight reports whether the left and right clips trade places.
func (l *Layout) SwapLeftRight() bool {
	return l.swapLeftRight
}

// SetSwapLeftRight sets left/right swapping.
func (l *Layout) SetSwapLeftRight(value bool) {
	l.swapLeftRight = value
}

// SwapFrontRear reports whether the front and rear clips trade places.
func (l *Layout) SwapFrontRear() bool {
	return l.swapFrontRear
}

// SetSwapFrontRear sets front/rear swapping.
func (l *Layout) SetSwapFrontRear(value bool) {
	l.swapFrontRear = value
}

// SwapPillars reports whether the pillar clips trade places.
func (l *Layout) SwapPillars() bool {
	return l.swapPillars
}

// SetSwapPillars sets pillar swapping.
func (l *Layout) SetSwapPillars(value bool) {
	l.swapPillars = value
}

// Perspective reports whether side cameras render with a perspective skew.
func (l *Layout) Perspective() bool {
	return l.perspective
}

// SetPerspective toggles the perspective skew. Enabling it installs the
// skew filters on the side cameras; disabling clears them.
func (l *Layout) SetPerspective(value bool) {
	l.perspective = value
	leftFilter, rightFilter := "", ""
	if value {
		leftFilter = l.style.LeftPerspective
		rightFilter = l.style.RightPerspective
	}
	l.cameras[types.CameraLeft].SetOptions(leftFilter)
	l.cameras[types.CameraLeftPillar].SetOptions(leftFilter)
	l.cameras[types.CameraRight].SetOptions(rightFilter)
	l.cameras[types.CameraRightPillar].SetOptions(rightFilter)
}

// TitleScreenMap reports whether the title screen shows a map.
func (l *Layout) TitleScreenMap() bool {
	return l.titleScreenMap
}

// SetTitleScreenMap toggles the title screen map.
func (l *Layout) SetTitleScreenMap(value bool) {
	l.titleScreenMap = value
}

// BackgroundColor is the canvas fill color.
func (l *Layout) BackgroundColor() string {
	return l.backgroundColor
}

// SetBackgroundColor replaces the canvas fill color.
func (l *Layout) SetBackgroundColor(value string) {
	l.backgroundColor = value
}

// Event is the event this layout is rendering, if any.
func (l *Layout) Event() *timeline.Event {
	return l.event
}

// SetEvent binds the layout to an event so camera inclusion follows the
// footage actually present.
func (l *Layout) SetEvent(event *timeline.Event) {
	l.event = event
}

// Scale is the canvas area relative to a single full size clip.
func (l *Layout) Scale() float64 {
	return float64(l.VideoHeight()*l.VideoWidth()) / float64(DefaultClipWidth*DefaultClipHeight)
}

// SetScale applies one scale factor to every camera.
func (l *Layout) SetScale(value float64) {
	for _, camera := range l.cameras {
		camera.SetScale(value)
	}
}

// VideoWidth is the canvas width, the right edge of the rightmost clip.
func (l *Layout) VideoWidth() int {
	width := 0
	for _, position := range types.AllCameraPositions {
		camera := l.cameras[position]
		width = max(width, camera.XPos()+camera.Width())
	}
	return width
}

// VideoHeight is the canvas height, the bottom edge of the lowest clip.
func (l *Layout) VideoHeight() int {
	height := 0
	for _, position := range types.AllCameraPositions {
		camera := l.cameras[position]
		height = max(height, camera.YPos()+camera.Height())
	}
	return height
}

// CenterXPos is the horizontal center of the canvas.
func (l *Layout) CenterXPos() int {
	return l.VideoWidth() / 2
}

// CenterYPos is the vertical center of the canvas.
func (l *Layout) CenterYPos() int {
	return l.VideoHeight() / 2
}

// Builder constructs a layout preset from a style.
type Builder func(style Style) *Layout

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Builder)
)

// Register adds a layout preset under the given name.
func Register(name string, builder Builder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = builder
}

// Get returns the builder for a preset name.
func Get(name string) (Builder, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	builder, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("unsupported layout: %s", name)
	}
	return builder, nil
}

// Supported lists the registered preset names in sorted order.
func Supported() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
