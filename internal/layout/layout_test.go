package layout

import (
	"testing"

	"github.com/dashstitch/dashstitch/pkg/types"
)

// position and size expected for one camera.
type placement struct {
	x, y int
}

type size struct {
	width, height int
}

type layoutCase struct {
	name       string
	exclude    []types.CameraPosition
	scales     map[types.CameraPosition]float64
	positions  map[types.CameraPosition]placement
	dimensions map[types.CameraPosition]size
	canvas     size
	scale      float64
}

func verifyLayout(t *testing.T, l *Layout, tc layoutCase) {
	t.Helper()
	for _, position := range tc.exclude {
		l.Camera(position).SetInclude(false)
	}
	for position, scale := range tc.scales {
		l.Camera(position).SetScale(scale)
	}
	for position, want := range tc.positions {
		camera := l.Camera(position)
		if got := camera.XPos(); got != want.x {
			t.Errorf("%s xpos = %d, want %d", position, got, want.x)
		}
		if got := camera.YPos(); got != want.y {
			t.Errorf("%s ypos = %d, want %d", position, got, want.y)
		}
	}
	for position, want := range tc.dimensions {
		camera := l.Camera(position)
		if got := camera.Width(); got != want.width {
			t.Errorf("%s width = %d, want %d", position, got, want.width)
		}
		if got := camera.Height(); got != want.height {
			t.Errorf("%s height = %d, want %d", position, got, want.height)
		}
	}
	if got := l.VideoWidth(); got != tc.canvas.width {
		t.Errorf("video width = %d, want %d", got, tc.canvas.width)
	}
	if got := l.VideoHeight(); got != tc.canvas.height {
		t.Errorf("video height = %d, want %d", got, tc.canvas.height)
	}
	if tc.scale != 0 {
		if got := l.Scale(); got != tc.scale {
			t.Errorf("scale = %v, want %v", got, tc.scale)
		}
	}
}

func TestCameraDefaults(t *testing.T) {
	l := New(DefaultStyle())
	camera := l.Camera(types.CameraFront)

	if got := camera.Position(); got != types.CameraFront {
		t.Errorf("position = %s, want front", got)
	}
	if !camera.Include() {
		t.Error("new camera should be included")
	}
	if got := camera.WidthFixed(); got != 1280 {
		t.Errorf("width = %d, want 1280", got)
	}
	if got := camera.HeightFixed(); got != 960 {
		t.Errorf("height = %d, want 960", got)
	}
	if scale, ok := camera.Scale(); !ok || scale != 1 {
		t.Errorf("scale = %v, %v, want 1, true", scale, ok)
	}
	if got := camera.Options(); got != "" {
		t.Errorf("options = %q, want empty", got)
	}
}

func TestCameraSetters(t *testing.T) {
	l := New(DefaultStyle())
	camera := l.Camera(types.CameraRear)

	camera.SetScale(0.5)
	if got := camera.Width(); got != 640 {
		t.Errorf("width after scale 0.5 = %d, want 640", got)
	}
	if got := camera.Height(); got != 480 {
		t.Errorf("height after scale 0.5 = %d, want 480", got)
	}

	camera.SetScale(1)
	camera.SetWidth(320)
	camera.SetHeight(240)
	if got := camera.Width(); got != 320 {
		t.Errorf("width = %d, want 320", got)
	}
	if got := camera.Height(); got != 240 {
		t.Errorf("height = %d, want 240", got)
	}

	camera.SetXPos(100)
	if got := camera.XPos(); got != 100 {
		t.Errorf("xpos = %d, want 100", got)
	}
	camera.ResetXPos()
	camera.SetYPos(100)
	if got := camera.YPos(); got != 100 {
		t.Errorf("ypos = %d, want 100", got)
	}
	camera.ResetYPos()
}

func TestCameraExcluded(t *testing.T) {
	l := New(DefaultStyle())
	camera := l.Camera(types.CameraFront)
	camera.SetInclude(false)
	camera.SetXPos(100)
	camera.SetYPos(100)

	if camera.Include() {
		t.Error("camera should be excluded")
	}
	if got := camera.Width(); got != 0 {
		t.Errorf("excluded width = %d, want 0", got)
	}
	if got := camera.Height(); got != 0 {
		t.Errorf("excluded height = %d, want 0", got)
	}
	if got := camera.XPos(); got != 0 {
		t.Errorf("excluded xpos = %d, want 0", got)
	}
	if got := camera.YPos(); got != 0 {
		t.Errorf("excluded ypos = %d, want 0", got)
	}
}

func TestCameraOverride(t *testing.T) {
	l := New(DefaultStyle())
	camera := l.Camera(types.CameraFront)
	l.setOverride(types.CameraFront, attrWidth, func() int { return 2560 })
	l.setOverride(types.CameraFront, attrHeight, func() int { return 1440 })
	l.setOverride(types.CameraFront, attrXPos, func() int { return 320 })
	l.setOverride(types.CameraFront, attrYPos, func() int { return 240 })

	camera.SetInclude(false)
	if camera.Width() != 0 || camera.Height() != 0 || camera.XPos() != 0 || camera.YPos() != 0 {
		t.Error("excluded camera should zero out override values")
	}

	camera.SetInclude(true)
	if got := camera.Width(); got != 2560 {
		t.Errorf("width = %d, want 2560", got)
	}
	if got := camera.Height(); got != 1440 {
		t.Errorf("height = %d, want 1440", got)
	}
	if got := camera.XPos(); got != 320 {
		t.Errorf("xpos = %d, want 320", got)
	}
	if got := camera.YPos(); got != 240 {
		t.Errorf("ypos = %d, want 240", got)
	}
}

func TestCameraScaleSpec(t *testing.T) {
	tests := []struct {
		spec    string
		wantErr bool
		width   int
		height  int
		scale   float64
	}{
		{spec: "0.5", scale: 0.5, width: 1280, height: 960},
		{spec: "2", scale: 2, width: 1280, height: 960},
		{spec: "1920x1080", scale: 1, width: 1920, height: 1080},
		{spec: "1920x", wantErr: true},
		{spec: "x1080", wantErr: true},
		{spec: "x", wantErr: true},
		{spec: "widexhigh", wantErr: true},
		{spec: "abc", wantErr: true},
		{spec: "1x2x3", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			l := New(DefaultStyle())
			camera := l.Camera(types.CameraFront)
			err := camera.SetScaleSpec(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("SetScaleSpec(%q) succeeded, want error", tt.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("SetScaleSpec(%q) failed: %v", tt.spec, err)
			}
			if got := camera.WidthFixed(); got != tt.width {
				t.Errorf("width = %d, want %d", got, tt.width)
			}
			if got := camera.HeightFixed(); got != tt.height {
				t.Errorf("height = %d, want %d", got, tt.height)
			}
			if scale, ok := camera.Scale(); !ok || scale != tt.scale {
				t.Errorf("scale = %v, %v, want %v, true", scale, ok, tt.scale)
			}
		})
	}
}

func TestCameraZeroScaleFallsBack(t *testing.T) {
	l := New(DefaultStyle())
	camera := l.Camera(types.CameraFront)
	if err := camera.SetScaleSpec("0"); err != nil {
		t.Fatalf("SetScaleSpec(%q) failed: %v", "0", err)
	}
	if got := camera.Width(); got != 1280 {
		t.Errorf("width = %d, want 1280", got)
	}
	if got := camera.Height(); got != 960 {
		t.Errorf("height = %d, want 960", got)
	}
}

func TestLayoutDefaults(t *testing.T) {
	l := New(DefaultStyle())

	for _, position := range types.AllCameraPositions {
		if l.Camera(position) == nil {
			t.Fatalf("camera %s missing", position)
		}
	}

	wantOrder := []types.CameraPosition{
		types.CameraLeft, types.CameraRight, types.CameraFront,
		types.CameraRear, types.CameraLeftPillar, types.CameraRightPillar,
	}
	order := l.ClipOrder()
	if len(order) != len(wantOrder) {
		t.Fatalf("clip order length = %d, want %d", len(order), len(wantOrder))
	}
	for i, position := range wantOrder {
		if order[i] != position {
			t.Errorf("clip order[%d] = %s, want %s", i, order[i], position)
		}
	}

	if got := l.Font().HAlign(); got != "(w/2-text_w/2)" {
		t.Errorf("font halign = %q, want centered", got)
	}
	if got := l.Font().VAlign(); got != "(h-(text_h)-10)" {
		t.Errorf("font valign = %q, want bottom", got)
	}

	if l.SwapLeftRight() || l.SwapFrontRear() || l.Perspective() {
		t.Error("swap and perspective flags should default to false")
	}

	if got := l.VideoWidth(); got != 2560 {
		t.Errorf("video width = %d, want 2560", got)
	}
	if got := l.VideoHeight(); got != 2880 {
		t.Errorf("video height = %d, want 2880", got)
	}
}

func TestLayoutClipOrder(t *testing.T) {
	l := New(DefaultStyle())

	// Emptying the order restores every camera.
	l.SetClipOrder(nil)
	if got := len(l.ClipOrder()); got != len(types.AllCameraPositions) {
		t.Errorf("clip order length = %d, want %d", got, len(types.AllCameraPositions))
	}

	// Invalid entries are dropped, missing cameras appended.
	l.SetClipOrder([]types.CameraPosition{"test"})
	order := l.ClipOrder()
	if got := len(order); got != len(types.AllCameraPositions) {
		t.Fatalf("clip order length = %d, want %d", got, len(types.AllCameraPositions))
	}
	for _, position := range order {
		if !position.Valid() {
			t.Errorf("invalid position %q kept in clip order", position)
		}
	}

	// A full valid order is kept as given.
	want := []types.CameraPosition{
		types.CameraLeftPillar, types.CameraLeft, types.CameraFront,
		types.CameraRightPillar, types.CameraRear, types.CameraRight,
	}
	l.SetClipOrder(want)
	order = l.ClipOrder()
	for i, position := range want {
		if order[i] != position {
			t.Errorf("clip order[%d] = %s, want %s", i, order[i], position)
		}
	}

	// Duplicates collapse to the first occurrence.
	l.SetClipOrder([]types.CameraPosition{types.CameraFront, types.CameraFront})
	order = l.ClipOrder()
	if order[0] != types.CameraFront {
		t.Errorf("clip order[0] = %s, want front", order[0])
	}
	if got := len(order); got != len(types.AllCameraPositions) {
		t.Errorf("clip order length = %d, want %d", got, len(types.AllCameraPositions))
	}
}

func TestLayoutScaleAndPerspective(t *testing.T) {
	l := New(DefaultStyle())

	l.SetScale(0.5)
	for _, position := range types.AllCameraPositions {
		if scale, ok := l.Camera(position).Scale(); !ok || scale != 0.5 {
			t.Errorf("%s scale = %v, %v, want 0.5, true", position, scale, ok)
		}
	}
	if got := l.VideoWidth(); got != 1280 {
		t.Errorf("video width = %d, want 1280", got)
	}
	if got := l.VideoHeight(); got != 1440 {
		t.Errorf("video height = %d, want 1440", got)
	}
	if got := l.CenterXPos(); got != 640 {
		t.Errorf("center x = %d, want 640", got)
	}
	if got := l.CenterYPos(); got != 720 {
		t.Errorf("center y = %d, want 720", got)
	}
	if got := l.Scale(); got != 1.5 {
		t.Errorf("scale = %v, want 1.5", got)
	}

	style := DefaultStyle()
	l.SetPerspective(true)
	if !l.Perspective() {
		t.Error("perspective should be enabled")
	}
	for _, position := range []types.CameraPosition{types.CameraLeft, types.CameraLeftPillar} {
		if got := l.Camera(position).Options(); got != style.LeftPerspective {
			t.Errorf("%s options = %q, want left perspective filter", position, got)
		}
	}
	for _, position := range []types.CameraPosition{types.CameraRight, types.CameraRightPillar} {
		if got := l.Camera(position).Options(); got != style.RightPerspective {
			t.Errorf("%s options = %q, want right perspective filter", position, got)
		}
	}

	// Side cameras grow 3/2 taller, stretching the canvas.
	if got := l.VideoWidth(); got != 1280 {
		t.Errorf("video width with perspective = %d, want 1280", got)
	}
	if got := l.VideoHeight(); got != 1920 {
		t.Errorf("video height with perspective = %d, want 1920", got)
	}

	l.SetPerspective(false)
	if got := l.Camera(types.CameraLeft).Options(); got != "" {
		t.Errorf("options after disabling perspective = %q, want empty", got)
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{
		"cross", "diamond", "fullscreen", "horizontal", "mosaic", "widescreen",
	} {
		builder, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q) failed: %v", name, err)
		}
		l := builder(DefaultStyle())
		if got := l.Name(); got != name {
			t.Errorf("layout name = %q, want %q", got, name)
		}
	}

	if _, err := Get("bogus"); err == nil {
		t.Error("Get(bogus) should fail")
	}

	supported := Supported()
	if len(supported) < 6 {
		t.Errorf("Supported() returned %d presets, want at least 6", len(supported))
	}
	for i := 1; i < len(supported); i++ {
		if supported[i-1] >= supported[i] {
			t.Errorf("Supported() not sorted: %q before %q", supported[i-1], supported[i])
		}
	}
}
