package types

import "fmt"

// CameraPosition identifies one of the six fixed camera feeds.
type CameraPosition string

const (
	CameraFront       CameraPosition = "front"
	CameraRear        CameraPosition = "rear"
	CameraLeft        CameraPosition = "left"
	CameraRight       CameraPosition = "right"
	CameraLeftPillar  CameraPosition = "left_pillar"
	CameraRightPillar CameraPosition = "right_pillar"
)

// AllCameraPositions lists every camera position in canonical clip order.
var AllCameraPositions = []CameraPosition{
	CameraLeft,
	CameraRight,
	CameraFront,
	CameraRear,
	CameraLeftPillar,
	CameraRightPillar,
}

// Valid reports whether p is one of the six known camera positions.
func (p CameraPosition) Valid() bool {
	switch p {
	case CameraFront, CameraRear, CameraLeft, CameraRight,
		CameraLeftPillar, CameraRightPillar:
		return true
	}
	return false
}

func (p CameraPosition) String() string {
	return string(p)
}

// ParseCameraPosition converts a user supplied camera name into a
// CameraPosition.
func ParseCameraPosition(name string) (CameraPosition, error) {
	p := CameraPosition(name)
	if !p.Valid() {
		return "", fmt.Errorf("unknown camera position: %s", name)
	}
	return p, nil
}

// Dimensions represents width and height of a video.
type Dimensions struct {
	Width  int
	Height int
}

// Rect is a positioned rectangle on the output canvas.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}
