package timeline

import (
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/dashstitch/dashstitch/pkg/types"
)

// CameraClip is one camera's physical file for one recording instant.
type CameraClip struct {
	Filename  string
	Timestamp time.Time
	Duration  float64 // in seconds
	Include   bool
	Metadata  *VideoMetadata
}

// StartTimestamp is the recording start of the file.
func (c *CameraClip) StartTimestamp() time.Time {
	return c.Timestamp
}

// EndTimestamp is the recording start plus the file duration.
func (c *CameraClip) EndTimestamp() time.Time {
	return c.Timestamp.Add(secondsDuration(c.Duration))
}

// Width is the probed width, 0 when no metadata is attached.
func (c *CameraClip) Width() int {
	if c.Metadata != nil {
		return c.Metadata.Width
	}
	return 0
}

// Height is the probed height, 0 when no metadata is attached.
func (c *CameraClip) Height() int {
	if c.Metadata != nil {
		return c.Metadata.Height
	}
	return 0
}

// Ratio is the aspect ratio of the file, defaulting to 4:3.
func (c *CameraClip) Ratio() float64 {
	if c.Width() != 0 && c.Height() != 0 {
		return float64(c.Width()) / float64(c.Height())
	}
	return 4.0 / 3.0
}

// Clip is the set of camera files recorded at one timestamp.
type Clip struct {
	timestamp time.Time
	filename  string
	start     *time.Time
	end       *time.Time
	duration  *float64
	cameras   map[types.CameraPosition]*CameraClip
	metadata  *VideoMetadata
}

// NewClip creates a clip for the given discovery timestamp.
func NewClip(timestamp time.Time) *Clip {
	return &Clip{
		timestamp: timestamp,
		cameras:   make(map[types.CameraPosition]*CameraClip),
	}
}

// Timestamp is the discovery timestamp the clip was grouped under.
func (c *Clip) Timestamp() time.Time {
	return c.timestamp
}

// Filename is the output filename assigned to the clip, if any.
func (c *Clip) Filename() string {
	return c.filename
}

// SetFilename assigns the output filename.
func (c *Clip) SetFilename(value string) {
	c.filename = value
}

// Camera returns the camera clip recorded by the given camera, or nil.
func (c *Clip) Camera(position types.CameraPosition) *CameraClip {
	return c.cameras[position]
}

// SetCamera stores the camera clip for the given camera.
func (c *Clip) SetCamera(position types.CameraPosition, clip *CameraClip) {
	c.cameras[position] = clip
}

// Count is the number of camera clips recorded at this instant.
func (c *Clip) Count() int {
	return len(c.cameras)
}

// Sorted returns the camera names ordered by their recording start.
func (c *Clip) Sorted() []types.CameraPosition {
	positions := maps.Keys(c.cameras)
	slices.SortStableFunc(positions, func(a, b types.CameraPosition) int {
		if cmp := compareTimes(c.cameras[a].StartTimestamp(), c.cameras[b].StartTimestamp()); cmp != 0 {
			return cmp
		}
		return strings.Compare(string(a), string(b))
	})
	return positions
}

// StartTimestamp resolves to an explicit override, the earliest included
// camera's start, the clip's own timestamp when no camera is included, or
// now for an empty clip.
func (c *Clip) StartTimestamp() time.Time {
	return resolve(c.start, len(c.cameras), func() time.Time {
		for _, position := range c.Sorted() {
			if camera := c.cameras[position]; camera.Include {
				return camera.StartTimestamp()
			}
		}
		return c.timestamp
	}, nowUTC)
}

// SetStartTimestamp pins the start timestamp; child additions no longer
// affect it.
func (c *Clip) SetStartTimestamp(value time.Time) {
	c.start = &value
}

// EndTimestamp resolves to an explicit override or the latest end among the
// included cameras.
func (c *Clip) EndTimestamp() time.Time {
	return resolve(c.end, len(c.cameras), func() time.Time {
		end := c.StartTimestamp()
		for _, camera := range c.cameras {
			if camera.Include && camera.EndTimestamp().After(end) {
				end = camera.EndTimestamp()
			}
		}
		return end
	}, c.StartTimestamp)
}

// SetEndTimestamp pins the end timestamp.
func (c *Clip) SetEndTimestamp(value time.Time) {
	c.end = &value
}

// Duration is the explicit override when set, otherwise the span between
// the resolved start and end in seconds.
func (c *Clip) Duration() float64 {
	if c.duration != nil {
		return *c.duration
	}
	return c.EndTimestamp().Sub(c.StartTimestamp()).Seconds()
}

// SetDuration pins the duration in seconds.
func (c *Clip) SetDuration(value float64) {
	c.duration = &value
}

// Metadata is the merged video metadata for the clip, if any.
func (c *Clip) Metadata() *VideoMetadata {
	return c.metadata
}

// SetMetadata attaches the merged video metadata.
func (c *Clip) SetMetadata(value *VideoMetadata) {
	c.metadata = value
}

// Width is the merged output width, 0 until metadata is attached.
func (c *Clip) Width() int {
	if c.metadata != nil {
		return c.metadata.Width
	}
	return 0
}

// Height is the merged output height, 0 until metadata is attached.
func (c *Clip) Height() int {
	if c.metadata != nil {
		return c.metadata.Height
	}
	return 0
}

// Ratio is the merged aspect ratio, defaulting to 4:3.
func (c *Clip) Ratio() float64 {
	if c.Width() != 0 && c.Height() != 0 {
		return float64(c.Width()) / float64(c.Height())
	}
	return 4.0 / 3.0
}
