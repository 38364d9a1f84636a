package timeline

import (
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/dashstitch/dashstitch/pkg/types"
)

// EventMetadata holds the free-form description of a recording session:
// why it was recorded and where. Fields are independently settable; no
// cross-field validation is applied.
type EventMetadata struct {
	Reason    string
	Timestamp *time.Time
	City      string
	Street    string
	Longitude *float64
	Latitude  *float64
}

// TemplateSettings carries the run context substituted into an event's
// filename template.
type TemplateSettings struct {
	MovieLayout string
}

// Matches the placeholders an event template may contain.
var templateKeyPattern = regexp.MustCompile(`\{(\w+)\}`)

// Event is one recording session: an ordered collection of clips plus
// session metadata and the set of camera identities known to exist for it.
type Event struct {
	folder   string
	isFile   bool
	filename string
	meta     *EventMetadata
	metadata *VideoMetadata
	start    *time.Time
	end      *time.Time
	duration *float64
	clips    map[time.Time]*Clip
	cameras  []types.CameraPosition
}

// NewEvent creates an event for the given session folder.
func NewEvent(folder string) *Event {
	return &Event{
		folder: folder,
		meta:   &EventMetadata{},
		clips:  make(map[time.Time]*Clip),
	}
}

// Folder is the session folder the event was discovered in.
func (e *Event) Folder() string {
	return e.folder
}

// Filename is the output filename assigned to the event, if any.
func (e *Event) Filename() string {
	return e.filename
}

// SetFilename assigns the output filename. A named event is keyed by its
// filename when added to a movie.
func (e *Event) SetFilename(value string) {
	e.filename = value
}

// IsFile reports whether the event was discovered as a single file rather
// than a folder.
func (e *Event) IsFile() bool {
	return e.isFile
}

// SetIsFile marks the event as file-backed.
func (e *Event) SetIsFile(value bool) {
	e.isFile = value
}

// EventMetadata returns the session metadata for reading and mutation.
func (e *Event) EventMetadata() *EventMetadata {
	return e.meta
}

// Metadata is the merged video metadata for the event, if any.
func (e *Event) Metadata() *VideoMetadata {
	return e.metadata
}

// SetMetadata attaches the merged video metadata. It takes priority over
// aggregation across clips.
func (e *Event) SetMetadata(value *VideoMetadata) {
	e.metadata = value
}

// Clip returns the clip grouped under the given timestamp, or nil.
func (e *Event) Clip(timestamp time.Time) *Clip {
	return e.clips[timestamp]
}

// SetClip stores the clip under the given timestamp.
func (e *Event) SetClip(timestamp time.Time, clip *Clip) {
	e.clips[timestamp] = clip
}

// Count is the number of clips in the event.
func (e *Event) Count() int {
	return len(e.clips)
}

// HasCameraClip reports whether the given camera is known to have recorded
// during this session.
func (e *Event) HasCameraClip(position types.CameraPosition) bool {
	return slices.Contains(e.cameras, position)
}

// AddCameraClip registers a camera identity as present for the session.
// Registering the same camera twice is a no-op.
func (e *Event) AddCameraClip(position types.CameraPosition) {
	if !slices.Contains(e.cameras, position) {
		e.cameras = append(e.cameras, position)
	}
}

// Sorted returns the clip timestamps ordered by each clip's resolved start.
func (e *Event) Sorted() []time.Time {
	keys := maps.Keys(e.clips)
	slices.SortStableFunc(keys, func(a, b time.Time) int {
		if cmp := compareTimes(e.clips[a].StartTimestamp(), e.clips[b].StartTimestamp()); cmp != 0 {
			return cmp
		}
		return compareTimes(a, b)
	})
	return keys
}

// ItemsSorted returns the clips ordered by resolved start timestamp.
func (e *Event) ItemsSorted() []*Clip {
	keys := e.Sorted()
	clips := make([]*Clip, 0, len(keys))
	for _, key := range keys {
		clips = append(clips, e.clips[key])
	}
	return clips
}

// FirstItem is the earliest clip, or nil for an empty event.
func (e *Event) FirstItem() *Clip {
	keys := e.Sorted()
	if len(keys) == 0 {
		return nil
	}
	return e.clips[keys[0]]
}

// Timestamp is an alias for the resolved start timestamp.
func (e *Event) Timestamp() time.Time {
	return e.StartTimestamp()
}

// StartTimestamp resolves to an explicit override, the earliest clip's
// start, or now for an empty event.
func (e *Event) StartTimestamp() time.Time {
	return resolve(e.start, len(e.clips), func() time.Time {
		return e.clips[e.Sorted()[0]].StartTimestamp()
	}, nowUTC)
}

// SetStartTimestamp pins the start timestamp.
func (e *Event) SetStartTimestamp(value time.Time) {
	e.start = &value
}

// EndTimestamp resolves to an explicit override or the latest end among the
// clips.
func (e *Event) EndTimestamp() time.Time {
	return resolve(e.end, len(e.clips), func() time.Time {
		var end time.Time
		for _, clip := range e.clips {
			if clipEnd := clip.EndTimestamp(); clipEnd.After(end) {
				end = clipEnd
			}
		}
		return end
	}, e.StartTimestamp)
}

// SetEndTimestamp pins the end timestamp.
func (e *Event) SetEndTimestamp(value time.Time) {
	e.end = &value
}

// Duration is the explicit override when set, otherwise the span between
// the resolved start and end in seconds.
func (e *Event) Duration() float64 {
	if e.duration != nil {
		return *e.duration
	}
	return e.EndTimestamp().Sub(e.StartTimestamp()).Seconds()
}

// SetDuration pins the duration in seconds.
func (e *Event) SetDuration(value float64) {
	e.duration = &value
}

// Width is the merged output width when event metadata is attached,
// otherwise the maximum width across the clips' metadata.
func (e *Event) Width() int {
	if e.metadata != nil {
		return e.metadata.Width
	}
	width := 0
	for _, clip := range e.clips {
		if md := clip.Metadata(); md != nil && md.Width > width {
			width = md.Width
		}
	}
	return width
}

// Height is the merged output height when event metadata is attached,
// otherwise the maximum height across the clips' metadata.
func (e *Event) Height() int {
	if e.metadata != nil {
		return e.metadata.Height
	}
	height := 0
	for _, clip := range e.clips {
		if md := clip.Metadata(); md != nil && md.Height > height {
			height = md.Height
		}
	}
	return height
}

// Ratio is the merged aspect ratio, defaulting to 4:3.
func (e *Event) Ratio() float64 {
	if e.Width() != 0 && e.Height() != 0 {
		return float64(e.Width()) / float64(e.Height())
	}
	return 4.0 / 3.0
}

// Template substitutes the event's placeholders into template, formatting
// every timestamp in the local zone with timestampFormat. An empty template
// returns "", signaling that no grouping was requested. An unknown
// placeholder aborts substitution with a logged warning and falls back to
// "{start} - {end}" in the same format.
func (e *Event) Template(template string, timestampFormat string, settings TemplateSettings) string {
	if template == "" {
		return ""
	}

	start := e.StartTimestamp().In(time.Local).Format(timestampFormat)
	end := e.EndTimestamp().In(time.Local).Format(timestampFormat)

	eventTimestamp := start
	if e.meta.Timestamp != nil {
		eventTimestamp = e.meta.Timestamp.In(time.Local).Format(timestampFormat)
	}

	replacements := map[string]string{
		"layout":          settings.MovieLayout,
		"start_timestamp": start,
		"end_timestamp":   end,
		"event_timestamp": eventTimestamp,
		"event_city":      e.meta.City,
		"event_street":    e.meta.Street,
		"event_reason":    e.meta.Reason,
		"event_latitude":  formatCoordinate(e.meta.Latitude),
		"event_longitude": formatCoordinate(e.meta.Longitude),
	}

	valid := true
	result := templateKeyPattern.ReplaceAllStringFunc(template, func(match string) string {
		key := strings.Trim(match, "{}")
		if value, ok := replacements[key]; ok {
			return value
		}
		log.Printf("Bad string format for merge template: invalid variable %q", key)
		valid = false
		return match
	})

	if !valid || result == "" {
		result = start + " - " + end
	}
	return result
}

func formatCoordinate(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'g', -1, 64)
}
