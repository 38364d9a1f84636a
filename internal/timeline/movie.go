package timeline

import (
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Movie is the final merge unit: an ordered collection of events.
type Movie struct {
	filename string
	start    *time.Time
	end      *time.Time
	duration *float64
	events   map[string]*Event
	metadata *VideoMetadata
}

// NewMovie creates an empty movie.
func NewMovie() *Movie {
	return &Movie{events: make(map[string]*Event)}
}

// Filename is the output filename assigned to the movie, if any.
func (m *Movie) Filename() string {
	return m.filename
}

// SetFilename assigns the output filename.
func (m *Movie) SetFilename(value string) {
	m.filename = value
}

// Event returns the event stored under the given key, or nil.
func (m *Movie) Event(key string) *Event {
	return m.events[key]
}

// SetEvent stores an event, keyed by its filename when one is set and its
// folder otherwise.
func (m *Movie) SetEvent(event *Event) {
	key := event.Folder()
	if event.Filename() != "" {
		key = event.Filename()
	}
	m.events[key] = event
}

// Count is the number of events in the movie.
func (m *Movie) Count() int {
	return len(m.events)
}

// CountClips is the total number of clips across all events.
func (m *Movie) CountClips() int {
	count := 0
	for _, event := range m.events {
		count += event.Count()
	}
	return count
}

// Sorted returns the event keys ordered by each event's resolved start.
func (m *Movie) Sorted() []string {
	keys := maps.Keys(m.events)
	slices.SortStableFunc(keys, func(a, b string) int {
		if cmp := compareTimes(m.events[a].StartTimestamp(), m.events[b].StartTimestamp()); cmp != 0 {
			return cmp
		}
		return strings.Compare(a, b)
	})
	return keys
}

// ItemsSorted returns the events ordered by resolved start timestamp.
func (m *Movie) ItemsSorted() []*Event {
	keys := m.Sorted()
	events := make([]*Event, 0, len(keys))
	for _, key := range keys {
		events = append(events, m.events[key])
	}
	return events
}

// FirstItem is the earliest event, or nil for an empty movie.
func (m *Movie) FirstItem() *Event {
	keys := m.Sorted()
	if len(keys) == 0 {
		return nil
	}
	return m.events[keys[0]]
}

// StartTimestamp resolves to an explicit override, the earliest event's
// start, or now for an empty movie.
func (m *Movie) StartTimestamp() time.Time {
	return resolve(m.start, len(m.events), func() time.Time {
		return m.events[m.Sorted()[0]].StartTimestamp()
	}, nowUTC)
}

// SetStartTimestamp pins the start timestamp.
func (m *Movie) SetStartTimestamp(value time.Time) {
	m.start = &value
}

// EndTimestamp resolves to an explicit override or the latest end among the
// events.
func (m *Movie) EndTimestamp() time.Time {
	return resolve(m.end, len(m.events), func() time.Time {
		var end time.Time
		for _, event := range m.events {
			if eventEnd := event.EndTimestamp(); eventEnd.After(end) {
				end = eventEnd
			}
		}
		return end
	}, m.StartTimestamp)
}

// SetEndTimestamp pins the end timestamp.
func (m *Movie) SetEndTimestamp(value time.Time) {
	m.end = &value
}

// Duration is the explicit override when set, otherwise the span between
// the resolved start and end in seconds.
func (m *Movie) Duration() float64 {
	if m.duration != nil {
		return *m.duration
	}
	return m.EndTimestamp().Sub(m.StartTimestamp()).Seconds()
}

// SetDuration pins the duration in seconds.
func (m *Movie) SetDuration(value float64) {
	m.duration = &value
}

// Metadata is the merged video metadata for the movie, if any.
func (m *Movie) Metadata() *VideoMetadata {
	return m.metadata
}

// SetMetadata attaches the merged video metadata.
func (m *Movie) SetMetadata(value *VideoMetadata) {
	m.metadata = value
}

// Width is the merged output width when movie metadata is attached,
// otherwise the maximum width across the events' metadata.
func (m *Movie) Width() int {
	if m.metadata != nil {
		return m.metadata.Width
	}
	width := 0
	for _, event := range m.events {
		if md := event.Metadata(); md != nil && md.Width > width {
			width = md.Width
		}
	}
	return width
}

// Height is the merged output height when movie metadata is attached,
// otherwise the maximum height across the events' metadata.
func (m *Movie) Height() int {
	if m.metadata != nil {
		return m.metadata.Height
	}
	height := 0
	for _, event := range m.events {
		if md := event.Metadata(); md != nil && md.Height > height {
			height = md.Height
		}
	}
	return height
}

// Ratio is the merged aspect ratio, defaulting to 4:3.
func (m *Movie) Ratio() float64 {
	if m.Width() != 0 && m.Height() != 0 {
		return float64(m.Width()) / float64(m.Height())
	}
	return 4.0 / 3.0
}
