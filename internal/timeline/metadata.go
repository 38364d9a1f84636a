package timeline

import "time"

// Chapter marks a titled span inside a media file.
type Chapter struct {
	Start float64
	End   float64
	Title string
}

// VideoMetadata describes one physical media file as reported by a probe.
type VideoMetadata struct {
	Filename  string
	Timestamp time.Time
	Duration  float64 // in seconds
	Title     string
	Width     int
	Height    int
	Codec     string
	FPS       float64
	DAR       string

	include  bool
	chapters []*Chapter
}

// NewVideoMetadata creates metadata for the given file.
func NewVideoMetadata(filename string) *VideoMetadata {
	return &VideoMetadata{Filename: filename}
}

// Include reports whether the file participates in merges. The stored flag
// is kept for callers that set it, but the getter currently always reports
// true.
func (m *VideoMetadata) Include() bool {
	return m.include || true
}

// SetInclude stores the include flag.
func (m *VideoMetadata) SetInclude(value bool) {
	m.include = value
}

// Ratio is the aspect ratio of the file, defaulting to 4:3 when either
// dimension is unknown.
func (m *VideoMetadata) Ratio() float64 {
	if m.Width != 0 && m.Height != 0 {
		return float64(m.Width) / float64(m.Height)
	}
	return 4.0 / 3.0
}

// Chapters returns the chapter marks in append order.
func (m *VideoMetadata) Chapters() []*Chapter {
	return m.chapters
}

// SetChapters replaces the chapter list.
func (m *VideoMetadata) SetChapters(chapters []*Chapter) {
	m.chapters = chapters
}

// AddChapter appends a chapter mark. A chapter already present by identity
// is not duplicated.
func (m *VideoMetadata) AddChapter(chapter *Chapter) {
	for _, existing := range m.chapters {
		if existing == chapter {
			return
		}
	}
	m.chapters = append(m.chapters, chapter)
}
