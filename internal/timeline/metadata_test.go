package timeline

import "testing"

func TestVideoMetadataRatio(t *testing.T) {
	md := NewVideoMetadata("x.mp4")
	if got := md.Ratio(); got != 4.0/3.0 {
		t.Errorf("ratio without dimensions = %v, want 4/3", got)
	}

	md.Width = 1920
	md.Height = 1080
	if got := md.Ratio(); got != 1920.0/1080.0 {
		t.Errorf("ratio = %v, want 1920/1080", got)
	}
}

func TestVideoMetadataChapterDedupe(t *testing.T) {
	md := NewVideoMetadata("x.mp4")
	chapter := &Chapter{Start: 0, End: 1, Title: "c"}
	md.AddChapter(chapter)
	md.AddChapter(chapter)
	if got := len(md.Chapters()); got != 1 {
		t.Errorf("chapters = %d, want 1", got)
	}

	// A distinct chapter with the same content is a different mark.
	md.AddChapter(&Chapter{Start: 0, End: 1, Title: "c"})
	if got := len(md.Chapters()); got != 2 {
		t.Errorf("chapters = %d, want 2", got)
	}
}

func TestVideoMetadataInclude(t *testing.T) {
	// The include getter reports true regardless of the stored flag.
	md := NewVideoMetadata("x.mp4")
	if !md.Include() {
		t.Error("include = false, want true")
	}
	md.SetInclude(false)
	if !md.Include() {
		t.Error("include after SetInclude(false) = false, want true")
	}
}
