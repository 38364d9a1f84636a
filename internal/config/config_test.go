package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	settings := Default()
	if got := settings.Layout; got != "fullscreen" {
		t.Errorf("layout = %q, want fullscreen", got)
	}
	if got := settings.TimestampFormat; got != "2006-01-02 15:04:05" {
		t.Errorf("timestamp format = %q", got)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
layout: Mosaic
perspective: true
swap_left_right: true
clip_order: [FRONT, rear]
cameras:
  Front:
    scale: 1920x1080
  left:
    include: false
    mirror: true
font:
  size: 32
  halign: LEFT
template: "{layout} {start_timestamp}"
`)
	settings, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := settings.Layout; got != "mosaic" {
		t.Errorf("layout = %q, want mosaic", got)
	}
	if !settings.Perspective || !settings.SwapLeftRight {
		t.Error("boolean settings not parsed")
	}
	if len(settings.ClipOrder) != 2 || settings.ClipOrder[0] != "front" {
		t.Errorf("clip order = %v, want lowercased [front rear]", settings.ClipOrder)
	}
	front, ok := settings.Cameras["front"]
	if !ok {
		t.Fatal("front camera settings missing after normalization")
	}
	if got := front.Scale; got != "1920x1080" {
		t.Errorf("front scale = %q, want 1920x1080", got)
	}
	left := settings.Cameras["left"]
	if left.Include == nil || *left.Include {
		t.Error("left include should parse as false")
	}
	if left.Mirror == nil || !*left.Mirror {
		t.Error("left mirror should parse as true")
	}
	if settings.Font.Size == nil || *settings.Font.Size != 32 {
		t.Error("font size not parsed")
	}
	if got := settings.Template; got != "{layout} {start_timestamp}" {
		t.Errorf("template = %q", got)
	}
}

func TestParseEmptyGetsDefaults(t *testing.T) {
	settings, err := Parse([]byte("{}"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := settings.Layout; got != "fullscreen" {
		t.Errorf("layout = %q, want fullscreen default", got)
	}
	if got := settings.TimestampFormat; got == "" {
		t.Error("timestamp format default missing")
	}
}

func TestParseRejectsUnknownCamera(t *testing.T) {
	if _, err := Parse([]byte("cameras:\n  dashboard: {}\n")); err == nil {
		t.Error("unknown camera should fail validation")
	}
	if _, err := Parse([]byte("clip_order: [front, dashboard]\n")); err == nil {
		t.Error("unknown clip order entry should fail validation")
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("layout: [unterminated")); err == nil {
		t.Error("malformed yaml should fail")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compose.yaml")
	if err := os.WriteFile(path, []byte("layout: diamond\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := settings.Layout; got != "diamond" {
		t.Errorf("layout = %q, want diamond", got)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}
