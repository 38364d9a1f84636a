package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/dashstitch/dashstitch/pkg/types"
)

// CameraSettings adjusts one camera slot. Pointer fields distinguish
// "not set" from an explicit zero value.
type CameraSettings struct {
	Include *bool  `yaml:"include,omitempty"`
	Scale   string `yaml:"scale,omitempty"`
	XPos    *int   `yaml:"x_pos,omitempty"`
	YPos    *int   `yaml:"y_pos,omitempty"`
	Mirror  *bool  `yaml:"mirror,omitempty"`
	Options string `yaml:"options,omitempty"`
}

// FontSettings adjusts the overlay text.
type FontSettings struct {
	File   string `yaml:"file,omitempty"`
	Size   *int   `yaml:"size,omitempty"`
	Color  string `yaml:"color,omitempty"`
	HAlign string `yaml:"halign,omitempty"`
	VAlign string `yaml:"valign,omitempty"`
	XPos   *int   `yaml:"x_pos,omitempty"`
	YPos   *int   `yaml:"y_pos,omitempty"`
}

// ComposeSettings is the full composition request: which preset to build
// and every adjustment applied on top of it.
type ComposeSettings struct {
	Layout          string                    `yaml:"layout"`
	Perspective     bool                      `yaml:"perspective,omitempty"`
	SwapLeftRight   bool                      `yaml:"swap_left_right,omitempty"`
	SwapFrontRear   bool                      `yaml:"swap_front_rear,omitempty"`
	SwapPillars     bool                      `yaml:"swap_pillars,omitempty"`
	ClipOrder       []string                  `yaml:"clip_order,omitempty"`
	Background      string                    `yaml:"background,omitempty"`
	Cameras         map[string]CameraSettings `yaml:"cameras,omitempty"`
	Font            FontSettings              `yaml:"font,omitempty"`
	Template        string                    `yaml:"template,omitempty"`
	TimestampFormat string                    `yaml:"timestamp_format,omitempty"`
}

// Default returns the settings used when no config file is supplied.
func Default() *ComposeSettings {
	return &ComposeSettings{
		Layout:          "fullscreen",
		TimestampFormat: "2006-01-02 15:04:05",
	}
}

// Parse reads compose settings from YAML, filling in defaults for fields
// left out.
func Parse(data []byte) (*ComposeSettings, error) {
	settings := Default()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	settings.normalize()
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Load reads compose settings from a YAML file.
func Load(path string) (*ComposeSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}
	return Parse(data)
}

func (s *ComposeSettings) normalize() {
	s.Layout = strings.ToLower(strings.TrimSpace(s.Layout))
	if s.Layout == "" {
		s.Layout = "fullscreen"
	}
	if s.TimestampFormat == "" {
		s.TimestampFormat = "2006-01-02 15:04:05"
	}
	for i, name := range s.ClipOrder {
		s.ClipOrder[i] = strings.ToLower(strings.TrimSpace(name))
	}
	if len(s.Cameras) > 0 {
		cameras := make(map[string]CameraSettings, len(s.Cameras))
		for name, camera := range s.Cameras {
			cameras[strings.ToLower(strings.TrimSpace(name))] = camera
		}
		s.Cameras = cameras
	}
}

// Validate rejects settings that reference unknown cameras. The layout
// name itself is checked at build time against the registered presets.
func (s *ComposeSettings) Validate() error {
	for name := range s.Cameras {
		if _, err := types.ParseCameraPosition(name); err != nil {
			return errors.Wrap(err, "invalid camera in config")
		}
	}
	for _, name := range s.ClipOrder {
		if _, err := types.ParseCameraPosition(name); err != nil {
			return errors.Wrap(err, "invalid clip order entry in config")
		}
	}
	return nil
}
