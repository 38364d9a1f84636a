package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dashstitch/dashstitch/internal/config"
	"github.com/dashstitch/dashstitch/pkg/composer"
)

var (
	rootCmd = &cobra.Command{
		Use:   "dashstitch",
		Short: "A layout engine for multi-camera dashcam compositions",
		Long: `dashstitch computes the geometry for stitching multi-camera dashcam
footage into a single frame: which camera goes where, at what size, and
how large the resulting canvas is.

Examples:
  # Show the default fullscreen geometry
  dashstitch layout

  # Mosaic layout with the repeater cameras excluded, as JSON
  dashstitch layout -l mosaic --exclude left --exclude right --json`,
	}

	layoutCmd = &cobra.Command{
		Use:   "layout",
		Short: "Compute the composition geometry for a layout",
		Long: fmt.Sprintf(`Compute the canvas size and per-camera placement for a layout preset.

Supported layouts:
%s
Example:
  dashstitch layout -l diamond --scale front=1920x1080 --perspective`,
			formatSupportedLayouts()),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			layoutName, _ := cmd.Flags().GetString("layout")
			exclude, _ := cmd.Flags().GetStringSlice("exclude")
			scales, _ := cmd.Flags().GetStringSlice("scale")
			perspective, _ := cmd.Flags().GetBool("perspective")
			asJSON, _ := cmd.Flags().GetBool("json")
			verbose, _ := cmd.Flags().GetBool("verbose")

			settings := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				settings = loaded
			}
			if cmd.Flags().Changed("layout") {
				settings.Layout = layoutName
			}
			if cmd.Flags().Changed("perspective") {
				settings.Perspective = perspective
			}
			if settings.Cameras == nil {
				settings.Cameras = make(map[string]config.CameraSettings)
			}
			for _, name := range exclude {
				camera := settings.Cameras[name]
				include := false
				camera.Include = &include
				settings.Cameras[name] = camera
			}
			for _, spec := range scales {
				name, scale, ok := strings.Cut(spec, "=")
				if !ok {
					return fmt.Errorf("invalid scale %q: expected CAMERA=SCALE", spec)
				}
				camera := settings.Cameras[name]
				camera.Scale = scale
				settings.Cameras[name] = camera
			}

			if verbose {
				log.Printf("Computing %s layout geometry", settings.Layout)
			}

			geometry, err := composer.Compose(settings, nil)
			if err != nil {
				return err
			}

			if asJSON {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(geometry)
			}
			printGeometry(geometry)
			return nil
		},
	}

	presetsCmd = &cobra.Command{
		Use:   "presets",
		Short: "List the supported layout presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range composer.SupportedLayouts() {
				fmt.Println(name)
			}
			return nil
		},
	}
)

func formatSupportedLayouts() string {
	var sb strings.Builder
	for _, name := range composer.SupportedLayouts() {
		sb.WriteString(fmt.Sprintf("- %s\n", name))
	}
	return sb.String()
}

func printGeometry(geometry *composer.Geometry) {
	fmt.Printf("Layout: %s\n", geometry.Layout)
	fmt.Printf("Canvas: %dx%d (scale %.2f)\n",
		geometry.CanvasWidth, geometry.CanvasHeight, geometry.Scale)
	for _, camera := range geometry.Cameras {
		if !camera.Include {
			fmt.Printf("  %-12s excluded\n", camera.Camera)
			continue
		}
		fmt.Printf("  %-12s %dx%d at (%d, %d)\n",
			camera.Camera, camera.Width, camera.Height, camera.X, camera.Y)
	}
}

func init() {
	layoutCmd.Flags().StringP("layout", "l", "fullscreen",
		fmt.Sprintf("Layout preset (%s)", strings.Join(composer.SupportedLayouts(), ", ")))
	layoutCmd.Flags().StringP("config", "c", "", "YAML config file with compose settings")
	layoutCmd.Flags().StringSlice("exclude", nil, "Camera to exclude (repeatable)")
	layoutCmd.Flags().StringSlice("scale", nil, "Camera scale as CAMERA=SCALE (repeatable)")
	layoutCmd.Flags().Bool("perspective", false, "Render side cameras with a perspective skew")
	layoutCmd.Flags().Bool("json", false, "Print geometry as JSON")
	layoutCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(presetsCmd)
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
