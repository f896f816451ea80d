package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"sigs.k8s.io/yaml"
)

// Config holds output paths, render settings and animation parameters.
type Config struct {
	// Paths
	OutputDir string `json:"output_dir"`
	Texture   string `json:"texture"`

	// Render settings
	Width       int `json:"width"`
	Height      int `json:"height"`
	Supersample int `json:"supersample"`
	WebPQuality int `json:"webp_quality"` // recorded only; nativewebp is lossless
	Workers     int `json:"workers"`

	// Animation
	Frames   int     `json:"frames"`
	FPS      float64 `json:"fps"`
	Speed    float64 `json:"speed"`   // radians per second
	Spacing  float64 `json:"spacing"` // x offset of each cube from the center
	Distance float64 `json:"camera_distance"`
}

// Load reads a YAML or JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir   string
	Texture     string
	Width       int
	Height      int
	Supersample int
	Workers     int
	Frames      int
	FPS         float64
}

// Resolve applies CLI overrides and fills every unset field with its default.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}

	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Texture != "" && !filepath.IsAbs(c.Texture) {
		if abs, err := filepath.Abs(c.Texture); err == nil {
			c.Texture = abs
		}
	}

	// Defaults match the 800×600 window of the interactive demo.
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.WebPQuality <= 0 {
		c.WebPQuality = 100
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Frames <= 0 {
		c.Frames = 48
	}
	if c.FPS <= 0 {
		c.FPS = 12
	}
	if c.Speed == 0 {
		c.Speed = math.Pi / 4
	}
	if c.Spacing <= 0 {
		c.Spacing = 2
	}
	if c.Distance <= 0 {
		c.Distance = 5
	}
}

// Validate reports settings that Resolve cannot repair.
func (c *Config) Validate() error {
	var errs []error
	if c.Width > 8192 || c.Height > 8192 {
		errs = append(errs, fmt.Errorf("frame size %dx%d exceeds 8192", c.Width, c.Height))
	}
	if c.WebPQuality > 100 {
		errs = append(errs, fmt.Errorf("webp_quality %d exceeds 100", c.WebPQuality))
	}
	if c.Supersample > 8 {
		errs = append(errs, fmt.Errorf("supersample %d exceeds 8", c.Supersample))
	}
	// Both cubes (half extent 1) have to sit in front of the near plane at 1.
	if c.Distance <= 2 {
		errs = append(errs, fmt.Errorf("camera_distance %.2f must be greater than 2", c.Distance))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
