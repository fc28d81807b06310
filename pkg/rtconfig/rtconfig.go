// Package rtconfig holds render configuration, loadable from an
// optional YAML file and overridable by CLI flags, externalized to a
// file so a render can be repeated exactly across runs.
package rtconfig

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config controls a single render invocation. Load starts from
// Defaults(), so fields absent from the YAML file keep their default
// value; a field the file sets to zero stays zero.
type Config struct {
	Scene           string  `yaml:"scene"`
	Width           int     `yaml:"width"`
	AspectRatio     float64 `yaml:"aspectRatio"`
	SamplesPerPixel int     `yaml:"samplesPerPixel"`
	MaxDepth        int     `yaml:"maxDepth"`
	Workers         int     `yaml:"workers"`
	Seed            int64   `yaml:"seed"`
	Output          string  `yaml:"output"`
}

// Defaults returns the implied defaults from spec.md: 50 bounces,
// thread count equal to runtime.NumCPU(), the default sphere scene.
func Defaults() Config {
	return Config{
		Scene:           "default",
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Workers:         runtime.NumCPU(),
		Seed:            1,
		Output:          "render.png",
	}
}

// Load reads a YAML config file and overlays it onto Defaults(); fields
// absent from the file keep their default value. A missing file is not
// an error: Load returns Defaults() unchanged.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("rtconfig: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("rtconfig: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Height derives the pixel height from Width and AspectRatio, always at
// least 1 pixel.
func (c Config) Height() int {
	h := int(float64(c.Width) / c.AspectRatio)
	if h < 1 {
		h = 1
	}
	return h
}

// Validate reports the first configuration error found, if any.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("rtconfig: width must be positive, got %d", c.Width)
	}
	if c.AspectRatio <= 0 {
		return fmt.Errorf("rtconfig: aspectRatio must be positive, got %v", c.AspectRatio)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("rtconfig: samplesPerPixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("rtconfig: maxDepth must be positive, got %d", c.MaxDepth)
	}
	return nil
}
