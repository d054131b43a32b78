// Package config loads viewer settings from an optional YAML file; command-line flags set
// explicitly on the command line take precedence.
package config

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iafilius/EvalReportCharts/src/logging"
)

// Surface is the pixel size of each chart surface.
type Surface struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Config struct {
	LogLevel       string  `yaml:"log_level"`
	Surface        Surface `yaml:"surface"`
	ScreenshotsDir string  `yaml:"screenshots_dir"`
	HTMLOut        string  `yaml:"html_out"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Surface:  Surface{Width: 400, Height: 200},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the renderer cannot use.
func (c Config) Validate() error {
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		return fmt.Errorf("surface size must be positive, got %dx%d", c.Surface.Width, c.Surface.Height)
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// Flags are the command-line settings.
type Flags struct {
	ConfigPath     string
	LogLevel       string
	Width          int
	Height         int
	ScreenshotsDir string
	HTMLOut        string
}

// Register binds the flags on fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	d := Default()
	fs.StringVar(&f.ConfigPath, "config", "", "Path to YAML settings file (optional)")
	fs.StringVar(&f.LogLevel, "log-level", d.LogLevel, "Log level (debug|info|warn|error)")
	fs.IntVar(&f.Width, "width", d.Surface.Width, "Chart surface width in pixels")
	fs.IntVar(&f.Height, "height", d.Surface.Height, "Chart surface height in pixels")
	fs.StringVar(&f.ScreenshotsDir, "screenshots", "", "Write chart PNGs to this directory and exit (headless)")
	fs.StringVar(&f.HTMLOut, "html", "", "Write an HTML report to this path and exit (headless)")
}

// Resolve loads the config file if one was given and overlays flags that were set on fs.
func (f *Flags) Resolve(fs *flag.FlagSet) (Config, error) {
	cfg := Default()
	if f.ConfigPath != "" {
		var err error
		if cfg, err = Load(f.ConfigPath); err != nil {
			return cfg, err
		}
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "log-level":
			cfg.LogLevel = f.LogLevel
		case "width":
			cfg.Surface.Width = f.Width
		case "height":
			cfg.Surface.Height = f.Height
		case "screenshots":
			cfg.ScreenshotsDir = f.ScreenshotsDir
		case "html":
			cfg.HTMLOut = f.HTMLOut
		}
	})
	return cfg, cfg.Validate()
}
