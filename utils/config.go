package utils

import (
	_ "embed"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/gol-canvas/model"
	"github.com/sheikhrachel/gol-canvas/render"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds the configuration for the game
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Grid     GridConfig     `yaml:"grid"`
	Colors   ColorsConfig   `yaml:"colors"`
	Seed     SeedConfig     `yaml:"seed"`
	Headless HeadlessConfig `yaml:"headless"`
}

// WindowConfig holds display settings
type WindowConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`  // pixels
	Height  int    `yaml:"height"` // pixels
	TPS     int    `yaml:"tps"`    // frames (ticks) per second
	ShowHUD bool   `yaml:"show_hud"`
}

// GridConfig holds the tile size; grid dimensions derive from the window size
type GridConfig struct {
	TileSize int `yaml:"tile_size"` // pixels per cell side
}

// ColorsConfig holds cell colors, each a color name or #rrggbb[aa]
type ColorsConfig struct {
	Dead        string  `yaml:"dead"`
	Living      string  `yaml:"living"`
	Border      string  `yaml:"border"`
	Background  string  `yaml:"background"` // empty = living color
	BorderWidth float64 `yaml:"border_width"`
}

// SeedConfig describes the starting grid
type SeedConfig struct {
	Density    float64         `yaml:"density"`     // probability a cell starts live (0 = empty)
	RandomSeed int64           `yaml:"random_seed"` // 0 = time-based
	Patterns   []PatternConfig `yaml:"patterns"`
}

// PatternConfig places a named pattern with its top-left corner at (row, col)
type PatternConfig struct {
	Name string `yaml:"name"`
	Row  int    `yaml:"row"`
	Col  int    `yaml:"col"`
}

// HeadlessConfig holds settings for runs without a window
type HeadlessConfig struct {
	Generations         int           `yaml:"generations"` // 0 = unlimited
	FrameRate           time.Duration `yaml:"frame_rate"`  // delay between printed frames
	StagnationThreshold int           `yaml:"stagnation_threshold"`
	LogEvery            int           `yaml:"log_every"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() Config {
	var config Config
	if err := yaml.Unmarshal(defaultsYAML, &config); err != nil {
		panic(errors.Wrap(err, "[DefaultConfig] embedded defaults are invalid"))
	}
	return config
}

// LoadConfig loads configuration from a YAML file over the defaults.
// An empty filename returns the defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()
	if filename == "" {
		return config, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the configuration for values the game cannot run with
func (c Config) Validate() error {
	if c.Grid.TileSize <= 0 {
		return errors.Errorf("[Validate] tile_size must be positive, got %d", c.Grid.TileSize)
	}
	if c.Window.Width < c.Grid.TileSize || c.Window.Height < c.Grid.TileSize {
		return errors.Errorf("[Validate] window %dx%d is smaller than one %dpx tile",
			c.Window.Width, c.Window.Height, c.Grid.TileSize)
	}
	if c.Window.TPS <= 0 {
		return errors.Errorf("[Validate] tps must be positive, got %d", c.Window.TPS)
	}
	if c.Colors.BorderWidth < 0 {
		return errors.Errorf("[Validate] border_width must not be negative, got %v", c.Colors.BorderWidth)
	}
	if c.Seed.Density < 0 || c.Seed.Density > 1 {
		return errors.Errorf("[Validate] density must be within [0,1], got %v", c.Seed.Density)
	}
	if c.Headless.Generations < 0 {
		return errors.Errorf("[Validate] generations must not be negative, got %d", c.Headless.Generations)
	}
	for _, p := range c.Seed.Patterns {
		if _, err := model.LookupPattern(p.Name); err != nil {
			return errors.Wrap(err, "[Validate] bad seed pattern")
		}
	}
	if _, err := c.Colors.Palette(); err != nil {
		return errors.Wrap(err, "[Validate] bad colors")
	}
	return nil
}

// Rows returns the number of grid rows, truncating any remainder
func (c Config) Rows() int {
	return c.Window.Height / c.Grid.TileSize
}

// Cols returns the number of grid columns, truncating any remainder
func (c Config) Cols() int {
	return c.Window.Width / c.Grid.TileSize
}

// Palette parses the configured colors
func (c ColorsConfig) Palette() (render.Palette, error) {
	var p render.Palette

	dead, err := ParseColor(c.Dead)
	if err != nil {
		return p, errors.Wrap(err, "[Palette] dead")
	}
	living, err := ParseColor(c.Living)
	if err != nil {
		return p, errors.Wrap(err, "[Palette] living")
	}
	border, err := ParseColor(c.Border)
	if err != nil {
		return p, errors.Wrap(err, "[Palette] border")
	}
	background := living
	if c.Background != "" {
		if background, err = ParseColor(c.Background); err != nil {
			return p, errors.Wrap(err, "[Palette] background")
		}
	}

	return render.Palette{
		Dead:       dead,
		Living:     living,
		Border:     border,
		Background: background,
	}, nil
}

// ParseColor accepts an SVG color name (e.g. "black") or #rrggbb / #rrggbbaa
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if named, ok := colornames.Map[s]; ok {
		return named, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.RGBA{}, errors.Errorf("[ParseColor] unknown color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "[ParseColor] bad hex color %q", s)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
