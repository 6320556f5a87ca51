// Package demo provides the interactive host for the rotated rectangle: its
// configuration and the scene driven by the game loop.
package demo

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"chosenoffset.com/vrect/internal/vrect"
)

// Modes understood by Preset and Config.Mode
const (
	ModeSpin = "spin" // rectangle spins in place around a fixed dot
	ModeFall = "fall" // a dot falls through a fixed, tilted rectangle
)

// Config holds everything the demo scene needs
type Config struct {
	Mode string `json:"mode"`

	// Overlap names the vrect.OverlapMode used for the probe
	Overlap string `json:"overlap"`

	Window WindowConfig `json:"window"`
	Rect   RectConfig   `json:"rect"`
	Dot    DotConfig    `json:"dot"`
	Probe  ProbeConfig  `json:"probe"`
	Style  StyleConfig  `json:"style"`
}

// WindowConfig sizes the window and logical screen
type WindowConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

// RectConfig is the main rectangle and how fast it spins
type RectConfig struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Angle     float64 `json:"angle"`      // degrees
	SpinSpeed float64 `json:"spin_speed"` // degrees per tick
}

// DotConfig is the point tested for containment every tick
type DotConfig struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VX     float64 `json:"vx"` // pixels per tick
	VY     float64 `json:"vy"`
	Radius float64 `json:"radius"`
}

// ProbeConfig is the rectangle that follows the cursor
type ProbeConfig struct {
	Enabled bool    `json:"enabled"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Angle   float64 `json:"angle"`
}

// StyleConfig holds colors (names or #rrggbb) and debug drawing
type StyleConfig struct {
	Background  string  `json:"background"`
	Shape       string  `json:"shape"`
	Hit         string  `json:"hit"` // shape color while the dot is inside
	Dot         string  `json:"dot"`
	Probe       string  `json:"probe"`
	ProbeHit    string  `json:"probe_hit"`
	DebugColor  string  `json:"debug_color"`
	StrokeWidth float64 `json:"stroke_width"` // 0 fills the rectangle
	Debug       bool    `json:"debug"`
}

// Palette is StyleConfig with every color resolved
type Palette struct {
	Background color.Color
	Shape      color.Color
	Hit        color.Color
	Dot        color.Color
	Probe      color.Color
	ProbeHit   color.Color
	Debug      color.Color
}

// DefaultConfig returns the spinning-rectangle demo
func DefaultConfig() *Config {
	return &Config{
		Mode:    ModeSpin,
		Overlap: vrect.OverlapExact.String(),
		Window: WindowConfig{
			Width:  500,
			Height: 500,
			Title:  "Vector Rect test",
		},
		Rect: RectConfig{
			X:         250,
			Y:         250,
			Width:     100,
			Height:    100,
			SpinSpeed: 0.5,
		},
		Dot: DotConfig{
			X:      250,
			Y:      190,
			Radius: 5,
		},
		Probe: ProbeConfig{
			Enabled: true,
			Width:   60,
			Height:  30,
			Angle:   20,
		},
		Style: StyleConfig{
			Background: "black",
			Shape:      "white",
			Hit:        "green",
			Dot:        "red",
			Probe:      "dodgerblue",
			ProbeHit:   "orange",
			DebugColor: "red",
			Debug:      true,
		},
	}
}

// Preset returns the defaults for the named mode
func Preset(mode string) (*Config, error) {
	cfg := DefaultConfig()
	switch mode {
	case "", ModeSpin:
	case ModeFall:
		cfg.Mode = ModeFall
		cfg.Rect.Angle = 45
		cfg.Rect.SpinSpeed = 0
		cfg.Dot.X, cfg.Dot.Y = 250, 0
		cfg.Dot.VY = 1
		cfg.Style.Background = "white"
		cfg.Style.Shape = "black"
		cfg.Style.Debug = false
	default:
		return nil, fmt.Errorf("unknown demo mode %q", mode)
	}
	return cfg, nil
}

// LoadConfig loads demo config from a JSON file. Fields missing from the
// file keep the values of the preset named by its "mode" (spin if unset).
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read demo config: %w", err)
	}

	var head struct {
		Mode string `json:"mode"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("failed to parse demo config: %w", err)
	}
	config, err := Preset(head.Mode)
	if err != nil {
		return nil, fmt.Errorf("invalid demo config: %w", err)
	}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse demo config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid demo config: %w", err)
	}
	return config, nil
}

// Validate checks that the scene can be built from c
func (c *Config) Validate() error {
	if c.Mode != ModeSpin && c.Mode != ModeFall {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := vrect.New(c.Rect.X, c.Rect.Y, c.Rect.Width, c.Rect.Height); err != nil {
		return fmt.Errorf("rect: %w", err)
	}
	if c.Probe.Enabled {
		if _, err := vrect.New(0, 0, c.Probe.Width, c.Probe.Height); err != nil {
			return fmt.Errorf("probe: %w", err)
		}
	}
	if c.Style.StrokeWidth < 0 {
		return fmt.Errorf("stroke width must not be negative, got %g", c.Style.StrokeWidth)
	}
	if _, err := vrect.ParseOverlapMode(c.Overlap); err != nil {
		return err
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// Palette resolves the style colors
func (c *Config) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		src  string
		dst  *color.Color
	}{
		{"background", c.Style.Background, &p.Background},
		{"shape", c.Style.Shape, &p.Shape},
		{"hit", c.Style.Hit, &p.Hit},
		{"dot", c.Style.Dot, &p.Dot},
		{"probe", c.Style.Probe, &p.Probe},
		{"probe_hit", c.Style.ProbeHit, &p.ProbeHit},
		{"debug_color", c.Style.DebugColor, &p.Debug},
	}
	for _, f := range fields {
		clr, err := ParseColor(f.src)
		if err != nil {
			return Palette{}, fmt.Errorf("style.%s: %w", f.name, err)
		}
		*f.dst = clr
	}
	return p, nil
}

// ParseColor accepts an SVG color name ("white", "dodgerblue") or a hex
// value in the form #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if clr, ok := colornames.Map[s]; ok {
		return clr, nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}

func parseHexColor(hex string) (color.Color, error) {
	if len(hex) != 6 && len(hex) != 8 {
		return nil, fmt.Errorf("bad hex color #%s", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("bad hex color #%s: %w", hex, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	// non-premultiplied, as written by people
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
