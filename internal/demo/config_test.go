package demo

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ModeSpin, cfg.Mode)
	assert.Equal(t, 0.5, cfg.Rect.SpinSpeed)
}

func TestPreset(t *testing.T) {
	cfg, err := Preset(ModeFall)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 45.0, cfg.Rect.Angle)
	assert.Equal(t, 1.0, cfg.Dot.VY)
	assert.Equal(t, "white", cfg.Style.Background)

	_, err = Preset("orbit")
	assert.Error(t, err)
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"overlap": "legacy",
		"rect": {"angle": 30, "spin_speed": 2},
		"style": {"shape": "#336699", "debug": false}
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "legacy", cfg.Overlap)
	assert.Equal(t, 30.0, cfg.Rect.Angle)
	assert.Equal(t, 2.0, cfg.Rect.SpinSpeed)
	assert.Equal(t, 100.0, cfg.Rect.Width, "unset fields keep defaults")
	assert.False(t, cfg.Style.Debug)

	p, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, color.Color(color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff}), p.Shape)
}

func TestLoadConfigUsesModePreset(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{"mode": "fall", "dot": {"radius": 8}}`))
	require.NoError(t, err)
	assert.Equal(t, 45.0, cfg.Rect.Angle)
	assert.Equal(t, 8.0, cfg.Dot.Radius)
	assert.Equal(t, 0.0, cfg.Dot.Y)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad json", `{"rect": `},
		{"unknown mode", `{"mode": "orbit"}`},
		{"zero width", `{"rect": {"width": 0}}`},
		{"bad probe", `{"probe": {"enabled": true, "height": -1}}`},
		{"bad window", `{"window": {"width": 0}}`},
		{"bad color", `{"style": {"hit": "not-a-color"}}`},
		{"bad hex", `{"style": {"hit": "#12345"}}`},
		{"bad overlap", `{"overlap": "sometimes"}`},
		{"negative stroke", `{"style": {"stroke_width": -2}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
	}{
		{"white", colornames.White},
		{" Green ", colornames.Green},
		{"#ff0000", color.NRGBA{R: 255, A: 255}},
		{"#00ff0080", color.NRGBA{G: 255, A: 0x80}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "ultraviolet", "#gg0000", "#fff"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}
