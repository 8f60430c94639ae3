package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverridesDefaults(t *testing.T) {
	doc := []byte(`
[game]
config = "levels/hard.yaml"
watch = true

[logging]
format = "json"
`)
	cfg, err := Parse("test.toml", doc)
	require.NoError(t, err)

	assert.Equal(t, "levels/hard.yaml", cfg.Game.Config)
	assert.True(t, cfg.Game.Watch)
	assert.Equal(t, "json", cfg.Logging.Format)
	// untouched keys keep their defaults
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 0.1, cfg.Game.MaxFrameDelta)
	assert.Equal(t, "arcade", cfg.Window.Title)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"syntax", `[game`},
		{"type", `[game]
watch = "yes"`},
		{"negative_delta", `[game]
max_frame_delta = -1.0`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse("bad.toml", []byte(c.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "bad.toml")
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\nscale = 2.0\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.Window.Scale)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err, "an explicit path must exist")
}

func TestClampDelta(t *testing.T) {
	cases := []struct {
		name string
		max  float64
		dt   float64
		want float64
	}{
		{"under", 0.1, 0.016, 0.016},
		{"over", 0.1, 2.5, 0.1},
		{"disabled", 0, 2.5, 2.5},
		{"negative", 0.1, -1, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, GameConfig{MaxFrameDelta: c.max}.ClampDelta(c.dt))
		})
	}
}
