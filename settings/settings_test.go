package settings

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetViper clears all viper state between tests.
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadDefaults(t *testing.T) {
	resetViper(t)

	s, err := Load()
	require.NoError(t, err)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Journey", s.Journey, "journey.yaml"},
		{"Debug", s.Debug, false},
		{"Music", s.Music, true},
		{"Volume", s.Volume, 0.5},
		{"AssetsDir", s.AssetsDir, "assets"},
		{"WindowScale", s.WindowScale, 2},
		{"Start", s.Start, StartMain},
		{"StartFraction", s.StartFraction, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
	assert.False(t, s.HotReload())
}

func TestLoadEnvOverrides(t *testing.T) {
	resetViper(t)
	t.Setenv("JOURNEY_DEBUG", "true")
	t.Setenv("JOURNEY_START", "island")
	t.Setenv("JOURNEY_START_FRACTION", "0.25")
	t.Setenv("JOURNEY_MUSIC", "false")

	require.NoError(t, Init(""))
	s, err := Load()
	require.NoError(t, err)

	assert.True(t, s.Debug)
	assert.True(t, s.HotReload())
	assert.Equal(t, StartIsland, s.Start)
	assert.Equal(t, 0.25, s.StartFraction)
	assert.False(t, s.Music)
}

func TestLoadConfigFile(t *testing.T) {
	resetViper(t)
	file := filepath.Join(t.TempDir(), "settings.yaml")
	body := "journey: journey_spiral.yaml\nvolume: 0.2\nwindow_scale: 3\nwatch: true\n"
	require.NoError(t, os.WriteFile(file, []byte(body), 0o644))

	require.NoError(t, Init(file))
	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "journey_spiral.yaml", s.Journey)
	assert.Equal(t, 0.2, s.Volume)
	assert.Equal(t, 3, s.WindowScale)
	assert.True(t, s.HotReload())
}

func TestInitMissingExplicitFile(t *testing.T) {
	resetViper(t)
	err := Init(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInitLogsMalformedDefaultFile(t *testing.T) {
	resetViper(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".journey.yaml"), []byte("debug: [oops\n"), 0o644))
	t.Chdir(dir)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	require.NoError(t, Init(""))
	assert.Contains(t, buf.String(), "settings: read")
	assert.Contains(t, buf.String(), ".journey.yaml")
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value any
	}{
		{"start", "start", "moon"},
		{"fraction", "start_fraction", 1.5},
		{"volume", "volume", -0.1},
		{"scale", "window_scale", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			resetViper(t)
			viper.Set(c.key, c.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
