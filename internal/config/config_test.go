package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("RORICALC_HOME", home)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultThemeName, cfg.ActiveTheme)
	assert.True(t, cfg.ShowKeypad)
	assert.Equal(t, DefaultTheme, cfg.Theme())
	assert.Equal(t, []string{"default", "mono", "ocean"}, cfg.ThemeNames())

	_, err = os.Stat(filepath.Join(home, ".roricalc", "config.json"))
	require.NoError(t, err, "default config is written to disk")
}

func TestSaveAndReload(t *testing.T) {
	t.Setenv("RORICALC_HOME", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NoError(t, cfg.SetActiveTheme("ocean"))
	cfg.ShowKeypad = false
	require.NoError(t, cfg.Save())

	again, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "ocean", again.ActiveTheme)
	assert.False(t, again.ShowKeypad)
	assert.Equal(t, "39", again.Theme().Accent)
}

func TestSetActiveThemeUnknown(t *testing.T) {
	cfg := defaultConfig()
	require.EqualError(t, cfg.SetActiveTheme("neon"), "theme 'neon' does not exist")
	assert.Equal(t, DefaultThemeName, cfg.ActiveTheme)
}

func TestThemeFallsBackToDefault(t *testing.T) {
	cfg, err := parseConfig([]byte(`{"active_theme": "missing"}`))
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme, cfg.Theme())
	assert.True(t, cfg.ShowKeypad, "missing keys keep their defaults")
}

func TestParseConfigInvalid(t *testing.T) {
	_, err := parseConfig([]byte(`{`))
	require.Error(t, err)
}

func TestWatchReportsChanges(t *testing.T) {
	t.Setenv("RORICALC_HOME", t.TempDir())
	cfg, err := LoadConfig()
	require.NoError(t, err)
	path, err := Path()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c *Config) { changes <- c }, func(error) {})
	}()

	// give the watcher a moment to register before writing
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, cfg.SetActiveTheme("mono"))
	require.NoError(t, cfg.Save())

	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-changes:
			if c.ActiveTheme == "mono" {
				cancel()
				require.NoError(t, <-done)
				return
			}
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}
