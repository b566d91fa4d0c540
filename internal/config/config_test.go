package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShayCichocki/oulab/internal/i18n"
	"github.com/ShayCichocki/oulab/internal/progress"
	"github.com/ShayCichocki/oulab/pkg/models"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "2025-11-20T00:00:00", cfg.Dashboard.Target)
	assert.Equal(t, "en", cfg.Dashboard.Locale)
	assert.Equal(t, time.Second, cfg.Dashboard.TickInterval)
	assert.Equal(t, 2500*time.Millisecond, cfg.Dashboard.Animation)
	assert.Equal(t, ProgressConfig{Overall: 72, Phase1: 88, Phase2: 46, Route: 82}, cfg.Progress)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, Validate(cfg))

	target, err := cfg.TargetTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.November, 20, 0, 0, 0, 0, time.Local), target)
	assert.True(t, target.Equal(DefaultTarget()))
}

func TestLoadFromPath(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
dashboard:
  target: 2026-01-01T09:30:00+03:00
  locale: ar-EG
  tick_interval: 500ms
  animation: 1s
progress:
  overall: 10
  phase2: 250
catalog:
  file: /tmp/tracks.yaml
log:
  level: debug
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.Dashboard.TickInterval)
	assert.Equal(t, time.Second, cfg.Dashboard.Animation)
	assert.Equal(t, "/tmp/tracks.yaml", cfg.Catalog.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{path}, cfg.Files)

	locale, err := cfg.LocaleValue()
	require.NoError(t, err)
	assert.Equal(t, i18n.Arabic, locale)

	target, err := cfg.TargetTime()
	require.NoError(t, err)
	assert.True(t, target.Equal(time.Date(2026, time.January, 1, 6, 30, 0, 0, time.UTC)))

	initial := cfg.InitialProgress()
	assert.Equal(t, models.Percent(10), initial[progress.MetricOverall])
	assert.Equal(t, models.Percent(88), initial[progress.MetricPhase1], "unset keys keep defaults")
	assert.Equal(t, models.Percent(100), initial[progress.MetricPhase2], "out of range values are clamped")
}

func TestLoadFromPath_TargetForms(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{
			name:  "unquoted RFC 3339",
			value: "2026-01-01T09:30:00+03:00",
			want:  time.Date(2026, time.January, 1, 6, 30, 0, 0, time.UTC),
		},
		{
			name:  "unquoted UTC with fraction",
			value: "2026-01-01T09:30:00.5Z",
			want:  time.Date(2026, time.January, 1, 9, 30, 0, 500000000, time.UTC),
		},
		{
			name:  "quoted RFC 3339",
			value: `"2026-01-01T09:30:00+03:00"`,
			want:  time.Date(2026, time.January, 1, 6, 30, 0, 0, time.UTC),
		},
		{
			name:  "local without zone",
			value: "2026-01-01T09:30:00",
			want:  time.Date(2026, time.January, 1, 9, 30, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), "dashboard:\n  target: "+tt.value+"\n")

			cfg, err := LoadFromPath(path)
			require.NoError(t, err)
			require.NoError(t, Validate(cfg))

			target, err := cfg.TargetTime()
			require.NoError(t, err)
			assert.True(t, target.Equal(tt.want), "got %s", target)
		})
	}
}

func TestLoad_ProjectTargetUnquoted(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := writeConfig(t, t.TempDir(), "dashboard:\n  target: 2026-03-01T00:00:00Z\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01T00:00:00Z", cfg.Dashboard.Target)
}

func TestLoadFromPath_Missing(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_ExplicitAndEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("OULAB_DASHBOARD_LOCALE", "ar")

	path := writeConfig(t, t.TempDir(), "progress:\n  route: 12\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ar", cfg.Dashboard.Locale)
	assert.Equal(t, 12, cfg.Progress.Route)
	assert.Contains(t, cfg.Files, path)
	assert.Contains(t, cfg.Files, GetUserConfigPath())
}

func TestLoad_UserConfig(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "oulab"), 0755))
	writeConfig(t, filepath.Join(xdg, "oulab"), "dashboard:\n  animation: 0s\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Zero(t, cfg.Dashboard.Animation)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Dashboard.Target = "next tuesday"
	cfg.Dashboard.TickInterval = 0
	cfg.Dashboard.Animation = -time.Second
	cfg.Log.Level = "verbose"

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dashboard.target")
	assert.Contains(t, err.Error(), "dashboard.tick_interval")
	assert.Contains(t, err.Error(), "dashboard.animation")
	assert.Contains(t, err.Error(), "log level")
}

func TestSaveKeyTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, SaveKeyTo(path, "dashboard.locale", "ar"))
	require.NoError(t, SaveKeyTo(path, "dashboard.tick_interval", 2*time.Second))
	require.NoError(t, SaveKeyTo(path, "progress.phase1", 5))

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "ar", loaded.Dashboard.Locale)
	assert.Equal(t, 2*time.Second, loaded.Dashboard.TickInterval)
	assert.Equal(t, 5, loaded.Progress.Phase1)
	assert.Equal(t, Default().Dashboard.Animation, loaded.Dashboard.Animation)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "animation")
	assert.NotContains(t, string(raw), "catalog")
}

func TestSaveKeyTo_KeepsUnquotedTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dashboard:\n  target: 2026-01-01T09:30:00+03:00\n"), 0600))

	require.NoError(t, SaveKeyTo(path, "dashboard.locale", "ar"))

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "ar", loaded.Dashboard.Locale)
	target, err := loaded.TargetTime()
	require.NoError(t, err)
	assert.True(t, target.Equal(time.Date(2026, time.January, 1, 6, 30, 0, 0, time.UTC)))
}

func TestGetUserConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	assert.Equal(t, "/custom/config/oulab", getUserConfigDir())
	assert.Equal(t, "/custom/config/oulab/config.yaml", GetUserConfigPath())
}
