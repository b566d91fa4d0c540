package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_DeliversReloadedConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "dashboard:\n  locale: en\n")

	w, err := NewWatcher([]string{path}, func() (*Config, error) {
		return LoadFromPath(path)
	}, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("dashboard:\n  locale: ar\n"), 0644))

	select {
	case cfg := <-w.Updates():
		assert.Equal(t, "ar", cfg.Dashboard.Locale)
	case <-time.After(5 * time.Second):
		t.Fatal("no config update delivered")
	}
}

func TestWatcher_ReloadsUnquotedTarget(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "dashboard:\n  locale: en\n")

	w, err := NewWatcher([]string{path}, func() (*Config, error) {
		return LoadFromPath(path)
	}, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("dashboard:\n  target: 2026-01-01T09:30:00+03:00\n"), 0644))

	select {
	case cfg := <-w.Updates():
		target, err := cfg.TargetTime()
		require.NoError(t, err)
		assert.True(t, target.Equal(time.Date(2026, time.January, 1, 6, 30, 0, 0, time.UTC)))
	case <-time.After(5 * time.Second):
		t.Fatal("no config update delivered")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "dashboard:\n  locale: en\n")

	w, err := NewWatcher([]string{path}, func() (*Config, error) {
		return LoadFromPath(path)
	}, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0644))

	select {
	case <-w.Updates():
		t.Fatal("unexpected update for unrelated file")
	case <-time.After(3 * reloadDelay):
	}
}

func TestWatcher_SkipsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "dashboard:\n  locale: en\n")

	w, err := NewWatcher([]string{path}, func() (*Config, error) {
		return LoadFromPath(path)
	}, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("dashboard:\n  tick_interval: 0s\n"), 0644))

	select {
	case <-w.Updates():
		t.Fatal("invalid config must not be delivered")
	case <-time.After(5 * reloadDelay):
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := NewWatcher([]string{filepath.Join(t.TempDir(), "absent", "config.yaml")}, func() (*Config, error) {
		return Default(), nil
	}, nil)
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestNewWatcher_NilReload(t *testing.T) {
	_, err := NewWatcher(nil, nil, nil)
	assert.Error(t, err)
}
