// Package config handles configuration loading and management for oulab.
// It supports XDG config paths, project-level overrides, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/ShayCichocki/oulab/internal/i18n"
	"github.com/ShayCichocki/oulab/internal/logging"
	"github.com/ShayCichocki/oulab/internal/progress"
	"github.com/ShayCichocki/oulab/pkg/models"
)

// localTargetLayout is accepted for targets without a zone; they are read in local time.
const localTargetLayout = "2006-01-02T15:04:05"

// DefaultTargetValue is the launch instant used when none is configured.
const DefaultTargetValue = "2025-11-20T00:00:00"

// EnvPrefix prefixes environment overrides, e.g. OULAB_DASHBOARD_LOCALE.
const EnvPrefix = "OULAB"

// Config holds all configuration for oulab.
type Config struct {
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Progress  ProgressConfig  `mapstructure:"progress"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Log       LogConfig       `mapstructure:"log"`

	// Files lists the config files that were considered, for hot reload.
	Files []string `mapstructure:"-"`
}

// DashboardConfig holds countdown and display settings.
type DashboardConfig struct {
	// Target is the launch instant, RFC 3339 or 2006-01-02T15:04:05 in local time.
	Target string `mapstructure:"target"`
	// Locale is a BCP 47 tag; en and ar are supported.
	Locale string `mapstructure:"locale"`
	// TickInterval is how often the countdown is recomputed.
	TickInterval time.Duration `mapstructure:"tick_interval"`
	// Animation is how long a gauge takes to ease to a new value.
	Animation time.Duration `mapstructure:"animation"`
}

// ProgressConfig holds the initial slider positions.
type ProgressConfig struct {
	Overall int `mapstructure:"overall"`
	Phase1  int `mapstructure:"phase1"`
	Phase2  int `mapstructure:"phase2"`
	Route   int `mapstructure:"route"`
}

// CatalogConfig selects the track catalog.
type CatalogConfig struct {
	// File replaces the built-in catalog when set.
	File string `mapstructure:"file"`
}

// LogConfig holds log output settings.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (OULAB_DASHBOARD_LOCALE, ...)
// 2. explicitPath, when set
// 3. Project config (.oulab.yaml in current directory or parent)
// 4. User config (~/.config/oulab/config.yaml)
// 5. Built-in defaults
func Load(explicitPath string) (*Config, error) {
	v := newViper()

	userConfigDir := getUserConfigDir()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}
	files := []string{GetUserConfigPath()}

	if projectConfig := findProjectConfig(); projectConfig != "" {
		if err := mergeFile(v, projectConfig); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
		files = append(files, projectConfig)
	}

	if explicitPath != "" {
		if err := mergeFile(v, explicitPath); err != nil {
			return nil, fmt.Errorf("merging %s: %w", explicitPath, err)
		}
		files = append(files, explicitPath)
	}

	cfg, err := unmarshal(v)
	if err != nil {
		return nil, err
	}
	cfg.Files = files
	return cfg, nil
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := newViper()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg, err := unmarshal(v)
	if err != nil {
		return nil, err
	}
	cfg.Files = []string{path}
	return cfg, nil
}

// SaveKey writes a single key to the user config file. Other keys already
// in the file are kept, and nothing from project files or the environment
// is written.
func SaveKey(key string, value any) error {
	return SaveKeyTo(GetUserConfigPath(), key, value)
}

// SaveKeyTo sets key in the YAML file at path, creating the file and its
// parent directories when missing.
func SaveKeyTo(path, key string, value any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if d, ok := value.(time.Duration); ok {
		value = d.String()
	}
	v.Set(key, value)
	return v.WriteConfig()
}

// Validate reports every problem with cfg at once.
func Validate(cfg *Config) error {
	var problems []error

	if _, err := cfg.TargetTime(); err != nil {
		problems = append(problems, err)
	}
	if _, err := cfg.LocaleValue(); err != nil {
		problems = append(problems, err)
	}
	if cfg.Dashboard.TickInterval <= 0 {
		problems = append(problems, fmt.Errorf("dashboard.tick_interval must be positive, got %s", cfg.Dashboard.TickInterval))
	}
	if cfg.Dashboard.Animation < 0 {
		problems = append(problems, fmt.Errorf("dashboard.animation must not be negative, got %s", cfg.Dashboard.Animation))
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		problems = append(problems, err)
	}

	return errors.Join(problems...)
}

// TargetTime parses the countdown target.
func (c *Config) TargetTime() (time.Time, error) {
	s := strings.TrimSpace(c.Dashboard.Target)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(localTargetLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("dashboard.target %q: expected RFC 3339 or %s", c.Dashboard.Target, localTargetLayout)
	}
	return t, nil
}

// LocaleValue parses the configured locale.
func (c *Config) LocaleValue() (i18n.Locale, error) {
	l, err := i18n.ParseLocale(c.Dashboard.Locale)
	if err != nil {
		return l, fmt.Errorf("dashboard.locale: %w", err)
	}
	return l, nil
}

// InitialProgress returns the configured slider positions, clamped.
func (c *Config) InitialProgress() map[progress.Metric]models.Percent {
	return map[progress.Metric]models.Percent{
		progress.MetricOverall: models.Clamp(c.Progress.Overall),
		progress.MetricPhase1:  models.Clamp(c.Progress.Phase1),
		progress.MetricPhase2:  models.Clamp(c.Progress.Phase2),
		progress.MetricRoute:   models.Clamp(c.Progress.Route),
	}
}

// DefaultTarget returns the default launch instant in local time.
func DefaultTarget() time.Time {
	t, _ := time.ParseInLocation(localTargetLayout, DefaultTargetValue, time.Local)
	return t
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Dashboard: DashboardConfig{
			Target:       DefaultTargetValue,
			Locale:       "en",
			TickInterval: time.Second,
			Animation:    2500 * time.Millisecond,
		},
		Progress: ProgressConfig{
			Overall: 72,
			Phase1:  88,
			Phase2:  46,
			Route:   82,
		},
		Log: LogConfig{
			File:  logging.DefaultPath(),
			Level: "info",
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("dashboard.target", d.Dashboard.Target)
	v.SetDefault("dashboard.locale", d.Dashboard.Locale)
	v.SetDefault("dashboard.tick_interval", d.Dashboard.TickInterval.String())
	v.SetDefault("dashboard.animation", d.Dashboard.Animation.String())

	v.SetDefault("progress.overall", d.Progress.Overall)
	v.SetDefault("progress.phase1", d.Progress.Phase1)
	v.SetDefault("progress.phase2", d.Progress.Phase2)
	v.SetDefault("progress.route", d.Progress.Route)

	v.SetDefault("catalog.file", "")

	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}

func mergeFile(v *viper.Viper, path string) error {
	fv := viper.New()
	fv.SetConfigFile(path)
	if err := fv.ReadInConfig(); err != nil {
		return err
	}
	return v.MergeConfigMap(fv.AllSettings())
}

// decodeHook extends viper's default hooks. YAML decodes an unquoted
// RFC 3339 value as a timestamp, so time values bound for string fields are
// formatted back to RFC 3339.
func decodeHook() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		timeToStringHook,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
}

func timeToStringHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	if t, ok := data.(time.Time); ok {
		return t.Format(time.RFC3339Nano), nil
	}
	return data, nil
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Catalog.File = os.ExpandEnv(cfg.Catalog.File)
	cfg.Log.File = os.ExpandEnv(cfg.Log.File)
	return cfg, nil
}

// getUserConfigDir returns the XDG config directory for oulab.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "oulab")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "oulab")
	}
	return filepath.Join(home, ".config", "oulab")
}

// findProjectConfig searches for .oulab.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".oulab.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}
