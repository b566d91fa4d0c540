package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/oulab/internal/config"
	"github.com/ShayCichocki/oulab/internal/progress"
)

// configKeys lists the keys shown by "oulab config", in display order.
var configKeys = []string{
	"dashboard.target",
	"dashboard.locale",
	"dashboard.tick_interval",
	"dashboard.animation",
	"progress.overall",
	"progress.phase1",
	"progress.phase2",
	"progress.route",
	"catalog.file",
	"log.file",
	"log.level",
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Manage configuration",
	Long: `View or modify oulab configuration.

Without arguments, displays current configuration.
With one argument (key), displays the value for that key.
With two arguments (key value), sets the configuration value.

Configuration is stored at ~/.config/oulab/config.yaml
Project-specific overrides can be placed in .oulab.yaml`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		out := cmd.OutOrStdout()
		switch len(args) {
		case 0:
			return displayAllConfig(out, cfg)
		case 1:
			value, err := getConfigValue(cfg, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(out, value)
			return nil
		default:
			return setConfigKey(out, cfg, args[0], args[1])
		}
	},
}

// displayAllConfig prints all configuration values.
func displayAllConfig(w io.Writer, cfg *config.Config) error {
	for _, key := range configKeys {
		value, err := getConfigValue(cfg, key)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: %s\n", key, value)
	}
	return nil
}

// setConfigKey validates value against the loaded config and writes only
// that key to the user config file.
func setConfigKey(w io.Writer, cfg *config.Config, key, value string) error {
	typed, err := setConfigValue(cfg, key, value)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	if err := config.SaveKey(strings.ToLower(key), typed); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(w, "Set %s = %s\n", key, value)
	return nil
}

// getConfigValue retrieves a configuration value by dot-notation key.
func getConfigValue(cfg *config.Config, key string) (string, error) {
	switch strings.ToLower(key) {
	case "dashboard.target":
		return cfg.Dashboard.Target, nil
	case "dashboard.locale":
		return cfg.Dashboard.Locale, nil
	case "dashboard.tick_interval":
		return cfg.Dashboard.TickInterval.String(), nil
	case "dashboard.animation":
		return cfg.Dashboard.Animation.String(), nil
	case "progress.overall":
		return strconv.Itoa(cfg.Progress.Overall), nil
	case "progress.phase1":
		return strconv.Itoa(cfg.Progress.Phase1), nil
	case "progress.phase2":
		return strconv.Itoa(cfg.Progress.Phase2), nil
	case "progress.route":
		return strconv.Itoa(cfg.Progress.Route), nil
	case "catalog.file":
		if cfg.Catalog.File == "" {
			return "(built-in)", nil
		}
		return cfg.Catalog.File, nil
	case "log.file":
		return cfg.Log.File, nil
	case "log.level":
		return cfg.Log.Level, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// setConfigValue sets a configuration value by dot-notation key and returns
// the parsed value.
func setConfigValue(cfg *config.Config, key, value string) (any, error) {
	k := strings.ToLower(key)
	if name, ok := strings.CutPrefix(k, "progress."); ok {
		metric, err := progress.ParseMetric(name)
		if err != nil {
			return nil, fmt.Errorf("unknown configuration key: %s", key)
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", key, err)
		}
		setProgress(cfg, metric, n)
		return n, nil
	}

	switch k {
	case "dashboard.target":
		cfg.Dashboard.Target = value
	case "dashboard.locale":
		cfg.Dashboard.Locale = value
	case "dashboard.tick_interval":
		d, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("invalid duration for tick_interval: %w", err)
		}
		cfg.Dashboard.TickInterval = d
		return d, nil
	case "dashboard.animation":
		d, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("invalid duration for animation: %w", err)
		}
		cfg.Dashboard.Animation = d
		return d, nil
	case "catalog.file":
		cfg.Catalog.File = value
	case "log.file":
		cfg.Log.File = value
	case "log.level":
		cfg.Log.Level = value
	default:
		return nil, fmt.Errorf("unknown configuration key: %s", key)
	}
	return value, nil
}

func setProgress(cfg *config.Config, metric progress.Metric, n int) {
	switch metric {
	case progress.MetricOverall:
		cfg.Progress.Overall = n
	case progress.MetricPhase1:
		cfg.Progress.Phase1 = n
	case progress.MetricPhase2:
		cfg.Progress.Phase2 = n
	case progress.MetricRoute:
		cfg.Progress.Route = n
	}
}
