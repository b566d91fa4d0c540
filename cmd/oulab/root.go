package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ShayCichocki/oulab/internal/catalog"
	"github.com/ShayCichocki/oulab/internal/config"
	"github.com/ShayCichocki/oulab/internal/i18n"
	"github.com/ShayCichocki/oulab/internal/logging"
	"github.com/ShayCichocki/oulab/internal/progress"
	"github.com/ShayCichocki/oulab/internal/scheduler"
	"github.com/ShayCichocki/oulab/internal/tui"
)

var (
	flagConfig string
	flagLocale string
)

var rootCmd = &cobra.Command{
	Use:   "oulab",
	Short: "Oulab project-progress dashboard",
	Long: `Oulab shows project progress in the terminal.

With no arguments, launches the dashboard: overall and per-phase gauges,
bus tracks, the China to Jeddah route, and a countdown to launch that
updates every second. Sliders in the control panel override the displayed
percentages for the current session only.

Configuration is read from ~/.config/oulab/config.yaml, .oulab.yaml in the
current directory or a parent, and OULAB_* environment variables. Edits to
those files are applied while the dashboard is running.`,
	SilenceUsage: true,
	RunE:         runDashboard,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file merged over user and project config")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "Display language (en, ar, or a tag such as ar-EG)")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

// settings is the validated configuration a command runs with.
type settings struct {
	cfg     *config.Config
	target  time.Time
	locale  i18n.Locale
	catalog *catalog.Catalog
}

// loadConfig loads and validates the configuration, applying --locale.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if flagLocale != "" {
		cfg.Dashboard.Locale = flagLocale
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadSettings() (*settings, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	// Validate has already checked both.
	target, _ := cfg.TargetTime()
	locale, _ := cfg.LocaleValue()

	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	return &settings{cfg: cfg, target: target, locale: locale, catalog: cat}, nil
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.File == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadFile(cfg.Catalog.File)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

func runDashboard(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	logger := logging.NewOrNop(s.cfg.Log.File, s.cfg.Log.Level)
	defer logger.Close()

	logger.Info("dashboard starting",
		zap.Time("target", s.target),
		zap.String("locale", string(s.locale)),
		zap.Int("tracks", s.catalog.Len()),
		zap.Strings("config_files", s.cfg.Files))

	var updates <-chan *config.Config
	watcher, err := config.NewWatcher(s.cfg.Files, loadConfig, logger.Logger)
	if err != nil {
		logger.Warn("config hot reload disabled", zap.Error(err))
	} else {
		defer watcher.Close()
		updates = watcher.Updates()
	}

	err = tui.Run(tui.Options{
		Target:        s.target,
		Locale:        s.locale,
		TickInterval:  s.cfg.Dashboard.TickInterval,
		Animation:     s.cfg.Dashboard.Animation,
		Progress:      progress.New(s.cfg.InitialProgress()),
		Catalog:       s.catalog,
		Scheduler:     scheduler.New(scheduler.WithLogger(logger.Logger)),
		Logger:        logger.Logger,
		ConfigUpdates: updates,
	})
	if err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
