package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/oulab/internal/catalog"
	"github.com/ShayCichocki/oulab/internal/countdown"
	"github.com/ShayCichocki/oulab/internal/i18n"
	"github.com/ShayCichocki/oulab/internal/progress"
	"github.com/ShayCichocki/oulab/pkg/models"
)

// statusBarWidth is the width of the text bars printed by status.
const statusBarWidth = 20

var statusNow string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print a snapshot of the dashboard",
	Long: `Print the dashboard once as plain text and exit.

Shows:
  - Today's date and the countdown to launch
  - Overall, phase, and route progress from configuration
  - Every track with its status`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusNow, "now", "", "Evaluate the countdown at this RFC 3339 instant instead of the current time")
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	now := time.Now()
	if statusNow != "" {
		now, err = time.Parse(time.RFC3339, statusNow)
		if err != nil {
			return fmt.Errorf("invalid --now: %w", err)
		}
	}

	model := progress.New(s.cfg.InitialProgress())
	return writeStatus(cmd.OutOrStdout(), s.locale, now, s.target, model.Snapshot(), s.catalog)
}

// writeStatus prints the snapshot to w.
func writeStatus(w io.Writer, l i18n.Locale, now, target time.Time, values []progress.Value, cat *catalog.Catalog) error {
	s := l.Strings()
	bold := color.New(color.Bold)

	fmt.Fprintf(w, "%s\n%s\n\n", bold.Sprint(s.Title), l.FormatDate(now))

	result := countdown.Compute(target, now)
	remaining := s.Countdown(result)
	if result.Elapsed {
		remaining = color.New(color.FgMagenta, color.Bold).Sprint(remaining)
	}
	fmt.Fprintf(w, "%s: %s\n\n", l.CountdownLabel(target), remaining)

	for _, v := range values {
		fmt.Fprintf(w, "%-32s %s %3d%%\n", metricLabel(s, v.Metric), textBar(v.Percent, statusBarWidth), v.Percent)
	}

	done, all := 0, cat.All()
	for _, t := range all {
		if t.Status == models.TrackStatusDone {
			done++
		}
	}
	fmt.Fprintf(w, "\n%s: %d/%d\n", s.Status(models.TrackStatusDone), done, len(all))

	for _, category := range cat.Categories() {
		tracks, err := cat.Tracks(category)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\n%s\n", bold.Sprint(s.Category(category)))
		for _, t := range tracks {
			printTrack(w, s, t)
		}
	}
	return nil
}

// metricLabel names a metric the way its gauge is titled.
func metricLabel(s i18n.Strings, m progress.Metric) string {
	switch m {
	case progress.MetricOverall:
		return s.OverallCard
	case progress.MetricPhase1:
		return s.Phase1Card
	case progress.MetricPhase2:
		return s.Phase2Card
	default:
		return s.Slider(m)
	}
}

func printTrack(w io.Writer, s i18n.Strings, t models.Track) {
	symbol, attr := statusSymbol(t.Status)
	c := color.New(attr)
	fmt.Fprintf(w, "  %s %-36s %3d%%  %s\n", c.Sprint(symbol), t.Label, t.Value, c.Sprint(s.Status(t.Status)))
}

func statusSymbol(status models.TrackStatus) (string, color.Attribute) {
	switch status {
	case models.TrackStatusDone:
		return "✓", color.FgGreen
	case models.TrackStatusInProgress:
		return "◐", color.FgYellow
	default:
		return "○", color.FgHiBlack
	}
}

// textBar renders p as a fixed-width bar of block characters.
func textBar(p models.Percent, width int) string {
	filled := int(p.Fraction()*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
