package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/oulab/internal/i18n"
)

var rtlFillStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorPink))

// renderBar draws pct (0..1) on bar. Right-to-left locales fill from the right.
func renderBar(bar progress.Model, pct float64, dir i18n.Direction) string {
	pct = math.Max(0, math.Min(1, pct))
	if dir == i18n.LTR {
		return bar.ViewAs(pct)
	}

	filled := int(math.Round(float64(bar.Width) * pct))
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color(bar.EmptyColor)).
		Render(strings.Repeat(string(bar.Empty), bar.Width-filled))
	return empty + rtlFillStyle.Render(strings.Repeat(string(bar.Full), filled))
}

// spread places start and end on one line of width w, swapped for RTL.
func spread(start, end string, w int, dir i18n.Direction) string {
	if dir == i18n.RTL {
		start, end = end, start
	}
	gap := w - lipgloss.Width(start) - lipgloss.Width(end)
	if gap < 1 {
		gap = 1
	}
	return start + strings.Repeat(" ", gap) + end
}

// align pads block to width w on the reading-start side.
func align(block string, w int, dir i18n.Direction) string {
	pos := lipgloss.Left
	if dir == i18n.RTL {
		pos = lipgloss.Right
	}
	return lipgloss.NewStyle().Width(w).Align(pos).Render(block)
}

// row joins cells in reading order.
func row(dir i18n.Direction, cells ...string) string {
	if dir == i18n.RTL {
		reversed := make([]string, len(cells))
		for i, c := range cells {
			reversed[len(cells)-1-i] = c
		}
		cells = reversed
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// percentText formats a displayed value, rounding the animated float.
func percentText(v float64) string {
	return strconv.Itoa(int(math.Round(v))) + "%"
}
