package tui

import (
	"strings"

	"github.com/ShayCichocki/oulab/internal/i18n"
	"github.com/ShayCichocki/oulab/internal/progress"
	"github.com/ShayCichocki/oulab/pkg/models"
)

// ControlPanel shows one slider per metric. Values are the model's, not the
// animated ones, so a key press is reflected at once.
type ControlPanel struct {
	metrics  []progress.Metric
	selected int
	focused  bool
	width    int
}

// NewControlPanel creates a ControlPanel with the first slider selected.
func NewControlPanel() *ControlPanel {
	return &ControlPanel{
		metrics: progress.Metrics(),
		focused: true,
		width:   40,
	}
}

// SetWidth sets the panel width.
func (c *ControlPanel) SetWidth(width int) {
	c.width = width
}

// SetFocused sets whether the panel has keyboard focus.
func (c *ControlPanel) SetFocused(focused bool) {
	c.focused = focused
}

// Focused reports whether the panel has keyboard focus.
func (c *ControlPanel) Focused() bool {
	return c.focused
}

// MoveUp selects the previous slider.
func (c *ControlPanel) MoveUp() {
	if c.selected > 0 {
		c.selected--
	}
}

// MoveDown selects the next slider.
func (c *ControlPanel) MoveDown() {
	if c.selected < len(c.metrics)-1 {
		c.selected++
	}
}

// Selected returns the metric of the selected slider.
func (c *ControlPanel) Selected() progress.Metric {
	return c.metrics[c.selected]
}

// View renders the sliders with the current model values.
func (c *ControlPanel) View(l i18n.Locale, values []progress.Value) string {
	s := l.Strings()
	dir := l.Direction()
	inner := cardInner(c.width)

	current := make(map[progress.Metric]models.Percent, len(values))
	for _, v := range values {
		current[v.Metric] = v.Percent
	}

	lines := []string{align(cardTitleStyle.Render(s.ControlPanel), inner, dir)}
	for i, m := range c.metrics {
		label := valueStyle.Render(s.Slider(m))
		if c.focused && i == c.selected {
			label = selectedStyle.Render("› " + s.Slider(m))
		}
		pct := current[m]
		lines = append(lines,
			"",
			spread(label, dimStyle.Render(percentText(float64(pct))), inner, dir),
			renderBar(newBar(inner), pct.Fraction(), dir),
		)
	}

	style := cardStyle
	if c.focused {
		style = focusedCardStyle
	}
	return card(style, c.width, strings.Join(lines, "\n"))
}
