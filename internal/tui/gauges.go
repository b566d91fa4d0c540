package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/oulab/internal/i18n"
)

// GaugeValues are the displayed (possibly mid-animation) gauge percentages.
type GaugeValues struct {
	Overall float64
	Phase1  float64
	Phase2  float64
}

// GaugesView renders the overall progress card and the two phase cards.
type GaugesView struct {
	width int
}

// NewGaugesView creates a new GaugesView.
func NewGaugesView() *GaugesView {
	return &GaugesView{width: 60}
}

// SetWidth sets the outer width of the view.
func (g *GaugesView) SetWidth(width int) {
	g.width = width
}

// View renders the gauges for locale l.
func (g *GaugesView) View(l i18n.Locale, v GaugeValues) string {
	s := l.Strings()
	dir := l.Direction()

	inner := cardInner(g.width)

	bigNumber := row(dir,
		bigValueStyle.Render(percentText(v.Overall)),
		" ",
		subtleStyle.Render(s.ProgressCaption),
	)
	overall := card(cardStyle, g.width, lipgloss.JoinVertical(lipgloss.Left,
		align(cardTitleStyle.Render(s.OverallCard), inner, dir),
		align(bigNumber, inner, dir),
		renderBar(newBar(inner), v.Overall/100, dir),
	))

	// Two phase cards share the width.
	half := g.width / 2
	phase1 := g.phaseCard(s.Phase1Card, v.Phase1, half, dir)
	phase2 := g.phaseCard(s.Phase2Card, v.Phase2, g.width-half, dir)

	return lipgloss.JoinVertical(lipgloss.Left,
		overall,
		row(dir, phase1, phase2),
	)
}

func (g *GaugesView) phaseCard(title string, value float64, width int, dir i18n.Direction) string {
	inner := cardInner(width)
	header := spread(cardTitleStyle.Render(title), valueStyle.Render(percentText(value)), inner, dir)
	return card(cardStyle, width, lipgloss.JoinVertical(lipgloss.Left,
		header,
		renderBar(newBar(inner), value/100, dir),
	))
}
