package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/oulab/internal/countdown"
	"github.com/ShayCichocki/oulab/internal/i18n"
)

// CountdownCard shows today's date and the time left until launch.
type CountdownCard struct {
	width int
}

// NewCountdownCard creates a new CountdownCard.
func NewCountdownCard() *CountdownCard {
	return &CountdownCard{width: 40}
}

// SetWidth sets the card width.
func (c *CountdownCard) SetWidth(width int) {
	c.width = width
}

// View renders the card for the last computed result. now only dates the
// card; target titles the countdown.
func (c *CountdownCard) View(l i18n.Locale, now, target time.Time, r countdown.Result) string {
	s := l.Strings()
	dir := l.Direction()
	inner := cardInner(c.width)

	value := countdownStyle.Render(s.Countdown(r))
	if r.Elapsed {
		value = bigValueStyle.Render(s.Countdown(r))
	}

	date := ""
	if !now.IsZero() {
		date = l.FormatDate(now)
	}

	return card(cardStyle, c.width, lipgloss.JoinVertical(lipgloss.Left,
		align(subtleStyle.Render(date), inner, dir),
		"",
		align(dimStyle.Render(l.CountdownLabel(target)), inner, dir),
		align(value, inner, dir),
	))
}
