package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/oulab/internal/catalog"
	"github.com/ShayCichocki/oulab/internal/i18n"
	"github.com/ShayCichocki/oulab/pkg/models"
)

// trackItem is one selectable row, remembering its category.
type trackItem struct {
	category models.Category
	track    models.Track
}

// TracksPanel lists the catalog tracks grouped by category.
type TracksPanel struct {
	items    []trackItem
	selected int
	focused  bool
	width    int

	doneStyle       lipgloss.Style
	inProgressStyle lipgloss.Style
	notStartedStyle lipgloss.Style
}

// NewTracksPanel creates a TracksPanel over the catalog.
func NewTracksPanel(c *catalog.Catalog) *TracksPanel {
	p := &TracksPanel{
		width: 60,

		doneStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		inProgressStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(colorOrange)),
		notStartedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(colorSubtle)),
	}
	for _, cat := range c.Categories() {
		// Categories() only returns categories the catalog holds.
		tracks, _ := c.Tracks(cat)
		for _, t := range tracks {
			p.items = append(p.items, trackItem{category: cat, track: t})
		}
	}
	return p
}

// SetWidth sets the panel width.
func (p *TracksPanel) SetWidth(width int) {
	p.width = width
}

// SetFocused sets whether the panel has keyboard focus.
func (p *TracksPanel) SetFocused(focused bool) {
	p.focused = focused
}

// Focused reports whether the panel has keyboard focus.
func (p *TracksPanel) Focused() bool {
	return p.focused
}

// MoveUp selects the previous track.
func (p *TracksPanel) MoveUp() {
	if p.selected > 0 {
		p.selected--
	}
}

// MoveDown selects the next track.
func (p *TracksPanel) MoveDown() {
	if p.selected < len(p.items)-1 {
		p.selected++
	}
}

// Selected returns the selected track.
func (p *TracksPanel) Selected() (models.Track, bool) {
	if p.selected < 0 || p.selected >= len(p.items) {
		return models.Track{}, false
	}
	return p.items[p.selected].track, true
}

// View renders the panel. scale (0..1) multiplies every bar for the intro animation.
func (p *TracksPanel) View(l i18n.Locale, scale float64) string {
	s := l.Strings()
	dir := l.Direction()
	inner := cardInner(p.width)

	var lines []string
	lines = append(lines, align(cardTitleStyle.Render(s.BusTracks), inner, dir))

	var current models.Category
	for i, item := range p.items {
		if item.category != current {
			current = item.category
			lines = append(lines, "", align(dimStyle.Render(s.Category(current)), inner, dir))
		}
		lines = append(lines, p.renderTrack(l, i, item.track, inner, scale)...)
	}

	style := cardStyle
	if p.focused {
		style = focusedCardStyle
	}
	return card(style, p.width, strings.Join(lines, "\n"))
}

func (p *TracksPanel) renderTrack(l i18n.Locale, i int, t models.Track, inner int, scale float64) []string {
	s := l.Strings()
	dir := l.Direction()

	marker := "  "
	labelStyle := valueStyle
	if p.focused && i == p.selected {
		marker = "› "
		labelStyle = selectedStyle
	}

	status := p.statusStyle(t.Status).Render("● " + s.Status(t.Status))
	if t.HasDetails() {
		status = row(dir, status, " ", badgeStyle.Render(s.Details))
	}
	top := spread(row(dir, marker, labelStyle.Render(t.Label)), status, inner, dir)

	value := float64(t.Value) * scale
	valueText := dimStyle.Render(percentText(value))
	barWidth := max(inner-lipgloss.Width(valueText)-3, 4)
	bar := renderBar(newBar(barWidth), value/100, dir)
	bottom := row(dir, "  ", bar, " ", valueText)

	return []string{top, bottom}
}

func (p *TracksPanel) statusStyle(status models.TrackStatus) lipgloss.Style {
	switch status {
	case models.TrackStatusDone:
		return p.doneStyle
	case models.TrackStatusInProgress:
		return p.inProgressStyle
	default:
		return p.notStartedStyle
	}
}
