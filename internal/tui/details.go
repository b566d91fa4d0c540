package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/oulab/internal/i18n"
	"github.com/ShayCichocki/oulab/pkg/models"
)

// detailsWidth is the outer width of the details overlay.
const detailsWidth = 48

// renderDetails draws the overlay for an in-progress track, centred on a
// width x height canvas.
func renderDetails(l i18n.Locale, t models.Track, width, height int) string {
	s := l.Strings()
	dir := l.Direction()
	inner := detailsWidth - 6

	body := lipgloss.JoinVertical(lipgloss.Left,
		align(cardTitleStyle.Render(s.DetailsTitle+": "+t.Label), inner, dir),
		"",
		spread(dimStyle.Render(s.Status(t.Status)), valueStyle.Render(percentText(float64(t.Value))), inner, dir),
		renderBar(newBar(inner), t.Value.Fraction(), dir),
		"",
		align(badgeStyle.Render("esc · "+s.Close), inner, dir),
	)

	box := modalStyle.Width(detailsWidth - 2).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
