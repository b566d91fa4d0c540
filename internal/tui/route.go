package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/oulab/internal/i18n"
)

const busMarker = "◆"

var (
	routeDoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorPurple))
	routeTodoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	busStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(colorOrange)).Bold(true)
)

// RouteView draws the China to Jeddah line with the bus at the route percentage.
type RouteView struct {
	width int
}

// NewRouteView creates a new RouteView.
func NewRouteView() *RouteView {
	return &RouteView{width: 60}
}

// SetWidth sets the view width.
func (r *RouteView) SetWidth(width int) {
	r.width = width
}

// busColumn returns the marker column on a line of n cells. RTL travels from
// the right edge.
func busColumn(pct float64, n int, dir i18n.Direction) int {
	pct = math.Max(0, math.Min(100, pct))
	col := int(math.Round(pct / 100 * float64(n-1)))
	if dir == i18n.RTL {
		col = n - 1 - col
	}
	return col
}

// View renders the route for the displayed route percentage.
func (r *RouteView) View(l i18n.Locale, pct float64) string {
	s := l.Strings()
	dir := l.Direction()
	inner := cardInner(r.width)

	origin := dimStyle.Render(s.Origin)
	dest := dimStyle.Render(s.Destination)
	lineWidth := max(inner-lipgloss.Width(origin)-lipgloss.Width(dest)-2, 5)

	col := busColumn(pct, lineWidth, dir)
	var line strings.Builder
	for i := 0; i < lineWidth; i++ {
		travelled := i < col
		if dir == i18n.RTL {
			travelled = i > col
		}
		switch {
		case i == col:
			line.WriteString(busStyle.Render(busMarker))
		case travelled:
			line.WriteString(routeDoneStyle.Render("━"))
		default:
			line.WriteString(routeTodoStyle.Render("─"))
		}
	}

	// Origin sits at the reading start.
	track := row(dir, origin, " ", line.String(), " ", dest)

	label := busStyle.Render(s.Bus) + " " + dimStyle.Render(percentText(pct))
	labelLine := align(label, inner, dir)

	captions := spread(subtleStyle.Render(s.PurchaseDate), subtleStyle.Render(s.ArrivalDate), inner, dir)

	return card(cardStyle, r.width, lipgloss.JoinVertical(lipgloss.Left,
		align(cardTitleStyle.Render(s.Route), inner, dir),
		labelLine,
		track,
		captions,
	))
}
