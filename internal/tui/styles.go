package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Brand palette.
const (
	colorViolet  = "#7941E5"
	colorPurple  = "#9324C6"
	colorPink    = "#F9326F"
	colorOrange  = "#EF883E"
	colorTrack   = "#2A2A2A"
	colorSubtle  = "243"
	colorDimText = "245"
	colorText    = "252"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	focusedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color(colorPink))

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorSubtle))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorDimText))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorText)).
			Bold(true)

	bigValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorPink)).
			Bold(true)

	dotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorOrange))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorPink)).
			Bold(true)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorDimText)).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	countdownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorPurple)).
			Padding(1, 2)
)

// newBar returns a gradient progress bar of the given width.
func newBar(width int) progress.Model {
	bar := progress.New(
		progress.WithGradient(colorViolet, colorPink),
		progress.WithoutPercentage(),
	)
	bar.Width = max(width, 4)
	bar.EmptyColor = colorTrack
	return bar
}

// cardInner returns the content width of a card rendered at outer width w.
func cardInner(w int) int {
	return max(w-4, 4)
}

// card renders content in style at outer width w. lipgloss widths include
// padding but not the border.
func card(style lipgloss.Style, w int, content string) string {
	return style.Width(max(w-2, 2)).Render(content)
}
