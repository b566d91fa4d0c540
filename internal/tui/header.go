package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/oulab/internal/i18n"
)

// headerHeight is the number of lines the header occupies.
const headerHeight = 3

// Header renders the brand mark, title, and language switch.
type Header struct {
	width  int
	locale i18n.Locale
	tabs   LanguageTabs
}

// NewHeader creates a new Header.
func NewHeader() *Header {
	return &Header{
		width:  80,
		locale: i18n.English,
		tabs:   NewLanguageTabs(),
	}
}

// SetWidth sets the header width.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetLocale sets the active locale.
func (h *Header) SetLocale(l i18n.Locale) {
	h.locale = l
	h.tabs.SetActive(l)
}

// View renders the header.
func (h *Header) View() string {
	s := h.locale.Strings()

	// Gradient mark.
	colors := []string{colorViolet, colorPurple, colorPink}
	var mark strings.Builder
	for _, c := range colors {
		mark.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("██"))
	}

	title := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(s.Title),
		subtleStyle.Render(s.Subtitle),
	)
	brand := lipgloss.JoinHorizontal(lipgloss.Center, mark.String(), "  ", title)

	switcher := h.tabs.View()

	gap := h.width - lipgloss.Width(brand) - lipgloss.Width(switcher)
	if gap < 1 {
		gap = 1
	}

	// Mirror the bar for right-to-left locales.
	var line string
	if h.locale.Direction() == i18n.RTL {
		line = lipgloss.JoinHorizontal(lipgloss.Top, switcher, strings.Repeat(" ", gap), brand)
	} else {
		line = lipgloss.JoinHorizontal(lipgloss.Top, brand, strings.Repeat(" ", gap), switcher)
	}

	return lipgloss.NewStyle().PaddingBottom(1).Render(line)
}

// Height returns the header height in lines.
func (h *Header) Height() int {
	return headerHeight
}
