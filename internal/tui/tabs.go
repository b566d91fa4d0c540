package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/oulab/internal/i18n"
)

// LanguageTabs is the EN/AR switch shown in the header.
type LanguageTabs struct {
	locales []i18n.Locale
	active  int

	// Styles
	activeStyle   lipgloss.Style
	inactiveStyle lipgloss.Style
}

// NewLanguageTabs creates the switch with English active.
func NewLanguageTabs() LanguageTabs {
	return LanguageTabs{
		locales: i18n.Locales(),

		activeStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("15")).
			Padding(0, 1),

		inactiveStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("237")).
			Padding(0, 1),
	}
}

// View renders the switch.
func (t LanguageTabs) View() string {
	rendered := make([]string, 0, len(t.locales))
	for i, l := range t.locales {
		label := strings.ToUpper(string(l))
		if i == t.active {
			rendered = append(rendered, t.activeStyle.Render(label))
		} else {
			rendered = append(rendered, t.inactiveStyle.Render(label))
		}
	}
	return strings.Join(rendered, " ")
}

// SetActive marks l as the active locale. Unknown locales are ignored.
func (t *LanguageTabs) SetActive(l i18n.Locale) {
	for i, candidate := range t.locales {
		if candidate == l {
			t.active = i
			return
		}
	}
}

// Active returns the active locale.
func (t LanguageTabs) Active() i18n.Locale {
	return t.locales[t.active]
}
