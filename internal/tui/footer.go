package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Footer renders the status message and keyboard hints.
type Footer struct {
	message string
	width   int
	help    help.Model
	keys    keyMap

	// Styles
	messageStyle   lipgloss.Style
	separatorStyle lipgloss.Style
}

// NewFooter creates a new Footer instance.
func NewFooter(keys keyMap) *Footer {
	h := help.New()
	h.ShortSeparator = " │ "

	return &Footer{
		help: h,
		keys: keys,

		messageStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorOrange)),

		separatorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("236")),
	}
}

// SetMessage sets the status message.
func (f *Footer) SetMessage(message string) {
	f.message = message
}

// Message returns the current status message.
func (f *Footer) Message() string {
	return f.message
}

// SetWidth sets the footer width.
func (f *Footer) SetWidth(width int) {
	f.width = width
	f.help.Width = width
}

// ToggleHelp switches between short and full key help.
func (f *Footer) ToggleHelp() {
	f.help.ShowAll = !f.help.ShowAll
}

// ShowingFullHelp reports whether full help is visible.
func (f *Footer) ShowingFullHelp() bool {
	return f.help.ShowAll
}

// View renders the footer.
func (f *Footer) View() string {
	hints := f.help.View(f.keys)
	if f.message == "" {
		return hints
	}
	if f.help.ShowAll {
		return f.messageStyle.Render(f.message) + "\n" + hints
	}
	return f.messageStyle.Render(f.message) + f.separatorStyle.Render(" │ ") + hints
}
