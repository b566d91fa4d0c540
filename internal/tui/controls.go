package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/ShayCichocki/oulab/internal/i18n"
	"github.com/ShayCichocki/oulab/internal/progress"
)

// Slider steps.
const (
	smallStep = 1
	largeStep = 10
)

// SetMetricMsg sets a slider from outside the key handler.
type SetMetricMsg struct {
	Metric progress.Metric
	Value  int
}

// SetLocaleMsg switches the display language.
type SetLocaleMsg struct {
	Locale i18n.Locale
}

// keyMap holds the dashboard key bindings.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Decrease   key.Binding
	Increase   key.Binding
	DecreaseLg key.Binding
	IncreaseLg key.Binding
	Focus      key.Binding
	Details    key.Binding
	Close      key.Binding
	Toggle     key.Binding
	English    key.Binding
	Arabic     key.Binding
	Replay     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "-1%"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "+1%"),
		),
		DecreaseLg: key.NewBinding(
			key.WithKeys("shift+left", "H", "["),
			key.WithHelp("H/[", "-10%"),
		),
		IncreaseLg: key.NewBinding(
			key.WithKeys("shift+right", "L", "]"),
			key.WithHelp("L/]", "+10%"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "sliders/tracks"),
		),
		Details: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "close"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "EN/AR"),
		),
		English: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "EN"),
		),
		Arabic: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "AR"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replay"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Decrease, k.Increase, k.Focus, k.Toggle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Focus},
		{k.Decrease, k.Increase, k.DecreaseLg, k.IncreaseLg},
		{k.Details, k.Close, k.Replay},
		{k.Toggle, k.English, k.Arabic, k.Help, k.Quit},
	}
}
