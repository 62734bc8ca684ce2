// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/episodic-cli/episodic/color"
	"github.com/episodic-cli/episodic/style"
)

// statefulKeymap defines the keyboard interactions available within various application states.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	up, down,
	top, bottom,
	nextSeason, prevSeason,
	toggleWatched,
	openURL,
	filter, acceptFilter, clearFilter,
	retry,
	showHelp key.Binding
}

// setState updates the active keymap configuration to match the specified application state.
func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		nextSeason: key.NewBinding(
			key.WithKeys("]", "pgdown"),
			key.WithHelp("]", "next season"),
		),
		prevSeason: key.NewBinding(
			key.WithKeys("[", "pgup"),
			key.WithHelp("[", "prev season"),
		),
		toggleWatched: key.NewBinding(
			key.WithKeys("w", " "),
			key.WithHelp("w", "toggle watched"),
		),
		openURL: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp(style.Fg(color.Rose)("o"), style.Fg(color.Rose)("watch")),
		),
		filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		acceptFilter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply filter"),
		),
		clearFilter: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case loadingState:
		return to2(h(k.forceQuit))
	case errorState:
		return to2(h(k.retry, k.quit))
	case readyState:
		return h(k.openURL, k.toggleWatched, k.filter, k.showHelp, k.quit),
			h(k.up, k.down, k.top, k.bottom, k.prevSeason, k.nextSeason, k.openURL, k.toggleWatched, k.filter, k.clearFilter, k.quit)
	case filterState:
		return to2(h(k.up, k.down, k.acceptFilter, k.clearFilter))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}
