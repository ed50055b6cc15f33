package tracker

import (
	"github.com/charmbracelet/bubbles/key"
)

type keymap struct {
	togglePlay key.Binding
	breakTime  key.Binding
	reset      key.Binding
	share      key.Binding
	export     key.Binding
	history    key.Binding
	settings   key.Binding
	darkMode   key.Binding
	shortcuts  key.Binding
	clear      key.Binding
	esc        key.Binding
	confirm    key.Binding
	cancel     key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "start/pause"),
	),
	breakTime: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "break"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	share: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "share"),
	),
	export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export csv"),
	),
	history: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "history"),
	),
	settings: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "settings"),
	),
	darkMode: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "dark mode"),
	),
	shortcuts: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "shortcuts"),
	),
	clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear history"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	confirm: key.NewBinding(
		key.WithKeys("enter", "y"),
		key.WithHelp("enter/y", "confirm"),
	),
	cancel: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "cancel"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp returns the bindings shown under the counter.
func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.togglePlay, k.breakTime, k.reset, k.shortcuts, k.quit}
}

// FullHelp returns every binding, grouped for the shortcuts dialog.
func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.togglePlay, k.breakTime, k.reset},
		{k.share, k.export, k.history},
		{k.settings, k.darkMode, k.shortcuts},
		{k.esc, k.confirm, k.cancel, k.quit},
	}
}
