package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the divider-handle key bindings. Arrow keys only act while
// the corresponding handle holds focus; everything else falls through to the
// host model.
type KeyMap struct {
	CycleFocus key.Binding
	PrevFocus  key.Binding
	Narrow     key.Binding // shrink the left sub-region
	Widen      key.Binding // grow the left sub-region
	Raise      key.Binding // shrink the top band
	Lower      key.Binding // grow the top band
	Reset      key.Binding // reset the focused divider to its default ratio
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		CycleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus divider"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "focus previous"),
		),
		Narrow: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "narrow left pane"),
		),
		Widen: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "widen left pane"),
		),
		Raise: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "shrink top band"),
		),
		Lower: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "grow top band"),
		),
		Reset: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "reset divider"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CycleFocus, k.Narrow, k.Widen, k.Raise, k.Lower, k.Reset}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.CycleFocus, k.PrevFocus, k.Reset},
		{k.Narrow, k.Widen, k.Raise, k.Lower},
	}
}
