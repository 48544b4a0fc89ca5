package main

import (
	"github.com/charmbracelet/bubbles/key"
)

// The drawer is driven by the mouse; the keyboard only leaves the program.
type Keymap struct {
	Quit key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
	}
}
