package dashboard

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the dashboard keybindings.
type keyMap struct {
	Quit key.Binding
}

// keys accepts the printable q, ctrl+d (EOT), and escape as quit keys.
// ctrl+c is the interactive stand-in for SIGINT.
var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+d", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "quit"),
	),
}
