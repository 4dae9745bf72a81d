package widget

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the application keys. The rating itself takes no keyboard input.
type keyMap struct {
	Quit key.Binding
	Help key.Binding
}

var defaultKeys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			key.NewBinding(key.WithKeys("mouse"), key.WithHelp("hover", "preview")),
			key.NewBinding(key.WithKeys("click"), key.WithHelp("click", "commit")),
		},
		{k.Help, k.Quit},
	}
}
