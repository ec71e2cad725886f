package quiz

import "charm.land/bubbles/v2/key"

// keyMap holds the quiz screen bindings.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Choose  key.Binding
	Pick    key.Binding
	Next    key.Binding
	Retry   key.Binding
	History key.Binding
	Back    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Move")),
		Down:    key.NewBinding(key.WithKeys("down", "j")),
		Choose:  key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "Choose")),
		Pick:    key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "Pick")),
		Next:    key.NewBinding(key.WithKeys("right", "tab", "n"), key.WithHelp("→", "Next")),
		Retry:   key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("Enter", "Try again")),
		History: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "History")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Home")),
	}
}
