package input

import (
	"github.com/charmbracelet/bubbles/key"

	"searchlist/internal/config"
)

// KeyMap holds the list's key bindings
type KeyMap struct {
	Cancel         key.Binding
	Confirm        key.Binding
	SelectPrevious key.Binding
	SelectNext     key.Binding
}

// DefaultKeyMap returns esc, enter, up and down
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		SelectPrevious: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous"),
		),
		SelectNext: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
	}
}

// KeyMapFromConfig builds a key map from configured bindings.
// An empty list keeps the default keys for that action.
func KeyMapFromConfig(kb config.KeyBindings) KeyMap {
	km := DefaultKeyMap()
	rebind(&km.Cancel, kb.Cancel)
	rebind(&km.Confirm, kb.Confirm)
	rebind(&km.SelectPrevious, kb.SelectPrevious)
	rebind(&km.SelectNext, kb.SelectNext)
	return km
}

func rebind(b *key.Binding, keys []string) {
	if len(keys) == 0 {
		return
	}
	b.SetKeys(keys...)
	b.SetHelp(helpKey(keys), b.Help().Desc)
}

func helpKey(keys []string) string {
	label := ""
	for i, k := range keys {
		if i > 0 {
			label += "/"
		}
		switch k {
		case "up":
			k = "↑"
		case "down":
			k = "↓"
		}
		label += k
	}
	return label
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SelectPrevious, k.SelectNext, k.Confirm, k.Cancel}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SelectPrevious, k.SelectNext},
		{k.Confirm, k.Cancel},
	}
}
