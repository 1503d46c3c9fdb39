package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"searchlist/internal/ui/input/types"
)

// Handler maps key presses to list actions
type Handler struct {
	keys KeyMap
}

func New(keys KeyMap) *Handler {
	return &Handler{keys: keys}
}

// KeyMap returns the bindings in use
func (h *Handler) KeyMap() KeyMap {
	return h.keys
}

// SetKeyMap replaces the bindings
func (h *Handler) SetKeyMap(keys KeyMap) {
	h.keys = keys
}

// Resolve returns the action bound to msg. ok is false when the key is not
// one of the list's bindings and should go to the query input instead.
func (h *Handler) Resolve(msg tea.KeyMsg) (action types.Action, ok bool) {
	switch {
	case key.Matches(msg, h.keys.Cancel):
		return types.CancelAction{}, true
	case key.Matches(msg, h.keys.Confirm):
		return types.ConfirmAction{}, true
	case key.Matches(msg, h.keys.SelectPrevious):
		return types.SelectPreviousAction{}, true
	case key.Matches(msg, h.keys.SelectNext):
		return types.SelectNextAction{}, true
	}
	return nil, false
}
