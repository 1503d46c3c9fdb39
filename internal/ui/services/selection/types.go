package selection

import (
	"searchlist/internal/ui/services/scroll"
)

// None marks an absent index
const None = -1

// State holds selection state
type State struct {
	Selected     int // None when nothing is selected
	RightClicked int // None when no row is marked
}

// Target is the item source as seen by the selection service.
// It is polled for the count on every action and told about every change.
type Target interface {
	ItemsCount() int
	SetSelectedIndex(index int)
	Confirm(index int)
	Cancel()
}

// Scroller receives scroll directives after navigation
type Scroller interface {
	ScrollToItem(index int, align scroll.Alignment)
}

// Event types
type SelectionChangedEvent struct {
	OldIndex int
	NewIndex int
}

type ConfirmedEvent struct {
	Index int
}

type CanceledEvent struct{}

type RightClickChangedEvent struct {
	Index int // None when cleared
}
