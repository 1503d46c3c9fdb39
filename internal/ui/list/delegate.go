package list

import (
	"searchlist/internal/ui/services/search"
	"searchlist/internal/ui/services/selection"
)

// Delegate supplies the list's items. It is polled on every render and
// every navigation action; the list never caches what it returns.
type Delegate interface {
	ItemsCount() int
	// RenderItem renders row ix in at most width cells. Returning false
	// leaves the row blank but keeps its slot.
	RenderItem(ix, width int) (string, bool)
	// SetSelectedIndex stores the selection; it must not confirm.
	// ix is selection.None when nothing is selected.
	SetSelectedIndex(ix int)
}

// EmptyRenderer draws the view shown when there are no items
type EmptyRenderer interface {
	RenderEmpty(width, height int) string
}

// InitialRenderer draws the view shown while the query is empty, e.g. the
// last confirmed item. ok false falls back to the rows.
type InitialRenderer interface {
	RenderInitial(width, height int) (string, bool)
}

// Confirmer is told about enter presses and left clicks
type Confirmer interface {
	Confirm(ix int)
}

// Canceler is told when the list is dismissed
type Canceler interface {
	Cancel()
}

// ConfirmedIndexer reports the row confirmed last, or selection.None
type ConfirmedIndexer interface {
	ConfirmedIndex() int
}

// Searcher is implemented by delegates that filter on the query
type Searcher = search.Searcher

// delegateTarget adapts a Delegate to the selection service, filling in
// the optional callbacks and reporting outcomes to the list.
type delegateTarget struct {
	delegate  Delegate
	confirmed func(ix int)
	canceled  func()
}

var _ selection.Target = (*delegateTarget)(nil)

func (t *delegateTarget) ItemsCount() int {
	return t.delegate.ItemsCount()
}

func (t *delegateTarget) SetSelectedIndex(ix int) {
	t.delegate.SetSelectedIndex(ix)
}

func (t *delegateTarget) Confirm(ix int) {
	if c, ok := t.delegate.(Confirmer); ok {
		c.Confirm(ix)
	}
	if t.confirmed != nil {
		t.confirmed(ix)
	}
}

func (t *delegateTarget) Cancel() {
	if c, ok := t.delegate.(Canceler); ok {
		c.Cancel()
	}
	if t.canceled != nil {
		t.canceled()
	}
}

// searcherOf returns the delegate's searcher, or nil so that searches
// complete immediately
func searcherOf(d Delegate) search.Searcher {
	if s, ok := d.(search.Searcher); ok {
		return s
	}
	return nil
}
