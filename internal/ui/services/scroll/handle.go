package scroll

import (
	"searchlist/internal/ui/services/events"
)

// Handle is the directive-only side of the scroll coordinator.
// Navigation and search hold the same *Handle as the Window that renders
// rows; they ask for a row to be shown and never read the offset back.
type Handle struct {
	window *Window
	bus    events.EventBus
}

// NewHandle creates a handle bound to a fresh window
func NewHandle(bus events.EventBus) *Handle {
	if bus == nil {
		bus = &events.NullBus{}
	}
	h := &Handle{bus: bus}
	h.window = newWindow(bus)
	return h
}

// ScrollToItem asks the window to bring index into view on its next layout
func (h *Handle) ScrollToItem(index int, align Alignment) {
	if index < 0 {
		return
	}
	h.window.pending = &directive{index: index, align: align}
	h.bus.Publish(ScrollRequestedEvent{Index: index, Alignment: align})
}

// Window returns the virtualization side tracking this handle
func (h *Handle) Window() *Window {
	return h.window
}
