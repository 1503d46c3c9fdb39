package scroll

import (
	"searchlist/internal/ui/services/events"
)

type directive struct {
	index int
	align Alignment
}

// Window is the virtualized row window: it knows the first visible row and
// turns scroll directives into an offset when the list is laid out.
type Window struct {
	offset  int
	height  int
	pending *directive
	bus     events.EventBus
}

func newWindow(bus events.EventBus) *Window {
	return &Window{bus: bus}
}

// Offset returns the first visible row from the last layout
func (w *Window) Offset() int {
	return w.offset
}

// Height returns the viewport height from the last layout
func (w *Window) Height() int {
	return w.height
}

// Pending reports whether a scroll directive is waiting for the next layout
func (w *Window) Pending() bool {
	return w.pending != nil
}

// Layout applies any pending directive for count rows shown height at a time
// and returns the rows to render.
func (w *Window) Layout(count, height int) Range {
	if height < 0 {
		height = 0
	}
	oldOffset, oldHeight := w.offset, w.height
	w.height = height

	if count <= 0 {
		w.offset = 0
		w.pending = nil
		w.publishIfChanged(oldOffset, oldHeight)
		return Range{}
	}

	// Keep the directive until there is room to honour it.
	if w.pending != nil && height > 0 {
		w.apply(*w.pending, count)
		w.pending = nil
	}
	w.clamp(count)
	w.publishIfChanged(oldOffset, oldHeight)

	end := w.offset + height
	if end > count {
		end = count
	}
	return Range{Start: w.offset, End: end}
}

// Visible reports whether index was on screen after the last layout
func (w *Window) Visible(index int) bool {
	return index >= w.offset && index < w.offset+w.height
}

func (w *Window) apply(d directive, count int) {
	index := d.index
	if index >= count {
		index = count - 1
	}

	switch d.align {
	case AlignCenter:
		w.offset = index - w.height/2
	default:
		if index < w.offset {
			w.offset = index
		} else if index >= w.offset+w.height {
			w.offset = index - w.height + 1
		}
	}
}

func (w *Window) clamp(count int) {
	maxOffset := count - w.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if w.offset > maxOffset {
		w.offset = maxOffset
	}
	if w.offset < 0 {
		w.offset = 0
	}
}

func (w *Window) publishIfChanged(oldOffset, oldHeight int) {
	if w.offset != oldOffset || w.height != oldHeight {
		w.bus.Publish(ViewportChangedEvent{
			Offset: w.offset,
			Height: w.height,
		})
	}
}
