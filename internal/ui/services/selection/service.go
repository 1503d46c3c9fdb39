package selection

import (
	"searchlist/internal/ui/services/events"
	"searchlist/internal/ui/services/scroll"
)

const redrawSource = "selection"

// Service handles selection and keyboard/mouse navigation
type Service struct {
	state    *State
	target   Target
	scroller Scroller
	bus      events.EventBus
}

// NewService creates a new selection service with nothing selected
func NewService(target Target, scroller Scroller, bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{
			Selected:     None,
			RightClicked: None,
		},
		target:   target,
		scroller: scroller,
		bus:      bus,
	}
}

// Selected returns the selected index, or None.
// The index is not re-validated; see ValidSelected.
func (s *Service) Selected() int {
	return s.state.Selected
}

// RightClicked returns the right-clicked index, or None
func (s *Service) RightClicked() int {
	return s.state.RightClicked
}

// IsSelected reports whether index is the selected row
func (s *Service) IsSelected(index int) bool {
	return s.state.Selected != None && s.state.Selected == index
}

// IsRightClicked reports whether index is the right-clicked row
func (s *Service) IsRightClicked(index int) bool {
	return s.state.RightClicked != None && s.state.RightClicked == index
}

// ValidSelected returns the selected index only if it still fits the
// current item count.
func (s *Service) ValidSelected() (int, bool) {
	ix := s.state.Selected
	if ix < 0 || ix >= s.target.ItemsCount() {
		return None, false
	}
	return ix, true
}

// SetSelectedIndex stores index and tells the target. No bounds check.
func (s *Service) SetSelectedIndex(index int) {
	if index < 0 {
		index = None
	}
	old := s.state.Selected
	s.state.Selected = index
	s.target.SetSelectedIndex(index)
	if old != index {
		s.bus.Publish(SelectionChangedEvent{OldIndex: old, NewIndex: index})
	}
}

// SelectPrevious moves the selection up, wrapping to the last row
func (s *Service) SelectPrevious() {
	count := s.target.ItemsCount()
	if count == 0 {
		return
	}

	ix := s.state.Selected
	switch {
	case ix == None, ix == 0:
		ix = count - 1
	case ix >= count:
		// stale index from a longer list
		ix = count - 1
	default:
		ix--
	}
	s.moveTo(ix)
}

// SelectNext moves the selection down, wrapping to the first row
func (s *Service) SelectNext() {
	count := s.target.ItemsCount()
	if count == 0 {
		return
	}

	ix := s.state.Selected
	if ix == None || ix >= count-1 {
		ix = 0
	} else {
		ix++
	}
	s.moveTo(ix)
}

// Confirm hands the selected index to the target. Selection is unchanged.
func (s *Service) Confirm() {
	if s.target.ItemsCount() == 0 {
		return
	}

	s.target.Confirm(s.state.Selected)
	s.bus.Publish(ConfirmedEvent{Index: s.state.Selected})
	s.redraw()
}

// Cancel clears the selection and tells the target
func (s *Service) Cancel() {
	s.SetSelectedIndex(None)
	s.target.Cancel()
	s.bus.Publish(CanceledEvent{})
	s.redraw()
}

// RightClick marks index without touching the selection
func (s *Service) RightClick(index int) {
	if index < 0 {
		return
	}
	s.state.RightClicked = index
	s.bus.Publish(RightClickChangedEvent{Index: index})
	s.redraw()
}

// ClickOutside drops the right-click mark, if any
func (s *Service) ClickOutside() {
	if s.state.RightClicked == None {
		return
	}
	s.clearRightClick()
	s.redraw()
}

// LeftClick selects index and confirms it
func (s *Service) LeftClick(index int) {
	if index < 0 {
		return
	}
	if s.state.RightClicked != None {
		s.clearRightClick()
	}
	s.SetSelectedIndex(index)
	s.Confirm()
}

func (s *Service) moveTo(index int) {
	s.SetSelectedIndex(index)
	if s.scroller != nil {
		s.scroller.ScrollToItem(index, scroll.AlignTop)
	}
	s.redraw()
}

func (s *Service) clearRightClick() {
	s.state.RightClicked = None
	s.bus.Publish(RightClickChangedEvent{Index: None})
}

func (s *Service) redraw() {
	s.bus.Publish(events.RedrawEvent{Source: redrawSource})
}
