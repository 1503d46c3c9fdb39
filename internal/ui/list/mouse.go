package list

import (
	tea "github.com/charmbracelet/bubbletea"

	"searchlist/internal/ui/services/selection"
)

// handleMouse acts on button presses: left on a row confirms it, right on a
// row marks it. Any left press, and any press outside the list, drops the mark.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || tea.MouseEvent(msg).IsWheel() {
		return
	}

	if !m.contains(msg.X, msg.Y) {
		m.selection.ClickOutside()
		return
	}

	ix := m.rowAt(msg.X, msg.Y)
	switch msg.Button {
	case tea.MouseButtonLeft:
		if ix == selection.None {
			m.selection.ClickOutside()
			return
		}
		m.selection.LeftClick(ix)
	case tea.MouseButtonRight:
		if ix != selection.None {
			m.selection.RightClick(ix)
		}
	}
}

// contains reports whether the cell is inside the last rendered view
func (m *Model) contains(x, y int) bool {
	return x >= m.x && x < m.x+m.geom.width &&
		y >= m.y && y < m.y+m.geom.height
}

// rowAt maps a cell to the row drawn there, or selection.None
func (m *Model) rowAt(x, y int) int {
	if x-m.x >= m.geom.rowsWidth {
		return selection.None
	}
	line := y - m.y - m.geom.rowsTop
	if line < 0 || line >= m.geom.rows.Len() {
		return selection.None
	}
	return m.geom.rows.Start + line
}
