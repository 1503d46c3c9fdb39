package list

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"searchlist/internal/ui/services/scroll"
)

// View renders the query input, then either the initial view, the empty
// view or the visible rows with the scrollbar.
func (m *Model) View() string {
	width := m.contentWidth()
	geom := geometry{width: width}

	var parts []string
	if m.query != nil {
		qv := m.query.View()
		parts = append(parts, qv)
		geom.rowsTop = lipgloss.Height(qv)
	}

	if body, ok := m.renderInitial(width, geom.rowsTop); ok {
		parts = append(parts, body)
	} else if count := m.delegate.ItemsCount(); count == 0 {
		if body := m.renderEmpty(width, geom.rowsTop); body != "" {
			parts = append(parts, body)
		}
	} else {
		body, rows, rowsWidth := m.renderRows(count, width, geom.rowsTop)
		parts = append(parts, body)
		geom.rows = rows
		geom.rowsWidth = rowsWidth
	}

	view := strings.Join(parts, "\n")
	geom.height = lipgloss.Height(view)
	if view == "" {
		geom.height = 0
	}
	m.geom = geom
	return view
}

func (m *Model) renderInitial(width, rowsTop int) (string, bool) {
	if m.query == nil || m.query.Value() != "" {
		return "", false
	}
	r, ok := m.delegate.(InitialRenderer)
	if !ok {
		return "", false
	}
	return r.RenderInitial(width, m.availableHeight(rowsTop))
}

func (m *Model) renderEmpty(width, rowsTop int) string {
	r, ok := m.delegate.(EmptyRenderer)
	if !ok {
		return ""
	}
	return r.RenderEmpty(width, m.availableHeight(rowsTop))
}

func (m *Model) renderRows(count, width, rowsTop int) (string, scroll.Range, int) {
	height := m.rowsHeight(count, rowsTop)
	visible := m.scroll.Window().Layout(count, height)
	if visible.Len() == 0 {
		return "", visible, 0
	}

	bar := ""
	if m.showScroll {
		bar = m.scrollbar.RenderScrollbar(count, visible.Start, height)
	}
	rowsWidth := width
	if bar != "" {
		rowsWidth--
	}
	itemWidth := m.itemWidth(rowsWidth)

	lines := make([]string, 0, visible.Len())
	for ix := visible.Start; ix < visible.End; ix++ {
		content, ok := m.delegate.RenderItem(ix, itemWidth)
		if !ok {
			lines = append(lines, m.rows.RenderBlank(rowsWidth))
			continue
		}
		lines = append(lines, m.rows.RenderRow(
			content,
			rowsWidth,
			m.size,
			m.selection.IsSelected(ix),
			m.selection.IsRightClicked(ix),
		))
	}
	body := strings.Join(lines, "\n")
	if bar != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, bar)
	}
	return body, visible, rowsWidth
}

// itemWidth is the room left for the delegate inside a row
func (m *Model) itemWidth(rowsWidth int) int {
	w := rowsWidth - 1 - 2*m.size.Padding()
	if w < 1 {
		w = rowsWidth - 1
	}
	return max(w, 0)
}

// availableHeight is the space under the query input, or 0 when unknown
func (m *Model) availableHeight(rowsTop int) int {
	if !m.hasDimensions {
		return m.maxHeight
	}
	h := max(m.height-rowsTop, 0)
	if m.maxHeight > 0 {
		h = min(h, m.maxHeight)
	}
	return h
}

// rowsHeight sizes the rows area: capped by the max height when set,
// otherwise the available height, or every row when nothing is known.
func (m *Model) rowsHeight(count, rowsTop int) int {
	if h := m.availableHeight(rowsTop); h > 0 || m.hasDimensions {
		return h
	}
	return count
}
