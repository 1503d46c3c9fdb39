package views

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	activeMarker = "▌"
	clickMarker  = "▏"
)

// RowRenderer draws list rows with the selection overlay
type RowRenderer struct {
	styles *Styles
}

// NewRowRenderer creates a new row renderer
func NewRowRenderer(styles *Styles) *RowRenderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &RowRenderer{styles: styles}
}

// RenderRow renders one row exactly width cells wide. The first cell is the
// marker column: active rows get a bar and a background, right-clicked rows
// a thin border.
func (r *RowRenderer) RenderRow(content string, width int, size Size, active, rightClicked bool) string {
	if width <= 0 {
		return ""
	}

	marker := " "
	switch {
	case active:
		marker = r.styles.ActiveMarker.Render(activeMarker)
	case rightClicked:
		marker = r.styles.ClickMarker.Render(clickMarker)
	}
	if width == 1 {
		return marker
	}

	pad := size.Padding()
	inner := width - 1 - 2*pad
	if inner < 1 {
		pad = 0
		inner = width - 1
	}

	// Only the first line of multi-line content is shown
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		content = content[:i]
	}
	content = ansi.Truncate(content, inner, "…")

	style := r.styles.Row
	if active {
		style = r.styles.ActiveRow
	}
	fill := inner - ansi.StringWidth(content) + pad
	body := strings.Repeat(" ", pad) + content + strings.Repeat(" ", fill)
	return marker + style.Render(body)
}

// RenderBlank renders an empty row slot
func (r *RowRenderer) RenderBlank(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(" ", width)
}

// HighlightMatches renders text with the runes at the given positions in
// the highlight style
func (r *RowRenderer) HighlightMatches(text string, positions []int) string {
	if len(positions) == 0 {
		return text
	}
	marked := make(map[int]bool, len(positions))
	for _, p := range positions {
		marked[p] = true
	}

	var b strings.Builder
	var run strings.Builder
	inMatch := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if inMatch {
			b.WriteString(r.styles.Highlight.Render(run.String()))
		} else {
			b.WriteString(run.String())
		}
		run.Reset()
	}
	// positions are byte offsets of the first byte of each matched rune
	for i, ch := range text {
		if marked[i] != inMatch {
			flush()
			inMatch = marked[i]
		}
		run.WriteRune(ch)
	}
	flush()
	return b.String()
}
