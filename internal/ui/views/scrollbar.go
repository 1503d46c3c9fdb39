package views

import "strings"

const (
	trackGlyph = "│"
	thumbGlyph = "┃"
)

// ScrollbarRenderer draws a one-column vertical scrollbar
type ScrollbarRenderer struct {
	styles *Styles
}

// NewScrollbarRenderer creates a new scrollbar renderer
func NewScrollbarRenderer(styles *Styles) *ScrollbarRenderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &ScrollbarRenderer{styles: styles}
}

// RenderScrollbar renders height lines for count rows of which
// [offset, offset+height) are visible. It returns "" when nothing overflows.
func (s *ScrollbarRenderer) RenderScrollbar(count, offset, height int) string {
	if height <= 0 || count <= height {
		return ""
	}
	low, high := ThumbInterval(count, offset, offset+height, height)

	lines := make([]string, height)
	for i := range lines {
		if i >= low && i < high {
			lines[i] = s.styles.ScrollThumb.Render(thumbGlyph)
		} else {
			lines[i] = s.styles.ScrollTrack.Render(trackGlyph)
		}
	}
	return strings.Join(lines, "\n")
}

// ThumbInterval maps the visible rows [low, high) of n onto a track of m
// cells. The thumb keeps the same size while the window size is unchanged
// and is never empty.
func ThumbInterval(n, low, high, m int) (int, int) {
	f := func(i int) int {
		return int(float64(i)/float64(n)*float64(m) + 0.5)
	}
	thumbLow := f(low)
	thumbHigh := thumbLow + f(high-low)

	if thumbLow == thumbHigh {
		if thumbHigh >= m {
			thumbLow--
		} else {
			thumbHigh++
		}
	}
	if thumbHigh > m {
		thumbLow -= thumbHigh - m
		thumbHigh = m
	}
	if thumbLow < 0 {
		thumbLow = 0
	}
	return thumbLow, thumbHigh
}
