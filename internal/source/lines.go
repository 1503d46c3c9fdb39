// Package source provides item sources for the list widget.
package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"

	"searchlist/internal/ui/services/selection"
	"searchlist/internal/ui/views"
)

// chunkSize is how many lines are matched between cancellation checks
const chunkSize = 2048

type row struct {
	index     int   // into Lines.items
	positions []int // matched byte offsets
}

// Result is what a finished search hands back to ApplySearch
type Result struct {
	Query string
	rows  []row
}

// Len returns the number of matching lines
func (r Result) Len() int {
	return len(r.rows)
}

// Lines is an item source over plain text lines with fuzzy search
type Lines struct {
	items  []string
	rows   []row
	query  string
	styles *views.Styles
	render *views.RowRenderer

	summary bool

	selected      int
	confirmed     int
	confirmedItem string
	hasConfirmed  bool
	canceled      bool
}

// Option configures Lines
type Option func(*Lines)

// WithSummary shows a summary instead of the rows while the query is empty
func WithSummary() Option {
	return func(l *Lines) { l.summary = true }
}

// WithStyles shares the list's styles
func WithStyles(styles *views.Styles) Option {
	return func(l *Lines) { l.styles = styles }
}

// NewLines creates a source showing every line until the first search
func NewLines(items []string, opts ...Option) *Lines {
	l := &Lines{
		items:     items,
		selected:  selection.None,
		confirmed: selection.None,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.styles == nil {
		l.styles = views.NewStyles()
	}
	l.render = views.NewRowRenderer(l.styles)
	l.rows = allRows(len(items))
	return l
}

// ReadLines reads non-blank lines from r
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return lines, nil
}

func allRows(n int) []row {
	rows := make([]row, n)
	for i := range rows {
		rows[i].index = i
	}
	return rows
}

// Query returns the query of the applied search
func (l *Lines) Query() string {
	return l.query
}

// Item returns the line shown at row ix
func (l *Lines) Item(ix int) (string, bool) {
	if ix < 0 || ix >= len(l.rows) {
		return "", false
	}
	return l.items[l.rows[ix].index], true
}

// Total returns the number of lines regardless of the query
func (l *Lines) Total() int {
	return len(l.items)
}

func (l *Lines) ItemsCount() int {
	return len(l.rows)
}

func (l *Lines) RenderItem(ix, width int) (string, bool) {
	if ix < 0 || ix >= len(l.rows) {
		return "", false
	}
	r := l.rows[ix]
	text := l.render.HighlightMatches(l.items[r.index], r.positions)
	return ansi.Truncate(text, width, "…"), true
}

func (l *Lines) RenderEmpty(width, height int) string {
	return l.styles.Empty.Render("No matches")
}

func (l *Lines) RenderInitial(width, height int) (string, bool) {
	if !l.summary {
		return "", false
	}
	var b strings.Builder
	b.WriteString(l.styles.Initial.Render(fmt.Sprintf("%d items, type to search", len(l.items))))
	if l.hasConfirmed {
		b.WriteString("\n")
		b.WriteString(l.styles.Dim.Render(ansi.Truncate("last: "+l.confirmedItem, width, "…")))
	}
	return b.String(), true
}

func (l *Lines) SetSelectedIndex(ix int) {
	l.selected = ix
}

// Selected returns the row the list reported as selected
func (l *Lines) Selected() int {
	return l.selected
}

func (l *Lines) Confirm(ix int) {
	item, ok := l.Item(ix)
	if !ok {
		return
	}
	l.confirmed = ix
	l.confirmedItem = item
	l.hasConfirmed = true
}

func (l *Lines) ConfirmedIndex() int {
	return l.confirmed
}

// Chosen returns the line confirmed last
func (l *Lines) Chosen() (string, bool) {
	return l.confirmedItem, l.hasConfirmed
}

func (l *Lines) Cancel() {
	l.canceled = true
}

func (l *Lines) Canceled() bool {
	return l.canceled
}

// PerformSearch matches query against a snapshot of the lines off the UI
// goroutine. An empty query matches everything in order.
func (l *Lines) PerformSearch(ctx context.Context, query string) tea.Cmd {
	items := l.items
	return func() tea.Msg {
		rows, err := matchLines(ctx, query, items)
		if err != nil {
			return nil
		}
		return Result{Query: query, rows: rows}
	}
}

func (l *Lines) ApplySearch(query string, result tea.Msg) {
	r, ok := result.(Result)
	if !ok {
		return
	}
	l.query = query
	l.rows = r.rows
}

func matchLines(ctx context.Context, query string, items []string) ([]row, error) {
	if query == "" {
		return allRows(len(items)), nil
	}

	var matches fuzzy.Matches
	for start := 0; start < len(items); start += chunkSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(start+chunkSize, len(items))
		for _, match := range fuzzy.Find(query, items[start:end]) {
			match.Index += start
			matches = append(matches, match)
		}
	}
	sort.Stable(matches)

	rows := make([]row, len(matches))
	for i, match := range matches {
		rows[i] = row{index: match.Index, positions: match.MatchedIndexes}
	}
	return rows, nil
}
