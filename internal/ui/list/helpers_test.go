package list

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"searchlist/internal/ui/services/search"
	"searchlist/internal/ui/services/selection"
)

type filterResult struct {
	items []string
}

// testDelegate is an in-memory item source with substring search
type testDelegate struct {
	all      []string
	items    []string
	selected int

	setCalls  int
	confirmed []int
	canceled  int
	searches  []string
	rendered  []int
	hidden    map[int]bool
	initial   string
	empty     string
}

func newTestDelegate(n int) *testDelegate {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item %02d", i)
	}
	return &testDelegate{all: items, items: items, selected: selection.None}
}

func (d *testDelegate) ItemsCount() int { return len(d.items) }

func (d *testDelegate) RenderItem(ix, width int) (string, bool) {
	d.rendered = append(d.rendered, ix)
	if d.hidden[ix] || ix >= len(d.items) {
		return "", false
	}
	return ansi.Truncate(d.items[ix], width, ""), true
}

func (d *testDelegate) SetSelectedIndex(ix int) {
	d.setCalls++
	d.selected = ix
}

func (d *testDelegate) Confirm(ix int) { d.confirmed = append(d.confirmed, ix) }
func (d *testDelegate) Cancel()        { d.canceled++ }

func (d *testDelegate) RenderEmpty(width, height int) string { return d.empty }

func (d *testDelegate) RenderInitial(width, height int) (string, bool) {
	return d.initial, d.initial != ""
}

func (d *testDelegate) PerformSearch(ctx context.Context, query string) tea.Cmd {
	d.searches = append(d.searches, query)
	all := d.all
	return func() tea.Msg {
		var out []string
		for _, item := range all {
			if strings.Contains(item, query) {
				out = append(out, item)
			}
		}
		return filterResult{items: out}
	}
}

func (d *testDelegate) ApplySearch(query string, result tea.Msg) {
	if r, ok := result.(filterResult); ok {
		d.items = r.items
	}
}

// run executes cmd the way the bubbletea runtime would, feeding the list's
// own messages back into it. Spinner ticks are dropped. Messages meant for
// the host are returned.
func run(m *Model, cmd tea.Cmd) []tea.Msg {
	var out []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case search.CompletedMsg, search.LoadingDoneMsg:
			queue = append(queue, m.Update(msg))
		case ConfirmedMsg, CanceledMsg:
			out = append(out, msg)
		case spinner.TickMsg:
		}
	}
	return out
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func press(m *Model, t tea.KeyType) []tea.Msg {
	return run(m, m.Update(key(t)))
}

func typeText(m *Model, text string) []tea.Msg {
	var out []tea.Msg
	for _, r := range text {
		out = append(out, run(m, m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}))...)
	}
	return out
}

func click(m *Model, button tea.MouseButton, x, y int) []tea.Msg {
	return run(m, m.Update(tea.MouseMsg{
		X:      x,
		Y:      y,
		Action: tea.MouseActionPress,
		Button: button,
	}))
}

func plainLines(view string) []string {
	return strings.Split(ansi.Strip(view), "\n")
}
