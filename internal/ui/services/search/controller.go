package search

import (
	"context"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"searchlist/internal/ui/services/events"
	"searchlist/internal/ui/services/scroll"
)

// task is the one search in flight. Replacing it is the only way a search
// gets canceled.
type task struct {
	id     uint64
	query  string
	cancel context.CancelFunc
}

// Controller turns query changes into searches and drives the loading flag
type Controller struct {
	state    *State
	searcher Searcher
	scroller Scroller
	sink     LoadingSink
	bus      events.EventBus

	current task
	lastID  uint64
	delay   time.Duration
}

// NewController creates a controller with no search in flight.
// searcher, scroller and sink may be nil.
func NewController(searcher Searcher, scroller Scroller, sink LoadingSink, bus events.EventBus) *Controller {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Controller{
		state:    &State{},
		searcher: searcher,
		scroller: scroller,
		sink:     sink,
		bus:      bus,
		delay:    MinLoadingDuration,
	}
}

// SetSink replaces the loading sink, e.g. when the host swaps the query input
func (c *Controller) SetSink(sink LoadingSink) {
	c.sink = sink
}

// Loading reports whether a search is running or has just finished
func (c *Controller) Loading() bool {
	return c.state.Loading
}

// LastQuery returns the last committed query
func (c *Controller) LastQuery() (string, bool) {
	return c.state.LastQuery, c.state.HasLastQuery
}

// Change handles a new raw query from the input.
// It returns nil when the trimmed query equals the last committed one.
func (c *Controller) Change(raw string) tea.Cmd {
	query := strings.TrimSpace(raw)
	if c.state.HasLastQuery && query == c.state.LastQuery {
		return nil
	}

	loadingCmd := c.setLoading(true)

	ctx, cancel := context.WithCancel(context.Background())
	var search tea.Cmd
	if c.searcher != nil {
		search = c.searcher.PerformSearch(ctx, query)
	}

	c.replace(task{id: c.nextID(), query: query, cancel: cancel})
	c.bus.Publish(SearchStartedEvent{Query: query, TaskID: c.current.id})

	return tea.Batch(loadingCmd, supervise(c.current.id, query, search))
}

// Update consumes the controller's own messages. handled is false for
// anything else.
func (c *Controller) Update(msg tea.Msg) (handled bool, cmd tea.Cmd) {
	switch msg := msg.(type) {
	case CompletedMsg:
		if msg.TaskID != c.current.id {
			log.Printf("search: dropping result for %q from superseded task %d", msg.Query, msg.TaskID)
			return true, nil
		}
		return true, c.commit(msg)

	case LoadingDoneMsg:
		if msg.TaskID != c.current.id {
			return true, nil
		}
		c.finish()
		return true, c.setLoading(false)
	}
	return false, nil
}

// Reset abandons the search in flight, if any, and clears the loading flag
func (c *Controller) Reset() tea.Cmd {
	c.replace(task{id: c.nextID()})
	if !c.state.Loading {
		return nil
	}
	return c.setLoading(false)
}

func (c *Controller) commit(msg CompletedMsg) tea.Cmd {
	if c.searcher != nil {
		c.searcher.ApplySearch(msg.Query, msg.Result)
	}
	if c.scroller != nil {
		c.scroller.ScrollToItem(0, scroll.AlignTop)
	}
	c.state.LastQuery = msg.Query
	c.state.HasLastQuery = true
	c.bus.Publish(SearchCommittedEvent{Query: msg.Query})

	id := msg.TaskID
	return tea.Tick(c.delay, func(time.Time) tea.Msg {
		return LoadingDoneMsg{TaskID: id}
	})
}

// replace installs t as the current task, canceling whatever ran before
func (c *Controller) replace(t task) {
	if c.current.cancel != nil {
		c.current.cancel()
		c.bus.Publish(SearchSupersededEvent{TaskID: c.current.id})
	}
	c.current = t
}

// finish releases the current task's context once it has fully run
func (c *Controller) finish() {
	if c.current.cancel != nil {
		c.current.cancel()
		c.current.cancel = nil
	}
}

func (c *Controller) nextID() uint64 {
	c.lastID++
	return c.lastID
}

func (c *Controller) setLoading(loading bool) tea.Cmd {
	c.state.Loading = loading
	c.bus.Publish(LoadingChangedEvent{Loading: loading})
	c.bus.Publish(events.RedrawEvent{Source: "search"})
	if c.sink == nil {
		return nil
	}
	return c.sink.SetLoading(loading)
}

// supervise waits for the search off the UI goroutine and reports back
func supervise(id uint64, query string, search tea.Cmd) tea.Cmd {
	return func() tea.Msg {
		var result tea.Msg
		if search != nil {
			result = search()
		}
		return CompletedMsg{TaskID: id, Query: query, Result: result}
	}
}
