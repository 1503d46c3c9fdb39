package search

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"searchlist/internal/ui/services/scroll"
)

// MinLoadingDuration is how long the loading indicator stays up after a
// search completes, so fast searches don't flicker.
const MinLoadingDuration = 100 * time.Millisecond

// State holds search state
type State struct {
	Loading      bool
	LastQuery    string // last committed query, trimmed
	HasLastQuery bool   // false until the first search commits
}

// Searcher runs the item source's search.
//
// PerformSearch is called on the UI goroutine and returns the work to run off
// it; a nil command completes immediately. Whatever message the command
// returns is passed to ApplySearch back on the UI goroutine, unless a newer
// search has started in the meantime, in which case ctx is canceled and the
// result is dropped.
type Searcher interface {
	PerformSearch(ctx context.Context, query string) tea.Cmd
	ApplySearch(query string, result tea.Msg)
}

// LoadingSink shows the loading state, typically the query input's spinner
type LoadingSink interface {
	SetLoading(loading bool) tea.Cmd
}

// Scroller receives the reset-to-top directive after a search commits
type Scroller interface {
	ScrollToItem(index int, align scroll.Alignment)
}

// CompletedMsg carries a finished search back to the update loop
type CompletedMsg struct {
	TaskID uint64
	Query  string
	Result tea.Msg
}

// LoadingDoneMsg fires MinLoadingDuration after a search commits
type LoadingDoneMsg struct {
	TaskID uint64
}

// Event types
type SearchStartedEvent struct {
	Query  string
	TaskID uint64
}

type SearchCommittedEvent struct {
	Query string
}

type SearchSupersededEvent struct {
	TaskID uint64
}

type LoadingChangedEvent struct {
	Loading bool
}
