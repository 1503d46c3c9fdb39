package list

import (
	"searchlist/internal/ui/input"
	"searchlist/internal/ui/queryinput"
	"searchlist/internal/ui/services/events"
	"searchlist/internal/ui/views"
)

type settings struct {
	maxHeight   int
	scrollbar   bool
	query       bool
	queryInput  *queryinput.Model
	size        views.Size
	keys        input.KeyMap
	bus         events.EventBus
	styles      *views.Styles
	placeholder string
}

func defaultSettings() settings {
	return settings{
		scrollbar: true,
		query:     true,
		size:      views.SizeMedium,
		keys:      input.DefaultKeyMap(),
	}
}

// Option configures a list at construction
type Option func(*settings)

// WithMaxHeight caps the rows area at n lines
func WithMaxHeight(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxHeight = n
		}
	}
}

// WithoutScrollbar hides the scrollbar
func WithoutScrollbar() Option {
	return func(s *settings) { s.scrollbar = false }
}

// WithoutQuery builds the list without a query input
func WithoutQuery() Option {
	return func(s *settings) {
		s.query = false
		s.queryInput = nil
	}
}

// WithQueryInput uses the given input instead of creating one
func WithQueryInput(in *queryinput.Model) Option {
	return func(s *settings) {
		s.queryInput = in
		s.query = in != nil
	}
}

func WithSize(size views.Size) Option {
	return func(s *settings) { s.size = size }
}

func WithKeyMap(keys input.KeyMap) Option {
	return func(s *settings) { s.keys = keys }
}

// WithEventBus publishes selection, search and scroll events on bus
func WithEventBus(bus events.EventBus) Option {
	return func(s *settings) { s.bus = bus }
}

func WithStyles(styles *views.Styles) Option {
	return func(s *settings) { s.styles = styles }
}

// WithPlaceholder sets the query input's placeholder
func WithPlaceholder(text string) Option {
	return func(s *settings) { s.placeholder = text }
}
