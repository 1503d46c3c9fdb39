package list

import (
	"log"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"searchlist/internal/ui/input"
	inputtypes "searchlist/internal/ui/input/types"
	"searchlist/internal/ui/queryinput"
	"searchlist/internal/ui/services/events"
	"searchlist/internal/ui/services/scroll"
	"searchlist/internal/ui/services/search"
	"searchlist/internal/ui/services/selection"
	"searchlist/internal/ui/views"
)

// DefaultWidth is used until the host gives the list its dimensions
const DefaultWidth = 40

// ConfirmedMsg is sent to the host after the delegate was told about a
// confirm. Index is selection.None when nothing was selected.
type ConfirmedMsg struct {
	Index int
}

// CanceledMsg is sent to the host after the list was dismissed
type CanceledMsg struct{}

// Model is a searchable, virtualized list
type Model struct {
	delegate  Delegate
	target    *delegateTarget
	selection *selection.Service
	search    *search.Controller
	scroll    *scroll.Handle
	query     *queryinput.Model
	keys      *input.Handler
	bus       events.EventBus

	styles    *views.Styles
	rows      *views.RowRenderer
	scrollbar *views.ScrollbarRenderer

	size        views.Size
	maxHeight   int
	showScroll  bool
	placeholder string
	focused     bool

	// bounds given by the host
	x, y          int
	width, height int
	hasDimensions bool

	// geometry of the last View, for mouse hit testing
	geom geometry

	outbox []tea.Msg
}

type geometry struct {
	width, height int
	rowsTop       int
	rowsWidth     int
	rows          scroll.Range
}

// New creates an unfocused list over delegate
func New(delegate Delegate, opts ...Option) *Model {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if s.bus == nil {
		s.bus = &events.NullBus{}
	}
	if s.styles == nil {
		s.styles = views.NewStyles()
	}

	m := &Model{
		delegate:    delegate,
		keys:        input.New(s.keys),
		bus:         s.bus,
		styles:      s.styles,
		rows:        views.NewRowRenderer(s.styles),
		scrollbar:   views.NewScrollbarRenderer(s.styles),
		size:        s.size,
		maxHeight:   s.maxHeight,
		showScroll:  s.scrollbar,
		placeholder: s.placeholder,
	}

	m.target = &delegateTarget{
		delegate:  delegate,
		confirmed: func(ix int) { m.outbox = append(m.outbox, ConfirmedMsg{Index: ix}) },
		canceled:  func() { m.outbox = append(m.outbox, CanceledMsg{}) },
	}
	m.scroll = scroll.NewHandle(s.bus)
	m.selection = selection.NewService(m.target, m.scroll, s.bus)
	m.search = search.NewController(searcherOf(delegate), m.scroll, nil, s.bus)

	if s.query {
		in := s.queryInput
		if in == nil {
			in = queryinput.New(s.styles)
		}
		m.attachQuery(in)
	}
	return m
}

func (m *Model) attachQuery(in *queryinput.Model) tea.Cmd {
	m.query = in
	if in == nil {
		m.search.SetSink(nil)
		return nil
	}
	if m.placeholder != "" {
		in.SetPlaceholder(m.placeholder)
	}
	in.SetSize(m.size)
	in.SetWidth(m.contentWidth())
	m.search.SetSink(in)
	if m.focused {
		return in.Focus()
	}
	return nil
}

// Delegate returns the item source
func (m *Model) Delegate() Delegate {
	return m.delegate
}

// SelectedIndex returns the selected row, or selection.None
func (m *Model) SelectedIndex() int {
	return m.selection.Selected()
}

// SetSelectedIndex selects ix without confirming or scrolling
func (m *Model) SetSelectedIndex(ix int) {
	m.selection.SetSelectedIndex(ix)
}

// RightClickedIndex returns the right-clicked row, or selection.None
func (m *Model) RightClickedIndex() int {
	return m.selection.RightClicked()
}

// ConfirmedIndex asks the delegate which row was confirmed last
func (m *Model) ConfirmedIndex() int {
	if c, ok := m.delegate.(ConfirmedIndexer); ok {
		return c.ConfirmedIndex()
	}
	return selection.None
}

// Loading reports whether a search is running or just finished
func (m *Model) Loading() bool {
	return m.search.Loading()
}

// LastQuery returns the last committed, trimmed query
func (m *Model) LastQuery() (string, bool) {
	return m.search.LastQuery()
}

// Query returns the raw text of the query input. ok is false without one.
func (m *Model) Query() (string, bool) {
	if m.query == nil {
		return "", false
	}
	return m.query.Value(), true
}

// SetQuery replaces the query text and searches for it
func (m *Model) SetQuery(text string) tea.Cmd {
	if m.query == nil {
		return nil
	}
	return m.handleQueryEvents(m.query.SetValue(text))
}

// QueryInput returns the query input, or nil
func (m *Model) QueryInput() *queryinput.Model {
	return m.query
}

// SetQueryInput swaps the query input. The search in flight, if any, is
// abandoned. nil removes the input.
func (m *Model) SetQueryInput(in *queryinput.Model) tea.Cmd {
	reset := m.search.Reset()
	return tea.Batch(reset, m.attachQuery(in))
}

// Size returns the size variant
func (m *Model) Size() views.Size {
	return m.size
}

// SetSize changes the size variant, including the query input's
func (m *Model) SetSize(size views.Size) {
	m.size = size
	if m.query != nil {
		m.query.SetSize(size)
	}
}

// SetOrigin places the list's top-left corner in screen cells
func (m *Model) SetOrigin(x, y int) {
	m.x, m.y = x, y
}

// SetDimensions sets the space the list may use
func (m *Model) SetDimensions(width, height int) {
	m.width, m.height = max(width, 0), max(height, 0)
	m.hasDimensions = true
	if m.query != nil {
		m.query.SetWidth(m.contentWidth())
	}
}

// KeyMap returns the list's bindings, usable with bubbles/help
func (m *Model) KeyMap() input.KeyMap {
	return m.keys.KeyMap()
}

// Focus focuses the list, and with it the query input
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	if m.query != nil {
		return m.query.Focus()
	}
	return nil
}

func (m *Model) Blur() {
	m.focused = false
	if m.query != nil {
		m.query.Blur()
	}
}

func (m *Model) Focused() bool {
	return m.focused
}

// SelectPrevious moves the selection up, wrapping around
func (m *Model) SelectPrevious() tea.Cmd {
	m.selection.SelectPrevious()
	return m.flush()
}

// SelectNext moves the selection down, wrapping around
func (m *Model) SelectNext() tea.Cmd {
	m.selection.SelectNext()
	return m.flush()
}

// Confirm confirms the selected row
func (m *Model) Confirm() tea.Cmd {
	m.selection.Confirm()
	return m.flush()
}

// Cancel clears the selection and dismisses the list
func (m *Model) Cancel() tea.Cmd {
	m.selection.Cancel()
	return m.flush()
}

// ScrollToItem brings ix into view on the next render
func (m *Model) ScrollToItem(ix int, align scroll.Alignment) {
	m.scroll.ScrollToItem(ix, align)
}

// Update handles keys while focused, mouse presses and the list's own
// asynchronous messages.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case search.CompletedMsg, search.LoadingDoneMsg:
		_, cmd = m.search.Update(msg)

	case spinner.TickMsg:
		if m.query != nil {
			_, cmd = m.query.Update(msg)
		}

	case tea.KeyMsg:
		if !m.focused {
			return nil
		}
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	default:
		if m.query != nil {
			var evs []queryinput.Event
			evs, cmd = m.query.Update(msg)
			cmd = tea.Batch(cmd, m.handleQueryEvents(evs))
		}
	}

	return tea.Batch(cmd, m.flush())
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if action, ok := m.keys.Resolve(msg); ok {
		return m.handleAction(action)
	}
	if m.query == nil {
		return nil
	}
	evs, cmd := m.query.Update(msg)
	return tea.Batch(cmd, m.handleQueryEvents(evs))
}

func (m *Model) handleAction(action inputtypes.Action) tea.Cmd {
	switch action.(type) {
	case inputtypes.CancelAction:
		m.selection.Cancel()
	case inputtypes.ConfirmAction:
		if m.query != nil {
			return m.handleQueryEvents(m.query.Submit())
		}
		m.selection.Confirm()
	case inputtypes.SelectPreviousAction:
		m.selection.SelectPrevious()
	case inputtypes.SelectNextAction:
		m.selection.SelectNext()
	default:
		log.Printf("list: unhandled action %s", action.Type())
	}
	return nil
}

func (m *Model) handleQueryEvents(evs []queryinput.Event) tea.Cmd {
	var cmds []tea.Cmd
	for _, ev := range evs {
		switch ev := ev.(type) {
		case queryinput.ChangeEvent:
			cmds = append(cmds, m.search.Change(ev.Text))
		case queryinput.SubmitEvent:
			m.selection.Confirm()
		}
	}
	return tea.Batch(cmds...)
}

// flush turns confirm and cancel notifications into messages for the host
func (m *Model) flush() tea.Cmd {
	if len(m.outbox) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(m.outbox))
	for _, msg := range m.outbox {
		msg := msg
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	m.outbox = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

func (m *Model) contentWidth() int {
	if m.hasDimensions {
		return m.width
	}
	return DefaultWidth
}
