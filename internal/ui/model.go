package ui

import (
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"searchlist/internal/config"
	"searchlist/internal/source"
	"searchlist/internal/ui/input"
	"searchlist/internal/ui/list"
	"searchlist/internal/ui/services/events"
	"searchlist/internal/ui/services/search"
	"searchlist/internal/ui/services/selection"
	"searchlist/internal/ui/views"
)

const (
	appTitle = "searchlist"

	// ReadyMarker is shown once the first frame is laid out when E2EEnv is set
	ReadyMarker = "__READY__"
	E2EEnv      = "SEARCHLIST_E2E_TEST"
)

// AppKeyMap holds the keys the host handles before the list sees them
type AppKeyMap struct {
	Help key.Binding
	Quit key.Binding
}

// DefaultAppKeyMap returns f1 or ctrl+g for help and ctrl+c to quit.
// Some terminals send f1 as a sequence bubbletea reads as plain runes.
func DefaultAppKeyMap() AppKeyMap {
	return AppKeyMap{
		Help: key.NewBinding(
			key.WithKeys("f1", "ctrl+g"),
			key.WithHelp("f1/ctrl+g", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// footerKeys joins the list and host bindings for the help footer
type footerKeys struct {
	list input.KeyMap
	app  AppKeyMap
}

func (k footerKeys) ShortHelp() []key.Binding {
	return append(k.list.ShortHelp(), k.app.Help, k.app.Quit)
}

func (k footerKeys) FullHelp() [][]key.Binding {
	return append(k.list.FullHelp(), []key.Binding{k.app.Help, k.app.Quit})
}

// Model is the full screen host around the list
type Model struct {
	config   *config.Config
	source   *source.Lines
	list     *list.Model
	renderer *views.Renderer
	help     help.Model
	helpText *HelpRenderer
	keys     AppKeyMap

	width       int
	height      int
	inPagerMode bool // tracks if we're currently in pager mode
	e2e         bool
	ready       bool

	// Program reference for terminal management
	program *tea.Program
	helpOps *HelpOps
}

// NewModel creates the host for src using the list settings in cfg
func NewModel(cfg *config.Config, src *source.Lines) (*Model, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	size, err := views.ParseSize(cfg.List.Size)
	if err != nil {
		return nil, fmt.Errorf("invalid list size: %w", err)
	}

	styles := views.NewStyles()
	bus := events.NewBus()

	opts := []list.Option{
		list.WithStyles(styles),
		list.WithEventBus(bus),
		list.WithSize(size),
		list.WithKeyMap(input.KeyMapFromConfig(cfg.Keys)),
		list.WithPlaceholder(cfg.List.Placeholder),
		list.WithMaxHeight(cfg.List.MaxHeight),
	}
	if !cfg.List.Scrollbar {
		opts = append(opts, list.WithoutScrollbar())
	}
	if !cfg.List.Query {
		opts = append(opts, list.WithoutQuery())
	}

	m := &Model{
		config:   cfg,
		source:   src,
		list:     list.New(src, opts...),
		renderer: views.NewRenderer(styles),
		help:     help.New(),
		helpText: NewHelpRenderer(),
		keys:     DefaultAppKeyMap(),
		e2e:      os.Getenv(E2EEnv) == "1",
	}

	bus.Subscribe(events.TypeOf(search.SearchCommittedEvent{}), func(e interface{}) {
		log.Printf("Search committed: %q (%d/%d items)", e.(search.SearchCommittedEvent).Query, src.ItemsCount(), src.Total())
	})
	bus.Subscribe(events.TypeOf(search.SearchSupersededEvent{}), func(e interface{}) {
		log.Printf("Search %d superseded", e.(search.SearchSupersededEvent).TaskID)
	})

	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// List returns the hosted list
func (m *Model) List() *list.Model {
	return m.list
}

// Result returns the confirmed item, if the list was confirmed
func (m *Model) Result() (string, bool) {
	if m.source.Canceled() {
		return "", false
	}
	return m.source.Chosen()
}

func (m *Model) Init() tea.Cmd {
	return m.list.Focus()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		if m.e2e {
			m.ready = true
		}
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, m.list.Cancel()
		case key.Matches(msg, m.keys.Help):
			return m, m.fetchHelpPager()
		}
		return m, m.list.Update(msg)

	case list.ConfirmedMsg:
		return m, m.handleConfirmed(msg)

	case list.CanceledMsg:
		log.Printf("Selection canceled")
		return m, tea.Quit

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	return m, m.list.Update(msg)
}

// handleConfirmed quits with the confirmed item. Enter without a selected row
// picks the first one.
func (m *Model) handleConfirmed(msg list.ConfirmedMsg) tea.Cmd {
	if item, ok := m.source.Item(msg.Index); ok {
		log.Printf("Confirmed %d: %s", msg.Index, item)
		return tea.Quit
	}
	if msg.Index == selection.None && m.source.ItemsCount() > 0 {
		m.list.SetSelectedIndex(0)
		return m.list.Confirm()
	}
	return nil
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager() tea.Cmd {
	if m.program == nil {
		log.Printf("Help pager unavailable: program not set")
		return nil
	}
	content := m.helpText.RenderHelpContent(m.list.KeyMap(), m.keys)
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(content)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

func (m *Model) layout() {
	w, h := m.renderer.BodySize(m.viewState(""))
	m.list.SetDimensions(w, h)
	// Rows start below the title line, inside the frame padding
	m.list.SetOrigin(m.renderer.Styles().Main.GetPaddingLeft(), 1)
}

func (m *Model) viewState(body string) views.ViewState {
	status := fmt.Sprintf("%d/%d", m.source.ItemsCount(), m.source.Total())
	if m.ready {
		status += " " + ReadyMarker
	}
	return views.ViewState{
		Width:  m.width,
		Height: m.height,
		Title:  appTitle,
		Status: status,
		Body:   body,
		Help:   m.help.View(footerKeys{list: m.list.KeyMap(), app: m.keys}),
	}
}

func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.viewState(m.list.View()))
}
