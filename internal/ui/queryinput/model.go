package queryinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"searchlist/internal/ui/views"
)

const (
	DefaultPlaceholder = "Search..."
	DefaultPrompt      = "❯ "
)

// Event is something the input reports to its owner
type Event interface {
	isEvent()
}

// ChangeEvent is emitted whenever the text changes
type ChangeEvent struct {
	Text string
}

// SubmitEvent is emitted when the user presses enter in the input
type SubmitEvent struct {
	Text string
}

func (ChangeEvent) isEvent() {}
func (SubmitEvent) isEvent() {}

// Model is a single-line query input with a loading indicator
type Model struct {
	input   textinput.Model
	spinner spinner.Model
	styles  *views.Styles
	loading bool
	size    views.Size
	width   int
}

// New creates an unfocused, empty query input
func New(styles *views.Styles) *Model {
	if styles == nil {
		styles = views.NewStyles()
	}

	ti := textinput.New()
	ti.Placeholder = DefaultPlaceholder
	ti.Prompt = DefaultPrompt
	ti.PromptStyle = styles.QueryPrompt
	ti.PlaceholderStyle = styles.Placeholder

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = styles.Spinner

	return &Model{
		input:   ti,
		spinner: sp,
		styles:  styles,
		size:    views.SizeMedium,
	}
}

// SetPlaceholder replaces the hint shown while the input is empty
func (m *Model) SetPlaceholder(text string) {
	m.input.Placeholder = text
}

// SetBlink turns cursor blinking on or off
func (m *Model) SetBlink(blink bool) tea.Cmd {
	mode := cursor.CursorStatic
	if blink {
		mode = cursor.CursorBlink
	}
	return m.input.Cursor.SetMode(mode)
}

// Value returns the raw, untrimmed text
func (m *Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the text, reporting a change when it differs
func (m *Model) SetValue(text string) []Event {
	before := m.input.Value()
	m.input.SetValue(text)
	m.input.CursorEnd()
	return m.changed(before)
}

// Clear empties the input
func (m *Model) Clear() []Event {
	before := m.input.Value()
	m.input.Reset()
	return m.changed(before)
}

// Submit reports the current text as submitted
func (m *Model) Submit() []Event {
	return []Event{SubmitEvent{Text: m.input.Value()}}
}

// Focus focuses the input and starts the cursor blinking
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

func (m *Model) Blur() {
	m.input.Blur()
}

func (m *Model) Focused() bool {
	return m.input.Focused()
}

// Loading reports whether the loading indicator is shown
func (m *Model) Loading() bool {
	return m.loading
}

// SetLoading shows or hides the loading indicator. Showing it returns the
// command that starts the spinner.
func (m *Model) SetLoading(loading bool) tea.Cmd {
	if m.loading == loading {
		return nil
	}
	m.loading = loading
	if !loading {
		return nil
	}
	return m.spinner.Tick
}

// SetSize applies a size variant
func (m *Model) SetSize(size views.Size) {
	m.size = size
	m.layout()
}

func (m *Model) Size() views.Size {
	return m.size
}

// SetWidth sets the total width in cells
func (m *Model) SetWidth(width int) {
	m.width = width
	m.layout()
}

func (m *Model) layout() {
	if m.width <= 0 {
		m.input.Width = 0
		return
	}
	// prompt, cursor cell, indicator and padding
	w := m.width - ansi.StringWidth(m.input.Prompt) - 1 - 2 - 2*m.size.Padding()
	m.input.Width = max(w, 1)
}

// Update handles keys while focused, blink and spinner messages.
// Unrelated messages are ignored.
func (m *Model) Update(msg tea.Msg) ([]Event, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return nil, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return nil, cmd

	case tea.KeyMsg:
		if !m.input.Focused() {
			return nil, nil
		}
		if msg.Type == tea.KeyEnter {
			return m.Submit(), nil
		}
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m.changed(before), cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return nil, cmd
}

func (m *Model) changed(before string) []Event {
	if after := m.input.Value(); after != before {
		return []Event{ChangeEvent{Text: after}}
	}
	return nil
}

// View renders the input line with the indicator on the right
func (m *Model) View() string {
	indicator := "  "
	if m.loading {
		indicator = m.spinner.View()
	}

	line := m.input.View()
	if m.width > 0 {
		pad := m.size.Padding()
		inner := m.width - 2*pad - ansi.StringWidth(indicator)
		line = ansi.Truncate(line, inner, "")
		if fill := inner - ansi.StringWidth(line); fill > 0 {
			line += strings.Repeat(" ", fill)
		}
		line = lipgloss.NewStyle().Padding(0, pad).Render(line + indicator)
	} else {
		line += " " + indicator
	}
	return m.styles.Query.Render(line)
}
