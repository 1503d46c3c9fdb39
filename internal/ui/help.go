package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"searchlist/internal/ui/input"
)

// HelpRenderer renders the key help shown in the pager
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
	note    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		key:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		note: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

// RenderHelpContent generates the pager content from the active key maps
func (r *HelpRenderer) RenderHelpContent(list input.KeyMap, app AppKeyMap) string {
	var help strings.Builder

	help.WriteString(r.title.Render("searchlist help"))
	help.WriteString("\n")

	r.writeSection(&help, "List", list.SelectPrevious, list.SelectNext, list.Confirm, list.Cancel)
	help.WriteString("\n")

	help.WriteString(r.section.Render("Search"))
	help.WriteString("\n")
	r.writeRow(&help, "type", "Filter items")
	r.writeRow(&help, "ctrl+u", "Clear the query")
	help.WriteString("\n")

	help.WriteString(r.section.Render("Mouse"))
	help.WriteString("\n")
	r.writeRow(&help, "left click", "Select a row")
	r.writeRow(&help, "right click", "Mark a row")
	help.WriteString("\n")

	r.writeSection(&help, "Other", app.Help, app.Quit)
	help.WriteString("\n")

	help.WriteString(r.note.Render("  Press q to close this pager"))
	return help.String()
}

func (r *HelpRenderer) writeSection(b *strings.Builder, name string, bindings ...key.Binding) {
	b.WriteString(r.section.Render(name))
	b.WriteString("\n")
	for _, binding := range bindings {
		if !binding.Enabled() {
			continue
		}
		h := binding.Help()
		r.writeRow(b, h.Key, h.Desc)
	}
}

func (r *HelpRenderer) writeRow(b *strings.Builder, k, desc string) {
	fmt.Fprintf(b, "  %s %s\n", r.key.Width(12).Render(k), r.desc.Render(desc))
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("release terminal: %w", err)
	}
	defer func() {
		// Give ov time to leave the alternate screen
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return fmt.Errorf("open pager: %w", err)
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
