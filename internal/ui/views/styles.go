package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the list and its host
type Styles struct {
	Title        lipgloss.Style
	Dim          lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Status       lipgloss.Style
	Query        lipgloss.Style
	QueryPrompt  lipgloss.Style
	Placeholder  lipgloss.Style
	Spinner      lipgloss.Style
	Row          lipgloss.Style
	ActiveRow    lipgloss.Style
	ActiveMarker lipgloss.Style
	ClickMarker  lipgloss.Style
	Highlight    lipgloss.Style
	Empty        lipgloss.Style
	Initial      lipgloss.Style
	ScrollTrack  lipgloss.Style
	ScrollThumb  lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:  lipgloss.NewStyle().Faint(true),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().Padding(0, 1),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Query: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("241")),
		QueryPrompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Spinner:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Row:          lipgloss.NewStyle(),
		ActiveRow:    lipgloss.NewStyle().Background(lipgloss.Color("238")),
		ActiveMarker: lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		ClickMarker:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Empty:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Initial:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ScrollTrack:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		ScrollThumb:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
