package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ViewState contains everything the host frame needs for rendering
type ViewState struct {
	Width  int
	Height int
	Title  string
	Status string // right-aligned next to the title
	Body   string // the list widget
	Help   string // pinned to the bottom line
}

// Renderer draws the host frame around the list
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &Renderer{styles: styles}
}

// Styles returns the styles shared with the list
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.titleLine(state))
	content.WriteString("\n")
	content.WriteString(state.Body)

	if state.Help != "" {
		helpText := r.styles.Help.Render(state.Help)

		// Push help to the bottom
		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := state.Height
		if availableLines <= 0 {
			availableLines = 24
		}
		paddingNeeded := availableLines - currentLines - 1
		if paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString("\n")
		content.WriteString(helpText)
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// BodySize returns the space left for the list inside the frame
func (r *Renderer) BodySize(state ViewState) (width, height int) {
	width = state.Width - r.styles.Main.GetHorizontalFrameSize()
	height = state.Height - 1 // title
	if state.Help != "" {
		height--
	}
	return max(width, 0), max(height, 0)
}

func (r *Renderer) titleLine(state ViewState) string {
	logo := r.styles.Title.Render(state.Title)
	if state.Status == "" {
		return logo
	}

	rightContent := r.styles.Status.Render(state.Status)
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	availableWidth := termWidth - r.styles.Main.GetHorizontalFrameSize()
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)

	if paddingWidth > 0 {
		return fmt.Sprintf("%s%s%s", logo, strings.Repeat(" ", paddingWidth), rightContent)
	}
	return fmt.Sprintf("%s  %s", logo, rightContent)
}
