// package tui provides the interactive terminal interface for Passmith.
// This file defines the shared lipgloss styles used across the different
// views to ensure a consistent look and feel.
package tui

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // A nice teal/cyan
	colorSpecial   = lipgloss.Color("208") // An orange for special attention
	colorError     = lipgloss.Color("196") // A bright red
	colorSuccess   = lipgloss.Color("40")  // A nice green
	colorWhite     = lipgloss.Color("231")
)

// Styles defines the reusable lipgloss styles for various UI components.
var (
	// General
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	// Help text
	helpStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	// Error messages
	errorStyle = lipgloss.NewStyle().Foreground(colorError)

	// Success messages
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	// Main title
	mainTitleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(1, 0)

	// Section titles
	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	// Lists
	itemStyle         = lipgloss.NewStyle()
	selectedItemStyle = lipgloss.NewStyle().Foreground(colorHighlight)

	// The generated secret itself
	secretStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.Color("237")).
			Padding(0, 1).
			Bold(true)

	// Status messages (e.g., "copied")
	statusMessageStyle = lipgloss.NewStyle().Foreground(colorSuccess)
)

// strengthStyles maps rating ordinals to display colors, weakest to strongest.
var strengthStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(colorError),
	lipgloss.NewStyle().Foreground(colorSpecial),
	lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("112")),
	lipgloss.NewStyle().Foreground(colorSuccess),
	lipgloss.NewStyle().Foreground(colorHighlight),
}
