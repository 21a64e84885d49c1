// Package ui provides the Bubble Tea TUI for the arbitrage scanner.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#10B981") // Green
	ColorDanger    = lipgloss.Color("#EF4444") // Red
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorBorder    = lipgloss.Color("#374151") // Dark gray
)

// Styles
var (
	// Title style
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorPrimary).
			Padding(0, 2)

	// Table heading inside the results view
	TableHeadStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// Chain line with arbitrage
	ChainStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	// Label annotation next to a chain
	AnnotationStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Sentinel line for tables without arbitrage
	NoArbStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	// Error display
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	// Scanning indicator
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// Results box
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	// Help style
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)
)
