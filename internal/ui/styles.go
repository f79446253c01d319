package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for the active divider, selected items
	ColorMuted     = "241" // Gray - for idle dividers, hints
	ColorText      = "252" // Light gray - for normal text
)

// Styles contains shared style definitions used across the layout and demo.
var Styles = struct {
	Divider       lipgloss.Style // idle divider line
	DividerFocus  lipgloss.Style // divider handle holding keyboard focus
	DividerActive lipgloss.Style // divider currently being dragged
	Title         lipgloss.Style
	Hint          lipgloss.Style
}{
	Divider: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	DividerFocus: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	DividerActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
