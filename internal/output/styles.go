package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette: named constants for all ANSI 256 colors used in the CLI.
var (
	// ColorCyan is used for identifiable nouns: networks, keys, addresses.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for added keys and successful steps.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for changed keys and warnings.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for removed keys.
	ColorRed = lipgloss.Color("196")

	// ColorBoldRed is used for failed steps.
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (networks, keys, object ids).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (publishing, funding, transferring).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Step status constants.
const (
	StatusOK      = "ok"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
	StatusAdded   = "added"
	StatusChanged = "changed"
	StatusRemoved = "removed"
)

// StatusStyle returns the lipgloss style for a given status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusOK, StatusAdded:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusChanged:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusSkipped:
		return lipgloss.NewStyle().Faint(true)
	case StatusRemoved:
		return lipgloss.NewStyle().Foreground(ColorRed)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minKeyColumnWidth is the minimum width of the key column so that
// object ids line up.
const minKeyColumnWidth = 28

// FormatEntryLine renders one deployment config entry as
// "k:<key>  <objectId>" with the key padded for alignment.
func FormatEntryLine(key, objectID string) string {
	padding := minKeyColumnWidth - len(key)
	if padding < 2 {
		padding = 2
	}
	return StyleDim.Render("k:") + StyleNoun.Render(key) + strings.Repeat(" ", padding) + objectID
}

// FormatStepLine renders a pipeline step with a color-coded status suffix.
func FormatStepLine(step, status string) string {
	padding := minKeyColumnWidth - len(step)
	if padding < 2 {
		padding = 2
	}
	return StyleAction.Render(step) + strings.Repeat(" ", padding) + StatusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
