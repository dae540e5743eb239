package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ChangedEntry is a config key whose object id differs between two runs.
type ChangedEntry struct {
	Key  string
	From string
	To   string
}

// RenderKeyDiff renders key-level changes between a previous and a new
// deployment config. Detail is an optional rendered document diff appended
// below the key summary.
func RenderKeyDiff(added, removed []string, changed []ChangedEntry, detail string) string {
	if len(added) == 0 && len(removed) == 0 && len(changed) == 0 {
		return "No changes from previous deployment config."
	}

	green := lipgloss.NewStyle().Foreground(ColorGreen)
	red := lipgloss.NewStyle().Foreground(ColorRed)
	yellow := lipgloss.NewStyle().Foreground(ColorYellow)

	var sb strings.Builder

	if len(added) > 0 {
		sb.WriteString(green.Render("Added:") + "\n")
		for _, k := range added {
			sb.WriteString("  + " + green.Render(k) + "\n")
		}
	}

	if len(removed) > 0 {
		sb.WriteString(red.Render("Removed:") + "\n")
		for _, k := range removed {
			sb.WriteString("  - " + red.Render(k) + "\n")
		}
	}

	if len(changed) > 0 {
		sb.WriteString(yellow.Render("Changed:") + "\n")
		for _, c := range changed {
			sb.WriteString(fmt.Sprintf("  ~ %s %s -> %s\n", yellow.Render(c.Key), StyleDim.Render(c.From), c.To))
		}
	}

	if detail != "" {
		sb.WriteString("\n")
		sb.WriteString(IndentDiff(detail, "  "))
	}

	sb.WriteString("Summary: ")
	sb.WriteString(diffSummary(len(added), len(removed), len(changed)))
	sb.WriteString("\n")

	return sb.String()
}

// IndentDiff indents every non-empty line of a diff string.
func IndentDiff(diff string, indent string) string {
	if diff == "" {
		return ""
	}

	var sb strings.Builder
	for _, line := range strings.Split(diff, "\n") {
		if line != "" {
			sb.WriteString(indent)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func diffSummary(added, removed, changed int) string {
	parts := make([]string, 0, 3)
	if added > 0 {
		parts = append(parts, fmt.Sprintf("%d added", added))
	}
	if removed > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", removed))
	}
	if changed > 0 {
		parts = append(parts, fmt.Sprintf("%d changed", changed))
	}
	return strings.Join(parts, ", ")
}
