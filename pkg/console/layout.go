package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Layout helpers compose boxed sections for multi-line command output. They
// return strings so callers decide where to print them.

// LayoutTitleBox renders a centred title between horizontal rules of the
// given width.
func LayoutTitleBox(title string, width int) string {
	rule := dimStyle.Render(strings.Repeat("─", width))
	styled := boldStyle.Width(width).Align(lipgloss.Center).Render(title)
	return lipgloss.JoinVertical(lipgloss.Left, rule, styled, rule)
}

// LayoutInfoSection renders a "label: value" line with a bold label.
func LayoutInfoSection(label, value string) string {
	return boldStyle.Render(label+":") + " " + value
}

// LayoutEmphasisBox renders content inside a rounded border of the given
// colour.
func LayoutEmphasisBox(content string, color lipgloss.AdaptiveColor) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)
	return style.Render(content)
}

// LayoutJoinVertical stacks sections top to bottom; empty strings become
// blank separator lines.
func LayoutJoinVertical(sections ...string) string {
	if len(sections) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
