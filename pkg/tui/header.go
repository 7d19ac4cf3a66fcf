package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func renderHeader(width int, title, badge string) string {
	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	left := TitleStyle.Render(title)
	right := TitleStyle.Render("field groups")
	if badge != "" {
		right = badge + " " + right
	}

	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return headerPadding.Render(lipgloss.JoinHorizontal(
		lipgloss.Top,
		left,
		lipgloss.NewStyle().Width(gap).Render(""),
		right,
	))
}
