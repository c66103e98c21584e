package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriCalc/internal/config"
)

func DisplayStyle(theme config.Theme, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Foreground(lipgloss.Color(theme.Display)).
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Right).
		Width(width - 4)
}

func PendingStyle(theme config.Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Padding(0, 2)
}

func KeyStyle(theme config.Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Muted)).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.Muted)).
		Width(3).
		Align(lipgloss.Center)
}

func ActiveKeyStyle(theme config.Theme) lipgloss.Style {
	return KeyStyle(theme).
		Foreground(lipgloss.Color(theme.Display)).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Bold(true)
}

func StatusStyle(theme config.Theme, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Muted)).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}
