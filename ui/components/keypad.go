package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriCalc/internal/config"
	"github.com/Rorical/RoriCalc/internal/keypad"
	"github.com/Rorical/RoriCalc/ui/styles"
)

// RenderKeypad draws the button grid, highlighting the last key pressed.
func RenderKeypad(theme config.Theme, lastKey string) string {
	keyStyle := styles.KeyStyle(theme)
	activeStyle := styles.ActiveKeyStyle(theme)

	rows := make([]string, 0, len(keypad.Rows))
	for _, row := range keypad.Rows {
		cells := make([]string, 0, len(row))
		for _, b := range row {
			if string(b.Key) == lastKey {
				cells = append(cells, activeStyle.Render(b.Label))
			} else {
				cells = append(cells, keyStyle.Render(b.Label))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
