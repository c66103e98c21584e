package components

import (
	"github.com/Rorical/RoriCalc/internal/config"
	"github.com/Rorical/RoriCalc/ui/styles"
)

func RenderStatus(theme config.Theme, status string, width int) string {
	return styles.StatusStyle(theme, width).Render(status + "  (q to quit)")
}
