package components

import (
	"strconv"

	"github.com/Rorical/RoriCalc/internal/config"
	"github.com/Rorical/RoriCalc/ui/styles"
)

// minWidth keeps the display wide enough for any int32 plus its border.
const minWidth = 18

func RenderDisplay(theme config.Theme, display int32, width int) string {
	if width < minWidth {
		width = minWidth
	}
	return styles.DisplayStyle(theme, width).Render(strconv.FormatInt(int64(display), 10))
}

func RenderPending(theme config.Theme, pending string, hasPending bool) string {
	if !hasPending {
		return styles.PendingStyle(theme).Render(" ")
	}
	return styles.PendingStyle(theme).Render(pending)
}
