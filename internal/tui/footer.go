package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderFooter renders the status line on the left and the key help on the
// right, mirroring the status/help texts of a scope plot footer.
func renderFooter(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	left := app.statusLine
	right := helpText
	spacing := width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}
	return StyleDim.Width(width).Render(left + strings.Repeat(" ", spacing) + right)
}
