package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top header bar.
//
// Layout:
//
//	left:   device name and sample rate
//	center: "● LIVE" or "● PAUSED"
//	right:  current window, averaging span, and tick interval
func renderHeader(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	left := fmt.Sprintf("%s @ %.0f Hz", app.deviceName, app.samplerate)

	var center string
	if app.state.Paused {
		center = StylePaused.Render("● PAUSED")
	} else {
		center = StyleLive.Render("● LIVE")
	}

	right := StyleDim.Render(fmt.Sprintf("window %d  avg %d  tick %s",
		app.state.Window, app.state.Avg, app.interval))

	// StyleHeader has Padding(0, 1) so inner content width = total width - 2.
	innerWidth := width - 2
	spacing := innerWidth - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	if spacing < 0 {
		spacing = 0
	}
	leftSpacing := spacing / 2
	rightSpacing := spacing - leftSpacing

	row := left +
		strings.Repeat(" ", leftSpacing) +
		center +
		strings.Repeat(" ", rightSpacing) +
		right

	return StyleHeader.Width(width).Render(row)
}
