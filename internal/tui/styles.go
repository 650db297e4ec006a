package tui

import "github.com/charmbracelet/lipgloss"

// Color constants.
var (
	colorBlue  = lipgloss.Color("#3b82f6")
	colorGreen = lipgloss.Color("#10b981")
	colorAmber = lipgloss.Color("#f59e0b")
	colorGray  = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f8fafc")
	colorDark  = lipgloss.Color("#1e293b")
)

// channelColors cycles per trace, first channel blue and second green like
// the classic two-channel scope face; further channels reuse the palette.
var channelColors = []lipgloss.Color{
	colorBlue,
	colorGreen,
	colorAmber,
	colorWhite,
}

// channelColor returns the trace color for a channel index.
func channelColor(ch int) lipgloss.Color {
	return channelColors[ch%len(channelColors)]
}

// StyleHeader — full-width dark header bar.
var StyleHeader = lipgloss.NewStyle().
	Background(colorDark).
	Foreground(colorWhite).
	Padding(0, 1)

// StyleLive and StylePaused color the run-state indicator.
var (
	StyleLive   = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	StylePaused = lipgloss.NewStyle().Bold(true).Foreground(colorAmber)
)

// StyleDim — muted text for the footer, axis labels, and status line.
var StyleDim = lipgloss.NewStyle().Foreground(colorGray)
