package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/goscope/internal/format"
)

// rasterize maps a sample series onto a cols×rows cell grid. Each column
// covers one bucket of samples and is filled between the bucket's minimum
// and maximum amplitude, so narrow spikes stay visible at any time zoom.
// Row 0 is +ylimit, the last row is -ylimit; out-of-range samples clamp to
// the edge rows. An empty series yields an all-false grid.
func rasterize(series []float32, cols, rows int, ylimit float64) [][]bool {
	grid := make([][]bool, rows)
	for r := range grid {
		grid[r] = make([]bool, cols)
	}
	if len(series) == 0 || cols <= 0 || rows <= 0 || ylimit <= 0 {
		return grid
	}

	toRow := func(v float64) int {
		r := int((ylimit-v)/(2*ylimit)*float64(rows-1) + 0.5)
		if r < 0 {
			r = 0
		}
		if r > rows-1 {
			r = rows - 1
		}
		return r
	}

	n := len(series)
	for col := 0; col < cols; col++ {
		from := col * n / cols
		to := (col + 1) * n / cols
		if to <= from {
			to = from + 1
		}
		min, max := series[from], series[from]
		for _, v := range series[from:to] {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		top := toRow(float64(max))
		bottom := toRow(float64(min))
		for r := top; r <= bottom; r++ {
			grid[r][col] = true
		}
	}
	return grid
}

// renderTraces draws all channel series onto one shared plot area. When
// traces overlap in a cell the lower channel index wins, matching a scope
// face where channel 1 sits in front.
func renderTraces(series [][]float32, cols, rows int, ylimit float64) string {
	grids := make([][][]bool, len(series))
	for c, s := range series {
		grids[c] = rasterize(s, cols, rows, ylimit)
	}

	styles := make([]lipgloss.Style, len(series))
	for c := range styles {
		styles[c] = lipgloss.NewStyle().Foreground(channelColor(c))
	}

	var sb strings.Builder
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			drawn := false
			for c := range grids {
				if grids[c][r][col] {
					sb.WriteString(styles[c].Render("█"))
					drawn = true
					break
				}
			}
			if !drawn {
				sb.WriteByte(' ')
			}
		}
		if r < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// renderYAxis renders the dB gutter beside the plot: the zoom-dependent
// limit at the top and bottom edges, silence in the middle.
func renderYAxis(rows int, ylimit float64) string {
	lines := make([]string, rows)
	for r := range lines {
		lines[r] = strings.Repeat(" ", yAxisGutter)
	}
	pad := func(s string) string {
		if len(s) < yAxisGutter {
			return strings.Repeat(" ", yAxisGutter-len(s)) + s
		}
		return s
	}
	if rows > 0 {
		lines[0] = pad(format.DecibelLabel(ylimit) + " ")
		lines[rows-1] = pad(format.DecibelLabel(ylimit) + " ")
	}
	if rows > 2 {
		lines[rows/2] = pad("-inf dB ")
	}
	return StyleDim.Render(strings.Join(lines, "\n"))
}

// renderXAxis renders the time axis under the plot: the window start in
// samples and milliseconds on the left, "now" on the right.
func renderXAxis(window int, samplerate float64, width int) string {
	left := fmt.Sprintf("-%d samples (-%s)", window, format.Milliseconds(window, samplerate))
	right := "0"
	spacing := width - len(left) - len(right)
	if spacing < 1 {
		spacing = 1
	}
	return StyleDim.Render(left + strings.Repeat(" ", spacing) + right)
}
