package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterize_FlatZeroDrawsCenterLine(t *testing.T) {
	series := make([]float32, 8)
	grid := rasterize(series, 8, 9, 1.0)

	for col := 0; col < 8; col++ {
		for row := 0; row < 9; row++ {
			if row == 4 {
				assert.True(t, grid[row][col], "center row col %d", col)
			} else {
				assert.False(t, grid[row][col], "row %d col %d", row, col)
			}
		}
	}
}

func TestRasterize_ExtremesHitEdgeRows(t *testing.T) {
	grid := rasterize([]float32{1, -1}, 2, 5, 1.0)

	assert.True(t, grid[0][0], "+1 maps to the top row")
	assert.True(t, grid[4][1], "-1 maps to the bottom row")
}

func TestRasterize_ClampsOutOfRange(t *testing.T) {
	// At yzoom 2 the limit is 0.5; ±1 must clamp to the edges, not panic.
	grid := rasterize([]float32{1, -1}, 2, 5, 0.5)

	assert.True(t, grid[0][0])
	assert.True(t, grid[4][1])
}

func TestRasterize_BucketSpansMinMax(t *testing.T) {
	// One column covering a full swing fills the whole vertical span.
	grid := rasterize([]float32{1, -1}, 1, 5, 1.0)

	for row := 0; row < 5; row++ {
		assert.True(t, grid[row][0], "row %d", row)
	}
}

func TestRasterize_FewerSamplesThanColumns(t *testing.T) {
	// 2 samples stretched over 4 columns: every column still gets a cell.
	grid := rasterize([]float32{0, 0}, 4, 3, 1.0)

	for col := 0; col < 4; col++ {
		assert.True(t, grid[1][col], "col %d", col)
	}
}

func TestRasterize_Degenerate(t *testing.T) {
	assert.NotPanics(t, func() {
		rasterize(nil, 4, 3, 1.0)
		rasterize([]float32{1}, 0, 3, 1.0)
		rasterize([]float32{1}, 4, 0, 1.0)
		rasterize([]float32{1}, 4, 3, 0)
	})

	grid := rasterize(nil, 2, 2, 1.0)
	for _, row := range grid {
		for _, cell := range row {
			assert.False(t, cell)
		}
	}
}

func TestRenderTraces_Geometry(t *testing.T) {
	series := [][]float32{
		make([]float32, 8),
		make([]float32, 8),
	}
	out := stripANSI(renderTraces(series, 10, 4, 1.0))

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	for i, line := range lines {
		assert.Len(t, []rune(line), 10, "line %d", i)
	}
}

func TestRenderTraces_FirstChannelWinsOverlap(t *testing.T) {
	// Both channels draw the same center line; the plot must still contain
	// exactly one trace cell per column.
	series := [][]float32{
		make([]float32, 4),
		make([]float32, 4),
	}
	out := stripANSI(renderTraces(series, 4, 3, 1.0))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "████", lines[1])
}

func TestRenderYAxis_Labels(t *testing.T) {
	out := stripANSI(renderYAxis(9, 1.0))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 9)

	assert.Contains(t, lines[0], "0 dB")
	assert.Contains(t, lines[4], "-inf dB")
	assert.Contains(t, lines[8], "0 dB")

	// Every gutter line is exactly as wide as the x-axis indent, so the
	// plot and its time axis stay aligned.
	for i, line := range lines {
		assert.Len(t, line, yAxisGutter, "line %d", i)
	}
}

func TestRenderYAxis_ZoomedLimit(t *testing.T) {
	// yzoom 2 → limit 0.5 → edge labels read -3 dB.
	out := stripANSI(renderYAxis(5, 0.5))
	assert.Contains(t, out, "-3 dB")
}

func TestRenderXAxis_Labels(t *testing.T) {
	out := stripANSI(renderXAxis(1024, 44100, 60))
	assert.Contains(t, out, "-1024 samples")
	assert.Contains(t, out, "ms")
	assert.True(t, strings.HasSuffix(out, "0"))
}
