package scope

// Clamp limits for the live view controls.
const (
	MinWindow = 16
	MaxWindow = 65536

	MinYZoom = 1.0
	MaxYZoom = 8.0
)

// ViewState holds the key-adjustable display parameters. It is owned
// exclusively by the render loop: key handlers and ticks run strictly
// interleaved on the UI event loop, so no locking is needed.
type ViewState struct {
	Window int     // visible length in samples
	YZoom  float64 // vertical zoom factor; y-limits are ±1/YZoom
	Avg    int     // moving-average span: 1 (off), 3, or 5
	Paused bool
}

// NewViewState returns a ViewState with the given initial window (clamped),
// no vertical zoom, and smoothing off.
func NewViewState(window int) ViewState {
	s := ViewState{YZoom: MinYZoom, Avg: 1}
	s.SetWindow(window)
	return s
}

// SetWindow sets the visible length, clamped to [MinWindow, MaxWindow].
func (s *ViewState) SetWindow(n int) {
	if n < MinWindow {
		n = MinWindow
	}
	if n > MaxWindow {
		n = MaxWindow
	}
	s.Window = n
}

// SetYZoom sets the vertical zoom, clamped to [MinYZoom, MaxYZoom].
func (s *ViewState) SetYZoom(z float64) {
	if z < MinYZoom {
		z = MinYZoom
	}
	if z > MaxYZoom {
		z = MaxYZoom
	}
	s.YZoom = z
}

// ShrinkWindow halves the visible length (zoom in on the time axis).
func (s *ViewState) ShrinkWindow() { s.SetWindow(s.Window / 2) }

// GrowWindow doubles the visible length (zoom out on the time axis).
func (s *ViewState) GrowWindow() { s.SetWindow(s.Window * 2) }

// ZoomInY doubles the vertical zoom.
func (s *ViewState) ZoomInY() { s.SetYZoom(s.YZoom * 2) }

// ZoomOutY halves the vertical zoom.
func (s *ViewState) ZoomOutY() { s.SetYZoom(s.YZoom / 2) }

// YLimit returns the amplitude shown at the top of the display, 1/YZoom.
func (s *ViewState) YLimit() float64 { return 1 / s.YZoom }

// CycleAvg advances the moving-average span 1 → 3 → 5 → 1. Any value
// outside the cycle resets to 1.
func (s *ViewState) CycleAvg() {
	switch s.Avg {
	case 1:
		s.Avg = 3
	case 3:
		s.Avg = 5
	default:
		s.Avg = 1
	}
}

// TogglePause flips the paused flag.
func (s *ViewState) TogglePause() { s.Paused = !s.Paused }
