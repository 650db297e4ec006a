package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/dm/goscope/internal/scope"
)

// yAxisGutter is the width of the dB label column left of the plot.
const yAxisGutter = 8

// StatusReporter exposes device-side overflow/underflow counters gathered on
// the capture thread, for the render loop to log. Satisfied by
// capture.Capture.
type StatusReporter interface {
	Status() (overflows, underflows uint64)
}

// Config wires the App to the pipeline.
type Config struct {
	Queue      *scope.Queue
	Ring       *scope.Ring
	Window     int // initial visible length in samples
	Interval   time.Duration
	SampleRate float64
	DeviceName string
	Status     StatusReporter // optional
	Logger     zerolog.Logger
}

// App is the root Bubble Tea model: the single-threaded render/control loop.
// Ticks and key events are strictly interleaved by the tea runtime, so the
// ring buffer and view state need no locking — the queue is the only
// synchronization point with the capture thread.
type App struct {
	queue      *scope.Queue
	ring       *scope.Ring
	state      scope.ViewState
	interval   time.Duration
	samplerate float64
	deviceName string
	status     StatusReporter
	log        zerolog.Logger

	frame      int
	start      time.Time
	series     [][]float32 // last rendered series per channel
	statusLine string

	// Counter snapshots from the previous tick, for delta logging.
	loggedDrops      uint64
	loggedOverflows  uint64
	loggedUnderflows uint64

	// Layout
	width, height int

	err error
}

// NewApp creates the render loop around an already-wired queue and ring.
func NewApp(cfg Config) *App {
	app := &App{
		queue:      cfg.Queue,
		ring:       cfg.Ring,
		state:      scope.NewViewState(cfg.Window),
		interval:   cfg.Interval,
		samplerate: cfg.SampleRate,
		deviceName: cfg.DeviceName,
		status:     cfg.Status,
		log:        cfg.Logger,
		start:      time.Now(),
	}
	// Seed the display so the first View (before the first tick) shows the
	// zero-filled history rather than nothing.
	app.refresh()
	return app
}

// Err returns the fatal pipeline error that stopped the loop, if any.
func (app *App) Err() error { return app.err }

// Init implements tea.Model. Schedules the first refresh tick.
func (app *App) Init() tea.Cmd {
	app.start = time.Now()
	return tickCmd(app.interval)
}

// Update implements tea.Model — the single state-mutation entry point.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height

	case TickMsg:
		// Drain everything the capture thread queued since the last tick
		// and absorb it, pause or no pause. A shape error is fatal: the
		// buffer must never be silently truncated or corrupted.
		for _, b := range app.queue.DrainAll() {
			if err := app.ring.Push(b); err != nil {
				app.err = fmt.Errorf("push block: %w", err)
				app.log.Error().Err(err).Msg("display buffer rejected block")
				return app, tea.Quit
			}
		}
		app.frame++
		app.logCounters()
		if !app.state.Paused {
			app.refresh()
		}
		return app, tickCmd(app.interval)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return app, tea.Quit
		case key.Matches(msg, keys.Pause):
			app.state.TogglePause()
			app.log.Debug().Str("key", msg.String()).Bool("paused", app.state.Paused).Msg("key")
		case key.Matches(msg, keys.ShrinkWindow):
			app.state.ShrinkWindow()
			app.log.Debug().Str("key", msg.String()).Int("window", app.state.Window).Msg("key")
		case key.Matches(msg, keys.GrowWindow):
			app.state.GrowWindow()
			app.log.Debug().Str("key", msg.String()).Int("window", app.state.Window).Msg("key")
		case key.Matches(msg, keys.ZoomInY):
			app.state.ZoomInY()
			app.log.Debug().Str("key", msg.String()).Float64("yzoom", app.state.YZoom).Msg("key")
		case key.Matches(msg, keys.ZoomOutY):
			app.state.ZoomOutY()
			app.log.Debug().Str("key", msg.String()).Float64("yzoom", app.state.YZoom).Msg("key")
		case key.Matches(msg, keys.CycleAvg):
			app.state.CycleAvg()
			app.log.Debug().Str("key", msg.String()).Int("avg", app.state.Avg).Msg("key")
		}
		// Unrecognized keys fall through as no-ops.
	}

	return app, nil
}

// refresh recomputes the displayed series and status line from the current
// ring contents and view state. Not called while paused, which is what
// freezes the display.
func (app *App) refresh() {
	visible := app.ring.Window(app.state.Window)
	series := make([][]float32, len(visible))
	for c, xs := range visible {
		series[c] = scope.MovingAverage(xs, app.state.Avg)
	}
	app.series = series
	app.statusLine = fmt.Sprintf("frame %d, time %.3f, window %d, average %d",
		app.frame, time.Since(app.start).Seconds(), app.state.Window, app.state.Avg)
}

// logCounters reports queue drops and device status flags accumulated since
// the previous tick. Best-effort surfacing: never interrupts the pipeline.
func (app *App) logCounters() {
	if d := app.queue.Dropped(); d > app.loggedDrops {
		app.log.Warn().Uint64("dropped", d-app.loggedDrops).Msg("queue dropped blocks")
		app.loggedDrops = d
	}
	if app.status == nil {
		return
	}
	over, under := app.status.Status()
	if over > app.loggedOverflows {
		app.log.Warn().Uint64("overflows", over-app.loggedOverflows).Msg("input overflow")
		app.loggedOverflows = over
	}
	if under > app.loggedUnderflows {
		app.log.Warn().Uint64("underflows", under-app.loggedUnderflows).Msg("input underflow")
		app.loggedUnderflows = under
	}
}

// View implements tea.Model. Axis limits always come from the live view
// state, so zoom and window changes show immediately — even while paused,
// when the traces themselves stay frozen.
func (app *App) View() string {
	width := app.width
	if width <= 0 {
		width = 80
	}
	height := app.height
	if height <= 0 {
		height = 24
	}

	cols := width - yAxisGutter
	if cols < 16 {
		cols = 16
	}
	rows := height - 3 // header, x-axis, footer
	if rows < 5 {
		rows = 5
	}

	ylimit := app.state.YLimit()
	plot := lipgloss.JoinHorizontal(lipgloss.Top,
		renderYAxis(rows, ylimit),
		renderTraces(app.series, cols, rows, ylimit),
	)
	xaxis := strings.Repeat(" ", yAxisGutter) + renderXAxis(app.state.Window, app.samplerate, cols)

	return strings.Join([]string{
		renderHeader(app),
		plot,
		xaxis,
		renderFooter(app),
	}, "\n")
}

// tickCmd schedules the next display refresh after duration d.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
