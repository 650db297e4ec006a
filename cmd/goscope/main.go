package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/dm/goscope/internal/capture"
	"github.com/dm/goscope/internal/logging"
	"github.com/dm/goscope/internal/scope"
	"github.com/dm/goscope/internal/tui"
)

// parseChannels parses a comma-separated list of 1-based channel numbers
// into 0-based channel indices, preserving order. Channel numbers below 1
// are a usage error.
func parseChannels(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		c, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid channel %q: %w", p, err)
		}
		if c < 1 {
			return nil, fmt.Errorf("channel %d: must be >= 1", c)
		}
		out = append(out, c-1)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no channels selected")
	}
	return out, nil
}

// streamControl is the part of capture.Capture that withStream drives.
type streamControl interface {
	Start() error
	Stop() error
}

// withStream starts the capture stream, invokes fn, and stops the stream on
// every return path, error returns included. The stream thus spans exactly
// the lifetime of fn — the display, in practice.
func withStream(capt streamControl, fn func() error) error {
	if err := capt.Start(); err != nil {
		return err
	}
	defer capt.Stop()
	return fn()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run holds the whole program so that every resource teardown is a defer
// that unwinds normally; main is the only place allowed to os.Exit.
func run() error {
	var (
		listDevices = flag.Bool("list-devices", false, "show audio input devices and exit")
		device      = flag.String("device", "", "input device (numeric index or name substring)")
		channels    = flag.String("channels", "1", "comma-separated input channels to plot (1-based)")
		window      = flag.Int("window", 1024, "initial visible window in samples")
		interval    = flag.Duration("interval", 30*time.Millisecond, "minimum time between display updates")
		blocksize   = flag.Int("blocksize", 1000, "capture block size in frames")
		samplerate  = flag.Float64("samplerate", 0, "sampling rate of the audio device (0 = device default)")
		downsample  = flag.Int("downsample", 1, "display only every Nth sample")
		queueBound  = flag.Int("queue", 256, "max capture blocks queued between ticks (0 = unbounded)")
		logPath     = flag.String("log", "", "append structured logs to this file")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: goscope [flags]\n\n")
		fmt.Fprintf(os.Stderr, "examples:\n")
		fmt.Fprintf(os.Stderr, "  goscope -list-devices\n")
		fmt.Fprintf(os.Stderr, "  goscope -device usb -channels 1,2\n")
		fmt.Fprintf(os.Stderr, "  goscope -window 4096 -downsample 4 -interval 50ms\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *listDevices {
		devices, err := capture.ListDevices()
		if err != nil {
			return err
		}
		for _, d := range devices {
			marker := " "
			if d.Default {
				marker = "*"
			}
			fmt.Printf("%s %3d  %-40s  %d ch  %.0f Hz\n",
				marker, d.Index, d.Name, d.Channels, d.SampleRate)
		}
		return nil
	}

	if *interval <= 0 {
		return fmt.Errorf("-interval must be positive")
	}
	if *blocksize <= 0 {
		return fmt.Errorf("-blocksize must be positive")
	}
	if *downsample < 1 {
		return fmt.Errorf("-downsample must be >= 1")
	}

	mapping, err := parseChannels(*channels)
	if err != nil {
		return fmt.Errorf("argument -channels: %w", err)
	}

	log, closeLog, err := logging.New(*logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	queue := scope.NewQueue(*queueBound)
	ring, err := scope.NewRing(scope.DefaultCapacity, len(mapping))
	if err != nil {
		return err
	}

	capt, err := capture.New(capture.Config{
		Device:     *device,
		Channels:   mapping,
		SampleRate: *samplerate,
		Blocksize:  *blocksize,
		Downsample: *downsample,
	}, queue, log)
	if err != nil {
		return err
	}
	defer capt.Close()

	app := tui.NewApp(tui.Config{
		Queue:      queue,
		Ring:       ring,
		Window:     *window,
		Interval:   *interval,
		SampleRate: capt.SampleRate(),
		DeviceName: capt.DeviceName(),
		Status:     capt,
		Logger:     log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The stream spans the lifetime of the display: started before the UI
	// runs, stopped on every exit path.
	if err := withStream(capt, func() error {
		prog := tea.NewProgram(app, tea.WithAltScreen())

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			_, err := prog.Run()
			return err
		})
		g.Go(func() error {
			// On SIGINT/SIGTERM shut the UI down cleanly; when the UI
			// exits on its own this goroutine unwinds via gctx.
			<-gctx.Done()
			prog.Quit()
			return nil
		})
		return g.Wait()
	}); err != nil {
		log.Error().Err(err).Msg("display error")
		return fmt.Errorf("display: %w", err)
	}

	return app.Err()
}
