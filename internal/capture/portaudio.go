package capture

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/gordonklaus/portaudio"
	"github.com/rs/zerolog"

	"github.com/dm/goscope/internal/scope"
)

type portAudioCapture struct {
	cfg     Config
	queue   *scope.Queue
	log     zerolog.Logger
	device  *portaudio.DeviceInfo
	stream  *portaudio.Stream
	rate    float64
	inChans int // channels opened on the device: max selected index + 1

	overflows  atomic.Uint64
	underflows atomic.Uint64
}

// New initializes PortAudio and resolves the configured device. The stream
// itself is not opened until Start.
func New(cfg Config, q *scope.Queue, log zerolog.Logger) (Capture, error) {
	if len(cfg.Channels) == 0 {
		return nil, fmt.Errorf("no input channels selected")
	}
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize portaudio: %w", err)
	}

	c := &portAudioCapture{
		cfg:     cfg,
		queue:   q,
		log:     log,
		inChans: requiredChannels(cfg.Channels),
	}

	device, err := c.resolveDevice(cfg.Device)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	if device.MaxInputChannels < c.inChans {
		portaudio.Terminate()
		return nil, fmt.Errorf("device %q has %d input channels, need %d",
			device.Name, device.MaxInputChannels, c.inChans)
	}
	c.device = device

	c.rate = cfg.SampleRate
	if c.rate <= 0 {
		c.rate = device.DefaultSampleRate
	}

	return c, nil
}

func (c *portAudioCapture) resolveDevice(query string) (*portaudio.DeviceInfo, error) {
	if query == "" {
		device, err := portaudio.DefaultInputDevice()
		if err != nil {
			return nil, fmt.Errorf("default input device: %w", err)
		}
		return device, nil
	}

	devices, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("enumerate devices: %w", err)
	}
	names := make([]string, len(devices))
	for i, d := range devices {
		names[i] = d.Name
	}
	idx, err := matchDevice(names, query)
	if err != nil {
		return nil, err
	}
	return devices[idx], nil
}

// ListDevices initializes PortAudio just long enough to enumerate the
// input-capable devices.
func ListDevices() ([]Device, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize portaudio: %w", err)
	}
	defer portaudio.Terminate()

	devices, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("enumerate devices: %w", err)
	}
	defaultIn, _ := portaudio.DefaultInputDevice()

	var out []Device
	for i, d := range devices {
		if d.MaxInputChannels == 0 {
			continue
		}
		out = append(out, Device{
			Index:      i,
			Name:       d.Name,
			Channels:   d.MaxInputChannels,
			SampleRate: d.DefaultSampleRate,
			Default:    d == defaultIn,
		})
	}
	return out, nil
}

func (c *portAudioCapture) Start() error {
	stream, err := portaudio.OpenStream(portaudio.StreamParameters{
		Input: portaudio.StreamDeviceParameters{
			Device:   c.device,
			Channels: c.inChans,
			Latency:  c.device.DefaultLowInputLatency,
		},
		SampleRate:      c.rate,
		FramesPerBuffer: c.cfg.Blocksize,
	}, c.callback)
	if err != nil {
		return fmt.Errorf("open stream on %q: %w", c.device.Name, err)
	}
	c.stream = stream

	if err := stream.Start(); err != nil {
		stream.Close()
		c.stream = nil
		return fmt.Errorf("start stream on %q: %w", c.device.Name, err)
	}

	c.log.Info().
		Str("device", c.device.Name).
		Float64("samplerate", c.rate).
		Int("blocksize", c.cfg.Blocksize).
		Ints("channels", c.cfg.Channels).
		Int("downsample", c.cfg.Downsample).
		Msg("stream started")
	return nil
}

// callback runs on the PortAudio capture thread for every block. Its only
// job is decimate-and-enqueue; it must return quickly and never block.
// Status flags are counted here and logged by the render loop, since
// logging has no place on this thread.
func (c *portAudioCapture) callback(in []float32, _ portaudio.StreamCallbackTimeInfo, flags portaudio.StreamCallbackFlags) {
	if flags&portaudio.InputOverflow != 0 {
		c.overflows.Add(1)
	}
	if flags&portaudio.InputUnderflow != 0 {
		c.underflows.Add(1)
	}
	c.queue.Put(scope.BlockFromInterleaved(in, c.inChans, c.cfg.Channels, c.cfg.Downsample))
}

func (c *portAudioCapture) Stop() error {
	if c.stream == nil {
		return nil
	}
	if err := c.stream.Stop(); err != nil {
		return fmt.Errorf("stop stream: %w", err)
	}
	c.log.Info().Msg("stream stopped")
	return nil
}

func (c *portAudioCapture) Close() error {
	if c.stream != nil {
		c.stream.Close()
		c.stream = nil
	}
	return portaudio.Terminate()
}

func (c *portAudioCapture) DeviceName() string { return c.device.Name }

func (c *portAudioCapture) SampleRate() float64 { return c.rate }

func (c *portAudioCapture) Status() (overflows, underflows uint64) {
	return c.overflows.Load(), c.underflows.Load()
}

// requiredChannels returns how many device channels must be opened to reach
// every selected column: the highest selected index plus one.
func requiredChannels(mapping []int) int {
	max := 0
	for _, ch := range mapping {
		if ch > max {
			max = ch
		}
	}
	return max + 1
}

// matchDevice resolves a device query against the device name list. A
// numeric query selects by index; anything else matches the first name
// containing the query, case-insensitively.
func matchDevice(names []string, query string) (int, error) {
	if idx, err := strconv.Atoi(query); err == nil {
		if idx < 0 || idx >= len(names) {
			return 0, fmt.Errorf("device index %d out of range (have %d devices)", idx, len(names))
		}
		return idx, nil
	}
	q := strings.ToLower(query)
	for i, name := range names {
		if strings.Contains(strings.ToLower(name), q) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no device matching %q", query)
}
