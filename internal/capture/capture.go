package capture

// Device describes an audio input device.
type Device struct {
	Index      int
	Name       string
	Channels   int     // maximum input channels
	SampleRate float64 // device default sample rate
	Default    bool
}

// Capture is the audio input collaborator. It owns the device stream and
// feeds decimated sample blocks into the queue from the capture thread;
// everything else about the pipeline stays on the render loop.
type Capture interface {
	// Start opens and starts the stream. The stream delivers blocks until
	// Stop is called.
	Start() error
	// Stop stops the stream without releasing the host API.
	Stop() error
	// Close releases the stream and the host API. Safe after Stop.
	Close() error
	// DeviceName reports the resolved input device's name.
	DeviceName() string
	// SampleRate reports the effective stream sample rate.
	SampleRate() float64
	// Status reports cumulative device-side overflow and underflow counts,
	// gathered in the callback and meant to be logged by the consumer.
	Status() (overflows, underflows uint64)
}

// Config selects the device and stream geometry.
type Config struct {
	Device     string  // numeric index or name substring; empty = default input
	Channels   []int   // selected channel columns, 0-based
	SampleRate float64 // 0 = device default
	Blocksize  int     // frames per callback
	Downsample int     // keep every Nth frame
}
