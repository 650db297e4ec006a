package scope

import "fmt"

// DefaultCapacity is the sample depth of the display history, matching the
// widest window that can ever be shown.
const DefaultCapacity = MaxWindow

// Ring is the fixed-capacity multi-channel display history. Storage is
// per-channel with a circular write head, so a push costs O(block length)
// rather than shifting the whole buffer. The buffer starts zero-filled and
// its logical length is always exactly the capacity: a window read shortly
// after startup returns leading zeros, not a short slice.
//
// Ring is not safe for concurrent use; only the render loop touches it.
type Ring struct {
	data     [][]float32 // per channel, len == capacity
	capacity int
	head     int // next write position
}

// NewRing creates a zero-filled ring of capacity samples × channels.
func NewRing(capacity, channels int) (*Ring, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("ring capacity must be positive, got %d", capacity)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("ring channel count must be positive, got %d", channels)
	}
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, capacity)
	}
	return &Ring{data: data, capacity: capacity}, nil
}

// Capacity returns the sample depth of the ring.
func (r *Ring) Capacity() int { return r.capacity }

// Channels returns the number of channels stored per sample.
func (r *Ring) Channels() int { return len(r.data) }

// Push overwrites the oldest samples with the block's frames, in time order.
// A block wider or narrower than the ring's channel count, or longer than
// the capacity, is a shape error: Push fails without touching the buffer.
func (r *Ring) Push(b Block) error {
	if b.Frames() == 0 {
		return nil
	}
	if got := b.Channels(); got != len(r.data) {
		return fmt.Errorf("block has %d channels, ring expects %d", got, len(r.data))
	}
	if b.Frames() > r.capacity {
		return fmt.Errorf("block of %d frames exceeds ring capacity %d", b.Frames(), r.capacity)
	}
	for _, frame := range b {
		for c, v := range frame {
			r.data[c][r.head] = v
		}
		r.head = (r.head + 1) % r.capacity
	}
	return nil
}

// Window returns the most recent n samples per channel, oldest to newest:
// index 0 is "now minus n-1 samples", the last index is "now". n is clamped
// to the capacity. The returned slices are fresh copies the caller may keep
// across subsequent pushes.
func (r *Ring) Window(n int) [][]float32 {
	if n > r.capacity {
		n = r.capacity
	}
	out := make([][]float32, len(r.data))
	if n <= 0 {
		for c := range out {
			out[c] = []float32{}
		}
		return out
	}
	start := (r.head - n + r.capacity) % r.capacity
	for c, buf := range r.data {
		w := make([]float32, n)
		if start+n <= r.capacity {
			copy(w, buf[start:start+n])
		} else {
			first := r.capacity - start
			copy(w[:first], buf[start:])
			copy(w[first:], buf[:n-first])
		}
		out[c] = w
	}
	return out
}
