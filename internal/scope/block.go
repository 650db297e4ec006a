package scope

// Block is one batch of captured audio samples, frames × channels, row-major
// by time (oldest frame first). A Block is immutable once handed to the queue.
type Block [][]float32

// Frames returns the number of sample frames in the block.
func (b Block) Frames() int { return len(b) }

// Channels returns the number of channels per frame, or 0 for an empty block.
func (b Block) Channels() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// BlockFromInterleaved builds a Block from an interleaved capture buffer of
// `channels` channels, keeping every downsample-th frame and selecting the
// channel columns listed in mapping (0-based device channel indices).
// The input buffer is copied; the returned Block does not alias it.
func BlockFromInterleaved(in []float32, channels int, mapping []int, downsample int) Block {
	if channels <= 0 || len(mapping) == 0 {
		return nil
	}
	if downsample < 1 {
		downsample = 1
	}
	frames := len(in) / channels
	kept := (frames + downsample - 1) / downsample
	out := make(Block, 0, kept)
	for f := 0; f < frames; f += downsample {
		row := make([]float32, len(mapping))
		for i, ch := range mapping {
			row[i] = in[f*channels+ch]
		}
		out = append(out, row)
	}
	return out
}
