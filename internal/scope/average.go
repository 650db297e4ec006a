package scope

// MovingAverage returns a centered moving average of the given span over xs.
// At the edges the window is truncated to the samples that actually exist,
// so the output has the same length as the input and carries no wrap-around
// phase artifact. span <= 1 returns an unsmoothed copy.
func MovingAverage(xs []float32, span int) []float32 {
	out := make([]float32, len(xs))
	if span <= 1 {
		copy(out, xs)
		return out
	}
	lo := (span - 1) / 2 // samples to the left of center
	hi := span / 2       // samples to the right of center
	for i := range xs {
		from := i - lo
		if from < 0 {
			from = 0
		}
		to := i + hi
		if to > len(xs)-1 {
			to = len(xs) - 1
		}
		var sum float32
		for j := from; j <= to; j++ {
			sum += xs[j]
		}
		out[i] = sum / float32(to-from+1)
	}
	return out
}
