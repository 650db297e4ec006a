package format

import (
	"fmt"
	"math"
	"time"
)

// ValueToDB converts an amplitude to decibels relative to v0 (0 dB).
// Non-positive ratios map to -Inf.
func ValueToDB(value, v0 float64) float64 {
	ratio := value / v0
	if ratio <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(ratio)
}

// DBToValue converts decibels back to an amplitude relative to v0.
func DBToValue(db, v0 float64) float64 {
	return math.Pow(10, db/10) * v0
}

// DecibelLabel formats an amplitude as a y-axis tick label, e.g. "-6 dB".
// Zero and negative amplitudes render as "-inf dB".
func DecibelLabel(value float64) string {
	db := ValueToDB(math.Abs(value), 1.0)
	if math.IsInf(db, -1) {
		return "-inf dB"
	}
	return fmt.Sprintf("%.0f dB", db)
}

// SamplesToDuration converts a sample count at the given rate to wall time.
func SamplesToDuration(samples int, samplerate float64) time.Duration {
	if samplerate <= 0 {
		return 0
	}
	return time.Duration(float64(samples) / samplerate * float64(time.Second))
}

// DurationToSamples converts wall time at the given rate to a sample count.
func DurationToSamples(d time.Duration, samplerate float64) int {
	return int(d.Seconds() * samplerate)
}

// Milliseconds formats a sample count as the secondary time axis label,
// e.g. 441 samples at 44100 Hz → "10.0 ms".
func Milliseconds(samples int, samplerate float64) string {
	if samplerate <= 0 {
		return "0.0 ms"
	}
	return fmt.Sprintf("%.1f ms", float64(samples)*1000/samplerate)
}
