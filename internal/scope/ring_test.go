package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monoBlock builds a single-channel Block from a list of sample values.
func monoBlock(vals ...float32) Block {
	b := make(Block, len(vals))
	for i, v := range vals {
		b[i] = []float32{v}
	}
	return b
}

func TestNewRing_Validation(t *testing.T) {
	_, err := NewRing(0, 1)
	assert.Error(t, err)

	_, err = NewRing(8, 0)
	assert.Error(t, err)

	r, err := NewRing(8, 2)
	require.NoError(t, err)
	assert.Equal(t, 8, r.Capacity())
	assert.Equal(t, 2, r.Channels())
}

func TestRing_StartsZeroFilled(t *testing.T) {
	r, err := NewRing(8, 1)
	require.NoError(t, err)

	w := r.Window(8)
	require.Len(t, w, 1)
	assert.Equal(t, make([]float32, 8), w[0])
}

func TestRing_PushAndWindow(t *testing.T) {
	// Scenario from the display-history contract: capacity 8, one channel,
	// push [1,2], [3,4,5], [6].
	r, err := NewRing(8, 1)
	require.NoError(t, err)

	require.NoError(t, r.Push(monoBlock(1, 2)))
	require.NoError(t, r.Push(monoBlock(3, 4, 5)))
	require.NoError(t, r.Push(monoBlock(6)))

	full := r.Window(8)
	assert.Equal(t, []float32{0, 0, 1, 2, 3, 4, 5, 6}, full[0])

	last4 := r.Window(4)
	assert.Equal(t, []float32{3, 4, 5, 6}, last4[0])
}

func TestRing_WindowConcatenation(t *testing.T) {
	// Pushing blocks totalling <= capacity then reading the total length
	// yields the concatenation in push order.
	r, err := NewRing(16, 1)
	require.NoError(t, err)

	blocks := []Block{
		monoBlock(1, 2, 3),
		monoBlock(4),
		monoBlock(5, 6, 7, 8, 9),
	}
	var want []float32
	for _, b := range blocks {
		require.NoError(t, r.Push(b))
		for _, frame := range b {
			want = append(want, frame[0])
		}
	}

	got := r.Window(len(want))
	assert.Equal(t, want, got[0])
}

func TestRing_PushAssociative(t *testing.T) {
	// [A, B] pushed separately equals A+B pushed once.
	a := monoBlock(1, 2, 3)
	b := monoBlock(4, 5)
	ab := monoBlock(1, 2, 3, 4, 5)

	r1, err := NewRing(8, 1)
	require.NoError(t, err)
	require.NoError(t, r1.Push(a))
	require.NoError(t, r1.Push(b))

	r2, err := NewRing(8, 1)
	require.NoError(t, err)
	require.NoError(t, r2.Push(ab))

	assert.Equal(t, r2.Window(8), r1.Window(8))
}

func TestRing_WrapAround(t *testing.T) {
	r, err := NewRing(4, 1)
	require.NoError(t, err)

	require.NoError(t, r.Push(monoBlock(1, 2, 3)))
	require.NoError(t, r.Push(monoBlock(4, 5, 6)))

	w := r.Window(4)
	assert.Equal(t, []float32{3, 4, 5, 6}, w[0])
}

func TestRing_MultiChannelAlignment(t *testing.T) {
	r, err := NewRing(4, 2)
	require.NoError(t, err)

	require.NoError(t, r.Push(Block{
		{1, 10},
		{2, 20},
		{3, 30},
	}))

	w := r.Window(3)
	assert.Equal(t, []float32{1, 2, 3}, w[0])
	assert.Equal(t, []float32{10, 20, 30}, w[1])
}

func TestRing_PushShapeErrors(t *testing.T) {
	r, err := NewRing(4, 1)
	require.NoError(t, err)

	// Channel count mismatch fails without touching the buffer.
	err = r.Push(Block{{1, 2}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channels")

	// Block longer than capacity fails loudly rather than truncating.
	err = r.Push(monoBlock(1, 2, 3, 4, 5))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capacity")

	// Buffer still pristine after both failures.
	assert.Equal(t, []float32{0, 0, 0, 0}, r.Window(4)[0])
}

func TestRing_PushEmptyBlockIsNoop(t *testing.T) {
	r, err := NewRing(4, 1)
	require.NoError(t, err)

	require.NoError(t, r.Push(monoBlock(1, 2)))
	require.NoError(t, r.Push(Block{}))
	assert.Equal(t, []float32{1, 2}, r.Window(2)[0])
}

func TestRing_WindowClampAndCopy(t *testing.T) {
	r, err := NewRing(4, 1)
	require.NoError(t, err)
	require.NoError(t, r.Push(monoBlock(1, 2, 3, 4)))

	// Requests beyond capacity are clamped.
	w := r.Window(100)
	require.Len(t, w[0], 4)

	// The returned slice is a copy: later pushes must not mutate it.
	require.NoError(t, r.Push(monoBlock(9, 9, 9, 9)))
	assert.Equal(t, []float32{1, 2, 3, 4}, w[0])

	// Zero or negative request yields empty channels, not nil panic.
	assert.Empty(t, r.Window(0)[0])
	assert.Empty(t, r.Window(-3)[0])
}
