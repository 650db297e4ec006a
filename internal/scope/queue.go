package scope

import "sync"

// Queue is the hand-off channel between the capture callback (producer) and
// the render loop (single consumer). Put never blocks: when the queue is
// bounded and full, the oldest block is dropped to make room, and the drop
// is counted. Everything downstream of DrainAll is single-threaded.
type Queue struct {
	mu        sync.Mutex
	blocks    []Block
	maxBlocks int
	dropped   uint64
}

// NewQueue creates a queue bounded to maxBlocks queued blocks.
// maxBlocks <= 0 means unbounded.
func NewQueue(maxBlocks int) *Queue {
	return &Queue{maxBlocks: maxBlocks}
}

// Put appends a block. Safe to call from the capture thread while the
// render loop drains.
func (q *Queue) Put(b Block) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.maxBlocks > 0 && len(q.blocks) >= q.maxBlocks {
		// Drop the oldest so the display stays closest to live.
		n := len(q.blocks) - q.maxBlocks + 1
		q.blocks = q.blocks[n:]
		q.dropped += uint64(n)
	}
	q.blocks = append(q.blocks, b)
}

// DrainAll atomically removes and returns all queued blocks in FIFO order.
// Returns nil when nothing is queued. Never waits for new data.
func (q *Queue) DrainAll() []Block {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.blocks) == 0 {
		return nil
	}
	out := q.blocks
	q.blocks = nil
	return out
}

// Len returns the number of currently queued blocks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.blocks)
}

// Dropped returns the cumulative number of blocks dropped due to the bound.
func (q *Queue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
