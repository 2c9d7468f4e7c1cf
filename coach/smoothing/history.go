// Package smoothing steadies per-answer scores and labels across a session.
// The caller owns the History and passes it in; nothing is kept at package
// level.
package smoothing

// History is a bounded FIFO ring. Once full, each Push evicts the oldest
// value. It is not safe for concurrent use.
type History[T any] struct {
	buffer   []T
	writePos int
	count    int
}

// NewHistory creates a history holding at most capacity values. A
// capacity below 1 is raised to 1.
func NewHistory[T any](capacity int) *History[T] {
	return &History[T]{
		buffer: make([]T, max(1, capacity)),
	}
}

// Push appends v, overwriting the oldest value when full
func (h *History[T]) Push(v T) {
	h.buffer[h.writePos] = v
	h.writePos = (h.writePos + 1) % len(h.buffer)
	if h.count < len(h.buffer) {
		h.count++
	}
}

// Values returns the held values oldest first
func (h *History[T]) Values() []T {
	out := make([]T, h.count)
	start := (h.writePos - h.count + len(h.buffer)) % len(h.buffer)
	for i := range h.count {
		out[i] = h.buffer[(start+i)%len(h.buffer)]
	}
	return out
}

// Len returns the number of values held
func (h *History[T]) Len() int {
	return h.count
}

// Cap returns the maximum number of values held
func (h *History[T]) Cap() int {
	return len(h.buffer)
}

// IsFull reports whether the next Push evicts a value
func (h *History[T]) IsFull() bool {
	return h.count == len(h.buffer)
}

// Reset empties the history
func (h *History[T]) Reset() {
	clear(h.buffer)
	h.writePos = 0
	h.count = 0
}
