// Package queue provides the FIFO buffer for posted messages.
package queue

// minCompact is the number of consumed slots after which Pop reclaims the
// front of the backing array.
const minCompact = 64

// FIFO is an unbounded first-in-first-out queue. The zero value is ready to use.
type FIFO[T any] struct {
	items []T
	head  int
}

// Push appends v to the tail.
func (q *FIFO[T]) Push(v T) {
	q.items = append(q.items, v)
}

// Pop removes and returns the head. The boolean is false when the queue is empty.
func (q *FIFO[T]) Pop() (T, bool) {
	var zero T
	if q.head >= len(q.items) {
		return zero, false
	}
	v := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	switch {
	case q.head == len(q.items):
		q.items = q.items[:0]
		q.head = 0
	case q.head >= minCompact && q.head*2 >= len(q.items):
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
	return v, true
}

// Len returns the number of queued items.
func (q *FIFO[T]) Len() int {
	return len(q.items) - q.head
}

// Each calls fn for every queued item from head to tail without consuming them.
func (q *FIFO[T]) Each(fn func(T) bool) {
	for _, v := range q.items[q.head:] {
		if !fn(v) {
			return
		}
	}
}
