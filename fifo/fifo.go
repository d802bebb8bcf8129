// Package fifo provides a first-in-first-out queue backed by a slice with an advancing read cursor.
package fifo

import (
	"github.com/couchbase/tools-common/queue/errdefs"
	"github.com/couchbase/tools-common/queue/iface"
	"github.com/couchbase/tools-common/queue/log"
)

// compactThreshold is the minimum number of consumed items which must have accumulated at the front of the buffer
// before it's compacted; compaction also requires the consumed items to make up over half of the buffer.
const compactThreshold = 5

// IterFunc is a function which will be executed for every unread item in the queue.
type IterFunc[T any] func(item T)

// Queue is a first-in-first-out queue. Pop is amortized constant time, consumed items are periodically discarded by
// compacting the underlying buffer.
//
// NOTE: Queue is not safe for concurrent use and needs to be wrapped in a lock to be shared between goroutines.
type Queue[T any] struct {
	data  []T
	start int
}

var _ iface.Queue[int] = (*Queue[int])(nil)

// NewQueue creates a queue containing the given items, the first item will be the first to be popped.
//
// NOTE: The queue takes a copy of the given items, the provided slice is never retained.
func NewQueue[T any](items ...T) *Queue[T] {
	data := make([]T, len(items))
	copy(data, items)

	return &Queue[T]{data: data}
}

// Append adds the item to the back of the queue, it always returns true.
func (q *Queue[T]) Append(item T) bool {
	q.data = append(q.data, item)
	return true
}

// Extend adds all the given items to the back of the queue in order, returning the number of items added.
func (q *Queue[T]) Extend(items ...T) int {
	q.data = append(q.data, items...)
	return len(items)
}

// Len returns the number of unread items in the queue.
func (q *Queue[T]) Len() int {
	return len(q.data) - q.start
}

// Peek returns the oldest unread item without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.Len() == 0 {
		var zero T
		return zero, errdefs.ErrEmptyQueue
	}

	return q.data[q.start], nil
}

// Pop removes and returns the oldest unread item, returning 'errdefs.ErrEmptyQueue' if there isn't one.
func (q *Queue[T]) Pop() (T, error) {
	var zero T

	if q.Len() == 0 {
		return zero, errdefs.ErrEmptyQueue
	}

	item := q.data[q.start]

	// Clear the slot so the buffer doesn't keep the item alive until the next compaction
	q.data[q.start] = zero
	q.start++

	q.compactIfRequired()

	return item, nil
}

// Iter calls fn on each unread item, starting from the oldest.
func (q *Queue[T]) Iter(fn IterFunc[T]) {
	for _, item := range q.data[q.start:] {
		fn(item)
	}
}

// compactIfRequired discards the consumed prefix of the buffer once it dominates the buffer.
func (q *Queue[T]) compactIfRequired() {
	if q.start <= compactThreshold || q.start <= len(q.data)/2 {
		return
	}

	log.Tracef("(FIFO) Compacting buffer, discarding %d consumed items and retaining %d", q.start, q.Len())

	remaining := make([]T, q.Len())
	copy(remaining, q.data[q.start:])

	q.data = remaining
	q.start = 0
}
