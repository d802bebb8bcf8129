// Package iface provides the interfaces shared by the queue implementations, such as 'Queue'.
package iface

// Appender is implemented by anything which accepts new items, reporting whether each item was accepted.
type Appender[T any] interface {
	Append(item T) bool
}

// Queue is the minimal interface implemented by every queue type in this module.
//
// NOTE: Queues are not safe for concurrent use and need to be wrapped in a lock to be shared between goroutines.
type Queue[T any] interface {
	Appender[T]

	// Pop removes and returns the next item, returning 'errdefs.ErrEmptyQueue' if there are no items.
	Pop() (T, error)

	// Len returns the number of items currently held in the queue.
	Len() int
}

// Extend appends each of the given items to the queue in order, returning the number of items which were accepted.
func Extend[T any](q Appender[T], items ...T) int {
	var accepted int

	for _, item := range items {
		if q.Append(item) {
			accepted++
		}
	}

	return accepted
}
