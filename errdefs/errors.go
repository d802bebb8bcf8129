// Package errdefs provides the error values and types shared by the queue implementations.
package errdefs

import (
	"errors"
	"fmt"
)

// ErrEmptyQueue is returned when attempting to pop (or peek) from a queue which contains no items.
var ErrEmptyQueue = errors.New("queue is empty")

// IndexOutOfRangeError is returned when accessing a queue using an index which falls outside of '[0, length)' once
// any negative index has been normalized.
type IndexOutOfRangeError struct {
	i      int
	length int
}

// NewIndexOutOfRangeError returns an error indicating that index i is invalid for a queue of the given length.
func NewIndexOutOfRangeError(i, length int) *IndexOutOfRangeError {
	return &IndexOutOfRangeError{i: i, length: length}
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index out of range %d with length %d", e.i, e.length)
}

// Index returns the index which was requested.
func (e *IndexOutOfRangeError) Index() int {
	return e.i
}

// Length returns the length of the queue at the time of the request.
func (e *IndexOutOfRangeError) Length() int {
	return e.length
}

// IsIndexOutOfRange returns a boolean indicating whether the given error is an 'IndexOutOfRangeError'.
func IsIndexOutOfRange(err error) bool {
	var outOfRange *IndexOutOfRangeError
	return errors.As(err, &outOfRange)
}

// IncompatibleQueueError is returned when attempting to combine two priority queues which disagree on whether the
// best item has the minimum or the maximum score.
type IncompatibleQueueError struct {
	leftMinimize  bool
	rightMinimize bool
}

// NewIncompatibleQueueError returns an error describing the ordering modes of the two queues.
func NewIncompatibleQueueError(leftMinimize, rightMinimize bool) *IncompatibleQueueError {
	return &IncompatibleQueueError{leftMinimize: leftMinimize, rightMinimize: rightMinimize}
}

func (e *IncompatibleQueueError) Error() string {
	return fmt.Sprintf("cannot combine a %s queue with a %s queue", mode(e.leftMinimize), mode(e.rightMinimize))
}

// IsIncompatibleQueue returns a boolean indicating whether the given error is an 'IncompatibleQueueError'.
func IsIncompatibleQueue(err error) bool {
	var incompatible *IncompatibleQueueError
	return errors.As(err, &incompatible)
}

func mode(minimize bool) string {
	if minimize {
		return "minimizing"
	}

	return "maximizing"
}
