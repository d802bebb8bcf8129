package pq

import "fmt"

// Entry is an item stored in a priority queue alongside the score it was given when it was inserted.
type Entry[T any, S Number] struct {
	Score S
	Item  T
}

func (e Entry[T, S]) String() string {
	return fmt.Sprintf("(%v, %v)", e.Score, e.Item)
}
