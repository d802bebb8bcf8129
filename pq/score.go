package pq

import "golang.org/x/exp/constraints"

// Number is the set of types which may be used as a score.
type Number interface {
	constraints.Integer | constraints.Float
}

// Score is the result of scoring an item, it's either a plain value or a function which will produce the value when
// the item is inserted into a queue.
type Score[S Number] struct {
	value S
	fn    func() S
}

// Value returns a score which resolves to the given value.
func Value[S Number](s S) Score[S] {
	return Score[S]{value: s}
}

// Lazy returns a score which resolves by calling fn, this allows scoring items which expose a method computing their
// score rather than a field holding it.
//
// NOTE: A nil function resolves to the zero value.
func Lazy[S Number](fn func() S) Score[S] {
	return Score[S]{fn: fn}
}

// IsLazy returns a boolean indicating whether resolving this score requires a function call.
func (s Score[S]) IsLazy() bool {
	return s.fn != nil
}

// Resolve returns the numeric score.
func (s Score[S]) Resolve() S {
	if s.fn != nil {
		return s.fn()
	}

	return s.value
}

// ScoreFunc returns the score for the given item.
type ScoreFunc[T any, S Number] func(item T) Score[S]

// ByValue adapts a function returning a plain number into a 'ScoreFunc'.
func ByValue[T any, S Number](fn func(item T) S) ScoreFunc[T, S] {
	return func(item T) Score[S] { return Value(fn(item)) }
}

// ByMethod adapts a function returning a zero-argument scoring function, typically a method value such as
// 'item.Score', into a 'ScoreFunc'.
func ByMethod[T any, S Number](fn func(item T) func() S) ScoreFunc[T, S] {
	return func(item T) Score[S] { return Lazy(fn(item)) }
}
