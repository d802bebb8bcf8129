// Package slices provides generic slice helpers used by the queue implementations.
package slices

// Filter returns a new slice containing only the elements of s which satisfy every given predicate, preserving their
// relative order.
//
// NOTE: Providing no predicates returns a copy of the input; the input slice is never modified.
func Filter[S ~[]E, E any](s S, p ...func(e E) bool) S {
	filtered := make(S, 0, len(s))

	for _, e := range s {
		if all(e, p...) {
			filtered = append(filtered, e)
		}
	}

	return filtered
}

// all returns a boolean indicating whether the given element matches all the provided predicates.
func all[E any](e E, p ...func(e E) bool) bool {
	for _, fn := range p {
		if !fn(e) {
			return false
		}
	}

	return true
}
