package slices

// Map applies the given function to each element of the provided slice, in order.
func Map[AS ~[]A, BS ~[]B, A, B any](as AS, fn func(a A) B) BS {
	bs := make(BS, 0, len(as))

	for _, a := range as {
		bs = append(bs, fn(a))
	}

	return bs
}

// MapReverse applies the given function to each element of the provided slice, starting from the last element.
func MapReverse[AS ~[]A, BS ~[]B, A, B any](as AS, fn func(a A) B) BS {
	bs := make(BS, 0, len(as))

	for i := len(as) - 1; i >= 0; i-- {
		bs = append(bs, fn(as[i]))
	}

	return bs
}
