package slices

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	type test struct {
		name     string
		s        []int
		expected []int
	}

	tests := []test{
		{name: "Nil"},
		{name: "Single", s: []int{1}, expected: []int{1}},
		{name: "Even", s: []int{1, 2, 3, 4}, expected: []int{4, 3, 2, 1}},
		{name: "Odd", s: []int{1, 2, 3}, expected: []int{3, 2, 1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			Reverse(test.s)
			require.Equal(t, test.expected, test.s)
		})
	}
}
