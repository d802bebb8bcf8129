package pq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreResolve(t *testing.T) {
	type test struct {
		name     string
		score    Score[int]
		lazy     bool
		expected int
	}

	tests := []test{
		{name: "Value", score: Value(42), expected: 42},
		{name: "Lazy", score: Lazy(func() int { return 7 }), lazy: true, expected: 7},
		{name: "LazyNil", score: Lazy[int](nil), expected: 0},
		{name: "Zero", expected: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.lazy, test.score.IsLazy())
			require.Equal(t, test.expected, test.score.Resolve())
		})
	}
}

func TestByValue(t *testing.T) {
	score := ByValue(func(s string) int { return len(s) })("four")

	require.False(t, score.IsLazy())
	require.Equal(t, 4, score.Resolve())
}

func TestByMethod(t *testing.T) {
	var calls int

	score := ByMethod(func(n node) func() int {
		return func() int { calls++; return n.score }
	})(node{"a", 3})

	require.True(t, score.IsLazy())
	require.Zero(t, calls)
	require.Equal(t, 3, score.Resolve())
	require.Equal(t, 1, calls)
}
