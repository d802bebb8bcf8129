package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	t.Run("LogPrefix", func(t *testing.T) {
		opts := Options{MaxExpansions: 42}
		opts.defaults()
		require.Equal(t, Options{MaxExpansions: 42, LogPrefix: "(Search)"}, opts)
	})

	t.Run("CustomLogPrefix", func(t *testing.T) {
		opts := Options{LogPrefix: "(Planner)"}
		opts.defaults()
		require.Equal(t, Options{LogPrefix: "(Planner)"}, opts)
	})
}
