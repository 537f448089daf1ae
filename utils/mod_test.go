package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlices(t *testing.T) {
	t.Run("finding items", func(t *testing.T) {
		items := []string{"left", "right", "up"}
		require.Equal(t, 1, IndexOf(items, "right"), "should find the index of a present item")
		require.Equal(t, -1, IndexOf(items, "down"), "should return -1 for a missing item")
		require.True(t, Contains(items, "up"), "should contain a present item")
		require.False(t, Contains(items, "down"), "should not contain a missing item")
	})

	t.Run("filtering items", func(t *testing.T) {
		even := Filter([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 })
		require.Equal(t, []int{2, 4}, even, "should keep matching items in order")
		require.Empty(t, Filter([]int{1, 3}, func(v int) bool { return v%2 == 0 }), "should return an empty slice when nothing matches")
	})
}
