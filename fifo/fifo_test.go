package fifo

import (
	"testing"

	"github.com/couchbase/tools-common/queue/errdefs"
	"github.com/couchbase/tools-common/queue/iface"
	"github.com/stretchr/testify/require"
)

func TestQueueAppendPop(t *testing.T) {
	q := NewQueue[int]()

	require.True(t, q.Append(1))
	require.True(t, q.Append(2))
	require.True(t, q.Append(3))

	item, err := q.Pop()
	require.NoError(t, err)
	require.Equal(t, 1, item)
	require.Equal(t, 2, q.Len())
}

func TestQueuePopEmpty(t *testing.T) {
	q := NewQueue[string]()

	_, err := q.Pop()
	require.ErrorIs(t, err, errdefs.ErrEmptyQueue)

	_, err = q.Peek()
	require.ErrorIs(t, err, errdefs.ErrEmptyQueue)
}

func TestQueueNewWithItems(t *testing.T) {
	items := []int{1, 2, 3}

	q := NewQueue(items...)
	items[0] = 42

	item, err := q.Pop()
	require.NoError(t, err)
	require.Equal(t, 1, item)
}

func TestQueueConstructionsDoNotShareState(t *testing.T) {
	a := NewQueue[int]()
	b := NewQueue[int]()

	a.Append(1)

	require.Equal(t, 1, a.Len())
	require.Zero(t, b.Len())
}

func TestQueueExtend(t *testing.T) {
	q := NewQueue(1)

	require.Equal(t, 3, q.Extend(2, 3, 4))
	require.Equal(t, 4, q.Len())

	require.Equal(t, 2, iface.Extend[int](q, 5, 6))
	require.Equal(t, 6, q.Len())

	var actual []int

	q.Iter(func(item int) { actual = append(actual, item) })
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, actual)
}

func TestQueuePeek(t *testing.T) {
	q := NewQueue(1, 2)

	item, err := q.Peek()
	require.NoError(t, err)
	require.Equal(t, 1, item)
	require.Equal(t, 2, q.Len())
}

func TestQueueCompaction(t *testing.T) {
	q := NewQueue[int]()

	for i := 0; i < 10; i++ {
		q.Append(i)
	}

	for i := 0; i < 6; i++ {
		item, err := q.Pop()
		require.NoError(t, err)
		require.Equal(t, i, item)
	}

	// Six consumed items is over both the threshold and half the buffer
	require.Zero(t, q.start)
	require.Len(t, q.data, 4)
	require.Equal(t, 4, q.Len())

	for i := 6; i < 10; i++ {
		item, err := q.Pop()
		require.NoError(t, err)
		require.Equal(t, i, item)
	}

	require.Zero(t, q.Len())
}

func TestQueueNoCompactionBelowThreshold(t *testing.T) {
	q := NewQueue(1, 2, 3, 4, 5, 6)

	for i := 0; i < 5; i++ {
		_, err := q.Pop()
		require.NoError(t, err)
	}

	require.Equal(t, 5, q.start)
	require.Len(t, q.data, 6)
	require.Equal(t, 1, q.Len())
}

func TestQueuePopReleasesReference(t *testing.T) {
	v := 42
	q := NewQueue(&v, nil)

	_, err := q.Pop()
	require.NoError(t, err)
	require.Nil(t, q.data[0])
}

func TestQueueInterleaved(t *testing.T) {
	var (
		q        = NewQueue[int]()
		expected []int
		actual   []int
	)

	for i := 0; i < 100; i++ {
		q.Append(i)
		expected = append(expected, i)

		if i%3 == 0 {
			item, err := q.Pop()
			require.NoError(t, err)

			actual = append(actual, item)
		}
	}

	for q.Len() > 0 {
		item, err := q.Pop()
		require.NoError(t, err)

		actual = append(actual, item)
	}

	require.Equal(t, expected, actual)
}
