package entropy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/entropy"
)

func TestPop_ReturnsLowestKeyFirst(t *testing.T) {
	q := entropy.NewQueue(3)
	q.Push(0, 5.0, 0)
	q.Push(1, 1.0, 0)
	q.Push(2, 3.0, 0)

	wantOrder := []int{1, 2, 0}
	for _, want := range wantOrder {
		got, _, ok := q.Pop()
		require.True(t, ok)
		require.Equal(t, want, got)
	}
	_, _, ok := q.Pop()
	require.False(t, ok, "Pop() on empty queue should return ok=false")
}

func TestPop_DiscardsStaleEntries(t *testing.T) {
	q := entropy.NewQueue(2)
	q.Push(0, 10.0, 0) // stale once version 1 is pushed below
	q.Push(1, 5.0, 0)
	q.Push(0, 1.0, 1) // newest for cell 0; supersedes the version-0 entry

	got, key, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, 0, got)
	require.Equal(t, 1.0, key)

	got, _, ok = q.Pop()
	require.True(t, ok)
	require.Equal(t, 1, got)

	_, _, ok = q.Pop()
	require.False(t, ok, "Pop() should be empty after draining both live entries")
}

func TestNotifyChanged_ImplementsPushSemantics(t *testing.T) {
	q := entropy.NewQueue(1)
	q.NotifyChanged(0, 2.5, 0)
	got, key, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, 0, got)
	require.Equal(t, 2.5, key)
}
