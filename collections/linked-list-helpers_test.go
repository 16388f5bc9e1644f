package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intRange(from, to int) []int {
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

func reversed[T any](in []T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

// requireElements checks the raw links of l and then walks it in both
// directions with a read-only cursor, expecting exactly want.
func requireElements[T any](t *testing.T, l *LinkedList[T], want []T) {
	t.Helper()
	require.NoError(t, l.Validate())
	require.Equal(t, len(want), l.Len())

	c := l.Cursor()
	for i, w := range want {
		c.MoveNext()
		got, ok := c.Current()
		require.True(t, ok, "forward index %d", i)
		require.Equal(t, w, got, "forward index %d", i)
	}
	c.MoveNext()
	_, ok := c.Current()
	require.False(t, ok, "expected ghost after the last element")

	c = l.Cursor()
	for i, w := range reversed(want) {
		c.MovePrev()
		got, ok := c.Current()
		require.True(t, ok, "backward index %d", i)
		require.Equal(t, w, got, "backward index %d", i)
	}
	c.MovePrev()
	_, ok = c.Current()
	require.False(t, ok, "expected ghost before the first element")
}

// requireOffset checks the cursor's tracked offset against a fresh count of
// the nodes before it.
func requireOffset[T any](t *testing.T, c *CursorMut[T]) {
	t.Helper()
	want := c.list.len
	if c.current != nil {
		want = 0
		for n := c.current.prev; n != nil; n = n.prev {
			want++
		}
	}
	require.Equal(t, want, c.Offset())
}

// cursorMutAt returns a CursorMut on the element at index i, or at the ghost
// slot when i is negative.
func cursorMutAt[T any](l *LinkedList[T], i int) *CursorMut[T] {
	c := l.CursorMut()
	if i < 0 {
		return c
	}
	for j := 0; j <= i; j++ {
		c.MoveNext()
	}
	return c
}
