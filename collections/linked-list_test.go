package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLinkedListIsEmpty(t *testing.T) {
	l := NewLinkedList[int]()
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())
	requireElements(t, l, []int{})

	var zeroList LinkedList[string]
	c := zeroList.CursorMut()
	c.Insert("a")
	requireElements(t, &zeroList, []string{"a"})
}

func TestNewLinkedListFromKeepsOrder(t *testing.T) {
	for _, n := range []int{0, 1, 2, 10, 257} {
		want := intRange(0, n)
		l := NewLinkedListFrom(want...)
		requireElements(t, l, want)
		assert.Equal(t, want, l.ToSlice())
	}
}

func TestCursorMutIteratesBothWays(t *testing.T) {
	l := NewLinkedListFrom(intRange(0, 10)...)

	c := l.CursorMut()
	for i := 0; i < 10; i++ {
		c.MoveNext()
		require.NotNil(t, c.Current())
		assert.Equal(t, i, *c.Current())
		assert.Equal(t, i, c.Offset())
	}
	c.MoveNext()
	assert.Nil(t, c.Current())
	assert.Equal(t, 10, c.Offset())

	c = l.CursorMut()
	for i := 9; i >= 0; i-- {
		c.MovePrev()
		require.NotNil(t, c.Current())
		assert.Equal(t, i, *c.Current())
		assert.Equal(t, i, c.Offset())
	}
	c.MovePrev()
	assert.Nil(t, c.Current())
	assert.Equal(t, 10, c.Offset())
}

func TestLenMatchesReachableNodes(t *testing.T) {
	l := NewLinkedListFrom(intRange(0, 6)...)
	c := cursorMutAt(l, 2)
	c.Insert(100)
	c.InsertBefore(101)
	c.Pop()
	c.PopPrev()
	c.PopPrev()
	c.InsertList(NewLinkedListFrom(7, 8, 9))

	reachable := 0
	for n := l.head; n != nil; n = n.next {
		reachable++
	}
	assert.Equal(t, reachable, l.Len())
	requireElements(t, l, []int{0, 2, 7, 8, 9, 3, 4, 5})
}

func TestClear(t *testing.T) {
	l := NewLinkedListFrom(intRange(0, 100000)...)
	head := l.head
	l.Clear()
	requireElements(t, l, []int{})
	assert.True(t, l.IsEmpty())
	assert.Nil(t, head.next)
	assert.Nil(t, head.prev)

	// The list is still usable after a clear.
	l.CursorMut().Insert(42)
	requireElements(t, l, []int{42})
}

func TestClearReleasesElements(t *testing.T) {
	l := NewLinkedListFrom([]int{1}, []int{2})
	first := l.head
	l.Clear()
	assert.Nil(t, first.element)
}

func TestLinkedListsEqual(t *testing.T) {
	assert.True(t, LinkedListsEqual(NewLinkedListFrom(1, 2, 3), NewLinkedListFrom(1, 2, 3)))
	assert.False(t, LinkedListsEqual(NewLinkedListFrom(1, 2, 3), NewLinkedListFrom(1, 2)))
	assert.False(t, LinkedListsEqual(NewLinkedListFrom(1, 2, 3), NewLinkedListFrom(1, 5, 3)))
	assert.True(t, LinkedListsEqual[int](nil, nil))
	assert.True(t, LinkedListsEqual(nil, NewLinkedList[int]()))
	assert.False(t, LinkedListsEqual(NewLinkedListFrom(1), nil))
}
