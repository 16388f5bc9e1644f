// Package collections implements a doubly linked list that is read and edited
// exclusively through cursors.
//
// To iterate over a list (where l is a *LinkedList[T]):
//
//	c := l.Cursor()
//	for c.MoveNext(); !c.IsGhost(); c.MoveNext() {
//		v, _ := c.Current()
//		// do something with v
//	}
//
// Every cursor has a "ghost" position that sits both before the first
// element and after the last one. Cursors start there, so a single MoveNext
// reaches the front and a single MovePrev reaches the back.
package collections

// LinkedList[T] is a doubly linked list that owns its nodes.
// The zero value for LinkedList[T] is an empty list ready to use.
//
// A list may have any number of read-only cursors or exactly one CursorMut
// at a time. Acquiring a CursorMut revokes every read-only cursor, and
// acquiring a read-only cursor revokes the CursorMut. A revoked cursor panics
// when used.
type LinkedList[T any] struct {
	head *node[T]
	tail *node[T]
	len  int // current list length

	// version changes whenever a read-only cursor could have been
	// invalidated, either by a structural edit or a new CursorMut.
	version uint64
	// writer is the only CursorMut currently allowed to edit the list.
	writer *CursorMut[T]
}

// NewLinkedList returns an empty list.
func NewLinkedList[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// NewLinkedListFrom returns a list holding items in the given order.
func NewLinkedListFrom[T any](items ...T) *LinkedList[T] {
	l := NewLinkedList[T]()
	c := l.CursorMut()
	for _, item := range items {
		c.InsertBefore(item)
	}
	return l
}

// Len returns the number of elements of list l.
// The complexity is O(1).
func (l *LinkedList[T]) Len() int { return l.len }

// IsEmpty returns true if the list has no elements.
func (l *LinkedList[T]) IsEmpty() bool { return l.len == 0 }

// Cursor returns a read-only cursor positioned at the ghost slot. Any
// CursorMut previously obtained from l is revoked.
func (l *LinkedList[T]) Cursor() *Cursor[T] {
	l.writer = nil
	return l.view()
}

// view returns a read-only cursor at the ghost slot without touching the
// current writer. It backs the list's own read helpers.
func (l *LinkedList[T]) view() *Cursor[T] {
	return &Cursor[T]{
		list:    l,
		version: l.version,
	}
}

// CursorMut returns a read-write cursor positioned at the ghost slot. Every
// cursor previously obtained from l is revoked.
func (l *LinkedList[T]) CursorMut() *CursorMut[T] {
	c := &CursorMut[T]{
		list:   l,
		offset: l.len,
	}
	l.version++
	l.writer = c
	return c
}

// Clear removes every element, front to back. It runs in O(n) time and
// constant stack space.
func (l *LinkedList[T]) Clear() {
	c := l.CursorMut()
	for {
		if _, ok := c.Pop(); !ok {
			break
		}
	}
}

// ToSlice returns the elements of the list in forward order.
func (l *LinkedList[T]) ToSlice() []T {
	out := make([]T, 0, l.len)
	c := l.view()
	for c.MoveNext(); !c.IsGhost(); c.MoveNext() {
		v, _ := c.Current()
		out = append(out, v)
	}
	return out
}

// LinkedListsEqual returns true if both lists hold equal elements in the same
// order. Two nil lists are equal; a nil list equals an empty one.
func LinkedListsEqual[T comparable](a, b *LinkedList[T]) bool {
	if a == nil || b == nil {
		return (a == nil || a.IsEmpty()) && (b == nil || b.IsEmpty())
	}
	if a.len != b.len {
		return false
	}
	ca, cb := a.view(), b.view()
	for i := 0; i < a.len; i++ {
		ca.MoveNext()
		cb.MoveNext()
		va, _ := ca.Current()
		vb, _ := cb.Current()
		if va != vb {
			return false
		}
	}
	return true
}
