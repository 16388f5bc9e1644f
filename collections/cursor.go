package collections

import (
	"github.com/Invicton-Labs/go-linkedlist/zero"
)

// Cursor[T] is a read-only position within a LinkedList[T] that can move in
// either direction. A nil current node is the ghost slot.
type Cursor[T any] struct {
	list    *LinkedList[T]
	current *node[T]
	version uint64
}

func (c *Cursor[T]) check(op string) {
	if c.version != c.list.version {
		violation(op, "cursor used after the list was modified or borrowed mutably", map[string]any{
			"cursor_version": c.version,
			"list_version":   c.list.version,
			"list_len":       c.list.len,
		})
	}
}

func (c *Cursor[T]) next() *node[T] {
	if c.current == nil {
		return c.list.head
	}
	return c.current.next
}

func (c *Cursor[T]) prev() *node[T] {
	if c.current == nil {
		return c.list.tail
	}
	return c.current.prev
}

// MoveNext moves to the following element, or to the ghost slot if the
// cursor is on the last element. From the ghost slot it moves to the front.
func (c *Cursor[T]) MoveNext() {
	c.check("Cursor.MoveNext")
	c.current = c.next()
}

// MovePrev moves to the preceding element, or to the ghost slot if the
// cursor is on the first element. From the ghost slot it moves to the back.
func (c *Cursor[T]) MovePrev() {
	c.check("Cursor.MovePrev")
	c.current = c.prev()
}

// IsGhost returns true if the cursor is not on any element.
func (c *Cursor[T]) IsGhost() bool {
	return c.current == nil
}

// Current returns the element under the cursor. The bool is false at the
// ghost slot.
func (c *Cursor[T]) Current() (T, bool) {
	c.check("Cursor.Current")
	return elementOf(c.current)
}

// Peek returns the element after the cursor without moving.
func (c *Cursor[T]) Peek() (T, bool) {
	c.check("Cursor.Peek")
	return elementOf(c.next())
}

// PeekBefore returns the element before the cursor without moving.
func (c *Cursor[T]) PeekBefore() (T, bool) {
	c.check("Cursor.PeekBefore")
	return elementOf(c.prev())
}

func elementOf[T any](n *node[T]) (T, bool) {
	if n == nil {
		return zero.Value[T](), false
	}
	return n.element, true
}
