package collections

import (
	"github.com/Invicton-Labs/go-linkedlist/zero"
)

// CursorMut[T] is a read-write position within a LinkedList[T]. Besides its
// node it tracks its offset, the number of elements strictly before the
// current node. The offset of the first element is 0 and the offset of the
// ghost slot is Len(). Moves wrap the offset modulo Len()+1, which is what
// lets Split size both halves in O(1).
type CursorMut[T any] struct {
	list     *LinkedList[T]
	current  *node[T]
	offset   int
	consumed bool
}

func (c *CursorMut[T]) check(op string) {
	if c.consumed {
		violation(op, "cursor used after it was consumed by a split", map[string]any{
			"list_len": c.list.len,
		})
	}
	if c.list.writer != c {
		violation(op, "cursor used after another cursor was obtained from the list", map[string]any{
			"list_len": c.list.len,
			"offset":   c.offset,
		})
	}
}

// edited records a structural change, revoking any read-only views.
func (c *CursorMut[T]) edited() {
	c.list.version++
	if c.current == nil {
		c.offset = c.list.len
	}
}

func (c *CursorMut[T]) next() *node[T] {
	if c.current == nil {
		return c.list.head
	}
	return c.current.next
}

func (c *CursorMut[T]) prev() *node[T] {
	if c.current == nil {
		return c.list.tail
	}
	return c.current.prev
}

// MoveNext moves to the following element, or to the ghost slot if the
// cursor is on the last element.
func (c *CursorMut[T]) MoveNext() {
	c.check("CursorMut.MoveNext")
	c.offset = (c.offset + 1) % (c.list.len + 1)
	c.current = c.next()
}

// MovePrev moves to the preceding element, or to the ghost slot if the
// cursor is on the first element.
func (c *CursorMut[T]) MovePrev() {
	c.check("CursorMut.MovePrev")
	c.offset = (c.offset + c.list.len) % (c.list.len + 1)
	c.current = c.prev()
}

// Offset returns the number of elements before the cursor. At the ghost slot
// this is the length of the list.
func (c *CursorMut[T]) Offset() int {
	c.check("CursorMut.Offset")
	return c.offset
}

// IsGhost returns true if the cursor is not on any element.
func (c *CursorMut[T]) IsGhost() bool {
	return c.current == nil
}

// Current returns a pointer to the element under the cursor, or nil at the
// ghost slot.
func (c *CursorMut[T]) Current() *T {
	c.check("CursorMut.Current")
	return elementPtr(c.current)
}

// Peek returns a pointer to the element after the cursor, or nil.
func (c *CursorMut[T]) Peek() *T {
	c.check("CursorMut.Peek")
	return elementPtr(c.next())
}

// PeekBefore returns a pointer to the element before the cursor, or nil.
func (c *CursorMut[T]) PeekBefore() *T {
	c.check("CursorMut.PeekBefore")
	return elementPtr(c.prev())
}

func elementPtr[T any](n *node[T]) *T {
	if n == nil {
		return nil
	}
	return &n.element
}

// AsCursor returns a read-only cursor at the same position. It stays valid
// until this cursor next changes the structure of the list.
func (c *CursorMut[T]) AsCursor() *Cursor[T] {
	c.check("CursorMut.AsCursor")
	return &Cursor[T]{
		list:    c.list,
		current: c.current,
		version: c.list.version,
	}
}

// Insert adds item after the cursor. The cursor does not move.
func (c *CursorMut[T]) Insert(item T) {
	c.check("CursorMut.Insert")
	n := newNode(item)
	next := c.next()
	n.prev = c.current
	n.next = next
	if next == nil {
		c.list.tail = n
	} else {
		next.prev = n
	}
	if c.current == nil {
		c.list.head = n
	} else {
		c.current.next = n
	}
	c.list.len++
	c.edited()
}

// InsertBefore adds item before the cursor. The cursor does not move, so its
// offset grows by one.
func (c *CursorMut[T]) InsertBefore(item T) {
	c.check("CursorMut.InsertBefore")
	n := newNode(item)
	prev := c.prev()
	n.prev = prev
	n.next = c.current
	if prev == nil {
		c.list.head = n
	} else {
		prev.next = n
	}
	if c.current == nil {
		c.list.tail = n
	} else {
		c.current.prev = n
	}
	c.list.len++
	c.offset++
	c.edited()
}

// take moves every node out of other so they can be spliced into the
// cursor's list. It returns nil if there is nothing to splice.
func (c *CursorMut[T]) take(op string, other *LinkedList[T]) *LinkedList[T] {
	if other == c.list {
		violation(op, "a list cannot be spliced into itself", map[string]any{
			"list_len": c.list.len,
		})
	}
	if other == nil || other.len == 0 {
		return nil
	}
	return other.takeAll()
}

// InsertList moves every element of other to just after the cursor, in
// order, in O(1). other is left empty and its cursors are revoked. Splicing
// an empty list does nothing.
func (c *CursorMut[T]) InsertList(other *LinkedList[T]) {
	c.check("CursorMut.InsertList")
	spliced := c.take("CursorMut.InsertList", other)
	if spliced == nil {
		return
	}
	next := c.next()
	spliced.head.prev = c.current
	spliced.tail.next = next
	if next == nil {
		c.list.tail = spliced.tail
	} else {
		next.prev = spliced.tail
	}
	if c.current == nil {
		c.list.head = spliced.head
	} else {
		c.current.next = spliced.head
	}
	c.list.len += spliced.len
	c.edited()
}

// InsertListBefore moves every element of other to just before the cursor,
// in order, in O(1). other is left empty and its cursors are revoked.
func (c *CursorMut[T]) InsertListBefore(other *LinkedList[T]) {
	c.check("CursorMut.InsertListBefore")
	spliced := c.take("CursorMut.InsertListBefore", other)
	if spliced == nil {
		return
	}
	prev := c.prev()
	spliced.head.prev = prev
	spliced.tail.next = c.current
	if prev == nil {
		c.list.head = spliced.head
	} else {
		prev.next = spliced.head
	}
	if c.current == nil {
		c.list.tail = spliced.tail
	} else {
		c.current.prev = spliced.tail
	}
	c.list.len += spliced.len
	c.offset += spliced.len
	c.edited()
}

// Pop removes and returns the element after the cursor. The bool is false if
// there is no such element.
func (c *CursorMut[T]) Pop() (T, bool) {
	c.check("CursorMut.Pop")
	n := c.next()
	if n == nil {
		return zero.Value[T](), false
	}
	if c.current == nil {
		c.list.head = n.next
	} else {
		c.current.next = n.next
	}
	if n.next == nil {
		c.list.tail = c.current
	} else {
		n.next.prev = c.current
	}
	c.list.len--
	c.edited()
	return n.intoElement(), true
}

// PopPrev removes and returns the element before the cursor. The bool is
// false if there is no such element.
func (c *CursorMut[T]) PopPrev() (T, bool) {
	c.check("CursorMut.PopPrev")
	n := c.prev()
	if n == nil {
		return zero.Value[T](), false
	}
	if n.prev == nil {
		c.list.head = c.current
	} else {
		n.prev.next = c.current
	}
	if c.current == nil {
		c.list.tail = n.prev
	} else {
		c.current.prev = n.prev
	}
	c.list.len--
	c.offset--
	c.edited()
	return n.intoElement(), true
}

// consume ends the cursor's mutable borrow for good.
func (c *CursorMut[T]) consume() {
	c.consumed = true
	c.list.writer = nil
}

// Split cuts the list after the cursor. The list keeps the current element
// and everything before it; everything after it is returned as a new list.
// At the ghost slot the whole list is returned and the original is left
// empty. The cursor cannot be used afterwards.
func (c *CursorMut[T]) Split() *LinkedList[T] {
	c.check("CursorMut.Split")
	c.consume()
	if c.current == nil {
		return c.list.takeAll()
	}
	return c.list.splitAfter(c.current, c.offset+1)
}

// SplitBefore cuts the list before the cursor. The list keeps everything
// before the current element; the current element and everything after it
// are returned as a new list. At the ghost slot, or on the first element,
// the whole list is returned and the original is left empty. The cursor
// cannot be used afterwards.
func (c *CursorMut[T]) SplitBefore() *LinkedList[T] {
	c.check("CursorMut.SplitBefore")
	c.consume()
	if c.current == nil || c.current.prev == nil {
		return c.list.takeAll()
	}
	return c.list.splitAfter(c.current.prev, c.offset)
}

// takeAll moves every node into a new list, leaving l empty.
func (l *LinkedList[T]) takeAll() *LinkedList[T] {
	out := &LinkedList[T]{
		head: l.head,
		tail: l.tail,
		len:  l.len,
	}
	l.head = nil
	l.tail = nil
	l.len = 0
	l.version++
	l.writer = nil
	return out
}

// splitAfter severs the link after at, which must be the keep'th node of l.
// l keeps the first keep nodes and the rest are returned.
func (l *LinkedList[T]) splitAfter(at *node[T], keep int) *LinkedList[T] {
	next := at.next
	if next == nil {
		return NewLinkedList[T]()
	}
	out := &LinkedList[T]{
		head: next,
		tail: l.tail,
		len:  l.len - keep,
	}
	at.next = nil
	next.prev = nil
	l.tail = at
	l.len = keep
	l.version++
	return out
}
