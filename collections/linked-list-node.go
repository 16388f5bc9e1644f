package collections

import "github.com/Invicton-Labs/go-linkedlist/zero"

// node is a single cell of a LinkedList. Its links point at neighbours but
// never own them; every node is owned by the list it is reachable from.
type node[T any] struct {
	next, prev *node[T]
	element    T
}

func newNode[T any](element T) *node[T] {
	return &node[T]{
		element: element,
	}
}

// intoElement consumes the node, returning its element. The node must already
// be unlinked from its list.
func (n *node[T]) intoElement() T {
	n.next = nil // avoid memory leaks
	n.prev = nil // avoid memory leaks
	return zero.Take(&n.element)
}
