package collections

// ForEachLinkedList calls f for each element of l, front to back. It reads
// through a fresh Cursor, so any CursorMut held on l is revoked.
func ForEachLinkedList[Value any](l *LinkedList[Value], f func(value Value)) {
	c := l.Cursor()
	for c.MoveNext(); !c.IsGhost(); c.MoveNext() {
		v, _ := c.Current()
		f(v)
	}
}

// ForEachLinkedListReverse calls f for each element of l, back to front.
func ForEachLinkedListReverse[Value any](l *LinkedList[Value], f func(value Value)) {
	c := l.Cursor()
	for c.MovePrev(); !c.IsGhost(); c.MovePrev() {
		v, _ := c.Current()
		f(v)
	}
}
