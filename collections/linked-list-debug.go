package collections

import (
	"fmt"
	"strings"

	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

// String renders the elements in forward order, e.g. "[1 2 3]". The format is
// meant for diagnostics and may change.
func (l *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	c := l.view()
	for i := 0; ; i++ {
		c.MoveNext()
		v, ok := c.Current()
		if !ok {
			break
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

// MarshalLogArray lets a list be logged with zap.Array.
func (l *LinkedList[T]) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	var err error
	c := l.view()
	for c.MoveNext(); !c.IsGhost(); c.MoveNext() {
		v, _ := c.Current()
		err = multierr.Append(err, enc.AppendReflected(v))
	}
	return err
}

// Validate walks the raw links of the list and reports every broken
// invariant it finds. A nil result means the head/tail/length bookkeeping and
// the prev/next links all agree.
func (l *LinkedList[T]) Validate() error {
	var errs error
	fail := func(msg string, fields map[string]any) {
		if fields == nil {
			fields = map[string]any{}
		}
		errs = multierr.Append(errs, stackerr.Errorf("%s", msg).With(fields))
	}

	if (l.head == nil) != (l.tail == nil) || (l.head == nil) != (l.len == 0) {
		fail("head, tail and length disagree on emptiness", map[string]any{
			"has_head": l.head != nil,
			"has_tail": l.tail != nil,
			"len":      l.len,
		})
		return errs
	}
	if l.head != nil && l.head.prev != nil {
		fail("head has a previous node", nil)
	}
	if l.tail != nil && l.tail.next != nil {
		fail("tail has a next node", nil)
	}

	// Walk forward, bounded by len so a cycle cannot hang the check.
	count := 0
	var last *node[T]
	for n := l.head; n != nil && count <= l.len; n = n.next {
		if n.next != nil && n.next.prev != n {
			fail("next node does not link back", map[string]any{"index": count})
		}
		last = n
		count++
	}
	if count != l.len {
		fail("forward walk length differs from len", map[string]any{
			"walked": count,
			"len":    l.len,
		})
	}
	if last != l.tail {
		fail("forward walk does not end at tail", nil)
	}

	count = 0
	var first *node[T]
	for n := l.tail; n != nil && count <= l.len; n = n.prev {
		if n.prev != nil && n.prev.next != n {
			fail("previous node does not link forward", map[string]any{"index_from_back": count})
		}
		first = n
		count++
	}
	if count != l.len {
		fail("backward walk length differs from len", map[string]any{
			"walked": count,
			"len":    l.len,
		})
	}
	if first != l.head {
		fail("backward walk does not end at head", nil)
	}
	return errs
}
