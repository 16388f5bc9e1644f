package collections

import (
	"github.com/Invicton-Labs/go-linkedlist/log"
	"github.com/Invicton-Labs/go-stackerr"
)

// violation reports a broken cursor contract through the default logger and
// then panics with the same error. It never returns.
func violation(op string, msg string, fields map[string]any) {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["op"] = op
	err := stackerr.Errorf("%s: %s", op, msg).With(fields)
	log.Error(err)
	panic(err)
}
