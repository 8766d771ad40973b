package partition

import "github.com/cpmech/gosl/chk"

// ErrNoTypes reports an attempt to build a plan with an empty type list.
var ErrNoTypes = chk.Err("partition: type list is empty")

// ErrNonPositiveWorkers reports a non-positive worker count.
func ErrNonPositiveWorkers(n int) error {
	return chk.Err("partition: numWorkers must be positive, got %d", n)
}

// ErrUnknownType reports a lookup against a type absent from the plan.
func ErrUnknownType(typ string) error {
	return chk.Err("partition: unknown agent type %q", typ)
}
