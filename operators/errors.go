package operators

import "github.com/cpmech/gosl/chk"

// ErrQLength reports a per-node weight vector q whose length does not match
// the state it is applied to (spec.md §4.4, Conservation.Scaled).
func ErrQLength(got, want int) error {
	return chk.Err("operators: q has length %d, expected %d", got, want)
}
