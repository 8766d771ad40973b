package transport

import "github.com/cpmech/gosl/chk"

// ErrInvalidHandle reports a Wait call given a Handle it did not create.
var ErrInvalidHandle = chk.Err("transport: invalid or foreign handle passed to Wait")

// ErrLengthMismatch reports a received buffer whose length does not match
// the length requested at PostRecv time.
func ErrLengthMismatch(got, want int) error {
	return chk.Err("transport: received %d values, expected %d", got, want)
}
