package matx

import "github.com/cpmech/gosl/chk"

// ErrOutOfRange returns an error for an out-of-bounds element access.
func ErrOutOfRange(i, j, rows, cols int) error {
	return chk.Err("matx: index (%d,%d) out of range for %dx%d matrix", i, j, rows, cols)
}

// ErrDimMismatch returns an error for an operation between incompatible shapes.
func ErrDimMismatch(op string, arows, acols, brows, bcols int) error {
	return chk.Err("matx: %s: dimension mismatch %dx%d vs %dx%d", op, arows, acols, brows, bcols)
}

// ErrVecLen returns an error for a vector whose length does not match an expectation.
func ErrVecLen(op string, got, want int) error {
	return chk.Err("matx: %s: vector length %d, expected %d", op, got, want)
}
