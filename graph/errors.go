package graph

import "github.com/cpmech/gosl/chk"

// ErrDuplicateName reports an attempt to add a node whose name already exists.
func ErrDuplicateName(name string) error {
	return chk.Err("graph: node name %q already exists", name)
}

// ErrUnknownNode reports a reference to a node name or index the graph does not have.
func ErrUnknownNode(name string) error {
	return chk.Err("graph: unknown node %q", name)
}

// ErrUnknownIndex reports a reference to a node index out of range.
func ErrUnknownIndex(i int) error {
	return chk.Err("graph: node index %d out of range", i)
}

// ErrLengthMismatch reports construction from mismatched name/value slices.
func ErrLengthMismatch(names, values int) error {
	return chk.Err("graph: name/value length mismatch: %d names, %d values", names, values)
}

// ErrNonSquare reports construction from a non-square adjacency matrix.
func ErrNonSquare(rows, cols int) error {
	return chk.Err("graph: adjacency matrix must be square, got %dx%d", rows, cols)
}
