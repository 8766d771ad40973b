package matx

import "github.com/cpmech/gosl/la"

// epsilon used by the column/row normalisation operations to avoid division by zero.
const normEps = 1e-20

// Matrix is a dense, row-major, fixed-size real matrix. Its dimensions are
// fixed after construction; ops that grow a matrix (CopyAndAddRowsColsWithZeros)
// return a new, larger Matrix rather than mutating the receiver.
type Matrix struct {
	rows, cols int
	data       [][]float64
}

// NewMatrix returns a rows x cols matrix of zeros.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: la.MatAlloc(rows, cols)}
}

// NewMatrixFrom2D builds a Matrix from a dense 2D slice, copying every row.
// Every row must have the same length, and there must be at least one row.
func NewMatrixFrom2D(a [][]float64) *Matrix {
	rows := len(a)
	cols := 0
	if rows > 0 {
		cols = len(a[0])
	}
	m := NewMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		copy(m.data[i], a[i])
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Copy returns a deep copy of m.
func (m *Matrix) Copy() *Matrix {
	return &Matrix{rows: m.rows, cols: m.cols, data: la.MatClone(m.data)}
}

// Assign overwrites the receiver's data with a copy of other's, resizing if needed.
func (m *Matrix) Assign(other *Matrix) {
	m.rows, m.cols = other.rows, other.cols
	m.data = la.MatClone(other.data)
}

// Get reads the element at (i,j), returning ErrOutOfRange if out of bounds.
func (m *Matrix) Get(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, ErrOutOfRange(i, j, m.rows, m.cols)
	}
	return m.data[i][j], nil
}

// MustGet is Get without an error return, for call sites that have already
// validated the index (e.g. loop bounds derived from m.Rows()/m.Cols()).
func (m *Matrix) MustGet(i, j int) float64 { return m.data[i][j] }

// Set writes the element at (i,j), returning ErrOutOfRange if out of bounds.
func (m *Matrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return ErrOutOfRange(i, j, m.rows, m.cols)
	}
	m.data[i][j] = v
	return nil
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	r := make([]float64, m.cols)
	copy(r, m.data[i])
	return r
}

// Col returns a copy of column j.
func (m *Matrix) Col(j int) []float64 {
	c := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		c[i] = m.data[i][j]
	}
	return c
}

// Raw exposes the underlying row-major storage. Callers must not change its
// dimensions; element mutation is fine and is what Set does internally.
func (m *Matrix) Raw() [][]float64 { return m.data }
