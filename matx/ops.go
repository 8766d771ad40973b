package matx

// AddInPlace computes m += other, element by element.
func (m *Matrix) AddInPlace(other *Matrix) error {
	if m.rows != other.rows || m.cols != other.cols {
		return ErrDimMismatch("AddInPlace", m.rows, m.cols, other.rows, other.cols)
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			m.data[i][j] += other.data[i][j]
		}
	}
	return nil
}

// SubInPlace computes m -= other, element by element.
func (m *Matrix) SubInPlace(other *Matrix) error {
	if m.rows != other.rows || m.cols != other.cols {
		return ErrDimMismatch("SubInPlace", m.rows, m.cols, other.rows, other.cols)
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			m.data[i][j] -= other.data[i][j]
		}
	}
	return nil
}

// MulScalarInPlace computes m *= s.
func (m *Matrix) MulScalarInPlace(s float64) {
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			m.data[i][j] *= s
		}
	}
}

// MulMatrixInPlace computes m *= other, element by element (Hadamard product).
// It is not the matrix product; MulMat below is.
func (m *Matrix) MulMatrixInPlace(other *Matrix) error {
	if m.rows != other.rows || m.cols != other.cols {
		return ErrDimMismatch("MulMatrixInPlace", m.rows, m.cols, other.rows, other.cols)
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			m.data[i][j] *= other.data[i][j]
		}
	}
	return nil
}

// DivScalarInPlace computes m /= s.
func (m *Matrix) DivScalarInPlace(s float64) {
	m.MulScalarInPlace(1.0 / s)
}

// AddMat returns a new matrix equal to a+b.
func AddMat(a, b *Matrix) (*Matrix, error) {
	c := a.Copy()
	if err := c.AddInPlace(b); err != nil {
		return nil, err
	}
	return c, nil
}

// SubMat returns a new matrix equal to a-b.
func SubMat(a, b *Matrix) (*Matrix, error) {
	c := a.Copy()
	if err := c.SubInPlace(b); err != nil {
		return nil, err
	}
	return c, nil
}

// MulMat returns the matrix product a*b (true matrix multiplication).
func MulMat(a, b *Matrix) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, ErrDimMismatch("MulMat", a.rows, a.cols, b.rows, b.cols)
	}
	c := NewMatrix(a.rows, b.cols)
	for i := 0; i < a.rows; i++ {
		for k := 0; k < a.cols; k++ {
			aik := a.data[i][k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.cols; j++ {
				c.data[i][j] += aik * b.data[k][j]
			}
		}
	}
	return c, nil
}

// MulVec returns the matrix-vector product a*v.
func MulVec(a *Matrix, v Vector) (Vector, error) {
	if a.cols != len(v) {
		return nil, ErrVecLen("MulVec", len(v), a.cols)
	}
	out := make(Vector, a.rows)
	for i := 0; i < a.rows; i++ {
		var sum float64
		row := a.data[i]
		for j := 0; j < a.cols; j++ {
			sum += row[j] * v[j]
		}
		out[i] = sum
	}
	return out, nil
}

// Transpose returns a new matrix that is the transpose of m.
func (m *Matrix) Transpose() *Matrix {
	t := NewMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.data[j][i] = m.data[i][j]
		}
	}
	return t
}

// CopyAndAddRowsColsWithZeros returns a new (rows+r) x (cols+c) matrix with
// the original block placed in the top-left and every added entry zero.
func (m *Matrix) CopyAndAddRowsColsWithZeros(r, c int) *Matrix {
	out := NewMatrix(m.rows+r, m.cols+c)
	for i := 0; i < m.rows; i++ {
		copy(out.data[i], m.data[i])
	}
	return out
}

// AddRow inserts values as a new row at position pos, shifting rows pos..end down.
// len(values) must equal m.cols.
func (m *Matrix) AddRow(pos int, values []float64) error {
	if len(values) != m.cols {
		return ErrVecLen("AddRow", len(values), m.cols)
	}
	if pos < 0 || pos > m.rows {
		return ErrOutOfRange(pos, 0, m.rows+1, m.cols)
	}
	row := make([]float64, m.cols)
	copy(row, values)
	m.data = append(m.data, nil)
	copy(m.data[pos+1:], m.data[pos:])
	m.data[pos] = row
	m.rows++
	return nil
}

// AddColumn inserts values as a new column at position pos, shifting columns
// pos..end right. len(values) must equal m.rows.
func (m *Matrix) AddColumn(pos int, values []float64) error {
	if len(values) != m.rows {
		return ErrVecLen("AddColumn", len(values), m.rows)
	}
	if pos < 0 || pos > m.cols {
		return ErrOutOfRange(0, pos, m.rows, m.cols+1)
	}
	for i := 0; i < m.rows; i++ {
		row := make([]float64, m.cols+1)
		copy(row, m.data[i][:pos])
		row[pos] = values[i]
		copy(row[pos+1:], m.data[i][pos:])
		m.data[i] = row
	}
	m.cols++
	return nil
}

// NormalizeByVectorColumn divides every entry of column j by v[j]+epsilon,
// for every column j, so it never divides by exactly zero.
func (m *Matrix) NormalizeByVectorColumn(v []float64) error {
	if len(v) != m.cols {
		return ErrVecLen("NormalizeByVectorColumn", len(v), m.cols)
	}
	for j := 0; j < m.cols; j++ {
		denom := v[j] + normEps
		for i := 0; i < m.rows; i++ {
			m.data[i][j] /= denom
		}
	}
	return nil
}

// NormalizeByVectorRow divides every entry of row i by v[i]+epsilon.
func (m *Matrix) NormalizeByVectorRow(v []float64) error {
	if len(v) != m.rows {
		return ErrVecLen("NormalizeByVectorRow", len(v), m.rows)
	}
	for i := 0; i < m.rows; i++ {
		denom := v[i] + normEps
		row := m.data[i]
		for j := 0; j < m.cols; j++ {
			row[j] /= denom
		}
	}
	return nil
}

// Det computes the determinant. Sizes 1..3 use closed-form formulas; larger
// sizes use Laplace expansion along the first row, which is acceptable here
// because the perturbation kernel never needs a high-performance determinant.
func (m *Matrix) Det() (float64, error) {
	if m.rows != m.cols {
		return 0, ErrDimMismatch("Det", m.rows, m.cols, m.cols, m.cols)
	}
	return det(m.data, m.rows), nil
}

func det(a [][]float64, n int) float64 {
	switch n {
	case 0:
		return 1
	case 1:
		return a[0][0]
	case 2:
		return a[0][0]*a[1][1] - a[0][1]*a[1][0]
	case 3:
		return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
			a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
			a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
	}
	var sum float64
	sign := 1.0
	for j := 0; j < n; j++ {
		if a[0][j] == 0 {
			sign = -sign
			continue
		}
		minor := make([][]float64, n-1)
		for i := 1; i < n; i++ {
			row := make([]float64, 0, n-1)
			for k := 0; k < n; k++ {
				if k == j {
					continue
				}
				row = append(row, a[i][k])
			}
			minor[i-1] = row
		}
		sum += sign * a[0][j] * det(minor, n-1)
		sign = -sign
	}
	return sum
}
