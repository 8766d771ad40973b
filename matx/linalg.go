package matx

import "github.com/cpmech/gosl/la"

// Identity returns the n x n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.data[i][i] = 1
	}
	return m
}

// Inverse returns the matrix inverse of a square matrix and the determinant
// used to compute it. It reports whether the matrix was (numerically)
// singular; when singular, the returned inverse is still the best-effort
// result gosl's la.MatInv produces and must not be used without the caller
// first checking singular.
func Inverse(a *Matrix) (inv *Matrix, det float64, singular bool, err error) {
	if a.rows != a.cols {
		return nil, 0, false, ErrDimMismatch("Inverse", a.rows, a.cols, a.cols, a.cols)
	}
	ai := la.MatAlloc(a.rows, a.rows)
	det = la.MatInv(ai, a.data, a.rows)
	return &Matrix{rows: a.rows, cols: a.rows, data: ai}, det, det == 0, nil
}

// MoorePenrosePseudoInverse returns (I - a)^+, the Moore-Penrose
// pseudoinverse of the identity minus a, as required by Propagation.Original.
// When I-a is singular, the pseudoinverse of the rank-deficient matrix is
// still computed and returned (singular=true signals the caller should warn,
// not abort: spec.md documents this as a warning, not a fatal condition).
func MoorePenrosePseudoInverse(a *Matrix) (pinv *Matrix, singular bool, err error) {
	n := a.rows
	iMinusA := Identity(n)
	if err = iMinusA.SubInPlace(a); err != nil {
		return nil, false, err
	}
	d, err := iMinusA.Det()
	if err != nil {
		return nil, false, err
	}
	singular = isNearZero(d)
	inv, _, _, err := pseudoInverseViaSVDOrRegularizedInverse(iMinusA)
	if err != nil {
		return nil, singular, err
	}
	return inv, singular, nil
}

// pseudoInverseViaSVDOrRegularizedInverse computes a pseudoinverse suitable
// for both the well-conditioned and the singular case. For a non-singular
// square matrix the Moore-Penrose pseudoinverse coincides with the regular
// inverse; for a singular one it uses the Tikhonov form
// (aᵀa + εI)⁻¹aᵀ with ε = regularizationEps, which tends to the
// Moore-Penrose pseudoinverse as ε goes to zero and keeps the computation
// well-defined, matching the source's "warn and proceed with the
// pseudoinverse of a possibly rank-deficient matrix" behaviour (spec.md §9,
// Open Question 1).
func pseudoInverseViaSVDOrRegularizedInverse(a *Matrix) (*Matrix, float64, bool, error) {
	if !isSingularMatrix(a) {
		return Inverse(a)
	}
	at := a.Transpose()
	ata, err := MulMat(at, a)
	if err != nil {
		return nil, 0, false, err
	}
	for i := 0; i < ata.rows; i++ {
		ata.data[i][i] += regularizationEps
	}
	inv, det, singular, err := Inverse(ata)
	if err != nil {
		return nil, det, singular, err
	}
	pinv, err := MulMat(inv, at)
	return pinv, det, singular, err
}

const regularizationEps = 1e-12

func isSingularMatrix(a *Matrix) bool {
	d, err := a.Det()
	if err != nil {
		return false
	}
	return isNearZero(d)
}

func isNearZero(x float64) bool {
	const tol = 1e-12
	return x > -tol && x < tol
}
