package operators

import (
	"math"

	"github.com/cpmech/gosl/fun"

	"github.com/dpedroso/pertsim/logx"
	"github.com/dpedroso/pertsim/matx"
)

// Propagation is the network-spreading stage of the perturbation kernel
// (spec.md §4.4).
type Propagation interface {
	Apply(x matx.Vector, t float64) (matx.Vector, error)
	Term(x matx.Vector, t float64) (matx.Vector, error)
}

// ColumnNormalizedTranspose returns W̃, the column-normalised transpose of
// adjacency: column j of the transpose divided by the sum of absolute values
// in that column, plus 1e-20 (spec.md §4.4's normalisation paragraph).
func ColumnNormalizedTranspose(adjacency *matx.Matrix) *matx.Matrix {
	wt := adjacency.Transpose()
	n := wt.Cols()
	sums := make([]float64, n)
	for j := 0; j < n; j++ {
		for i := 0; i < wt.Rows(); i++ {
			sums[j] += math.Abs(wt.MustGet(i, j))
		}
	}
	_ = wt.NormalizeByVectorColumn(sums)
	return wt
}

// PropagationOriginal constructs, once, M = (I - W̃)^+, warning (not
// failing) if I-W̃ is singular (spec.md §4.4/§8 Scenario S6).
type PropagationOriginal struct {
	Omega    fun.Func
	Wtilde   *matx.Matrix
	M        *matx.Matrix
	Singular bool
}

// NewPropagationOriginal builds W̃ from the augmented adjacency matrix and
// caches M = (I-W̃)^+. The cache must be invalidated (a fresh instance built)
// whenever the augmented edge set changes (spec.md §4.6).
func NewPropagationOriginal(augmentedAdjacency *matx.Matrix, omega fun.Func, log *logx.Logger) (*PropagationOriginal, error) {
	wtilde := ColumnNormalizedTranspose(augmentedAdjacency)
	m, singular, err := matx.MoorePenrosePseudoInverse(wtilde)
	if err != nil {
		return nil, err
	}
	if singular && log != nil {
		if err := log.Warn("propagation: det(I - W~) = 0, proceeding with the pseudoinverse of a rank-deficient matrix"); err != nil {
			return nil, err
		}
	}
	return &PropagationOriginal{Omega: omega, Wtilde: wtilde, M: m, Singular: singular}, nil
}

func (p *PropagationOriginal) Term(x matx.Vector, t float64) (matx.Vector, error) {
	mx, err := matx.MulVec(p.M, x)
	if err != nil {
		return nil, err
	}
	return mx.Scale(p.Omega.F(t, nil)), nil
}

func (p *PropagationOriginal) Apply(x matx.Vector, t float64) (matx.Vector, error) {
	return p.Term(x, t)
}

// PropagationNeighbors implements apply(x,t) = x + ω(t) ⊙ (W̃·x), using only
// the column-normalised transpose (no pseudoinverse).
type PropagationNeighbors struct {
	Omega  fun.Func
	Wtilde *matx.Matrix
}

// NewPropagationNeighbors builds W̃ from the augmented adjacency matrix.
func NewPropagationNeighbors(augmentedAdjacency *matx.Matrix, omega fun.Func) *PropagationNeighbors {
	return &PropagationNeighbors{Omega: omega, Wtilde: ColumnNormalizedTranspose(augmentedAdjacency)}
}

func (p *PropagationNeighbors) Term(x matx.Vector, t float64) (matx.Vector, error) {
	wx, err := matx.MulVec(p.Wtilde, x)
	if err != nil {
		return nil, err
	}
	return wx.Scale(p.Omega.F(t, nil)), nil
}

func (p *PropagationNeighbors) Apply(x matx.Vector, t float64) (matx.Vector, error) {
	term, err := p.Term(x, t)
	if err != nil {
		return nil, err
	}
	return matx.Add(x, term)
}

// PropagationCustom is structurally identical to PropagationNeighbors; it
// exists as its own type so a caller may swap in a bespoke ω without
// confusing it with the Neighbors model it happens to share math with
// (spec.md §4.4).
type PropagationCustom struct {
	PropagationNeighbors
}

// NewPropagationCustom builds W̃ from the augmented adjacency matrix.
func NewPropagationCustom(augmentedAdjacency *matx.Matrix, omega fun.Func) *PropagationCustom {
	return &PropagationCustom{PropagationNeighbors: *NewPropagationNeighbors(augmentedAdjacency, omega)}
}

var (
	_ Propagation = (*PropagationOriginal)(nil)
	_ Propagation = (*PropagationNeighbors)(nil)
	_ Propagation = (*PropagationCustom)(nil)
)
