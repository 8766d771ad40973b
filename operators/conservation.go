package operators

import (
	"github.com/cpmech/gosl/fun"

	"github.com/dpedroso/pertsim/matx"
	"github.com/dpedroso/pertsim/scaling"
)

// Conservation is the mass-redistribution stage of the perturbation kernel
// (spec.md §4.4): given the already-dissipated state xDissipated, the raw
// (pre-dissipation) state xRaw, the weighted peer-transpose wStar, and a
// per-node weight vector q (nil means the default of all-ones), it returns
// xDissipated - (θ(t)·wStar·q) ⊙ xRaw.
type Conservation interface {
	Apply(xDissipated, xRaw matx.Vector, wStar *matx.Matrix, q matx.Vector, t float64) (matx.Vector, error)
	Term(xRaw matx.Vector, wStar *matx.Matrix, q matx.Vector, t float64) (matx.Vector, error)
}

// ScaledConservation is the baseline conservation operator of spec.md §4.4.
type ScaledConservation struct {
	Theta fun.Func
}

func (c ScaledConservation) Term(xRaw matx.Vector, wStar *matx.Matrix, q matx.Vector, t float64) (matx.Vector, error) {
	if q == nil {
		q = matx.Ones(len(xRaw))
	}
	if len(q) != len(xRaw) {
		return nil, ErrQLength(len(q), len(xRaw))
	}
	wq, err := matx.MulVec(wStar, q)
	if err != nil {
		return nil, err
	}
	scaled := wq.Scale(c.Theta.F(t, nil))
	return matx.Hadamard(scaled, xRaw)
}

func (c ScaledConservation) Apply(xDissipated, xRaw matx.Vector, wStar *matx.Matrix, q matx.Vector, t float64) (matx.Vector, error) {
	term, err := c.Term(xRaw, wStar, q, t)
	if err != nil {
		return nil, err
	}
	return matx.Sub(xDissipated, term)
}

var _ Conservation = ScaledConservation{}

// PerNodeConservation implements the same xDissipated - (θ·wStar·q) ⊙ xRaw
// update as ScaledConservation, but looks up θ per node from a scaling
// registry rather than sharing one curve across the whole augmented state
// (spec.md §4.3). Names is evaluated on every call, so it should close over
// the owning agent's (possibly still augmenting) node list rather than a
// snapshot taken at construction time.
type PerNodeConservation struct {
	Registry *scaling.Registry
	Names    func() []string
}

func (c PerNodeConservation) Term(xRaw matx.Vector, wStar *matx.Matrix, q matx.Vector, t float64) (matx.Vector, error) {
	if q == nil {
		q = matx.Ones(len(xRaw))
	}
	if len(q) != len(xRaw) {
		return nil, ErrQLength(len(q), len(xRaw))
	}
	wq, err := matx.MulVec(wStar, q)
	if err != nil {
		return nil, err
	}
	theta := matx.Vector(c.Registry.VectorAt(scaling.Conservation, c.Names(), t))
	scaled, err := matx.Hadamard(wq, theta)
	if err != nil {
		return nil, err
	}
	return matx.Hadamard(scaled, xRaw)
}

func (c PerNodeConservation) Apply(xDissipated, xRaw matx.Vector, wStar *matx.Matrix, q matx.Vector, t float64) (matx.Vector, error) {
	term, err := c.Term(xRaw, wStar, q, t)
	if err != nil {
		return nil, err
	}
	return matx.Sub(xDissipated, term)
}

var _ Conservation = PerNodeConservation{}
