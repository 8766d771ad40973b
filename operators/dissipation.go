package operators

import (
	"math"
	"math/rand"

	"github.com/cpmech/gosl/fun"

	"github.com/dpedroso/pertsim/matx"
	"github.com/dpedroso/pertsim/scaling"
)

// Dissipation is the lossy-energy-reduction stage of the perturbation kernel
// (spec.md §4.4). Apply returns the dissipated state; Term returns the
// dissipated amount on its own.
type Dissipation interface {
	Apply(x matx.Vector, t float64) matx.Vector
	Term(x matx.Vector, t float64) matx.Vector
}

// ScaledDissipation implements apply(x,t) = x - γ(t)·x.
type ScaledDissipation struct {
	Gamma fun.Func
}

func (d ScaledDissipation) Term(x matx.Vector, t float64) matx.Vector {
	return x.Scale(d.Gamma.F(t, nil))
}

func (d ScaledDissipation) Apply(x matx.Vector, t float64) matx.Vector {
	term := d.Term(x, t)
	out, _ := matx.Sub(x, term)
	return out
}

// PerNodeDissipation implements apply(x,t) = x - γ(node,t)·x, looking up a
// per-node γ curve from a scaling registry instead of sharing one curve
// across the whole augmented state (spec.md §4.3). Names is evaluated on
// every call, so it should close over the owning agent's (possibly still
// augmenting) node list rather than a snapshot taken at construction time.
type PerNodeDissipation struct {
	Registry *scaling.Registry
	Names    func() []string
}

func (d PerNodeDissipation) Term(x matx.Vector, t float64) matx.Vector {
	gamma := d.Registry.VectorAt(scaling.Dissipation, d.Names(), t)
	out := make(matx.Vector, len(x))
	for i, v := range x {
		out[i] = v * gamma[i]
	}
	return out
}

func (d PerNodeDissipation) Apply(x matx.Vector, t float64) matx.Vector {
	term := d.Term(x, t)
	out, _ := matx.Sub(x, term)
	return out
}

// PowDissipation implements apply(x,t) = x - x.^p, element-wise power.
type PowDissipation struct {
	P float64
}

func (d PowDissipation) Term(x matx.Vector, t float64) matx.Vector {
	out := make(matx.Vector, len(x))
	for i, v := range x {
		out[i] = math.Pow(v, d.P)
	}
	return out
}

func (d PowDissipation) Apply(x matx.Vector, t float64) matx.Vector {
	term := d.Term(x, t)
	out, _ := matx.Sub(x, term)
	return out
}

// RandomDissipation draws an independent u ~ U[Lo,Hi] for every element on
// every call: term[i] = x[i]*u. There is no ecosystem RNG library anywhere
// in the retrieval pack (gofem itself reaches for math/rand wherever it
// needs randomness), so this is the one operator grounded on the standard
// library rather than a third-party dependency.
type RandomDissipation struct {
	Lo, Hi float64
	Rng    *rand.Rand
}

func (d RandomDissipation) Term(x matx.Vector, t float64) matx.Vector {
	out := make(matx.Vector, len(x))
	for i, v := range x {
		u := d.Lo + d.Rng.Float64()*(d.Hi-d.Lo)
		out[i] = v * u
	}
	return out
}

func (d RandomDissipation) Apply(x matx.Vector, t float64) matx.Vector {
	term := d.Term(x, t)
	out, _ := matx.Sub(x, term)
	return out
}

// PeriodicGamma is γ(t) = A·sin(2π·t/P + φ), the γ curve PeriodicDissipation
// plugs into ScaledDissipation.
type PeriodicGamma struct {
	A, Period, Phi float64
}

func (g PeriodicGamma) F(t float64, x []float64) float64 {
	return g.A * math.Sin(2*math.Pi*t/g.Period+g.Phi)
}

// NewPeriodicDissipation returns a ScaledDissipation variant whose γ is the
// periodic curve above — spec.md §4.4 describes Periodic as "a scaled
// variant with γ(t) = A·sin(...)".
func NewPeriodicDissipation(amplitude, period, phase float64) ScaledDissipation {
	return ScaledDissipation{Gamma: PeriodicGamma{A: amplitude, Period: period, Phi: phase}}
}

var (
	_ Dissipation = ScaledDissipation{}
	_ Dissipation = PowDissipation{}
	_ Dissipation = RandomDissipation{}
	_ Dissipation = PerNodeDissipation{}
)
