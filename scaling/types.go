package scaling

import "github.com/cpmech/gosl/fun"

// Role names the three scaling-function families the perturbation kernel
// combines. A fourth concern, Saturation, is not time-indexed and is modelled
// separately (see saturation.go).
type Role int

const (
	Dissipation Role = iota
	Conservation
	Propagation
)

func (r Role) String() string {
	switch r {
	case Dissipation:
		return "dissipation"
	case Conservation:
		return "conservation"
	case Propagation:
		return "propagation"
	default:
		return "unknown"
	}
}

// ConstFunc is a fun.Func that ignores t and always returns the same value.
// It is the function returned when no parameter file at all was supplied
// (spec.md §4.3: "the function returns the constant 0.5").
type ConstFunc float64

func (c ConstFunc) F(t float64, x []float64) float64 { return float64(c) }

// StepFunc is the default custom scaling curve of spec.md §4.3: three
// plateaus, P0 for t<=5, P1 for 5<t<=6, P2 for 6<t<=10 (and P2 beyond 10,
// since the source has no further plateau past the last breakpoint).
type StepFunc struct {
	P0, P1, P2 float64
}

func (s StepFunc) F(t float64, x []float64) float64 {
	switch {
	case t <= 5:
		return s.P0
	case t <= 6:
		return s.P1
	default:
		return s.P2
	}
}

var _ fun.Func = ConstFunc(0)
var _ fun.Func = StepFunc{}
