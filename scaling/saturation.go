package scaling

import (
	"math"

	"github.com/dpedroso/pertsim/matx"
)

// SaturationFunc clamps a state vector to [-limit,limit]. It is not
// time-indexed (spec.md §4.3): it operates on the already-computed state,
// not on t. The default is the symmetric clamp; a custom form (e.g. a scaled
// hyperbolic tangent) may be substituted.
type SaturationFunc func(x matx.Vector, limit float64) matx.Vector

// DefaultSaturation is the symmetric clamp(v, -limit, +limit).
func DefaultSaturation(x matx.Vector, limit float64) matx.Vector {
	return x.Clamp(limit)
}

// TanhSaturation is a smooth alternative: limit * tanh(v/limit), approaching
// the clamp's bound asymptotically rather than cutting it off sharply.
func TanhSaturation(x matx.Vector, limit float64) matx.Vector {
	out := make(matx.Vector, len(x))
	for i, v := range x {
		out[i] = limit * math.Tanh(v/limit)
	}
	return out
}
