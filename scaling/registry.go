package scaling

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/dpedroso/pertsim/logx"
)

// Registry holds, for each Role, a default curve and a per-node override
// table. Node names present in a parameter file but absent from the owning
// graph's ordered node list are ignored with a warning (spec.md §4.3); node
// names absent from the parameter file fall back to the default curve.
type Registry struct {
	defaults  [3]fun.Func
	perNode   [3]map[string]fun.Func
	log       *logx.Logger
}

// NewRegistry returns a registry where every role defaults to the constant
// 0.5 curve, matching spec.md §4.3's "no file at all" fallback.
func NewRegistry(log *logx.Logger) *Registry {
	r := &Registry{log: log}
	for i := range r.defaults {
		r.defaults[i] = ConstFunc(0.5)
		r.perNode[i] = make(map[string]fun.Func)
	}
	return r
}

// SetDefault overrides the default curve used for a role when a node has no
// per-node entry.
func (r *Registry) SetDefault(role Role, f fun.Func) {
	r.defaults[role] = f
}

// LoadParameters loads a parameter file for a role, building a StepFunc per
// node from its 3-value parameter tuple, and validates every node name
// against knownNodes, warning (not failing) about names the graph does not
// have (spec.md §4.3).
func (r *Registry) LoadParameters(role Role, table ParameterTable, knownNodes map[string]bool) error {
	known := make(map[string]bool, len(knownNodes))
	for k, v := range knownNodes {
		known[k] = v
	}
	for name, params := range table {
		if !known[name] {
			if r.log != nil {
				if err := r.log.Warn("scaling: %s parameter row for node %q is not in the node list, ignoring", role, name); err != nil {
					return err
				}
			}
			continue
		}
		if len(params) != 3 {
			return chkParamCountErr(role, name, len(params))
		}
		r.perNode[role][name] = StepFunc{P0: params[0], P1: params[1], P2: params[2]}
	}
	return nil
}

// ForNode returns the curve to use for a given role and node name: the
// per-node override if one was loaded, otherwise the role's default curve.
func (r *Registry) ForNode(role Role, nodeName string) fun.Func {
	if f, ok := r.perNode[role][nodeName]; ok {
		return f
	}
	return r.defaults[role]
}

// ScalarAt evaluates the scalar form of a role's curve at time t, ignoring
// any per-node overrides — used when the kernel needs one scalar for the
// whole augmented state rather than a per-node vector.
func (r *Registry) ScalarAt(role Role, t float64) float64 {
	return r.defaults[role].F(t, nil)
}

// VectorAt evaluates the per-node vectorised form of a role's curve at time
// t, one value per name in order.
func (r *Registry) VectorAt(role Role, names []string, t float64) []float64 {
	out := make([]float64, len(names))
	for i, name := range names {
		out[i] = r.ForNode(role, name).F(t, nil)
	}
	return out
}

func chkParamCountErr(role Role, name string, got int) error {
	return chk.Err("scaling: %s parameter row for node %q has %d values, want 3 (p0,p1,p2)", role, name, got)
}
