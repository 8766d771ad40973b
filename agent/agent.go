package agent

import (
	"github.com/cpmech/gosl/fun"

	"github.com/dpedroso/pertsim/graph"
	"github.com/dpedroso/pertsim/logx"
	"github.com/dpedroso/pertsim/matx"
	"github.com/dpedroso/pertsim/operators"
	"github.com/dpedroso/pertsim/scaling"
)

// Granularity names the two supported augmentation strategies (spec.md §4.6).
// A third, node-level, granularity is named in the original but is refused
// here (see ErrUnsupportedGranularity and the Open Question it resolves).
type Granularity int

const (
	GranularityType Granularity = iota
	GranularityTypeAndNode
	GranularityNode
)

// PropagationKind selects which Propagation variant an agent's computation
// is built with; the concrete operator is rebuilt from the augmented
// adjacency matrix every time InvalidateCaches runs (spec.md §4.6).
type PropagationKind int

const (
	PropagationOriginalKind PropagationKind = iota
	PropagationNeighborsKind
	PropagationCustomKind
)

// Config is the one-shot construction input for a Computation.
type Config struct {
	LocalType       string
	Graph           *graph.WeightedEdgeGraph
	Input           matx.Vector
	Dissipation     operators.Dissipation
	Conservation    operators.Conservation
	PropagationKind PropagationKind
	Omega           fun.Func
	Saturation      scaling.SaturationFunc
	SaturationLimit float64
	Q               matx.Vector
	Log             *logx.Logger
}

// Computation is the per-agent state of spec.md §3 ("Agent state"): the
// un-augmented graph (possibly shared read-only), the exclusively-owned
// augmented graph, the input/inputAugmented/outputAugmented vectors, the
// three operators, and the saturation closure.
type Computation struct {
	localType   string
	granularity Granularity
	includeSelf bool

	graph          *graph.WeightedEdgeGraph
	augmentedGraph *graph.WeightedEdgeGraph

	input           matx.Vector
	inputAugmented  matx.Vector
	outputAugmented matx.Vector

	dissipation     operators.Dissipation
	conservation    operators.Conservation
	propagationKind PropagationKind
	omega           fun.Func
	propagation     operators.Propagation

	q               matx.Vector
	saturation      scaling.SaturationFunc
	saturationLimit float64

	cachesReady bool
	log         *logx.Logger
}

// New constructs a Computation over an un-augmented graph. The augmented
// graph starts out as an independent clone of Graph (spec.md §3: "owned by
// this agent"); it stays identical to the un-augmented graph until
// AugmentGraph or AddEdgesAndNodes is called.
func New(cfg Config) (*Computation, error) {
	if len(cfg.Input) != cfg.Graph.NumNodes() {
		return nil, ErrInputLength(len(cfg.Input), cfg.Graph.NumNodes())
	}
	c := &Computation{
		localType:       cfg.LocalType,
		graph:           cfg.Graph,
		augmentedGraph:  cfg.Graph.Clone(),
		input:           cfg.Input.Clone(),
		inputAugmented:  cfg.Input.Clone(),
		dissipation:     cfg.Dissipation,
		conservation:    cfg.Conservation,
		propagationKind: cfg.PropagationKind,
		omega:           cfg.Omega,
		q:               cfg.Q,
		saturation:      cfg.Saturation,
		saturationLimit: cfg.SaturationLimit,
		log:             cfg.Log,
	}
	if c.saturation == nil {
		c.saturation = scaling.DefaultSaturation
	}
	if err := c.InvalidateCaches(); err != nil {
		return nil, err
	}
	return c, nil
}

// LocalType returns the agent's own type name.
func (c *Computation) LocalType() string { return c.localType }

// Graph returns the un-augmented graph.
func (c *Computation) Graph() *graph.WeightedEdgeGraph { return c.graph }

// AugmentedGraph returns the augmented graph.
func (c *Computation) AugmentedGraph() *graph.WeightedEdgeGraph { return c.augmentedGraph }

// SetDissipation overrides the dissipation operator built at construction
// time — used to swap in a per-node-aware operator (operators.PerNodeDissipation)
// that must close over this agent's own (possibly still augmenting) node
// list, which does not exist yet when Config is built (spec.md §4.3).
func (c *Computation) SetDissipation(d operators.Dissipation) { c.dissipation = d }

// SetConservation overrides the conservation operator built at construction
// time, for the same reason as SetDissipation.
func (c *Computation) SetConservation(cn operators.Conservation) { c.conservation = cn }

// Input returns a copy of the un-augmented input vector.
func (c *Computation) Input() matx.Vector { return c.input.Clone() }

// InputAugmented returns a copy of the augmented input vector.
func (c *Computation) InputAugmented() matx.Vector { return c.inputAugmented.Clone() }

// OutputAugmented returns a copy of the augmented output vector, or nil if
// no Perturb step has run yet (spec.md §3 invariant).
func (c *Computation) OutputAugmented() matx.Vector {
	if c.outputAugmented == nil {
		return nil
	}
	return c.outputAugmented.Clone()
}

// InvalidateCaches rebuilds the propagation operator from the current
// augmented adjacency matrix. It must be called whenever the augmented edge
// set changes (spec.md §4.6); New and AugmentGraph/AddEdgesAndNodes call it
// automatically.
func (c *Computation) InvalidateCaches() error {
	adj := c.augmentedGraph.AdjacencyMatrix()
	switch c.propagationKind {
	case PropagationOriginalKind:
		p, err := operators.NewPropagationOriginal(adj, c.omega, c.log)
		if err != nil {
			return err
		}
		c.propagation = p
	case PropagationCustomKind:
		c.propagation = operators.NewPropagationCustom(adj, c.omega)
	default:
		c.propagation = operators.NewPropagationNeighbors(adj, c.omega)
	}
	c.cachesReady = true
	return nil
}

// CachesReady reports whether the propagation cache has been built for the
// current augmented graph.
func (c *Computation) CachesReady() bool { return c.cachesReady }

// syncAugmentedLength grows inputAugmented/outputAugmented to match the
// current augmented node count, zero-filling the new entries, preserving
// the invariant inputAugmented[i] = input[i] for the first |graph| indices.
func (c *Computation) syncAugmentedLength() {
	n := c.augmentedGraph.NumNodes()
	if len(c.inputAugmented) < n {
		grown := make(matx.Vector, n)
		copy(grown, c.inputAugmented)
		c.inputAugmented = grown
	}
	if len(c.outputAugmented) > 0 && len(c.outputAugmented) < n {
		grown := make(matx.Vector, n)
		copy(grown, c.outputAugmented)
		c.outputAugmented = grown
	}
}
