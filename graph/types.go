package graph

import "github.com/dpedroso/pertsim/matx"

// Edge is a directed weighted edge (src,dst,weight), indices into the owning
// graph's node list.
type Edge struct {
	Src, Dst int
	Weight   float64
}

// WeightedEdgeGraph is a directed weighted graph with unique node names, kept
// consistent across three representations: the name<->index bijection, the
// out-adjacency sets (one per node), and the dense adjacency matrix. See the
// package doc for the invariant every mutator must preserve.
type WeightedEdgeGraph struct {
	numNodes   int
	nameVector []string
	nameMap    map[string]int
	nodeValues []float64
	outAdj     []map[int]float64 // out-adjacency: src -> {dst: weight}
	edges      []Edge
	adj        *matx.Matrix
}

// NumNodes returns the number of nodes.
func (g *WeightedEdgeGraph) NumNodes() int { return g.numNodes }

// NumEdges returns the number of directed edges.
func (g *WeightedEdgeGraph) NumEdges() int { return len(g.edges) }

// Names returns a copy of the node name vector, in insertion order.
func (g *WeightedEdgeGraph) Names() []string {
	out := make([]string, len(g.nameVector))
	copy(out, g.nameVector)
	return out
}

// Edges returns a copy of the edge list.
func (g *WeightedEdgeGraph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// NodeValues returns a copy of the node value vector.
func (g *WeightedEdgeGraph) NodeValues() []float64 {
	out := make([]float64, len(g.nodeValues))
	copy(out, g.nodeValues)
	return out
}

// AdjacencyMatrix returns the backing dense adjacency matrix.
func (g *WeightedEdgeGraph) AdjacencyMatrix() *matx.Matrix { return g.adj }

// IndexOf returns the index of a node name.
func (g *WeightedEdgeGraph) IndexOf(name string) (int, bool) {
	idx, ok := g.nameMap[name]
	return idx, ok
}

// NameOf returns the name of a node index.
func (g *WeightedEdgeGraph) NameOf(idx int) (string, error) {
	if idx < 0 || idx >= g.numNodes {
		return "", ErrUnknownIndex(idx)
	}
	return g.nameVector[idx], nil
}

// ValueOf returns the current value of a node by name.
func (g *WeightedEdgeGraph) ValueOf(name string) (float64, error) {
	idx, ok := g.nameMap[name]
	if !ok {
		return 0, ErrUnknownNode(name)
	}
	return g.nodeValues[idx], nil
}

// SetValue sets the current value of a node by name.
func (g *WeightedEdgeGraph) SetValue(name string, v float64) error {
	idx, ok := g.nameMap[name]
	if !ok {
		return ErrUnknownNode(name)
	}
	g.nodeValues[idx] = v
	return nil
}
