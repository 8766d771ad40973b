package graph

// Clone returns a deep copy of g, independent of the receiver for every
// subsequent mutation. Used when building an augmented graph from an
// un-augmented one that may be shared read-only across agents (spec.md §3,
// "may be shared read-only across agents in the homogeneous-graph
// configuration").
func (g *WeightedEdgeGraph) Clone() *WeightedEdgeGraph {
	out := &WeightedEdgeGraph{
		numNodes:   g.numNodes,
		nameVector: append([]string(nil), g.nameVector...),
		nameMap:    make(map[string]int, len(g.nameMap)),
		nodeValues: append([]float64(nil), g.nodeValues...),
		outAdj:     make([]map[int]float64, len(g.outAdj)),
		edges:      append([]Edge(nil), g.edges...),
		adj:        g.adj.Copy(),
	}
	for k, v := range g.nameMap {
		out.nameMap[k] = v
	}
	for i, m := range g.outAdj {
		cloned := make(map[int]float64, len(m))
		for k, v := range m {
			cloned[k] = v
		}
		out.outAdj[i] = cloned
	}
	return out
}
