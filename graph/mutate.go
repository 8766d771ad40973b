package graph

import "fmt"

// AddNode adds a single node with the given name and initial value, returning
// its index. An empty name auto-generates one from the current node count.
// Fails with ErrDuplicateName if the name is already known; on failure the
// graph is left unchanged.
func (g *WeightedEdgeGraph) AddNode(name string, value float64) (int, error) {
	if name == "" {
		name = fmt.Sprintf("%d", g.numNodes)
	}
	if _, exists := g.nameMap[name]; exists {
		return 0, ErrDuplicateName(name)
	}
	idx := g.numNodes
	g.nameVector = append(g.nameVector, name)
	g.nameMap[name] = idx
	g.nodeValues = append(g.nodeValues, value)
	g.outAdj = append(g.outAdj, make(map[int]float64))
	g.adj = g.adj.CopyAndAddRowsColsWithZeros(1, 1)
	g.numNodes++
	return idx, nil
}

// AddNodes adds multiple nodes at once. Three value-slice shapes are
// accepted: empty (every node gets value 0), equal length to names (paired
// one-to-one), or any other length (a failure; no shape is guessed). On
// failure partway through (e.g. a duplicate name), the graph is left exactly
// as it was before the call — nodes are validated before any is added.
func (g *WeightedEdgeGraph) AddNodes(names []string, values []float64) error {
	switch {
	case len(values) == 0:
		values = make([]float64, len(names))
	case len(values) == len(names):
		// paired, nothing to do
	default:
		return ErrLengthMismatch(len(names), len(values))
	}
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		if name == "" {
			name = fmt.Sprintf("%d", g.numNodes+i)
		}
		if _, exists := g.nameMap[name]; exists || seen[name] {
			return ErrDuplicateName(name)
		}
		seen[name] = true
	}
	for i, name := range names {
		if _, err := g.AddNode(name, values[i]); err != nil {
			return err
		}
	}
	return nil
}

// AddEdge adds a directed edge (src,dst,weight) by node name. When directed
// is false, the reverse edge (dst,src,weight) is added as well, under the
// same invariants (spec.md §3). Fails if either endpoint is unknown.
func (g *WeightedEdgeGraph) AddEdge(src, dst string, weight float64, directed bool) error {
	s, ok := g.nameMap[src]
	if !ok {
		return ErrUnknownNode(src)
	}
	d, ok := g.nameMap[dst]
	if !ok {
		return ErrUnknownNode(dst)
	}
	if err := g.addEdgeByIndex(s, d, weight); err != nil {
		return err
	}
	if !directed {
		if err := g.addEdgeByIndex(d, s, weight); err != nil {
			return err
		}
	}
	return nil
}

// addEdgeByIndex inserts or overwrites the edge (s,d,weight) and keeps the
// edge list, out-adjacency map, and matrix entry consistent.
func (g *WeightedEdgeGraph) addEdgeByIndex(s, d int, weight float64) error {
	if s < 0 || s >= g.numNodes {
		return ErrUnknownIndex(s)
	}
	if d < 0 || d >= g.numNodes {
		return ErrUnknownIndex(d)
	}
	if _, exists := g.outAdj[s][d]; exists {
		g.replaceEdgeWeight(s, d, weight)
		return nil
	}
	g.outAdj[s][d] = weight
	g.edges = append(g.edges, Edge{Src: s, Dst: d, Weight: weight})
	_ = g.adj.Set(s, d, weight)
	return nil
}

func (g *WeightedEdgeGraph) replaceEdgeWeight(s, d int, weight float64) {
	g.outAdj[s][d] = weight
	_ = g.adj.Set(s, d, weight)
	for i := range g.edges {
		if g.edges[i].Src == s && g.edges[i].Dst == d {
			g.edges[i].Weight = weight
			return
		}
	}
}
