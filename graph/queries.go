package graph

// OutDegree returns the number of outgoing edges of node name.
func (g *WeightedEdgeGraph) OutDegree(name string) (int, error) {
	idx, ok := g.nameMap[name]
	if !ok {
		return 0, ErrUnknownNode(name)
	}
	return len(g.outAdj[idx]), nil
}

// InDegree returns the number of incoming edges of node name.
func (g *WeightedEdgeGraph) InDegree(name string) (int, error) {
	idx, ok := g.nameMap[name]
	if !ok {
		return 0, ErrUnknownNode(name)
	}
	n := 0
	for _, e := range g.edges {
		if e.Dst == idx {
			n++
		}
	}
	return n, nil
}

// Degree returns OutDegree+InDegree for node name.
func (g *WeightedEdgeGraph) Degree(name string) (int, error) {
	out, err := g.OutDegree(name)
	if err != nil {
		return 0, err
	}
	in, err := g.InDegree(name)
	if err != nil {
		return 0, err
	}
	return out + in, nil
}

// Successors returns the names of nodes reachable by a single outgoing edge from name.
func (g *WeightedEdgeGraph) Successors(name string) ([]string, error) {
	idx, ok := g.nameMap[name]
	if !ok {
		return nil, ErrUnknownNode(name)
	}
	out := make([]string, 0, len(g.outAdj[idx]))
	for dst := range g.outAdj[idx] {
		out = append(out, g.nameVector[dst])
	}
	return out, nil
}

// Predecessors returns the names of nodes with a single outgoing edge into name.
func (g *WeightedEdgeGraph) Predecessors(name string) ([]string, error) {
	idx, ok := g.nameMap[name]
	if !ok {
		return nil, ErrUnknownNode(name)
	}
	var out []string
	for _, e := range g.edges {
		if e.Dst == idx {
			out = append(out, g.nameVector[e.Src])
		}
	}
	return out, nil
}

// Neighbors returns the union of Predecessors and Successors, without duplicates.
func (g *WeightedEdgeGraph) Neighbors(name string) ([]string, error) {
	succ, err := g.Successors(name)
	if err != nil {
		return nil, err
	}
	pred, err := g.Predecessors(name)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(succ)+len(pred))
	var out []string
	for _, n := range append(succ, pred...) {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out, nil
}

// Adjacent returns true iff an edge exists in at least one direction between a and b.
func (g *WeightedEdgeGraph) Adjacent(a, b string) (bool, error) {
	ai, ok := g.nameMap[a]
	if !ok {
		return false, ErrUnknownNode(a)
	}
	bi, ok := g.nameMap[b]
	if !ok {
		return false, ErrUnknownNode(b)
	}
	if _, ok := g.outAdj[ai][bi]; ok {
		return true, nil
	}
	if _, ok := g.outAdj[bi][ai]; ok {
		return true, nil
	}
	return false, nil
}
