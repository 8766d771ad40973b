package agent

// VirtualEdge describes one receptor/ligand wiring to add alongside a
// virtual node: Virtual is a v-in/v-out name, Internal is the name of the
// internal node it connects to, Weight is the edge weight. A v-in edge runs
// virtual -> internal (the receptor); a v-out edge runs internal -> virtual
// (the ligand), per spec.md §3 ("Virtual node").
type VirtualEdge struct {
	Virtual  string
	Internal string
	Weight   float64
}

// AugmentGraph extends the augmented graph with virtual boundary nodes for
// every peer type, then wires the supplied receptor/ligand edges.
//
// At granularity type, one v-in and one v-out node is added per peer type
// other than localType (or including it, if includeSelf is set — required
// for uniform indexing in the partition-parallel driver). At granularity
// typeAndNode, node creation is deferred entirely to AddEdgesAndNodes, so
// that exactly the virtual pairs used by some contact edge come to exist;
// peerTypes and edges are ignored in that case. Granularity node is refused.
func (c *Computation) AugmentGraph(peerTypes []string, granularity Granularity, includeSelf bool, edges []VirtualEdge) error {
	if granularity == GranularityNode {
		return ErrUnsupportedGranularity
	}
	c.granularity = granularity
	c.includeSelf = includeSelf
	if granularity == GranularityTypeAndNode {
		return nil
	}
	for _, t := range peerTypes {
		if t == c.localType && !includeSelf {
			continue
		}
		if _, err := c.augmentedGraph.AddNode(VirtualName(DirIn, t, ""), 0); err != nil {
			return err
		}
		if _, err := c.augmentedGraph.AddNode(VirtualName(DirOut, t, ""), 0); err != nil {
			return err
		}
	}
	if err := c.wireVirtualEdges(edges); err != nil {
		return err
	}
	c.syncAugmentedLength()
	return c.InvalidateCaches()
}

// AddEdgesAndNodes lazily adds virtual nodes (creating them on first use)
// and wires the given receptor/ligand edges. This is the only augmentation
// path at granularity typeAndNode, and may also be used at granularity type
// to add edges discovered after the initial AugmentGraph call (spec.md
// §4.6).
func (c *Computation) AddEdgesAndNodes(edges []VirtualEdge) error {
	for _, e := range edges {
		if _, ok := c.augmentedGraph.IndexOf(e.Virtual); !ok {
			if _, err := c.augmentedGraph.AddNode(e.Virtual, 0); err != nil {
				return err
			}
		}
	}
	if err := c.wireVirtualEdges(edges); err != nil {
		return err
	}
	c.syncAugmentedLength()
	return c.InvalidateCaches()
}

func (c *Computation) wireVirtualEdges(edges []VirtualEdge) error {
	for _, e := range edges {
		dir, _, _, err := ParseVirtualName(e.Virtual)
		if err != nil {
			return err
		}
		switch dir {
		case DirIn:
			err = c.augmentedGraph.AddEdge(e.Virtual, e.Internal, e.Weight, true)
		case DirOut:
			err = c.augmentedGraph.AddEdge(e.Internal, e.Virtual, e.Weight, true)
		default:
			return ErrUnknownVirtualDirection(string(dir))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
