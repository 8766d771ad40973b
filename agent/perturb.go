package agent

import "strings"

// Perturb runs the five-step perturbation kernel of spec.md §4.5 over the
// augmented state, in the fixed order dissipate -> conserve -> propagate ->
// saturate -> writeback. saturationEnabled controls step 4; saturationLimit
// is the clamp (or custom function) parameter.
func (c *Computation) Perturb(t float64, saturationEnabled bool, saturationLimit float64) error {
	x := c.inputAugmented

	d := c.dissipation.Apply(x, t)

	wStar := c.augmentedGraph.AdjacencyMatrix().Transpose()
	conserved, err := c.conservation.Apply(d, x, wStar, c.q, t)
	if err != nil {
		return err
	}

	propagated, err := c.propagation.Apply(conserved, t)
	if err != nil {
		return err
	}

	y := propagated
	if saturationEnabled {
		y = c.saturation(propagated, saturationLimit)
	}

	c.outputAugmented = y
	return nil
}

// UpdateInput copies outputAugmented into inputAugmented. When preserveNorm
// is set ("conserve-initial-norm" mode), the copy is rescaled so that its
// Euclidean norm equals the norm of the original pre-augmentation input
// vector captured at construction time — not the norm of inputAugmented at
// any later point (spec.md §9, Open Question 3).
func (c *Computation) UpdateInput(preserveNorm bool) error {
	if c.outputAugmented == nil {
		return ErrOutputNotReady
	}
	next := c.outputAugmented.Clone()
	if preserveNorm {
		next = next.ScaleToNorm(c.input.Norm2())
	}
	c.inputAugmented = next
	return nil
}

// ResetVirtualOutputs zeroes the entries of outputAugmented at the
// augmented graph's virtual-output nodes, leaving virtual-input entries
// untouched (spec.md §4.8, the resetVirtualOutputs flag).
func (c *Computation) ResetVirtualOutputs() {
	if c.outputAugmented == nil {
		return
	}
	for _, name := range c.augmentedGraph.Names() {
		if !strings.HasPrefix(name, string(DirOut)+":") {
			continue
		}
		idx, ok := c.augmentedGraph.IndexOf(name)
		if !ok {
			continue
		}
		c.outputAugmented[idx] = 0
	}
}

// GetOutputNodeValue returns outputAugmented at the named node.
func (c *Computation) GetOutputNodeValue(name string) (float64, error) {
	idx, ok := c.augmentedGraph.IndexOf(name)
	if !ok {
		return 0, ErrNodeNotFound(name)
	}
	if idx >= len(c.outputAugmented) {
		return 0, ErrNodeNotFound(name)
	}
	return c.outputAugmented[idx], nil
}

// GetInputNodeValue returns inputAugmented at the named node.
func (c *Computation) GetInputNodeValue(name string) (float64, error) {
	idx, ok := c.augmentedGraph.IndexOf(name)
	if !ok {
		return 0, ErrNodeNotFound(name)
	}
	return c.inputAugmented[idx], nil
}

// SetInputNodeValue overwrites inputAugmented at the named node.
func (c *Computation) SetInputNodeValue(name string, value float64) error {
	idx, ok := c.augmentedGraph.IndexOf(name)
	if !ok {
		return ErrNodeNotFound(name)
	}
	c.inputAugmented[idx] = value
	return nil
}

// GetVirtualInputForType returns inputAugmented at v-in:<peerType>[_<sourceNode>].
func (c *Computation) GetVirtualInputForType(peerType, sourceNode string) (float64, error) {
	return c.GetInputNodeValue(VirtualName(DirIn, peerType, sourceNode))
}

// GetVirtualOutputForType returns outputAugmented at v-out:<peerType>[_<targetNode>].
func (c *Computation) GetVirtualOutputForType(peerType, targetNode string) (float64, error) {
	return c.GetOutputNodeValue(VirtualName(DirOut, peerType, targetNode))
}

// SetInputVinForType overwrites inputAugmented at v-in:<peerType>[_<sourceNode>].
// This is how the boundary exchange engine (package exchange) delivers a
// value received from a peer agent.
func (c *Computation) SetInputVinForType(peerType string, value float64, sourceNode string) error {
	return c.SetInputNodeValue(VirtualName(DirIn, peerType, sourceNode), value)
}

// SetInputVoutForType overwrites inputAugmented at v-out:<peerType>[_<targetNode>].
func (c *Computation) SetInputVoutForType(peerType string, value float64, targetNode string) error {
	return c.SetInputNodeValue(VirtualName(DirOut, peerType, targetNode), value)
}
