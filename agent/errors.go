package agent

import "github.com/cpmech/gosl/chk"

// ErrInputLength reports an input vector whose length does not match the
// owning graph's node count.
func ErrInputLength(got, want int) error {
	return chk.Err("agent: input vector has length %d, expected %d (graph node count)", got, want)
}

// ErrUnsupportedGranularity reports an attempt to augment at node
// granularity, which is not supported (spec.md §9, Open Question 2).
var ErrUnsupportedGranularity = chk.Err("agent: node-level augmentation granularity is not supported; use type or typeAndNode")

// ErrMalformedVirtualName reports a virtual-node name that does not match
// v-<dir>:<type>[_<node>].
func ErrMalformedVirtualName(name string) error {
	return chk.Err("agent: malformed virtual node name %q", name)
}

// ErrUnknownVirtualDirection reports a direction token that is neither v-in
// nor v-out.
func ErrUnknownVirtualDirection(dir string) error {
	return chk.Err("agent: unknown virtual node direction %q", dir)
}

// ErrNodeNotFound reports a lookup by name against a node that does not
// exist in the augmented graph.
func ErrNodeNotFound(name string) error {
	return chk.Err("agent: node %q not found", name)
}

// ErrOutputNotReady reports updateInput being called before any Perturb has
// produced an outputAugmented vector.
var ErrOutputNotReady = chk.Err("agent: updateInput called before any Perturb step")
