package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpedroso/pertsim/graph"
	"github.com/dpedroso/pertsim/matx"
	"github.com/dpedroso/pertsim/operators"
	"github.com/dpedroso/pertsim/scaling"
)

func newTestComputation(t *testing.T) *Computation {
	t.Helper()
	g, err := graph.NewFromNamesValues([]string{"a", "b"}, []float64{1, 2})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge("a", "b", 1.0, false))

	c, err := New(Config{
		LocalType:       "alpha",
		Graph:           g,
		Input:           matx.Vector{1, 2},
		Dissipation:     operators.ScaledDissipation{Gamma: scaling.ConstFunc(0.1)},
		Conservation:    operators.ScaledConservation{Theta: scaling.ConstFunc(0.1)},
		PropagationKind: PropagationNeighborsKind,
		Omega:           scaling.ConstFunc(1.0),
	})
	require.NoError(t, err)
	return c
}

func TestVirtualName_RoundTrip(t *testing.T) {
	name := VirtualName(DirIn, "beta", "node3")
	dir, peerType, peerNode, err := ParseVirtualName(name)
	require.NoError(t, err)
	assert.Equal(t, DirIn, dir)
	assert.Equal(t, "beta", peerType)
	assert.Equal(t, "node3", peerNode)
}

func TestVirtualName_NoNodeSuffix(t *testing.T) {
	name := VirtualName(DirOut, "beta", "")
	dir, peerType, peerNode, err := ParseVirtualName(name)
	require.NoError(t, err)
	assert.Equal(t, DirOut, dir)
	assert.Equal(t, "beta", peerType)
	assert.Equal(t, "", peerNode)
}

func TestParseVirtualName_Malformed(t *testing.T) {
	_, _, _, err := ParseVirtualName("not-a-virtual-name")
	assert.Error(t, err)
	_, _, _, err = ParseVirtualName("v-sideways:beta")
	assert.Error(t, err)
}

func TestNew_InputLengthMismatch(t *testing.T) {
	g, err := graph.NewFromN(3)
	require.NoError(t, err)
	_, err = New(Config{LocalType: "alpha", Graph: g, Input: matx.Vector{1, 2}})
	assert.Error(t, err)
}

func TestAugmentGraph_RefusesNodeGranularity(t *testing.T) {
	c := newTestComputation(t)
	err := c.AugmentGraph([]string{"beta"}, GranularityNode, false, nil)
	assert.ErrorIs(t, err, ErrUnsupportedGranularity)
}

func TestAugmentGraph_TypeGranularity(t *testing.T) {
	c := newTestComputation(t)
	err := c.AugmentGraph([]string{"alpha", "beta", "gamma"}, GranularityType, false, []VirtualEdge{
		{Virtual: VirtualName(DirIn, "beta", ""), Internal: "a", Weight: 0.5},
		{Virtual: VirtualName(DirOut, "beta", ""), Internal: "b", Weight: 0.5},
	})
	require.NoError(t, err)
	// alpha is the local type and includeSelf=false, so only beta and gamma
	// contribute virtual nodes: 2 (a,b) + 2*2 = 6.
	assert.Equal(t, 6, c.AugmentedGraph().NumNodes())
	assert.True(t, c.CachesReady())
}

func TestAugmentGraph_TypeAndNodeDefersCreation(t *testing.T) {
	c := newTestComputation(t)
	err := c.AugmentGraph([]string{"beta"}, GranularityTypeAndNode, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, c.AugmentedGraph().NumNodes())

	err = c.AddEdgesAndNodes([]VirtualEdge{
		{Virtual: VirtualName(DirIn, "beta", "x"), Internal: "a", Weight: 1.0},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, c.AugmentedGraph().NumNodes())
}

func TestPerturb_ProducesOutputAndUpdateInputCopies(t *testing.T) {
	c := newTestComputation(t)
	err := c.Perturb(0, false, 0)
	require.NoError(t, err)
	require.NotNil(t, c.OutputAugmented())

	err = c.UpdateInput(false)
	require.NoError(t, err)
	assert.Equal(t, c.OutputAugmented(), c.InputAugmented())
}

func TestUpdateInput_PreserveNormRescalesToOriginalInputNorm(t *testing.T) {
	c := newTestComputation(t)
	originalNorm := c.Input().Norm2()

	require.NoError(t, c.Perturb(0, false, 0))
	require.NoError(t, c.UpdateInput(true))

	assert.InDelta(t, originalNorm, c.InputAugmented().Norm2(), 1e-9)
}

func TestUpdateInput_FailsWithoutPriorPerturb(t *testing.T) {
	c := newTestComputation(t)
	err := c.UpdateInput(false)
	assert.ErrorIs(t, err, ErrOutputNotReady)
}

func TestResetVirtualOutputs_OnlyZeroesVOut(t *testing.T) {
	c := newTestComputation(t)
	require.NoError(t, c.AugmentGraph([]string{"beta"}, GranularityType, false, nil))
	require.NoError(t, c.Perturb(0, false, 0))

	require.NoError(t, c.SetInputVinForType("beta", 7, ""))
	c.outputAugmented[mustIndex(t, c, VirtualName(DirOut, "beta", ""))] = 42
	c.ResetVirtualOutputs()

	v, err := c.GetVirtualOutputForType("beta", "")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	vin, err := c.GetVirtualInputForType("beta", "")
	require.NoError(t, err)
	assert.Equal(t, 7.0, vin)
}

func mustIndex(t *testing.T, c *Computation, name string) int {
	t.Helper()
	idx, ok := c.AugmentedGraph().IndexOf(name)
	require.True(t, ok)
	return idx
}
