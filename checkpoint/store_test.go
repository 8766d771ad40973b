package checkpoint

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpedroso/pertsim/agent"
	"github.com/dpedroso/pertsim/graph"
	"github.com/dpedroso/pertsim/matx"
	"github.com/dpedroso/pertsim/operators"
	"github.com/dpedroso/pertsim/scaling"
)

func newTestComputation(t *testing.T) *agent.Computation {
	t.Helper()
	g, err := graph.NewFromNamesValues([]string{"a", "b"}, []float64{1, 2})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge("a", "b", 1.0, false))

	c, err := agent.New(agent.Config{
		LocalType:       "alpha",
		Graph:           g,
		Input:           matx.Vector{1, 2},
		Dissipation:     operators.ScaledDissipation{Gamma: scaling.ConstFunc(0.1)},
		Conservation:    operators.ScaledConservation{Theta: scaling.ConstFunc(0.1)},
		PropagationKind: agent.PropagationNeighborsKind,
		Omega:           scaling.ConstFunc(1.0),
	})
	require.NoError(t, err)
	return c
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	c := newTestComputation(t)
	require.NoError(t, c.Perturb(0, false, 0))
	require.NoError(t, c.UpdateInput(false))
	before := c.InputAugmented()

	require.NoError(t, store.Save("alpha", 3, 7, c))

	fresh := newTestComputation(t)
	outer, inner, err := store.Load("alpha", fresh)
	require.NoError(t, err)
	assert.Equal(t, 3, outer)
	assert.Equal(t, 7, inner)
	assert.InDeltaSlice(t, []float64(before), []float64(fresh.InputAugmented()), 1e-9)
}

func TestStore_LoadPicksGreatestOuterInner(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	c := newTestComputation(t)
	require.NoError(t, c.Perturb(0, false, 0))
	require.NoError(t, c.UpdateInput(false))

	// Saved out of order, and with a same-width-outer tie on (2,9) vs (3,0)
	// that an unsorted glob[0] pick would get wrong.
	require.NoError(t, store.Save("alpha", 3, 1, c))
	require.NoError(t, store.Save("alpha", 2, 9, c))
	require.NoError(t, store.Save("alpha", 3, 0, c))

	fresh := newTestComputation(t)
	outer, inner, err := store.Load("alpha", fresh)
	require.NoError(t, err)
	assert.Equal(t, 3, outer)
	assert.Equal(t, 1, inner)
}

func TestStore_LoadMissingFails(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	c := newTestComputation(t)
	_, _, err = store.Load("alpha", c)
	assert.Error(t, err)
}

func TestStore_Clean(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	c := newTestComputation(t)
	require.NoError(t, c.Perturb(0, false, 0))
	require.NoError(t, c.UpdateInput(false))
	require.NoError(t, store.Save("alpha", 0, 0, c))
	require.NoError(t, store.Save("alpha", 0, 1, c))

	matches, err := filepath.Glob(filepath.Join(dir, "checkpoint_alpha_*_*.tsv"))
	require.NoError(t, err)
	require.Len(t, matches, 2)

	require.NoError(t, store.Clean("alpha"))

	matches, err = filepath.Glob(filepath.Join(dir, "checkpoint_alpha_*_*.tsv"))
	require.NoError(t, err)
	assert.Len(t, matches, 0)
}
