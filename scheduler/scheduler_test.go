package scheduler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpedroso/pertsim/agent"
	"github.com/dpedroso/pertsim/checkpoint"
	"github.com/dpedroso/pertsim/graph"
	"github.com/dpedroso/pertsim/matx"
	"github.com/dpedroso/pertsim/operators"
	"github.com/dpedroso/pertsim/scaling"
)

func newOneNodeAgent(t *testing.T, typ string, initial float64) *agent.Computation {
	t.Helper()
	g, err := graph.NewFromNamesValues([]string{"x"}, []float64{initial})
	require.NoError(t, err)
	c, err := agent.New(agent.Config{
		LocalType:       typ,
		Graph:           g,
		Input:           matx.Vector{initial},
		Dissipation:     operators.ScaledDissipation{Gamma: scaling.ConstFunc(0.1)},
		Conservation:    operators.ScaledConservation{Theta: scaling.ConstFunc(0.0)},
		PropagationKind: agent.PropagationNeighborsKind,
		Omega:           scaling.ConstFunc(1.0),
	})
	require.NoError(t, err)
	return c
}

func TestScheduler_RunSingleWorkerNoExchange(t *testing.T) {
	a := newOneNodeAgent(t, "A", 1.0)
	b := newOneNodeAgent(t, "B", 2.0)
	locals := map[string]*agent.Computation{"A": a, "B": b}

	dir := t.TempDir()
	store, err := checkpoint.NewStore(filepath.Join(dir, "checkpoints"))
	require.NoError(t, err)
	output := NewOutput(filepath.Join(dir, "results"), SingleIteration)

	cfg := Config{IntraIterations: 2, InterTypeIterations: 2, Dt: 1.0, MaxWorkers: 4}
	s := New(cfg, locals, nil, store, output, nil)

	require.NoError(t, s.Run(0, 0))

	entries, err := os.ReadDir(filepath.Join(dir, "results"))
	require.NoError(t, err)
	assert.NotEmpty(t, entries)

	entries, err = os.ReadDir(filepath.Join(dir, "checkpoints"))
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}

func TestScheduler_ResumeWithNoCheckpointsStartsAtZero(t *testing.T) {
	a := newOneNodeAgent(t, "A", 1.0)
	locals := map[string]*agent.Computation{"A": a}
	dir := t.TempDir()
	store, err := checkpoint.NewStore(dir)
	require.NoError(t, err)
	s := New(Config{IntraIterations: 1, InterTypeIterations: 1, Dt: 1.0}, locals, nil, store, nil, nil)

	outer, inner, err := s.Resume()
	require.NoError(t, err)
	assert.Equal(t, 0, outer)
	assert.Equal(t, 0, inner)
}

func TestScheduler_ResumeRecoversSavedCheckpoint(t *testing.T) {
	a := newOneNodeAgent(t, "A", 1.0)
	locals := map[string]*agent.Computation{"A": a}
	dir := t.TempDir()
	store, err := checkpoint.NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save("A", 3, 1, a))

	s := New(Config{IntraIterations: 4, InterTypeIterations: 5, Dt: 1.0}, locals, nil, store, nil, nil)
	outer, inner, err := s.Resume()
	require.NoError(t, err)
	assert.Equal(t, 3, outer)
	assert.Equal(t, 1, inner)
}

func TestScheduler_IterationMatrixModeWritesOneFilePerType(t *testing.T) {
	a := newOneNodeAgent(t, "A", 1.0)
	locals := map[string]*agent.Computation{"A": a}
	dir := t.TempDir()
	output := NewOutput(dir, IterationMatrix)

	cfg := Config{IntraIterations: 2, InterTypeIterations: 2, Dt: 1.0, MaxWorkers: 2}
	s := New(cfg, locals, nil, nil, output, nil)
	require.NoError(t, s.Run(0, 0))

	_, err := os.Stat(filepath.Join(dir, "A.tsv"))
	assert.NoError(t, err)
}
