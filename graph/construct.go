package graph

import (
	"fmt"
	"math"

	"github.com/dpedroso/pertsim/matx"
)

// adjTolerance is the near-zero tolerance used when building a graph from a
// dense adjacency matrix: entries with |w| below this are not turned into edges.
const adjTolerance = 1e-10

// New returns an empty graph (no nodes, no edges).
func New() *WeightedEdgeGraph {
	return &WeightedEdgeGraph{
		nameMap: make(map[string]int),
		adj:     matx.NewMatrix(0, 0),
	}
}

// NewFromN returns a graph with n nodes auto-named "0".."n-1", all zero-valued.
func NewFromN(n int) *WeightedEdgeGraph {
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = fmt.Sprintf("%d", i)
	}
	g, _ := NewFromNames(names)
	return g
}

// NewFromNames returns a graph with the given node names (and zero values).
// Fails if any name is duplicated.
func NewFromNames(names []string) (*WeightedEdgeGraph, error) {
	g := New()
	for _, name := range names {
		if _, err := g.AddNode(name, 0); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// NewFromNamesValues returns a graph with the given node names and initial
// values. Fails if the slice lengths differ or a name is duplicated.
func NewFromNamesValues(names []string, values []float64) (*WeightedEdgeGraph, error) {
	if len(names) != len(values) {
		return nil, ErrLengthMismatch(len(names), len(values))
	}
	g := New()
	for i, name := range names {
		if _, err := g.AddNode(name, values[i]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// NewFromAdjacencyMatrix builds a graph whose nodes are auto-named "0".."n-1"
// and whose edges are every entry of m with |weight| >= adjTolerance. Fails
// if m is not square.
func NewFromAdjacencyMatrix(m *matx.Matrix) (*WeightedEdgeGraph, error) {
	if m.Rows() != m.Cols() {
		return nil, ErrNonSquare(m.Rows(), m.Cols())
	}
	n := m.Rows()
	g := NewFromN(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w := m.MustGet(i, j)
			if math.Abs(w) < adjTolerance {
				continue
			}
			if err := g.addEdgeByIndex(i, j, w); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}
