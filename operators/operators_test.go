package operators

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/dpedroso/pertsim/logx"
	"github.com/dpedroso/pertsim/matx"
	"github.com/dpedroso/pertsim/scaling"
)

type ConstFunc = scaling.ConstFunc

func Test_dissipation01(t *testing.T) {
	chk.PrintTitle("dissipation01: scaled dissipation subtracts gamma(t)*x")
	d := ScaledDissipation{Gamma: ConstFunc(0.2)}
	x := matx.Vector{10, 20, 30}
	term := d.Term(x, 0)
	chk.Array(t, "term", 1e-15, term, []float64{2, 4, 6})
	out := d.Apply(x, 0)
	chk.Array(t, "out", 1e-15, out, []float64{8, 16, 24})
}

func Test_dissipation02(t *testing.T) {
	chk.PrintTitle("dissipation02: pow dissipation")
	d := PowDissipation{P: 2}
	x := matx.Vector{2, 3}
	term := d.Term(x, 0)
	chk.Array(t, "term", 1e-15, term, []float64{4, 9})
}

func Test_dissipation03(t *testing.T) {
	chk.PrintTitle("dissipation03: random dissipation stays within bounds")
	d := RandomDissipation{Lo: 0.1, Hi: 0.3, Rng: rand.New(rand.NewSource(1))}
	x := matx.Vector{100, 100, 100}
	term := d.Term(x, 0)
	for i, v := range term {
		if v < 10 || v > 30 {
			t.Fatalf("term[%d]=%v out of range [10,30]", i, v)
		}
	}
}

func Test_dissipation04(t *testing.T) {
	chk.PrintTitle("dissipation04: periodic gamma")
	d := NewPeriodicDissipation(1.0, 4.0, 0)
	g := d.Gamma.F(1.0, nil)
	chk.Float64(t, "gamma(1)", 1e-12, g, 1.0)
}

func Test_conservation01(t *testing.T) {
	chk.PrintTitle("conservation01: conservation term and apply")
	w := matx.NewMatrixFrom2D([][]float64{{0, 1}, {1, 0}})
	c := ScaledConservation{Theta: ConstFunc(0.5)}
	xRaw := matx.Vector{4, 8}
	term, err := c.Term(xRaw, w, nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	// wStar*q = [1,1]*0.5 = [0.5,0.5]; ⊙ xRaw = [2,4]
	chk.Array(t, "term", 1e-15, term, []float64{2, 4})
	out, err := c.Apply(xRaw, xRaw, w, nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	chk.Array(t, "out", 1e-15, out, []float64{2, 4})
}

func Test_conservation02(t *testing.T) {
	chk.PrintTitle("conservation02: mismatched q length fails")
	w := matx.NewMatrixFrom2D([][]float64{{0, 1}, {1, 0}})
	c := ScaledConservation{Theta: ConstFunc(1)}
	_, err := c.Term(matx.Vector{1, 2}, w, matx.Vector{1}, 0)
	if err == nil {
		t.Fatal("expected error for mismatched q length")
	}
}

func Test_dissipation05(t *testing.T) {
	chk.PrintTitle("dissipation05: per-node dissipation uses a distinct gamma per node")
	log := logx.New(logx.None, 0)
	registry := scaling.NewRegistry(log)
	names := []string{"a", "b"}
	known := map[string]bool{"a": true, "b": true}
	table := scaling.ParameterTable{"a": {0.1, 0.1, 0.1}, "b": {0.5, 0.5, 0.5}}
	if err := registry.LoadParameters(scaling.Dissipation, table, known); err != nil {
		t.Fatal(err)
	}
	d := PerNodeDissipation{Registry: registry, Names: func() []string { return names }}
	x := matx.Vector{10, 10}
	term := d.Term(x, 0)
	chk.Array(t, "term", 1e-15, term, []float64{1, 5})
	out := d.Apply(x, 0)
	chk.Array(t, "out", 1e-15, out, []float64{9, 5})
}

func Test_conservation03(t *testing.T) {
	chk.PrintTitle("conservation03: per-node conservation uses a distinct theta per node")
	w := matx.NewMatrixFrom2D([][]float64{{0, 1}, {1, 0}})
	log := logx.New(logx.None, 0)
	registry := scaling.NewRegistry(log)
	names := []string{"a", "b"}
	known := map[string]bool{"a": true, "b": true}
	table := scaling.ParameterTable{"a": {0.25, 0.25, 0.25}, "b": {0.75, 0.75, 0.75}}
	if err := registry.LoadParameters(scaling.Conservation, table, known); err != nil {
		t.Fatal(err)
	}
	c := PerNodeConservation{Registry: registry, Names: func() []string { return names }}
	xRaw := matx.Vector{4, 8}
	term, err := c.Term(xRaw, w, nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	// wStar*q = [1,1]; theta = [0.25,0.75]; ⊙ xRaw=[4,8] -> [1, 6]
	chk.Array(t, "term", 1e-15, term, []float64{1, 6})
	out, err := c.Apply(xRaw, xRaw, w, nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	chk.Array(t, "out", 1e-15, out, []float64{3, 2})
}

func Test_propagation01(t *testing.T) {
	chk.PrintTitle("propagation01: neighbors propagation")
	adj := matx.NewMatrixFrom2D([][]float64{{0, 1}, {1, 0}})
	p := NewPropagationNeighbors(adj, ConstFunc(1))
	x := matx.Vector{10, 20}
	out, err := p.Apply(x, 0)
	if err != nil {
		t.Fatal(err)
	}
	// W~ here is the column-normalised transpose of adj, which for this
	// symmetric 0/1 matrix is [[0,1],[1,0]] again.
	chk.Array(t, "out", 1e-9, out, []float64{30, 30})
}

func Test_propagation02(t *testing.T) {
	chk.PrintTitle("propagation02: original propagation warns on singular I-W~")
	adj := matx.NewMatrixFrom2D([][]float64{{0, 1}, {1, 0}})
	log := logx.New(logx.None, 0)
	p, err := NewPropagationOriginal(adj, ConstFunc(1), log)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Singular {
		t.Fatal("expected I - W~ to be singular for this symmetric adjacency")
	}
	out, err := p.Apply(matx.Vector{1, 1}, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("expected a finite pseudoinverse result, got %v", v)
		}
	}
}

func Test_propagation03(t *testing.T) {
	chk.PrintTitle("propagation03: custom propagation matches neighbors math")
	adj := matx.NewMatrixFrom2D([][]float64{{0, 2}, {2, 0}})
	custom := NewPropagationCustom(adj, ConstFunc(0.5))
	neighbors := NewPropagationNeighbors(adj, ConstFunc(0.5))
	x := matx.Vector{5, 7}
	a, err := custom.Apply(x, 0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := neighbors.Apply(x, 0)
	if err != nil {
		t.Fatal(err)
	}
	chk.Array(t, "custom vs neighbors", 1e-15, a, b)
}
