package scheduler

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/io"

	"github.com/dpedroso/pertsim/agent"
)

// OutputMode is spec.md §6's two output file layouts.
type OutputMode int

const (
	SingleIteration OutputMode = iota
	IterationMatrix
)

// nodeKind classifies a node name the way utilities.cxx's saveNodeValues
// family does: real node, or virtual input/output carrying its peer type
// as an alias.
func nodeKind(name string) (kind, alias string) {
	dir, peerType, _, err := agent.ParseVirtualName(name)
	if err != nil {
		return "nodes in the graph", name
	}
	if dir == agent.DirIn {
		return "virtual-input", peerType
	}
	return "virtual-output", peerType
}

// Output writes per-iteration node values in either of spec.md §6's two
// formats: singleIteration writes one file per (agent, iteration);
// iterationMatrix accumulates every iteration in memory and writes one
// matrix file per agent at Flush.
type Output struct {
	Dir  string
	Mode OutputMode

	// matrices and times accumulate the iterationMatrix form: one row per
	// recorded tick, one column per node.
	matrices map[string][][]float64
	times    map[string][]float64
	names    map[string][]string
}

// NewOutput returns an Output writing to dir in the given mode.
func NewOutput(dir string, mode OutputMode) *Output {
	return &Output{
		Dir:      dir,
		Mode:     mode,
		matrices: make(map[string][][]float64),
		times:    make(map[string][]float64),
		names:    make(map[string][]string),
	}
}

// Record emits or accumulates one agent's output at (outer, inner).
func (o *Output) Record(typ string, c *agent.Computation, outer, inner, innerIterations int, dt float64) error {
	names := c.AugmentedGraph().Names()
	values := c.OutputAugmented()
	t := float64(outer*innerIterations+inner) * dt / float64(innerIterations)

	switch o.Mode {
	case SingleIteration:
		return o.writeSingleIteration(typ, names, values, outer*innerIterations+inner, t)
	default:
		o.appendMatrixRow(typ, names, values, t)
		return nil
	}
}

func (o *Output) writeSingleIteration(typ string, names []string, values []float64, iter int, t float64) error {
	if err := os.MkdirAll(o.Dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(o.Dir, io.Sf("%s--%d.tsv", typ, iter))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	w.WriteString("nodeID\tnodeName\ttype\talias\tnodeValue\ttime\n")
	for i, name := range names {
		kind, alias := nodeKind(name)
		w.WriteString(io.Sf("%d\t%s\t%s\t%s\t%.17g\t%.17g\n", i, name, kind, alias, values[i], t))
	}
	return w.Flush()
}

func (o *Output) appendMatrixRow(typ string, names []string, values []float64, t float64) {
	if _, ok := o.names[typ]; !ok {
		o.names[typ] = append([]string(nil), names...)
	}
	row := append([]float64(nil), values...)
	o.matrices[typ] = append(o.matrices[typ], row)
	o.times[typ] = append(o.times[typ], t)
}

// Flush writes the accumulated iterationMatrix files. No-op in
// singleIteration mode, where every file is already written by Record.
func (o *Output) Flush() error {
	if o.Mode != IterationMatrix {
		return nil
	}
	if err := os.MkdirAll(o.Dir, 0o755); err != nil {
		return err
	}
	for typ, matrix := range o.matrices {
		path := filepath.Join(o.Dir, typ+".tsv")
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := writeMatrixFile(f, o.names[typ], o.times[typ], matrix); err != nil {
			f.Close()
			return err
		}
		f.Close()
	}
	return nil
}

func writeMatrixFile(f *os.File, names []string, times []float64, rows [][]float64) error {
	w := bufio.NewWriter(f)
	w.WriteString("nodeName")
	for _, t := range times {
		w.WriteString(io.Sf("\t%.17g", t))
	}
	w.WriteString("\n")
	for i, name := range names {
		w.WriteString(name)
		for _, row := range rows {
			w.WriteString(io.Sf("\t%.17g", row[i]))
		}
		w.WriteString("\n")
	}
	return w.Flush()
}
