package graph

import (
	"bufio"
	"io"

	gio "github.com/cpmech/gosl/io"
)

// WriteEdgesTSV writes the edge list as source\ttarget\tweight, one edge per
// line, with a header row, matching the augmented-graph dump format of
// spec.md §6.
func (g *WeightedEdgeGraph) WriteEdgesTSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("source\ttarget\tweight\n"); err != nil {
		return err
	}
	for _, e := range g.edges {
		line := gio.Sf("%s\t%s\t%.17g\n", g.nameVector[e.Src], g.nameVector[e.Dst], e.Weight)
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
