package checkpoint

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/io"

	"github.com/dpedroso/pertsim/agent"
)

const filePrefix = "checkpoint_"

// Store saves and loads checkpoint files under a single directory,
// filename checkpoint_<type>_<outer>_<inner>.tsv, grounded directly on
// original_source/src/checkpoint/Checkpoint.{hxx,cxx}.
type Store struct {
	Dir string
}

// NewStore returns a Store rooted at dir, creating dir if it does not
// already exist. An empty dir defaults to "checkpoints".
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = "checkpoints"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, ErrCreateDir(dir, err)
	}
	return &Store{Dir: dir}, nil
}

func (s *Store) path(typ string, outer, inner int) string {
	return filepath.Join(s.Dir, io.Sf("%s%s_%d_%d.tsv", filePrefix, typ, outer, inner))
}

// Save writes c's augmented graph node names and inputAugmented values to
// checkpoint_<type>_<outer>_<inner>.tsv, header "nodeName\tnodeValue".
func (s *Store) Save(typ string, outer, inner int, c *agent.Computation) error {
	fn := s.path(typ, outer, inner)
	f, err := os.Create(fn)
	if err != nil {
		return ErrOpenFile(fn, err)
	}
	defer f.Close()

	names := c.AugmentedGraph().Names()
	values := c.InputAugmented()

	w := bufio.NewWriter(f)
	fmt.Fprint(w, "nodeName\tnodeValue\n")
	for i, name := range names {
		fmt.Fprintf(w, "%s\t%s\n", name, strconv.FormatFloat(values[i], 'g', -1, 64))
	}
	return w.Flush()
}

// Load finds the checkpoint file for typ, restores outer and inner from its
// filename, and rewrites every inputAugmented[name] named in the body onto
// c. It fails with ErrNotFound if no matching file exists.
func (s *Store) Load(typ string, c *agent.Computation) (outer, inner int, err error) {
	pattern := filepath.Join(s.Dir, io.Sf("%s%s_*_*.tsv", filePrefix, typ))
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return 0, 0, err
	}
	if len(matches) == 0 {
		return 0, 0, ErrNotFound(typ)
	}

	var fn string
	for _, m := range matches {
		o, i, perr := parseFilename(filepath.Base(m), typ)
		if perr != nil {
			return 0, 0, perr
		}
		if fn == "" || o > outer || (o == outer && i > inner) {
			fn, outer, inner = m, o, i
		}
	}

	f, err := os.Open(fn)
	if err != nil {
		return 0, 0, ErrOpenFile(fn, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			continue // header
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return 0, 0, ErrMalformedRow(lineNo, line)
		}
		value, perr := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if perr != nil {
			return 0, 0, ErrMalformedRow(lineNo, line)
		}
		if err := c.SetInputNodeValue(strings.TrimSpace(fields[0]), value); err != nil {
			return 0, 0, err
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, err
	}
	return outer, inner, nil
}

// Clean removes every checkpoint file belonging to typ.
func (s *Store) Clean(typ string) error {
	pattern := filepath.Join(s.Dir, io.Sf("%s%s_*_*.tsv", filePrefix, typ))
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return err
	}
	for _, fn := range matches {
		if err := os.Remove(fn); err != nil {
			return err
		}
	}
	return nil
}

// parseFilename extracts outer and inner from checkpoint_<type>_<outer>_<inner>.tsv.
func parseFilename(name, typ string) (outer, inner int, err error) {
	prefix := filePrefix + typ + "_"
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".tsv") {
		return 0, 0, ErrMalformedFilename(name)
	}
	body := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".tsv")
	parts := strings.Split(body, "_")
	if len(parts) != 2 {
		return 0, 0, ErrMalformedFilename(name)
	}
	outer, err1 := strconv.Atoi(parts[0])
	inner, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, ErrMalformedFilename(name)
	}
	return outer, inner, nil
}
