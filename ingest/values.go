package ingest

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ValueTable maps a node name to its initial value, as read from an
// initial-values file (spec.md §6).
type ValueTable map[string]float64

// ReadValuesTSV reads an initial-values file: a header with a name column
// and a value column (any names containing "name"/"value", case
// insensitive), followed by rows of node name / real value.
func ReadValuesTSV(path string, r io.Reader) (ValueTable, error) {
	scanner := bufio.NewScanner(r)
	table := make(ValueTable)
	lineNo := 0
	nameIdx, valueIdx := -1, -1
	headerSeen := false

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		cols := strings.Split(line, "\t")

		if !headerSeen {
			headerSeen = true
			nameIdx, valueIdx = findValueColumns(cols)
			if nameIdx < 0 || valueIdx < 0 {
				return nil, ErrMissingColumn(path, "name/value")
			}
			continue
		}

		if len(cols) <= nameIdx || len(cols) <= valueIdx {
			return nil, ErrMalformedRow(path, lineNo, line)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(cols[valueIdx]), 64)
		if err != nil {
			return nil, ErrMalformedNumber(path, lineNo, cols[valueIdx])
		}
		table[strings.TrimSpace(cols[nameIdx])] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

func findValueColumns(header []string) (name, value int) {
	name, value = -1, -1
	for i, h := range header {
		low := strings.ToLower(strings.TrimSpace(h))
		if strings.Contains(low, "name") {
			name = i
		}
		if strings.Contains(low, "value") {
			value = i
		}
	}
	return
}

// ReadValuesFolder reads a folder-of-files initial-values set: one file per
// agent type, filename stem (without extension) equal to the type name.
// Returns a map keyed by type name.
func ReadValuesFolder(dir string) (map[string]ValueTable, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ErrOpenFile(dir, err)
	}
	out := make(map[string]ValueTable, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		f, err := os.Open(path)
		if err != nil {
			return nil, ErrOpenFile(path, err)
		}
		table, err := ReadValuesTSV(path, f)
		f.Close()
		if err != nil {
			return nil, err
		}
		stem := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		out[stem] = table
	}
	return out, nil
}
