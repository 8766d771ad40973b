package scaling

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// ParameterTable maps a node name to its parameter tuple, as read from a
// parameter file whose header is "name\tparameters" and whose rows bind a
// node name to a comma-separated list of reals (spec.md §4.3/§6).
type ParameterTable map[string][]float64

// ParseParameterFile reads a tab-delimited parameter file. The header's
// first two columns must be "name" and "parameters" (case-insensitive);
// further columns are ignored. Malformed rows (wrong column count,
// unparsable numbers) are reported with the offending line number.
func ParseParameterFile(r io.Reader) (ParameterTable, error) {
	scanner := bufio.NewScanner(r)
	table := make(ParameterTable)
	lineNo := 0
	headerSeen := false
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		if !headerSeen {
			if len(cols) < 2 ||
				!strings.EqualFold(cols[0], "name") ||
				!strings.EqualFold(cols[1], "parameters") {
				return nil, chk.Err("scaling: parameter file header must start with name\\tparameters, got %q", line)
			}
			headerSeen = true
			continue
		}
		if len(cols) < 2 {
			return nil, chk.Err("scaling: parameter file line %d: expected at least 2 columns, got %d", lineNo, len(cols))
		}
		name := cols[0]
		parts := strings.Split(cols[1], ",")
		params := make([]float64, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, chk.Err("scaling: parameter file line %d: cannot parse %q as a real: %v", lineNo, p, err)
			}
			params[i] = v
		}
		table[name] = params
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !headerSeen {
		return nil, chk.Err("scaling: parameter file has no header")
	}
	return table, nil
}
