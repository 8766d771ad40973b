package ingest

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Edge is one row of a graph edge file.
type Edge struct {
	Start, End string
	Weight     float64
}

// ReadEdgesTSV reads a graph edge file (spec.md §6): a header naming a
// start column (start/source, case-insensitive), an end column
// (end/target), and a weight column, in any order; other columns are
// ignored. Exactly three columns with no recognisable header names is
// accepted as an implicit start/target/weight layout, and onWarning (if
// non-nil) is called once to report that fallback.
func ReadEdgesTSV(path string, r io.Reader, onWarning func(string)) ([]Edge, error) {
	scanner := bufio.NewScanner(r)
	var edges []Edge
	lineNo := 0
	startIdx, endIdx, weightIdx := -1, -1, -1
	headerParsed := false

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		cols := strings.Split(line, "\t")

		if !headerParsed {
			headerParsed = true
			startIdx, endIdx, weightIdx = findEdgeColumns(cols)
			if startIdx < 0 || endIdx < 0 || weightIdx < 0 {
				if len(cols) != 3 {
					return nil, ErrMissingColumn(path, "start/end/weight")
				}
				startIdx, endIdx, weightIdx = 0, 1, 2
				if onWarning != nil {
					onWarning("no recognisable header; treating 3 columns as start, target, weight")
				}
				// This first row is data, not a header: fall through and parse it.
			} else {
				continue
			}
		}

		if len(cols) <= startIdx || len(cols) <= endIdx || len(cols) <= weightIdx {
			return nil, ErrMalformedRow(path, lineNo, line)
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(cols[weightIdx]), 64)
		if err != nil {
			return nil, ErrMalformedNumber(path, lineNo, cols[weightIdx])
		}
		edges = append(edges, Edge{
			Start:  strings.TrimSpace(cols[startIdx]),
			End:    strings.TrimSpace(cols[endIdx]),
			Weight: w,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return edges, nil
}

func findEdgeColumns(header []string) (start, end, weight int) {
	start, end, weight = -1, -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "start", "source":
			start = i
		case "end", "target":
			end = i
		case "weight":
			weight = i
		}
	}
	return
}
