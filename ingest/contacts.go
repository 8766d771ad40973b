package ingest

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/dpedroso/pertsim/partition"
)

// ReadContactsTSV reads a contact/interaction file (spec.md §6): header
// includes startType, endType, startNodeName, endNodeName, weight, and an
// optional contactTimes column holding a comma-separated list of reals.
// Absence of contactTimes means "contact at every outer tick from 0 to
// maxTime": such an edge is returned with empty ContactTimes, and the caller
// fills in the grid with FillDefaultContactGrid, since the file itself
// carries no tick count.
func ReadContactsTSV(path string, r io.Reader) ([]partition.ContactEdge, error) {
	scanner := bufio.NewScanner(r)
	var edges []partition.ContactEdge
	lineNo := 0
	col := make(map[string]int)
	headerSeen := false

	required := []string{"starttype", "endtype", "startnodename", "endnodename", "weight"}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		cols := strings.Split(line, "\t")

		if !headerSeen {
			headerSeen = true
			for i, h := range cols {
				col[strings.ToLower(strings.TrimSpace(h))] = i
			}
			for _, name := range required {
				if _, ok := col[name]; !ok {
					return nil, ErrMissingColumn(path, name)
				}
			}
			continue
		}

		get := func(key string) (string, error) {
			idx := col[key]
			if idx >= len(cols) {
				return "", ErrMalformedRow(path, lineNo, line)
			}
			return strings.TrimSpace(cols[idx]), nil
		}

		srcType, err := get("starttype")
		if err != nil {
			return nil, err
		}
		dstType, err := get("endtype")
		if err != nil {
			return nil, err
		}
		srcNode, err := get("startnodename")
		if err != nil {
			return nil, err
		}
		dstNode, err := get("endnodename")
		if err != nil {
			return nil, err
		}
		weightStr, err := get("weight")
		if err != nil {
			return nil, err
		}
		weight, err := strconv.ParseFloat(weightStr, 64)
		if err != nil {
			return nil, ErrMalformedNumber(path, lineNo, weightStr)
		}

		var times []float64
		if idx, ok := col["contacttimes"]; ok && idx < len(cols) {
			raw := strings.TrimSpace(cols[idx])
			if raw != "" {
				parts := strings.Split(raw, ",")
				times = make([]float64, len(parts))
				for i, p := range parts {
					v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
					if err != nil {
						return nil, ErrMalformedNumber(path, lineNo, p)
					}
					times[i] = v
				}
			}
		}

		edges = append(edges, partition.ContactEdge{
			SrcNode:      srcNode,
			DstNode:      dstNode,
			SrcType:      srcType,
			DstType:      dstType,
			Weight:       weight,
			ContactTimes: times,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return edges, nil
}

// FillDefaultContactGrid sets ContactTimes to every outer tick {0, dt, 2*dt,
// ..., (ticks-1)*dt} for every edge whose file row carried no contactTimes
// column, per spec.md §6's "absence means contact every outer tick" rule.
func FillDefaultContactGrid(edges []partition.ContactEdge, ticks int, dt float64) {
	for i := range edges {
		if len(edges[i].ContactTimes) > 0 {
			continue
		}
		grid := make([]float64, ticks)
		for k := 0; k < ticks; k++ {
			grid[k] = float64(k) * dt
		}
		edges[i].ContactTimes = grid
	}
}
