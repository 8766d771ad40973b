// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/dpedroso/pertsim/agent"
	"github.com/dpedroso/pertsim/checkpoint"
	"github.com/dpedroso/pertsim/config"
	"github.com/dpedroso/pertsim/exchange"
	"github.com/dpedroso/pertsim/graph"
	"github.com/dpedroso/pertsim/ingest"
	"github.com/dpedroso/pertsim/logx"
	"github.com/dpedroso/pertsim/matx"
	"github.com/dpedroso/pertsim/operators"
	"github.com/dpedroso/pertsim/partition"
	"github.com/dpedroso/pertsim/scaling"
	"github.com/dpedroso/pertsim/scheduler"
	"github.com/dpedroso/pertsim/transport"
)

func main() {
	var rank int

	defer func() {
		if err := recover(); err != nil {
			if rank == 0 {
				chk.Verbose = true
				for i := 8; i > 3; i-- {
					chk.CallerInfo(i)
				}
				io.PfRed("ERROR: %v\n", err)
			}
		}
		transport.StopMPI(false)
	}()

	cfgPath, _ := io.ArgToFilename(0, "", ".yaml", true)

	run, err := config.Load(cfgPath)
	if err != nil {
		chk.Panic("config: %v", err)
	}

	if run.AllowParallel {
		transport.StartMPI(false)
	}

	var tr transport.Transport
	if run.AllowParallel {
		tr = transport.NewMPITransport()
	} else {
		reg := transport.NewChanRegistry(run.NumWorkers)
		tr = transport.NewChanTransport(0, reg)
	}
	rank = tr.Rank()

	log := logx.New(levelFor(run.Verbose), rank)
	log.SetWarnAsError(run.WarnAsError)

	if rank == 0 {
		io.PfWhite("\npertsim -- perturbation-dynamics simulation over typed agent graphs\n\n")
		io.Pf("%v\n", io.ArgsTable(
			"config file", "cfgPath", cfgPath,
			"types", "types", run.Types,
			"num workers", "numWorkers", run.NumWorkers,
			"allow parallel", "allowParallel", run.AllowParallel,
		))
	}

	plan, err := partition.NewPlan(run.Types, run.NumWorkers)
	if err != nil {
		chk.Panic("partition: %v", err)
	}
	myTypes := plan.TypesOnRank(rank)

	granularity := agent.GranularityType
	if run.Granularity == "typeAndNode" {
		granularity = agent.GranularityTypeAndNode
	}

	locals := make(map[string]*agent.Computation, len(myTypes))
	for _, typ := range myTypes {
		c, err := buildAgent(run, typ, log)
		if err != nil {
			chk.Panic("building agent %q: %v", typ, err)
		}
		locals[typ] = c
	}

	var edges []partition.ContactEdge
	if run.ContactFile != "" {
		f, err := os.Open(run.ContactFile)
		if err != nil {
			chk.Panic("opening contact file: %v", err)
		}
		edges, err = ingest.ReadContactsTSV(run.ContactFile, f)
		f.Close()
		if err != nil {
			chk.Panic("reading contact file: %v", err)
		}
	}
	ingest.FillDefaultContactGrid(edges, run.IntraIterations*run.InterTypeIterations, run.Dt)

	peerTypesByType := peerTypesExcluding(run.Types)
	for typ, c := range locals {
		virtualEdges := virtualEdgesFor(typ, edges)
		if err := c.AugmentGraph(peerTypesByType[typ], granularity, run.IncludeSelf, virtualEdges); err != nil {
			chk.Panic("augmenting graph for %q: %v", typ, err)
		}
	}

	mode := exchange.ModeSingle
	if run.QuantisationMode == "multiple" {
		mode = exchange.ModeMultiple
	}
	engine, err := exchange.NewEngine(plan, edges, granularity, mode, run.SameTypeCommunication, tr)
	if err != nil {
		chk.Panic("exchange: %v", err)
	}

	store, err := checkpoint.NewStore(run.CheckpointDir)
	if err != nil {
		chk.Panic("checkpoint: %v", err)
	}

	outMode := scheduler.SingleIteration
	if run.OutputMode == "iterationMatrix" {
		outMode = scheduler.IterationMatrix
	}
	output := scheduler.NewOutput(run.OutputDir, outMode)

	cfg := scheduler.Config{
		IntraIterations:     run.IntraIterations,
		InterTypeIterations: run.InterTypeIterations,
		Dt:                  run.Dt,
		SaturationEnabled:   run.SaturationEnabled,
		SaturationLimit:     run.SaturationLimit,
		ConserveInitialNorm: run.ConserveInitialNorm,
		ResetVirtualOutputs: run.ResetVirtualOutputs,
		MaxWorkers:          len(myTypes),
	}
	sched := scheduler.New(cfg, locals, engine, store, output, log)

	var startOuter, startInner int
	if run.ResumeCheckpoint {
		startOuter, startInner, err = sched.Resume()
		if err != nil {
			chk.Panic("resume: %v", err)
		}
	} else {
		for _, typ := range myTypes {
			if err := store.Clean(typ); err != nil {
				chk.Panic("clearing stale checkpoints for %q: %v", typ, err)
			}
		}
	}

	if err := sched.Run(startOuter, startInner); err != nil {
		chk.Panic("run failed: %v", err)
	}

	if run.AugmentedGraphDumpDir != "" {
		if err := dumpAugmentedGraphs(run.AugmentedGraphDumpDir, locals); err != nil {
			chk.Panic("dumping augmented graphs: %v", err)
		}
	}
}

func levelFor(verbose bool) logx.Level {
	if verbose {
		return logx.All
	}
	return logx.None
}

// buildAgent reads the graph/initial-values/parameter files for typ and
// constructs its Computation.
func buildAgent(run *config.Run, typ string, log *logx.Logger) (*agent.Computation, error) {
	graphPath := run.GraphFiles[typ]
	gf, err := os.Open(graphPath)
	if err != nil {
		return nil, err
	}
	var warnErr error
	rawEdges, err := ingest.ReadEdgesTSV(graphPath, gf, func(msg string) {
		if werr := log.Warn("%s", msg); werr != nil && warnErr == nil {
			warnErr = werr
		}
	})
	gf.Close()
	if err != nil {
		return nil, err
	}
	if warnErr != nil {
		return nil, warnErr
	}

	names := namesFromEdges(rawEdges)
	g, err := graph.NewFromNames(names)
	if err != nil {
		return nil, err
	}
	for _, e := range rawEdges {
		if err := g.AddEdge(e.Start, e.End, e.Weight, true); err != nil {
			return nil, err
		}
	}

	values := make(map[string]float64)
	if path, ok := run.InitialValuesFiles[typ]; ok && path != "" {
		vf, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		values, err = ingest.ReadValuesTSV(path, vf)
		vf.Close()
		if err != nil {
			return nil, err
		}
	} else if run.InitialValuesDir != "" {
		all, err := ingest.ReadValuesFolder(run.InitialValuesDir)
		if err != nil {
			return nil, err
		}
		if vt, ok := all[typ]; ok {
			values = vt
		}
	}
	input := make(matx.Vector, len(names))
	for i, n := range names {
		input[i] = values[n]
	}

	registry := scaling.NewRegistry(log)
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}

	loadedDissipation, err := loadRoleParameters(registry, scaling.Dissipation, run.ParameterFiles["dissipation"], known)
	if err != nil {
		return nil, err
	}
	loadedConservation, err := loadRoleParameters(registry, scaling.Conservation, run.ParameterFiles["conservation"], known)
	if err != nil {
		return nil, err
	}

	propKind := agent.PropagationNeighborsKind
	switch run.PropagationKind {
	case "original":
		propKind = agent.PropagationOriginalKind
	case "custom":
		propKind = agent.PropagationCustomKind
	}

	c, err := agent.New(agent.Config{
		LocalType:       typ,
		Graph:           g,
		Input:           input,
		Dissipation:     operators.ScaledDissipation{Gamma: registry.ForNode(scaling.Dissipation, "")},
		Conservation:    operators.ScaledConservation{Theta: registry.ForNode(scaling.Conservation, "")},
		PropagationKind: propKind,
		Omega:           registry.ForNode(scaling.Propagation, ""),
		Log:             log,
	})
	if err != nil {
		return nil, err
	}

	// Swap in per-node-aware operators once c exists, so the Names closure
	// can read the agent's own (possibly still augmenting) node list on
	// every call rather than a snapshot taken before augmentation.
	if loadedDissipation {
		c.SetDissipation(operators.PerNodeDissipation{Registry: registry, Names: c.AugmentedGraph().Names})
	}
	if loadedConservation {
		c.SetConservation(operators.PerNodeConservation{Registry: registry, Names: c.AugmentedGraph().Names})
	}
	return c, nil
}

// loadRoleParameters reads path (if non-empty) as a parameter file for role
// and loads it into registry, reporting whether a file was actually loaded.
func loadRoleParameters(registry *scaling.Registry, role scaling.Role, path string, known map[string]bool) (bool, error) {
	if path == "" {
		return false, nil
	}
	pf, err := os.Open(path)
	if err != nil {
		return false, err
	}
	table, err := scaling.ParseParameterFile(pf)
	pf.Close()
	if err != nil {
		return false, err
	}
	if err := registry.LoadParameters(role, table, known); err != nil {
		return false, err
	}
	return true, nil
}

func namesFromEdges(edges []ingest.Edge) []string {
	seen := make(map[string]bool)
	var names []string
	for _, e := range edges {
		for _, n := range []string{e.Start, e.End} {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	return names
}

// peerTypesExcluding returns, for each type, every other type in types —
// the peer-type list AugmentGraph needs at granularity "type".
func peerTypesExcluding(types []string) map[string][]string {
	out := make(map[string][]string, len(types))
	for _, t := range types {
		var peers []string
		for _, other := range types {
			if other != t {
				peers = append(peers, other)
			}
		}
		out[t] = peers
	}
	return out
}

// virtualEdgesFor builds the receptor/ligand VirtualEdge wiring for typ's
// side of every contact edge touching it.
func virtualEdgesFor(typ string, edges []partition.ContactEdge) []agent.VirtualEdge {
	var out []agent.VirtualEdge
	for _, e := range edges {
		if e.SrcType == typ {
			out = append(out, agent.VirtualEdge{
				Virtual:  agent.VirtualName(agent.DirOut, e.DstType, ""),
				Internal: e.SrcNode,
				Weight:   e.Weight,
			})
		}
		if e.DstType == typ {
			out = append(out, agent.VirtualEdge{
				Virtual:  agent.VirtualName(agent.DirIn, e.SrcType, ""),
				Internal: e.DstNode,
				Weight:   e.Weight,
			})
		}
	}
	return out
}

func dumpAugmentedGraphs(dir string, locals map[string]*agent.Computation) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for typ, c := range locals {
		f, err := os.Create(dir + "/" + typ + ".tsv")
		if err != nil {
			return err
		}
		err = c.AugmentedGraph().WriteEdgesTSV(f)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
