package scheduler

import (
	"github.com/dpedroso/pertsim/agent"
	"github.com/dpedroso/pertsim/checkpoint"
	"github.com/dpedroso/pertsim/exchange"
	"github.com/dpedroso/pertsim/logx"
)

// Config is the run-level tuning the pseudocode of spec.md §4.9 closes
// over: iteration counts, time step, and the saturation/conservation
// flags threaded into every agent's Perturb/UpdateInput call.
type Config struct {
	IntraIterations     int
	InterTypeIterations int
	Dt                  float64

	SaturationEnabled   bool
	SaturationLimit     float64
	ConserveInitialNorm bool
	ResetVirtualOutputs bool

	MaxWorkers int
}

// Scheduler runs the two-level outer/inner loop for the agents this
// worker owns, coordinating checkpointing, boundary exchange, and output.
type Scheduler struct {
	cfg    Config
	locals map[string]*agent.Computation
	engine *exchange.Engine // nil skips boundary exchange entirely
	store  *checkpoint.Store
	output *Output
	log    *logx.Logger
}

// New returns a Scheduler for the agents in locals (keyed by type). engine,
// store and output may be nil to skip boundary exchange, checkpointing and
// output respectively (e.g. in tests); with a nil engine no contact values
// are delivered, and each agent only resets its own virtual outputs between
// outer ticks when Config.ResetVirtualOutputs is set.
func New(cfg Config, locals map[string]*agent.Computation, engine *exchange.Engine, store *checkpoint.Store, output *Output, log *logx.Logger) *Scheduler {
	return &Scheduler{cfg: cfg, locals: locals, engine: engine, store: store, output: output, log: log}
}

// Resume inspects the checkpoint store for this worker's agents and
// returns the (outer, inner) tuple to resume from. If no checkpoint
// exists for any local agent, it returns (0, 0). A partial checkpoint set
// (some types recovered, others not) is reported as an error, since the
// outer/inner tuple must be consistent across every local agent.
func (s *Scheduler) Resume() (outer, inner int, err error) {
	if s.store == nil {
		return 0, 0, nil
	}
	found := false
	var loadErr error
	for typ, c := range s.locals {
		o, i, lerr := s.store.Load(typ, c)
		if lerr != nil {
			if loadErr == nil {
				loadErr = lerr
			}
			continue
		}
		if !found {
			outer, inner = o, i
			found = true
			continue
		}
		if o != outer || i != inner {
			return 0, 0, ErrInconsistentCheckpoints(typ, o, i, outer, inner)
		}
	}
	if found && loadErr != nil {
		return 0, 0, loadErr
	}
	return outer, inner, nil
}

// Run executes the outer/inner loop from (startOuter, startInner) through
// the configured iteration counts, per the pseudocode of spec.md §4.9.
func (s *Scheduler) Run(startOuter, startInner int) error {
	types := make([]string, 0, len(s.locals))
	for t := range s.locals {
		types = append(types, t)
	}

	innerStart := startInner
	for outer := startOuter; outer < s.cfg.InterTypeIterations; outer++ {
		for inner := innerStart; inner < s.cfg.IntraIterations; inner++ {
			if s.store != nil {
				if err := s.checkpointAll(types, outer, inner); err != nil {
					return err
				}
			}

			t := float64(outer*s.cfg.IntraIterations+inner) * s.cfg.Dt / float64(s.cfg.IntraIterations)

			if err := runBounded(types, s.cfg.MaxWorkers, func(typ string) error {
				c := s.locals[typ]
				if err := c.Perturb(t, s.cfg.SaturationEnabled, s.cfg.SaturationLimit); err != nil {
					return ErrAgentFailed(typ, err)
				}
				if s.output != nil {
					if err := s.output.Record(typ, c, outer, inner, s.cfg.IntraIterations, s.cfg.Dt); err != nil {
						return ErrAgentFailed(typ, err)
					}
				}
				return nil
			}); err != nil {
				return err
			}

			if err := runBounded(types, s.cfg.MaxWorkers, func(typ string) error {
				if err := s.locals[typ].UpdateInput(s.cfg.ConserveInitialNorm); err != nil {
					return ErrAgentFailed(typ, err)
				}
				return nil
			}); err != nil {
				return err
			}
		}
		innerStart = 0

		if s.engine != nil {
			if err := s.engine.Run(outer, s.cfg.Dt, s.locals, s.cfg.ResetVirtualOutputs); err != nil {
				return err
			}
		} else if s.cfg.ResetVirtualOutputs {
			for _, c := range s.locals {
				c.ResetVirtualOutputs()
			}
		}
	}

	if s.output != nil {
		return s.output.Flush()
	}
	return nil
}

func (s *Scheduler) checkpointAll(types []string, outer, inner int) error {
	for _, typ := range types {
		if err := s.store.Save(typ, outer, inner, s.locals[typ]); err != nil {
			return err
		}
	}
	return nil
}
