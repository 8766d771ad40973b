package scheduler

import "github.com/cpmech/gosl/chk"

// ErrAgentFailed reports a local agent's perturbation or update-input step
// returning an error; this is fatal at the scheduler level (spec.md §7).
func ErrAgentFailed(typ string, cause error) error {
	return chk.Err("scheduler: agent %q failed: %v", typ, cause)
}

// ErrInconsistentCheckpoints reports that this worker's local agents
// recovered checkpoints naming different (outer, inner) tuples.
func ErrInconsistentCheckpoints(typ string, outer, inner, wantOuter, wantInner int) error {
	return chk.Err("scheduler: agent %q checkpoint at (%d,%d) does not match (%d,%d)", typ, outer, inner, wantOuter, wantInner)
}
