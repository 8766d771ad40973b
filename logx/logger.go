package logx

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Level is the logging verbosity: either every message is printed (All) or
// none is (None). spec.md §6 names exactly these two toggles.
type Level int

const (
	All Level = iota
	None
)

// Logger is the explicit handle threaded through the scheduler, the scaling
// registry, the original propagation operator and the agents. A zero-value
// Logger is not usable; use New.
type Logger struct {
	level        Level
	rank         int // only rank 0 prints, mirroring gofem's mpi.Rank()==0 gate
	warnAsError  bool
}

// New returns a Logger at the given level and rank. Only rank 0 ever prints,
// matching gofem's "only the root process reports" convention
// (fem/solver.go, main.go).
func New(level Level, rank int) *Logger {
	return &Logger{level: level, rank: rank}
}

// SetWarnAsError sets whether Warn promotes to a fatal error (spec.md §6/§7).
func (l *Logger) SetWarnAsError(v bool) { l.warnAsError = v }

func (l *Logger) enabled() bool { return l.level == All && l.rank == 0 }

// Info prints an informational message, gated by verbosity and rank.
func (l *Logger) Info(format string, args ...interface{}) {
	if !l.enabled() {
		return
	}
	io.Pf(format+"\n", args...)
}

// Warn prints a warning, gated by verbosity and rank, unless WarnAsError is
// set, in which case it returns a fatal error instead — the caller must
// check the returned error and tear down the run (spec.md §7).
func (l *Logger) Warn(format string, args ...interface{}) error {
	if l.warnAsError {
		return chk.Err("warning promoted to error: "+format, args...)
	}
	if l.enabled() {
		io.Pfyel("WARNING: "+format+"\n", args...)
	}
	return nil
}

// Error prints a fatal diagnostic. It does not panic; the caller (the
// scheduler or cmd/pertsim) decides whether to tear down the run.
func (l *Logger) Error(format string, args ...interface{}) {
	if l.rank == 0 {
		io.Pfred("ERROR: "+format+"\n", args...)
	}
}
