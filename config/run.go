package config

import (
	"github.com/cpmech/gosl/utl"
	"gopkg.in/yaml.v3"
)

// Run is the top-level run configuration, loaded from a YAML file and
// shared read-only across the scheduler, partition manager, and exchange
// engine once validated (spec.md §5, "Shared resources").
type Run struct {
	Types      []string          `yaml:"types"`
	NumWorkers int               `yaml:"numWorkers"`

	GraphFiles          map[string]string `yaml:"graphFiles"`
	InitialValuesDir    string            `yaml:"initialValuesDir"`
	InitialValuesFiles  map[string]string `yaml:"initialValuesFiles"`
	ContactFile         string            `yaml:"contactFile"`
	// ParameterFiles maps a scaling role name ("dissipation" or
	// "conservation") to the per-node parameter file for that role
	// (spec.md §4.3/§6). Propagation has no entry here: its ω is a shared
	// per-type scalar only (see DESIGN.md, Module D).
	ParameterFiles map[string]string `yaml:"parameterFiles"`

	Granularity     string `yaml:"granularity"`     // "type" | "typeAndNode"
	PropagationKind string `yaml:"propagationKind"` // "original" | "neighbors" | "custom"
	IncludeSelf     bool   `yaml:"includeSelf"`

	IntraIterations     int     `yaml:"intraIterations"`
	InterTypeIterations int     `yaml:"interTypeIterations"`
	Dt                  float64 `yaml:"dt"`

	SaturationEnabled   bool    `yaml:"saturationEnabled"`
	SaturationLimit     float64 `yaml:"saturationLimit"`
	ConserveInitialNorm bool    `yaml:"conserveInitialNorm"`

	QuantisationMode      string `yaml:"quantisationMode"` // "single" | "multiple"
	SameTypeCommunication bool   `yaml:"sameTypeCommunication"`
	ResetVirtualOutputs   bool   `yaml:"resetVirtualOutputs"`

	OutputMode            string `yaml:"outputMode"` // "singleIteration" | "iterationMatrix"
	OutputDir             string `yaml:"outputDir"`
	CheckpointDir         string `yaml:"checkpointDir"`
	AugmentedGraphDumpDir string `yaml:"augmentedGraphDumpDir"`

	// ResumeCheckpoint opts into restoring (outer, inner) from CheckpointDir
	// (spec.md Scenario S5, "Restart with resumeCheckpoint=true"). When
	// false, cmd/pertsim removes every checkpoint file already on disk for
	// its local types, and the run starts fresh from (0, 0).
	ResumeCheckpoint bool `yaml:"resumeCheckpoint"`

	Verbose       bool `yaml:"verbose"`
	WarnAsError   bool `yaml:"warnAsError"`
	AllowParallel bool `yaml:"allowParallel"`
}

// SetDefault fills in the defaults a freshly zero-valued Run would not
// otherwise have, mirroring gofem's inp.Data.SetDefault.
func (r *Run) SetDefault() {
	if r.Granularity == "" {
		r.Granularity = "type"
	}
	if r.PropagationKind == "" {
		r.PropagationKind = "neighbors"
	}
	if r.IntraIterations == 0 {
		r.IntraIterations = 1
	}
	if r.Dt == 0 {
		r.Dt = 1
	}
	if r.QuantisationMode == "" {
		r.QuantisationMode = "single"
	}
	if r.OutputMode == "" {
		r.OutputMode = "singleIteration"
	}
	if r.OutputDir == "" {
		r.OutputDir = "results"
	}
	if r.CheckpointDir == "" {
		r.CheckpointDir = "checkpoints"
	}
	if r.NumWorkers == 0 {
		r.NumWorkers = 1
	}
}

// Load reads and parses a YAML run configuration file, applying defaults
// before validating it.
func Load(path string) (*Run, error) {
	b, err := utl.ReadFile(path)
	if err != nil {
		return nil, ErrReadFile(path, err)
	}
	r := new(Run)
	if err := yaml.Unmarshal(b, r); err != nil {
		return nil, ErrUnmarshal(path, err)
	}
	r.SetDefault()
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate enforces the conflicting-flag and input-validation rules of
// spec.md §7. It does not check file existence — that is deferred to the
// ingest package, which names the offending file directly.
func (r *Run) Validate() error {
	if len(r.Types) == 0 {
		return ErrNoTypes
	}
	seen := make(map[string]bool, len(r.Types))
	for _, t := range r.Types {
		if seen[t] {
			return ErrDuplicateType(t)
		}
		seen[t] = true
	}
	if r.NumWorkers <= 0 {
		return ErrNonPositive("numWorkers", float64(r.NumWorkers))
	}
	if r.IntraIterations <= 0 {
		return ErrNonPositive("intraIterations", float64(r.IntraIterations))
	}
	if r.InterTypeIterations <= 0 {
		return ErrNonPositive("interTypeIterations", float64(r.InterTypeIterations))
	}
	if r.Dt <= 0 {
		return ErrNonPositive("dt", r.Dt)
	}
	switch r.Granularity {
	case "type", "typeAndNode":
	default:
		return ErrUnknownGranularity(r.Granularity)
	}
	switch r.PropagationKind {
	case "original", "neighbors", "custom":
	default:
		return ErrUnknownPropagationKind(r.PropagationKind)
	}
	switch r.QuantisationMode {
	case "single", "multiple":
	default:
		return ErrUnknownQuantisationMode(r.QuantisationMode)
	}
	switch r.OutputMode {
	case "singleIteration", "iterationMatrix":
	default:
		return ErrUnknownOutputMode(r.OutputMode)
	}
	if r.SaturationEnabled && r.ConserveInitialNorm {
		return ErrSaturationConflict
	}
	if !r.SaturationEnabled && r.SaturationLimit != 0 {
		return ErrSaturationLimitWithoutSaturation
	}
	for _, t := range r.Types {
		if _, ok := r.GraphFiles[t]; !ok {
			return ErrMissingGraphFile(t)
		}
	}
	return nil
}
