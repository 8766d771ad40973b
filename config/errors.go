package config

import "github.com/cpmech/gosl/chk"

// ErrReadFile reports a failure reading the run configuration file itself.
func ErrReadFile(path string, cause error) error {
	return chk.Err("config: cannot read %q: %v", path, cause)
}

// ErrUnmarshal reports a YAML decode failure.
func ErrUnmarshal(path string, cause error) error {
	return chk.Err("config: cannot parse %q: %v", path, cause)
}

// ErrNonPositive reports a field that must be strictly positive.
func ErrNonPositive(field string, got float64) error {
	return chk.Err("config: %s must be positive, got %v", field, got)
}

// ErrDuplicateType reports the same type name listed twice.
func ErrDuplicateType(typ string) error {
	return chk.Err("config: duplicate type name %q", typ)
}

// ErrNoTypes reports an empty type list.
var ErrNoTypes = chk.Err("config: no agent types listed")

// ErrUnknownGranularity reports a granularity string outside {type, typeAndNode}.
func ErrUnknownGranularity(g string) error {
	return chk.Err("config: unknown granularity %q, want \"type\" or \"typeAndNode\"", g)
}

// ErrUnknownPropagationKind reports a propagationKind string outside the
// three known variants.
func ErrUnknownPropagationKind(k string) error {
	return chk.Err("config: unknown propagationKind %q, want \"original\", \"neighbors\", or \"custom\"", k)
}

// ErrUnknownQuantisationMode reports a quantisationMode string outside {single, multiple}.
func ErrUnknownQuantisationMode(m string) error {
	return chk.Err("config: unknown quantisationMode %q, want \"single\" or \"multiple\"", m)
}

// ErrUnknownOutputMode reports an outputMode string outside {singleIteration, iterationMatrix}.
func ErrUnknownOutputMode(m string) error {
	return chk.Err("config: unknown outputMode %q, want \"singleIteration\" or \"iterationMatrix\"", m)
}

// ErrSaturationConflict reports saturation and conserveInitialNorm both enabled.
var ErrSaturationConflict = chk.Err("config: saturation and conserveInitialNorm cannot both be enabled")

// ErrSaturationLimitWithoutSaturation reports a nonzero saturation limit
// supplied while saturation is disabled.
var ErrSaturationLimitWithoutSaturation = chk.Err("config: saturationLimit set but saturationEnabled is false")

// ErrMissingGraphFile reports a type with no graph file entry.
func ErrMissingGraphFile(typ string) error {
	return chk.Err("config: no graph file configured for type %q", typ)
}
