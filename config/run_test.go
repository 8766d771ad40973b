package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRun() *Run {
	r := &Run{
		Types:               []string{"A", "B"},
		GraphFiles:          map[string]string{"A": "a.tsv", "B": "b.tsv"},
		InterTypeIterations: 2,
	}
	r.SetDefault()
	return r
}

func TestSetDefault_FillsExpectedFields(t *testing.T) {
	r := validRun()
	assert.Equal(t, "type", r.Granularity)
	assert.Equal(t, "neighbors", r.PropagationKind)
	assert.Equal(t, 1, r.IntraIterations)
	assert.Equal(t, 1.0, r.Dt)
	assert.Equal(t, "single", r.QuantisationMode)
	assert.Equal(t, "singleIteration", r.OutputMode)
	assert.Equal(t, 1, r.NumWorkers)
}

func TestValidate_AcceptsDefaultedRun(t *testing.T) {
	r := validRun()
	assert.NoError(t, r.Validate())
}

func TestValidate_RejectsDuplicateTypes(t *testing.T) {
	r := validRun()
	r.Types = []string{"A", "A"}
	r.GraphFiles["A"] = "a.tsv"
	assert.Error(t, r.Validate())
}

func TestValidate_RejectsNonPositiveCounts(t *testing.T) {
	r := validRun()
	r.IntraIterations = 0
	assert.Error(t, r.Validate())

	r = validRun()
	r.InterTypeIterations = -1
	assert.Error(t, r.Validate())

	r = validRun()
	r.Dt = 0
	assert.Error(t, r.Validate())
}

func TestValidate_RejectsSaturationAndConserveInitialNormTogether(t *testing.T) {
	r := validRun()
	r.SaturationEnabled = true
	r.ConserveInitialNorm = true
	assert.ErrorIs(t, r.Validate(), ErrSaturationConflict)
}

func TestValidate_RejectsSaturationLimitWithoutSaturation(t *testing.T) {
	r := validRun()
	r.SaturationLimit = 5
	assert.ErrorIs(t, r.Validate(), ErrSaturationLimitWithoutSaturation)
}

func TestValidate_RejectsMissingGraphFile(t *testing.T) {
	r := validRun()
	delete(r.GraphFiles, "B")
	assert.Error(t, r.Validate())
}

func TestValidate_RejectsUnknownEnumFields(t *testing.T) {
	r := validRun()
	r.Granularity = "node"
	assert.Error(t, r.Validate())

	r = validRun()
	r.PropagationKind = "bogus"
	assert.Error(t, r.Validate())

	r = validRun()
	r.QuantisationMode = "both"
	assert.Error(t, r.Validate())

	r = validRun()
	r.OutputMode = "csv"
	assert.Error(t, r.Validate())
}

func TestLoad_MissingFileReturnsError(t *testing.T) {
	_, err := Load("/nonexistent/path/to/run.yaml")
	require.Error(t, err)
}
