package seismology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateStellarParametersSolarIdentity(t *testing.T) {
	params := estimateStellarParameters(SolarNuMax, SolarDeltaNu)

	assert.InDelta(t, 1.0, params.MassSolar, 1e-12)
	assert.InDelta(t, 1.0, params.RadiusSolar, 1e-12)
	assert.InDelta(t, 4.437, params.LogG, 1e-12)
	assert.InDelta(t, 1.0, params.DensitySolar, 1e-12)
	assert.InDelta(t, 5.0, params.AgeGyr, 1e-9)
	assert.Equal(t, 5777, params.TeffK)
	assert.Equal(t, "Main Sequence", params.EvolutionaryStage)
}

func TestEstimateStellarParametersTeffBranches(t *testing.T) {
	cool := estimateStellarParameters(1000, 60)
	assert.Equal(t, 5777-(3090-1000), cool.TeffK)

	hot := estimateStellarParameters(3490, 140)
	assert.Equal(t, 5777+200, hot.TeffK)
}

func TestClassifyEvolutionaryStage(t *testing.T) {
	tests := []struct {
		logG float64
		want string
	}{
		{4.5, "Main Sequence"},
		{3.8, "Subgiant"},
		{3.0, "Red Giant Branch"},
		{2.0, "Red Clump / Asymptotic Giant Branch"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyEvolutionaryStage(tt.logG), "logG=%v", tt.logG)
	}
}

func TestEstimateStellarParametersRedGiant(t *testing.T) {
	// A red giant has low nu_max and delta_nu, large radius, low density.
	params := estimateStellarParameters(30, 4)

	assert.Greater(t, params.RadiusSolar, 5.0)
	assert.Less(t, params.DensitySolar, 0.01)
	assert.Less(t, params.LogG, 3.0)
}
