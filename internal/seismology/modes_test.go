package seismology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echelleSpectrum builds a flat unit-power spectrum on a 1 uHz grid with
// single-bin spikes of power 10 at the given frequencies.
func echelleSpectrum(lo, hi float64, spikes []float64) (freqs, power []float64) {
	for f := lo; f <= hi; f++ {
		freqs = append(freqs, f)
		power = append(power, 1)
	}
	for _, s := range spikes {
		power[int(s-lo)] = 10
	}
	return freqs, power
}

func TestIdentifyModesEchellePattern(t *testing.T) {
	const (
		nuMax   = 3000.0
		deltaNu = 135.1
	)
	// Radial modes at nu_max + k*delta_nu for k = -2..2, plus one dipole
	// halfway between orders 0 and 1.
	spikes := []float64{2730, 2865, 3000, 3068, 3135, 3270}
	freqs, power := echelleSpectrum(2300, 3700, spikes)

	modes := identifyModes(freqs, power, nuMax, deltaNu)
	require.Len(t, modes, len(spikes))

	wantOrders := []int{-2, -1, 0, 1, 1, 2}
	wantTypes := []string{
		"Radial (l=0)", "Radial (l=0)", "Radial (l=0)",
		"Dipole (l=1)", "Radial (l=0)", "Radial (l=0)",
	}
	for i, mode := range modes {
		assert.InDelta(t, spikes[i], mode.FrequencyUHz, 1e-9)
		assert.InDelta(t, 10.0, mode.Amplitude, 1e-9)
		assert.Equal(t, wantOrders[i], mode.ModeOrder, "mode %d", i)
		assert.Equal(t, wantTypes[i], mode.Type, "mode %d", i)
	}
}

func TestIdentifyModesDegenerateInputs(t *testing.T) {
	freqs, power := echelleSpectrum(2300, 3700, []float64{3000})

	assert.Empty(t, identifyModes(freqs, power, 3000, 0))
	// nu_max far outside the spectrum leaves no region to search.
	assert.Empty(t, identifyModes(freqs, power, 50000, 135.1))
}

func TestClassifyDegree(t *testing.T) {
	tests := []struct {
		offset float64
		want   int
	}{
		{0.0, 0},
		{0.1, 0},
		{-0.1, 0},
		{0.5, 1},
		{-0.45, 1},
		{0.3, 2},
		{0.25, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyDegree(tt.offset), "offset=%v", tt.offset)
	}
}

func TestModeTypeName(t *testing.T) {
	assert.Equal(t, "Radial (l=0)", modeTypeName(0))
	assert.Equal(t, "Quadrupole (l=2)", modeTypeName(2))
	assert.Equal(t, "l=5", modeTypeName(5))
}
