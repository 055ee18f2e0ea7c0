package pattern

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNarrowLineScoreSingleBinSpike(t *testing.T) {
	power := make([]float64, 100)
	for i := range power {
		power[i] = 1
	}
	power[50] = 20

	assert.InDelta(t, 1.0, narrowLineScore(power), 1e-12)
}

func TestNarrowLineScoreBroadPeak(t *testing.T) {
	power := make([]float64, 200)
	for i := range power {
		d := float64(i - 100)
		power[i] = 1 + 20*math.Exp(-d*d/(2*100))
	}

	// FWHM of a sigma-10 Gaussian is about 24 bins, far too wide.
	assert.Zero(t, narrowLineScore(power))
}

func TestNarrowLineScoreFlatSpectrum(t *testing.T) {
	power := []float64{1, 1, 1, 1, 1, 1}
	assert.Zero(t, narrowLineScore(power))
}

func TestDetectModulationAMSignal(t *testing.T) {
	n := 1024
	data := make([]float64, n)
	for i := range data {
		envelope := 1 + 0.8*math.Sin(2*math.Pi*4*float64(i)/float64(n))
		data[i] = envelope * math.Cos(2*math.Pi*128*float64(i)/float64(n))
	}

	result := detectModulation(data)
	assert.True(t, result.HasAM)
	assert.InDelta(t, 0.8/math.Sqrt2, result.AmplitudeModulationIndex, 0.05)
}

func TestDetectModulationPureCarrier(t *testing.T) {
	n := 1024
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Cos(2 * math.Pi * 128 * float64(i) / float64(n))
	}

	result := detectModulation(data)
	assert.False(t, result.HasAM)
	assert.False(t, result.HasFM)
}

func TestAnalyzeAutocorrelationPeriodicSignal(t *testing.T) {
	data := make([]float64, 400)
	for i := range data {
		data[i] = math.Cos(2 * math.Pi * float64(i) / 20)
	}

	result := analyzeAutocorrelation(data)
	assert.True(t, result.HasPeriodicity)
	assert.Greater(t, result.MaxAutocorr, 0.9)
	assert.GreaterOrEqual(t, result.NSignificantPeaks, 1)
	assert.LessOrEqual(t, len(result.Autocorrelation), 100)
	assert.InDelta(t, 1.0, result.Autocorrelation[0], 1e-12)
}

func TestSpectralFeaturesCarrierCentroid(t *testing.T) {
	n := 2048
	sampleRate := 1000.0
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 250 * float64(i) / sampleRate)
	}

	d := New()
	result := d.spectralFeatures(data, sampleRate)

	// All power sits at 250 Hz, so both centroid and rolloff track it.
	assert.InDelta(t, 250, result.SpectralCentroidMean, 15)
	assert.InDelta(t, 250, result.SpectralRolloffMean, 15)
	assert.True(t, result.HasNarrowLines)
}
