package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skywatch/cosmoscan/internal/lightcurve"
)

func TestDetectTransitingPlanetsRecoversInjectedTransit(t *testing.T) {
	gen := lightcurve.NewSynthetic(1)
	curve := gen.Flat(5000, 30)
	gen.InjectTransit(curve, 5.0, 0.02, 0.5)

	d := New()
	planets, err := d.DetectTransitingPlanets(curve.Time, curve.Flux, 0.5, 50)
	require.NoError(t, err)
	require.NotEmpty(t, planets)

	top := planets[0]
	assert.InDelta(t, 5.0, top.PeriodDays, 0.05)
	assert.InDelta(t, 0.02, top.TransitDepth, 0.002)
	assert.InDelta(t, 12.0, top.TransitDurationHours, 2.5)
	assert.Greater(t, top.Confidence, 90.0)
}

func TestDetectTransitingPlanetsNoisyScenario(t *testing.T) {
	// 30 days at 5000 samples, a 1% dip of 0.1 days every 5 days, 0.1%
	// Gaussian noise.
	gen := lightcurve.NewSynthetic(42)
	curve := gen.Flat(5000, 30)
	gen.InjectTransit(curve, 5.0, 0.01, 0.1)
	gen.AddNoise(curve, 0.001)

	d := New()
	planets, err := d.DetectTransitingPlanets(curve.Time, curve.Flux, 0.5, 50)
	require.NoError(t, err)
	require.NotEmpty(t, planets)

	top := planets[0]
	assert.Greater(t, top.PeriodDays, 4.9)
	assert.Less(t, top.PeriodDays, 5.1)
	assert.Greater(t, top.TransitDepth, 0.008)
	assert.Less(t, top.TransitDepth, 0.012)
}

func TestDetectTransitingPlanetsPureNoiseFindsNothing(t *testing.T) {
	gen := lightcurve.NewSynthetic(7)
	curve := gen.Flat(5000, 30)
	gen.AddNoise(curve, 0.001)

	d := New()
	planets, err := d.DetectTransitingPlanets(curve.Time, curve.Flux, 0.5, 50)
	require.NoError(t, err)
	assert.Empty(t, planets)
}

func TestDetectTransitingPlanetsIsPure(t *testing.T) {
	gen := lightcurve.NewSynthetic(3)
	curve := gen.Flat(3000, 30)
	gen.InjectTransit(curve, 4.0, 0.02, 0.4)
	gen.AddNoise(curve, 0.0005)

	timeCopy := append([]float64(nil), curve.Time...)
	fluxCopy := append([]float64(nil), curve.Flux...)

	d := New()
	first, err := d.DetectTransitingPlanets(curve.Time, curve.Flux, 0.5, 50)
	require.NoError(t, err)
	second, err := d.DetectTransitingPlanets(curve.Time, curve.Flux, 0.5, 50)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, timeCopy, curve.Time)
	assert.Equal(t, fluxCopy, curve.Flux)
}

func TestDetectTransitingPlanetsRanksFundamentalFirst(t *testing.T) {
	// Harmonic aliases (P/2, P/3, ...) may appear, but the fundamental
	// must lead.
	gen := lightcurve.NewSynthetic(5)
	curve := gen.Flat(5000, 40)
	gen.InjectTransit(curve, 8.0, 0.015, 0.4)

	d := New()
	planets, err := d.DetectTransitingPlanets(curve.Time, curve.Flux, 0.5, 50)
	require.NoError(t, err)
	require.NotEmpty(t, planets)
	assert.InDelta(t, 8.0, planets[0].PeriodDays, 0.1)
}

func TestDetectTransitingPlanetsInputErrors(t *testing.T) {
	d := New()

	_, err := d.DetectTransitingPlanets([]float64{1, 2}, []float64{1}, 0.5, 50)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = d.DetectTransitingPlanets([]float64{1}, []float64{1}, 0.5, 50)
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

func TestPhaseBinMedians(t *testing.T) {
	phase := []float64{0.05, 0.1, 0.3, 0.55, 0.95}
	flux := []float64{1, 2, 3, 4, 5}
	binned := phaseBinMedians(phase, flux, 2)
	require.Len(t, binned, 2)
	assert.Equal(t, 2.0, binned[0]) // median of {1,2,3}
	assert.Equal(t, 4.5, binned[1]) // median of {4,5}
}

func TestTransitDepthOnBinnedProfile(t *testing.T) {
	binned := make([]float64, 100)
	for i := range binned {
		binned[i] = 1.0
	}
	binned[3] = 0.99
	binned[4] = 0.99

	depth := transitDepth(binned)
	assert.InDelta(t, 0.01, depth, 1e-9)

	frac := transitDurationFraction(binned, depth)
	assert.InDelta(t, 0.02, frac, 1e-9)
}
