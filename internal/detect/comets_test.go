package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skywatch/cosmoscan/internal/lightcurve"
	"github.com/skywatch/cosmoscan/models"
)

func outburstCurve(seed int64, days ...float64) *lightcurve.Curve {
	gen := lightcurve.NewSynthetic(seed)
	curve := gen.Flat(3000, 30)
	for _, day := range days {
		gen.InjectOutburst(curve, day, 2, 0.2)
	}
	gen.AddNoise(curve, 0.0005)
	return curve
}

func TestDetectCometsFindsOutburst(t *testing.T) {
	curve := outburstCurve(1, 20)

	d := New()
	comets, err := d.DetectComets(curve.Time, curve.Flux, nil)
	require.NoError(t, err)
	require.Len(t, comets, 1)

	event := comets[0]
	assert.InDelta(t, 20.0, event.DetectionTime, 3.0)
	assert.Equal(t, "outburst", event.ActivityType)
	assert.Greater(t, event.BrightnessIncrease, 0.05)
	assert.Greater(t, event.Confidence, 0.5)
	assert.False(t, event.HasMotion)
}

func TestDetectCometsDeduplicatesCloseOutbursts(t *testing.T) {
	close := outburstCurve(2, 10, 12)
	d := New()
	comets, err := d.DetectComets(close.Time, close.Flux, nil)
	require.NoError(t, err)
	assert.Len(t, comets, 1)

	far := outburstCurve(3, 8, 22)
	comets, err = d.DetectComets(far.Time, far.Flux, nil)
	require.NoError(t, err)
	assert.Len(t, comets, 2)
}

func TestDetectCometsFlagsMotion(t *testing.T) {
	curve := outburstCurve(4, 15)
	positions := make([]models.SkyPosition, curve.Len())
	for i, ti := range curve.Time {
		positions[i] = models.SkyPosition{RA: 120 + 0.05*ti, Dec: -15}
	}

	d := New()
	comets, err := d.DetectComets(curve.Time, curve.Flux, positions)
	require.NoError(t, err)
	require.NotEmpty(t, comets)

	event := comets[0]
	assert.True(t, event.HasMotion)
	assert.True(t, event.Moving)
	assert.InDelta(t, 0.05, event.VelocityDegDay, 0.02)
}

func TestDetectCometsQuietCurveIsEmpty(t *testing.T) {
	gen := lightcurve.NewSynthetic(5)
	curve := gen.Flat(2000, 30)
	gen.AddNoise(curve, 0.0005)

	d := New()
	comets, err := d.DetectComets(curve.Time, curve.Flux, nil)
	require.NoError(t, err)
	assert.Empty(t, comets)
}

func TestDedupCometsInvariant(t *testing.T) {
	raw := []models.CometEvent{
		{DetectionTime: 21, Confidence: 0.4},
		{DetectionTime: 0, Confidence: 0.9},
		{DetectionTime: 3, Confidence: 0.8},
		{DetectionTime: 7, Confidence: 0.7},
		{DetectionTime: 20, Confidence: 0.6},
	}

	d := New()
	kept := d.dedupComets(raw)
	require.Len(t, kept, 3)

	// Pairwise gaps exceed the configured minimum.
	for i := 1; i < len(kept); i++ {
		assert.Greater(t, kept[i].DetectionTime-kept[i-1].DetectionTime, d.thresholds.CometDedupGapDays)
	}

	// Every kept event is one of the raw candidates, fields untouched.
	for _, k := range kept {
		assert.Contains(t, raw, k)
	}

	times := []float64{kept[0].DetectionTime, kept[1].DetectionTime, kept[2].DetectionTime}
	assert.Equal(t, []float64{0, 7, 20}, times)
}
