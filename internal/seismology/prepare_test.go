package seismology

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skywatch/cosmoscan/internal/numeric"
)

func TestPrepareLightCurveReplacesOutliers(t *testing.T) {
	// One 1.0 excursion on a flat curve is far beyond 5 sigma; after
	// replacement the series is constant and normalizes to all zeros.
	flux := make([]float64, 100)
	for i := range flux {
		flux[i] = 1
	}
	flux[50] = 2

	prepared := prepareLightCurve(flux)
	for i, v := range prepared {
		assert.Zero(t, v, "index %d", i)
	}
}

func TestPrepareLightCurveStandardizes(t *testing.T) {
	flux := make([]float64, 500)
	for i := range flux {
		flux[i] = 1 + 0.001*float64(i) + 0.01*math.Sin(2*math.Pi*float64(i)/10)
	}

	prepared := prepareLightCurve(flux)
	assert.Len(t, prepared, len(flux))
	assert.InDelta(t, 0.0, numeric.Mean(prepared), 1e-9)
	assert.InDelta(t, 1.0, numeric.Std(prepared), 1e-9)
}

func TestPrepareLightCurveDoesNotMutateInput(t *testing.T) {
	flux := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	before := append([]float64(nil), flux...)

	prepareLightCurve(flux)
	assert.Equal(t, before, flux)
}
