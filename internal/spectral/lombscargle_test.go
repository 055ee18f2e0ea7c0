package spectral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skywatch/cosmoscan/internal/numeric"
)

func unevenTimes(n int) []float64 {
	t := make([]float64, n)
	for i := range t {
		// Deterministic jitter keeps the sampling uneven.
		t[i] = float64(i)*0.01 + 0.002*math.Sin(float64(i)*1.7)
	}
	return t
}

func TestLombScargleSinusoidPeak(t *testing.T) {
	n := 500
	f0 := 5.0
	times := unevenTimes(n)
	y := make([]float64, n)
	for i, ti := range times {
		y[i] = math.Sin(2 * math.Pi * f0 * ti)
	}

	freqs, power, err := Periodogram(times, y, 1, 10, 901)
	require.NoError(t, err)
	require.Len(t, power, 901)

	peak := numeric.ArgMax(power)
	assert.InDelta(t, f0, freqs[peak], 0.05)

	// Horne-Baliunas normalization: a coherent sinusoid peaks near N/2.
	assert.InDelta(t, float64(n)/2, power[peak], 0.15*float64(n)/2)

	// The peak dominates the off-signal background.
	assert.Greater(t, power[peak], 50*numeric.Median(power))
}

func TestLombScargleErrors(t *testing.T) {
	_, err := LombScargle([]float64{1, 2}, []float64{1}, []float64{1})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = LombScargle([]float64{1}, []float64{1}, []float64{1})
	assert.ErrorIs(t, err, ErrTooFewPoints)

	_, _, err = Periodogram([]float64{1, 2}, []float64{1}, 0.1, 1, 10)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestLombScargleZeroFrequencySkipped(t *testing.T) {
	times := []float64{0, 1, 2, 3}
	y := []float64{1, -1, 1, -1}
	power, err := LombScargle(times, y, []float64{0, 0.5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, power[0])
	assert.Greater(t, power[1], 0.0)
}
