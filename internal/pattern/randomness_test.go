package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunsTestAlternatingSeries(t *testing.T) {
	data := make([]float64, 100)
	for i := range data {
		data[i] = float64(i % 2)
	}

	result := runsTest(data, DefaultSignificanceLevel)
	require.NotNil(t, result)
	assert.False(t, result.IsRandom)
	assert.Greater(t, result.ZScore, 5.0)
	assert.Less(t, result.PValue, 1e-6)
}

func TestRunsTestTwoBlocks(t *testing.T) {
	data := make([]float64, 100)
	for i := 50; i < 100; i++ {
		data[i] = 1
	}

	result := runsTest(data, DefaultSignificanceLevel)
	require.NotNil(t, result)
	assert.False(t, result.IsRandom)
	assert.Less(t, result.ZScore, -5.0)
}

func TestRunsTestBalancedRuns(t *testing.T) {
	// Pairs {1,1,0,0} give 50 runs against an expectation of 51, well
	// within random fluctuation.
	data := make([]float64, 100)
	for i := range data {
		if i%4 < 2 {
			data[i] = 1
		}
	}

	result := runsTest(data, DefaultSignificanceLevel)
	require.NotNil(t, result)
	assert.True(t, result.IsRandom)
	assert.InDelta(t, 0.0, result.ZScore, 0.5)
}

func TestRunsTestConstantSeries(t *testing.T) {
	data := []float64{3, 3, 3, 3, 3, 3}
	assert.Nil(t, runsTest(data, DefaultSignificanceLevel))
}

func TestTestRandomnessMoments(t *testing.T) {
	data := make([]float64, 200)
	for i := range data {
		data[i] = 1
		if i%2 == 0 {
			data[i] = -1
		}
	}

	d := New()
	result := d.testRandomness(data)

	assert.InDelta(t, 0.0, result.Distribution.Mean, 1e-12)
	assert.InDelta(t, 1.0, result.Distribution.Std, 1e-12)
	assert.InDelta(t, 0.0, result.Distribution.Skewness, 1e-12)
	assert.InDelta(t, -2.0, result.Distribution.Kurtosis, 1e-9)

	// Lag-1 autocorrelation of an alternating series is -1.
	assert.InDelta(t, 1.0, result.AutocorrelationTest.MaxAutocorr, 0.05)
	assert.False(t, result.AutocorrelationTest.IsRandom)

	require.NotNil(t, result.NormalityTest)
	assert.False(t, result.NormalityTest.IsNormal)
}
