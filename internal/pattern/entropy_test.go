package pattern

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skywatch/cosmoscan/internal/numeric"
)

func TestAnalyzeEntropyConstantSignal(t *testing.T) {
	data := make([]float64, 200)
	for i := range data {
		data[i] = 7
	}

	result := analyzeEntropy(data)
	assert.Zero(t, result.ShannonEntropy)
	assert.Zero(t, result.NormalizedEntropy)
	assert.InDelta(t, math.Log2(20), result.MaxEntropy, 1e-12)
	assert.Equal(t, "Highly structured", result.Interpretation)
}

func TestAnalyzeEntropyUniformSignal(t *testing.T) {
	data := numeric.Linspace(0, 1, 1000)

	result := analyzeEntropy(data)
	// Shannon entropy in nats approaches ln(100) for a uniform fill of
	// 100 bins, which normalizes to ln(2) against the log2 maximum.
	assert.InDelta(t, math.Log(100), result.ShannonEntropy, 0.05)
	assert.InDelta(t, math.Ln2, result.NormalizedEntropy, 0.02)
	assert.Equal(t, "Some structure", result.Interpretation)
}

func TestHistogram(t *testing.T) {
	counts := histogram([]float64{0, 0.5, 1}, 2)
	assert.Equal(t, []int{1, 2}, counts)

	constant := histogram([]float64{4, 4, 4}, 3)
	assert.Equal(t, []int{3, 0, 0}, constant)

	assert.Nil(t, histogram([]float64{1, 2}, 0))
}
