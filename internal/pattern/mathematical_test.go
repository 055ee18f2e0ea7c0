package pattern

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRepeatingSequencesMotif(t *testing.T) {
	motif := []float64{1, 2, 3, 4, 5}
	var data []float64
	for i := 0; i < 6; i++ {
		data = append(data, motif...)
	}

	result := findRepeatingSequences(data, 3)
	assert.True(t, result.HasRepetition)
	assert.GreaterOrEqual(t, result.MaxRepetitions, 2)
	assert.GreaterOrEqual(t, result.SequenceLength, 3)
}

func TestFindRepeatingSequencesNoRepeats(t *testing.T) {
	data := make([]float64, 20)
	for i := range data {
		data[i] = float64(i * i)
	}

	result := findRepeatingSequences(data, 3)
	assert.False(t, result.HasRepetition)
	assert.Zero(t, result.MaxRepetitions)
}

func TestPrimePattern(t *testing.T) {
	result := primePattern([]float64{2, 3, 5, 7, 11, 4, 6, 8, 9, 10})
	require.NotNil(t, result)
	assert.InDelta(t, 0.5, result.Ratio, 1e-12)
	assert.True(t, result.Significant)

	assert.Nil(t, primePattern([]float64{1.5, 2.7, 3.3, 4.8}))
}

func TestIsPrime(t *testing.T) {
	primes := []int{2, 3, 5, 7, 11, 13, 97}
	for _, p := range primes {
		assert.True(t, isPrime(p), "%d", p)
	}
	composites := []int{0, 1, 4, 9, 15, 91}
	for _, c := range composites {
		assert.False(t, isPrime(c), "%d", c)
	}
}

func TestSpecialRatiosPiSteps(t *testing.T) {
	data := make([]float64, 15)
	for i := range data {
		data[i] = float64(i) * math.Pi
	}

	result := specialRatios(data)
	require.NotNil(t, result)
	assert.InDelta(t, 1.0, result.PiFrequency, 1e-12)
	assert.Zero(t, result.GoldenRatioFrequency)
	assert.True(t, result.Significant)
}

func TestSpecialRatiosTooFewDifferences(t *testing.T) {
	assert.Nil(t, specialRatios([]float64{1, 2, 3}))
}

func TestIsIntegerLike(t *testing.T) {
	assert.True(t, isIntegerLike([]float64{1, 2.05, 3, -4}))
	assert.False(t, isIntegerLike([]float64{1, 2.5, 3}))
}
