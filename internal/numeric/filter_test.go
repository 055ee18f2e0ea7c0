package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxcarSmoothConstant(t *testing.T) {
	values := make([]float64, 50)
	for i := range values {
		values[i] = 3
	}
	smooth := BoxcarSmooth(values, 5)
	// Interior samples of a constant series stay constant.
	for i := 5; i < 45; i++ {
		assert.InDelta(t, 3.0, smooth[i], 1e-12)
	}
}

func TestBoxcarSmoothAveragesSpike(t *testing.T) {
	values := make([]float64, 21)
	values[10] = 10
	smooth := BoxcarSmooth(values, 5)
	assert.InDelta(t, 2.0, smooth[10], 1e-12)
	assert.InDelta(t, 2.0, smooth[8], 1e-12)
	assert.InDelta(t, 0.0, smooth[5], 1e-12)
}

func TestSavitzkyGolayPreservesPolynomial(t *testing.T) {
	// A cubic is reproduced exactly by an order-3 filter, edges included.
	n := 40
	values := make([]float64, n)
	for i := range values {
		x := float64(i)
		values[i] = 0.5 + 0.3*x - 0.02*x*x + 0.001*x*x*x
	}

	out := SavitzkyGolay(values, 11, 3)
	require.Len(t, out, n)
	for i := range out {
		assert.InDelta(t, values[i], out[i], 1e-8, "sample %d", i)
	}
}

func TestSavitzkyGolaySmoothsNoise(t *testing.T) {
	// Alternating +-1 around a line must shrink towards the line.
	n := 60
	values := make([]float64, n)
	for i := range values {
		noise := 1.0
		if i%2 == 1 {
			noise = -1.0
		}
		values[i] = float64(i)*0.1 + noise
	}

	out := SavitzkyGolay(values, 15, 3)
	for i := 10; i < 50; i++ {
		assert.InDelta(t, float64(i)*0.1, out[i], 0.35, "sample %d", i)
	}
}

func TestSavitzkyGolayDegenerateWindow(t *testing.T) {
	values := []float64{1, 2, 3}
	out := SavitzkyGolay(values, 11, 3)
	assert.Equal(t, values, out)
}

func TestSolveLinear(t *testing.T) {
	a := [][]float64{
		{2, 1},
		{1, 3},
	}
	b := []float64{5, 10}
	x, ok := SolveLinear(a, b)
	require.True(t, ok)
	assert.InDelta(t, 1.0, x[0], 1e-12)
	assert.InDelta(t, 3.0, x[1], 1e-12)

	// Input must not be clobbered.
	assert.Equal(t, [][]float64{{2, 1}, {1, 3}}, a)
}

func TestSolveLinearSingular(t *testing.T) {
	a := [][]float64{
		{1, 2},
		{2, 4},
	}
	_, ok := SolveLinear(a, []float64{1, 2})
	assert.False(t, ok)
}
