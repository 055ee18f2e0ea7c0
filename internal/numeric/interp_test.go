package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinspace(t *testing.T) {
	out := Linspace(0, 1, 5)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, out)

	assert.Equal(t, []float64{3}, Linspace(3, 9, 1))
	assert.Nil(t, Linspace(0, 1, 0))
}

func TestArange(t *testing.T) {
	out := Arange(0, 1, 0.25)
	require.Len(t, out, 4)
	assert.InDelta(t, 0.0, out[0], 1e-12)
	assert.InDelta(t, 0.75, out[3], 1e-12)

	assert.Nil(t, Arange(1, 0, 0.5))
	assert.Nil(t, Arange(0, 1, 0))
}

func TestInterp(t *testing.T) {
	xp := []float64{0, 1, 2}
	fp := []float64{0, 10, 0}

	out := Interp([]float64{0.5, 1.5}, xp, fp)
	assert.InDelta(t, 5.0, out[0], 1e-12)
	assert.InDelta(t, 5.0, out[1], 1e-12)

	// Queries beyond the range clamp to the boundary values.
	out = Interp([]float64{-1, 3}, xp, fp)
	assert.Equal(t, 0.0, out[0])
	assert.Equal(t, 0.0, out[1])

	out = Interp([]float64{1}, xp, fp)
	assert.InDelta(t, 10.0, out[0], 1e-12)
}
