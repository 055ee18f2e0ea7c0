package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPeaksBasic(t *testing.T) {
	values := []float64{0, 2, 0, 3, 0, 1, 0}
	peaks := FindPeaks(values, PeakOptions{})
	assert.Equal(t, []int{1, 3, 5}, peaks)
}

func TestFindPeaksHeightFilter(t *testing.T) {
	values := []float64{0, 2, 0, 3, 0, 1, 0}
	peaks := FindPeaks(values, PeakOptions{Height: 2, HasHeight: true})
	assert.Equal(t, []int{1, 3}, peaks)
}

func TestFindPeaksPlateauMiddle(t *testing.T) {
	values := []float64{0, 1, 1, 1, 0}
	peaks := FindPeaks(values, PeakOptions{})
	assert.Equal(t, []int{2}, peaks)
}

func TestFindPeaksDistanceKeepsTallest(t *testing.T) {
	// Two close peaks; the taller one at index 4 must win.
	values := []float64{0, 3, 0, 0, 5, 0, 0, 0, 0, 2, 0}
	peaks := FindPeaks(values, PeakOptions{Distance: 4})
	assert.Equal(t, []int{4, 9}, peaks)
}

func TestFindPeaksEndpointsExcluded(t *testing.T) {
	values := []float64{5, 1, 2, 1, 5}
	peaks := FindPeaks(values, PeakOptions{})
	assert.Equal(t, []int{2}, peaks)
}

func TestProminences(t *testing.T) {
	// Peak of height 4 with both bases at 0; prominence 4.
	values := []float64{0, 2, 1, 4, 1, 2, 0}
	peaks := []int{3}
	proms, _, _ := Prominences(values, peaks)
	require.Len(t, proms, 1)
	assert.InDelta(t, 4.0, proms[0], 1e-12)

	peaks = FindPeaks(values, PeakOptions{Prominence: 2.5})
	assert.Equal(t, []int{3}, peaks)
}

func TestPeakWidthsTriangle(t *testing.T) {
	// Symmetric triangle peak: width at half prominence is 2 samples.
	values := []float64{0, 1, 2, 1, 0}
	widths := PeakWidths(values, []int{2}, 0.5)
	require.Len(t, widths, 1)
	assert.InDelta(t, 2.0, widths[0], 1e-9)
}

func TestFindPeaksTooShort(t *testing.T) {
	assert.Nil(t, FindPeaks([]float64{1, 2}, PeakOptions{}))
}
