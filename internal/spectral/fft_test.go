package spectral

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveDFT is the O(n^2) reference transform.
func naiveDFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			angle := -2 * math.Pi * float64(k) * float64(j) / float64(n)
			out[k] += x[j] * cmplx.Rect(1, angle)
		}
	}
	return out
}

func testSeries(n int) []complex128 {
	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(math.Sin(0.7*float64(i))+0.3*float64(i%5), 0.1*float64(i%3))
	}
	return x
}

func TestFFTMatchesNaiveDFT(t *testing.T) {
	for _, n := range []int{4, 8, 16, 6, 10, 15} {
		x := testSeries(n)
		got := FFT(x)
		want := naiveDFT(x)
		require.Len(t, got, n)
		for k := range want {
			assert.InDelta(t, real(want[k]), real(got[k]), 1e-9, "n=%d k=%d", n, k)
			assert.InDelta(t, imag(want[k]), imag(got[k]), 1e-9, "n=%d k=%d", n, k)
		}
	}
}

func TestIFFTRoundTrip(t *testing.T) {
	for _, n := range []int{8, 12} {
		x := testSeries(n)
		back := IFFT(FFT(x))
		for i := range x {
			assert.InDelta(t, real(x[i]), real(back[i]), 1e-9)
			assert.InDelta(t, imag(x[i]), imag(back[i]), 1e-9)
		}
	}
}

func TestFFTFreq(t *testing.T) {
	freqs := FFTFreq(4, 1)
	assert.InDeltaSlice(t, []float64{0, 0.25, -0.5, -0.25}, freqs, 1e-12)

	freqs = FFTFreq(5, 0.5)
	assert.InDeltaSlice(t, []float64{0, 0.4, 0.8, -0.8, -0.4}, freqs, 1e-12)
}

func TestFFTEmpty(t *testing.T) {
	assert.Nil(t, FFT(nil))
	assert.Nil(t, IFFT(nil))
}

func TestHilbertEnvelopeOfTone(t *testing.T) {
	n := 256
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Cos(2 * math.Pi * 8 * float64(i) / float64(n))
	}
	analytic := Hilbert(data)
	require.Len(t, analytic, n)

	// Away from the edges the analytic-signal magnitude tracks the unit
	// amplitude.
	for i := 20; i < n-20; i++ {
		assert.InDelta(t, 1.0, cmplx.Abs(analytic[i]), 0.05, "sample %d", i)
	}
	// Real part is the original signal.
	for i := range data {
		assert.InDelta(t, data[i], real(analytic[i]), 1e-9)
	}
}
