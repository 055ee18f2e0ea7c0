package spectral

import (
	"errors"
	"math"

	"github.com/skywatch/cosmoscan/internal/numeric"
)

// ErrTooFewPoints is returned when a series is too short to estimate a
// spectrum from.
var ErrTooFewPoints = errors.New("spectral: need at least 2 points")

// ErrLengthMismatch is returned when time and value arrays differ in length.
var ErrLengthMismatch = errors.New("spectral: time and value arrays differ in length")

// LombScargle computes the variance-normalized Lomb-Scargle periodogram of
// the (possibly unevenly sampled) series (t, y) at the given ordinary
// frequencies (cycles per unit of t). Power follows the Horne-Baliunas
// convention: white noise averages to power 1, a coherent sinusoid of
// amplitude A peaks near N*A^2/(4*var(y)). The caller is expected to pass
// mean-subtracted values.
func LombScargle(t, y, freqs []float64) ([]float64, error) {
	if len(t) != len(y) {
		return nil, ErrLengthMismatch
	}
	if len(t) < 2 {
		return nil, ErrTooFewPoints
	}

	variance := 0.0
	for _, v := range y {
		variance += v * v
	}
	variance /= float64(len(y))

	power := make([]float64, len(freqs))
	for fi, f := range freqs {
		w := 2 * math.Pi * f
		if w == 0 {
			continue
		}

		// Time offset tau makes the sine and cosine terms orthogonal.
		var s2, c2 float64
		for _, ti := range t {
			s2 += math.Sin(2 * w * ti)
			c2 += math.Cos(2 * w * ti)
		}
		tau := math.Atan2(s2, c2) / (2 * w)

		var yc, ys, cc, ss float64
		for i, ti := range t {
			arg := w * (ti - tau)
			c := math.Cos(arg)
			s := math.Sin(arg)
			yc += y[i] * c
			ys += y[i] * s
			cc += c * c
			ss += s * s
		}

		p := 0.0
		if cc > 0 {
			p += yc * yc / cc
		}
		if ss > 0 {
			p += ys * ys / ss
		}
		p *= 0.5

		if variance > 0 {
			p /= variance
		}
		power[fi] = p
	}
	return power, nil
}

// Periodogram evaluates the Lomb-Scargle power spectrum over nBins
// frequencies linearly spaced in [freqMin, freqMax]. Returns the frequency
// grid alongside the power values.
func Periodogram(t, y []float64, freqMin, freqMax float64, nBins int) ([]float64, []float64, error) {
	if len(t) != len(y) {
		return nil, nil, ErrLengthMismatch
	}
	if len(t) < 2 {
		return nil, nil, ErrTooFewPoints
	}
	freqs := numeric.Linspace(freqMin, freqMax, nBins)
	power, err := LombScargle(t, y, freqs)
	if err != nil {
		return nil, nil, err
	}
	return freqs, power, nil
}
