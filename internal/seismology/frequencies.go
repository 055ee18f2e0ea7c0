package seismology

import (
	"math"

	"github.com/skywatch/cosmoscan/internal/numeric"
)

// findNuMax locates the frequency of maximum power within the search range
// and refines it with a Gaussian fit around the raw peak. If the fit fails
// the raw peak frequency is returned.
func findNuMax(frequencies, power []float64) float64 {
	var freqRange, powerRange []float64
	for i, f := range frequencies {
		if f > nuMaxSearchMin && f < nuMaxSearchMax {
			freqRange = append(freqRange, f)
			powerRange = append(powerRange, power[i])
		}
	}
	if len(freqRange) == 0 {
		freqRange, powerRange = frequencies, power
	}

	nuMax := freqRange[numeric.ArgMax(powerRange)]

	const fitWidth = 500.0 // uHz
	var fitFreq, fitPower []float64
	for i, f := range freqRange {
		if math.Abs(f-nuMax) < fitWidth {
			fitFreq = append(fitFreq, f)
			fitPower = append(fitPower, powerRange[i])
		}
	}
	if len(fitFreq) > 10 {
		guess := numeric.GaussianParams{
			Amp:   numeric.Max(powerRange),
			Mu:    nuMax,
			Sigma: fitWidth / 2,
		}
		if fit, err := numeric.FitGaussian(fitFreq, fitPower, guess); err == nil {
			nuMax = fit.Mu
		}
	}
	return nuMax
}

// deltaNuScaling is the empirical delta_nu(nu_max) relation used when the
// spectrum does not support an autocorrelation measurement.
func deltaNuScaling(nuMax float64) float64 {
	return 0.263 * math.Pow(nuMax, 0.772)
}

// largeSeparation measures delta_nu from the autocorrelation of the power
// spectrum around nu_max. The first autocorrelation peak beyond lag zero
// gives the separation in frequency bins.
func largeSeparation(frequencies, power []float64, nuMax float64) float64 {
	width := math.Min(nuMax*0.5, 1000)

	var freqRegion, powerRegion []float64
	for i, f := range frequencies {
		if math.Abs(f-nuMax) < width {
			freqRegion = append(freqRegion, f)
			powerRegion = append(powerRegion, power[i])
		}
	}
	if len(powerRegion) < 20 {
		return deltaNuScaling(nuMax)
	}

	autocorr := autocorrelate(powerRegion)
	peaks := numeric.FindPeaks(autocorr, numeric.PeakOptions{Distance: 5})
	if len(peaks) == 0 {
		return deltaNuScaling(nuMax)
	}

	deltaFreq := numeric.Mean(numeric.Diff(freqRegion))
	return float64(peaks[0]) * deltaFreq
}

// autocorrelate returns the non-negative lags of the full autocorrelation
// of x with itself.
func autocorrelate(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	for lag := 0; lag < n; lag++ {
		sum := 0.0
		for i := 0; i+lag < n; i++ {
			sum += x[i] * x[i+lag]
		}
		out[lag] = sum
	}
	return out
}

// envelopeWidth fits a Gaussian to the oscillation envelope around nu_max
// and returns the FWHM. Falls back to a quarter of nu_max when the fit fails.
func envelopeWidth(frequencies, power []float64, nuMax float64) float64 {
	var freqRange, powerRange []float64
	for i, f := range frequencies {
		if f > nuMax/2 && f < nuMax*2 {
			freqRange = append(freqRange, f)
			powerRange = append(powerRange, power[i])
		}
	}
	if len(freqRange) < 3 {
		return nuMax * 0.25
	}

	guess := numeric.GaussianParams{
		Amp:   numeric.Max(powerRange),
		Mu:    nuMax,
		Sigma: nuMax * 0.25,
	}
	fit, err := numeric.FitGaussian(freqRange, powerRange, guess)
	if err != nil {
		return nuMax * 0.25
	}
	return math.Abs(fit.Sigma) * 2.355 // FWHM
}
