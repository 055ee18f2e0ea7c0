// Package seismology estimates asteroseismic parameters from stellar light
// curves: the frequency of maximum oscillation power (nu_max), the large
// frequency separation (delta_nu), individual oscillation modes and the
// stellar parameters implied by the scaling relations.
package seismology

import (
	"errors"

	"github.com/skywatch/cosmoscan/internal/numeric"
	"github.com/skywatch/cosmoscan/internal/spectral"
	"github.com/skywatch/cosmoscan/models"
)

// Solar calibration anchors for the scaling relations.
const (
	SolarNuMax   = 3090.0 // uHz
	SolarDeltaNu = 135.1  // uHz
)

// Search range for nu_max, covering dwarfs through red giants.
const (
	nuMaxSearchMin = 10.0   // uHz
	nuMaxSearchMax = 5000.0 // uHz
)

// ErrTooFewPoints is returned when the light curve has fewer than 2 samples.
var ErrTooFewPoints = errors.New("seismology: need at least 2 points")

// ErrLengthMismatch is returned when time and flux differ in length.
var ErrLengthMismatch = errors.New("seismology: time and flux arrays differ in length")

// Analyzer runs the asteroseismology pipeline. It is stateless beyond
// configuration and safe for concurrent use.
type Analyzer struct{}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// AnalyzeStellarVibrations runs the full pipeline over a light curve sampled
// at roughly the given cadence (minutes): prepare, power spectrum, nu_max,
// delta_nu, mode identification, scaling relations, envelope width, rotation
// and quality grading. Numeric fit failures inside the pipeline fall back to
// closed-form estimates and are never surfaced as errors.
func (a *Analyzer) AnalyzeStellarVibrations(t, flux []float64, cadenceMinutes float64) (*models.SeismologyReport, error) {
	if len(t) != len(flux) {
		return nil, ErrLengthMismatch
	}
	if len(t) < 2 {
		return nil, ErrTooFewPoints
	}

	prepared := prepareLightCurve(flux)
	frequencies, power := powerSpectrum(t, prepared, cadenceMinutes)
	if len(frequencies) == 0 {
		return nil, ErrTooFewPoints
	}

	nuMax := findNuMax(frequencies, power)
	deltaNu := largeSeparation(frequencies, power, nuMax)
	modes := identifyModes(frequencies, power, nuMax, deltaNu)
	params := estimateStellarParameters(nuMax, deltaNu)
	envelope := envelopeWidth(frequencies, power, nuMax)
	rotation := detectRotation(modes)

	return &models.SeismologyReport{
		NuMaxUHz:          nuMax,
		DeltaNuUHz:        deltaNu,
		EnvelopeWidthUHz:  envelope,
		OscillationModes:  modes,
		StellarParameters: params,
		Rotation:          rotation,
		PowerSpectrum: models.PowerSpectrum{
			Frequencies: frequencies,
			Power:       power,
		},
		QualityMetrics: qualityMetrics(power, modes),
	}, nil
}

// qualityMetrics grades the analysis from the spectrum's signal-to-noise
// ratio and the number of identified modes.
func qualityMetrics(power []float64, modes []models.OscillationMode) models.QualityMetrics {
	snr := 0.0
	if median := numeric.Median(power); median > 0 {
		snr = numeric.Max(power) / median
	}

	flag := "POOR"
	switch {
	case snr > 3 && len(modes) >= 5:
		flag = "GOOD"
	case snr > 2 && len(modes) >= 2:
		flag = "FAIR"
	}

	return models.QualityMetrics{
		SignalToNoise:  snr,
		NModesDetected: len(modes),
		QualityFlag:    flag,
	}
}

// powerSpectrum resamples the light curve onto a uniform grid at the given
// cadence, takes an FFT and returns the smoothed one-sided power spectrum
// with frequencies in uHz.
func powerSpectrum(t, flux []float64, cadenceMinutes float64) (frequencies, power []float64) {
	dt := cadenceMinutes / (24 * 60) // days
	grid := numeric.Arange(t[0], t[len(t)-1], dt)
	if len(grid) < 2 {
		return nil, nil
	}
	resampled := numeric.Interp(grid, t, flux)

	x := make([]complex128, len(resampled))
	for i, v := range resampled {
		x[i] = complex(v, 0)
	}
	spec := spectral.FFT(x)

	freqHz := spectral.FFTFreq(len(resampled), dt*86400)
	for i, f := range freqHz {
		fUHz := f * 1e6
		if fUHz > 0 {
			frequencies = append(frequencies, fUHz)
			re, im := real(spec[i]), imag(spec[i])
			power = append(power, re*re+im*im)
		}
	}

	power = numeric.BoxcarSmooth(power, 10)
	return frequencies, power
}
