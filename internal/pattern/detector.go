// Package pattern searches a signal for non-random structure: periodicities,
// mathematical regularities, pulse trains, narrow spectral lines and
// modulation, and condenses them into a single artificiality score.
package pattern

import (
	"errors"

	"github.com/skywatch/cosmoscan/internal/numeric"
	"github.com/skywatch/cosmoscan/models"
)

// DefaultSignificanceLevel is the p-value cutoff for the statistical tests.
const DefaultSignificanceLevel = 0.001

// ErrTooFewPoints is returned when the signal is too short to analyze.
var ErrTooFewPoints = errors.New("pattern: need at least 10 samples")

// Detector runs the pattern-analysis pipeline.
type Detector struct {
	significanceLevel float64
}

// Option configures a Detector.
type Option func(*Detector)

// WithSignificanceLevel overrides the p-value cutoff used by the runs and
// normality tests.
func WithSignificanceLevel(level float64) Option {
	return func(d *Detector) { d.significanceLevel = level }
}

// New creates a Detector with the given options.
func New(opts ...Option) *Detector {
	d := &Detector{significanceLevel: DefaultSignificanceLevel}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// AnalyzeSignal runs every sub-analysis over the signal and scores the
// result. sampleRate is in Hz.
func (d *Detector) AnalyzeSignal(data []float64, sampleRate float64) (*models.PatternReport, error) {
	if len(data) < 10 {
		return nil, ErrTooFewPoints
	}

	report := &models.PatternReport{
		Randomness:  d.testRandomness(data),
		Periodicity: d.detectPeriodicity(data, sampleRate),
		Mathematical: models.MathematicalPatterns{
			PrimeNumbers:  primePattern(data),
			SpecialRatios: specialRatios(data),
			Repetition:    findRepeatingSequences(data, 3),
		},
		Entropy:     analyzeEntropy(data),
		Pulses:      detectPulses(data),
		Spectral:    d.spectralFeatures(data, sampleRate),
		Modulation:  detectModulation(data),
		Correlation: analyzeAutocorrelation(data),
	}
	report.Artificiality = scoreArtificiality(report)
	return report, nil
}

// acf returns the normalized autocorrelation function of data for lags
// 0..nlags-1.
func acf(data []float64, nlags int) []float64 {
	mean := numeric.Mean(data)
	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	n := len(centered)
	if nlags > n {
		nlags = n
	}
	out := make([]float64, nlags)
	for lag := 0; lag < nlags; lag++ {
		sum := 0.0
		for i := 0; i+lag < n; i++ {
			sum += centered[i] * centered[i+lag]
		}
		out[lag] = sum
	}
	if norm := out[0]; norm != 0 {
		for i := range out {
			out[i] /= norm
		}
	}
	return out
}
