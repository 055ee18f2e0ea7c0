// Package detect implements the celestial-body detectors: transiting
// planets, cometary outbursts, meteors/fast transients, transient events and
// asteroids. All detectors are pure functions over the input arrays; the
// Detector itself carries only immutable configuration, so independent calls
// may run concurrently.
package detect

import "errors"

// ErrTooFewPoints is returned when a series has fewer than 2 samples.
var ErrTooFewPoints = errors.New("detect: need at least 2 points")

// ErrLengthMismatch is returned when paired arrays differ in length.
var ErrLengthMismatch = errors.New("detect: paired arrays differ in length")

// Detector runs the detection algorithms with a configurable sensitivity
// (detection threshold in standard deviations; larger means stricter).
type Detector struct {
	sensitivity float64
	thresholds  Thresholds
}

// Option configures a Detector.
type Option func(*Detector)

// WithSensitivity sets the detection threshold in sigmas.
func WithSensitivity(sigma float64) Option {
	return func(d *Detector) { d.sensitivity = sigma }
}

// WithThresholds overrides the heuristic constants. Intended for tests and
// tuning.
func WithThresholds(t Thresholds) Option {
	return func(d *Detector) { d.thresholds = t }
}

// New creates a Detector with the default sensitivity of 3 sigma.
func New(opts ...Option) *Detector {
	d := &Detector{
		sensitivity: 3.0,
		thresholds:  DefaultThresholds(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Sensitivity returns the configured detection threshold in sigmas.
func (d *Detector) Sensitivity() float64 {
	return d.sensitivity
}

func validateSeries(t, v []float64) error {
	if len(t) != len(v) {
		return ErrLengthMismatch
	}
	if len(t) < 2 {
		return ErrTooFewPoints
	}
	return nil
}
