package lightcurve

import (
	"math"
	"math/rand"

	"github.com/skywatch/cosmoscan/internal/numeric"
)

// Synthetic generates test light curves with known injected signals.
// A nil rng uses an unseeded source; pass a seeded one for reproducibility.
type Synthetic struct {
	rng *rand.Rand
}

// NewSynthetic creates a generator seeded with the given value.
func NewSynthetic(seed int64) *Synthetic {
	return &Synthetic{rng: rand.New(rand.NewSource(seed))}
}

// Flat returns a constant unit-flux curve with n samples spanning
// [0, spanDays].
func (s *Synthetic) Flat(n int, spanDays float64) *Curve {
	return &Curve{
		Time: numeric.Linspace(0, spanDays, n),
		Flux: ones(n),
	}
}

// InjectTransit multiplies the flux by (1-depth) during a transit of the
// given duration (days) recurring every periodDays, starting at t=0.
func (s *Synthetic) InjectTransit(c *Curve, periodDays, depth, durationDays float64) {
	span := c.Time[len(c.Time)-1]
	for cycleStart := 0.0; cycleStart < span; cycleStart += periodDays {
		for i, t := range c.Time {
			if t >= cycleStart && t < cycleStart+durationDays {
				c.Flux[i] *= 1 - depth
			}
		}
	}
}

// InjectOscillation adds a sinusoidal stellar-oscillation signal at the
// given frequency (uHz) with the given amplitude.
func (s *Synthetic) InjectOscillation(c *Curve, freqUHz, amplitude float64) {
	freqHz := freqUHz * 1e-6
	for i, t := range c.Time {
		c.Flux[i] += amplitude * math.Sin(2*math.Pi*freqHz*t*86400)
	}
}

// InjectOutburst adds an exponentially decaying brightening starting at
// startDay and lasting durationDays.
func (s *Synthetic) InjectOutburst(c *Curve, startDay, durationDays, amplitude float64) {
	for i, t := range c.Time {
		if t >= startDay && t < startDay+durationDays {
			c.Flux[i] += amplitude * math.Exp(-(t - startDay))
		}
	}
}

// AddNoise adds zero-mean Gaussian noise with the given standard deviation.
func (s *Synthetic) AddNoise(c *Curve, sigma float64) {
	for i := range c.Flux {
		c.Flux[i] += s.rng.NormFloat64() * sigma
	}
}

// GaussianSeries returns n independent standard-normal samples scaled by
// sigma, for signal-analysis tests.
func (s *Synthetic) GaussianSeries(n int, sigma float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = s.rng.NormFloat64() * sigma
	}
	return out
}

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
