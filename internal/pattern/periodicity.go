package pattern

import (
	"github.com/skywatch/cosmoscan/internal/numeric"
	"github.com/skywatch/cosmoscan/internal/spectral"
	"github.com/skywatch/cosmoscan/models"
)

// detectPeriodicity runs an FFT over the mean-subtracted signal and reports
// the frequencies whose power rises more than 5 sigma above the mean, up to
// ten of them.
func (d *Detector) detectPeriodicity(data []float64, sampleRate float64) models.PeriodicityAnalysis {
	mean := numeric.Mean(data)
	x := make([]complex128, len(data))
	for i, v := range data {
		x[i] = complex(v-mean, 0)
	}
	spec := spectral.FFT(x)
	allFreqs := spectral.FFTFreq(len(data), 1/sampleRate)

	var freqs, power []float64
	for i, f := range allFreqs {
		if f > 0 {
			freqs = append(freqs, f)
			re, im := real(spec[i]), imag(spec[i])
			power = append(power, re*re+im*im)
		}
	}

	periodicities := []models.Periodicity{}
	if len(power) >= 3 {
		powerMean := numeric.Mean(power)
		powerStd := numeric.Std(power)
		threshold := powerMean + 5*powerStd

		peaks := numeric.FindPeaks(power, numeric.PeakOptions{
			Height:    threshold,
			HasHeight: true,
			Distance:  5,
		})
		if len(peaks) > 10 {
			peaks = peaks[:10]
		}
		for _, peak := range peaks {
			significance := 0.0
			if powerStd > 0 {
				significance = (power[peak] - powerMean) / powerStd
			}
			periodicities = append(periodicities, models.Periodicity{
				FrequencyHz:       freqs[peak],
				PeriodSeconds:     1 / freqs[peak],
				Power:             power[peak],
				SignificanceSigma: significance,
			})
		}
	}

	return models.PeriodicityAnalysis{
		NSignificantPeriods: len(periodicities),
		Periodicities:       periodicities,
		IsPeriodic:          len(periodicities) > 0,
	}
}
