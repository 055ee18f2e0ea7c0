package pattern

import (
	"github.com/skywatch/cosmoscan/internal/numeric"
	"github.com/skywatch/cosmoscan/internal/spectral"
	"github.com/skywatch/cosmoscan/models"
)

// spectralFeatures summarizes a spectrogram of the signal: the mean spectral
// centroid and rolloff across segments, plus a narrow-line score measuring
// what fraction of the spectral peaks are suspiciously sharp.
func (d *Detector) spectralFeatures(data []float64, sampleRate float64) models.SpectralAnalysis {
	nperseg := numeric.MinInt(256, len(data)/4)
	freqs, sxx := spectral.Spectrogram(data, sampleRate, nperseg)
	if len(sxx) == 0 || len(sxx[0]) == 0 {
		return models.SpectralAnalysis{}
	}
	nSegments := len(sxx[0])

	var centroidSum, rolloffSum float64
	for s := 0; s < nSegments; s++ {
		var total, weighted float64
		for f := range freqs {
			total += sxx[f][s]
			weighted += freqs[f] * sxx[f][s]
		}
		if total > 0 {
			centroidSum += weighted / total
		}

		// Rolloff: lowest frequency holding 85% of the segment power.
		cum := 0.0
		for f := range freqs {
			cum += sxx[f][s]
			if cum >= 0.85*total {
				rolloffSum += freqs[f]
				break
			}
		}
	}

	meanPower := make([]float64, len(freqs))
	for f := range freqs {
		meanPower[f] = numeric.Mean(sxx[f])
	}
	narrowScore := narrowLineScore(meanPower)

	return models.SpectralAnalysis{
		SpectralCentroidMean: centroidSum / float64(nSegments),
		SpectralRolloffMean:  rolloffSum / float64(nSegments),
		NarrowLineScore:      narrowScore,
		HasNarrowLines:       narrowScore > 0.5,
	}
}

// narrowLineScore is the fraction of prominent spectral peaks narrower than
// 5 frequency bins at half prominence.
func narrowLineScore(power []float64) float64 {
	peaks := numeric.FindPeaks(power, numeric.PeakOptions{
		Height:     numeric.Median(power) * 3,
		HasHeight:  true,
		Prominence: numeric.Std(power),
	})
	if len(peaks) == 0 {
		return 0
	}

	widths := numeric.PeakWidths(power, peaks, 0.5)
	narrow := 0
	for _, w := range widths {
		if w < 5 {
			narrow++
		}
	}
	return float64(narrow) / float64(len(peaks))
}

// detectModulation measures amplitude and frequency modulation through the
// analytic signal's envelope and instantaneous frequency.
func detectModulation(data []float64) models.ModulationAnalysis {
	envelope, instFreq := spectral.AnalyticEnvelope(data)

	amIndex := 0.0
	if mean := numeric.Mean(envelope); mean > 0 {
		amIndex = numeric.Std(envelope) / mean
	}

	freqVar := 0.0
	if len(instFreq) > 0 {
		freqVar = numeric.Variance(instFreq)
	}

	return models.ModulationAnalysis{
		AmplitudeModulationIndex: amIndex,
		HasAM:                    amIndex > 0.1,
		FrequencyVariance:        freqVar,
		HasFM:                    freqVar > 0.01,
	}
}

// analyzeAutocorrelation returns the head of the autocorrelation function
// and the count of lags correlating above 0.3.
func analyzeAutocorrelation(data []float64) models.CorrelationAnalysis {
	a := acf(data, numeric.MinInt(500, len(data)/2))

	head := a
	if len(head) > 100 {
		head = head[:100]
	}

	maxACF := 0.0
	var peaks []int
	if len(a) > 1 {
		maxACF = numeric.Max(a[1:])
		peaks = numeric.FindPeaks(a[1:], numeric.PeakOptions{
			Height:    0.3,
			HasHeight: true,
		})
	}

	return models.CorrelationAnalysis{
		Autocorrelation:   head,
		NSignificantPeaks: len(peaks),
		MaxAutocorr:       maxACF,
		HasPeriodicity:    len(peaks) > 0,
	}
}
