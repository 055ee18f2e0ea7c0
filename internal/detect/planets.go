package detect

import (
	"math"
	"sort"

	"github.com/skywatch/cosmoscan/internal/numeric"
	"github.com/skywatch/cosmoscan/internal/spectral"
	"github.com/skywatch/cosmoscan/models"
)

// DetectTransitingPlanets searches the light curve for periodic dimmings in
// the orbital period range [minPeriod, maxPeriod] days. Candidates are
// returned ordered by confidence, best first. Alias periods (P, P/2, ...)
// are not collapsed; callers that need unique periods must deduplicate
// themselves.
func (d *Detector) DetectTransitingPlanets(t, flux []float64, minPeriod, maxPeriod float64) ([]models.PlanetCandidate, error) {
	if err := validateSeries(t, flux); err != nil {
		return nil, err
	}

	// Mask upward outliers (cosmic-ray hits, flares), recomputed from
	// scratch. Dips stay in: a deep transit is signal, not an outlier.
	median := numeric.Median(flux)
	std := numeric.Std(flux)
	var timeClean, fluxClean []float64
	if std == 0 {
		timeClean, fluxClean = t, flux
	} else {
		for i, f := range flux {
			if f-median < d.thresholds.OutlierSigma*std {
				timeClean = append(timeClean, t[i])
				fluxClean = append(fluxClean, f)
			}
		}
	}
	if len(fluxClean) < 2 {
		return []models.PlanetCandidate{}, nil
	}

	cleanMedian := numeric.Median(fluxClean)
	if cleanMedian == 0 {
		return []models.PlanetCandidate{}, nil
	}
	fluxNorm := make([]float64, len(fluxClean))
	residual := make([]float64, len(fluxClean))
	for i, f := range fluxClean {
		fluxNorm[i] = f / cleanMedian
		residual[i] = fluxNorm[i] - 1
	}

	freqs, power, err := spectral.Periodogram(
		timeClean, residual,
		1/maxPeriod, 1/minPeriod,
		d.thresholds.PeriodogramBins,
	)
	if err != nil {
		return nil, err
	}

	peaks := numeric.FindPeaks(power, numeric.PeakOptions{
		Height:    d.thresholds.PeakMinPower,
		HasHeight: true,
		Distance:  d.thresholds.PeakMinSeparation,
	})
	sort.SliceStable(peaks, func(i, j int) bool { return power[peaks[i]] > power[peaks[j]] })
	if len(peaks) > d.thresholds.MaxCandidates {
		peaks = peaks[:d.thresholds.MaxCandidates]
	}
	// Evaluate candidates from the longest period down so that harmonic
	// aliases of near-equal power rank behind the fundamental after the
	// stable confidence sort.
	sort.Ints(peaks)

	planets := []models.PlanetCandidate{}
	for _, peak := range peaks {
		period := 1 / freqs[peak]
		peakPower := power[peak]

		phaseSorted, fluxSorted := phaseFold(timeClean, fluxNorm, period)
		binned := phaseBinMedians(phaseSorted, fluxSorted, d.thresholds.PhaseBins)
		depth := transitDepth(binned)
		durationFrac := transitDurationFraction(binned, depth)

		if depth > d.thresholds.MinTransitDepth {
			planets = append(planets, models.PlanetCandidate{
				PeriodDays:           period,
				TransitDepth:         depth,
				TransitDurationHours: durationFrac * period * 24,
				SignalPower:          peakPower,
				Confidence:           transitConfidence(peakPower, depth),
			})
		}
	}

	sort.SliceStable(planets, func(i, j int) bool {
		return planets[i].Confidence > planets[j].Confidence
	})
	return planets, nil
}

// phaseFold maps times modulo period into [0,1) and returns phases with
// their flux values, ordered by phase.
func phaseFold(t, flux []float64, period float64) (phase, folded []float64) {
	n := len(t)
	phase = make([]float64, n)
	idx := make([]int, n)
	for i, ti := range t {
		phase[i] = math.Mod(ti, period) / period
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return phase[idx[a]] < phase[idx[b]] })

	sortedPhase := make([]float64, n)
	folded = make([]float64, n)
	for i, j := range idx {
		sortedPhase[i] = phase[j]
		folded[i] = flux[j]
	}
	return sortedPhase, folded
}

// phaseBinMedians folds the phase-sorted curve into nBins equal phase bins
// and returns the median flux per bin. Empty bins hold NaN.
func phaseBinMedians(phase, flux []float64, nBins int) []float64 {
	buckets := make([][]float64, nBins)
	for i, p := range phase {
		b := int(p * float64(nBins))
		if b >= nBins {
			b = nBins - 1
		}
		buckets[b] = append(buckets[b], flux[i])
	}
	medians := make([]float64, nBins)
	for b, vals := range buckets {
		if len(vals) == 0 {
			medians[b] = math.NaN()
			continue
		}
		medians[b] = numeric.Median(vals)
	}
	return medians
}

// transitDepth estimates the fractional depth from the binned phase curve as
// the drop of the deepest bin below the out-of-transit baseline (90th
// percentile of the bin medians). Binning first keeps a short transit from
// drowning in the out-of-transit noise percentiles.
func transitDepth(binned []float64) float64 {
	vals := validBins(binned)
	if len(vals) == 0 {
		return 0
	}
	baseline := numeric.Percentile(vals, 90)
	if baseline == 0 {
		return 0
	}
	transit := vals[0]
	for _, v := range vals[1:] {
		if v < transit {
			transit = v
		}
	}
	return (baseline - transit) / baseline
}

// transitDurationFraction estimates the transit duration as the share of
// phase bins dipping below the half-depth level.
func transitDurationFraction(binned []float64, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	vals := validBins(binned)
	if len(vals) == 0 {
		return 0
	}
	threshold := numeric.Percentile(vals, 90) * (1 - depth/2)
	count := 0
	for _, v := range binned {
		if !math.IsNaN(v) && v < threshold {
			count++
		}
	}
	return float64(count) / float64(len(binned))
}

func validBins(binned []float64) []float64 {
	vals := make([]float64, 0, len(binned))
	for _, v := range binned {
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	return vals
}

// transitConfidence combines periodogram power and transit depth into a
// 0-100 score.
func transitConfidence(power, depth float64) float64 {
	confidence := power*0.5 + math.Log10(depth*1000)*0.5
	return numeric.Clip(confidence*100, 0, 100)
}
