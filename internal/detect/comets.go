package detect

import (
	"math"
	"sort"

	"github.com/skywatch/cosmoscan/internal/numeric"
	"github.com/skywatch/cosmoscan/models"
)

// DetectComets looks for cometary outbursts: a fast brightening followed by
// a slower decay in a smoothed light curve. Positions may be nil; when
// supplied (aligned with t) the apparent angular velocity over each event
// window is estimated and the source is flagged as moving. Output is
// deduplicated so that consecutive events are more than the configured gap
// apart.
func (d *Detector) DetectComets(t, flux []float64, positions []models.SkyPosition) ([]models.CometEvent, error) {
	if err := validateSeries(t, flux); err != nil {
		return nil, err
	}

	median := numeric.Median(flux)
	if median == 0 {
		return []models.CometEvent{}, nil
	}
	fluxNorm := make([]float64, len(flux))
	for i, f := range flux {
		fluxNorm[i] = f / median
	}

	window := numeric.MinInt(len(flux)/10, d.thresholds.CometWindowCap)
	if window < 1 {
		return []models.CometEvent{}, nil
	}
	smooth := numeric.BoxcarSmooth(fluxNorm, window)

	var comets []models.CometEvent
	for i := 0; i < len(smooth)-window; i++ {
		segment := smooth[i : i+window]
		if len(segment) <= 10 {
			continue
		}

		firstHalf := segment[:len(segment)/2]
		secondHalf := segment[len(segment)/2:]
		rise := numeric.Max(firstHalf) - numeric.Min(firstHalf)
		decay := numeric.Max(secondHalf) - numeric.Min(secondHalf)

		// Typical comet signature: rapid rise, slow decay.
		if rise > d.thresholds.CometMinRise && rise > decay*d.thresholds.CometRiseDecayRatio {
			peakIdx := i + numeric.ArgMax(segment)
			event := models.CometEvent{
				DetectionTime:      t[peakIdx],
				PeakBrightness:     smooth[peakIdx],
				BrightnessIncrease: rise,
				ActivityType:       "outburst",
				Confidence:         numeric.Clip(rise/d.thresholds.CometConfidenceScale, 0, 1),
			}
			if positions != nil && len(positions) > i {
				velocity := windowVelocity(positions, t, i, window)
				event.VelocityDegDay = velocity
				event.Moving = velocity > d.thresholds.CometMotionMin
				event.HasMotion = true
			}
			comets = append(comets, event)
		}
	}

	return d.dedupComets(comets), nil
}

// windowVelocity estimates the mean angular velocity (deg/day) over the
// event window by finite differences of the position samples.
func windowVelocity(positions []models.SkyPosition, t []float64, start, window int) float64 {
	end := numeric.MinInt(start+window, len(positions))
	if end-start < 2 {
		return 0
	}

	var sumRA, sumDec float64
	count := 0
	for i := start + 1; i < end; i++ {
		dt := t[i] - t[i-1]
		if dt == 0 {
			continue
		}
		sumRA += (positions[i].RA - positions[i-1].RA) / dt
		sumDec += (positions[i].Dec - positions[i-1].Dec) / dt
		count++
	}
	if count == 0 {
		return 0
	}
	meanRA := sumRA / float64(count)
	meanDec := sumDec / float64(count)
	return math.Sqrt(meanRA*meanRA + meanDec*meanDec)
}

// dedupComets sorts events by detection time and keeps only events more
// than the configured gap after the previously kept one. Kept events carry
// their original field values.
func (d *Detector) dedupComets(comets []models.CometEvent) []models.CometEvent {
	if len(comets) == 0 {
		return []models.CometEvent{}
	}

	sorted := make([]models.CometEvent, len(comets))
	copy(sorted, comets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DetectionTime < sorted[j].DetectionTime
	})

	unique := []models.CometEvent{sorted[0]}
	for _, event := range sorted[1:] {
		if event.DetectionTime-unique[len(unique)-1].DetectionTime > d.thresholds.CometDedupGapDays {
			unique = append(unique, event)
		}
	}
	return unique
}
