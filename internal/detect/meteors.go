package detect

import (
	"github.com/skywatch/cosmoscan/internal/numeric"
	"github.com/skywatch/cosmoscan/models"
)

// Default duration bounds for the meteor scan, in hours.
const (
	DefaultMeteorMinDurationHours = 0.01
	DefaultMeteorMaxDurationHours = 0.5
)

// DetectMeteorsAndFastTransients scans the light curve for short
// brightenings whose duration falls within [minDurationHours,
// maxDurationHours]. The event extends while the flux stays above half the
// trigger threshold (hysteresis), and the scan resumes right after the event
// ends.
func (d *Detector) DetectMeteorsAndFastTransients(t, flux []float64, minDurationHours, maxDurationHours float64) ([]models.MeteorEvent, error) {
	if err := validateSeries(t, flux); err != nil {
		return nil, err
	}

	median := numeric.Median(flux)
	if median == 0 {
		return []models.MeteorEvent{}, nil
	}
	fluxNorm := make([]float64, len(flux))
	for i, f := range flux {
		fluxNorm[i] = f / median
	}

	threshold := d.sensitivity * numeric.Std(fluxNorm)
	if threshold == 0 {
		return []models.MeteorEvent{}, nil
	}

	meteors := []models.MeteorEvent{}
	i := 0
	for i < len(fluxNorm)-2 {
		if fluxNorm[i] <= 1+threshold {
			i++
			continue
		}

		eventStart := i
		eventEnd := i
		for eventEnd < len(fluxNorm)-1 && fluxNorm[eventEnd] > 1+threshold/2 {
			eventEnd++
		}

		durationHours := (t[eventEnd] - t[eventStart]) * 24
		if durationHours >= minDurationHours && durationHours <= maxDurationHours {
			segment := fluxNorm[eventStart : eventEnd+1]
			peakFlux := numeric.Max(segment)
			peakTime := t[eventStart+numeric.ArgMax(segment)]

			eventType := "fast_transient"
			if durationHours < d.thresholds.MeteorMaxDurationH {
				eventType = "meteor"
			}

			meteors = append(meteors, models.MeteorEvent{
				DetectionTime:  peakTime,
				PeakBrightness: peakFlux,
				DurationHours:  durationHours,
				Amplitude:      peakFlux - 1,
				EventType:      eventType,
				Confidence:     numeric.Clip((peakFlux-1)/threshold, 0, 1),
			})
		}

		i = eventEnd + 1
	}

	return meteors, nil
}
