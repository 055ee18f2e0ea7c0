package detect

import (
	"github.com/skywatch/cosmoscan/internal/numeric"
	"github.com/skywatch/cosmoscan/models"
)

// DetectTransientEvents finds brightening episodes in a magnitude series
// using the series median as the quiescent baseline.
func (d *Detector) DetectTransientEvents(t, magnitude []float64) ([]models.TransientEvent, error) {
	if err := validateSeries(t, magnitude); err != nil {
		return nil, err
	}
	return d.DetectTransientEventsWithBaseline(t, magnitude, numeric.Median(magnitude))
}

// DetectTransientEventsWithBaseline finds brightening episodes relative to
// an explicit reference magnitude. An event starts when the magnitude drops
// (brightens) more than sensitivity*sigma below the reference and ends when
// it recovers past half that threshold, or at the end of the series.
func (d *Detector) DetectTransientEventsWithBaseline(t, magnitude []float64, referenceMag float64) ([]models.TransientEvent, error) {
	if err := validateSeries(t, magnitude); err != nil {
		return nil, err
	}

	deltaMag := make([]float64, len(magnitude))
	for i, m := range magnitude {
		deltaMag[i] = m - referenceMag
	}
	threshold := d.sensitivity * numeric.Std(deltaMag)
	if threshold == 0 {
		return []models.TransientEvent{}, nil
	}

	transients := []models.TransientEvent{}
	inEvent := false
	eventStart := 0

	for i := range t {
		switch {
		case deltaMag[i] < -threshold && !inEvent:
			inEvent = true
			eventStart = i
		case inEvent && (deltaMag[i] > -threshold/2 || i == len(t)-1):
			inEvent = false
			eventEnd := i

			eventMags := magnitude[eventStart : eventEnd+1]
			eventTimes := t[eventStart : eventEnd+1]

			peakIdx := numeric.ArgMin(eventMags)
			peakMag := eventMags[peakIdx]
			peakTime := eventTimes[peakIdx]
			duration := eventTimes[len(eventTimes)-1] - eventTimes[0]
			amplitude := referenceMag - peakMag

			transients = append(transients, models.TransientEvent{
				StartTime:     eventTimes[0],
				PeakTime:      peakTime,
				EndTime:       eventTimes[len(eventTimes)-1],
				DurationDays:  duration,
				PeakMagnitude: peakMag,
				Amplitude:     amplitude,
				Type:          d.classifyTransient(amplitude, duration),
				RiseTime:      peakTime - eventTimes[0],
				DecayTime:     eventTimes[len(eventTimes)-1] - peakTime,
			})
		}
	}

	return transients, nil
}

// classifyTransient assigns an event type from its amplitude (magnitudes,
// positive for brightenings) and duration (days). The boundaries are fixed
// heuristics, not fit to any survey.
func (d *Detector) classifyTransient(amplitude, duration float64) string {
	th := d.thresholds
	switch {
	case amplitude > th.TransientBrightAmp:
		switch {
		case duration < th.FlareMaxDays:
			return "Stellar Flare"
		case duration < th.NovaMaxDays:
			return "Nova"
		default:
			return "Supernova"
		}
	case amplitude > th.TransientModerateAmp:
		if duration < th.DwarfNovaMaxDays {
			return "Dwarf Nova"
		}
		return "Variable Star"
	default:
		return "Minor Transient"
	}
}
