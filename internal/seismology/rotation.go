package seismology

import (
	"math"

	"github.com/skywatch/cosmoscan/internal/numeric"
	"github.com/skywatch/cosmoscan/models"
)

// detectRotation looks for rotational splitting among the identified modes.
// Pairwise frequency differences in the 0.1-2.0 uHz range are treated as
// split components; their median gives the splitting, which is roughly half
// the rotational frequency.
func detectRotation(modes []models.OscillationMode) models.Rotation {
	if len(modes) < 3 {
		return models.Rotation{Detected: false}
	}

	var diffs []float64
	for i := 0; i < len(modes)-1; i++ {
		for j := i + 1; j < len(modes); j++ {
			diff := math.Abs(modes[j].FrequencyUHz - modes[i].FrequencyUHz)
			if diff > 0.1 && diff < 2.0 {
				diffs = append(diffs, diff)
			}
		}
	}
	if len(diffs) == 0 {
		return models.Rotation{Detected: false}
	}

	split := numeric.Median(diffs)
	periodDays := 1 / (2 * split * 1e-6) / 86400

	return models.Rotation{
		Detected:               true,
		RotationalSplittingUHz: split,
		RotationPeriodDays:     periodDays,
		AngularVelocityRadS:    2 * math.Pi / (periodDays * 86400),
	}
}
