package pattern

import (
	"fmt"

	"github.com/skywatch/cosmoscan/internal/numeric"
	"github.com/skywatch/cosmoscan/models"
)

// scoreArtificiality condenses the sub-analyses into an additive 0-100
// score. The reasons list follows the evaluation order of the sub-tests.
func scoreArtificiality(report *models.PatternReport) models.ArtificialityScore {
	score := 0
	reasons := []string{}

	if rt := report.Randomness.RunsTest; rt != nil && !rt.IsRandom {
		score += 20
		reasons = append(reasons, "Non-random pattern detected (runs test)")
	}

	if report.Periodicity.IsPeriodic {
		n := report.Periodicity.NSignificantPeriods
		score += numeric.MinInt(30, n*10)
		reasons = append(reasons, fmt.Sprintf("Strong periodicity (%d frequencies)", n))
	}

	if report.Mathematical.Repetition.HasRepetition {
		score += 15
		reasons = append(reasons, "Repeating sequences found")
	}

	if report.Entropy.NormalizedEntropy < 0.5 {
		score += 15
		reasons = append(reasons, "Low entropy (structured signal)")
	}

	if report.Pulses.IsRegular {
		score += 20
		reasons = append(reasons, "Regular pulse pattern")
	}

	if report.Spectral.HasNarrowLines {
		score += 15
		reasons = append(reasons, "Narrow spectral lines (artificial signature)")
	}

	if report.Modulation.HasAM || report.Modulation.HasFM {
		score += 10
		reasons = append(reasons, "Signal modulation detected")
	}

	var classification string
	switch {
	case score >= 70:
		classification = "HIGHLY ARTIFICIAL - Strong candidate for intelligent signal"
	case score >= 50:
		classification = "POSSIBLY ARTIFICIAL - Warrants further investigation"
	case score >= 30:
		classification = "STRUCTURED - Some non-random patterns"
	default:
		classification = "NATURAL - Consistent with random/natural processes"
	}

	return models.ArtificialityScore{
		Score:          numeric.MinInt(100, score),
		Classification: classification,
		Reasons:        reasons,
	}
}
