package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skywatch/cosmoscan/models"
)

func TestDetectionReport(t *testing.T) {
	result := &models.AnalysisResult{
		Planets: []models.PlanetCandidate{{
			PeriodDays:           5.0,
			TransitDepth:         0.01,
			TransitDurationHours: 12,
			Confidence:           95,
		}},
		Asteroids: []models.AsteroidCandidate{{
			MeanVelocityDegDay: 1.5,
			OrbitType:          "NEO",
			Eccentricity:       0.3,
		}},
		Transients: []models.TransientEvent{{
			Type:          "Nova",
			Amplitude:     6,
			DurationDays:  50,
			PeakMagnitude: 9,
		}},
	}

	report := DetectionReport(result)
	assert.Contains(t, report, "EXOPLANET CANDIDATES: 1")
	assert.Contains(t, report, "Orbital period:   5.00 days")
	assert.Contains(t, report, "ASTEROIDS DETECTED: 1")
	assert.Contains(t, report, "Orbit type:   NEO")
	assert.Contains(t, report, "TRANSIENT EVENTS: 1")
	assert.Contains(t, report, "Type:           Nova")
}

func TestDetectionReportEmpty(t *testing.T) {
	report := DetectionReport(&models.AnalysisResult{})
	assert.Contains(t, report, "CELESTIAL BODY DETECTION REPORT")
	assert.NotContains(t, report, "EXOPLANET CANDIDATES")
}

func TestSeismologyReport(t *testing.T) {
	report := SeismologyReport(&models.SeismologyReport{
		NuMaxUHz:   3090,
		DeltaNuUHz: 135.1,
		OscillationModes: []models.OscillationMode{
			{FrequencyUHz: 3000, Type: "Radial (l=0)"},
		},
		StellarParameters: models.StellarParameters{
			MassSolar:         1,
			RadiusSolar:       1,
			EvolutionaryStage: "Main Sequence",
		},
		Rotation: models.Rotation{
			Detected:               true,
			RotationalSplittingUHz: 0.4,
			RotationPeriodDays:     14.5,
		},
		QualityMetrics: models.QualityMetrics{QualityFlag: "GOOD", SignalToNoise: 12},
	})

	assert.Contains(t, report, "nu_max (peak power freq.): 3090.00 uHz")
	assert.Contains(t, report, "Evolutionary stage: Main Sequence")
	assert.Contains(t, report, "OSCILLATION MODES DETECTED: 1")
	assert.Contains(t, report, "Radial (l=0)")
	assert.Contains(t, report, "STELLAR ROTATION DETECTED")
	assert.Contains(t, report, "ANALYSIS QUALITY: GOOD")
}

func TestPatternReport(t *testing.T) {
	report := PatternReport(&models.PatternReport{
		Artificiality: models.ArtificialityScore{
			Score:          75,
			Classification: "HIGHLY ARTIFICIAL - Strong candidate for intelligent signal",
			Reasons:        []string{"Regular pulse pattern"},
		},
		Randomness: models.RandomnessAnalysis{
			RunsTest: &models.RunsTest{IsRandom: false, PValue: 0.0001},
		},
		Pulses: models.PulseAnalysis{
			IsRegular:          true,
			NPulses:            19,
			MeanInterval:       25,
			IntervalRegularity: 0.98,
		},
	})

	assert.Contains(t, report, "ARTIFICIALITY SCORE: 75/100")
	assert.Contains(t, report, "* Regular pulse pattern")
	assert.Contains(t, report, "Runs test: NON-RANDOM")
	assert.Contains(t, report, "REGULAR PULSES DETECTED")
}
