package seismology

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skywatch/cosmoscan/models"
)

func modesAt(freqs ...float64) []models.OscillationMode {
	modes := make([]models.OscillationMode, len(freqs))
	for i, f := range freqs {
		modes[i] = models.OscillationMode{FrequencyUHz: f}
	}
	return modes
}

func TestDetectRotationFromSplitModes(t *testing.T) {
	rotation := detectRotation(modesAt(3000, 3000.5, 3001))
	require.True(t, rotation.Detected)

	assert.InDelta(t, 0.5, rotation.RotationalSplittingUHz, 1e-12)
	// P = 1 / (2 * 0.5 uHz) expressed in days.
	assert.InDelta(t, 11.574, rotation.RotationPeriodDays, 0.001)
	assert.InDelta(t, 2*math.Pi*1e-6, rotation.AngularVelocityRadS, 1e-12)
}

func TestDetectRotationTooFewModes(t *testing.T) {
	rotation := detectRotation(modesAt(3000, 3001))
	assert.False(t, rotation.Detected)
}

func TestDetectRotationNoSplittingInRange(t *testing.T) {
	// Gaps of one large separation are far outside the splitting window.
	rotation := detectRotation(modesAt(3000, 3135, 3270))
	assert.False(t, rotation.Detected)
}
