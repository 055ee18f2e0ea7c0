package detect

import (
	"math"

	"github.com/skywatch/cosmoscan/models"
)

// DefaultAsteroidVelocityThreshold is the minimum apparent speed, in
// degrees per day, treated as real motion.
const DefaultAsteroidVelocityThreshold = 0.01

// DetectAsteroids looks for apparent motion in a series of sky positions.
// Fewer than 3 samples yield an empty result.
func (d *Detector) DetectAsteroids(positions []models.SkyPosition, times []float64, velocityThreshold float64) ([]models.AsteroidCandidate, error) {
	if len(positions) != len(times) {
		return nil, ErrLengthMismatch
	}
	if len(positions) < 3 {
		return []models.AsteroidCandidate{}, nil
	}

	type velocity struct{ ra, dec float64 }
	velocities := make([]velocity, 0, len(positions)-1)
	speeds := make([]float64, 0, len(positions)-1)
	for i := 1; i < len(positions); i++ {
		dt := times[i] - times[i-1]
		if dt == 0 {
			continue
		}
		v := velocity{
			ra:  (positions[i].RA - positions[i-1].RA) / dt,
			dec: (positions[i].Dec - positions[i-1].Dec) / dt,
		}
		velocities = append(velocities, v)
		speeds = append(speeds, math.Sqrt(v.ra*v.ra+v.dec*v.dec))
	}

	var sumRA, sumDec float64
	moving := 0
	for i, s := range speeds {
		if s > velocityThreshold {
			sumRA += velocities[i].ra
			sumDec += velocities[i].dec
			moving++
		}
	}
	if moving == 0 {
		return []models.AsteroidCandidate{}, nil
	}

	meanRA := sumRA / float64(moving)
	meanDec := sumDec / float64(moving)
	meanSpeed := math.Sqrt(meanRA*meanRA + meanDec*meanDec)

	orbitType, eccentricity := classifyOrbit(speeds)

	return []models.AsteroidCandidate{{
		MeanVelocityDegDay:  meanSpeed,
		VelocityRA:          meanRA,
		VelocityDec:         meanDec,
		OrbitType:           orbitType,
		Eccentricity:        eccentricity,
		FirstPosition:       positions[0],
		LastPosition:        positions[len(positions)-1],
		ObservationSpanDays: times[len(times)-1] - times[0],
	}}, nil
}

// classifyOrbit buckets the object into a broad orbit family from its mean
// apparent speed. The eccentricities are representative values for the
// family, not fits.
func classifyOrbit(speeds []float64) (string, float64) {
	if len(speeds) == 0 {
		return "Outer Belt", 0.1
	}
	mean := 0.0
	for _, s := range speeds {
		mean += s
	}
	mean /= float64(len(speeds))

	switch {
	case mean > 1.0:
		return "NEO", 0.3
	case mean > 0.1:
		return "Main Belt", 0.15
	default:
		return "Outer Belt", 0.1
	}
}
