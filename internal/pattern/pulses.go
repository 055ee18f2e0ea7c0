package pattern

import (
	"math"

	"github.com/skywatch/cosmoscan/internal/numeric"
	"github.com/skywatch/cosmoscan/models"
)

// detectPulses finds abrupt changes in the signal via its first derivative
// and checks whether the intervals between them are regular.
func detectPulses(data []float64) models.PulseAnalysis {
	diff := make([]float64, len(data)-1)
	for i := 1; i < len(data); i++ {
		diff[i-1] = math.Abs(data[i] - data[i-1])
	}
	threshold := numeric.Mean(diff) + 3*numeric.Std(diff)

	var pulseIndices []int
	for i, d := range diff {
		if d > threshold {
			pulseIndices = append(pulseIndices, i)
		}
	}

	if len(pulseIndices) <= 1 {
		return models.PulseAnalysis{NPulses: len(pulseIndices), IsRegular: false}
	}

	intervals := make([]float64, len(pulseIndices)-1)
	for i := 1; i < len(pulseIndices); i++ {
		intervals[i-1] = float64(pulseIndices[i] - pulseIndices[i-1])
	}

	intervalMean := numeric.Mean(intervals)
	regularity := 0.0
	if intervalMean > 0 {
		regularity = 1 - numeric.Std(intervals)/intervalMean
	}

	return models.PulseAnalysis{
		NPulses:            len(pulseIndices),
		MeanInterval:       intervalMean,
		IntervalRegularity: regularity,
		IsRegular:          regularity > 0.8,
	}
}
