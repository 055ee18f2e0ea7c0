package pattern

import (
	"math"

	"github.com/skywatch/cosmoscan/internal/numeric"
	"github.com/skywatch/cosmoscan/models"
)

// analyzeEntropy quantizes the signal into a histogram and reports its
// Shannon entropy (nats) against the maximum achievable for the bin count.
func analyzeEntropy(data []float64) models.EntropyAnalysis {
	nBins := numeric.MinInt(100, len(data)/10)
	counts := histogram(data, nBins)

	total := 0.0
	for _, c := range counts {
		total += float64(c)
	}

	shannon := 0.0
	if total > 0 {
		for _, c := range counts {
			if c > 0 {
				p := float64(c) / total
				shannon -= p * math.Log(p)
			}
		}
	}

	maxEntropy := math.Log2(float64(nBins))
	normalized := 0.0
	if maxEntropy > 0 {
		normalized = shannon / maxEntropy
	}

	interpretation := "Highly structured"
	switch {
	case normalized > 0.8:
		interpretation = "High randomness"
	case normalized > 0.5:
		interpretation = "Some structure"
	}

	return models.EntropyAnalysis{
		ShannonEntropy:    shannon,
		MaxEntropy:        maxEntropy,
		NormalizedEntropy: normalized,
		Interpretation:    interpretation,
	}
}

// histogram counts data into nBins equal-width bins spanning [min, max],
// with the top edge inclusive.
func histogram(data []float64, nBins int) []int {
	if nBins < 1 {
		return nil
	}
	counts := make([]int, nBins)

	lo := numeric.Min(data)
	hi := numeric.Max(data)
	if hi == lo {
		counts[0] = len(data)
		return counts
	}

	width := (hi - lo) / float64(nBins)
	for _, v := range data {
		idx := int((v - lo) / width)
		if idx >= nBins {
			idx = nBins - 1
		}
		counts[idx]++
	}
	return counts
}
