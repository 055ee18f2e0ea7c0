package pattern

import (
	"math"

	"github.com/skywatch/cosmoscan/internal/numeric"
	"github.com/skywatch/cosmoscan/models"
)

// testRandomness runs the runs test, an autocorrelation check, Shapiro-Wilk
// normality (for series short enough) and collects distribution moments.
func (d *Detector) testRandomness(data []float64) models.RandomnessAnalysis {
	result := models.RandomnessAnalysis{
		Distribution: models.Distribution{
			Mean:     numeric.Mean(data),
			Std:      numeric.Std(data),
			Skewness: numeric.Skewness(data),
			Kurtosis: numeric.Kurtosis(data),
		},
	}

	result.RunsTest = runsTest(data, d.significanceLevel)

	nlags := numeric.MinInt(100, len(data)/4)
	if nlags >= 2 {
		a := acf(data, nlags)
		maxACF := 0.0
		for _, v := range a[1:] {
			if abs := math.Abs(v); abs > maxACF {
				maxACF = abs
			}
		}
		result.AutocorrelationTest = models.AutocorrelationTest{
			MaxAutocorr: maxACF,
			IsRandom:    maxACF < 0.2,
		}
	}

	if len(data) < 5000 {
		if stat, p, err := numeric.ShapiroWilk(data); err == nil {
			result.NormalityTest = &models.NormalityTest{
				Statistic: stat,
				PValue:    p,
				IsNormal:  p > d.significanceLevel,
			}
		}
	}

	return result
}

// runsTest performs a median-split runs test. Returns nil when every sample
// falls on one side of the median.
func runsTest(data []float64, significanceLevel float64) *models.RunsTest {
	median := numeric.Median(data)

	n := len(data)
	n1 := 0
	nRuns := 1
	prev := data[0] > median
	if prev {
		n1++
	}
	for _, v := range data[1:] {
		above := v > median
		if above != prev {
			nRuns++
		}
		if above {
			n1++
		}
		prev = above
	}
	n2 := n - n1
	if n1 == 0 || n2 == 0 {
		return nil
	}

	fn, f1, f2 := float64(n), float64(n1), float64(n2)
	expected := (2*f1*f2)/fn + 1
	variance := (2 * f1 * f2 * (2*f1*f2 - fn)) / (fn * fn * (fn - 1))

	z := 0.0
	if variance > 0 {
		z = (float64(nRuns) - expected) / math.Sqrt(variance)
	}
	p := 2 * (1 - numeric.NormalCDF(math.Abs(z)))

	return &models.RunsTest{
		ZScore:   z,
		PValue:   p,
		IsRandom: p > significanceLevel,
	}
}
