package pattern

import (
	"math"

	"github.com/skywatch/cosmoscan/models"
)

// primePattern reports what fraction of the samples are prime. Only applies
// when the series is essentially integer-valued; otherwise returns nil.
func primePattern(data []float64) *models.PrimePattern {
	if !isIntegerLike(data) {
		return nil
	}
	primes := 0
	for _, v := range data {
		n := int(math.Abs(math.Round(v)))
		if math.Round(v) > 1 && isPrime(n) {
			primes++
		}
	}
	ratio := float64(primes) / float64(len(data))
	return &models.PrimePattern{
		Ratio:       ratio,
		Significant: ratio > 0.1,
	}
}

// specialRatios checks how often successive absolute differences land on the
// golden ratio, pi or e. Needs more than 10 nonzero differences; otherwise
// returns nil.
func specialRatios(data []float64) *models.SpecialRatios {
	var ratios []float64
	for i := 1; i < len(data); i++ {
		if r := math.Abs(data[i] - data[i-1]); r > 0 {
			ratios = append(ratios, r)
		}
	}
	if len(ratios) <= 10 {
		return nil
	}

	const goldenRatio = 1.618033988749895
	var golden, pi, e int
	for _, r := range ratios {
		if math.Abs(r-goldenRatio) < 0.01 {
			golden++
		}
		if math.Abs(r-math.Pi) < 0.01 {
			pi++
		}
		if math.Abs(r-math.E) < 0.01 {
			e++
		}
	}

	total := float64(len(ratios))
	goldenFreq := float64(golden) / total
	piFreq := float64(pi) / total
	eFreq := float64(e) / total

	return &models.SpecialRatios{
		GoldenRatioFrequency: goldenFreq,
		PiFrequency:          piFreq,
		EFrequency:           eFreq,
		Significant:          math.Max(goldenFreq, math.Max(piFreq, eFreq)) > 0.05,
	}
}

// findRepeatingSequences scans every subsequence of length minLength up to
// 19 (capped at a quarter of the series) for later repeats, comparing
// samples quantized to two decimals with 0.1 tolerance. Quadratic in the
// series length; intended for short extracted signals.
func findRepeatingSequences(data []float64, minLength int) models.Repetition {
	quant := make([]float64, len(data))
	for i, v := range data {
		quant[i] = math.Round(v*100) / 100
	}

	maxRepeats := 0
	bestLength := 0
	maxLen := 20
	if limit := len(data) / 4; limit < maxLen {
		maxLen = limit
	}

	for seqLen := minLength; seqLen < maxLen; seqLen++ {
		for i := 0; i < len(data)-seqLen; i++ {
			sequence := quant[i : i+seqLen]

			repeats := 0
			for j := i + seqLen; j < len(data)-seqLen; j++ {
				if segmentsClose(quant[j:j+seqLen], sequence, 0.1) {
					repeats++
				}
			}
			if repeats > maxRepeats {
				maxRepeats = repeats
				bestLength = seqLen
			}
		}
	}

	return models.Repetition{
		MaxRepetitions: maxRepeats,
		SequenceLength: bestLength,
		HasRepetition:  maxRepeats >= 2,
	}
}

func segmentsClose(a, b []float64, atol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > atol+1e-5*math.Abs(b[i]) {
			return false
		}
	}
	return true
}

func isIntegerLike(data []float64) bool {
	for _, v := range data {
		r := math.Round(v)
		if math.Abs(v-r) > 0.1+1e-5*math.Abs(r) {
			return false
		}
	}
	return true
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}
