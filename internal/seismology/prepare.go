package seismology

import (
	"math"

	"github.com/skywatch/cosmoscan/internal/numeric"
)

// prepareLightCurve cleans the flux series for spectral analysis: replaces
// 5-sigma outliers with the median, removes the long-period trend with a
// Savitzky-Golay filter and standardizes to zero mean, unit variance.
func prepareLightCurve(flux []float64) []float64 {
	median := numeric.Median(flux)
	std := numeric.Std(flux)

	clean := make([]float64, len(flux))
	for i, f := range flux {
		if std > 0 && math.Abs(f-median) >= 5*std {
			clean[i] = median
		} else {
			clean[i] = f
		}
	}

	// Detrend only when the series is long enough for a stable fit.
	detrended := clean
	windowSize := numeric.MinInt(len(clean)/10, 1000)
	if windowSize > 10 {
		trend := numeric.SavitzkyGolay(clean, windowSize|1, 3)
		trendMedian := numeric.Median(trend)
		detrended = make([]float64, len(clean))
		for i := range clean {
			detrended[i] = clean[i] - trend[i] + trendMedian
		}
	}

	mean := numeric.Mean(detrended)
	dstd := numeric.Std(detrended)
	if dstd == 0 {
		dstd = 1
	}
	norm := make([]float64, len(detrended))
	for i, v := range detrended {
		norm[i] = (v - mean) / dstd
	}
	return norm
}
