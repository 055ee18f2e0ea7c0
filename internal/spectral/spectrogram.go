package spectral

import (
	"math"
	"math/cmplx"
)

// Spectrogram computes a one-sided power spectral density spectrogram of
// data sampled at fs Hz, using Tukey-windowed segments of length nperseg
// with 1/8 overlap. Sxx is indexed [frequency][segment].
func Spectrogram(data []float64, fs float64, nperseg int) (freqs []float64, Sxx [][]float64) {
	n := len(data)
	if nperseg < 2 {
		nperseg = 2
	}
	if nperseg > n {
		nperseg = n
	}
	noverlap := nperseg / 8
	step := nperseg - noverlap

	window := tukeyPeriodic(nperseg, 0.25)
	winSumSq := 0.0
	for _, w := range window {
		winSumSq += w * w
	}
	scale := 1 / (fs * winSumSq)

	nFreqs := nperseg/2 + 1
	freqs = make([]float64, nFreqs)
	for i := range freqs {
		freqs[i] = float64(i) * fs / float64(nperseg)
	}

	Sxx = make([][]float64, nFreqs)
	for i := range Sxx {
		Sxx[i] = []float64{}
	}

	seg := make([]complex128, nperseg)
	for start := 0; start+nperseg <= n; start += step {
		// Constant detrend per segment.
		mean := 0.0
		for i := 0; i < nperseg; i++ {
			mean += data[start+i]
		}
		mean /= float64(nperseg)

		for i := 0; i < nperseg; i++ {
			seg[i] = complex((data[start+i]-mean)*window[i], 0)
		}
		spec := FFT(seg)

		for i := 0; i < nFreqs; i++ {
			psd := real(spec[i])*real(spec[i]) + imag(spec[i])*imag(spec[i])
			psd *= scale
			// One-sided spectrum doubles everything except DC and Nyquist.
			if i != 0 && !(nperseg%2 == 0 && i == nFreqs-1) {
				psd *= 2
			}
			Sxx[i] = append(Sxx[i], psd)
		}
	}
	return freqs, Sxx
}

// tukeyPeriodic returns an m-point periodic Tukey (tapered cosine) window
// with taper fraction alpha.
func tukeyPeriodic(m int, alpha float64) []float64 {
	// Periodic windows are the first m points of an (m+1)-point symmetric
	// window.
	n := m + 1
	sym := make([]float64, n)
	if alpha <= 0 {
		for i := range sym {
			sym[i] = 1
		}
	} else {
		edge := alpha * float64(n-1) / 2
		for i := 0; i < n; i++ {
			x := float64(i)
			switch {
			case x < edge:
				sym[i] = 0.5 * (1 + math.Cos(math.Pi*(2*x/(alpha*float64(n-1))-1)))
			case x > float64(n-1)-edge:
				sym[i] = 0.5 * (1 + math.Cos(math.Pi*(2*x/(alpha*float64(n-1))-2/alpha+1)))
			default:
				sym[i] = 1
			}
		}
	}
	return sym[:m]
}

// AnalyticEnvelope returns the instantaneous amplitude envelope and the
// instantaneous frequency (cycles per sample) of data via the Hilbert
// transform.
func AnalyticEnvelope(data []float64) (envelope, instFreq []float64) {
	analytic := Hilbert(data)
	n := len(analytic)
	envelope = make([]float64, n)
	phase := make([]float64, n)
	for i, v := range analytic {
		envelope[i] = cmplx.Abs(v)
		phase[i] = cmplx.Phase(v)
	}

	// Unwrap the phase before differentiating.
	unwrapped := make([]float64, n)
	if n > 0 {
		unwrapped[0] = phase[0]
		for i := 1; i < n; i++ {
			d := phase[i] - phase[i-1]
			for d > math.Pi {
				d -= 2 * math.Pi
			}
			for d < -math.Pi {
				d += 2 * math.Pi
			}
			unwrapped[i] = unwrapped[i-1] + d
		}
	}

	if n > 1 {
		instFreq = make([]float64, n-1)
		for i := 1; i < n; i++ {
			instFreq[i-1] = (unwrapped[i] - unwrapped[i-1]) / (2 * math.Pi)
		}
	}
	return envelope, instFreq
}
