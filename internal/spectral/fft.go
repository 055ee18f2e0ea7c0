package spectral

import (
	"math"
	"math/cmplx"
)

// FFT computes the discrete Fourier transform of x. Power-of-two lengths use
// an iterative radix-2 transform; other lengths go through Bluestein's
// chirp-z algorithm so arbitrary series lengths keep O(n log n) cost.
func FFT(x []complex128) []complex128 {
	n := len(x)
	if n == 0 {
		return nil
	}
	if n&(n-1) == 0 {
		out := make([]complex128, n)
		copy(out, x)
		fftRadix2(out, false)
		return out
	}
	return fftBluestein(x)
}

// IFFT computes the inverse discrete Fourier transform of x.
func IFFT(x []complex128) []complex128 {
	n := len(x)
	if n == 0 {
		return nil
	}
	conj := make([]complex128, n)
	for i, v := range x {
		conj[i] = cmplx.Conj(v)
	}
	out := FFT(conj)
	scale := complex(1/float64(n), 0)
	for i, v := range out {
		out[i] = cmplx.Conj(v) * scale
	}
	return out
}

// FFTFreq returns the sample frequencies for a transform of length n with
// sample spacing d, in the standard order (positive frequencies first).
func FFTFreq(n int, d float64) []float64 {
	out := make([]float64, n)
	val := 1 / (float64(n) * d)
	half := (n - 1) / 2
	for i := 0; i <= half; i++ {
		out[i] = float64(i) * val
	}
	for i := half + 1; i < n; i++ {
		out[i] = float64(i-n) * val
	}
	return out
}

// fftRadix2 transforms x in place; x must have power-of-two length.
func fftRadix2(x []complex128, inverse bool) {
	n := len(x)
	if n < 2 {
		return
	}

	// Bit-reversal permutation.
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			x[i], x[j] = x[j], x[i]
		}
	}

	for length := 2; length <= n; length <<= 1 {
		angle := -2 * math.Pi / float64(length)
		if inverse {
			angle = -angle
		}
		wLen := cmplx.Rect(1, angle)
		for start := 0; start < n; start += length {
			w := complex(1, 0)
			for k := 0; k < length/2; k++ {
				u := x[start+k]
				v := x[start+k+length/2] * w
				x[start+k] = u + v
				x[start+k+length/2] = u - v
				w *= wLen
			}
		}
	}
}

// fftBluestein computes an arbitrary-length DFT as a convolution of two
// power-of-two transforms.
func fftBluestein(x []complex128) []complex128 {
	n := len(x)
	m := 1
	for m < 2*n-1 {
		m <<= 1
	}

	// Chirp factors exp(-i*pi*k^2/n); k^2 mod 2n keeps the angle exact for
	// large k.
	chirp := make([]complex128, n)
	for k := 0; k < n; k++ {
		kk := (int64(k) * int64(k)) % int64(2*n)
		chirp[k] = cmplx.Rect(1, -math.Pi*float64(kk)/float64(n))
	}

	a := make([]complex128, m)
	for k := 0; k < n; k++ {
		a[k] = x[k] * chirp[k]
	}

	b := make([]complex128, m)
	b[0] = cmplx.Conj(chirp[0])
	for k := 1; k < n; k++ {
		c := cmplx.Conj(chirp[k])
		b[k] = c
		b[m-k] = c
	}

	fftRadix2(a, false)
	fftRadix2(b, false)
	for i := range a {
		a[i] *= b[i]
	}
	fftRadix2(a, true)
	scale := complex(1/float64(m), 0)

	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		out[k] = a[k] * scale * chirp[k]
	}
	return out
}

// Hilbert returns the analytic signal of data: the inverse transform of the
// one-sided spectrum. The imaginary part is the Hilbert transform of the
// input.
func Hilbert(data []float64) []complex128 {
	n := len(data)
	if n == 0 {
		return nil
	}
	x := make([]complex128, n)
	for i, v := range data {
		x[i] = complex(v, 0)
	}
	spec := FFT(x)

	// Double positive frequencies, zero negative ones; DC (and Nyquist for
	// even lengths) stay untouched.
	half := n / 2
	if n%2 == 0 {
		for i := 1; i < half; i++ {
			spec[i] *= 2
		}
		for i := half + 1; i < n; i++ {
			spec[i] = 0
		}
	} else {
		for i := 1; i <= half; i++ {
			spec[i] *= 2
		}
		for i := half + 1; i < n; i++ {
			spec[i] = 0
		}
	}
	return IFFT(spec)
}
