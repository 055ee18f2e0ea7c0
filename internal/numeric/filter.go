package numeric

// ConvolveSame convolves values with kernel and returns the central part of
// the result with the same length as values. Points beyond the edges are
// treated as zero.
func ConvolveSame(values, kernel []float64) []float64 {
	n := len(values)
	m := len(kernel)
	if n == 0 || m == 0 {
		return nil
	}
	out := make([]float64, n)
	offset := (m - 1) / 2
	for i := 0; i < n; i++ {
		j := i + offset
		sum := 0.0
		for k := 0; k < m; k++ {
			idx := j - k
			if idx >= 0 && idx < n {
				sum += values[idx] * kernel[k]
			}
		}
		out[i] = sum
	}
	return out
}

// BoxcarSmooth smooths values with a moving-average kernel of the given width.
func BoxcarSmooth(values []float64, width int) []float64 {
	if width < 1 {
		width = 1
	}
	kernel := make([]float64, width)
	for i := range kernel {
		kernel[i] = 1 / float64(width)
	}
	return ConvolveSame(values, kernel)
}

// SavitzkyGolay applies a Savitzky-Golay smoothing filter with the given
// window length (must be odd) and polynomial order. Edge regions are handled
// by fitting a polynomial to the first/last window points and evaluating it
// there, matching the usual "interp" boundary treatment.
func SavitzkyGolay(values []float64, window, order int) []float64 {
	n := len(values)
	if window%2 == 0 {
		window++
	}
	if window > n {
		window = n
		if window%2 == 0 {
			window--
		}
	}
	if window < order+2 || n < window {
		out := make([]float64, n)
		copy(out, values)
		return out
	}

	half := window / 2
	coeffs := savgolCoefficients(window, order)

	out := make([]float64, n)
	for i := half; i < n-half; i++ {
		sum := 0.0
		for j := -half; j <= half; j++ {
			sum += coeffs[j+half] * values[i+j]
		}
		out[i] = sum
	}

	// Left edge: polynomial fit over the first window samples.
	leftPoly := polyfitRange(values[:window], order)
	for i := 0; i < half; i++ {
		out[i] = polyval(leftPoly, float64(i))
	}

	// Right edge: polynomial fit over the last window samples.
	rightPoly := polyfitRange(values[n-window:], order)
	for i := n - half; i < n; i++ {
		out[i] = polyval(rightPoly, float64(i-(n-window)))
	}

	return out
}

// savgolCoefficients returns the convolution weights that evaluate a
// least-squares polynomial of the given order at the window center.
func savgolCoefficients(window, order int) []float64 {
	half := window / 2
	size := order + 1

	// Normal-equation matrix G[p][q] = sum_j j^(p+q) over the window.
	g := make([][]float64, size)
	for p := 0; p < size; p++ {
		g[p] = make([]float64, size)
		for q := 0; q < size; q++ {
			sum := 0.0
			for j := -half; j <= half; j++ {
				sum += powInt(float64(j), p+q)
			}
			g[p][q] = sum
		}
	}

	// Solve G u = e0; the weight for offset j is then sum_p u[p] * j^p.
	e0 := make([]float64, size)
	e0[0] = 1
	u, ok := SolveLinear(g, e0)
	if !ok {
		// Degenerate window, fall back to a plain average.
		coeffs := make([]float64, window)
		for i := range coeffs {
			coeffs[i] = 1 / float64(window)
		}
		return coeffs
	}

	coeffs := make([]float64, window)
	for j := -half; j <= half; j++ {
		sum := 0.0
		for p := 0; p < size; p++ {
			sum += u[p] * powInt(float64(j), p)
		}
		coeffs[j+half] = sum
	}
	return coeffs
}

// polyfitRange fits a polynomial of the given order to values at x=0..len-1
// and returns its coefficients, lowest order first.
func polyfitRange(values []float64, order int) []float64 {
	n := len(values)
	size := order + 1

	g := make([][]float64, size)
	b := make([]float64, size)
	for p := 0; p < size; p++ {
		g[p] = make([]float64, size)
		for q := 0; q < size; q++ {
			sum := 0.0
			for i := 0; i < n; i++ {
				sum += powInt(float64(i), p+q)
			}
			g[p][q] = sum
		}
		for i := 0; i < n; i++ {
			b[p] += powInt(float64(i), p) * values[i]
		}
	}

	coeffs, ok := SolveLinear(g, b)
	if !ok {
		return []float64{Mean(values)}
	}
	return coeffs
}

func polyval(coeffs []float64, x float64) float64 {
	sum := 0.0
	for p, c := range coeffs {
		sum += c * powInt(x, p)
	}
	return sum
}

func powInt(x float64, p int) float64 {
	result := 1.0
	for i := 0; i < p; i++ {
		result *= x
	}
	return result
}

// SolveLinear solves the square system a*x=b by Gaussian elimination with
// partial pivoting. Returns false if the system is singular.
func SolveLinear(a [][]float64, b []float64) ([]float64, bool) {
	n := len(b)
	// Work on copies so callers keep their matrices.
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n+1)
		copy(m[i], a[i])
		m[i][n] = b[i]
	}

	for col := 0; col < n; col++ {
		pivot := col
		for row := col + 1; row < n; row++ {
			if abs(m[row][col]) > abs(m[pivot][col]) {
				pivot = row
			}
		}
		if abs(m[pivot][col]) < 1e-14 {
			return nil, false
		}
		m[col], m[pivot] = m[pivot], m[col]

		for row := col + 1; row < n; row++ {
			factor := m[row][col] / m[col][col]
			for k := col; k <= n; k++ {
				m[row][k] -= factor * m[col][k]
			}
		}
	}

	x := make([]float64, n)
	for row := n - 1; row >= 0; row-- {
		sum := m[row][n]
		for k := row + 1; k < n; k++ {
			sum -= m[row][k] * x[k]
		}
		x[row] = sum / m[row][row]
	}
	return x, true
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
