package numeric

import (
	"errors"
	"math"
	"sort"
)

// ErrShapiroRange is returned when the sample is too small or degenerate for
// the Shapiro-Wilk test.
var ErrShapiroRange = errors.New("numeric: shapiro-wilk needs at least 3 distinct values")

// ShapiroWilk runs the Shapiro-Wilk normality test (Royston's AS R94
// approximation) and returns the W statistic and its p-value. Valid for
// sample sizes from 3 to about 5000.
func ShapiroWilk(values []float64) (w, p float64, err error) {
	n := len(values)
	if n < 3 {
		return 0, 0, ErrShapiroRange
	}

	x := make([]float64, n)
	copy(x, values)
	sort.Float64s(x)
	if x[n-1] == x[0] {
		return 0, 0, ErrShapiroRange
	}

	an := float64(n)
	nn2 := n / 2
	a := make([]float64, nn2+1) // 1-based

	if n == 3 {
		a[1] = math.Sqrt(0.5)
	} else {
		an25 := an + 0.25
		summ2 := 0.0
		for i := 1; i <= nn2; i++ {
			a[i] = normalQuantile((float64(i) - 0.375) / an25)
			summ2 += a[i] * a[i]
		}
		summ2 *= 2
		ssumm2 := math.Sqrt(summ2)
		rsn := 1 / math.Sqrt(an)

		c1 := []float64{0, 0.221157, -0.147981, -2.071190, 4.434685, -2.706056}
		c2 := []float64{0, 0.042981, -0.293762, -1.752461, 5.682633, -3.582633}
		a1 := polyHorner(c1, rsn) - a[1]/ssumm2

		var i1 int
		var fac float64
		if n > 5 {
			i1 = 3
			a2 := -a[2]/ssumm2 + polyHorner(c2, rsn)
			fac = math.Sqrt((summ2 - 2*a[1]*a[1] - 2*a[2]*a[2]) /
				(1 - 2*a1*a1 - 2*a2*a2))
			a[2] = a2
		} else {
			i1 = 2
			fac = math.Sqrt((summ2 - 2*a[1]*a[1]) / (1 - 2*a1*a1))
		}
		a[1] = a1
		for i := i1; i <= nn2; i++ {
			a[i] = -a[i] / fac
		}
	}

	// W is the squared correlation between the sorted data and the
	// antisymmetric coefficient vector.
	coef := func(i int) float64 { // i is 0-based
		j := n - 1 - i
		if i == j {
			return 0
		}
		if i < j {
			return -a[i+1]
		}
		return a[j+1]
	}

	var sx, sa float64
	for i := 0; i < n; i++ {
		sx += x[i]
		sa += coef(i)
	}
	sx /= an
	sa /= an

	var ssa, ssx, sxa float64
	for i := 0; i < n; i++ {
		asa := coef(i) - sa
		xsx := x[i] - sx
		ssa += asa * asa
		ssx += xsx * xsx
		sxa += xsx * asa
	}
	ssassx := math.Sqrt(ssa * ssx)
	w1 := (ssassx - sxa) * (ssassx + sxa) / (ssa * ssx)
	w = 1 - w1

	// Significance level.
	if n == 3 {
		const pi6 = 1.909859
		const stqr = 1.047198
		p = pi6 * (math.Asin(math.Sqrt(w)) - stqr)
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
		return w, p, nil
	}

	y := math.Log(1 - w)
	var m, s float64
	if n <= 11 {
		g := []float64{-2.273, 0.459}
		gamma := polyHorner(g, an)
		if y >= gamma {
			return w, 1e-19, nil
		}
		y = -math.Log(gamma - y)
		c3 := []float64{0.544, -0.39978, 0.025054, -6.714e-4}
		c4 := []float64{1.3822, -0.77857, 0.062767, -0.0020322}
		m = polyHorner(c3, an)
		s = math.Exp(polyHorner(c4, an))
	} else {
		xx := math.Log(an)
		c5 := []float64{-1.5861, -0.31082, -0.083751, 0.0038915}
		c6 := []float64{-0.4803, -0.082676, 0.0030302}
		m = polyHorner(c5, xx)
		s = math.Exp(polyHorner(c6, xx))
	}
	p = normalUpperTail((y - m) / s)
	return w, p, nil
}

// polyHorner evaluates c[0] + c[1]*x + c[2]*x^2 + ...
func polyHorner(c []float64, x float64) float64 {
	sum := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		sum = sum*x + c[i]
	}
	return sum
}

// normalUpperTail is P(Z > z) for a standard normal Z.
func normalUpperTail(z float64) float64 {
	return 0.5 * math.Erfc(z/math.Sqrt2)
}

// NormalCDF is P(Z <= z) for a standard normal Z.
func NormalCDF(z float64) float64 {
	return 0.5 * math.Erfc(-z/math.Sqrt2)
}

// normalQuantile inverts the standard normal CDF using Acklam's rational
// approximation with one Halley refinement step.
func normalQuantile(p float64) float64 {
	if p <= 0 {
		return math.Inf(-1)
	}
	if p >= 1 {
		return math.Inf(1)
	}

	a := []float64{-3.969683028665376e+01, 2.209460984245205e+02,
		-2.759285104469687e+02, 1.383577518672690e+02,
		-3.066479806614716e+01, 2.506628277459239e+00}
	b := []float64{-5.447609879822406e+01, 1.615858368580409e+02,
		-1.556989798598866e+02, 6.680131188771972e+01,
		-1.328068155288572e+01}
	c := []float64{-7.784894002430293e-03, -3.223964580411365e-01,
		-2.400758277161838e+00, -2.549732539343734e+00,
		4.374664141464968e+00, 2.938163982698783e+00}
	d := []float64{7.784695709041462e-03, 3.224671290700398e-01,
		2.445134137142996e+00, 3.754408661907416e+00}

	const pLow = 0.02425
	var x float64
	switch {
	case p < pLow:
		q := math.Sqrt(-2 * math.Log(p))
		x = (((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
	case p <= 1-pLow:
		q := p - 0.5
		r := q * q
		x = (((((a[0]*r+a[1])*r+a[2])*r+a[3])*r+a[4])*r + a[5]) * q /
			(((((b[0]*r+b[1])*r+b[2])*r+b[3])*r+b[4])*r + 1)
	default:
		q := math.Sqrt(-2 * math.Log(1-p))
		x = -(((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
	}

	// Halley refinement.
	e := NormalCDF(x) - p
	u := e * math.Sqrt(2*math.Pi) * math.Exp(x*x/2)
	x = x - u/(1+x*u/2)
	return x
}
