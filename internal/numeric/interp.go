package numeric

// Arange returns values from start up to (but excluding) stop with the given
// step.
func Arange(start, stop, step float64) []float64 {
	if step <= 0 || stop <= start {
		return nil
	}
	n := int((stop - start) / step)
	if start+float64(n)*step < stop {
		n++
	}
	out := make([]float64, 0, n)
	for v := start; v < stop; v += step {
		out = append(out, v)
	}
	return out
}

// Linspace returns n evenly spaced values over [start, stop].
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Interp linearly interpolates fp sampled at xp onto the query points x.
// xp must be increasing; queries outside [xp[0], xp[n-1]] are clamped to the
// boundary values.
func Interp(x, xp, fp []float64) []float64 {
	out := make([]float64, len(x))
	n := len(xp)
	if n == 0 {
		return out
	}
	for i, xv := range x {
		switch {
		case xv <= xp[0]:
			out[i] = fp[0]
		case xv >= xp[n-1]:
			out[i] = fp[n-1]
		default:
			// Binary search for the bracketing interval.
			lo, hi := 0, n-1
			for hi-lo > 1 {
				mid := (lo + hi) / 2
				if xp[mid] <= xv {
					lo = mid
				} else {
					hi = mid
				}
			}
			span := xp[hi] - xp[lo]
			if span == 0 {
				out[i] = fp[lo]
			} else {
				frac := (xv - xp[lo]) / span
				out[i] = fp[lo] + frac*(fp[hi]-fp[lo])
			}
		}
	}
	return out
}
