package numeric

import "sort"

// PeakOptions restricts which local maxima FindPeaks reports. Zero values
// disable the corresponding condition.
type PeakOptions struct {
	Height     float64 // minimum peak value
	HasHeight  bool
	Distance   int     // minimum index separation between kept peaks
	Prominence float64 // minimum peak prominence
}

// FindPeaks returns the indices of local maxima of values, in ascending
// order. Plateaus report their middle sample. When a minimum distance is set,
// smaller peaks closer than that to a taller one are dropped, tallest first.
func FindPeaks(values []float64, opts PeakOptions) []int {
	n := len(values)
	if n < 3 {
		return nil
	}

	var peaks []int
	i := 1
	for i < n-1 {
		if values[i-1] < values[i] {
			// Scan forward over a possible plateau.
			j := i
			for j < n-1 && values[j+1] == values[i] {
				j++
			}
			if j < n-1 && values[j+1] < values[i] {
				peaks = append(peaks, (i+j)/2)
				i = j + 1
				continue
			}
			i = j + 1
			continue
		}
		i++
	}

	if opts.HasHeight {
		kept := peaks[:0]
		for _, p := range peaks {
			if values[p] >= opts.Height {
				kept = append(kept, p)
			}
		}
		peaks = kept
	}

	if opts.Prominence > 0 {
		proms, _, _ := Prominences(values, peaks)
		kept := peaks[:0]
		for k, p := range peaks {
			if proms[k] >= opts.Prominence {
				kept = append(kept, p)
			}
		}
		peaks = kept
	}

	if opts.Distance > 1 && len(peaks) > 1 {
		peaks = selectByDistance(values, peaks, opts.Distance)
	}

	return peaks
}

// selectByDistance drops peaks closer than distance to a taller kept peak.
func selectByDistance(values []float64, peaks []int, distance int) []int {
	order := make([]int, len(peaks))
	for i := range order {
		order[i] = i
	}
	// Lowest priority first; iterate from the back so tallest win.
	sort.SliceStable(order, func(a, b int) bool {
		return values[peaks[order[a]]] < values[peaks[order[b]]]
	})

	keep := make([]bool, len(peaks))
	for i := range keep {
		keep[i] = true
	}

	for i := len(order) - 1; i >= 0; i-- {
		j := order[i]
		if !keep[j] {
			continue
		}
		for k := j - 1; k >= 0 && peaks[j]-peaks[k] < distance; k-- {
			keep[k] = false
		}
		for k := j + 1; k < len(peaks) && peaks[k]-peaks[j] < distance; k++ {
			keep[k] = false
		}
	}

	var out []int
	for i, p := range peaks {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}

// Prominences returns the prominence of each peak along with the indices of
// the left and right bases used to compute it.
func Prominences(values []float64, peaks []int) (proms []float64, leftBases, rightBases []int) {
	proms = make([]float64, len(peaks))
	leftBases = make([]int, len(peaks))
	rightBases = make([]int, len(peaks))

	for k, p := range peaks {
		height := values[p]

		leftMin := height
		leftBase := p
		for i := p - 1; i >= 0; i-- {
			if values[i] > height {
				break
			}
			if values[i] < leftMin {
				leftMin = values[i]
				leftBase = i
			}
		}

		rightMin := height
		rightBase := p
		for i := p + 1; i < len(values); i++ {
			if values[i] > height {
				break
			}
			if values[i] < rightMin {
				rightMin = values[i]
				rightBase = i
			}
		}

		base := leftMin
		if rightMin > base {
			base = rightMin
		}
		proms[k] = height - base
		leftBases[k] = leftBase
		rightBases[k] = rightBase
	}
	return proms, leftBases, rightBases
}

// PeakWidths measures the width of each peak, in samples, at the height
// height - prominence*relHeight, interpolating the crossing points linearly.
func PeakWidths(values []float64, peaks []int, relHeight float64) []float64 {
	proms, leftBases, rightBases := Prominences(values, peaks)
	widths := make([]float64, len(peaks))

	for k, p := range peaks {
		evalHeight := values[p] - proms[k]*relHeight

		// Left crossing.
		leftIP := float64(leftBases[k])
		for i := p; i > leftBases[k]; i-- {
			if values[i-1] < evalHeight {
				span := values[i] - values[i-1]
				frac := 0.0
				if span != 0 {
					frac = (values[i] - evalHeight) / span
				}
				leftIP = float64(i) - frac
				break
			}
		}

		// Right crossing.
		rightIP := float64(rightBases[k])
		for i := p; i < rightBases[k]; i++ {
			if values[i+1] < evalHeight {
				span := values[i] - values[i+1]
				frac := 0.0
				if span != 0 {
					frac = (values[i] - evalHeight) / span
				}
				rightIP = float64(i) + frac
				break
			}
		}

		widths[k] = rightIP - leftIP
	}
	return widths
}
