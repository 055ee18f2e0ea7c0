package seismology

import (
	"math"
	"strconv"

	"github.com/skywatch/cosmoscan/internal/numeric"
	"github.com/skywatch/cosmoscan/models"
)

// identifyModes extracts individual oscillation modes from the region within
// 5 delta_nu of nu_max. Peaks above the 75th power percentile are kept,
// separated by at least a third of delta_nu, and each is assigned a radial
// order and an angular degree from its offset in the echelle pattern.
func identifyModes(frequencies, power []float64, nuMax, deltaNu float64) []models.OscillationMode {
	width := 5 * deltaNu

	var freqRegion, powerRegion []float64
	for i, f := range frequencies {
		if math.Abs(f-nuMax) < width {
			freqRegion = append(freqRegion, f)
			powerRegion = append(powerRegion, power[i])
		}
	}
	if len(freqRegion) < 2 || deltaNu <= 0 {
		return []models.OscillationMode{}
	}

	threshold := numeric.Percentile(powerRegion, 75)
	meanDiff := numeric.Mean(numeric.Diff(freqRegion))
	distance := 1
	if meanDiff > 0 {
		distance = numeric.MaxInt(1, int(deltaNu/meanDiff/3))
	}

	peaks := numeric.FindPeaks(powerRegion, numeric.PeakOptions{
		Height:    threshold,
		HasHeight: true,
		Distance:  distance,
	})

	modes := make([]models.OscillationMode, 0, len(peaks))
	for _, peak := range peaks {
		freq := freqRegion[peak]
		order := int(math.Round((freq - nuMax) / deltaNu))
		degree := classifyDegree((freq - (nuMax + float64(order)*deltaNu)) / deltaNu)

		modes = append(modes, models.OscillationMode{
			FrequencyUHz: freq,
			Amplitude:    powerRegion[peak],
			ModeOrder:    order,
			Degree:       degree,
			Type:         modeTypeName(degree),
		})
	}
	return modes
}

// classifyDegree maps an echelle offset (in units of delta_nu) to an angular
// degree. Radial modes sit near integer multiples of delta_nu, dipole modes
// near the half-integers; everything else is treated as quadrupole.
func classifyDegree(offset float64) int {
	switch {
	case math.Abs(offset) < 0.15:
		return 0
	case math.Abs(offset-0.5) < 0.15:
		return 1
	case math.Abs(offset+0.5) < 0.15:
		return 1
	default:
		return 2
	}
}

func modeTypeName(degree int) string {
	switch degree {
	case 0:
		return "Radial (l=0)"
	case 1:
		return "Dipole (l=1)"
	case 2:
		return "Quadrupole (l=2)"
	case 3:
		return "Octupole (l=3)"
	default:
		return "l=" + strconv.Itoa(degree)
	}
}
