package seismology

import (
	"math"

	"github.com/skywatch/cosmoscan/models"
)

// estimateStellarParameters derives mass, radius, surface gravity, density,
// age and effective temperature from (nu_max, delta_nu) via the
// asteroseismic scaling relations (Chaplin & Miglio 2013).
func estimateStellarParameters(nuMax, deltaNu float64) models.StellarParameters {
	mass := math.Pow(nuMax/SolarNuMax, 3) * math.Pow(deltaNu/SolarDeltaNu, -4)
	radius := (nuMax / SolarNuMax) * math.Pow(deltaNu/SolarDeltaNu, -2)
	logG := math.Log10(mass/(radius*radius)) + 4.437
	density := math.Pow(deltaNu/SolarDeltaNu, 2)

	// Crude age estimate: massive stars evolve faster.
	var ageGyr float64
	if mass > 1.2 {
		ageGyr = 5.0 / mass
	} else {
		ageGyr = 5.0 + (1.0-mass)*5.0
	}

	// Crude Teff estimate anchored on the Sun.
	var teff float64
	if nuMax > 2000 {
		teff = 5777 + (nuMax-SolarNuMax)*0.5
	} else {
		teff = 5777 - (SolarNuMax-nuMax)*1.0
	}

	return models.StellarParameters{
		MassSolar:         mass,
		RadiusSolar:       radius,
		LogG:              logG,
		DensitySolar:      density,
		AgeGyr:            ageGyr,
		TeffK:             int(teff),
		EvolutionaryStage: classifyEvolutionaryStage(logG),
	}
}

// classifyEvolutionaryStage buckets the star by surface gravity.
func classifyEvolutionaryStage(logG float64) string {
	switch {
	case logG > 4.0:
		return "Main Sequence"
	case logG > 3.5:
		return "Subgiant"
	case logG > 2.5:
		return "Red Giant Branch"
	default:
		return "Red Clump / Asymptotic Giant Branch"
	}
}
