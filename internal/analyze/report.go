package analyze

import (
	"fmt"
	"strings"

	"github.com/skywatch/cosmoscan/models"
)

const (
	ruleWide   = "======================================================================"
	ruleNarrow = "------------------------------------------------------------"
)

// DetectionReport renders the celestial-body detections as plain text.
func DetectionReport(result *models.AnalysisResult) string {
	var b strings.Builder
	b.WriteString(ruleWide + "\n")
	b.WriteString("CELESTIAL BODY DETECTION REPORT\n")
	b.WriteString(ruleWide + "\n\n")

	if len(result.Planets) > 0 {
		fmt.Fprintf(&b, "EXOPLANET CANDIDATES: %d\n%s\n", len(result.Planets), ruleNarrow)
		for i, p := range result.Planets {
			fmt.Fprintf(&b, "\nCandidate #%d:\n", i+1)
			fmt.Fprintf(&b, "  Orbital period:   %.2f days\n", p.PeriodDays)
			fmt.Fprintf(&b, "  Transit depth:    %.3f%%\n", p.TransitDepth*100)
			fmt.Fprintf(&b, "  Transit duration: %.2f hours\n", p.TransitDurationHours)
			fmt.Fprintf(&b, "  Confidence:       %.1f%%\n", p.Confidence)
		}
	}

	if len(result.Asteroids) > 0 {
		fmt.Fprintf(&b, "\nASTEROIDS DETECTED: %d\n%s\n", len(result.Asteroids), ruleNarrow)
		for i, a := range result.Asteroids {
			fmt.Fprintf(&b, "\nAsteroid #%d:\n", i+1)
			fmt.Fprintf(&b, "  Velocity:     %.4f deg/day\n", a.MeanVelocityDegDay)
			fmt.Fprintf(&b, "  Orbit type:   %s\n", a.OrbitType)
			fmt.Fprintf(&b, "  Eccentricity: %.2f\n", a.Eccentricity)
		}
	}

	if len(result.Transients) > 0 {
		fmt.Fprintf(&b, "\nTRANSIENT EVENTS: %d\n%s\n", len(result.Transients), ruleNarrow)
		for i, e := range result.Transients {
			fmt.Fprintf(&b, "\nEvent #%d:\n", i+1)
			fmt.Fprintf(&b, "  Type:           %s\n", e.Type)
			fmt.Fprintf(&b, "  Amplitude:      %.2f mag\n", e.Amplitude)
			fmt.Fprintf(&b, "  Duration:       %.2f days\n", e.DurationDays)
			fmt.Fprintf(&b, "  Peak magnitude: %.2f\n", e.PeakMagnitude)
		}
	}

	b.WriteString("\n" + ruleWide + "\n")
	return b.String()
}

// SeismologyReport renders a stellar-vibration analysis as plain text.
func SeismologyReport(report *models.SeismologyReport) string {
	var b strings.Builder
	b.WriteString(ruleWide + "\n")
	b.WriteString("ASTEROSEISMOLOGY REPORT - STELLAR VIBRATION ANALYSIS\n")
	b.WriteString(ruleWide + "\n\n")

	b.WriteString("OSCILLATION FREQUENCIES:\n" + ruleNarrow + "\n")
	fmt.Fprintf(&b, "  nu_max (peak power freq.): %.2f uHz\n", report.NuMaxUHz)
	fmt.Fprintf(&b, "  delta_nu (large sep.):     %.2f uHz\n", report.DeltaNuUHz)
	fmt.Fprintf(&b, "  Envelope width:            %.2f uHz\n\n", report.EnvelopeWidthUHz)

	p := report.StellarParameters
	b.WriteString("DERIVED STELLAR PARAMETERS:\n" + ruleNarrow + "\n")
	fmt.Fprintf(&b, "  Mass:               %.2f Msun\n", p.MassSolar)
	fmt.Fprintf(&b, "  Radius:             %.2f Rsun\n", p.RadiusSolar)
	fmt.Fprintf(&b, "  log g:              %.2f\n", p.LogG)
	fmt.Fprintf(&b, "  Density:            %.2f rho_sun\n", p.DensitySolar)
	fmt.Fprintf(&b, "  Effective temp.:    %d K\n", p.TeffK)
	fmt.Fprintf(&b, "  Estimated age:      %.2f Gyr\n", p.AgeGyr)
	fmt.Fprintf(&b, "  Evolutionary stage: %s\n\n", p.EvolutionaryStage)

	fmt.Fprintf(&b, "OSCILLATION MODES DETECTED: %d\n%s\n", len(report.OscillationModes), ruleNarrow)
	for i, mode := range report.OscillationModes {
		if i >= 10 {
			fmt.Fprintf(&b, "  ... and %d more modes\n", len(report.OscillationModes)-10)
			break
		}
		fmt.Fprintf(&b, "  Mode %d: %.2f uHz - %s\n", i+1, mode.FrequencyUHz, mode.Type)
	}
	b.WriteString("\n")

	if report.Rotation.Detected {
		b.WriteString("STELLAR ROTATION DETECTED:\n" + ruleNarrow + "\n")
		fmt.Fprintf(&b, "  Rotational splitting: %.3f uHz\n", report.Rotation.RotationalSplittingUHz)
		fmt.Fprintf(&b, "  Rotation period:      %.1f days\n\n", report.Rotation.RotationPeriodDays)
	}

	fmt.Fprintf(&b, "ANALYSIS QUALITY: %s\n", report.QualityMetrics.QualityFlag)
	fmt.Fprintf(&b, "  SNR: %.1f\n\n", report.QualityMetrics.SignalToNoise)

	b.WriteString(ruleWide + "\n")
	return b.String()
}

// PatternReport renders a pattern analysis as plain text.
func PatternReport(report *models.PatternReport) string {
	var b strings.Builder
	b.WriteString(ruleWide + "\n")
	b.WriteString("SIGNAL PATTERN ANALYSIS REPORT\n")
	b.WriteString(ruleWide + "\n\n")

	score := report.Artificiality
	fmt.Fprintf(&b, "ARTIFICIALITY SCORE: %d/100\n", score.Score)
	fmt.Fprintf(&b, "CLASSIFICATION: %s\n\n", score.Classification)

	if len(score.Reasons) > 0 {
		b.WriteString("EVIDENCE FOUND:\n")
		for _, reason := range score.Reasons {
			fmt.Fprintf(&b, "  * %s\n", reason)
		}
		b.WriteString("\n")
	}

	b.WriteString("RANDOMNESS ANALYSIS:\n" + ruleNarrow + "\n")
	if rt := report.Randomness.RunsTest; rt != nil {
		verdict := "NON-RANDOM"
		if rt.IsRandom {
			verdict = "RANDOM"
		}
		fmt.Fprintf(&b, "  Runs test: %s\n", verdict)
		fmt.Fprintf(&b, "    p-value: %.4f\n", rt.PValue)
	}
	b.WriteString("\n")

	b.WriteString("PERIODICITY:\n" + ruleNarrow + "\n")
	fmt.Fprintf(&b, "  Significant periods: %d\n", report.Periodicity.NSignificantPeriods)
	for i, p := range report.Periodicity.Periodicities {
		if i >= 5 {
			break
		}
		fmt.Fprintf(&b, "    %d. Frequency: %.4f Hz (Period: %.2fs, sigma=%.1f)\n",
			i+1, p.FrequencyHz, p.PeriodSeconds, p.SignificanceSigma)
	}
	b.WriteString("\n")

	b.WriteString("ENTROPY:\n" + ruleNarrow + "\n")
	fmt.Fprintf(&b, "  Normalized entropy: %.3f\n", report.Entropy.NormalizedEntropy)
	fmt.Fprintf(&b, "  Interpretation: %s\n\n", report.Entropy.Interpretation)

	if report.Pulses.IsRegular {
		b.WriteString("REGULAR PULSES DETECTED:\n" + ruleNarrow + "\n")
		fmt.Fprintf(&b, "  Pulse count:   %d\n", report.Pulses.NPulses)
		fmt.Fprintf(&b, "  Mean interval: %.2f\n", report.Pulses.MeanInterval)
		fmt.Fprintf(&b, "  Regularity:    %.1f%%\n\n", report.Pulses.IntervalRegularity*100)
	}

	b.WriteString(ruleWide + "\n")
	return b.String()
}
