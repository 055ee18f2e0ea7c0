package detect

// Thresholds collects the heuristic constants of the detection algorithms in
// one tunable value. The defaults are calibrated against known Kepler-like
// light curves; change them only deliberately, results are not comparable
// across different threshold sets.
type Thresholds struct {
	// Shared
	OutlierSigma float64 // points further than this (in sigmas) from the median are masked

	// Transit search
	PeriodogramBins   int     // frequency bins, linearly spaced in frequency
	PeakMinPower      float64 // minimum normalized periodogram power for a period candidate
	PeakMinSeparation int     // minimum bin separation between period candidates
	MaxCandidates     int     // candidates examined, tallest peak first
	PhaseBins         int     // phase bins for the folded transit profile
	MinTransitDepth   float64 // minimum fractional depth for a significant transit

	// Comet outbursts
	CometWindowCap       int     // sliding-window width cap in samples
	CometMinRise         float64 // minimum normalized rise in the window's first half
	CometRiseDecayRatio  float64 // rise must exceed decay by this factor
	CometConfidenceScale float64 // rise amount mapping to confidence 1.0
	CometMotionMin       float64 // deg/day above which the source counts as moving
	CometDedupGapDays    float64 // minimum time gap between distinct outbursts

	// Meteors / fast transients
	MeteorMaxDurationH float64 // below this duration the event is a meteor

	// Transient classification (magnitudes / days)
	TransientBrightAmp   float64 // amplitude above which flare/nova/supernova applies
	TransientModerateAmp float64 // amplitude above which dwarf nova/variable applies
	FlareMaxDays         float64
	NovaMaxDays          float64
	DwarfNovaMaxDays     float64
}

// DefaultThresholds returns the reference constants.
func DefaultThresholds() Thresholds {
	return Thresholds{
		OutlierSigma: 5,

		PeriodogramBins:   10000,
		PeakMinPower:      0.1,
		PeakMinSeparation: 100,
		MaxCandidates:     5,
		PhaseBins:         100,
		MinTransitDepth:   0.001,

		CometWindowCap:       50,
		CometMinRise:         0.05,
		CometRiseDecayRatio:  1.5,
		CometConfidenceScale: 0.1,
		CometMotionMin:       0.001,
		CometDedupGapDays:    5.0,

		MeteorMaxDurationH: 0.1,

		TransientBrightAmp:   5,
		TransientModerateAmp: 2,
		FlareMaxDays:         1,
		NovaMaxDays:          100,
		DwarfNovaMaxDays:     10,
	}
}
