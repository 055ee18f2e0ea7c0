package models

// PlanetCandidate describes one transiting-planet candidate found in a light
// curve. Confidence is on a 0-100 scale; the other detectors use 0-1. The
// mismatch is historical and kept deliberately, see DESIGN.md.
type PlanetCandidate struct {
	PeriodDays           float64 `json:"period_days"`
	TransitDepth         float64 `json:"transit_depth"`
	TransitDurationHours float64 `json:"transit_duration_hours"`
	SignalPower          float64 `json:"signal_power"`
	Confidence           float64 `json:"confidence"` // 0-100
}

// CometEvent describes a cometary outburst candidate: a fast brightening
// followed by a slower decay.
type CometEvent struct {
	DetectionTime      float64 `json:"detection_time"`
	PeakBrightness     float64 `json:"peak_brightness"`
	BrightnessIncrease float64 `json:"brightness_increase"`
	ActivityType       string  `json:"activity_type"`
	Confidence         float64 `json:"confidence"` // 0-1
	VelocityDegDay     float64 `json:"velocity_deg_day,omitempty"`
	Moving             bool    `json:"moving,omitempty"`
	HasMotion          bool    `json:"has_motion,omitempty"` // velocity fields populated
}

// MeteorEvent describes a short brightening classified as a meteor or a fast
// transient depending on its duration.
type MeteorEvent struct {
	DetectionTime  float64 `json:"detection_time"`
	PeakBrightness float64 `json:"peak_brightness"`
	DurationHours  float64 `json:"duration_hours"`
	Amplitude      float64 `json:"amplitude"`
	EventType      string  `json:"event_type"` // meteor, fast_transient
	Confidence     float64 `json:"confidence"` // 0-1
}

// TransientEvent describes a brightening episode in a magnitude series.
// Magnitudes are inverted: lower values mean brighter.
type TransientEvent struct {
	StartTime     float64 `json:"start_time"`
	PeakTime      float64 `json:"peak_time"`
	EndTime       float64 `json:"end_time"`
	DurationDays  float64 `json:"duration_days"`
	PeakMagnitude float64 `json:"peak_magnitude"`
	Amplitude     float64 `json:"amplitude"` // referenceMag - peakMag, positive
	Type          string  `json:"type"`
	RiseTime      float64 `json:"rise_time"`
	DecayTime     float64 `json:"decay_time"`
}

// SkyPosition is a single (RA, Dec) sample in degrees.
type SkyPosition struct {
	RA  float64 `json:"ra"`
	Dec float64 `json:"dec"`
}

// AsteroidCandidate describes an object detected through apparent motion on
// the sky.
type AsteroidCandidate struct {
	MeanVelocityDegDay  float64     `json:"mean_velocity_deg_day"`
	VelocityRA          float64     `json:"velocity_ra"`
	VelocityDec         float64     `json:"velocity_dec"`
	OrbitType           string      `json:"orbit_type"` // NEO, Main Belt, Outer Belt
	Eccentricity        float64     `json:"eccentricity"`
	FirstPosition       SkyPosition `json:"first_position"`
	LastPosition        SkyPosition `json:"last_position"`
	ObservationSpanDays float64     `json:"observation_span_days"`
}

// PowerSpectrum is a pair of parallel frequency/power arrays. Frequencies
// are strictly increasing; the unit depends on the producer (Hz for generic
// signals, uHz for stellar oscillations).
type PowerSpectrum struct {
	Frequencies []float64 `json:"frequencies"`
	Power       []float64 `json:"power"`
}

// OscillationMode is one identified stellar oscillation mode.
type OscillationMode struct {
	FrequencyUHz float64 `json:"frequency_uHz"`
	Amplitude    float64 `json:"amplitude"`
	ModeOrder    int     `json:"mode_order"`
	Degree       int     `json:"degree"` // 0 radial, 1 dipole, 2 quadrupole
	Type         string  `json:"type"`
}

// StellarParameters are derived from (nu_max, delta_nu) via asteroseismic
// scaling relations; all values are deterministic closed forms.
type StellarParameters struct {
	MassSolar         float64 `json:"mass_solar"`
	RadiusSolar       float64 `json:"radius_solar"`
	LogG              float64 `json:"log_g"`
	DensitySolar      float64 `json:"density_solar"`
	AgeGyr            float64 `json:"age_gyr"`
	TeffK             int     `json:"teff_K"`
	EvolutionaryStage string  `json:"evolutionary_stage"`
}

// Rotation reports rotational splitting of oscillation modes, when found.
type Rotation struct {
	Detected               bool    `json:"detected"`
	RotationalSplittingUHz float64 `json:"rotational_splitting_uHz,omitempty"`
	RotationPeriodDays     float64 `json:"rotation_period_days,omitempty"`
	AngularVelocityRadS    float64 `json:"angular_velocity_rad_s,omitempty"`
}

// QualityMetrics grades how trustworthy a seismology analysis is.
type QualityMetrics struct {
	SignalToNoise  float64 `json:"signal_to_noise"`
	NModesDetected int     `json:"n_modes_detected"`
	QualityFlag    string  `json:"quality_flag"` // GOOD, FAIR, POOR
}

// SeismologyReport bundles the full output of a stellar-vibration analysis.
type SeismologyReport struct {
	NuMaxUHz          float64           `json:"nu_max_uHz"`
	DeltaNuUHz        float64           `json:"delta_nu_uHz"`
	EnvelopeWidthUHz  float64           `json:"envelope_width_uHz"`
	OscillationModes  []OscillationMode `json:"oscillation_modes"`
	StellarParameters StellarParameters `json:"stellar_parameters"`
	Rotation          Rotation          `json:"rotation"`
	PowerSpectrum     PowerSpectrum     `json:"power_spectrum"`
	QualityMetrics    QualityMetrics    `json:"quality_metrics"`
}

// RunsTest is a median-split runs test against the random null hypothesis.
type RunsTest struct {
	ZScore   float64 `json:"z_score"`
	PValue   float64 `json:"p_value"`
	IsRandom bool    `json:"is_random"`
}

// AutocorrelationTest summarizes the largest autocorrelation beyond lag 0.
type AutocorrelationTest struct {
	MaxAutocorr float64 `json:"max_autocorr"`
	IsRandom    bool    `json:"is_random"`
}

// NormalityTest is a Shapiro-Wilk normality test result.
type NormalityTest struct {
	Statistic float64 `json:"statistic"`
	PValue    float64 `json:"p_value"`
	IsNormal  bool    `json:"is_normal"`
}

// Distribution holds the raw moments of the input series.
type Distribution struct {
	Mean     float64 `json:"mean"`
	Std      float64 `json:"std"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
}

// RandomnessAnalysis groups the randomness sub-tests. Nil members were not
// applicable to the input (degenerate median split, series too long for
// Shapiro-Wilk).
type RandomnessAnalysis struct {
	RunsTest            *RunsTest           `json:"runs_test,omitempty"`
	AutocorrelationTest AutocorrelationTest `json:"autocorrelation_test"`
	NormalityTest       *NormalityTest      `json:"normality_test,omitempty"`
	Distribution        Distribution        `json:"distribution"`
}

// Periodicity is one significant periodic component.
type Periodicity struct {
	FrequencyHz       float64 `json:"frequency_Hz"`
	PeriodSeconds     float64 `json:"period_seconds"`
	Power             float64 `json:"power"`
	SignificanceSigma float64 `json:"significance_sigma"`
}

// PeriodicityAnalysis lists the significant periodicities found by the FFT
// scan.
type PeriodicityAnalysis struct {
	NSignificantPeriods int           `json:"n_significant_periods"`
	Periodicities       []Periodicity `json:"periodicities"`
	IsPeriodic          bool          `json:"is_periodic"`
}

// PrimePattern reports the fraction of near-integer samples that are prime.
type PrimePattern struct {
	Ratio       float64 `json:"ratio"`
	Significant bool    `json:"significant"`
}

// SpecialRatios reports how often successive differences match famous
// mathematical constants.
type SpecialRatios struct {
	GoldenRatioFrequency float64 `json:"golden_ratio_frequency"`
	PiFrequency          float64 `json:"pi_frequency"`
	EFrequency           float64 `json:"e_frequency"`
	Significant          bool    `json:"significant"`
}

// Repetition reports the best repeating subsequence found by the exhaustive
// scan.
type Repetition struct {
	MaxRepetitions int  `json:"max_repetitions"`
	SequenceLength int  `json:"sequence_length"`
	HasRepetition  bool `json:"has_repetition"`
}

// MathematicalPatterns groups the mathematical-structure sub-tests.
type MathematicalPatterns struct {
	PrimeNumbers  *PrimePattern  `json:"prime_numbers,omitempty"`
	SpecialRatios *SpecialRatios `json:"special_ratios,omitempty"`
	Repetition    Repetition     `json:"repetition"`
}

// EntropyAnalysis reports the normalized Shannon entropy of the signal.
type EntropyAnalysis struct {
	ShannonEntropy    float64 `json:"shannon_entropy"`
	MaxEntropy        float64 `json:"max_entropy"`
	NormalizedEntropy float64 `json:"normalized_entropy"`
	Interpretation    string  `json:"interpretation"`
}

// PulseAnalysis reports derivative-threshold pulse detection results.
type PulseAnalysis struct {
	NPulses            int     `json:"n_pulses"`
	MeanInterval       float64 `json:"mean_interval,omitempty"`
	IntervalRegularity float64 `json:"interval_regularity,omitempty"`
	IsRegular          bool    `json:"is_regular"`
}

// SpectralAnalysis holds time-frequency summary features.
type SpectralAnalysis struct {
	SpectralCentroidMean float64 `json:"spectral_centroid_mean"`
	SpectralRolloffMean  float64 `json:"spectral_rolloff_mean"`
	NarrowLineScore      float64 `json:"narrow_line_score"`
	HasNarrowLines       bool    `json:"has_narrow_lines"`
}

// ModulationAnalysis reports amplitude and frequency modulation indicators.
type ModulationAnalysis struct {
	AmplitudeModulationIndex float64 `json:"amplitude_modulation_index"`
	HasAM                    bool    `json:"has_am"`
	FrequencyVariance        float64 `json:"frequency_variance"`
	HasFM                    bool    `json:"has_fm"`
}

// CorrelationAnalysis returns the head of the autocorrelation function and
// its significant peaks.
type CorrelationAnalysis struct {
	Autocorrelation   []float64 `json:"autocorrelation"` // first 100 lags
	NSignificantPeaks int       `json:"n_significant_peaks"`
	MaxAutocorr       float64   `json:"max_autocorr"`
	HasPeriodicity    bool      `json:"has_periodicity"`
}

// ArtificialityScore is the additive 0-100 composite. Reasons follow the
// fixed sub-test evaluation order, not ranking by magnitude.
type ArtificialityScore struct {
	Score          int      `json:"score"`
	Classification string   `json:"classification"`
	Reasons        []string `json:"reasons"`
}

// PatternReport bundles all pattern-detector sub-analyses.
type PatternReport struct {
	Randomness    RandomnessAnalysis   `json:"randomness"`
	Periodicity   PeriodicityAnalysis  `json:"periodicity"`
	Mathematical  MathematicalPatterns `json:"mathematical_patterns"`
	Entropy       EntropyAnalysis      `json:"entropy"`
	Pulses        PulseAnalysis        `json:"pulses"`
	Spectral      SpectralAnalysis     `json:"spectral"`
	Modulation    ModulationAnalysis   `json:"modulation"`
	Correlation   CorrelationAnalysis  `json:"correlation"`
	Artificiality ArtificialityScore   `json:"artificiality_score"`
}

// AnalysisResult aggregates everything produced for a single target.
type AnalysisResult struct {
	Planets    []PlanetCandidate `json:"planets,omitempty"`
	Comets     []CometEvent      `json:"comets,omitempty"`
	Meteors    []MeteorEvent     `json:"meteors,omitempty"`
	Transients []TransientEvent  `json:"transients,omitempty"`
	Asteroids  []AsteroidCandidate `json:"asteroids,omitempty"`
	Seismology *SeismologyReport `json:"seismology,omitempty"`
	Pattern    *PatternReport    `json:"pattern,omitempty"`
}
