// Package analyze orchestrates the detection, seismology and pattern
// pipelines over a target's light curve and signal data.
package analyze

import (
	"errors"
	"math"

	"github.com/rs/zerolog"

	"github.com/skywatch/cosmoscan/internal/detect"
	"github.com/skywatch/cosmoscan/internal/pattern"
	"github.com/skywatch/cosmoscan/internal/seismology"
	"github.com/skywatch/cosmoscan/models"
)

// ErrNoInput is returned by FullAnalysis when neither a light curve nor a
// signal is supplied.
var ErrNoInput = errors.New("analyze: no input data")

// Analyzer ties the sub-analyzers together.
type Analyzer struct {
	detector *detect.Detector
	seismo   *seismology.Analyzer
	patterns *pattern.Detector
	logger   zerolog.Logger
}

// Options holds the knobs for creating an Analyzer. Zero values fall back to
// the defaults used throughout.
type Options struct {
	Sensitivity       float64 // detection threshold in sigmas
	SignificanceLevel float64 // p-value cutoff for statistical tests
}

// New creates an Analyzer.
func New(options Options, logger zerolog.Logger) *Analyzer {
	if options.Sensitivity == 0 {
		options.Sensitivity = 3.0
	}
	if options.SignificanceLevel == 0 {
		options.SignificanceLevel = pattern.DefaultSignificanceLevel
	}
	return &Analyzer{
		detector: detect.New(detect.WithSensitivity(options.Sensitivity)),
		seismo:   seismology.NewAnalyzer(),
		patterns: pattern.New(pattern.WithSignificanceLevel(options.SignificanceLevel)),
		logger:   logger,
	}
}

// Detector exposes the underlying detector for callers that need the
// individual detection methods.
func (a *Analyzer) Detector() *detect.Detector {
	return a.detector
}

// LightCurveOptions selects which analyses AnalyzeLightCurve runs.
type LightCurveOptions struct {
	DetectPlanets     bool
	DetectTransients  bool
	AnalyzeVibrations bool
	MinPeriodDays     float64 // planet search lower bound, default 0.5
	MaxPeriodDays     float64 // planet search upper bound, default 50
	CadenceMinutes    float64 // sampling cadence for seismology, default 30
}

// AnalyzeLightCurve runs the selected analyses over a flux light curve.
// Transient detection works on magnitudes, derived as -2.5*log10(flux).
func (a *Analyzer) AnalyzeLightCurve(t, flux []float64, opts LightCurveOptions) (*models.AnalysisResult, error) {
	if opts.MinPeriodDays == 0 {
		opts.MinPeriodDays = 0.5
	}
	if opts.MaxPeriodDays == 0 {
		opts.MaxPeriodDays = 50
	}
	if opts.CadenceMinutes == 0 {
		opts.CadenceMinutes = 30
	}

	result := &models.AnalysisResult{}

	if opts.DetectPlanets {
		planets, err := a.detector.DetectTransitingPlanets(t, flux, opts.MinPeriodDays, opts.MaxPeriodDays)
		if err != nil {
			return nil, err
		}
		result.Planets = planets
		a.logger.Info().Int("candidates", len(planets)).Msg("planet search done")
	}

	if opts.DetectTransients {
		magnitude := make([]float64, len(flux))
		for i, f := range flux {
			magnitude[i] = -2.5 * math.Log10(f)
		}
		transients, err := a.detector.DetectTransientEvents(t, magnitude)
		if err != nil {
			return nil, err
		}
		result.Transients = transients
		a.logger.Info().Int("events", len(transients)).Msg("transient search done")
	}

	if opts.AnalyzeVibrations {
		report, err := a.seismo.AnalyzeStellarVibrations(t, flux, opts.CadenceMinutes)
		if err != nil {
			return nil, err
		}
		result.Seismology = report
		a.logger.Info().
			Float64("nu_max_uHz", report.NuMaxUHz).
			Float64("mass_solar", report.StellarParameters.MassSolar).
			Str("quality", report.QualityMetrics.QualityFlag).
			Msg("seismology done")
	}

	return result, nil
}

// AnalyzeSignal runs the pattern detector over a generic signal.
func (a *Analyzer) AnalyzeSignal(data []float64, sampleRate float64) (*models.PatternReport, error) {
	report, err := a.patterns.AnalyzeSignal(data, sampleRate)
	if err != nil {
		return nil, err
	}
	a.logger.Info().
		Int("score", report.Artificiality.Score).
		Str("classification", report.Artificiality.Classification).
		Msg("pattern analysis done")
	return report, nil
}

// FullInput bundles everything FullAnalysis can consume. Nil slices skip the
// corresponding analysis.
type FullInput struct {
	LightCurveTime []float64
	LightCurveFlux []float64
	SignalData     []float64
	SignalRate     float64 // Hz, default 1.0
}

// FullAnalysis runs every applicable analysis over the supplied data.
func (a *Analyzer) FullAnalysis(input FullInput) (*models.AnalysisResult, error) {
	hasLightCurve := input.LightCurveTime != nil && input.LightCurveFlux != nil
	if !hasLightCurve && input.SignalData == nil {
		return nil, ErrNoInput
	}

	result := &models.AnalysisResult{}
	if hasLightCurve {
		lc, err := a.AnalyzeLightCurve(input.LightCurveTime, input.LightCurveFlux, LightCurveOptions{
			DetectPlanets:     true,
			DetectTransients:  true,
			AnalyzeVibrations: true,
		})
		if err != nil {
			return nil, err
		}
		result = lc
	}

	if input.SignalData != nil {
		rate := input.SignalRate
		if rate == 0 {
			rate = 1.0
		}
		report, err := a.AnalyzeSignal(input.SignalData, rate)
		if err != nil {
			return nil, err
		}
		result.Pattern = report
	}

	return result, nil
}
