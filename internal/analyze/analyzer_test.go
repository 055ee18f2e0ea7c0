package analyze

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skywatch/cosmoscan/internal/lightcurve"
)

func newTestAnalyzer() *Analyzer {
	return New(Options{}, zerolog.Nop())
}

func transitCurve() *lightcurve.Curve {
	gen := lightcurve.NewSynthetic(1)
	curve := gen.Flat(5000, 30)
	gen.InjectTransit(curve, 5, 0.02, 0.5)
	return curve
}

func TestAnalyzeLightCurvePlanetsOnly(t *testing.T) {
	curve := transitCurve()

	a := newTestAnalyzer()
	result, err := a.AnalyzeLightCurve(curve.Time, curve.Flux, LightCurveOptions{
		DetectPlanets: true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Planets)
	assert.Empty(t, result.Transients)
	assert.Nil(t, result.Seismology)
	assert.InDelta(t, 5.0, result.Planets[0].PeriodDays, 0.1)
}

func TestAnalyzeLightCurveTransientsOnly(t *testing.T) {
	// A quiet unit-flux curve converts to near-zero magnitudes with no
	// brightening to report.
	gen := lightcurve.NewSynthetic(2)
	curve := gen.Flat(2000, 20)
	gen.AddNoise(curve, 0.0001)

	a := newTestAnalyzer()
	result, err := a.AnalyzeLightCurve(curve.Time, curve.Flux, LightCurveOptions{
		DetectTransients: true,
	})
	require.NoError(t, err)

	assert.Empty(t, result.Transients)
	assert.Empty(t, result.Planets)
}

func TestAnalyzeLightCurvePropagatesErrors(t *testing.T) {
	a := newTestAnalyzer()
	_, err := a.AnalyzeLightCurve([]float64{1, 2, 3}, []float64{1}, LightCurveOptions{
		DetectPlanets: true,
	})
	assert.Error(t, err)
}

func TestAnalyzeSignalPassthrough(t *testing.T) {
	data := make([]float64, 200)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * float64(i) / 20)
	}

	a := newTestAnalyzer()
	report, err := a.AnalyzeSignal(data, 100)
	require.NoError(t, err)
	assert.NotEmpty(t, report.Artificiality.Classification)

	_, err = a.AnalyzeSignal([]float64{1, 2}, 100)
	assert.Error(t, err)
}

func TestFullAnalysisNoInput(t *testing.T) {
	a := newTestAnalyzer()
	_, err := a.FullAnalysis(FullInput{})
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestFullAnalysisSignalOnly(t *testing.T) {
	data := make([]float64, 100)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * float64(i) / 10)
	}

	a := newTestAnalyzer()
	result, err := a.FullAnalysis(FullInput{SignalData: data})
	require.NoError(t, err)

	require.NotNil(t, result.Pattern)
	assert.Empty(t, result.Planets)
	assert.Nil(t, result.Seismology)
}
