package numeric

import (
	"errors"
	"math"
)

// ErrFitFailed is returned when a nonlinear fit does not converge to a
// finite parameter set.
var ErrFitFailed = errors.New("numeric: fit failed to converge")

// GaussianParams holds the parameters of amp * exp(-(x-mu)^2 / (2*sigma^2)).
type GaussianParams struct {
	Amp   float64
	Mu    float64
	Sigma float64
}

// Eval evaluates the Gaussian at x.
func (p GaussianParams) Eval(x float64) float64 {
	d := x - p.Mu
	return p.Amp * math.Exp(-d*d/(2*p.Sigma*p.Sigma))
}

// FitGaussian fits a Gaussian to (x, y) by Levenberg-Marquardt least squares
// starting from the initial guess. Callers are expected to fall back to a
// closed-form estimate when an error is returned; fit failures here are an
// expected outcome on noisy or sparse regions, not an exceptional one.
func FitGaussian(x, y []float64, initial GaussianParams) (GaussianParams, error) {
	if len(x) != len(y) || len(x) < 4 {
		return GaussianParams{}, ErrFitFailed
	}

	p := initial
	if p.Sigma == 0 {
		return GaussianParams{}, ErrFitFailed
	}

	lambda := 1e-3
	cost := gaussianCost(x, y, p)

	for iter := 0; iter < 200; iter++ {
		// Build normal equations J^T J and J^T r with analytic derivatives.
		var jtj [3][3]float64
		var jtr [3]float64
		for i := range x {
			d := x[i] - p.Mu
			s2 := p.Sigma * p.Sigma
			e := math.Exp(-d * d / (2 * s2))
			model := p.Amp * e
			r := y[i] - model

			grad := [3]float64{
				e,                                // d/dAmp
				p.Amp * e * d / s2,               // d/dMu
				p.Amp * e * d * d / (s2 * p.Sigma), // d/dSigma
			}
			for a := 0; a < 3; a++ {
				jtr[a] += grad[a] * r
				for b := 0; b < 3; b++ {
					jtj[a][b] += grad[a] * grad[b]
				}
			}
		}

		// Damped system (J^T J + lambda*diag) delta = J^T r.
		a := make([][]float64, 3)
		b := make([]float64, 3)
		for i := 0; i < 3; i++ {
			a[i] = make([]float64, 3)
			for j := 0; j < 3; j++ {
				a[i][j] = jtj[i][j]
			}
			a[i][i] *= 1 + lambda
			b[i] = jtr[i]
		}

		delta, ok := SolveLinear(a, b)
		if !ok {
			return GaussianParams{}, ErrFitFailed
		}

		trial := GaussianParams{
			Amp:   p.Amp + delta[0],
			Mu:    p.Mu + delta[1],
			Sigma: p.Sigma + delta[2],
		}
		if trial.Sigma == 0 || !isFinite(trial.Amp) || !isFinite(trial.Mu) || !isFinite(trial.Sigma) {
			return GaussianParams{}, ErrFitFailed
		}

		trialCost := gaussianCost(x, y, trial)
		if trialCost < cost {
			improvement := cost - trialCost
			p = trial
			cost = trialCost
			lambda *= 0.5
			if improvement < 1e-12*(cost+1e-12) {
				break
			}
		} else {
			lambda *= 4
			if lambda > 1e10 {
				break
			}
		}
	}

	if !isFinite(p.Amp) || !isFinite(p.Mu) || !isFinite(p.Sigma) {
		return GaussianParams{}, ErrFitFailed
	}
	return p, nil
}

func gaussianCost(x, y []float64, p GaussianParams) float64 {
	cost := 0.0
	for i := range x {
		r := y[i] - p.Eval(x[i])
		cost += r * r
	}
	return cost
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
