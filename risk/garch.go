package risk

import (
	"errors"
	"math"

	"github.com/banachtech/quantmetrics/series"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrUnsupportedOrder rejects GARCH orders other than (1,1).
var ErrUnsupportedOrder = errors.New("risk: only GARCH(1,1) is supported")

// GARCHWeights are the (omega, alpha, beta) parameters of a GARCH(1,1)
// variance process. A valid estimate satisfies alpha+beta < 1 strictly.
type GARCHWeights struct {
	Omega float64
	Alpha float64
	Beta  float64
}

const (
	garchLowerBound = 1e-9
	garchUpperBound = 1.0
	annealSteps     = 4000
	annealStartTemp = 1.0
)

// garchObjective is the negative Gaussian log-likelihood surrogate
// sum(ln v_i + u_i^2/v_i) over the variance path implied by the weights.
// Weights outside the box bounds or violating stationarity are penalized
// with +Inf so the optimizer can never settle on them.
func garchObjective(par, returns []float64) float64 {
	omega, alpha, beta := par[0], par[1], par[2]
	if omega < garchLowerBound || alpha < garchLowerBound || beta < garchLowerBound {
		return math.Inf(1)
	}
	if omega > garchUpperBound || alpha > garchUpperBound || beta > garchUpperBound {
		return math.Inf(1)
	}
	if alpha+beta >= 1.0 {
		return math.Inf(1)
	}
	v := returns[0] * returns[0]
	var nll float64
	for i := 1; i < len(returns); i++ {
		v = omega + alpha*returns[i-1]*returns[i-1] + beta*v
		nll += math.Log(v) + returns[i]*returns[i]/v
	}
	return nll
}

// EstimateWeights fits GARCH(1,1) weights to a return series by
// simulated-annealing search followed by a Nelder-Mead polish. t bounds
// the window used for the initial variance guess. Orders other than
// p=q=1 are a configuration error.
func EstimateWeights(returns []float64, t, p, q int) (GARCHWeights, error) {
	if p != 1 || q != 1 {
		return GARCHWeights{}, ErrUnsupportedOrder
	}
	if t > len(returns) {
		t = len(returns)
	}

	var omega0 float64
	if t > 1 {
		window := returns[:t-1]
		var mean float64
		for _, x := range window {
			mean += x
		}
		mean /= float64(len(window))
		for _, x := range window {
			omega0 += (x - mean) * (x - mean)
		}
		omega0 /= float64(len(window))
	}
	if omega0 < garchLowerBound {
		omega0 = garchLowerBound
	}
	best := []float64{omega0, 0.1, 0.8}
	bestLoss := garchObjective(best, returns)

	// Annealed random walk over the constrained box. The source is fixed
	// so identical inputs estimate identical weights.
	src := rand.NewSource(1)
	step := distuv.Normal{Mu: 0.0, Sigma: 1.0, Src: src}
	uni := distuv.Uniform{Min: 0.0, Max: 1.0, Src: src}
	current := append([]float64(nil), best...)
	currentLoss := bestLoss
	for i := 0; i < annealSteps; i++ {
		temp := annealStartTemp * (1.0 - float64(i)/float64(annealSteps))
		scale := 0.05 * (temp + 0.01)
		proposal := []float64{
			current[0] + scale*0.01*step.Rand(),
			current[1] + scale*step.Rand(),
			current[2] + scale*step.Rand(),
		}
		loss := garchObjective(proposal, returns)
		if loss < currentLoss || math.Exp((currentLoss-loss)/math.Max(temp, 1e-6)) > uni.Rand() {
			current, currentLoss = proposal, loss
		}
		if currentLoss < bestLoss {
			best = append([]float64(nil), current...)
			bestLoss = currentLoss
		}
	}

	problem := optimize.Problem{
		Func: func(par []float64) float64 { return garchObjective(par, returns) },
	}
	res, err := optimize.Minimize(problem, best, nil, &optimize.NelderMead{})
	if err == nil && garchObjective(res.X, returns) < bestLoss {
		best = res.X
	}
	return GARCHWeights{Omega: best[0], Alpha: best[1], Beta: best[2]}, nil
}

// VariancePath is the in-sample conditional variance recursion seeded with
// the squared first return.
func (w GARCHWeights) VariancePath(returns []float64, steps int) []float64 {
	if steps > len(returns) {
		steps = len(returns)
	}
	v := make([]float64, steps)
	if steps == 0 {
		return v
	}
	v[0] = returns[0] * returns[0]
	for i := 1; i < steps; i++ {
		v[i] = w.Omega + w.Alpha*returns[i-1]*returns[i-1] + w.Beta*v[i-1]
	}
	return v
}

// Forecast projects variance over the horizon: mean reversion from the
// first conditional variance toward the long-run level omega/(1-alpha-beta)
// at rate (alpha+beta)^(i-1).
func (w GARCHWeights) Forecast(returns []float64, horizon int) []float64 {
	longRun := w.Omega / (1.0 - w.Alpha - w.Beta)
	v0 := returns[0] * returns[0]
	out := make([]float64, horizon)
	for i := 1; i <= horizon; i++ {
		out[i-1] = longRun + (v0-longRun)*math.Pow(w.Alpha+w.Beta, float64(i-1))
	}
	return out
}

// GARCHVolatility reduces any supported series shape to the fitted
// one-step-ahead conditional volatility per column, recursing over
// two-level data like every other risk measure.
func GARCHVolatility(data any, t int) (any, error) {
	fn := func(xs []float64) float64 {
		w, err := EstimateWeights(xs, t, 1, 1)
		if err != nil {
			return math.NaN()
		}
		path := w.VariancePath(xs, len(xs))
		if len(path) == 0 {
			return math.NaN()
		}
		last := path[len(path)-1]
		next := w.Omega + w.Alpha*xs[len(xs)-1]*xs[len(xs)-1] + w.Beta*last
		return math.Sqrt(next)
	}
	return series.Apply(data, fn)
}
