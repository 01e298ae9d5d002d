package risk

import (
	"errors"

	"github.com/banachtech/quantmetrics/series"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distmv"
)

// MonteCarloResult bundles the simulated portfolio tail measures.
type MonteCarloResult struct {
	VaR  float64
	CVaR float64
}

// MonteCarloVaR simulates correlated normal asset returns from the frame's
// sample moments, aggregates them with the given weights and reads the tail
// off the simulated portfolio distribution. Weights default to equal when
// nil.
func MonteCarloVaR(f *series.Frame, weights map[string]float64, alpha float64, sims int, seed uint64) (MonteCarloResult, error) {
	n := len(f.Tickers)
	if n == 0 {
		return MonteCarloResult{}, errors.New("risk: empty frame")
	}
	if sims <= 0 {
		sims = 10000
	}

	cols := make([][]float64, n)
	mu := make([]float64, n)
	w := make([]float64, n)
	for i, ticker := range f.Tickers {
		cols[i] = f.Column(ticker)
		mu[i] = stat.Mean(cols[i], nil)
		if weights == nil {
			w[i] = 1.0 / float64(n)
		} else {
			w[i] = weights[ticker]
		}
	}

	obs := mat.NewDense(len(cols[0]), n, nil)
	for j, col := range cols {
		for i, v := range col {
			obs.Set(i, j, v)
		}
	}
	cov := mat.NewSymDense(n, nil)
	stat.CovarianceMatrix(cov, obs, nil)

	normal, ok := distmv.NewNormal(mu, cov, rand.NewSource(seed))
	if !ok {
		return MonteCarloResult{}, errors.New("risk: covariance matrix is not positive definite")
	}

	portfolio := make([]float64, sims)
	draw := make([]float64, n)
	for i := 0; i < sims; i++ {
		normal.Rand(draw)
		var ret float64
		for j := range draw {
			ret += w[j] * draw[j]
		}
		portfolio[i] = ret
	}
	return MonteCarloResult{
		VaR:  HistoricVaR(portfolio, alpha),
		CVaR: HistoricCVaR(portfolio, alpha),
	}, nil
}
