package options

import (
	"math"

	"gonum.org/v1/gonum/optimize"
)

// ImpliedVolatility inverts the Black-Scholes price for sigma by
// minimizing the squared price error over log-volatility, so the search
// stays on sigma > 0 without explicit bounds.
func ImpliedVolatility(kind Kind, price, s, k, r, t, q float64) (float64, error) {
	problem := optimize.Problem{
		Func: func(par []float64) float64 {
			sigma := math.Exp(par[0])
			diff := price - Price(kind, s, k, r, sigma, t, q)
			return diff * diff
		},
	}
	res, err := optimize.Minimize(problem, []float64{math.Log(0.5)}, nil, &optimize.NelderMead{})
	if err != nil {
		return math.NaN(), err
	}
	return math.Exp(res.X[0]), nil
}
