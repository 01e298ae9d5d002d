package options

import "fmt"

// CellFunc computes one surface cell for a quote at (strike, expiry).
type CellFunc func(q Quote, strike, expiry float64) float64

// A Surface is a Greek (or price) evaluated over the full strike x expiry
// grid of one or more underlyings. For a fixed ticker every strike shares
// the same expiry axis; the grid is dense by construction.
type Surface struct {
	Tickers  []string
	Strikes  map[string][]float64
	Expiries []float64
	values   map[string][][]float64
}

// Compute evaluates fn over the cross product of strikes and expiries for
// every ticker. The engine is invoked once per grid cell.
func Compute(tickers []string, quotes map[string]Quote, strikes map[string][]float64, expiries []float64, fn CellFunc) *Surface {
	out := &Surface{
		Tickers:  tickers,
		Strikes:  strikes,
		Expiries: expiries,
		values:   make(map[string][][]float64, len(tickers)),
	}
	for _, ticker := range tickers {
		q := quotes[ticker]
		rows := make([][]float64, len(strikes[ticker]))
		for i, k := range strikes[ticker] {
			row := make([]float64, len(expiries))
			for j, t := range expiries {
				row[j] = fn(q, k, t)
			}
			rows[i] = row
		}
		out.values[ticker] = rows
	}
	return out
}

// Value returns the cell for (ticker, i-th strike, j-th expiry).
func (s *Surface) Value(ticker string, i, j int) float64 {
	return s.values[ticker][i][j]
}

// Rows returns the strike-major value matrix for one ticker.
func (s *Surface) Rows(ticker string) [][]float64 {
	return s.values[ticker]
}

// ByName maps a measure selector to its cell function. Call/put symmetric
// Greeks ignore kind. Unknown names are a configuration error.
func ByName(name string, kind Kind) (CellFunc, error) {
	switch name {
	case "price":
		return func(q Quote, k, t float64) float64 {
			return Price(kind, q.Spot, k, q.RiskFree, q.Sigma, t, q.Dividend)
		}, nil
	case "delta":
		return func(q Quote, k, t float64) float64 {
			return Delta(kind, q.Spot, k, q.RiskFree, q.Sigma, t, q.Dividend)
		}, nil
	case "dual_delta":
		return func(q Quote, k, t float64) float64 {
			return DualDelta(kind, q.Spot, k, q.RiskFree, q.Sigma, t, q.Dividend)
		}, nil
	case "vega":
		return func(q Quote, k, t float64) float64 {
			return Vega(q.Spot, k, q.RiskFree, q.Sigma, t, q.Dividend)
		}, nil
	case "theta":
		return func(q Quote, k, t float64) float64 {
			return Theta(kind, q.Spot, k, q.RiskFree, q.Sigma, t, q.Dividend)
		}, nil
	case "rho":
		return func(q Quote, k, t float64) float64 {
			return Rho(kind, q.Spot, k, q.RiskFree, q.Sigma, t, q.Dividend)
		}, nil
	case "epsilon":
		return func(q Quote, k, t float64) float64 {
			return Epsilon(kind, q.Spot, k, q.RiskFree, q.Sigma, t, q.Dividend)
		}, nil
	case "lambda":
		return func(q Quote, k, t float64) float64 {
			return Lambda(kind, q.Spot, k, q.RiskFree, q.Sigma, t, q.Dividend)
		}, nil
	case "gamma":
		return func(q Quote, k, t float64) float64 {
			return Gamma(q.Spot, k, q.RiskFree, q.Sigma, t, q.Dividend)
		}, nil
	case "dual_gamma":
		return func(q Quote, k, t float64) float64 {
			return DualGamma(q.Spot, k, q.RiskFree, q.Sigma, t, q.Dividend)
		}, nil
	case "vanna":
		return func(q Quote, k, t float64) float64 {
			return Vanna(q.Spot, k, q.RiskFree, q.Sigma, t, q.Dividend)
		}, nil
	case "charm":
		return func(q Quote, k, t float64) float64 {
			return Charm(kind, q.Spot, k, q.RiskFree, q.Sigma, t, q.Dividend)
		}, nil
	case "vomma":
		return func(q Quote, k, t float64) float64 {
			return Vomma(q.Spot, k, q.RiskFree, q.Sigma, t, q.Dividend)
		}, nil
	case "vera":
		return func(q Quote, k, t float64) float64 {
			return Vera(q.Spot, k, q.RiskFree, q.Sigma, t, q.Dividend)
		}, nil
	case "veta":
		return func(q Quote, k, t float64) float64 {
			return Veta(q.Spot, k, q.RiskFree, q.Sigma, t, q.Dividend)
		}, nil
	case "partial_derivative":
		return func(q Quote, k, t float64) float64 {
			return PartialDerivative(q.Spot, k, q.RiskFree, q.Sigma, t, q.Dividend)
		}, nil
	case "speed":
		return func(q Quote, k, t float64) float64 {
			return Speed(q.Spot, k, q.RiskFree, q.Sigma, t, q.Dividend)
		}, nil
	case "zomma":
		return func(q Quote, k, t float64) float64 {
			return Zomma(q.Spot, k, q.RiskFree, q.Sigma, t, q.Dividend)
		}, nil
	case "color":
		return func(q Quote, k, t float64) float64 {
			return Color(q.Spot, k, q.RiskFree, q.Sigma, t, q.Dividend)
		}, nil
	case "ultima":
		return func(q Quote, k, t float64) float64 {
			return Ultima(q.Spot, k, q.RiskFree, q.Sigma, t, q.Dividend)
		}, nil
	}
	return nil, fmt.Errorf("unknown measure: %s", name)
}
