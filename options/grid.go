package options

import "math"

// StrikeGrid builds the synthetic theoretical strike ladder per ticker: a
// percentage band around spot, stepped by step, with the bounds rounded to
// step boundaries so the ladder always straddles the spot. This is a
// generated range, not a filter over actually traded contracts.
func StrikeGrid(tickers []string, spot map[string]float64, step, band float64) map[string][]float64 {
	out := make(map[string][]float64, len(tickers))
	for _, ticker := range tickers {
		s := spot[ticker]
		lower := math.Round(s*(1.0-band)/step) * step
		upper := math.Round(s*(1.0+band)/step) * step
		var strikes []float64
		for k := lower; k <= upper+step/2.0; k += step {
			strikes = append(strikes, k)
		}
		out[ticker] = strikes
	}
	return out
}

// Expiries lists time-to-expiration in years for daily steps 0..n-1. The
// t=0 boundary entry is deliberate; pricing and Greek formulas let it
// surface as inf/nan.
func Expiries(n int) []float64 {
	out := make([]float64, n)
	for day := 0; day < n; day++ {
		out[day] = float64(day) / 365.0
	}
	return out
}
