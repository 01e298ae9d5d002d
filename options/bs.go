package options

import (
	"math"

	"github.com/banachtech/quantmetrics/dist"
)

// Kind selects the option side. The Greeks that differ between calls and
// puts branch on it explicitly; symmetric Greeks take no Kind at all.
type Kind int

const (
	Call Kind = iota
	Put
)

// Quote carries the per-ticker market inputs every pricing and Greek
// formula consumes: spot, annualized volatility, dividend yield and the
// risk-free rate.
type Quote struct {
	Spot     float64
	Sigma    float64
	Dividend float64
	RiskFree float64
}

// D1 is the moneyness-and-volatility-adjusted Black-Scholes quantity shared
// by every formula in this package. No input is guarded: sigma=0 or t=0
// propagates as inf/nan through the whole chain.
func D1(s, k, r, sigma, t, q float64) float64 {
	return (math.Log(s/k) + (r-q+0.5*sigma*sigma)*t) / (sigma * math.Sqrt(t))
}

// D2 = D1 - sigma*sqrt(t).
func D2(s, k, r, sigma, t, q float64) float64 {
	return D1(s, k, r, sigma, t, q) - sigma*math.Sqrt(t)
}

// Price is the Black-Scholes theoretical value of a European option.
//
//	call = S e^{-qt} N(d1) - K e^{-rt} N(d2)
//	put  = K e^{-rt} N(-d2) - S e^{-qt} N(-d1)
func Price(kind Kind, s, k, r, sigma, t, q float64) float64 {
	d1 := D1(s, k, r, sigma, t, q)
	d2 := d1 - sigma*math.Sqrt(t)
	if kind == Put {
		return k*math.Exp(-r*t)*dist.NormalCDF(-d2) - s*math.Exp(-q*t)*dist.NormalCDF(-d1)
	}
	return s*math.Exp(-q*t)*dist.NormalCDF(d1) - k*math.Exp(-r*t)*dist.NormalCDF(d2)
}
