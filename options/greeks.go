package options

import (
	"math"

	"github.com/banachtech/quantmetrics/dist"
)

// First, second and third order analytic sensitivities of the
// Black-Scholes price. All formulas share D1/D2; none of them iterate or
// difference numerically. Greeks that are identical for calls and puts
// (Vega, Gamma, DualGamma, Vanna, Vomma, Vera, Veta, Speed, Zomma, Color,
// Ultima, PartialDerivative) take no Kind argument.

// Delta = dV/dS.
func Delta(kind Kind, s, k, r, sigma, t, q float64) float64 {
	d1 := D1(s, k, r, sigma, t, q)
	if kind == Put {
		return math.Exp(-q*t) * (dist.NormalCDF(d1) - 1.0)
	}
	return math.Exp(-q*t) * dist.NormalCDF(d1)
}

// DualDelta = dV/dK.
func DualDelta(kind Kind, s, k, r, sigma, t, q float64) float64 {
	d2 := D2(s, k, r, sigma, t, q)
	if kind == Put {
		return math.Exp(-r*t) * dist.NormalCDF(-d2)
	}
	return -math.Exp(-r*t) * dist.NormalCDF(d2)
}

// Vega = dV/dsigma, same for calls and puts.
func Vega(s, k, r, sigma, t, q float64) float64 {
	d1 := D1(s, k, r, sigma, t, q)
	return s * math.Exp(-q*t) * dist.NormalPDF(d1) * math.Sqrt(t)
}

// Theta = dV/dt with the decreasing-value-as-time-passes sign convention,
// so a long option typically carries a negative theta.
func Theta(kind Kind, s, k, r, sigma, t, q float64) float64 {
	d1 := D1(s, k, r, sigma, t, q)
	d2 := d1 - sigma*math.Sqrt(t)
	decay := -math.Exp(-q*t) * s * dist.NormalPDF(d1) * sigma / (2.0 * math.Sqrt(t))
	if kind == Put {
		return decay + r*k*math.Exp(-r*t)*dist.NormalCDF(-d2) - q*s*math.Exp(-q*t)*dist.NormalCDF(-d1)
	}
	return decay - r*k*math.Exp(-r*t)*dist.NormalCDF(d2) + q*s*math.Exp(-q*t)*dist.NormalCDF(d1)
}

// Rho = dV/dr.
func Rho(kind Kind, s, k, r, sigma, t, q float64) float64 {
	d2 := D2(s, k, r, sigma, t, q)
	if kind == Put {
		return -k * t * math.Exp(-r*t) * dist.NormalCDF(-d2)
	}
	return k * t * math.Exp(-r*t) * dist.NormalCDF(d2)
}

// Epsilon = dV/dq, the dividend-yield sensitivity.
func Epsilon(kind Kind, s, k, r, sigma, t, q float64) float64 {
	d1 := D1(s, k, r, sigma, t, q)
	if kind == Put {
		return s * t * math.Exp(-q*t) * dist.NormalCDF(-d1)
	}
	return -s * t * math.Exp(-q*t) * dist.NormalCDF(d1)
}

// Lambda is the elasticity Delta * S / V.
func Lambda(kind Kind, s, k, r, sigma, t, q float64) float64 {
	return Delta(kind, s, k, r, sigma, t, q) * s / Price(kind, s, k, r, sigma, t, q)
}

// Gamma = d2V/dS2.
func Gamma(s, k, r, sigma, t, q float64) float64 {
	d1 := D1(s, k, r, sigma, t, q)
	return math.Exp(-q*t) * dist.NormalPDF(d1) / (s * sigma * math.Sqrt(t))
}

// DualGamma = d2V/dK2.
func DualGamma(s, k, r, sigma, t, q float64) float64 {
	d2 := D2(s, k, r, sigma, t, q)
	return math.Exp(-r*t) * dist.NormalPDF(d2) / (k * sigma * math.Sqrt(t))
}

// Vanna = d2V/dS dsigma.
func Vanna(s, k, r, sigma, t, q float64) float64 {
	d1 := D1(s, k, r, sigma, t, q)
	d2 := d1 - sigma*math.Sqrt(t)
	return -math.Exp(-q*t) * dist.NormalPDF(d1) * d2 / sigma
}

// Charm = d2V/dS dt, the delta decay.
func Charm(kind Kind, s, k, r, sigma, t, q float64) float64 {
	d1 := D1(s, k, r, sigma, t, q)
	d2 := d1 - sigma*math.Sqrt(t)
	drift := math.Exp(-q*t) * dist.NormalPDF(d1) * (2.0*(r-q)*t - d2*sigma*math.Sqrt(t)) / (2.0 * t * sigma * math.Sqrt(t))
	if kind == Put {
		return -q*math.Exp(-q*t)*dist.NormalCDF(-d1) - drift
	}
	return q*math.Exp(-q*t)*dist.NormalCDF(d1) - drift
}

// Vomma = d2V/dsigma2, the vega convexity.
func Vomma(s, k, r, sigma, t, q float64) float64 {
	d1 := D1(s, k, r, sigma, t, q)
	d2 := d1 - sigma*math.Sqrt(t)
	return Vega(s, k, r, sigma, t, q) * d1 * d2 / sigma
}

// Vera = d2V/dsigma dr.
func Vera(s, k, r, sigma, t, q float64) float64 {
	d1 := D1(s, k, r, sigma, t, q)
	d2 := d1 - sigma*math.Sqrt(t)
	return -k * t * math.Exp(-r*t) * dist.NormalPDF(d2) * d1 / sigma
}

// Veta = d2V/dsigma dt, scaled by 1/(100*365) to quote the one-day change
// of vega in percentage terms.
func Veta(s, k, r, sigma, t, q float64) float64 {
	d1 := D1(s, k, r, sigma, t, q)
	d2 := d1 - sigma*math.Sqrt(t)
	veta := -s * math.Exp(-q*t) * dist.NormalPDF(d1) * math.Sqrt(t) *
		(q + (r-q)*d1/(sigma*math.Sqrt(t)) - (1.0+d1*d2)/(2.0*t))
	return veta / (100.0 * 365.0)
}

// PartialDerivative is the Breeden-Litzenberger risk-neutral density
// d2V/dK2, written via the lognormal density directly instead of through
// the option price.
func PartialDerivative(s, k, r, sigma, t, q float64) float64 {
	x := math.Log(k/s) - (r-q-0.5*sigma*sigma)*t
	return math.Exp(-r*t) / (k * sigma * math.Sqrt(2.0*math.Pi*t)) *
		math.Exp(-x*x/(2.0*sigma*sigma*t))
}

// Speed = d3V/dS3.
func Speed(s, k, r, sigma, t, q float64) float64 {
	d1 := D1(s, k, r, sigma, t, q)
	return -Gamma(s, k, r, sigma, t, q) / s * (d1/(sigma*math.Sqrt(t)) + 1.0)
}

// Zomma = d3V/dS2 dsigma, the gamma sensitivity to volatility.
func Zomma(s, k, r, sigma, t, q float64) float64 {
	d1 := D1(s, k, r, sigma, t, q)
	d2 := d1 - sigma*math.Sqrt(t)
	return Gamma(s, k, r, sigma, t, q) * (d1*d2 - 1.0) / sigma
}

// Color = d3V/dS2 dt, the gamma decay.
func Color(s, k, r, sigma, t, q float64) float64 {
	d1 := D1(s, k, r, sigma, t, q)
	d2 := d1 - sigma*math.Sqrt(t)
	return -math.Exp(-q*t) * dist.NormalPDF(d1) / (2.0 * s * t * sigma * math.Sqrt(t)) *
		(2.0*q*t + 1.0 + (2.0*(r-q)*t-d2*sigma*math.Sqrt(t))/(sigma*math.Sqrt(t))*d1)
}

// Ultima = d3V/dsigma3.
func Ultima(s, k, r, sigma, t, q float64) float64 {
	d1 := D1(s, k, r, sigma, t, q)
	d2 := d1 - sigma*math.Sqrt(t)
	return -Vega(s, k, r, sigma, t, q) / (sigma * sigma) *
		(d1*d2*(1.0-d1*d2) + d1*d1 + d2*d2)
}
