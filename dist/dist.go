package dist

import (
	"math"

	"github.com/banachtech/quantmetrics/series"
	"gonum.org/v1/gonum/stat/distuv"
)

// Standard normal shared by every pricing and risk formula.
var stdNormal = distuv.Normal{Mu: 0.0, Sigma: 1.0}

// NormalCDF is N(x), the standard normal cumulative distribution.
func NormalCDF(x float64) float64 {
	return stdNormal.CDF(x)
}

// NormalPDF is N'(x), the standard normal density.
func NormalPDF(x float64) float64 {
	return stdNormal.Prob(x)
}

// NormalQuantile is the inverse CDF at probability p.
func NormalQuantile(p float64) float64 {
	return stdNormal.Quantile(p)
}

func moments(xs []float64) (mean, variance float64) {
	n := float64(len(xs))
	for _, x := range xs {
		mean += x
	}
	mean /= n
	for _, x := range xs {
		d := x - mean
		variance += d * d
	}
	variance /= n
	return mean, variance
}

// Skewness is the third standardized moment with the population (n)
// divisor. Near-zero variance yields inf/nan, which callers tolerate.
func Skewness(xs []float64) float64 {
	mean, variance := moments(xs)
	sd := math.Sqrt(variance)
	var m3 float64
	for _, x := range xs {
		d := x - mean
		m3 += d * d * d
	}
	m3 /= float64(len(xs))
	return m3 / (sd * sd * sd)
}

// SkewnessOf reduces any supported series shape with Skewness, recursing
// per outer period over two-level data.
func SkewnessOf(data any) (any, error) {
	return series.Apply(data, Skewness)
}

// KurtosisOf reduces any supported series shape with Kurtosis.
func KurtosisOf(data any, fisher bool) (any, error) {
	return series.Apply(data, func(xs []float64) float64 { return Kurtosis(xs, fisher) })
}

// Kurtosis is the fourth standardized moment with the population divisor.
// With fisher set, 3 is subtracted so a normal distribution scores 0.
func Kurtosis(xs []float64, fisher bool) float64 {
	mean, variance := moments(xs)
	var m4 float64
	for _, x := range xs {
		d := x - mean
		m4 += d * d * d * d
	}
	m4 /= float64(len(xs))
	k := m4 / (variance * variance)
	if fisher {
		return k - 3.0
	}
	return k
}
