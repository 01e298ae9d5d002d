package perform

import (
	"math"

	"github.com/banachtech/quantmetrics/series"
	"gonum.org/v1/gonum/stat"
)

// Sharpe is the excess mean return per unit of total volatility.
func Sharpe(xs []float64, riskFree float64) float64 {
	mean, std := stat.MeanStdDev(xs, nil)
	return (mean - riskFree) / std
}

// Sortino penalizes only downside volatility: the denominator is the root
// mean square of negative excess returns.
func Sortino(xs []float64, riskFree float64) float64 {
	mean := stat.Mean(xs, nil)
	var sumSq float64
	for _, x := range xs {
		if d := x - riskFree; d < 0 {
			sumSq += d * d
		}
	}
	downside := math.Sqrt(sumSq / float64(len(xs)))
	return (mean - riskFree) / downside
}

// SharpeRatio reduces any supported series shape with Sharpe.
func SharpeRatio(data any, riskFree float64) (any, error) {
	return series.Apply(data, func(xs []float64) float64 { return Sharpe(xs, riskFree) })
}

// SortinoRatio reduces any supported series shape with Sortino.
func SortinoRatio(data any, riskFree float64) (any, error) {
	return series.Apply(data, func(xs []float64) float64 { return Sortino(xs, riskFree) })
}
