package risk

import (
	"math"

	"github.com/banachtech/quantmetrics/series"
)

// MaxDrawdown compounds the return column and reports the most negative
// deviation from its running peak.
func MaxDrawdown(xs []float64) float64 {
	cum := 1.0
	peak := 1.0
	worst := 0.0
	for _, x := range xs {
		cum *= 1.0 + x
		if cum > peak {
			peak = cum
		}
		if dd := cum/peak - 1.0; dd < worst {
			worst = dd
		}
	}
	return worst
}

// UlcerIndex is the root mean square of rolling drawdowns: cumulative
// returns against their rolling-window maximum. The window is clipped at
// the start of the series.
func UlcerIndex(xs []float64, window int) float64 {
	if window <= 0 {
		window = 14
	}
	n := len(xs)
	cum := make([]float64, n)
	acc := 1.0
	for i, x := range xs {
		acc *= 1.0 + x
		cum[i] = acc
	}
	var sumSq float64
	for i := 0; i < n; i++ {
		lo := i - window + 1
		if lo < 0 {
			lo = 0
		}
		rollMax := cum[lo]
		for j := lo + 1; j <= i; j++ {
			if cum[j] > rollMax {
				rollMax = cum[j]
			}
		}
		dd := (cum[i] - rollMax) / rollMax
		sumSq += dd * dd
	}
	return math.Sqrt(sumSq / float64(n))
}

// MaximumDrawdown reduces any supported series shape with MaxDrawdown.
func MaximumDrawdown(data any) (any, error) {
	return series.Apply(data, MaxDrawdown)
}

// Ulcer reduces any supported series shape with the Ulcer index.
func Ulcer(data any, window int) (any, error) {
	return series.Apply(data, func(xs []float64) float64 { return UlcerIndex(xs, window) })
}
