package risk

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/banachtech/quantmetrics/dist"
	"github.com/banachtech/quantmetrics/series"
	"gonum.org/v1/gonum/stat"
)

// Distribution selects the family a VaR/CVaR measure assumes for the
// return column it reduces.
type Distribution int

const (
	Historic Distribution = iota
	Gaussian
	CornishFisher
	StudentT
	Laplace
	Logistic
)

// ErrAlphaAboveHalf flags the Laplace CVaR degenerate branch: the closed
// form only covers alpha <= 0.5, the measure is reported as 0 and this
// sentinel is returned alongside the (valid) zero result.
var ErrAlphaAboveHalf = errors.New("risk: laplace cvar is only defined for alpha <= 0.5, returning 0")

// ParseDistribution maps a selector string to its Distribution. Unknown
// selectors are a configuration error.
func ParseDistribution(s string) (Distribution, error) {
	switch s {
	case "historic":
		return Historic, nil
	case "gaussian":
		return Gaussian, nil
	case "cf":
		return CornishFisher, nil
	case "studentt":
		return StudentT, nil
	case "laplace":
		return Laplace, nil
	case "logistic":
		return Logistic, nil
	}
	return 0, fmt.Errorf("unknown distribution: %s", s)
}

// percentile is the linearly interpolated quantile of xs at 100*alpha,
// the convention shared by all the historic tail measures here.
func percentile(xs []float64, alpha float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := alpha * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (pos-float64(lo))*(sorted[hi]-sorted[lo])
}

func meanStd(xs []float64) (float64, float64) {
	mean, std := stat.MeanStdDev(xs, nil)
	return mean, std
}

// HistoricVaR is the alpha-quantile of the observed return distribution.
// Losses come out as negative returns.
func HistoricVaR(xs []float64, alpha float64) float64 {
	return percentile(xs, alpha)
}

// HistoricCVaR is the mean of all returns at or below the historic VaR
// threshold.
func HistoricCVaR(xs []float64, alpha float64) float64 {
	threshold := HistoricVaR(xs, alpha)
	var sum float64
	var n int
	for _, x := range xs {
		if x <= threshold {
			sum += x
			n++
		}
	}
	return sum / float64(n)
}

// GaussianVaR is mean + z_alpha*std. With cornishFisher set, z_alpha is
// expanded with the sample skewness and raw kurtosis to correct for
// non-normal tails.
func GaussianVaR(xs []float64, alpha float64, cornishFisher bool) float64 {
	mean, std := meanStd(xs)
	z := dist.NormalQuantile(alpha)
	if cornishFisher {
		s := dist.Skewness(xs)
		k := dist.Kurtosis(xs, false)
		z = z + (z*z-1.0)*s/6.0 + (z*z*z-3.0*z)*(k-3.0)/24.0 - (2.0*z*z*z-5.0*z)*s*s/36.0
	}
	return mean + z*std
}

// GaussianCVaR is the normal expected shortfall -std*pdf(z_alpha)/alpha + mean.
func GaussianCVaR(xs []float64, alpha float64) float64 {
	mean, std := meanStd(xs)
	z := dist.NormalQuantile(alpha)
	return mean - std*dist.NormalPDF(z)/alpha
}

// StudentTVaR fits the degrees of freedom by maximum likelihood and scales
// the t quantile back to the sample standard deviation.
func StudentTVaR(xs []float64, alpha float64) float64 {
	mean, std := meanStd(xs)
	nu := fitStudentT(xs)
	tq := studentTQuantile(alpha, nu)
	return math.Sqrt((nu-2.0)/nu)*tq*std + mean
}

// StudentTCVaR is the closed-form t expected shortfall using the fitted
// degrees of freedom and the density at the (1-alpha) quantile.
func StudentTCVaR(xs []float64, alpha float64) float64 {
	mean, std := meanStd(xs)
	nu := fitStudentT(xs)
	x := studentTQuantile(1.0-alpha, nu)
	scale := std * math.Sqrt((nu-2.0)/nu)
	return -1.0/alpha*(nu+x*x)/(nu-1.0)*studentTPDF(x, nu)*scale + mean
}

// LaplaceVaR fits the Laplace scale from the sample standard deviation and
// inverts its CDF.
func LaplaceVaR(xs []float64, alpha float64) float64 {
	mean, std := meanStd(xs)
	b := std / math.Sqrt2
	if alpha <= 0.5 {
		return mean + b*math.Log(2.0*alpha)
	}
	return mean - b*math.Log(2.0*(1.0-alpha))
}

// LaplaceCVaR is the Laplace expected shortfall mean + b*(ln(2*alpha)-1).
// The closed form only holds for alpha <= 0.5; above that the measure is
// 0 and ErrAlphaAboveHalf is returned as a warning, not a failure.
func LaplaceCVaR(xs []float64, alpha float64) (float64, error) {
	if alpha > 0.5 {
		return 0, ErrAlphaAboveHalf
	}
	mean, std := meanStd(xs)
	b := std / math.Sqrt2
	return mean + b*(math.Log(2.0*alpha)-1.0), nil
}

// LogisticVaR inverts the logistic CDF with the scale implied by the
// sample variance.
func LogisticVaR(xs []float64, alpha float64) float64 {
	mean, std := meanStd(xs)
	scale := std * math.Sqrt(3.0) / math.Pi
	return mean + scale*math.Log(alpha/(1.0-alpha))
}

// LogisticCVaR is the exact logistic expected shortfall
// mean + scale*(alpha*ln(alpha)+(1-alpha)*ln(1-alpha))/alpha.
func LogisticCVaR(xs []float64, alpha float64) float64 {
	mean, std := meanStd(xs)
	scale := std * math.Sqrt(3.0) / math.Pi
	return mean + scale*(alpha*math.Log(alpha)+(1.0-alpha)*math.Log(1.0-alpha))/alpha
}

// EntropicVaR is the Gaussian upper bound mean + std*sqrt(-2*ln(std)).
// The log argument goes negative once std >= 1, silently yielding NaN;
// that degenerate regime is preserved, not guarded.
func EntropicVaR(xs []float64) float64 {
	mean, std := meanStd(xs)
	return mean + std*math.Sqrt(-2.0*math.Log(std))
}

// ValueAtRisk reduces any supported series shape (Series, *Frame,
// *PeriodFrame) with the selected distribution's VaR. Two-level data is
// reduced per outer period through the shared series combinator.
func ValueAtRisk(data any, d Distribution, alpha float64) (any, error) {
	var fn series.Reducer
	switch d {
	case Historic:
		fn = func(xs []float64) float64 { return HistoricVaR(xs, alpha) }
	case Gaussian:
		fn = func(xs []float64) float64 { return GaussianVaR(xs, alpha, false) }
	case CornishFisher:
		fn = func(xs []float64) float64 { return GaussianVaR(xs, alpha, true) }
	case StudentT:
		fn = func(xs []float64) float64 { return StudentTVaR(xs, alpha) }
	case Laplace:
		fn = func(xs []float64) float64 { return LaplaceVaR(xs, alpha) }
	case Logistic:
		fn = func(xs []float64) float64 { return LogisticVaR(xs, alpha) }
	default:
		return nil, fmt.Errorf("unknown distribution: %d", d)
	}
	return series.Apply(data, fn)
}

// ConditionalValueAtRisk mirrors ValueAtRisk for expected shortfall. For
// the Laplace family with alpha > 0.5 the result is fully formed (all
// zeros) and ErrAlphaAboveHalf is returned alongside it.
func ConditionalValueAtRisk(data any, d Distribution, alpha float64) (any, error) {
	var warn error
	var fn series.Reducer
	switch d {
	case Historic:
		fn = func(xs []float64) float64 { return HistoricCVaR(xs, alpha) }
	case Gaussian, CornishFisher:
		fn = func(xs []float64) float64 { return GaussianCVaR(xs, alpha) }
	case StudentT:
		fn = func(xs []float64) float64 { return StudentTCVaR(xs, alpha) }
	case Laplace:
		fn = func(xs []float64) float64 {
			v, err := LaplaceCVaR(xs, alpha)
			if err != nil {
				warn = err
			}
			return v
		}
	case Logistic:
		fn = func(xs []float64) float64 { return LogisticCVaR(xs, alpha) }
	default:
		return nil, fmt.Errorf("unknown distribution: %d", d)
	}
	out, err := series.Apply(data, fn)
	if err != nil {
		return nil, err
	}
	return out, warn
}

// EntropicValueAtRisk reduces any supported shape with the Gaussian EVaR
// upper bound.
func EntropicValueAtRisk(data any) (any, error) {
	return series.Apply(data, EntropicVaR)
}
