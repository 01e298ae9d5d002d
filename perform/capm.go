package perform

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// CAPMResult holds the single-factor regression of asset excess returns on
// benchmark excess returns.
type CAPMResult struct {
	Alpha float64
	Beta  float64
	R2    float64
}

// CAPM regresses asset returns on benchmark returns, both in excess of the
// risk-free rate.
func CAPM(asset, benchmark []float64, riskFree float64) (CAPMResult, error) {
	if len(asset) != len(benchmark) || len(asset) == 0 {
		return CAPMResult{}, errors.New("perform: asset and benchmark series must have equal nonzero length")
	}
	x := make([]float64, len(benchmark))
	y := make([]float64, len(asset))
	for i := range asset {
		x[i] = benchmark[i] - riskFree
		y[i] = asset[i] - riskFree
	}
	alpha, beta := stat.LinearRegression(x, y, nil, false)
	r2 := stat.RSquared(x, y, nil, alpha, beta)
	return CAPMResult{Alpha: alpha, Beta: beta, R2: r2}, nil
}

// FactorRegression fits asset returns against an arbitrary set of factor
// columns by least squares, Fama-French style. The returned coefficients
// start with the intercept followed by one loading per factor, in the
// factors' given order.
func FactorRegression(asset []float64, factors [][]float64) ([]float64, error) {
	n := len(asset)
	k := len(factors)
	if n == 0 || k == 0 {
		return nil, errors.New("perform: need at least one observation and one factor")
	}
	for _, f := range factors {
		if len(f) != n {
			return nil, errors.New("perform: factor columns must match the asset series length")
		}
	}
	if n < k+1 {
		return nil, errors.New("perform: underdetermined regression")
	}

	x := mat.NewDense(n, k+1, nil)
	y := mat.NewVecDense(n, asset)
	for i := 0; i < n; i++ {
		x.Set(i, 0, 1.0)
		for j, f := range factors {
			x.Set(i, j+1, f[i])
		}
	}

	var qr mat.QR
	qr.Factorize(x)
	var coef mat.VecDense
	if err := qr.SolveVecTo(&coef, false, y); err != nil {
		return nil, err
	}
	out := make([]float64, k+1)
	for i := range out {
		out[i] = coef.AtVec(i)
	}
	return out, nil
}
