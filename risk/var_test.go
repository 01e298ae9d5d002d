package risk

import (
	"math"
	"testing"

	"github.com/banachtech/quantmetrics/series"
	"github.com/stretchr/testify/require"
)

func TestParseDistribution(t *testing.T) {
	for _, test := range []struct {
		selector string
		want     Distribution
	}{
		{selector: "historic", want: Historic},
		{selector: "gaussian", want: Gaussian},
		{selector: "cf", want: CornishFisher},
		{selector: "studentt", want: StudentT},
		{selector: "laplace", want: Laplace},
		{selector: "logistic", want: Logistic},
	} {
		t.Run(test.selector, func(t *testing.T) {
			d, err := ParseDistribution(test.selector)
			require.NoError(t, err)
			require.Equal(t, test.want, d)
		})
	}

	_, err := ParseDistribution("cauchy")
	require.Error(t, err)
}

func TestHistoricVaRKnownValues(t *testing.T) {
	returns := []float64{0.3, 0.2, 0.1, 0, 0.06}
	v := HistoricVaR(returns, 0.05)
	require.InDelta(t, 0.012, v, 1e-12)
	// Only the minimum observation sits at or below the threshold, so the
	// expected shortfall degenerates to it.
	require.InDelta(t, 0.0, HistoricCVaR(returns, 0.05), 1e-12)
	require.LessOrEqual(t, HistoricCVaR(returns, 0.05), v)
}

func TestHistoricVaREmptyInput(t *testing.T) {
	require.NotPanics(t, func() {
		require.True(t, math.IsNaN(HistoricVaR(nil, 0.05)))
		require.True(t, math.IsNaN(HistoricVaR([]float64{}, 0.05)))
		require.True(t, math.IsNaN(HistoricCVaR(nil, 0.05)))
	})
}

func TestCVaRAtLeastAsExtremeAsVaR(t *testing.T) {
	returns := []float64{-0.08, 0.03, -0.02, 0.05, -0.06, 0.01, 0.04, -0.03, 0.02, -0.01}
	for _, alpha := range []float64{0.01, 0.05, 0.10, 0.25} {
		require.LessOrEqual(t, HistoricCVaR(returns, alpha), HistoricVaR(returns, alpha))
		require.LessOrEqual(t, GaussianCVaR(returns, alpha), GaussianVaR(returns, alpha, false))
	}
}

func TestCornishFisherAdjustsForSkew(t *testing.T) {
	// Heavily left-skewed sample: the adjusted quantile must differ from
	// the plain Gaussian one.
	returns := []float64{0.01, 0.02, 0.01, 0.015, 0.02, 0.01, -0.25, 0.012, 0.018, 0.011}
	plain := GaussianVaR(returns, 0.05, false)
	adjusted := GaussianVaR(returns, 0.05, true)
	require.Greater(t, math.Abs(plain-adjusted), 1e-6)
}

func TestStudentTMeasures(t *testing.T) {
	returns := []float64{
		-0.042, 0.013, -0.008, 0.021, -0.016, 0.004, 0.031, -0.027, 0.009, -0.003,
		0.017, -0.055, 0.012, 0.006, -0.011, 0.024, -0.019, 0.002, 0.015, -0.007,
		0.028, -0.033, 0.011, -0.002, 0.019, -0.014, 0.008, 0.022, -0.041, 0.005,
	}
	v := StudentTVaR(returns, 0.05)
	c := StudentTCVaR(returns, 0.05)
	require.False(t, math.IsNaN(v))
	require.False(t, math.IsNaN(c))
	require.Less(t, v, 0.0)
	require.LessOrEqual(t, c, v)
}

func TestLaplaceCVaRBoundary(t *testing.T) {
	returns := []float64{-0.02, 0.01, 0.03, -0.01, 0.02}

	v, err := LaplaceCVaR(returns, 0.6)
	require.ErrorIs(t, err, ErrAlphaAboveHalf)
	require.Zero(t, v)

	v, err = LaplaceCVaR(returns, 0.05)
	require.NoError(t, err)
	require.Less(t, v, LaplaceVaR(returns, 0.05))
}

func TestLogisticMeasures(t *testing.T) {
	returns := []float64{-0.02, 0.01, 0.03, -0.01, 0.02, -0.04, 0.05, 0.0}
	require.LessOrEqual(t, LogisticCVaR(returns, 0.05), LogisticVaR(returns, 0.05))
}

func TestEntropicVaRDomain(t *testing.T) {
	// Low-volatility series: the log argument is positive.
	low := []float64{0.01, -0.02, 0.015, -0.005, 0.008}
	require.False(t, math.IsNaN(EntropicVaR(low)))

	// std >= 1 silently yields NaN; preserved, not guarded.
	high := []float64{2.0, -2.0, 3.0, -3.0}
	require.True(t, math.IsNaN(EntropicVaR(high)))
}

func TestValueAtRiskShapes(t *testing.T) {
	s := series.NewSeries("AAPL", nil, []float64{-0.02, 0.01, 0.03, -0.01, 0.02})
	frame := series.NewFrame(nil, map[string][]float64{
		"AAPL": {-0.02, 0.01, 0.03, -0.01, 0.02},
		"MSFT": {0.01, -0.03, 0.02, 0.0, -0.01},
	})

	scalar, err := ValueAtRisk(s, Historic, 0.05)
	require.NoError(t, err)
	require.IsType(t, float64(0), scalar)

	out, err := ValueAtRisk(frame, Historic, 0.05)
	require.NoError(t, err)
	row := out.(series.Row)
	require.Equal(t, []string{"AAPL", "MSFT"}, row.Tickers)
	require.InDelta(t, HistoricVaR(frame.Column("AAPL"), 0.05), row.Value("AAPL"), 1e-12)

	_, err = ValueAtRisk(42, Historic, 0.05)
	require.ErrorIs(t, err, series.ErrUnsupportedType)
}

func TestMultiPeriodRecursionIdempotence(t *testing.T) {
	pf := series.NewPeriodFrame()
	pf.Add("2023Q1", series.NewFrame(nil, map[string][]float64{
		"AAPL": {-0.02, 0.01, 0.03, -0.01, 0.02, -0.04},
		"MSFT": {0.01, -0.03, 0.02, 0.0, -0.01, 0.02},
	}))
	pf.Add("2023Q2", series.NewFrame(nil, map[string][]float64{
		"AAPL": {0.05, -0.02, 0.01, 0.0, -0.03, 0.02},
		"MSFT": {-0.01, 0.01, -0.02, 0.04, 0.0, -0.05},
	}))

	for _, d := range []Distribution{Historic, Gaussian, CornishFisher} {
		out, err := ValueAtRisk(pf, d, 0.05)
		require.NoError(t, err)
		table := out.(*series.Table)

		for _, period := range pf.Periods {
			slice, err := ValueAtRisk(pf.Period(period), d, 0.05)
			require.NoError(t, err)
			row := slice.(series.Row)
			for i, ticker := range row.Tickers {
				require.Equal(t, row.Values[i], table.Value(period, ticker))
			}
		}
	}
}

func TestConditionalValueAtRiskLaplaceWarning(t *testing.T) {
	frame := series.NewFrame(nil, map[string][]float64{
		"AAPL": {-0.02, 0.01, 0.03, -0.01, 0.02},
	})
	out, err := ConditionalValueAtRisk(frame, Laplace, 0.6)
	require.ErrorIs(t, err, ErrAlphaAboveHalf)
	row := out.(series.Row)
	require.Zero(t, row.Value("AAPL"))
}

func TestMaxDrawdown(t *testing.T) {
	// +10% then -50%: trough is 0.55/1.1 - 1 = -0.5.
	require.InDelta(t, -0.5, MaxDrawdown([]float64{0.1, -0.5, 0.2}), 1e-12)
	// Monotonic gains never draw down.
	require.Zero(t, MaxDrawdown([]float64{0.01, 0.02, 0.03}))
}

func TestUlcerIndex(t *testing.T) {
	flat := []float64{0.0, 0.0, 0.0, 0.0}
	require.Zero(t, UlcerIndex(flat, 14))

	bumpy := []float64{0.05, -0.1, 0.02, -0.03, 0.04, -0.08}
	ui := UlcerIndex(bumpy, 3)
	require.Greater(t, ui, 0.0)
	// Default window kicks in for window <= 0.
	require.InDelta(t, UlcerIndex(bumpy, 14), UlcerIndex(bumpy, 0), 1e-15)
}
