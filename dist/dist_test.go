package dist

import (
	"math"
	"testing"

	"github.com/banachtech/quantmetrics/series"
	"github.com/stretchr/testify/require"
)

func TestNormal(t *testing.T) {
	require.InDelta(t, 0.5, NormalCDF(0.0), 1e-12)
	require.InDelta(t, 1.0/math.Sqrt(2.0*math.Pi), NormalPDF(0.0), 1e-12)
	require.InDelta(t, 0.6368, NormalCDF(0.35), 1e-4)
	require.InDelta(t, -1.6449, NormalQuantile(0.05), 1e-4)
	// Symmetry.
	require.InDelta(t, NormalPDF(1.3), NormalPDF(-1.3), 1e-15)
	require.InDelta(t, 1.0-NormalCDF(0.7), NormalCDF(-0.7), 1e-12)
}

func TestSkewness(t *testing.T) {
	// Symmetric sample has zero third moment.
	require.InDelta(t, 0.0, Skewness([]float64{1, 2, 3, 4, 5}), 1e-12)
	// Right-skewed sample is positive.
	require.Greater(t, Skewness([]float64{1, 1, 1, 1, 10}), 0.0)
}

func TestKurtosis(t *testing.T) {
	// For {1..5}: population variance 2, fourth moment 6.8, ratio 1.7.
	xs := []float64{1, 2, 3, 4, 5}
	require.InDelta(t, 1.7, Kurtosis(xs, false), 1e-12)
	require.InDelta(t, 1.7-3.0, Kurtosis(xs, true), 1e-12)
}

func TestMomentsRecurseOverShapes(t *testing.T) {
	frame := series.NewFrame(nil, map[string][]float64{
		"AAPL": {1, 2, 3, 4, 5},
		"MSFT": {1, 1, 1, 1, 10},
	})

	out, err := SkewnessOf(frame)
	require.NoError(t, err)
	row := out.(series.Row)
	require.InDelta(t, 0.0, row.Value("AAPL"), 1e-12)
	require.Greater(t, row.Value("MSFT"), 0.0)

	out, err = KurtosisOf(frame, false)
	require.NoError(t, err)
	row = out.(series.Row)
	require.InDelta(t, 1.7, row.Value("AAPL"), 1e-12)

	pf := series.NewPeriodFrame()
	pf.Add("Q1", frame)
	out, err = SkewnessOf(pf)
	require.NoError(t, err)
	table := out.(*series.Table)
	require.InDelta(t, 0.0, table.Value("Q1", "AAPL"), 1e-12)

	_, err = KurtosisOf("not a series", true)
	require.ErrorIs(t, err, series.ErrUnsupportedType)
}

func TestDegenerateSampleTolerated(t *testing.T) {
	// Zero variance is not an error: the ratio silently goes NaN.
	require.True(t, math.IsNaN(Skewness([]float64{1, 1, 1})))
	require.True(t, math.IsNaN(Kurtosis([]float64{2, 2}, false)))
}
