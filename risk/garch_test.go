package risk

import (
	"math"
	"math/rand"
	"testing"

	"github.com/banachtech/quantmetrics/series"
	"github.com/stretchr/testify/require"
)

// simulateGARCH draws a return series from a known GARCH(1,1) process so
// the estimator sees genuine volatility clustering.
func simulateGARCH(n int, omega, alpha, beta float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := omega / (1.0 - alpha - beta)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = math.Sqrt(v) * rng.NormFloat64()
		v = omega + alpha*out[i]*out[i] + beta*v
	}
	return out
}

func TestEstimateWeightsStationarity(t *testing.T) {
	for _, test := range []struct {
		name               string
		omega, alpha, beta float64
		seed               int64
	}{
		{name: "PERSISTENT", omega: 5e-5, alpha: 0.10, beta: 0.85, seed: 1},
		{name: "REACTIVE", omega: 1e-4, alpha: 0.25, beta: 0.60, seed: 2},
		{name: "CALM", omega: 2e-5, alpha: 0.05, beta: 0.90, seed: 3},
	} {
		t.Run(test.name, func(t *testing.T) {
			returns := simulateGARCH(500, test.omega, test.alpha, test.beta, test.seed)
			w, err := EstimateWeights(returns, len(returns), 1, 1)
			require.NoError(t, err)
			require.Greater(t, w.Omega, 0.0)
			require.Greater(t, w.Alpha, 0.0)
			require.Greater(t, w.Beta, 0.0)
			require.Less(t, w.Alpha+w.Beta, 1.0)
		})
	}
}

func TestEstimateWeightsDeterministic(t *testing.T) {
	returns := simulateGARCH(300, 5e-5, 0.1, 0.85, 11)
	a, err := EstimateWeights(returns, len(returns), 1, 1)
	require.NoError(t, err)
	b, err := EstimateWeights(returns, len(returns), 1, 1)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestEstimateWeightsUnsupportedOrder(t *testing.T) {
	returns := []float64{0.01, -0.02, 0.03}
	_, err := EstimateWeights(returns, len(returns), 2, 1)
	require.ErrorIs(t, err, ErrUnsupportedOrder)
	_, err = EstimateWeights(returns, len(returns), 1, 0)
	require.ErrorIs(t, err, ErrUnsupportedOrder)
}

func TestVariancePathRecursion(t *testing.T) {
	w := GARCHWeights{Omega: 0.0001, Alpha: 0.1, Beta: 0.8}
	returns := []float64{0.02, -0.01, 0.03}
	path := w.VariancePath(returns, 3)

	require.InDelta(t, 0.0004, path[0], 1e-12)
	require.InDelta(t, 0.0001+0.1*0.0004+0.8*path[0], path[1], 1e-12)
	require.InDelta(t, 0.0001+0.1*0.0001+0.8*path[1], path[2], 1e-12)
}

func TestForecastConvergesToLongRunVariance(t *testing.T) {
	w := GARCHWeights{Omega: 0.0001, Alpha: 0.1, Beta: 0.8}
	returns := []float64{0.05, -0.01}
	longRun := w.Omega / (1.0 - w.Alpha - w.Beta)

	forecast := w.Forecast(returns, 100)
	require.Len(t, forecast, 100)
	// First step sits at the initial conditional variance.
	require.InDelta(t, returns[0]*returns[0], forecast[0], 1e-12)
	// The tail reverts to the long-run level.
	require.InDelta(t, longRun, forecast[99], 1e-6)
	// Monotone reversion from above.
	for i := 1; i < len(forecast); i++ {
		require.LessOrEqual(t, forecast[i], forecast[i-1])
	}
}

func TestGARCHVolatilityShapes(t *testing.T) {
	returns := simulateGARCH(200, 5e-5, 0.1, 0.85, 5)
	frame := series.NewFrame(nil, map[string][]float64{"AAPL": returns})

	out, err := GARCHVolatility(frame, len(returns))
	require.NoError(t, err)
	row := out.(series.Row)
	require.Greater(t, row.Value("AAPL"), 0.0)

	_, err = GARCHVolatility("not a series", 10)
	require.ErrorIs(t, err, series.ErrUnsupportedType)
}
