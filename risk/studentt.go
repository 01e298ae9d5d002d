package risk

import (
	"math"

	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// fitStudentT estimates the degrees of freedom of a location-scale t
// distribution by maximum likelihood. Location and scale are profiled out
// along with nu; nu is kept above 2 through a log transform so the
// variance-scaling in the VaR formulas stays defined.
func fitStudentT(xs []float64) float64 {
	mean := stat.Mean(xs, nil)
	problem := optimize.Problem{
		Func: func(par []float64) float64 {
			nu := 2.0 + math.Exp(par[0])
			scale := math.Exp(par[1])
			t := distuv.StudentsT{Mu: mean, Sigma: scale, Nu: nu}
			var ll float64
			for _, x := range xs {
				ll += t.LogProb(x)
			}
			return -ll
		},
	}
	_, std := stat.MeanStdDev(xs, nil)
	init := []float64{math.Log(3.0), math.Log(std)}
	res, err := optimize.Minimize(problem, init, nil, &optimize.NelderMead{})
	if err != nil {
		// Fall back to a fat-tailed default rather than failing the
		// whole risk computation.
		return 5.0
	}
	return 2.0 + math.Exp(res.X[0])
}

func studentTQuantile(p, nu float64) float64 {
	return distuv.StudentsT{Mu: 0.0, Sigma: 1.0, Nu: nu}.Quantile(p)
}

func studentTPDF(x, nu float64) float64 {
	return distuv.StudentsT{Mu: 0.0, Sigma: 1.0, Nu: nu}.Prob(x)
}
