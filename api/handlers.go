package api

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"

	"github.com/banachtech/quantmetrics/options"
	"github.com/banachtech/quantmetrics/risk"
	"github.com/banachtech/quantmetrics/series"
	"github.com/gin-gonic/gin"
)

// nullableFloat marshals IEEE NaN and infinities as JSON null. The engines
// deliberately let degenerate inputs propagate as inf/nan; encoding/json
// rejects those values outright, so responses carry them as null instead.
type nullableFloat float64

func (f nullableFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

func (f *nullableFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = nullableFloat(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = nullableFloat(v)
	return nil
}

func nullableRows(rows [][]float64) [][]nullableFloat {
	out := make([][]nullableFloat, len(rows))
	for i, row := range rows {
		out[i] = make([]nullableFloat, len(row))
		for j, v := range row {
			out[i][j] = nullableFloat(v)
		}
	}
	return out
}

type quoteRequest struct {
	Spot     float64 `json:"spot" binding:"required,gt=0"`
	Sigma    float64 `json:"volatility" binding:"required,gt=0"`
	Dividend float64 `json:"dividend_yield"`
	RiskFree float64 `json:"risk_free_rate"`
}

type optionsRequest struct {
	Quotes      map[string]quoteRequest `json:"quotes" binding:"required"`
	Measure     string                  `json:"measure" binding:"required"`
	Put         bool                    `json:"put"`
	StrikeStep  float64                 `json:"strike_step_size" binding:"required,gt=0"`
	StrikeRange float64                 `json:"strike_price_range" binding:"required,gt=0"`
	ExpiryDays  int                     `json:"expiration_time_range" binding:"required,min=1"`
}

type surfaceResponse struct {
	Strikes  []float64         `json:"strikes"`
	Expiries []float64         `json:"expiries"`
	Values   [][]nullableFloat `json:"values"`
}

func (server *Server) greekSurfaces(c *gin.Context) {
	var req optionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	kind := options.Call
	if req.Put {
		kind = options.Put
	}
	cell, err := options.ByName(req.Measure, kind)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	tickers := make([]string, 0, len(req.Quotes))
	spot := make(map[string]float64, len(req.Quotes))
	quotes := make(map[string]options.Quote, len(req.Quotes))
	for ticker, q := range req.Quotes {
		tickers = append(tickers, ticker)
		spot[ticker] = q.Spot
		quotes[ticker] = options.Quote{Spot: q.Spot, Sigma: q.Sigma, Dividend: q.Dividend, RiskFree: q.RiskFree}
	}

	strikes := options.StrikeGrid(tickers, spot, req.StrikeStep, req.StrikeRange)
	expiries := options.Expiries(req.ExpiryDays)
	surface := options.Compute(tickers, quotes, strikes, expiries, cell)

	out := make(map[string]surfaceResponse, len(tickers))
	for _, ticker := range tickers {
		out[ticker] = surfaceResponse{
			Strikes:  strikes[ticker],
			Expiries: expiries,
			Values:   nullableRows(surface.Rows(ticker)),
		}
	}
	c.JSON(http.StatusOK, out)
}

type riskRequest struct {
	Returns      map[string][]float64 `json:"returns" binding:"required"`
	Measure      string               `json:"measure" binding:"required"`
	Distribution string               `json:"distribution"`
	Alpha        float64              `json:"alpha"`
	Window       int                  `json:"window"`
}

func (server *Server) riskMeasures(c *gin.Context) {
	var req riskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if len(req.Returns) == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(errors.New("returns must not be empty")))
		return
	}
	for ticker, column := range req.Returns {
		if len(column) == 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(errors.New("returns for "+ticker+" must not be empty")))
			return
		}
	}
	frame := series.NewFrame(nil, req.Returns)

	var result any
	var err error
	var warning error
	switch req.Measure {
	case "var":
		d, perr := risk.ParseDistribution(req.Distribution)
		if perr != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(perr))
			return
		}
		result, err = risk.ValueAtRisk(frame, d, req.Alpha)
	case "cvar":
		d, perr := risk.ParseDistribution(req.Distribution)
		if perr != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(perr))
			return
		}
		result, warning = risk.ConditionalValueAtRisk(frame, d, req.Alpha)
		if warning != nil && !errors.Is(warning, risk.ErrAlphaAboveHalf) {
			err = warning
			warning = nil
		}
	case "evar":
		result, err = risk.EntropicValueAtRisk(frame)
	case "max_drawdown":
		result, err = risk.MaximumDrawdown(frame)
	case "ulcer":
		result, err = risk.Ulcer(frame, req.Window)
	default:
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(errors.New("unknown measure: "+req.Measure)))
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	row := result.(series.Row)
	values := make(map[string]nullableFloat, len(row.Tickers))
	for i, ticker := range row.Tickers {
		values[ticker] = nullableFloat(row.Values[i])
	}
	resp := gin.H{"values": values}
	if warning != nil {
		resp["warning"] = warning.Error()
	}
	c.JSON(http.StatusOK, resp)
}

type garchRequest struct {
	Returns []float64 `json:"returns" binding:"required,min=2"`
	T       int       `json:"t"`
	Horizon int       `json:"horizon" binding:"required,min=1"`
}

func (server *Server) garchForecast(c *gin.Context) {
	var req garchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	t := req.T
	if t <= 0 {
		t = len(req.Returns)
	}
	weights, err := risk.EstimateWeights(req.Returns, t, 1, 1)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"omega":    weights.Omega,
		"alpha":    weights.Alpha,
		"beta":     weights.Beta,
		"forecast": weights.Forecast(req.Returns, req.Horizon),
	})
}
