package series

import (
	"errors"
	"sort"
	"time"
)

// ErrUnsupportedType is returned by Apply when the input is neither a
// Series, a Frame nor a PeriodFrame.
var ErrUnsupportedType = errors.New("series: input must be a Series, *Frame or *PeriodFrame")

// A Series is a single asset's ordered return observations.
type Series struct {
	Ticker string
	Dates  []time.Time
	Values []float64
}

// A Frame holds one return column per ticker over a shared date index.
// Columns are dense: every ticker has len(Dates) observations.
type Frame struct {
	Dates   []time.Time
	Tickers []string
	columns map[string][]float64
}

// A PeriodFrame is a two-level indexed table: the outer level is a coarse
// calendar period (e.g. a quarter), the inner level the dates within it.
type PeriodFrame struct {
	Periods []string
	frames  map[string]*Frame
}

// A Row labels one scalar per ticker, e.g. a risk measure across assets.
type Row struct {
	Tickers []string
	Values  []float64
}

// A Table is a Row per outer period. Rows and Periods are index-aligned.
type Table struct {
	Periods []string
	Tickers []string
	Rows    [][]float64
}

// A Reducer collapses a single return column to a scalar statistic.
type Reducer func(xs []float64) float64

func NewSeries(ticker string, dates []time.Time, values []float64) Series {
	return Series{Ticker: ticker, Dates: dates, Values: values}
}

// NewFrame builds a dense frame. Tickers are sorted for a deterministic
// column order.
func NewFrame(dates []time.Time, columns map[string][]float64) *Frame {
	tickers := make([]string, 0, len(columns))
	for k := range columns {
		tickers = append(tickers, k)
	}
	sort.Strings(tickers)
	return &Frame{Dates: dates, Tickers: tickers, columns: columns}
}

// Column returns the return series for one ticker.
func (f *Frame) Column(ticker string) []float64 {
	return f.columns[ticker]
}

// Series extracts one ticker's column as a standalone Series.
func (f *Frame) Series(ticker string) Series {
	return Series{Ticker: ticker, Dates: f.Dates, Values: f.columns[ticker]}
}

// Reduce applies fn to every column and labels the results by ticker.
func (f *Frame) Reduce(fn Reducer) Row {
	out := Row{Tickers: f.Tickers, Values: make([]float64, len(f.Tickers))}
	for i, t := range f.Tickers {
		out.Values[i] = fn(f.columns[t])
	}
	return out
}

func NewPeriodFrame() *PeriodFrame {
	return &PeriodFrame{frames: map[string]*Frame{}}
}

// Add appends one outer period's slice. Periods keep insertion order,
// which is expected to be chronological.
func (p *PeriodFrame) Add(period string, f *Frame) {
	if _, ok := p.frames[period]; !ok {
		p.Periods = append(p.Periods, period)
	}
	p.frames[period] = f
}

// Period returns the single-level slice for one outer period.
func (p *PeriodFrame) Period(period string) *Frame {
	return p.frames[period]
}

// Reduce applies fn independently within each outer period and reassembles
// a table indexed by period. Every VaR/CVaR/GARCH entry point recurses over
// two-level data through this single combinator rather than duplicating the
// group-apply-reassemble logic per statistic.
func (p *PeriodFrame) Reduce(fn Reducer) *Table {
	var tickers []string
	if len(p.Periods) > 0 {
		tickers = p.frames[p.Periods[0]].Tickers
	}
	out := &Table{Periods: p.Periods, Tickers: tickers, Rows: make([][]float64, len(p.Periods))}
	for i, period := range p.Periods {
		out.Rows[i] = p.frames[period].Reduce(fn).Values
	}
	return out
}

// Apply dispatches a reducer over any supported shape: a Series yields a
// scalar (float64), a *Frame yields a Row, a *PeriodFrame yields a *Table.
// Any other input is a type error.
func Apply(data any, fn Reducer) (any, error) {
	switch v := data.(type) {
	case Series:
		return fn(v.Values), nil
	case *Frame:
		return v.Reduce(fn), nil
	case *PeriodFrame:
		return v.Reduce(fn), nil
	default:
		return nil, ErrUnsupportedType
	}
}

// Value returns the cell for (period, ticker), for callers that address
// results by label rather than position.
func (t *Table) Value(period, ticker string) float64 {
	pi, ti := -1, -1
	for i, p := range t.Periods {
		if p == period {
			pi = i
			break
		}
	}
	for i, k := range t.Tickers {
		if k == ticker {
			ti = i
			break
		}
	}
	if pi < 0 || ti < 0 {
		return 0
	}
	return t.Rows[pi][ti]
}

// Value returns the scalar labelled by ticker.
func (r Row) Value(ticker string) float64 {
	for i, k := range r.Tickers {
		if k == ticker {
			return r.Values[i]
		}
	}
	return 0
}
