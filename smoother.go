package fitfn

import (
	"fmt"

	"github.com/arloliu/fitfn/errs"
	"github.com/arloliu/fitfn/formula"
	"github.com/arloliu/fitfn/internal/loess"
	"github.com/arloliu/fitfn/internal/options"
	"github.com/arloliu/fitfn/table"
)

// Smoother fits a local regression (loess-style) of the formula's
// response on its input terms and returns the smoother as a callable
// function.
//
// Parameters:
//   - src: model formula, e.g. "wage ~ age" or "wage ~ age + educ"
//   - data: table containing the formula's columns
//   - opts: WithSpan (default 0.5) and WithDegree (default 1)
//
// Returns:
//   - *Func: supports Eval and EvalAll over the formula's variables
//   - error: errs.ErrInvalidFormula for a malformed formula,
//     errs.ErrFit when the span selects too few neighbors for the
//     local polynomial
//
// Example:
//
//	f, err := fitfn.Smoother("wage ~ age", data,
//	    fitfn.WithSpan(0.7), fitfn.WithDegree(2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w, _ := f.Eval(fitfn.Args{"age": 40})
func Smoother(src string, data *table.Table, opts ...SmootherOption) (*Func, error) {
	cfg := defaultSmootherConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	f, err := formula.Parse(src)
	if err != nil {
		return nil, err
	}

	terms := f.Terms()
	rows := data.NumRows()

	termCols := make([][]float64, len(terms))
	for j, term := range terms {
		col, err := data.Column(term.Var())
		if err != nil {
			return nil, err
		}
		termCols[j] = term.ApplyAll(col)
	}

	points := make([][]float64, rows)
	for i := range points {
		point := make([]float64, len(terms))
		for j := range terms {
			point[j] = termCols[j][i]
		}
		points[i] = point
	}

	yCol, err := data.Column(f.Response().Var())
	if err != nil {
		return nil, err
	}
	y := f.Response().ApplyAll(yCol)

	model, err := loess.Fit(points, y, cfg.span, cfg.degree)
	if err != nil {
		return nil, fmt.Errorf("%w: local regression: %v", errs.ErrFit, err)
	}

	params := f.Vars()
	varIndex := make(map[string]int, len(params))
	for i, name := range params {
		varIndex[name] = i
	}

	return &Func{
		params: params,
		eval: func(row []float64) (float64, error) {
			point := make([]float64, len(terms))
			for j, term := range terms {
				point[j] = term.Apply(row[varIndex[term.Var()]])
			}

			v, err := model.Predict(point)
			if err != nil {
				return 0, fmt.Errorf("%w: %v", errs.ErrFit, err)
			}

			return v, nil
		},
	}, nil
}
