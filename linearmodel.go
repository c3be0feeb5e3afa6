package fitfn

import (
	"fmt"

	"github.com/arloliu/fitfn/errs"
	"github.com/arloliu/fitfn/formula"
	"github.com/arloliu/fitfn/internal/lsq"
	"github.com/arloliu/fitfn/table"
	"gonum.org/v1/gonum/mat"
)

// LinearModel fits ordinary least squares of the formula's response on
// exactly its input terms and returns the fitted model as a callable
// function.
//
// There is NO implicit intercept: "y ~ x" fits a line through the
// origin, and "y ~ x + 1" must be written explicitly to include one.
//
// Parameters:
//   - src: model formula, e.g. "wage ~ educ + log(age) + 1"
//   - data: table containing the formula's columns
//
// Returns:
//   - *Func: tagged LinearModelTag; Coefs() exposes the coefficients
//     keyed by the exact term strings (the intercept under "1"), and
//     RSquared/RMSE report fit quality
//   - error: errs.ErrFit on a singular design matrix or fewer rows
//     than terms
//
// Example:
//
//	f, err := fitfn.LinearModel("wage ~ educ + 1", data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pred, _ := f.Eval(fitfn.Args{"educ": 16})
//	coefs := f.Coefs() // {"educ": ..., "1": ...}
func LinearModel(src string, data *table.Table) (*Func, error) {
	f, err := formula.Parse(src)
	if err != nil {
		return nil, err
	}

	terms := f.Terms()
	cols := len(terms)
	if f.HasIntercept() {
		cols++
	}

	rows := data.NumRows()
	if rows == 0 {
		return nil, fmt.Errorf("%w: no data points", errs.ErrFit)
	}

	design := mat.NewDense(rows, cols, nil)
	for j, term := range terms {
		col, err := data.Column(term.Var())
		if err != nil {
			return nil, err
		}
		design.SetCol(j, term.ApplyAll(col))
	}
	if f.HasIntercept() {
		ones := make([]float64, rows)
		for i := range ones {
			ones[i] = 1
		}
		design.SetCol(cols-1, ones)
	}

	yCol, err := data.Column(f.Response().Var())
	if err != nil {
		return nil, err
	}
	y := f.Response().ApplyAll(yCol)

	res, err := lsq.Solve(design, y)
	if err != nil {
		return nil, fmt.Errorf("%w: least squares: %v", errs.ErrFit, err)
	}

	coefs := make(map[string]float64, cols)
	for j, term := range terms {
		coefs[term.Expr()] = res.Coefs[j]
	}
	if f.HasIntercept() {
		coefs["1"] = res.Coefs[cols-1]
	}

	params := f.Vars()
	varIndex := make(map[string]int, len(params))
	for i, name := range params {
		varIndex[name] = i
	}

	return &Func{
		params:   params,
		tag:      LinearModelTag,
		coefs:    coefs,
		rsquared: res.RSquared,
		rmse:     res.RMSE,
		eval: func(row []float64) (float64, error) {
			var sum float64
			for j, term := range terms {
				sum += res.Coefs[j] * term.Apply(row[varIndex[term.Var()]])
			}
			if f.HasIntercept() {
				sum += res.Coefs[cols-1]
			}

			return sum, nil
		},
	}, nil
}
