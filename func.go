package fitfn

import (
	"fmt"
	"maps"
	"slices"

	"github.com/arloliu/fitfn/errs"
)

// LinearModelTag is the introspection tag carried by functions built
// with LinearModel.
const LinearModelTag = "Fitted Linear Model"

// Func is a fitted function bound to the input variables of the formula
// it was built from. Its parameter names and order are fixed at
// construction time; argument bundles are validated against them on
// every call.
//
// A Func owns its fitted model exclusively and never mutates it, so a
// single Func may be evaluated from any number of goroutines.
type Func struct {
	params   []string
	tag      string
	coefs    map[string]float64
	rsquared float64
	rmse     float64
	eval     func(row []float64) (float64, error)
	deriv    func(row []float64, order int) (float64, error)
}

// Params returns the function's parameter names: the formula's input
// variables in formula order.
func (f *Func) Params() []string {
	return slices.Clone(f.params)
}

// Tag returns the function's introspection tag: LinearModelTag for
// functions built with LinearModel, "" otherwise.
func (f *Func) Tag() string {
	return f.tag
}

// Coefs returns the fitted coefficients keyed by the exact formula term
// strings (the explicit intercept, if any, under the key "1"). It
// returns nil for functions that are not linear models.
func (f *Func) Coefs() map[string]float64 {
	if f.coefs == nil {
		return nil
	}

	return maps.Clone(f.coefs)
}

// RSquared returns the coefficient of determination of the fit. Only
// LinearModel populates it; other builders report 0.
func (f *Func) RSquared() float64 {
	return f.rsquared
}

// RMSE returns the root mean square error of the fit. Only LinearModel
// populates it; other builders report 0.
func (f *Func) RMSE() float64 {
	return f.rmse
}

// Eval evaluates the function at one point.
//
// The argument bundle must contain exactly the function's parameters:
// unknown or missing keys fail with an error wrapping
// errs.ErrInvalidFormula. Evaluation failures of the underlying model
// wrap errs.ErrFit.
func (f *Func) Eval(args Args) (float64, error) {
	row, err := buildRow(f.params, args)
	if err != nil {
		return 0, err
	}

	return f.eval(row)
}

// EvalDeriv evaluates the order-th derivative of the function at one
// point. Order 0 is equivalent to Eval. Only spline functions support
// derivatives (orders 1 and 2); other functions, and higher orders,
// fail with an error wrapping errs.ErrFit.
func (f *Func) EvalDeriv(args Args, order int) (float64, error) {
	if order < 0 {
		return 0, fmt.Errorf("%w: negative derivative order %d", errs.ErrFit, order)
	}

	if order == 0 {
		return f.Eval(args)
	}

	if f.deriv == nil {
		return 0, fmt.Errorf("%w: function does not support derivatives", errs.ErrFit)
	}

	row, err := buildRow(f.params, args)
	if err != nil {
		return 0, err
	}

	return f.deriv(row, order)
}

// EvalAll evaluates the function over columns of argument values.
//
// Every parameter must be present; the value slices must share one
// length, except that length-1 slices broadcast against the rest. The
// result has the common length. Key and shape violations wrap
// errs.ErrInvalidFormula.
func (f *Func) EvalAll(args map[string][]float64) ([]float64, error) {
	if err := findUnknown(f.params, args); err != nil {
		return nil, err
	}

	n := 1
	for _, name := range f.params {
		col, ok := args[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing argument %q", errs.ErrInvalidFormula, name)
		}

		switch {
		case len(col) == 0:
			return nil, fmt.Errorf("%w: empty values for argument %q", errs.ErrInvalidFormula, name)
		case len(col) == 1 || len(col) == n:
		case n == 1:
			n = len(col)
		default:
			return nil, fmt.Errorf("%w: argument %q has %d values, expected %d",
				errs.ErrInvalidFormula, name, len(col), n)
		}
	}

	out := make([]float64, n)
	row := make([]float64, len(f.params))
	for i := range out {
		for j, name := range f.params {
			col := args[name]
			if len(col) == 1 {
				row[j] = col[0]
			} else {
				row[j] = col[i]
			}
		}

		v, err := f.eval(row)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
