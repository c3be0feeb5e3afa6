package fitfn

import (
	"fmt"
	"sort"

	"github.com/arloliu/fitfn/errs"
	"github.com/arloliu/fitfn/formula"
	"github.com/arloliu/fitfn/table"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/interp"
)

// newInterpFunc is the shared construction path for Spliner and
// Connector: validate the formula's arity, extract the (x, y) pairs,
// fit the requested interpolant, and bind it to the formula's single
// input variable.
//
// withDeriv controls whether the resulting Func supports EvalDeriv;
// Connector passes false.
func newInterpFunc(src string, data *table.Table, method Method, withDeriv bool) (*Func, error) {
	f, err := formula.Parse(src)
	if err != nil {
		return nil, err
	}

	if len(f.Terms()) != 1 {
		return nil, fmt.Errorf("%w: interpolation takes exactly one input term, formula %q has %d",
			errs.ErrUnsupportedArity, src, len(f.Terms()))
	}

	xTerm := f.Terms()[0]
	xs, ys, err := extractPairs(f, data)
	if err != nil {
		return nil, err
	}

	predictor, err := newPredictor(method)
	if err != nil {
		return nil, err
	}

	if err := predictor.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("%w: %s interpolation: %v", errs.ErrFit, method, err)
	}

	fn := &Func{
		params: f.Vars(),
		eval: func(row []float64) (float64, error) {
			return predictor.Predict(xTerm.Apply(row[0])), nil
		},
	}

	if withDeriv {
		fn.deriv = derivClosure(predictor, xTerm)
	}

	return fn, nil
}

// extractPairs pulls the (x, y) value arrays out of the data table via
// the formula, applies any term transforms, sorts by x, and rejects
// degenerate inputs.
func extractPairs(f *formula.Formula, data *table.Table) (xs, ys []float64, err error) {
	xTerm := f.Terms()[0]

	xCol, err := data.Column(xTerm.Var())
	if err != nil {
		return nil, nil, err
	}

	yCol, err := data.Column(f.Response().Var())
	if err != nil {
		return nil, nil, err
	}

	if len(xCol) < 2 {
		return nil, nil, fmt.Errorf("%w: need at least 2 data points, got %d", errs.ErrFit, len(xCol))
	}

	xs = xTerm.ApplyAll(xCol)
	ys = f.Response().ApplyAll(yCol)

	order := make([]int, len(xs))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return xs[order[a]] < xs[order[b]] })

	sortedX := make([]float64, len(xs))
	sortedY := make([]float64, len(ys))
	for i, idx := range order {
		sortedX[i] = xs[idx]
		sortedY[i] = ys[idx]
	}

	for i := 1; i < len(sortedX); i++ {
		if sortedX[i] == sortedX[i-1] {
			return nil, nil, fmt.Errorf("%w: duplicate x value %v", errs.ErrFit, sortedX[i])
		}
	}

	return sortedX, sortedY, nil
}

// derivClosure builds the derivative evaluator for a fitted
// interpolant: order 1 analytically, order 2 by a central finite
// difference over the analytic first derivative.
func derivClosure(predictor interp.FittablePredictor, xTerm formula.Term) func([]float64, int) (float64, error) {
	dp, hasDeriv := predictor.(interp.DerivativePredictor)

	return func(row []float64, order int) (float64, error) {
		if !hasDeriv {
			return 0, fmt.Errorf("%w: method does not support derivatives", errs.ErrFit)
		}

		x := xTerm.Apply(row[0])
		switch order {
		case 1:
			return dp.PredictDerivative(x), nil
		case 2:
			return fd.Derivative(dp.PredictDerivative, x, &fd.Settings{Formula: fd.Central}), nil
		default:
			return 0, fmt.Errorf("%w: derivative order %d not supported (max 2)", errs.ErrFit, order)
		}
	}
}
