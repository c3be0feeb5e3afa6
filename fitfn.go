// Package fitfn turns a data table and a model formula into a callable
// function.
//
// Each builder fits or interpolates the formula's response against its
// input terms and returns a *Func whose parameter list is exactly the
// formula's input variable names, so callers evaluate by name rather
// than by position:
//
//	data, _ := table.FromColumns(
//	    table.Column{Name: "age", Values: []float64{20, 30, 40, 50, 60}},
//	    table.Column{Name: "wage", Values: []float64{10, 18, 24, 26, 25}},
//	)
//
//	f, err := fitfn.Spliner("wage ~ age", data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w, _ := f.Eval(fitfn.Args{"age": 40})
//
// # Builders
//
//   - Smoother: local regression (loess-style), any number of inputs
//   - LinearModel: ordinary least squares on exactly the formula terms,
//     with no implicit intercept
//   - Spliner: cubic (or monotone) spline interpolation, one input
//   - Connector: piecewise-linear interpolation, one input
//
// The numerical work is delegated to gonum; this package owns only the
// binding from formula to function. All construction errors wrap one of
// the errs package sentinels and surface immediately: a returned Func
// is always usable.
//
// Funcs are immutable and safe for concurrent evaluation.
package fitfn

import (
	"fmt"

	"github.com/arloliu/fitfn/errs"
)

// Args is the keyed argument bundle passed to a generated function: one
// value per input variable of the formula the function was built from.
type Args map[string]float64

// buildRow validates args against the parameter list and returns the
// values in parameter order. Unknown and missing keys are both
// rejected, so the bundle must match the formula's variables exactly.
func buildRow(params []string, args Args) ([]float64, error) {
	if err := findUnknown(params, args); err != nil {
		return nil, err
	}

	row := make([]float64, len(params))
	for i, name := range params {
		v, ok := args[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing argument %q", errs.ErrInvalidFormula, name)
		}
		row[i] = v
	}

	return row, nil
}

func findUnknown[V any](params []string, args map[string]V) error {
	for name := range args {
		known := false
		for _, p := range params {
			if p == name {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("%w: unknown argument %q", errs.ErrInvalidFormula, name)
		}
	}

	return nil
}
