package fitfn

import (
	"github.com/arloliu/fitfn/internal/options"
	"github.com/arloliu/fitfn/table"
)

// Spliner fits a spline interpolant through the (x, y) pairs named by a
// single-input formula and returns it as a callable function.
//
// Parameters:
//   - src: formula with exactly one input term, e.g. "wage ~ age"
//   - data: table containing the formula's columns
//   - opts: WithMethod (default MethodCubic) and WithMonotone;
//     WithMonotone(true) forces MethodMonotone regardless of WithMethod
//
// Returns:
//   - *Func: supports Eval, EvalAll, and EvalDeriv (orders 1 and 2)
//   - error: errs.ErrUnsupportedArity for more than one input term,
//     errs.ErrFit for duplicate x values or too few points
//
// Outside the fitted x range the interpolant clamps to the boundary
// value; it never extrapolates and never produces NaN.
//
// Example:
//
//	f, err := fitfn.Spliner("wage ~ age", data, fitfn.WithMonotone(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w, _ := f.Eval(fitfn.Args{"age": 40})
//	slope, _ := f.EvalDeriv(fitfn.Args{"age": 40}, 1)
func Spliner(src string, data *table.Table, opts ...SplinerOption) (*Func, error) {
	cfg := defaultSplinerConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	method := cfg.method
	if cfg.monotone {
		method = MethodMonotone
	}

	return newInterpFunc(src, data, method, true)
}
