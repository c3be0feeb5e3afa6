package fitfn

import (
	"github.com/arloliu/fitfn/table"
)

// Connector joins the (x, y) pairs named by a single-input formula with
// straight line segments and returns the piecewise-linear interpolant
// as a callable function.
//
// The function passes exactly through every data point and clamps to
// the boundary value outside the data range. It does not support
// derivatives.
//
// Returns errs.ErrUnsupportedArity for formulas with more than one
// input term and errs.ErrFit for duplicate x values or fewer than two
// points.
func Connector(src string, data *table.Table) (*Func, error) {
	return newInterpFunc(src, data, MethodLinear, false)
}
