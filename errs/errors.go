package errs

import "errors"

// Error classes for function builders. Call sites wrap these with
// fmt.Errorf("%w: detail", ...) so callers can match with errors.Is
// while still seeing the specific cause.
var (
	// ErrInvalidFormula indicates a malformed formula: unparsable syntax,
	// more than one response term on the left-hand side, an unknown
	// transform, or an argument bundle that does not match the formula's
	// input variables at call time.
	ErrInvalidFormula = errors.New("invalid formula")

	// ErrUnsupportedArity indicates that a single-variable builder
	// (Spliner, Connector) received a formula with more than one input
	// variable on the right-hand side.
	ErrUnsupportedArity = errors.New("unsupported arity")

	// ErrFit indicates that the delegated fitting or interpolation
	// routine failed or degenerated: singular design matrix, duplicate
	// x values, too few data points for the requested method or span,
	// or an unsupported derivative order.
	ErrFit = errors.New("fit failed")

	// ErrUnknownColumn indicates that a formula referenced a column the
	// data table does not contain.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrUnknownMethod indicates an unrecognized spline method selector.
	ErrUnknownMethod = errors.New("unknown spline method")
)
