package fitfn

import (
	"fmt"
	"strings"

	"github.com/arloliu/fitfn/errs"
	"gonum.org/v1/gonum/interp"
)

// Method selects the interpolation method used by Spliner.
type Method int

const (
	// MethodCubic is a not-a-knot cubic spline. It is the default.
	MethodCubic Method = iota
	// MethodNatural is a natural cubic spline (zero second derivative
	// at the endpoints).
	MethodNatural
	// MethodClamped is a cubic spline with zero first derivative at the
	// endpoints.
	MethodClamped
	// MethodAkima is an Akima cubic spline, less prone to overshoot
	// near outliers than a natural cubic.
	MethodAkima
	// MethodMonotone is the Fritsch-Butland monotonicity-preserving
	// cubic. WithMonotone(true) forces it regardless of WithMethod.
	MethodMonotone
	// MethodLinear is piecewise-linear interpolation, the method used
	// by Connector.
	MethodLinear
)

// methodNames maps Method to their string representations.
var methodNames = map[Method]string{
	MethodCubic:    "cubic",
	MethodNatural:  "natural",
	MethodClamped:  "clamped",
	MethodAkima:    "akima",
	MethodMonotone: "monotone",
	MethodLinear:   "linear",
}

// String returns the string representation of the method.
func (m Method) String() string {
	if name, exists := methodNames[m]; exists {
		return name
	}

	return "unknown"
}

// methodFromString maps string names to Method.
var methodFromString = map[string]Method{
	"cubic":    MethodCubic,
	"natural":  MethodNatural,
	"clamped":  MethodClamped,
	"akima":    MethodAkima,
	"monotone": MethodMonotone,
	"linear":   MethodLinear,
}

// MethodFromString returns the Method for a given string name.
// Returns an error wrapping errs.ErrUnknownMethod for unknown names.
func MethodFromString(name string) (Method, error) {
	if m, exists := methodFromString[strings.ToLower(name)]; exists {
		return m, nil
	}

	return Method(-1), fmt.Errorf("%w: %q", errs.ErrUnknownMethod, name)
}

// newPredictor creates the gonum interpolant for a method. All of them
// clamp to the boundary value outside the fitted range.
func newPredictor(m Method) (interp.FittablePredictor, error) {
	switch m {
	case MethodCubic:
		return &interp.NotAKnotCubic{}, nil
	case MethodNatural:
		return &interp.NaturalCubic{}, nil
	case MethodClamped:
		return &interp.ClampedCubic{}, nil
	case MethodAkima:
		return &interp.AkimaSpline{}, nil
	case MethodMonotone:
		return &interp.FritschButland{}, nil
	case MethodLinear:
		return &interp.PiecewiseLinear{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownMethod, m)
	}
}
