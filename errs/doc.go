// Package errs defines the sentinel error classes shared across fitfn
// packages.
//
// Errors returned by fitfn wrap one of these sentinels, so callers can
// classify failures with errors.Is without parsing messages:
//
//	f, err := fitfn.Spliner("y ~ x + z", data)
//	if errors.Is(err, errs.ErrUnsupportedArity) {
//	    // spline builders take exactly one input variable
//	}
package errs
