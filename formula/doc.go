// Package formula parses model formulas of the form "y ~ x1 + log(x2) + 1".
//
// A formula names a single response on the left of "~" and one or more
// additive input terms on the right. Terms may wrap their variable in a
// transform such as log or sqrt; only the bare variable name becomes a
// parameter of functions built from the formula, while the transform is
// applied during evaluation. An intercept is never implicit: the literal
// term "1" must appear for builders to include one.
//
// This package only extracts structure. Fitting a formula against data is
// the job of the fitfn builders.
package formula
