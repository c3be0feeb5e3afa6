package formula

import (
	"fmt"
	"math"
	"strings"

	"github.com/arloliu/fitfn/errs"
)

// Transform maps a single input value, e.g. math.Log for a "log(x)" term.
type Transform func(float64) float64

// transforms maps the supported term-transform names to their functions.
// A bare variable term uses no transform at all.
var transforms = map[string]Transform{
	"log":   math.Log,
	"log2":  math.Log2,
	"log10": math.Log10,
	"exp":   math.Exp,
	"sqrt":  math.Sqrt,
	"abs":   math.Abs,
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
}

// Term is one additive term of a formula: a bare variable name such as
// "x", or a transformed variable such as "log(x)". Only the bare
// variable name contributes to the generated function's parameter list;
// the transform applies when the term is evaluated.
type Term struct {
	expr      string
	varName   string
	transform Transform
}

// Expr returns the term's source text, e.g. "log(x)".
func (t Term) Expr() string {
	return t.expr
}

// Var returns the bare variable name the term reads, e.g. "x".
func (t Term) Var() string {
	return t.varName
}

// Apply evaluates the term for one value of its variable.
func (t Term) Apply(v float64) float64 {
	if t.transform == nil {
		return v
	}

	return t.transform(v)
}

// ApplyAll evaluates the term over a column, returning a new slice.
func (t Term) ApplyAll(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = t.Apply(v)
	}

	return out
}

// Formula is a parsed model formula of the form
//
//	response ~ term + term + ...
//
// with a single response term on the left-hand side and one or more
// input terms on the right-hand side. An explicit "+ 1" term requests
// an intercept; there is no implicit intercept.
type Formula struct {
	src       string
	response  Term
	terms     []Term
	vars      []string
	intercept bool
}

// Parse parses a model formula string.
//
// Grammar:
//   - exactly one "~" separating response from inputs
//   - the response is a single term (bare or transformed variable)
//   - inputs are "+"-separated terms; the literal term "1" adds an
//     intercept
//   - a term is either a variable name or transform(variable), with
//     the transform drawn from the supported set (log, log2, log10,
//     exp, sqrt, abs, sin, cos, tan)
//
// Returns:
//   - *Formula: the parsed formula
//   - error: wraps errs.ErrInvalidFormula on any malformation
//
// Example:
//
//	f, err := formula.Parse("wage ~ log(age) + educ + 1")
//	// f.Vars() == []string{"age", "educ"}
func Parse(src string) (*Formula, error) {
	parts := strings.Split(src, "~")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: expected exactly one '~' in %q", errs.ErrInvalidFormula, src)
	}

	lhs := strings.TrimSpace(parts[0])
	rhs := strings.TrimSpace(parts[1])
	if lhs == "" || rhs == "" {
		return nil, fmt.Errorf("%w: empty side in %q", errs.ErrInvalidFormula, src)
	}

	if strings.Contains(lhs, "+") {
		return nil, fmt.Errorf("%w: multiple response terms in %q", errs.ErrInvalidFormula, src)
	}

	response, err := parseTerm(lhs)
	if err != nil {
		return nil, err
	}

	f := &Formula{src: src, response: response}

	seen := make(map[string]bool)
	for _, raw := range strings.Split(rhs, "+") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil, fmt.Errorf("%w: empty term in %q", errs.ErrInvalidFormula, src)
		}

		if raw == "1" {
			f.intercept = true
			continue
		}

		term, err := parseTerm(raw)
		if err != nil {
			return nil, err
		}

		f.terms = append(f.terms, term)
		if !seen[term.varName] {
			seen[term.varName] = true
			f.vars = append(f.vars, term.varName)
		}
	}

	if len(f.terms) == 0 {
		return nil, fmt.Errorf("%w: no input variables in %q", errs.ErrInvalidFormula, src)
	}

	return f, nil
}

// parseTerm parses a single term: "x" or "log(x)".
func parseTerm(raw string) (Term, error) {
	open := strings.IndexByte(raw, '(')
	if open < 0 {
		if !validIdent(raw) {
			return Term{}, fmt.Errorf("%w: invalid variable name %q", errs.ErrInvalidFormula, raw)
		}

		return Term{expr: raw, varName: raw}, nil
	}

	if !strings.HasSuffix(raw, ")") {
		return Term{}, fmt.Errorf("%w: unbalanced parentheses in term %q", errs.ErrInvalidFormula, raw)
	}

	name := strings.TrimSpace(raw[:open])
	arg := strings.TrimSpace(raw[open+1 : len(raw)-1])

	fn, ok := transforms[name]
	if !ok {
		return Term{}, fmt.Errorf("%w: unknown transform %q in term %q", errs.ErrInvalidFormula, name, raw)
	}

	if !validIdent(arg) {
		return Term{}, fmt.Errorf("%w: invalid variable name %q in term %q", errs.ErrInvalidFormula, arg, raw)
	}

	return Term{expr: name + "(" + arg + ")", varName: arg, transform: fn}, nil
}

// validIdent reports whether s is a plausible column name: a letter or
// underscore followed by letters, digits, underscores, or dots.
func validIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case i > 0 && ((r >= '0' && r <= '9') || r == '.'):
		default:
			return false
		}
	}

	return true
}

// Response returns the single left-hand-side term.
func (f *Formula) Response() Term {
	return f.response
}

// Terms returns the right-hand-side terms in formula order, excluding
// any intercept term.
func (f *Formula) Terms() []Term {
	return f.terms
}

// Vars returns the deduplicated bare input-variable names in order of
// first appearance. This is the parameter list of any function built
// from the formula.
func (f *Formula) Vars() []string {
	return f.vars
}

// HasIntercept reports whether the formula contained an explicit "+ 1".
func (f *Formula) HasIntercept() bool {
	return f.intercept
}

// String returns the original formula source text.
func (f *Formula) String() string {
	return f.src
}
