package lsq

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Result holds the outcome of a least-squares solve.
type Result struct {
	// Coefs contains one coefficient per design-matrix column, in
	// column order.
	Coefs []float64
	// RSquared is the coefficient of determination of the fit (0-1).
	RSquared float64
	// RMSE is the root mean square error of the fit.
	RMSE float64
}

// Solve fits y = X*beta by QR least squares.
//
// Parameters:
//   - x: design matrix, one row per observation and one column per term
//   - y: observed responses, len(y) must equal the row count of x
//
// Returns:
//   - *Result: coefficients and fit quality
//   - error: if the system is underdetermined (fewer rows than columns)
//     or the design matrix is singular or near-singular
func Solve(x *mat.Dense, y []float64) (*Result, error) {
	rows, cols := x.Dims()
	if len(y) != rows {
		return nil, fmt.Errorf("design has %d rows but %d responses", rows, len(y))
	}

	if rows < cols {
		return nil, fmt.Errorf("underdetermined system: %d observations for %d terms", rows, cols)
	}

	var qr mat.QR
	qr.Factorize(x)

	b := mat.NewVecDense(rows, y)

	var sol mat.Dense
	if err := qr.SolveTo(&sol, false, b); err != nil {
		return nil, fmt.Errorf("singular design matrix: %w", err)
	}

	coefs := make([]float64, cols)
	for i := range coefs {
		coefs[i] = sol.At(i, 0)
	}

	predicted := make([]float64, rows)
	row := make([]float64, cols)
	for i := range predicted {
		mat.Row(row, i, x)
		predicted[i] = Predict(coefs, row)
	}

	r2, rmse := score(y, predicted)

	return &Result{Coefs: coefs, RSquared: r2, RMSE: rmse}, nil
}

// Predict computes the fitted value for one design row: dot(row, coefs).
func Predict(coefs, row []float64) float64 {
	var sum float64
	for i, c := range coefs {
		sum += c * row[i]
	}

	return sum
}

// score computes R² and RMSE of predictions against observations in a
// single pass.
//
// R² = 1 - SS_res/SS_tot; a constant response (SS_tot == 0) scores 0.
func score(observed, predicted []float64) (r2, rmse float64) {
	n := len(observed)
	if n == 0 {
		return 0, 0
	}

	var mean float64
	for _, v := range observed {
		mean += v
	}
	mean /= float64(n)

	var ssTot, ssRes float64
	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		residual := observed[i] - predicted[i]
		ssRes += residual * residual
	}

	if ssTot != 0 {
		r2 = 1.0 - (ssRes / ssTot)
	}
	rmse = math.Sqrt(ssRes / float64(n))

	return r2, rmse
}
