package loess

import (
	"fmt"
	"math"
	"sort"

	"github.com/arloliu/fitfn/internal/lsq"
	"gonum.org/v1/gonum/mat"
)

// Model is a fitted local-regression smoother. Fitting captures the
// data and neighborhood geometry; each Predict performs one weighted
// polynomial solve over the query point's neighborhood.
//
// A Model is immutable after Fit and safe for concurrent Predict calls.
type Model struct {
	points [][]float64
	y      []float64
	scale  []float64
	window int
	degree int
}

// Fit builds a local-regression model.
//
// Parameters:
//   - points: n observations of d predictors each (all rows length d)
//   - y: n observed responses
//   - span: fraction of the data in each local neighborhood; spans above
//     1 use the whole dataset per neighborhood
//   - degree: local polynomial degree, 1 (linear) or 2 (quadratic)
//
// Returns:
//   - *Model: the fitted smoother
//   - error: if the inputs are inconsistent, or the span selects fewer
//     neighbors than the local polynomial basis needs
func Fit(points [][]float64, y []float64, span float64, degree int) (*Model, error) {
	n := len(points)
	if n == 0 {
		return nil, fmt.Errorf("no data points")
	}

	if n != len(y) {
		return nil, fmt.Errorf("mismatched data lengths: %d points vs %d responses", n, len(y))
	}

	if span <= 0 {
		return nil, fmt.Errorf("span %v must be positive", span)
	}

	if degree != 1 && degree != 2 {
		return nil, fmt.Errorf("degree must be 1 or 2, got %d", degree)
	}

	dims := len(points[0])
	if dims == 0 {
		return nil, fmt.Errorf("no predictors")
	}
	for i, p := range points {
		if len(p) != dims {
			return nil, fmt.Errorf("point %d has %d predictors, expected %d", i, len(p), dims)
		}
	}

	window := int(math.Ceil(span * float64(n)))
	if window > n {
		window = n
	}

	basis := basisSize(dims, degree)
	if window < basis {
		return nil, fmt.Errorf("span %v selects %d neighbors but a degree-%d fit in %d predictors needs at least %d",
			span, window, degree, dims, basis)
	}

	return &Model{
		points: points,
		y:      y,
		scale:  dimScales(points, dims),
		window: window,
		degree: degree,
	}, nil
}

// Predict evaluates the smoother at one query point.
//
// The neighborhood is the window-nearest observations in scaled
// Euclidean distance, weighted by the tricube kernel, fitted with a
// weighted polynomial centered on the query point. The fitted intercept
// is the prediction.
func (m *Model) Predict(point []float64) (float64, error) {
	dims := len(m.scale)
	if len(point) != dims {
		return 0, fmt.Errorf("query has %d predictors, model has %d", len(point), dims)
	}

	n := len(m.points)
	dists := make([]float64, n)
	order := make([]int, n)
	for i, p := range m.points {
		dists[i] = m.distance(p, point)
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return dists[order[a]] < dists[order[b]] })

	neighbors := order[:m.window]
	dmax := dists[neighbors[m.window-1]]

	if dmax == 0 {
		// every neighbor coincides with the query point
		var sum float64
		for _, idx := range neighbors {
			sum += m.y[idx]
		}

		return sum / float64(m.window), nil
	}

	weights := make([]float64, m.window)
	positive := 0
	for i, idx := range neighbors {
		w := tricube(dists[idx] / dmax)
		if w > 0 {
			positive++
		}
		weights[i] = w
	}

	basis := basisSize(dims, m.degree)
	if positive < basis {
		// boundary windows can zero out too many points; fall back to
		// uniform weights over the window
		for i := range weights {
			weights[i] = 1
		}
	}

	design := mat.NewDense(m.window, basis, nil)
	response := make([]float64, m.window)
	z := make([]float64, dims)
	for i, idx := range neighbors {
		for d := range z {
			z[d] = (m.points[idx][d] - point[d]) / m.scale[d]
		}
		sw := math.Sqrt(weights[i])
		design.SetRow(i, scaleRow(basisRow(z, m.degree), sw))
		response[i] = sw * m.y[idx]
	}

	res, err := lsq.Solve(design, response)
	if err != nil {
		return 0, fmt.Errorf("local fit failed: %w", err)
	}

	// the design is centered on the query, so the intercept is the value
	return res.Coefs[0], nil
}

// distance computes scaled Euclidean distance between two points.
func (m *Model) distance(a, b []float64) float64 {
	var sum float64
	for d := range m.scale {
		diff := (a[d] - b[d]) / m.scale[d]
		sum += diff * diff
	}

	return math.Sqrt(sum)
}

// tricube is the standard loess kernel: (1 - u³)³ on [0, 1), 0 beyond.
func tricube(u float64) float64 {
	if u >= 1 {
		return 0
	}
	c := 1 - u*u*u

	return c * c * c
}

// basisSize returns the local polynomial basis size: intercept plus
// linear terms, plus squares and pairwise products for degree 2.
func basisSize(dims, degree int) int {
	size := 1 + dims
	if degree == 2 {
		size += dims * (dims + 1) / 2
	}

	return size
}

// basisRow expands a centered, scaled point into the polynomial basis.
func basisRow(z []float64, degree int) []float64 {
	row := make([]float64, 0, basisSize(len(z), degree))
	row = append(row, 1)
	row = append(row, z...)
	if degree == 2 {
		for i := range z {
			for j := i; j < len(z); j++ {
				row = append(row, z[i]*z[j])
			}
		}
	}

	return row
}

func scaleRow(row []float64, s float64) []float64 {
	for i := range row {
		row[i] *= s
	}

	return row
}

// dimScales returns the per-dimension range of the data, used to make
// distances comparable across predictors. Degenerate dimensions scale
// by 1.
func dimScales(points [][]float64, dims int) []float64 {
	scale := make([]float64, dims)
	for d := range scale {
		lo, hi := points[0][d], points[0][d]
		for _, p := range points {
			lo = math.Min(lo, p[d])
			hi = math.Max(hi, p[d])
		}

		scale[d] = hi - lo
		if scale[d] == 0 {
			scale[d] = 1
		}
	}

	return scale
}
