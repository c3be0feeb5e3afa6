package loess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func linePoints(n int) (points [][]float64, y []float64) {
	for i := 0; i < n; i++ {
		x := float64(i)
		points = append(points, []float64{x})
		y = append(y, 2*x+1)
	}

	return points, y
}

func TestFitValidation(t *testing.T) {
	points, y := linePoints(5)

	t.Run("span too small", func(t *testing.T) {
		_, err := Fit(points, y, 0.01, 1)
		require.Error(t, err)
	})

	t.Run("non-positive span", func(t *testing.T) {
		_, err := Fit(points, y, 0, 1)
		require.Error(t, err)
		_, err = Fit(points, y, -0.5, 1)
		require.Error(t, err)
	})

	t.Run("span above one uses full window", func(t *testing.T) {
		m, err := Fit(points, y, 2.0, 1)
		require.NoError(t, err)
		got, err := m.Predict([]float64{2})
		require.NoError(t, err)
		require.InDelta(t, 5.0, got, 1e-8)
	})

	t.Run("bad degree", func(t *testing.T) {
		_, err := Fit(points, y, 0.5, 3)
		require.Error(t, err)
	})

	t.Run("mismatched lengths", func(t *testing.T) {
		_, err := Fit(points, y[:3], 0.5, 1)
		require.Error(t, err)
	})

	t.Run("ragged points", func(t *testing.T) {
		ragged := [][]float64{{1}, {2, 3}, {4}, {5}, {6}}
		_, err := Fit(ragged, y, 0.5, 1)
		require.Error(t, err)
	})
}

func TestPredictRecoversLine(t *testing.T) {
	// a degree-1 smoother reproduces a straight line exactly
	points, y := linePoints(20)
	m, err := Fit(points, y, 0.5, 1)
	require.NoError(t, err)

	for _, x := range []float64{0, 3.5, 10, 19} {
		got, err := m.Predict([]float64{x})
		require.NoError(t, err)
		require.InDelta(t, 2*x+1, got, 1e-8)
	}
}

func TestPredictQuadratic(t *testing.T) {
	// a degree-2 smoother reproduces a parabola exactly
	var points [][]float64
	var y []float64
	for i := 0; i < 20; i++ {
		x := float64(i)
		points = append(points, []float64{x})
		y = append(y, x*x)
	}

	m, err := Fit(points, y, 0.6, 2)
	require.NoError(t, err)

	got, err := m.Predict([]float64{7.5})
	require.NoError(t, err)
	require.InDelta(t, 56.25, got, 1e-6)
}

func TestPredictTwoPredictors(t *testing.T) {
	// plane z = x + 2y
	var points [][]float64
	var y []float64
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			points = append(points, []float64{float64(i), float64(j)})
			y = append(y, float64(i)+2*float64(j))
		}
	}

	m, err := Fit(points, y, 0.5, 1)
	require.NoError(t, err)

	got, err := m.Predict([]float64{2.5, 3.5})
	require.NoError(t, err)
	require.InDelta(t, 9.5, got, 1e-6)
}

func TestPredictCoincidentNeighborhood(t *testing.T) {
	points := [][]float64{{1}, {1}, {1}, {2}, {3}, {4}}
	y := []float64{2, 4, 6, 1, 1, 1}

	m, err := Fit(points, y, 0.5, 1)
	require.NoError(t, err)

	// all three nearest neighbors of x=1 sit exactly at x=1
	got, err := m.Predict([]float64{1})
	require.NoError(t, err)
	require.InDelta(t, 4.0, got, 1e-10)
}

func TestPredictDimMismatch(t *testing.T) {
	points, y := linePoints(10)
	m, err := Fit(points, y, 0.5, 1)
	require.NoError(t, err)

	_, err = m.Predict([]float64{1, 2})
	require.Error(t, err)
}
