package fitfn

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/fitfn/errs"
	"github.com/arloliu/fitfn/table"
)

func connectorFunc(t *testing.T) *Func {
	t.Helper()

	data, err := table.FromColumns(
		table.Column{Name: "x", Values: []float64{0, 1, 2, 3}},
		table.Column{Name: "y", Values: []float64{0, 10, 20, 30}},
	)
	require.NoError(t, err)

	f, err := Connector("y ~ x", data)
	require.NoError(t, err)

	return f
}

func TestFuncArgValidation(t *testing.T) {
	f := connectorFunc(t)

	t.Run("unknown argument", func(t *testing.T) {
		_, err := f.Eval(Args{"x": 1, "bogus": 2})
		require.ErrorIs(t, err, errs.ErrInvalidFormula)
	})

	t.Run("missing argument", func(t *testing.T) {
		_, err := f.Eval(Args{})
		require.ErrorIs(t, err, errs.ErrInvalidFormula)
	})

	t.Run("wrong name entirely", func(t *testing.T) {
		_, err := f.Eval(Args{"age": 1})
		require.ErrorIs(t, err, errs.ErrInvalidFormula)
	})
}

func TestFuncParamsCopy(t *testing.T) {
	f := connectorFunc(t)

	params := f.Params()
	params[0] = "mutated"
	require.Equal(t, []string{"x"}, f.Params())
}

func TestFuncEvalAll(t *testing.T) {
	f := connectorFunc(t)

	t.Run("matching output shape", func(t *testing.T) {
		got, err := f.EvalAll(map[string][]float64{"x": {0, 0.5, 1, 2.5}})
		require.NoError(t, err)
		require.InDeltaSlice(t, []float64{0, 5, 10, 25}, got, 1e-12)
	})

	t.Run("scalar via one-element slice", func(t *testing.T) {
		got, err := f.EvalAll(map[string][]float64{"x": {1.5}})
		require.NoError(t, err)
		require.InDeltaSlice(t, []float64{15}, got, 1e-12)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := f.EvalAll(map[string][]float64{"x": {1}, "z": {1}})
		require.ErrorIs(t, err, errs.ErrInvalidFormula)
	})

	t.Run("empty values", func(t *testing.T) {
		_, err := f.EvalAll(map[string][]float64{"x": {}})
		require.ErrorIs(t, err, errs.ErrInvalidFormula)
	})
}

func TestFuncEvalAllBroadcast(t *testing.T) {
	var xs, zs, ys []float64
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			xs = append(xs, float64(i))
			zs = append(zs, float64(j))
			ys = append(ys, float64(i)+float64(j))
		}
	}
	data, err := table.FromColumns(
		table.Column{Name: "x", Values: xs},
		table.Column{Name: "z", Values: zs},
		table.Column{Name: "y", Values: ys},
	)
	require.NoError(t, err)

	f, err := Smoother("y ~ x + z", data)
	require.NoError(t, err)

	t.Run("length-1 broadcasts", func(t *testing.T) {
		got, err := f.EvalAll(map[string][]float64{
			"x": {1, 2, 3},
			"z": {2},
		})
		require.NoError(t, err)
		require.Len(t, got, 3)
		require.InDelta(t, 3.0, got[0], 1e-6)
		require.InDelta(t, 5.0, got[2], 1e-6)
	})

	t.Run("length mismatch rejected", func(t *testing.T) {
		_, err := f.EvalAll(map[string][]float64{
			"x": {1, 2, 3},
			"z": {1, 2},
		})
		require.ErrorIs(t, err, errs.ErrInvalidFormula)
	})
}

func TestFuncConcurrentEval(t *testing.T) {
	f := connectorFunc(t)

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func(i int) {
			for j := 0; j < 100; j++ {
				if _, err := f.Eval(Args{"x": float64(i) / 3}); err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}(i)
	}

	for i := 0; i < 8; i++ {
		require.NoError(t, <-done)
	}
}
