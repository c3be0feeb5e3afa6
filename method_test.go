package fitfn

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/fitfn/errs"
)

func TestMethodString(t *testing.T) {
	require.Equal(t, "cubic", MethodCubic.String())
	require.Equal(t, "monotone", MethodMonotone.String())
	require.Equal(t, "linear", MethodLinear.String())
	require.Equal(t, "unknown", Method(99).String())
}

func TestMethodFromString(t *testing.T) {
	m, err := MethodFromString("Akima")
	require.NoError(t, err)
	require.Equal(t, MethodAkima, m)

	_, err = MethodFromString("quartic")
	require.ErrorIs(t, err, errs.ErrUnknownMethod)
}

func TestMethodRoundTrip(t *testing.T) {
	for m := range methodNames {
		got, err := MethodFromString(m.String())
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
}

func TestWithMethodRejectsInvalid(t *testing.T) {
	data := splineData(t)

	_, err := Spliner("y ~ x", data, WithMethod(Method(42)))
	require.Error(t, err)
}
