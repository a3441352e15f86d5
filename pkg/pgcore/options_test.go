package pgcore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/powergridmodel/pgcore-go/internal/ffi/ffitest"
)

func TestOptionsSettersReachEngine(t *testing.T) {
	e := &ffitest.Engine{}
	c := newTestCore(t, e)
	defer c.Close()

	o, err := c.NewOptions()
	require.NoError(t, err)
	defer o.Close()
	require.NotZero(t, o.ptr)

	require.NoError(t, o.SetCalculationType(StateEstimation))
	require.NoError(t, o.SetCalculationMethod(NewtonRaphson))
	require.NoError(t, o.SetSymmetric(true))
	require.NoError(t, o.SetErrTol(1e-8))
	require.NoError(t, o.SetMaxIter(20))
	require.NoError(t, o.SetThreading(4))

	require.Equal(t, []string{
		"create_options",
		"set_calculation_type",
		"set_calculation_method",
		"set_symmetric",
		"set_err_tol",
		"set_max_iter",
		"set_threading",
	}, e.CallNames())

	// every setter targets the options resource and passes the raw value
	for _, call := range e.Calls[1:] {
		require.Equal(t, o.ptr, call.Args[0], call.Name)
	}
	require.Equal(t, int64(StateEstimation), e.Calls[1].Args[1])
	require.Equal(t, int64(NewtonRaphson), e.Calls[2].Args[1])
	require.Equal(t, int64(1), e.Calls[3].Args[1])
	require.Equal(t, 1e-8, e.Calls[4].Args[1])
	require.Equal(t, int64(20), e.Calls[5].Args[1])
	require.Equal(t, int64(4), e.Calls[6].Args[1])
}

func TestOptionsCloseOnce(t *testing.T) {
	e := &ffitest.Engine{}
	c := newTestCore(t, e)
	defer c.Close()

	o, err := c.NewOptions()
	require.NoError(t, err)
	ptr := o.ptr

	require.NoError(t, o.Close())
	require.Equal(t, []uintptr{ptr}, e.DestroyedResources)

	err = o.Close()
	require.ErrorIs(t, err, ErrClosed)
	require.Len(t, e.DestroyedResources, 1)

	err = o.SetMaxIter(5)
	require.ErrorIs(t, err, ErrClosed)
	require.NotContains(t, e.CallNames(), "set_max_iter")
}

func TestSetSymmetricFalse(t *testing.T) {
	e := &ffitest.Engine{}
	c := newTestCore(t, e)
	defer c.Close()

	o, err := c.NewOptions()
	require.NoError(t, err)
	defer o.Close()

	require.NoError(t, o.SetSymmetric(false))
	last := e.Calls[len(e.Calls)-1]
	require.Equal(t, "set_symmetric", last.Name)
	require.Equal(t, int64(0), last.Args[1])
}
