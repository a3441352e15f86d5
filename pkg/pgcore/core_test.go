package pgcore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/powergridmodel/pgcore-go/internal/ffi"
	"github.com/powergridmodel/pgcore-go/internal/ffi/ffitest"
)

func newTestCore(t *testing.T, e *ffitest.Engine) *Core {
	t.Helper()
	c, err := newCore(e, nil)
	require.NoError(t, err)
	return c
}

func TestNewCoreCreatesOneHandle(t *testing.T) {
	e := &ffitest.Engine{}
	c := newTestCore(t, e)
	defer c.Close()

	require.Len(t, e.Created, 1)
	require.NotZero(t, e.Created[0])
	require.Equal(t, e.Created[0], c.handle)
	require.Len(t, c.funcs, len(ffi.Catalog))
}

func TestNewCoreNilHandle(t *testing.T) {
	e := &ffitest.Engine{FailCreate: true}
	_, err := newCore(e, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, errNilHandle)
	require.Empty(t, e.Destroyed)
}

func TestCloseDestroysHandleOnce(t *testing.T) {
	e := &ffitest.Engine{}
	c := newTestCore(t, e)

	require.NoError(t, c.Close())
	require.Equal(t, e.Created, e.Destroyed)

	err := c.Close()
	require.ErrorIs(t, err, ErrClosed)
	require.Len(t, e.Destroyed, 1)
}

func TestCallsAfterCloseFail(t *testing.T) {
	e := &ffitest.Engine{}
	c := newTestCore(t, e)
	require.NoError(t, c.Close())

	recorded := len(e.Calls)

	_, err := c.ErrorCode()
	require.ErrorIs(t, err, ErrClosed)
	_, err = c.MetaNDatasets()
	require.ErrorIs(t, err, ErrClosed)
	err = c.ClearError()
	require.ErrorIs(t, err, ErrClosed)

	require.Len(t, e.Calls, recorded, "closed session must not reach the engine")
}

func TestCloneNotSupported(t *testing.T) {
	e := &ffitest.Engine{}
	c := newTestCore(t, e)
	defer c.Close()

	recorded := len(e.Calls)
	dup, err := c.Clone()
	require.Nil(t, dup)
	require.ErrorIs(t, err, ErrNotSupported)

	var opErr *Error
	require.True(t, errors.As(err, &opErr))
	require.Equal(t, "Clone", opErr.Op)
	require.Len(t, e.Calls, recorded, "Clone must not reach the engine")
}

func TestNilCoreCloseIsNoop(t *testing.T) {
	var c *Core
	require.NoError(t, c.Close())
}
