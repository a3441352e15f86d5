package pgcore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/powergridmodel/pgcore-go/internal/ffi"
	"github.com/powergridmodel/pgcore-go/internal/ffi/ffitest"
)

func TestCalculateMarshalsBatchArguments(t *testing.T) {
	e := &ffitest.Engine{}
	c := newTestCore(t, e)
	defer c.Close()

	m, err := c.NewModel(50.0, testInputBuffers())
	require.NoError(t, err)
	defer m.Close()
	o, err := c.NewOptions()
	require.NoError(t, err)
	defer o.Close()

	output := OutputSpec{Components: []ComponentBuffer{
		{Name: "node", Count: 6, Data: make([]byte, 2*3*32)},
	}}
	indptr := []int64{0, 1, 3}
	update := UpdateSpec{
		Scenarios: 2,
		Components: []UpdateComponent{
			{Name: "sym_load", ElementsPerScenario: 1, Data: make([]byte, 2*24)},
			{Name: "line", Indptr: indptr, Data: make([]byte, 3*64)},
		},
	}

	var seen []any
	e.OnCalculate = func(args []any) { seen = append([]any(nil), args...) }

	require.NoError(t, c.Calculate(m, o, output, update))
	require.Len(t, seen, 11)

	require.Equal(t, m.ptr, seen[0])
	require.Equal(t, o.ptr, seen[1])

	require.Equal(t, int64(1), seen[2])
	require.Equal(t, []string{"node"}, ffi.GoStrings(seen[3].(uintptr), 1))
	outPtrs := ffi.GoUintptrs(seen[4].(uintptr), 1)
	require.Equal(t, ffi.BytesPtr(output.Components[0].Data), outPtrs[0])

	require.Equal(t, int64(2), seen[5])
	require.Equal(t, int64(2), seen[6])
	require.Equal(t, []string{"sym_load", "line"}, ffi.GoStrings(seen[7].(uintptr), 2))

	// fixed-count component carries its per-scenario size, the sparse one
	// carries the -1 marker with its indptr slot populated
	require.Equal(t, []int64{1, -1}, ffi.GoInt64s(seen[8].(uintptr), 2))
	indptrPtrs := ffi.GoUintptrs(seen[9].(uintptr), 2)
	require.Zero(t, indptrPtrs[0])
	require.Equal(t, []int64{0, 1, 3}, ffi.GoInt64s(indptrPtrs[1], 3))

	dataPtrs := ffi.GoUintptrs(seen[10].(uintptr), 2)
	require.Equal(t, ffi.BytesPtr(update.Components[0].Data), dataPtrs[0])
	require.Equal(t, ffi.BytesPtr(update.Components[1].Data), dataPtrs[1])
}

func TestCalculateWithoutUpdates(t *testing.T) {
	e := &ffitest.Engine{}
	c := newTestCore(t, e)
	defer c.Close()

	m, err := c.NewModel(50.0, testInputBuffers())
	require.NoError(t, err)
	defer m.Close()
	o, err := c.NewOptions()
	require.NoError(t, err)
	defer o.Close()

	output := OutputSpec{Components: []ComponentBuffer{
		{Name: "node", Count: 3, Data: make([]byte, 3*32)},
	}}

	var seen []any
	e.OnCalculate = func(args []any) { seen = append([]any(nil), args...) }

	require.NoError(t, c.Calculate(m, o, output, UpdateSpec{Scenarios: 1}))
	require.Equal(t, int64(1), seen[5])
	require.Equal(t, int64(0), seen[6])
	require.Equal(t, uintptr(0), seen[7], "empty update name array")
	require.Equal(t, uintptr(0), seen[10], "empty update data array")
}

func TestCalculateRejectsClosedResources(t *testing.T) {
	e := &ffitest.Engine{}
	c := newTestCore(t, e)
	defer c.Close()

	m, err := c.NewModel(50.0, testInputBuffers())
	require.NoError(t, err)
	o, err := c.NewOptions()
	require.NoError(t, err)

	recorded := len(e.Calls)

	err = c.Calculate(nil, o, OutputSpec{}, UpdateSpec{})
	require.ErrorIs(t, err, ErrClosed)
	err = c.Calculate(m, nil, OutputSpec{}, UpdateSpec{})
	require.ErrorIs(t, err, ErrClosed)

	require.NoError(t, m.Close())
	err = c.Calculate(m, o, OutputSpec{}, UpdateSpec{})
	require.ErrorIs(t, err, ErrClosed)

	m2, err := c.NewModel(50.0, nil)
	require.NoError(t, err)
	defer m2.Close()
	require.NoError(t, o.Close())
	err = c.Calculate(m2, o, OutputSpec{}, UpdateSpec{})
	require.ErrorIs(t, err, ErrClosed)

	require.NotContains(t, e.CallNames()[recorded:], "calculate")
}

func TestCalculateSurfacesScenarioFailures(t *testing.T) {
	e := &ffitest.Engine{}
	c := newTestCore(t, e)
	defer c.Close()

	m, err := c.NewModel(50.0, testInputBuffers())
	require.NoError(t, err)
	defer m.Close()
	o, err := c.NewOptions()
	require.NoError(t, err)
	defer o.Close()

	// partial failure: the call succeeds while individual scenarios fail
	e.OnCalculate = func([]any) {
		e.Failed = []int64{0, 2}
		e.BatchErrs = []string{"no convergence", "load mismatch"}
	}

	output := OutputSpec{Components: []ComponentBuffer{
		{Name: "node", Count: 9, Data: make([]byte, 3*3*32)},
	}}
	require.NoError(t, c.Calculate(m, o, output, UpdateSpec{Scenarios: 3}))

	failed, err := c.FailedScenarios()
	require.NoError(t, err)
	require.Equal(t, []int64{0, 2}, failed)

	msgs, err := c.BatchErrors()
	require.NoError(t, err)
	require.Equal(t, []string{"no convergence", "load mismatch"}, msgs)
}
