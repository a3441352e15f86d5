package pgcore

import (
	"runtime"

	"github.com/powergridmodel/pgcore-go/internal/ffi"
)

// OutputSpec names the output components to populate during a batch
// calculation, with one caller-owned destination buffer per component. Each
// buffer must hold scenario-count times elements-per-scenario elements of
// the component's native size.
type OutputSpec struct {
	Components []ComponentBuffer
}

// UpdateComponent describes one component's update data across a batch.
// Exactly one of ElementsPerScenario or Indptr describes the per-scenario
// spans: a fixed element count per scenario, or variable-length spans where
// scenario s covers Data elements [Indptr[s], Indptr[s+1]). Indptr, when
// set, must have scenario-count+1 entries.
type UpdateComponent struct {
	Name                string
	ElementsPerScenario int64
	Indptr              []int64
	Data                []byte
}

// UpdateSpec describes a batch of update scenarios, possibly sparse: a
// component may appear in only some scenarios via its indptr spans.
type UpdateSpec struct {
	Scenarios  int64
	Components []UpdateComponent
}

// Calculate runs the batch calculation synchronously: it returns when every
// scenario has completed or a fatal condition aborted the whole batch.
// Per-scenario outcomes are reported through NFailedScenarios,
// FailedScenarios and BatchErrors; fatal conditions through
// ErrorCode/ErrorMessage. Success of the call does not imply success of
// every scenario.
//
// All buffers are caller-owned and must outlive the call; the engine never
// takes ownership. Buffer layout is a caller contract: an out-of-bounds,
// malformed or missing buffer has engine-defined behavior and is not
// validated at this layer.
func (c *Core) Calculate(model *Model, opts *Options, output OutputSpec, update UpdateSpec) error {
	if model == nil || model.closed {
		return opErr("calculate", ErrClosed)
	}
	if opts == nil || opts.closed {
		return opErr("calculate", ErrClosed)
	}

	outNames, _, outData := splitComponentBuffers(output.Components)

	upNames := make([]string, len(update.Components))
	counts := make([]int64, len(update.Components))
	indptrPtrs := make([]uintptr, len(update.Components))
	dataPtrs := make([]uintptr, len(update.Components))
	for i, comp := range update.Components {
		upNames[i] = comp.Name
		if comp.Indptr != nil {
			// variable spans: the element count slot carries the -1 marker
			// and the indptr describes each scenario's range
			counts[i] = -1
			indptrPtrs[i] = ffi.Int64Ptr(comp.Indptr)
		} else {
			counts[i] = comp.ElementsPerScenario
		}
		dataPtrs[i] = ffi.BytesPtr(comp.Data)
	}
	upNameArr := ffi.NewStringArray(upNames)
	indptrArr := ffi.NewPointerArray(indptrPtrs)
	upDataArr := ffi.NewPointerArray(dataPtrs)

	err := c.callVoid("calculate",
		model.ptr,
		opts.ptr,
		int64(len(output.Components)),
		outNames.Ptr(),
		outData.Ptr(),
		update.Scenarios,
		int64(len(update.Components)),
		upNameArr.Ptr(),
		ffi.Int64Ptr(counts),
		indptrArr.Ptr(),
		upDataArr.Ptr(),
	)
	runtime.KeepAlive(outNames)
	runtime.KeepAlive(outData)
	runtime.KeepAlive(output)
	runtime.KeepAlive(upNameArr)
	runtime.KeepAlive(counts)
	runtime.KeepAlive(indptrArr)
	runtime.KeepAlive(upDataArr)
	runtime.KeepAlive(update)
	return err
}
