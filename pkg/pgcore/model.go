package pgcore

import (
	"runtime"

	"github.com/powergridmodel/pgcore-go/internal/ffi"
)

// ComponentBuffer names one component and a caller-owned packed element
// buffer for it. Data must hold Count elements laid out per the engine's
// metadata (MetaComponentSize bytes each, attributes at their reported
// offsets). The buffer stays owned by the caller and must outlive every
// call it is passed to.
type ComponentBuffer struct {
	Name  string
	Count int64
	Data  []byte
}

// Model is a loaded calculation model. Unlike the session handle, a Model
// supports explicit duplication via Copy.
type Model struct {
	core   *Core
	ptr    uintptr
	closed bool
}

// NewModel builds a model from raw input component buffers. Buffer layout
// is a caller contract: a malformed or missing buffer has engine-defined
// behavior and is not validated here.
func (c *Core) NewModel(systemFrequency float64, components []ComponentBuffer) (*Model, error) {
	names, counts, data := splitComponentBuffers(components)
	ptr, err := c.callPtr("create_model",
		systemFrequency,
		int64(len(components)),
		names.Ptr(),
		ffi.Int64Ptr(counts),
		data.Ptr(),
	)
	runtime.KeepAlive(names)
	runtime.KeepAlive(counts)
	runtime.KeepAlive(data)
	runtime.KeepAlive(components)
	if err != nil {
		return nil, err
	}
	m := &Model{core: c, ptr: ptr}
	runtime.SetFinalizer(m, func(m *Model) { _ = m.Close() })
	return m, nil
}

func splitComponentBuffers(components []ComponentBuffer) (*ffi.StringArray, []int64, *ffi.PointerArray) {
	names := make([]string, len(components))
	counts := make([]int64, len(components))
	ptrs := make([]uintptr, len(components))
	for i, comp := range components {
		names[i] = comp.Name
		counts[i] = comp.Count
		ptrs[i] = ffi.BytesPtr(comp.Data)
	}
	return ffi.NewStringArray(names), counts, ffi.NewPointerArray(ptrs)
}

// Update applies update buffers to the model in place.
func (m *Model) Update(components []ComponentBuffer) error {
	if m.closed {
		return opErr("update_model", ErrClosed)
	}
	names, counts, data := splitComponentBuffers(components)
	err := m.core.callVoid("update_model",
		m.ptr,
		int64(len(components)),
		names.Ptr(),
		ffi.Int64Ptr(counts),
		data.Ptr(),
	)
	runtime.KeepAlive(names)
	runtime.KeepAlive(counts)
	runtime.KeepAlive(data)
	runtime.KeepAlive(components)
	return err
}

// Copy duplicates the model. Models are the only resources that support
// duplication; the copy has its own lifetime and must be closed
// independently.
func (m *Model) Copy() (*Model, error) {
	if m.closed {
		return nil, opErr("copy_model", ErrClosed)
	}
	ptr, err := m.core.callPtr("copy_model", m.ptr)
	if err != nil {
		return nil, err
	}
	dup := &Model{core: m.core, ptr: ptr}
	runtime.SetFinalizer(dup, func(m *Model) { _ = m.Close() })
	return dup, nil
}

// GetIndexer translates component element IDs into positions within the
// model's buffers for that component.
func (m *Model) GetIndexer(component string, ids []int32) ([]int64, error) {
	if m.closed {
		return nil, opErr("get_indexer", ErrClosed)
	}
	indexer := make([]int64, len(ids))
	err := m.core.callVoid("get_indexer",
		m.ptr,
		component,
		int64(len(ids)),
		ffi.Int32Ptr(ids),
		ffi.Int64Ptr(indexer),
	)
	runtime.KeepAlive(ids)
	if err != nil {
		return nil, err
	}
	return indexer, nil
}

// Close destroys the model. The native destroy runs at most once; a second
// Close returns ErrClosed.
func (m *Model) Close() error {
	if m == nil {
		return nil
	}
	if m.closed {
		return ErrClosed
	}
	runtime.SetFinalizer(m, nil)
	if err := m.core.callVoid("destroy_model", m.ptr); err != nil {
		return err
	}
	m.closed = true
	m.ptr = 0
	return nil
}
