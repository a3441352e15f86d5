package ffitest

import (
	"unsafe"

	"github.com/powergridmodel/pgcore-go/internal/ffi"
)

// Call records one native invocation observed by the engine.
type Call struct {
	Name string
	Args []any
}

// Attribute describes one attribute of a component schema entry.
type Attribute struct {
	Name   string
	CType  string
	Offset int64
}

// Component describes one component schema entry.
type Component struct {
	Name       string
	Size       int64
	Alignment  int64
	Attributes []Attribute
}

// Dataset describes one dataset schema entry.
type Dataset struct {
	Name       string
	Components []Component
}

// Engine is a scriptable fake calculation engine implementing ffi.Runtime.
// Fields may be mutated between calls to stage error state or schema
// changes; the zero value is a working engine with an empty schema.
type Engine struct {
	Datasets []Dataset

	// Scripted diagnostic state. ClearError (the binding) resets all four.
	ErrorCode    int64
	ErrorMessage string
	Failed       []int64
	BatchErrs    []string

	LittleEndian     bool
	BatchIndependent bool
	CacheTopology    bool

	// OnCalculate, when set, runs inside the calculate binding with the raw
	// host-level arguments.
	OnCalculate func(args []any)

	// FailCreate makes CreateHandle return a nil handle.
	FailCreate bool

	// Calls is the ordered record of every bound invocation.
	Calls []Call
	// Created and Destroyed track session handle lifecycle.
	Created   []uintptr
	Destroyed []uintptr
	// DestroyedResources tracks destroy_options / destroy_model arguments.
	DestroyedResources []uintptr

	nextHandle   uintptr
	nextResource uintptr

	// pinned native views handed out by failed_scenarios / batch_errors
	failedPin []int64
	errBytes  [][]byte
	errPtrs   []uintptr
}

// CreateHandle implements ffi.Runtime.
func (e *Engine) CreateHandle() uintptr {
	if e.FailCreate {
		return 0
	}
	e.nextHandle++
	h := 0x1000 + e.nextHandle
	e.Created = append(e.Created, h)
	return h
}

// DestroyHandle implements ffi.Runtime.
func (e *Engine) DestroyHandle(h uintptr) {
	e.Destroyed = append(e.Destroyed, h)
}

// Bind implements ffi.Runtime. The returned callable records the invocation
// and dispatches on the operation name.
func (e *Engine) Bind(h uintptr, desc ffi.Descriptor) (ffi.Func, error) {
	name := desc.Name
	return func(args ...any) any {
		e.Calls = append(e.Calls, Call{Name: name, Args: args})
		return e.dispatch(name, args)
	}, nil
}

// CallNames returns the operation names recorded so far, in order.
func (e *Engine) CallNames() []string {
	out := make([]string, len(e.Calls))
	for i, c := range e.Calls {
		out[i] = c.Name
	}
	return out
}

func (e *Engine) newResource() uintptr {
	e.nextResource++
	return 0x9000 + e.nextResource
}

func boolIdx(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func (e *Engine) dataset(name string) *Dataset {
	for i := range e.Datasets {
		if e.Datasets[i].Name == name {
			return &e.Datasets[i]
		}
	}
	return nil
}

func (e *Engine) component(dataset, name string) *Component {
	ds := e.dataset(dataset)
	if ds == nil {
		return nil
	}
	for i := range ds.Components {
		if ds.Components[i].Name == name {
			return &ds.Components[i]
		}
	}
	return nil
}

func (e *Engine) attribute(dataset, component, name string) *Attribute {
	c := e.component(dataset, component)
	if c == nil {
		return nil
	}
	for i := range c.Attributes {
		if c.Attributes[i].Name == name {
			return &c.Attributes[i]
		}
	}
	return nil
}

func (e *Engine) dispatch(name string, args []any) any {
	switch name {
	// options and model resources
	case "create_options", "copy_model":
		return e.newResource()
	case "create_model":
		return e.newResource()
	case "destroy_options", "destroy_model":
		e.DestroyedResources = append(e.DestroyedResources, args[0].(uintptr))
		return nil
	case "set_calculation_type", "set_calculation_method", "set_symmetric",
		"set_err_tol", "set_max_iter", "set_threading", "update_model":
		return nil
	case "get_indexer":
		// identity mapping: position i of the output mirrors ids[i]
		n := int(args[2].(int64))
		if n == 0 {
			return nil
		}
		ids := unsafe.Slice((*int32)(unsafe.Pointer(args[3].(uintptr))), n)
		indexer := unsafe.Slice((*int64)(unsafe.Pointer(args[4].(uintptr))), n)
		for i := 0; i < n; i++ {
			indexer[i] = int64(ids[i])
		}
		return nil

	// diagnostics
	case "error_code":
		return e.ErrorCode
	case "error_message":
		return e.ErrorMessage
	case "n_failed_scenarios":
		return int64(len(e.Failed))
	case "failed_scenarios":
		if len(e.Failed) == 0 {
			return uintptr(0)
		}
		e.failedPin = append([]int64(nil), e.Failed...)
		return uintptr(unsafe.Pointer(&e.failedPin[0]))
	case "batch_errors":
		if len(e.BatchErrs) == 0 {
			return uintptr(0)
		}
		e.errBytes = make([][]byte, len(e.BatchErrs))
		e.errPtrs = make([]uintptr, len(e.BatchErrs))
		for i, msg := range e.BatchErrs {
			b := append([]byte(msg), 0)
			e.errBytes[i] = b
			e.errPtrs[i] = uintptr(unsafe.Pointer(&b[0]))
		}
		return uintptr(unsafe.Pointer(&e.errPtrs[0]))
	case "clear_error":
		e.ErrorCode = 0
		e.ErrorMessage = ""
		e.Failed = nil
		e.BatchErrs = nil
		return nil
	case "is_batch_independent":
		return boolIdx(e.BatchIndependent)
	case "is_batch_cache_topology":
		return boolIdx(e.CacheTopology)

	// metadata
	case "meta_n_datasets":
		return int64(len(e.Datasets))
	case "meta_dataset_name":
		i := args[0].(int64)
		if i < 0 || int(i) >= len(e.Datasets) {
			return ""
		}
		return e.Datasets[i].Name
	case "meta_n_components":
		if ds := e.dataset(args[0].(string)); ds != nil {
			return int64(len(ds.Components))
		}
		return int64(0)
	case "meta_component_name":
		ds := e.dataset(args[0].(string))
		i := args[1].(int64)
		if ds == nil || i < 0 || int(i) >= len(ds.Components) {
			return ""
		}
		return ds.Components[i].Name
	case "meta_component_size":
		if c := e.component(args[0].(string), args[1].(string)); c != nil {
			return c.Size
		}
		return int64(0)
	case "meta_component_alignment":
		if c := e.component(args[0].(string), args[1].(string)); c != nil {
			return c.Alignment
		}
		return int64(0)
	case "meta_n_attributes":
		if c := e.component(args[0].(string), args[1].(string)); c != nil {
			return int64(len(c.Attributes))
		}
		return int64(0)
	case "meta_attribute_name":
		c := e.component(args[0].(string), args[1].(string))
		i := args[2].(int64)
		if c == nil || i < 0 || int(i) >= len(c.Attributes) {
			return ""
		}
		return c.Attributes[i].Name
	case "meta_attribute_ctype":
		if a := e.attribute(args[0].(string), args[1].(string), args[2].(string)); a != nil {
			return a.CType
		}
		return ""
	case "meta_attribute_offset":
		if a := e.attribute(args[0].(string), args[1].(string), args[2].(string)); a != nil {
			return a.Offset
		}
		return int64(0)
	case "is_little_endian":
		return boolIdx(e.LittleEndian)

	case "calculate":
		if e.OnCalculate != nil {
			e.OnCalculate(args)
		}
		return nil
	}
	return nil
}
