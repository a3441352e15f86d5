package ffi

import "strings"

// SymbolPrefix is the common prefix of every native entry point exported by
// the engine.
const SymbolPrefix = "PGM_"

// Descriptor declares the contract of one native entry point: the operation
// name, its ordered parameter semantic types and its return semantic type.
// Descriptors are immutable after construction and consumed exactly once,
// when the session binds its catalog.
type Descriptor struct {
	Name   string
	Params []SemType
	Ret    SemType
}

// Symbol returns the native symbol name for the operation.
func (d Descriptor) Symbol() string { return SymbolPrefix + d.Name }

// IsDestroy reports whether the operation plays a destructor role.
// Destructors operate on the resource being destroyed, which they receive as
// an explicit argument; the session handle is omitted entirely.
func (d Descriptor) IsDestroy() bool { return strings.Contains(d.Name, "destroy") }

// Catalog lists every operation exposed through a session, in binding order.
// Handle creation and destruction are owned by the loader and deliberately
// absent. Every operation below implicitly takes the session handle as its
// first native argument, except destructors.
var Catalog = []Descriptor{
	// options
	{Name: "create_options", Ret: Options},
	{Name: "destroy_options", Params: []SemType{Options}},
	{Name: "set_calculation_type", Params: []SemType{Options, Idx}},
	{Name: "set_calculation_method", Params: []SemType{Options, Idx}},
	{Name: "set_symmetric", Params: []SemType{Options, Idx}},
	{Name: "set_err_tol", Params: []SemType{Options, Double}},
	{Name: "set_max_iter", Params: []SemType{Options, Idx}},
	{Name: "set_threading", Params: []SemType{Options, Idx}},

	// model
	{Name: "create_model", Params: []SemType{Double, Idx, CharDoublePtr, IdxPtr, VoidDoublePtr}, Ret: Model},
	{Name: "update_model", Params: []SemType{Model, Idx, CharDoublePtr, IdxPtr, VoidDoublePtr}},
	{Name: "copy_model", Params: []SemType{Model}, Ret: Model},
	{Name: "get_indexer", Params: []SemType{Model, Str, Idx, IDPtr, IdxPtr}},
	{Name: "destroy_model", Params: []SemType{Model}},

	// diagnostics
	{Name: "error_code", Ret: Idx},
	{Name: "error_message", Ret: Str},
	{Name: "n_failed_scenarios", Ret: Idx},
	{Name: "failed_scenarios", Ret: IdxPtr},
	{Name: "batch_errors", Ret: CharDoublePtr},
	{Name: "clear_error"},
	{Name: "is_batch_independent", Ret: Idx},
	{Name: "is_batch_cache_topology", Ret: Idx},

	// metadata
	{Name: "meta_n_datasets", Ret: Idx},
	{Name: "meta_dataset_name", Params: []SemType{Idx}, Ret: Str},
	{Name: "meta_n_components", Params: []SemType{Str}, Ret: Idx},
	{Name: "meta_component_name", Params: []SemType{Str, Idx}, Ret: Str},
	{Name: "meta_component_alignment", Params: []SemType{Str, Str}, Ret: Idx},
	{Name: "meta_component_size", Params: []SemType{Str, Str}, Ret: Idx},
	{Name: "meta_n_attributes", Params: []SemType{Str, Str}, Ret: Idx},
	{Name: "meta_attribute_name", Params: []SemType{Str, Str, Idx}, Ret: Str},
	{Name: "meta_attribute_ctype", Params: []SemType{Str, Str, Str}, Ret: Str},
	{Name: "meta_attribute_offset", Params: []SemType{Str, Str, Str}, Ret: Idx},
	{Name: "is_little_endian", Ret: Idx},

	// calculation: output descriptors followed by the batch update protocol
	// (scenario count, component count, per-component element counts or
	// indptr spans, and one data buffer per component through void**).
	{Name: "calculate", Params: []SemType{
		Model, Options,
		Idx, CharDoublePtr, VoidDoublePtr,
		Idx, Idx, CharDoublePtr, IdxPtr, IdxDoublePtr, VoidDoublePtr,
	}},
}
