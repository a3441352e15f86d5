package ffi

import (
	"errors"
	"reflect"
)

var (
	// ErrLoad reports that the engine shared library could not be located or
	// loaded. There is no fallback; sessions cannot be created without it.
	ErrLoad = errors.New("pgcore/internal/ffi: cannot load engine library")

	// ErrUnsupported signals that the current platform has no dynamic loader
	// support in this build.
	ErrUnsupported = errors.New("pgcore/internal/ffi: platform not supported")
)

// SemType is a host-level description of a value's meaning prior to
// wire-level translation. The wire representation required by the engine's
// C ABI is fixed per semantic type; see wireType.
type SemType int

const (
	// Void marks the absence of a return value.
	Void SemType = iota
	// Str is host text, crossing as a NUL-terminated byte sequence.
	Str
	// Idx is the engine's 64-bit signed index type.
	Idx
	// Double is a double-precision float.
	Double
	// Handle is the opaque session resource pointer.
	Handle
	// Options is an opaque calculation options pointer.
	Options
	// Model is an opaque model pointer.
	Model
	// IdxPtr is a pointer to an Idx array.
	IdxPtr
	// IdxDoublePtr is a pointer to an array of IdxPtr.
	IdxDoublePtr
	// IDPtr is a pointer to an array of 32-bit element IDs.
	IDPtr
	// CharDoublePtr is a pointer to an array of NUL-terminated strings.
	CharDoublePtr
	// VoidDoublePtr is a pointer to an array of opaque buffer pointers.
	VoidDoublePtr
)

var (
	strType    = reflect.TypeOf("")
	idxType    = reflect.TypeOf(int64(0))
	doubleType = reflect.TypeOf(float64(0))
	ptrType    = reflect.TypeOf(uintptr(0))
	sizeType   = reflect.TypeOf(uint64(0))
)

// wireType translates a semantic type to the reflect type handed to the
// native call adapter. Text is left to the adapter to encode and decode;
// every pointer category crosses as a raw address. Types absent from the
// switch pass through as addresses unchanged.
func wireType(t SemType) reflect.Type {
	switch t {
	case Str:
		return strType
	case Idx:
		return idxType
	case Double:
		return doubleType
	default:
		return ptrType
	}
}

// sizeRetOps lists the operations whose declared Idx return crosses the wire
// as the unsigned size type. This is a fixed exception for the three layout
// queries, not a general rule.
var sizeRetOps = map[string]bool{
	"meta_component_size":      true,
	"meta_component_alignment": true,
	"meta_attribute_offset":    true,
}
