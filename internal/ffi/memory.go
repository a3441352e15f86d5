package ffi

import "unsafe"

// The holders below keep caller-owned buffers reachable while their raw
// addresses cross the boundary. The native side never takes ownership; the
// caller must keep the holder alive (runtime.KeepAlive) until the native
// call returns.

// StringArray is a NUL-terminated text array passed as char**.
type StringArray struct {
	backing [][]byte
	ptrs    []uintptr
}

// NewStringArray encodes each value to a NUL-terminated byte sequence and
// builds the pointer array over them.
func NewStringArray(values []string) *StringArray {
	a := &StringArray{
		backing: make([][]byte, len(values)),
		ptrs:    make([]uintptr, len(values)),
	}
	for i, s := range values {
		b := append([]byte(s), 0)
		a.backing[i] = b
		a.ptrs[i] = uintptr(unsafe.Pointer(&b[0]))
	}
	return a
}

// Ptr returns the char** address, or 0 for an empty array.
func (a *StringArray) Ptr() uintptr {
	if len(a.ptrs) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&a.ptrs[0]))
}

// PointerArray is a pointer-to-pointer indirection (void** or Idx**) over a
// variable number of per-component buffers.
type PointerArray struct {
	ptrs []uintptr
}

// NewPointerArray wraps already-computed buffer addresses.
func NewPointerArray(ptrs []uintptr) *PointerArray { return &PointerArray{ptrs: ptrs} }

// Ptr returns the array address, or 0 when empty.
func (a *PointerArray) Ptr() uintptr {
	if len(a.ptrs) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&a.ptrs[0]))
}

// BytesPtr returns the address of the first byte of a caller-owned buffer.
func BytesPtr(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0]))
}

// Int64Ptr returns the address of the first element of an index buffer.
func Int64Ptr(s []int64) uintptr {
	if len(s) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&s[0]))
}

// Int32Ptr returns the address of the first element of an ID buffer.
func Int32Ptr(s []int32) uintptr {
	if len(s) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&s[0]))
}

// GoString decodes a NUL-terminated native string. A zero pointer decodes to
// the empty string.
func GoString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	var n int
	for *(*byte)(unsafe.Pointer(ptr + uintptr(n))) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), n))
}

// GoInt64s copies n indices out of a native Idx array.
func GoInt64s(ptr uintptr, n int) []int64 {
	if ptr == 0 || n <= 0 {
		return nil
	}
	src := unsafe.Slice((*int64)(unsafe.Pointer(ptr)), n)
	out := make([]int64, n)
	copy(out, src)
	return out
}

// GoUintptrs copies n entries of a native pointer array.
func GoUintptrs(ptr uintptr, n int) []uintptr {
	if ptr == 0 || n <= 0 {
		return nil
	}
	src := unsafe.Slice((*uintptr)(unsafe.Pointer(ptr)), n)
	out := make([]uintptr, n)
	copy(out, src)
	return out
}

// GoStrings decodes n entries of a native char** array.
func GoStrings(ptr uintptr, n int) []string {
	if ptr == 0 || n <= 0 {
		return nil
	}
	arr := unsafe.Slice((*uintptr)(unsafe.Pointer(ptr)), n)
	out := make([]string, n)
	for i, p := range arr {
		out[i] = GoString(p)
	}
	return out
}
