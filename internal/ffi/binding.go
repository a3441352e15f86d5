package ffi

import (
	"fmt"
	"reflect"
)

// Func is a bound native entry point. Arguments are host-level values in the
// order declared by the descriptor; the session handle is threaded in by the
// binding itself. The result follows the descriptor's return type: int64 for
// Idx, string for Str, float64 for Double, uintptr for pointer categories,
// nil for Void.
type Func func(args ...any) any

// Runtime abstracts the native side of the binding layer. The production
// implementation is the purego-backed Library; tests substitute an
// in-process fake engine.
type Runtime interface {
	// CreateHandle allocates the opaque session resource. Zero means the
	// engine refused.
	CreateHandle() uintptr

	// DestroyHandle releases a handle returned by CreateHandle. Must be
	// called at most once per handle.
	DestroyHandle(h uintptr)

	// Bind produces the callable for one declared operation, configured for
	// the given session handle. The adapter typing is set up exactly once;
	// repeated calls through the returned Func reuse it.
	Bind(h uintptr, desc Descriptor) (Func, error)
}

// funcType builds the native adapter signature for a descriptor. The session
// handle is prepended for everything except destructors, and the size_t
// override applies to the layout queries.
func funcType(desc Descriptor) reflect.Type {
	in := make([]reflect.Type, 0, len(desc.Params)+1)
	if !desc.IsDestroy() {
		in = append(in, ptrType)
	}
	for _, p := range desc.Params {
		in = append(in, wireType(p))
	}
	var out []reflect.Type
	if desc.Ret != Void {
		rt := wireType(desc.Ret)
		if desc.Ret == Idx && sizeRetOps[desc.Name] {
			rt = sizeType
		}
		out = append(out, rt)
	}
	return reflect.FuncOf(in, out, false)
}

// bindAdapter wraps a registered native adapter in a Func that coerces host
// arguments to wire types on every invocation and converts the result back.
func bindAdapter(adapter reflect.Value, h uintptr, desc Descriptor) Func {
	ft := adapter.Type()
	return func(args ...any) any {
		if len(args) != len(desc.Params) {
			panic(fmt.Sprintf("ffi: %s takes %d arguments, got %d", desc.Name, len(desc.Params), len(args)))
		}
		in := make([]reflect.Value, 0, ft.NumIn())
		if !desc.IsDestroy() {
			in = append(in, reflect.ValueOf(h))
		}
		base := len(in)
		for i, a := range args {
			want := ft.In(base + i)
			v := reflect.ValueOf(a)
			if v.Type() != want {
				v = v.Convert(want)
			}
			in = append(in, v)
		}
		out := adapter.Call(in)
		if len(out) == 0 {
			return nil
		}
		r := out[0]
		if r.Kind() == reflect.Uint64 {
			// size_t results surface as the host index type
			return int64(r.Uint())
		}
		return r.Interface()
	}
}
