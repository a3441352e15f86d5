// Package ffi contains all native call machinery for the power grid
// calculation engine. No other package imports unsafe or touches raw
// native memory; the policy is enforced by pkg/pgcore/internalcheck.
//
// # Design Principles
//
//  1. Isolation: every pointer construction and every native call lives in
//     this package. The public API in pkg/pgcore composes only host-level
//     values (int64, float64, string, opaque uintptr handles).
//
//  2. Declarative bindings: the exposed operations are declared once, as a
//     catalog of descriptors (name, parameter types, return type). A single
//     generic routine turns a descriptor into a callable with correct
//     marshaling. Adding a native entry point means adding a descriptor,
//     never hand-written glue.
//
//  3. Caller-owned memory: buffers crossing the boundary stay owned by the
//     caller and must outlive the call. The engine never frees them and this
//     package never copies them.
//
//  4. One library per process: the shared library is dlopen'ed at most once
//     and never unloaded.
//
// The engine library is NOT assumed thread-safe per handle. Callers must
// serialize calls against the same handle.
package ffi
