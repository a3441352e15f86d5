// Package pgcore exposes the power grid calculation engine to Go through
// its stable C ABI. The package is a 1:1 typed conduit: it marshals
// arguments, threads the opaque session handle, and surfaces engine results
// verbatim. It embeds no knowledge of what a dataset, component or
// attribute means; the engine's compiled-in schema is discovered at runtime
// through the metadata queries.
//
// A Core owns exactly one engine session handle, created by New and
// destroyed exactly once by Close. Cores are not copyable; Model handles
// are the only resources supporting duplication. Calls against the same
// handle must be externally serialized; distinct Cores are independent.
//
// Engine outcomes flow through two explicit channels rather than Go errors:
// ErrorCode/ErrorMessage for the last fatal condition, and
// NFailedScenarios/FailedScenarios/BatchErrors for per-scenario failures of
// a batch calculation. Neither channel is cleared implicitly; use
// ClearError. Go errors from this package report only binding-layer
// conditions such as a closed handle or an unloadable library.
package pgcore
