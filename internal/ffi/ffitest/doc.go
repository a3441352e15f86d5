// Package ffitest provides an in-process stand-in for the native calculation
// engine, for tests and examples that must run without the real shared
// library.
//
// Engine implements ffi.Runtime. It serves a configurable metadata schema,
// plays back scripted error and batch-failure state, and records every call
// crossing the binding boundary so tests can assert on the exact traffic.
// Because it hands out native-looking pointers (pinned Go memory), it lives
// under internal/ffi, the only tree permitted to import unsafe.
//
// Engine is for testing only: it performs no calculation and applies no
// validation beyond what the scripted state describes.
package ffitest
