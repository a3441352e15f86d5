package pgcore

import "github.com/powergridmodel/pgcore-go/internal/ffi"

// Version is the semantic version of this binding layer, populated at build
// time via ldflags. In development it defaults to v0.0.0-dev.
var Version = "v0.0.0-dev"

// WrapperVersion returns the binding layer version.
func WrapperVersion() string {
	return Version
}

// EngineLibraryName returns the platform-specific file name of the engine
// shared object this layer loads.
func EngineLibraryName() string {
	return ffi.LibraryFileName()
}
