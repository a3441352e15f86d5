//go:build !(darwin || linux)

package ffi

// Stub loader for platforms without dynamic loading support in this build.
// The package compiles everywhere; Load reports ErrUnsupported when called.

type Library struct{}

func Load(string) (*Library, error) { return nil, ErrUnsupported }

// LibraryFileName returns the platform-specific file name of the engine
// shared object.
func LibraryFileName() string { return "_power_grid_core.dll" }

func (l *Library) CreateHandle() uintptr { return 0 }
func (l *Library) DestroyHandle(uintptr) {}

func (l *Library) Bind(uintptr, Descriptor) (Func, error) { return nil, ErrUnsupported }
