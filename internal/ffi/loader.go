//go:build darwin || linux

package ffi

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
)

// Library is the process-wide handle to the engine shared object. It is
// loaded at most once per process and never unloaded; all sessions share it.
type Library struct {
	handle        uintptr
	createHandle  func() uintptr
	destroyHandle func(uintptr)
}

var (
	loadOnce sync.Once
	loaded   *Library
	loadErr  error
)

// Load opens the engine shared library. The first call resolves and loads
// the library; subsequent calls return the cached result regardless of the
// path argument. An empty path triggers platform resolution.
func Load(path string) (*Library, error) {
	loadOnce.Do(func() {
		loaded, loadErr = open(path)
	})
	return loaded, loadErr
}

func open(path string) (*Library, error) {
	if path == "" {
		path = resolveLibraryPath()
	}
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}
	lib := &Library{handle: h}
	// The handle entry points get explicit argument/return typing up front;
	// everything else is bound per descriptor.
	purego.RegisterLibFunc(&lib.createHandle, h, SymbolPrefix+"create_handle")
	purego.RegisterLibFunc(&lib.destroyHandle, h, SymbolPrefix+"destroy_handle")
	return lib, nil
}

// LibraryFileName returns the platform-specific file name of the engine
// shared object.
func LibraryFileName() string {
	switch runtime.GOOS {
	case "darwin":
		return "_power_grid_core.dylib"
	case "windows":
		return "_power_grid_core.dll"
	default:
		return "_power_grid_core.so"
	}
}

// resolveLibraryPath looks for the engine next to the running binary and in
// a lib/ sibling directory. The PGM_CORE_LIB environment variable overrides
// the search entirely.
func resolveLibraryPath() string {
	if p := os.Getenv("PGM_CORE_LIB"); p != "" {
		return p
	}
	name := LibraryFileName()
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		for _, p := range []string{
			filepath.Join(dir, name),
			filepath.Join(dir, "lib", name),
			filepath.Join(dir, "..", "lib", name),
		} {
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}
	// let the system loader search its default paths
	return name
}

// CreateHandle allocates an opaque engine session resource.
func (l *Library) CreateHandle() uintptr { return l.createHandle() }

// DestroyHandle releases a session resource returned by CreateHandle.
func (l *Library) DestroyHandle(h uintptr) { l.destroyHandle(h) }

// Bind resolves the operation's symbol, registers a native adapter with the
// wire typing derived from the descriptor, and returns the cached callable.
func (l *Library) Bind(h uintptr, desc Descriptor) (Func, error) {
	addr, err := purego.Dlsym(l.handle, desc.Symbol())
	if err != nil {
		return nil, fmt.Errorf("ffi: resolve %s: %w", desc.Symbol(), err)
	}
	fptr := reflect.New(funcType(desc))
	purego.RegisterFunc(fptr.Interface(), addr)
	return bindAdapter(fptr.Elem(), h, desc), nil
}
