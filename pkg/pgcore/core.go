package pgcore

import (
	"context"
	"errors"
	"runtime"

	"github.com/powergridmodel/pgcore-go/internal/ffi"
	"github.com/powergridmodel/pgcore-go/pkg/pgcore/logging"
)

// Config controls session construction.
type Config struct {
	// LibraryPath overrides engine library discovery. Empty means the
	// PGM_CORE_LIB environment variable, then the platform file name next to
	// the executable and in a lib/ sibling directory.
	LibraryPath string

	// Logger receives debug events from the binding layer. Nil binds to
	// slog.Default().
	Logger logging.Logger
}

// Core is one session against the native calculation engine. It owns
// exactly one opaque session handle, created by New and destroyed exactly
// once by Close. A Core must not be copied (go vet flags it) and calls
// against the same Core must be serialized by the caller.
type Core struct {
	noCopy noCopy

	rt     ffi.Runtime
	handle uintptr
	funcs  map[string]ffi.Func
	log    logging.Logger
	closed bool
}

// noCopy triggers go vet's copylocks check when a Core is copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

var errUnknownOp = errors.New("pgcore: operation not in catalog")

// New loads the engine shared library (at most once per process), creates
// the session handle, and binds the full operation catalog. The returned
// Core is ready for metadata queries and calculation dispatch.
func New(cfg Config) (*Core, error) {
	lib, err := ffi.Load(cfg.LibraryPath)
	if err != nil {
		return nil, remapError(err)
	}
	return newCore(lib, cfg.Logger)
}

// newCore is shared by New and the tests, which substitute an in-process
// fake runtime for the loaded library.
func newCore(rt ffi.Runtime, log logging.Logger) (*Core, error) {
	if log == nil {
		log = logging.New(nil)
	}
	c := &Core{rt: rt, log: log, funcs: make(map[string]ffi.Func, len(ffi.Catalog))}

	c.handle = rt.CreateHandle()
	if c.handle == 0 {
		return nil, opErr("New", errNilHandle)
	}
	for _, desc := range ffi.Catalog {
		fn, err := rt.Bind(c.handle, desc)
		if err != nil {
			rt.DestroyHandle(c.handle)
			return nil, opErr("New", err)
		}
		c.funcs[desc.Name] = fn
	}

	runtime.SetFinalizer(c, func(c *Core) { _ = c.Close() })
	c.log.Debug(context.Background(), "pgcore: session opened", "operations", len(c.funcs))
	return c, nil
}

// Close destroys the session handle. The native destroy runs at most once;
// a second Close returns ErrClosed, as does any binding call after the
// first Close.
func (c *Core) Close() error {
	if c == nil {
		return nil
	}
	if c.closed {
		return ErrClosed
	}
	runtime.SetFinalizer(c, nil)
	c.rt.DestroyHandle(c.handle)
	c.closed = true
	c.handle = 0
	c.log.Debug(context.Background(), "pgcore: session closed")
	return nil
}

// Clone always fails with ErrNotSupported and performs no native call. The
// session handle is single-owner; duplicating it would alias native state.
// Model handles are the only resources that support copying.
func (c *Core) Clone() (*Core, error) {
	return nil, opErr("Clone", ErrNotSupported)
}

func (c *Core) call(name string, args ...any) (any, error) {
	if c.closed {
		return nil, opErr(name, ErrClosed)
	}
	fn, ok := c.funcs[name]
	if !ok {
		return nil, opErr(name, errUnknownOp)
	}
	return fn(args...), nil
}

func (c *Core) callVoid(name string, args ...any) error {
	_, err := c.call(name, args...)
	return err
}

func (c *Core) callIdx(name string, args ...any) (int64, error) {
	v, err := c.call(name, args...)
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}

func (c *Core) callBool(name string, args ...any) (bool, error) {
	v, err := c.callIdx(name, args...)
	return v != 0, err
}

func (c *Core) callStr(name string, args ...any) (string, error) {
	v, err := c.call(name, args...)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *Core) callPtr(name string, args ...any) (uintptr, error) {
	v, err := c.call(name, args...)
	if err != nil {
		return 0, err
	}
	return v.(uintptr), nil
}
