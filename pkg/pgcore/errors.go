package pgcore

import (
	"errors"
	"fmt"

	"github.com/powergridmodel/pgcore-go/internal/ffi"
)

var (
	// ErrClosed indicates the session or resource handle was already
	// destroyed.
	ErrClosed = errors.New("pgcore: handle closed")

	// ErrNotSupported indicates an operation the binding layer refuses by
	// contract, such as duplicating the session.
	ErrNotSupported = errors.New("pgcore: not supported")

	// ErrLoad reports that the engine shared library could not be located or
	// loaded. The process cannot perform calculations without it.
	ErrLoad = errors.New("pgcore: cannot load engine library")

	// ErrUnsupportedPlatform signals that this build has no dynamic loader
	// for the current platform.
	ErrUnsupportedPlatform = errors.New("pgcore: platform not supported")

	errNilHandle = errors.New("pgcore: engine returned nil session handle")
)

// Error wraps an underlying error with the operation that failed.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("pgcore.%s: %v", e.Op, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

func opErr(op string, err error) error {
	return &Error{Op: op, Err: err}
}

// remapError converts ffi layer errors to public API errors.
func remapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ffi.ErrLoad):
		return fmt.Errorf("%w: %v", ErrLoad, err)
	case errors.Is(err, ffi.ErrUnsupported):
		return ErrUnsupportedPlatform
	}
	return err
}
