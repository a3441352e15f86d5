package pgcore

import "runtime"

// CalculationType selects the computation the engine performs. The values
// match the engine ABI.
type CalculationType int64

const (
	PowerFlow       CalculationType = 0
	StateEstimation CalculationType = 1
)

// CalculationMethod selects the numerical method. The values match the
// engine ABI.
type CalculationMethod int64

const (
	Linear          CalculationMethod = 0
	NewtonRaphson   CalculationMethod = 1
	IterativeLinear CalculationMethod = 2
)

// Options is an opaque engine resource describing calculation
// configuration. It is created and destroyed independently of models and
// may be reused across multiple Calculate calls. Options is the only way to
// configure a calculation; Calculate takes no configuration parameters.
type Options struct {
	core   *Core
	ptr    uintptr
	closed bool
}

// NewOptions creates a calculation options resource with engine defaults.
func (c *Core) NewOptions() (*Options, error) {
	ptr, err := c.callPtr("create_options")
	if err != nil {
		return nil, err
	}
	o := &Options{core: c, ptr: ptr}
	runtime.SetFinalizer(o, func(o *Options) { _ = o.Close() })
	return o, nil
}

// SetCalculationType selects power flow or state estimation.
func (o *Options) SetCalculationType(t CalculationType) error {
	return o.set("set_calculation_type", int64(t))
}

// SetCalculationMethod selects the numerical method.
func (o *Options) SetCalculationMethod(m CalculationMethod) error {
	return o.set("set_calculation_method", int64(m))
}

// SetSymmetric toggles the symmetric calculation flag.
func (o *Options) SetSymmetric(symmetric bool) error {
	v := int64(0)
	if symmetric {
		v = 1
	}
	return o.set("set_symmetric", v)
}

// SetErrTol sets the iterative error tolerance.
func (o *Options) SetErrTol(tol float64) error {
	return o.set("set_err_tol", tol)
}

// SetMaxIter caps the number of iterations.
func (o *Options) SetMaxIter(n int64) error {
	return o.set("set_max_iter", n)
}

// SetThreading sets the engine's internal threading level. This is the only
// influence the binding layer has on engine-side parallelism.
func (o *Options) SetThreading(level int64) error {
	return o.set("set_threading", level)
}

func (o *Options) set(name string, v any) error {
	if o.closed {
		return opErr(name, ErrClosed)
	}
	return o.core.callVoid(name, o.ptr, v)
}

// Close destroys the options resource. The native destroy runs at most
// once; a second Close returns ErrClosed.
func (o *Options) Close() error {
	if o == nil {
		return nil
	}
	if o.closed {
		return ErrClosed
	}
	runtime.SetFinalizer(o, nil)
	if err := o.core.callVoid("destroy_options", o.ptr); err != nil {
		return err
	}
	o.closed = true
	o.ptr = 0
	return nil
}
