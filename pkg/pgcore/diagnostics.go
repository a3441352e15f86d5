package pgcore

import "github.com/powergridmodel/pgcore-go/internal/ffi"

// ErrorCode returns the code of the most recent fatal engine condition.
// Zero means the last call fully succeeded. The slot is never cleared
// implicitly between calls; use ClearError.
func (c *Core) ErrorCode() (int64, error) {
	return c.callIdx("error_code")
}

// ErrorMessage returns the message of the most recent fatal engine
// condition; empty text means success.
func (c *Core) ErrorMessage() (string, error) {
	return c.callStr("error_message")
}

// NFailedScenarios returns how many scenarios failed independently in the
// most recent batch calculation. A successful Calculate does not imply
// zero: check after every batch.
func (c *Core) NFailedScenarios() (int64, error) {
	return c.callIdx("n_failed_scenarios")
}

// FailedScenarios lists the failed scenario indices of the most recent
// batch calculation, in ascending order.
func (c *Core) FailedScenarios() ([]int64, error) {
	n, err := c.NFailedScenarios()
	if err != nil {
		return nil, err
	}
	ptr, err := c.callPtr("failed_scenarios")
	if err != nil {
		return nil, err
	}
	return ffi.GoInt64s(ptr, int(n)), nil
}

// BatchErrors returns one message per failed scenario, positionally aligned
// with FailedScenarios.
func (c *Core) BatchErrors() ([]string, error) {
	n, err := c.NFailedScenarios()
	if err != nil {
		return nil, err
	}
	ptr, err := c.callPtr("batch_errors")
	if err != nil {
		return nil, err
	}
	return ffi.GoStrings(ptr, int(n)), nil
}

// ClearError resets the fatal error slot and the batch failure list to the
// success state.
func (c *Core) ClearError() error {
	return c.callVoid("clear_error")
}

// IsBatchIndependent reports whether the scenarios of the most recent batch
// were independent of each other.
func (c *Core) IsBatchIndependent() (bool, error) {
	return c.callBool("is_batch_independent")
}

// IsBatchCacheTopology reports whether the most recent batch reused a
// cached topology across scenarios.
func (c *Core) IsBatchCacheTopology() (bool, error) {
	return c.callBool("is_batch_cache_topology")
}
