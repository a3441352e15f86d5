// Package internalcheck provides internal validation and testing utilities.
//
// This package contains policy tests used internally by the pgcore-go
// library for consistency checks. It is not intended for external use and
// the API may change without notice.
//
// # Internal Use Only
//
// This package is part of the internal implementation and should not be
// imported by applications using the pgcore-go library. Use the public API
// provided by pkg/pgcore instead.
package internalcheck
