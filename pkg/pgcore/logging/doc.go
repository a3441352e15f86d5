// Package logging defines the minimal logging surface used by the pgcore
// binding layer. The layer owns no logging configuration: callers inject a
// Logger (or rely on slog.Default) and keep full control of handlers,
// levels and output.
package logging
