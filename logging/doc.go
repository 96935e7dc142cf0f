// Package logging provides structured logging using Go's standard library log/slog.
// It outputs logs in JSON format and can derive its configuration, such as the
// log level, from a loaded env.Environment.
package logging
