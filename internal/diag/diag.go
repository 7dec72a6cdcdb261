// Package diag accumulates errors and warnings across one conversion run.
//
// Slide- and placeholder-local problems are recoverable: they are recorded
// here and the offending item is skipped, so a single malformed slide never
// blocks diagnostics for the others. Each conversion run owns its own
// Collector; there is no process-wide state.
package diag

import "fmt"

// Collector is an append-only accumulator of human-readable diagnostics.
// The zero value is ready to use.
type Collector struct {
	errors   []string
	warnings []string
}

// Errorf records a recoverable error.
func (c *Collector) Errorf(format string, args ...any) {
	c.errors = append(c.errors, fmt.Sprintf(format, args...))
}

// Warnf records a warning. Warnings never block output.
func (c *Collector) Warnf(format string, args ...any) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

// Errors returns the recorded errors in insertion order.
func (c *Collector) Errors() []string {
	return append([]string{}, c.errors...)
}

// Warnings returns the recorded warnings in insertion order.
func (c *Collector) Warnings() []string {
	return append([]string{}, c.warnings...)
}

// HasErrors reports whether any error was recorded.
func (c *Collector) HasErrors() bool {
	return len(c.errors) > 0
}
