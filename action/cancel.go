// Package action wires a process-global cancellation flag and the tagged
// request/dispatcher shape used by the CLI layer to drive one of the core
// pipeline operations.
package action

import "sync/atomic"

// CancelFlag is a process-global, signal-safe termination flag. A signal
// handler sets it; the CLI menu loop polls it between actions. Chunked-I/O
// loops observe cancellation through their context instead.
type CancelFlag struct {
	flag atomic.Bool
}

// Global is the single process-wide cancellation flag. There is exactly
// one termination signal per process, so one flag suffices.
var Global CancelFlag

// IsSet reports whether cancellation has been requested.
func (c *CancelFlag) IsSet() bool {
	return c.flag.Load()
}

// Set raises the cancellation flag. Safe to call from a signal handler.
func (c *CancelFlag) Set() {
	c.flag.Store(true)
}

// Reset lowers the cancellation flag, for reuse across CLI menu
// iterations within the same process.
func (c *CancelFlag) Reset() {
	c.flag.Store(false)
}
