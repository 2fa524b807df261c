//go:build !unix

package main

// disableCoreDumps is a no-op on platforms without POSIX resource limits.
func disableCoreDumps() {}
