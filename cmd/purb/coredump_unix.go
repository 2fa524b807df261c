//go:build unix

package main

import "golang.org/x/sys/unix"

// disableCoreDumps zeroes RLIMIT_CORE so a crash never writes decrypted
// material or derived keys to disk.
func disableCoreDumps() {
	limit := unix.Rlimit{Cur: 0, Max: 0}
	_ = unix.Setrlimit(unix.RLIMIT_CORE, &limit)
}
