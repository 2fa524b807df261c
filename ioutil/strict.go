// SPDX-License-Identifier: Apache-2.0

package ioutil

import (
	"errors"
	"fmt"
	"io"
)

// ErrShortRead is raised when a strict read could not fill the requested
// buffer. Unlike io.ReadFull, the caller never has to distinguish between
// io.EOF and io.ErrUnexpectedEOF: both are reported identically because a
// short read is never acceptable for cryptoblob framing.
var ErrShortRead = errors.New("short read: could not fill the requested buffer")

// ErrShortWrite is raised when a strict write could not flush the whole
// buffer to the destination writer.
var ErrShortWrite = errors.New("short write: could not flush the whole buffer")

// StrictRead fills buf entirely from r or returns ErrShortRead. A short read
// is always treated as fatal: cryptoblob framing has no length-prefixed
// fields, so every read boundary is implied by a fixed offset and must be
// satisfied exactly.
func StrictRead(r io.Reader, buf []byte) error {
	n, err := io.ReadFull(r, buf)
	if err != nil {
		if n == len(buf) {
			// io.ReadFull never returns an error when it fills buf exactly,
			// but guard anyway to keep the contract obvious at call sites.
			return nil
		}
		return fmt.Errorf("%w: %v", ErrShortRead, err)
	}
	return nil
}

// StrictWrite writes buf entirely to w or returns ErrShortWrite.
func StrictWrite(w io.Writer, buf []byte) error {
	n, err := w.Write(buf)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrShortWrite, err)
	}
	if n != len(buf) {
		return ErrShortWrite
	}
	return nil
}
