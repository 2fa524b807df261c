// Package secret wraps memguard so that the derived enc_key and mac_key and
// the folded Argon2id password live in mlocked, wiped-on-destroy memory
// instead of plain Go byte slices. Passphrases and per-keyfile digests are
// handled as ordinary byte slices and arrays.
package secret

import (
	"errors"

	"github.com/awnumar/memguard"
)

// ErrClosed is returned when an operation is attempted on a Buffer that has
// already been destroyed.
var ErrClosed = errors.New("secret: buffer already destroyed")

// Buffer holds sensitive material (a passphrase digest, a derived key, ...)
// in locked memory for the lifetime of one session.
type Buffer struct {
	lb *memguard.LockedBuffer
}

// NewBuffer takes ownership of b, copying it into locked memory and wiping
// the original slice.
func NewBuffer(b []byte) *Buffer {
	lb := memguard.NewBufferFromBytes(b)
	return &Buffer{lb: lb}
}

// NewRandom allocates a new locked buffer of size n filled with
// cryptographically secure random bytes.
func NewRandom(n int) *Buffer {
	return &Buffer{lb: memguard.NewBufferRandom(n)}
}

// Bytes returns the buffer's underlying content. The returned slice aliases
// locked memory and must not be retained past the Buffer's lifetime.
func (b *Buffer) Bytes() []byte {
	if b == nil || b.lb == nil {
		return nil
	}
	return b.lb.Bytes()
}

// Len reports the buffer's size in bytes.
func (b *Buffer) Len() int {
	if b == nil || b.lb == nil {
		return 0
	}
	return b.lb.Size()
}

// Destroy wipes and unlocks the buffer's memory. Safe to call multiple
// times and on a nil Buffer.
func (b *Buffer) Destroy() {
	if b == nil || b.lb == nil {
		return
	}
	b.lb.Destroy()
}

// Seal moves the buffer's content into an Enclave, encrypting it at rest in
// process memory. The Buffer is destroyed as part of the move.
func (b *Buffer) Seal() *Enclave {
	return &Enclave{e: b.lb.Seal()}
}

// Enclave is an encrypted-at-rest handle to secret material, used to hold
// keys between the moments they are actively needed.
type Enclave struct {
	e *memguard.Enclave
}

// Open decrypts the enclave's content into a fresh locked Buffer.
func (e *Enclave) Open() (*Buffer, error) {
	if e == nil || e.e == nil {
		return nil, ErrClosed
	}
	lb, err := e.e.Open()
	if err != nil {
		return nil, err
	}
	return &Buffer{lb: lb}, nil
}

// Wipe zeroes b in place. Use for transient slices that were never wrapped
// in a Buffer, e.g. a scratch chunk buffer reused across iterations.
func Wipe(b []byte) {
	memguard.WipeBytes(b)
}
