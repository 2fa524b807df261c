// Package streamcipher wraps ChaCha20 keystream generation for one
// encryption session, keyed by enc_key and indexed by a per-chunk nonce
// counter shared with the MAC layer.
package streamcipher

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/chacha20"

	"github.com/purbtool/purb/secret"
)

// MaxChunkSize is the largest plaintext chunk a single nonce value may
// cover; each logical chunk gets its own freshly incremented nonce, so
// there is no internal block-counter reuse to fall back on past this size.
const MaxChunkSize = 16 * 1024 * 1024

// Engine applies ChaCha20 keystream XOR under one fixed enc_key.
type Engine struct {
	key *secret.Buffer
}

// New builds an Engine bound to key, which must be 32 bytes and owned by
// the caller for the Engine's lifetime.
func New(key *secret.Buffer) *Engine {
	return &Engine{key: key}
}

// XOR encrypts (or decrypts, ChaCha20 being an involution) src into dst
// under the nonce formed from nonceCounter, the 96-bit counter shared with
// this chunk's MAC commitment. len(src) must not exceed MaxChunkSize.
func (e *Engine) XOR(nonceCounter uint64, dst, src []byte) error {
	if len(src) > MaxChunkSize {
		return fmt.Errorf("streamcipher: chunk of %d bytes exceeds max chunk size %d", len(src), MaxChunkSize)
	}
	if len(dst) < len(src) {
		return fmt.Errorf("streamcipher: destination buffer too small")
	}

	nonce := make([]byte, chacha20.NonceSize)
	binary.LittleEndian.PutUint64(nonce[:8], nonceCounter)
	// The remaining 4 bytes of the 96-bit nonce stay zero: this session
	// never issues more than 2^64 chunks, so the high word is unused.

	c, err := chacha20.NewUnauthenticatedCipher(e.key.Bytes(), nonce)
	if err != nil {
		return fmt.Errorf("streamcipher: unable to initialize cipher: %w", err)
	}
	c.XORKeyStream(dst[:len(src)], src)
	return nil
}
