// Package streammac computes the per-chunk authentication tags that bind
// every ciphertext chunk to its size, its nonce, and the session's fixed
// associated-data tuple.
package streammac

import (
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"hash"

	blake2b "github.com/minio/blake2b-simd"

	"github.com/purbtool/purb/canonicalization"
	"github.com/purbtool/purb/secret"
)

// TagSize is the length in bytes of one MAC tag.
const TagSize = 32

// AAD is the session's fixed associated-data tuple, computed once per
// session and reused for every chunk's MAC.
type AAD struct {
	encoded []byte
}

// NewAAD canonically encodes the session tuple:
//
//	(enc_key_hash, argon2_salt, blake2_salt, encrypted_pad_ikm,
//	 padded_size_bytes, pad_size_bytes, contents_size_bytes)
//
// with the three size fields encoded as 8-byte little-endian integers.
func NewAAD(encKeyHash, argon2Salt, blake2Salt, encryptedPadIKM []byte, paddedSize, padSize, contentsSize uint64) (AAD, error) {
	var paddedSizeLE, padSizeLE, contentsSizeLE [8]byte
	binary.LittleEndian.PutUint64(paddedSizeLE[:], paddedSize)
	binary.LittleEndian.PutUint64(padSizeLE[:], padSize)
	binary.LittleEndian.PutUint64(contentsSizeLE[:], contentsSize)

	encoded, err := canonicalization.Encode(
		encKeyHash, argon2Salt, blake2Salt, encryptedPadIKM,
		paddedSizeLE[:], padSizeLE[:], contentsSizeLE[:],
	)
	if err != nil {
		return AAD{}, fmt.Errorf("streammac: unable to encode session AAD: %w", err)
	}
	return AAD{encoded: encoded}, nil
}

// MAC computes incremental per-chunk authentication tags under mac_key.
type MAC struct {
	key *secret.Buffer
}

// New builds a MAC bound to key, which must be 32 bytes and owned by the
// caller for the MAC's lifetime.
func New(key *secret.Buffer) *MAC {
	return &MAC{key: key}
}

// Chunk computes the tag for one logical MAC chunk: the chunk's ciphertext,
// its size (8 B LE), the current nonce (12 B LE, sharing the counter with
// the stream cipher), and the session AAD tuple.
func (m *MAC) Chunk(nonceCounter uint64, data []byte, aad AAD) ([TagSize]byte, error) {
	h, err := blake2b.New(&blake2b.Config{Size: TagSize, Key: m.key.Bytes()})
	if err != nil {
		return [TagSize]byte{}, fmt.Errorf("streammac: unable to initialize keyed digest: %w", err)
	}

	if _, err := h.Write(data); err != nil {
		return [TagSize]byte{}, fmt.Errorf("streammac: unable to feed chunk data: %w", err)
	}

	var sizeLE [8]byte
	binary.LittleEndian.PutUint64(sizeLE[:], uint64(len(data)))
	if _, err := h.Write(sizeLE[:]); err != nil {
		return [TagSize]byte{}, fmt.Errorf("streammac: unable to feed chunk size: %w", err)
	}

	nonce := make([]byte, 12)
	binary.LittleEndian.PutUint64(nonce[:8], nonceCounter)
	if _, err := h.Write(nonce); err != nil {
		return [TagSize]byte{}, fmt.Errorf("streammac: unable to feed nonce: %w", err)
	}

	if _, err := h.Write(aad.encoded); err != nil {
		return [TagSize]byte{}, fmt.Errorf("streammac: unable to feed session AAD: %w", err)
	}

	var out [TagSize]byte
	copy(out[:], h.Sum(nil))
	return out, nil
}

// Verify recomputes the tag for (nonceCounter, data, aad) and compares it
// to want in constant time.
func (m *MAC) Verify(nonceCounter uint64, data []byte, aad AAD, want [TagSize]byte) (bool, error) {
	got, err := m.Chunk(nonceCounter, data, aad)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(got[:], want[:]) == 1, nil
}

// ChunkWriter accumulates a MAC chunk's data across multiple writes, for
// chunks too large to hold in one buffer (e.g. the pad chunk, whose random
// filler may span many sub-writes of the chunked I/O loop).
type ChunkWriter struct {
	h            hash.Hash
	nonceCounter uint64
	size         uint64
}

// NewChunk starts a MAC chunk keyed under m, bound to nonceCounter.
func (m *MAC) NewChunk(nonceCounter uint64) (*ChunkWriter, error) {
	h, err := blake2b.New(&blake2b.Config{Size: TagSize, Key: m.key.Bytes()})
	if err != nil {
		return nil, fmt.Errorf("streammac: unable to initialize keyed digest: %w", err)
	}
	return &ChunkWriter{h: h, nonceCounter: nonceCounter}, nil
}

// Write feeds another slice of this chunk's data into the running digest.
func (c *ChunkWriter) Write(p []byte) (int, error) {
	n, err := c.h.Write(p)
	c.size += uint64(n)
	return n, err
}

// Sum finalizes the chunk by feeding the accumulated size, this chunk's
// nonce, and the session AAD tuple, then returns the 32-byte tag.
func (c *ChunkWriter) Sum(aad AAD) ([TagSize]byte, error) {
	var sizeLE [8]byte
	binary.LittleEndian.PutUint64(sizeLE[:], c.size)
	if _, err := c.h.Write(sizeLE[:]); err != nil {
		return [TagSize]byte{}, fmt.Errorf("streammac: unable to feed chunk size: %w", err)
	}

	nonce := make([]byte, 12)
	binary.LittleEndian.PutUint64(nonce[:8], c.nonceCounter)
	if _, err := c.h.Write(nonce); err != nil {
		return [TagSize]byte{}, fmt.Errorf("streammac: unable to feed nonce: %w", err)
	}

	if _, err := c.h.Write(aad.encoded); err != nil {
		return [TagSize]byte{}, fmt.Errorf("streammac: unable to feed session AAD: %w", err)
	}

	var out [TagSize]byte
	copy(out[:], c.h.Sum(nil))
	return out, nil
}
