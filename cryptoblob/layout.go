// Package cryptoblob implements the PURB cryptoblob pipeline: the encrypt
// and decrypt state machines that turn a plaintext stream into an
// authenticated blob indistinguishable from random bytes, and back.
package cryptoblob

// Layout gathers the fixed-size fields of the cryptoblob byte layout.
var Layout = struct {
	SaltSize        int
	PadIKMSize      int
	MacTagSize      int
	CommentsSize    int
	MaxChunkSize    int
	MinUnpaddedSize uint64
}{
	SaltSize:        16,
	PadIKMSize:      8,
	MacTagSize:      32,
	CommentsSize:    1024,
	MaxChunkSize:    16 * 1024 * 1024,
	MinUnpaddedSize: 2*16 + 8 + 1024 + 2*32, // 1128
}
