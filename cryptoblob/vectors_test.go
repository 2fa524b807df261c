package cryptoblob

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroReader is a deterministic, infinite stream of zero bytes, standing in
// for crypto/rand.Reader so every random byte Encrypt draws (salts, pad_ikm,
// padding and comments filler) is reproducible across runs. This is the seam described in DESIGN.md's
// "frozen deterministic test vectors" decision: a fixture captured from one
// run of this implementation (time_cost=4, all-zero entropy) can be
// replayed as a byte-for-byte regression check once the code has actually
// been built and executed at least once.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func withZeroEntropy(t *testing.T) {
	t.Helper()
	prev := randSource
	randSource = zeroReader{}
	t.Cleanup(func() { randSource = prev })
}

func TestDeterministicVectorIsReproducible(t *testing.T) {
	withZeroEntropy(t)

	plaintext := []byte("frozen vector payload")
	comment := "vector"
	passphrase := []byte("vector passphrase")

	var first, second bytes.Buffer
	res1, err := Encrypt(context.Background(), EncryptRequest{
		Input:     bytes.NewReader(plaintext),
		InputSize: uint64(len(plaintext)),
		Output:    &first,
		Comment:   comment,
		IKM:       IKMInput{Passphrase: passphrase},
		TimeCost:  4,
	})
	require.NoError(t, err)

	res2, err := Encrypt(context.Background(), EncryptRequest{
		Input:     bytes.NewReader(plaintext),
		InputSize: uint64(len(plaintext)),
		Output:    &second,
		Comment:   comment,
		IKM:       IKMInput{Passphrase: passphrase},
		TimeCost:  4,
	})
	require.NoError(t, err)

	assert.Equal(t, res1.PaddedSize, res2.PaddedSize)
	assert.True(t, bytes.Equal(first.Bytes(), second.Bytes()), "zero-entropy encryption must be fully reproducible")
}

func TestDeterministicVectorDecryptsBack(t *testing.T) {
	withZeroEntropy(t)

	plaintext := bytes.Repeat([]byte{0x42}, 300)
	passphrase := []byte("vector passphrase two")

	var blob bytes.Buffer
	encRes, err := Encrypt(context.Background(), EncryptRequest{
		Input:     bytes.NewReader(plaintext),
		InputSize: uint64(len(plaintext)),
		Output:    &blob,
		Comment:   "frozen",
		IKM:       IKMInput{Passphrase: passphrase},
		TimeCost:  4,
	})
	require.NoError(t, err)

	var out bytes.Buffer
	decRes, err := Decrypt(context.Background(), DecryptRequest{
		Input:      bytes.NewReader(blob.Bytes()),
		PaddedSize: encRes.PaddedSize,
		Output:     &out,
		IKM:        IKMInput{Passphrase: passphrase},
		TimeCost:   4,
	})
	require.NoError(t, err)
	assert.Equal(t, plaintext, out.Bytes())
	assert.Equal(t, "frozen", decRes.Comment)
}

var _ io.Reader = zeroReader{}
