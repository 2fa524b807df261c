package streamcipher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purbtool/purb/secret"
	"github.com/purbtool/purb/streamcipher"
)

func TestXORRoundTrip(t *testing.T) {
	key := secret.NewBuffer(make([]byte, 32))
	defer key.Destroy()
	e := streamcipher.New(key)

	plaintext := []byte("the quick brown fox jumps over the lazy dog")
	ciphertext := make([]byte, len(plaintext))
	require.NoError(t, e.XOR(1, ciphertext, plaintext))
	assert.NotEqual(t, plaintext, ciphertext)

	recovered := make([]byte, len(ciphertext))
	require.NoError(t, e.XOR(1, recovered, ciphertext))
	assert.Equal(t, plaintext, recovered)
}

func TestXORDifferentNonceDifferentOutput(t *testing.T) {
	key := secret.NewBuffer(make([]byte, 32))
	defer key.Destroy()
	e := streamcipher.New(key)

	plaintext := []byte("identical plaintext block for both nonces")
	c1 := make([]byte, len(plaintext))
	c2 := make([]byte, len(plaintext))
	require.NoError(t, e.XOR(1, c1, plaintext))
	require.NoError(t, e.XOR(2, c2, plaintext))
	assert.NotEqual(t, c1, c2)
}

func TestXORRejectsOversizedChunk(t *testing.T) {
	key := secret.NewBuffer(make([]byte, 32))
	defer key.Destroy()
	e := streamcipher.New(key)

	oversized := make([]byte, streamcipher.MaxChunkSize+1)
	err := e.XOR(1, oversized, oversized)
	require.Error(t, err)
}
