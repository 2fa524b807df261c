package streammac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purbtool/purb/secret"
	"github.com/purbtool/purb/streammac"
)

func testAAD(t *testing.T) streammac.AAD {
	t.Helper()
	aad, err := streammac.NewAAD(
		make([]byte, 32), make([]byte, 16), make([]byte, 16), make([]byte, 8),
		1200, 72, 1128,
	)
	require.NoError(t, err)
	return aad
}

func TestChunkVerifyRoundTrip(t *testing.T) {
	key := secret.NewBuffer(make([]byte, 32))
	defer key.Destroy()
	m := streammac.New(key)
	aad := testAAD(t)

	tag, err := m.Chunk(3, []byte("ciphertext bytes for one chunk"), aad)
	require.NoError(t, err)

	ok, err := m.Verify(3, []byte("ciphertext bytes for one chunk"), aad, tag)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSingleBitFlipIsFatal(t *testing.T) {
	key := secret.NewBuffer(make([]byte, 32))
	defer key.Destroy()
	m := streammac.New(key)
	aad := testAAD(t)

	data := []byte("ciphertext bytes for one chunk!")
	tag, err := m.Chunk(3, data, aad)
	require.NoError(t, err)

	for i := range data {
		for bit := 0; bit < 8; bit++ {
			flipped := make([]byte, len(data))
			copy(flipped, data)
			flipped[i] ^= 1 << bit

			ok, err := m.Verify(3, flipped, aad, tag)
			require.NoError(t, err)
			assert.False(t, ok, "byte %d bit %d should invalidate the tag", i, bit)
		}
	}
}

func TestDifferentNonceDifferentTag(t *testing.T) {
	key := secret.NewBuffer(make([]byte, 32))
	defer key.Destroy()
	m := streammac.New(key)
	aad := testAAD(t)

	data := []byte("same chunk bytes")
	tag1, err := m.Chunk(1, data, aad)
	require.NoError(t, err)
	tag2, err := m.Chunk(2, data, aad)
	require.NoError(t, err)
	assert.NotEqual(t, tag1, tag2)
}

func TestChunkWriterMatchesChunk(t *testing.T) {
	key := secret.NewBuffer(make([]byte, 32))
	defer key.Destroy()
	m := streammac.New(key)
	aad := testAAD(t)

	data := []byte("data split across several incremental writes for the pad chunk")
	want, err := m.Chunk(7, data, aad)
	require.NoError(t, err)

	cw, err := m.NewChunk(7)
	require.NoError(t, err)
	_, err = cw.Write(data[:10])
	require.NoError(t, err)
	_, err = cw.Write(data[10:])
	require.NoError(t, err)
	got, err := cw.Sum(aad)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestDifferentAADDifferentTag(t *testing.T) {
	key := secret.NewBuffer(make([]byte, 32))
	defer key.Destroy()
	m := streammac.New(key)

	aad1 := testAAD(t)
	aad2, err := streammac.NewAAD(
		make([]byte, 32), make([]byte, 16), make([]byte, 16), make([]byte, 8),
		1300, 172, 1128,
	)
	require.NoError(t, err)

	data := []byte("same chunk bytes")
	tag1, err := m.Chunk(1, data, aad1)
	require.NoError(t, err)
	tag2, err := m.Chunk(1, data, aad2)
	require.NoError(t, err)
	assert.NotEqual(t, tag1, tag2)
}
