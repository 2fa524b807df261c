package secret_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purbtool/purb/secret"
)

func TestBufferRoundTrip(t *testing.T) {
	b := secret.NewBuffer([]byte("passphrase material"))
	defer b.Destroy()

	assert.Equal(t, "passphrase material", string(b.Bytes()))
	assert.Equal(t, len("passphrase material"), b.Len())
}

func TestBufferDestroyIsSafeToRepeat(t *testing.T) {
	b := secret.NewBuffer([]byte("key"))
	b.Destroy()
	assert.NotPanics(t, func() { b.Destroy() })
}

func TestNewRandomProducesRequestedLength(t *testing.T) {
	b := secret.NewRandom(32)
	defer b.Destroy()
	assert.Len(t, b.Bytes(), 32)
}

func TestSealOpenRoundTrip(t *testing.T) {
	b := secret.NewBuffer([]byte("enc_key-material-32-bytes-long!!"))
	enc := b.Seal()

	opened, err := enc.Open()
	require.NoError(t, err)
	defer opened.Destroy()

	assert.Equal(t, "enc_key-material-32-bytes-long!!", string(opened.Bytes()))
}

func TestNilBufferIsInert(t *testing.T) {
	var b *secret.Buffer
	assert.Nil(t, b.Bytes())
	assert.Equal(t, 0, b.Len())
	assert.NotPanics(t, func() { b.Destroy() })
}
