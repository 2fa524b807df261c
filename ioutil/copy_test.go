package ioutil_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purbtool/purb/ioutil"
)

func TestChunkedCopyExactAndRemainder(t *testing.T) {
	data := make([]byte, 100)
	_, err := rand.Read(data)
	require.NoError(t, err)

	var out bytes.Buffer
	err = ioutil.ChunkedCopy(context.Background(), &out, bytes.NewReader(data), uint64(len(data)), 30, nil)
	require.NoError(t, err)
	assert.Equal(t, data, out.Bytes())
}

func TestChunkedCopyRespectsCancellation(t *testing.T) {
	data := make([]byte, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := ioutil.ChunkedCopy(ctx, &out, bytes.NewReader(data), uint64(len(data)), 10, nil)
	require.Error(t, err)
}

func TestChunkedCopyZeroLength(t *testing.T) {
	var out bytes.Buffer
	err := ioutil.ChunkedCopy(context.Background(), &out, bytes.NewReader(nil), 0, 16, nil)
	require.NoError(t, err)
	assert.Empty(t, out.Bytes())
}
