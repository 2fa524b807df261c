package embed_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purbtool/purb/embed"
)

func TestEmbedExtractRoundTrip(t *testing.T) {
	dir := t.TempDir()
	containerPath := filepath.Join(dir, "container.bin")
	container := bytes.Repeat([]byte{0x00}, 1000)
	require.NoError(t, os.WriteFile(containerPath, container, 0o600))

	f, err := os.OpenFile(containerPath, os.O_RDWR, 0o600)
	require.NoError(t, err)
	defer f.Close()

	payload := []byte("cryptoblob bytes go here")
	report, err := embed.Embed(context.Background(), embed.EmbedRequest{
		Container: f,
		StartPos:  100,
		Input:     bytes.NewReader(payload),
		InputSize: uint64(len(payload)),
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(100), report.Start)
	assert.Equal(t, uint64(100+len(payload)), report.End)

	var out bytes.Buffer
	extractReport, err := embed.Extract(context.Background(), embed.ExtractRequest{
		Container: f,
		StartPos:  100,
		EndPos:    uint64(100 + len(payload)),
		Output:    &out,
	})
	require.NoError(t, err)
	assert.Equal(t, payload, out.Bytes())
	assert.Equal(t, report.Checksum, extractReport.Checksum)
}

func TestExtractRejectsInvertedRange(t *testing.T) {
	dir := t.TempDir()
	containerPath := filepath.Join(dir, "container.bin")
	require.NoError(t, os.WriteFile(containerPath, make([]byte, 10), 0o600))
	f, err := os.Open(containerPath)
	require.NoError(t, err)
	defer f.Close()

	var out bytes.Buffer
	_, err = embed.Extract(context.Background(), embed.ExtractRequest{
		Container: f,
		StartPos:  5,
		EndPos:    2,
		Output:    &out,
	})
	require.Error(t, err)
}
