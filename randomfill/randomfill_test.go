package randomfill_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purbtool/purb/randomfill"
)

func TestCreateWritesRequestedSize(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, randomfill.Create(context.Background(), &buf, 1024, nil))
	assert.Len(t, buf.Bytes(), 1024)
}

func TestCreateZeroSize(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, randomfill.Create(context.Background(), &buf, 0, nil))
	assert.Empty(t, buf.Bytes())
}

type seekableBuffer struct {
	data []byte
	pos  int64
}

func (s *seekableBuffer) Write(p []byte) (int, error) {
	end := s.pos + int64(len(p))
	if end > int64(len(s.data)) {
		grown := make([]byte, end)
		copy(grown, s.data)
		s.data = grown
	}
	copy(s.data[s.pos:end], p)
	s.pos = end
	return len(p), nil
}

func (s *seekableBuffer) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case 0:
		s.pos = offset
	case 1:
		s.pos += offset
	case 2:
		s.pos = int64(len(s.data)) + offset
	}
	return s.pos, nil
}

func TestOverwriteRange(t *testing.T) {
	buf := &seekableBuffer{data: make([]byte, 100)}
	require.NoError(t, randomfill.Overwrite(context.Background(), buf, 20, 50, nil))
	assert.Len(t, buf.data, 100)
}

func TestOverwriteRejectsInvertedRange(t *testing.T) {
	buf := &seekableBuffer{data: make([]byte, 10)}
	err := randomfill.Overwrite(context.Background(), buf, 8, 2, nil)
	require.Error(t, err)
}
