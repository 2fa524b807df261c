// SPDX-License-Identifier: Apache-2.0

package atomic_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purbtool/purb/ioutil/atomic"
)

func TestCreateNewExclusive(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.bin")

	f, err := atomic.CreateNew(target, false)
	require.NoError(t, err)
	require.NoError(t, atomic.Finalize(f))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	_, err = atomic.CreateNew(target, false)
	require.ErrorIs(t, err, atomic.ErrExists)
}

func TestCreateNewOverwrite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.bin")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o600))

	f, err := atomic.CreateNew(target, true)
	require.NoError(t, err)
	_, err = f.Write([]byte("new"))
	require.NoError(t, err)
	require.NoError(t, atomic.Finalize(f))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestAbortTruncatesAndRemoves(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "partial.bin")

	f, err := atomic.CreateNew(target, false)
	require.NoError(t, err)
	_, err = f.Write([]byte("partial data"))
	require.NoError(t, err)

	require.NoError(t, atomic.Abort(f, true))
	_, err = os.Stat(target)
	assert.True(t, os.IsNotExist(err))
}

func TestAbortKeepsFileWhenNotConfirmed(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "partial.bin")

	f, err := atomic.CreateNew(target, false)
	require.NoError(t, err)
	_, err = f.Write([]byte("partial data"))
	require.NoError(t, err)

	require.NoError(t, atomic.Abort(f, false))
	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.Size())
}
