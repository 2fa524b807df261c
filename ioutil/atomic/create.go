// Package atomic provides exclusive-create output file handling for
// cryptoblob and container operations.
//
// Every output this tool produces must never silently overwrite a
// pre-existing path: targets open exclusively (fail if the path exists)
// and, on any mid-write error, the half-written file is truncated to zero
// length and removed after an operator confirmation. CreateNew/Abort/
// Finalize below model that lifecycle.
package atomic

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrExists is raised when the target output path already exists. The
// caller (the out-of-scope Prompter collaborator) is expected to ask the
// operator whether to overwrite and retry with Overwrite: true.
var ErrExists = errors.New("output path already exists")

// CreateNew opens filename for exclusive creation with owner-only
// permissions where the OS supports it (0600). If overwrite is false and the
// path already exists, ErrExists is returned without touching the file.
func CreateNew(filename string, overwrite bool) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(filepath.Clean(filename), flags, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("%w: %q", ErrExists, filename)
		}
		return nil, fmt.Errorf("unable to create output file %q: %w", filename, err)
	}
	return f, nil
}

// Finalize flushes filesystem metadata for a freshly written output file by
// fsyncing both the file and its parent directory, then closes the handle.
func Finalize(f *os.File) error {
	if f == nil {
		return errors.New("file handle must not be nil")
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("unable to sync output file content: %w", err)
	}
	if err := syncDir(filepath.Dir(f.Name())); err != nil {
		return fmt.Errorf("unable to sync output directory: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to close output file: %w", err)
	}
	return nil
}

// Abort truncates a partially written output file to zero length and, if
// confirmed, removes it: truncate then remove after operator confirmation,
// the failure policy shared by every pipeline in this module.
func Abort(f *os.File, remove bool) error {
	if f == nil {
		return errors.New("file handle must not be nil")
	}

	name := f.Name()
	if err := f.Truncate(0); err != nil {
		_ = f.Close()
		return fmt.Errorf("unable to truncate partial output %q: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to close partial output %q: %w", name, err)
	}
	if !remove {
		return nil
	}
	if err := os.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("unable to remove partial output %q: %w", name, err)
	}
	return nil
}

// syncDir ensures that the directory handle is synced to disk by explicitly
// calling fsync on the directory handle, so that the just-created directory
// entry for the output file survives a crash.
func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("unable to open directory %q: %w", dir, err)
	}
	defer f.Close()

	if err := f.Sync(); err != nil {
		// Not all platforms/filesystems support fsync on directories
		// (notably Windows); treat as best-effort.
		if !errors.Is(err, os.ErrInvalid) {
			return fmt.Errorf("unable to sync directory %q: %w", dir, err)
		}
	}
	return nil
}
