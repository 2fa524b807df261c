// Package ikm collects initial keying material from keyfiles, recursively
// walked directories, and an optional passphrase, and folds it into the
// single digest fed to the key schedule.
package ikm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"

	"golang.org/x/text/unicode/norm"

	blake2b "github.com/minio/blake2b-simd"

	"github.com/purbtool/purb/secret"
)

const (
	digestSize = 32

	keyfilePerson    = "KKKKKKKKKKKKKKKK"
	passphrasePerson = "PPPPPPPPPPPPPPPP"

	maxPassphraseBytes = 2048
)

// ErrNotFound is returned when a keyfile or directory path does not exist.
var ErrNotFound = errors.New("ikm: path not found")

// ErrPermission is returned when a keyfile or directory path cannot be
// opened due to insufficient permissions.
var ErrPermission = errors.New("ikm: permission denied")

// Options carries every source of keying material for one Collect call.
type Options struct {
	// KeyfilePaths lists regular files and/or directories to digest.
	KeyfilePaths []string
	// Passphrase holds UTF-8 encoded passphrase bytes, already read and
	// confirmed by the caller. May be nil/empty.
	Passphrase []byte
	// BLAKE2Salt is the session's random salt, shared by every digest in
	// this collection (spec: salt=blake2_salt for all IKM hashing).
	BLAKE2Salt []byte
}

// Result is the outcome of a Collect call.
type Result struct {
	// Argon2Password is the folded 32-byte digest used as Argon2id's
	// password input.
	Argon2Password *secret.Buffer
	// Warning is set when no IKM at all was collected (no keyfiles
	// resolved to any digest and no passphrase was supplied); this is
	// not an error, encryption proceeds with Argon2Password set to the
	// salted digest of an empty input.
	Warning bool
}

// Collect gathers every digest named by opts and folds them into a single
// order-independent Argon2Password. Per-keyfile I/O failures are non-fatal:
// the returned []PathError reports which paths were skipped and why, while the
// collection continues for remaining sources.
func Collect(ctx context.Context, opts Options) (Result, []PathError, error) {
	var digests [][digestSize]byte
	var failures []PathError

	for _, p := range opts.KeyfilePaths {
		ds, err := digestPath(ctx, p, opts.BLAKE2Salt)
		if err != nil {
			failures = append(failures, PathError{Path: p, Err: err})
			continue
		}
		digests = append(digests, ds...)
	}

	if len(opts.Passphrase) > 0 {
		d, err := digestPassphrase(opts.Passphrase, opts.BLAKE2Salt)
		if err != nil {
			return Result{}, failures, fmt.Errorf("ikm: unable to digest passphrase: %w", err)
		}
		digests = append(digests, d)
	}

	sort.Slice(digests, func(i, j int) bool {
		return string(digests[i][:]) < string(digests[j][:])
	})

	folded, err := fold(digests, opts.BLAKE2Salt)
	if err != nil {
		return Result{}, failures, fmt.Errorf("ikm: unable to fold digests: %w", err)
	}

	return Result{
		Argon2Password: secret.NewBuffer(folded),
		Warning:        len(digests) == 0,
	}, failures, nil
}

// PathError records a non-fatal failure to digest one keyfile or directory.
type PathError struct {
	Path string
	Err  error
}

func (e PathError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e PathError) Unwrap() error {
	return e.Err
}

func digestPath(ctx context.Context, path string, salt []byte) ([][digestSize]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, classifyStatError(err)
	}

	if !info.IsDir() {
		d, err := digestFile(path, salt)
		if err != nil {
			return nil, err
		}
		return [][digestSize]byte{d}, nil
	}

	var digests [][digestSize]byte
	root := os.DirFS(path)
	walkErr := fs.WalkDir(root, ".", func(name string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		f, err := root.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()

		digest, err := digestReader(f, salt, keyfilePerson)
		if err != nil {
			return err
		}
		digests = append(digests, digest)
		return nil
	})
	if walkErr != nil {
		// Spec: any I/O error aborts the whole directory's contribution,
		// not the overall collection.
		return nil, fmt.Errorf("directory walk aborted: %w", walkErr)
	}
	return digests, nil
}

func digestFile(path string, salt []byte) ([digestSize]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return [digestSize]byte{}, classifyStatError(err)
	}
	defer f.Close()
	return digestReader(f, salt, keyfilePerson)
}

func digestReader(r io.Reader, salt []byte, person string) ([digestSize]byte, error) {
	h, err := blake2b.New(&blake2b.Config{
		Size:   digestSize,
		Salt:   salt,
		Person: []byte(person),
	})
	if err != nil {
		return [digestSize]byte{}, fmt.Errorf("unable to initialize digest: %w", err)
	}
	if _, err := io.Copy(h, r); err != nil {
		return [digestSize]byte{}, fmt.Errorf("unable to read content: %w", err)
	}
	var out [digestSize]byte
	copy(out[:], h.Sum(nil))
	return out, nil
}

func digestPassphrase(pw []byte, salt []byte) ([digestSize]byte, error) {
	normalized := norm.NFC.Bytes(pw)
	if len(normalized) > maxPassphraseBytes {
		normalized = normalized[:maxPassphraseBytes]
	}
	return digestReader(bytes.NewReader(normalized), salt, passphrasePerson)
}

func fold(digests [][digestSize]byte, salt []byte) ([]byte, error) {
	h, err := blake2b.New(&blake2b.Config{
		Size: digestSize,
		Salt: salt,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to initialize fold digest: %w", err)
	}
	for _, d := range digests {
		if _, err := h.Write(d[:]); err != nil {
			return nil, fmt.Errorf("unable to fold digest: %w", err)
		}
	}
	return h.Sum(nil), nil
}

func classifyStatError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %v", ErrPermission, err)
	default:
		return err
	}
}
