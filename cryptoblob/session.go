package cryptoblob

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/purbtool/purb/ikm"
	"github.com/purbtool/purb/keyschedule"
	"github.com/purbtool/purb/streamcipher"
	"github.com/purbtool/purb/streammac"
)

// ErrAuthentication is returned when a MAC tag fails to verify. The
// decrypt pipeline aborts and the partial output is truncated unless the
// caller has explicitly requested UnsafeDecrypt.
var ErrAuthentication = errors.New("cryptoblob: authentication failed")

// ErrSizeValidation is returned when a cryptoblob's declared size cannot be
// a genuine instance of the layout (too short, or a corrupt chunk
// remainder). It is reported to the operator with the same messaging as
// ErrAuthentication.
var ErrSizeValidation = fmt.Errorf("%w: invalid cryptoblob size", ErrAuthentication)

// IKMInput carries the keying material sources for one Encrypt/Decrypt
// call, mirroring ikm.Options without the session-specific salt.
type IKMInput struct {
	KeyfilePaths []string
	Passphrase   []byte
}

// session holds the ephemeral state of one Encrypt or Decrypt call. It is
// created at the start of the call and every secret it owns is destroyed
// before the call returns, successfully or not.
type session struct {
	argon2Salt []byte
	blake2Salt []byte

	keys keyschedule.Keys

	engine *streamcipher.Engine
	mac    *streammac.MAC
}

// sessionInfo reports the non-secret outcome of key collection alongside
// the opaque session handle.
type sessionInfo struct {
	warning  bool
	failures []ikm.PathError
}

func newSession(ctx context.Context, in IKMInput, timeCost uint32, blake2Salt []byte) (*session, sessionInfo, error) {
	argon2Salt, err := randomBytes(Layout.SaltSize)
	if err != nil {
		return nil, sessionInfo{}, err
	}
	return newSessionWithSalt(ctx, in, timeCost, argon2Salt, blake2Salt)
}

// newSessionWithSalt builds a session around a given argon2Salt: freshly
// generated by newSession on encryption, read from the cryptoblob on
// decryption.
func newSessionWithSalt(ctx context.Context, in IKMInput, timeCost uint32, argon2Salt, blake2Salt []byte) (*session, sessionInfo, error) {
	collected, failures, err := ikm.Collect(ctx, ikm.Options{
		KeyfilePaths: in.KeyfilePaths,
		Passphrase:   in.Passphrase,
		BLAKE2Salt:   blake2Salt,
	})
	if err != nil {
		return nil, sessionInfo{}, fmt.Errorf("cryptoblob: unable to collect key material: %w", err)
	}
	info := sessionInfo{warning: collected.Warning, failures: failures}

	keys, err := keyschedule.Derive(collected.Argon2Password.Bytes(), argon2Salt, timeCost)
	collected.Argon2Password.Destroy()
	if err != nil {
		return nil, info, fmt.Errorf("cryptoblob: unable to derive keys: %w", err)
	}

	return &session{
		argon2Salt: argon2Salt,
		blake2Salt: blake2Salt,
		keys:       keys,
		engine:     streamcipher.New(keys.EncKey),
		mac:        streammac.New(keys.MacKey),
	}, info, nil
}

func (s *session) destroy() {
	s.keys.Destroy()
}

// randSource is the entropy source for the salts, pad_ikm, the padding
// section and the comments block filler. Tests may swap it
// for a deterministic reader to produce reproducible fixtures; production
// code always leaves it at its default, crypto/rand.Reader.
var randSource io.Reader = rand.Reader

// randomBytes fills b with cryptographically secure random data.
func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(randSource, b); err != nil {
		return nil, fmt.Errorf("cryptoblob: unable to generate random bytes: %w", err)
	}
	return b, nil
}

// chunkWriterFeed is a convenience io.Writer that fans a chunked copy's
// output into a MAC chunk accumulator and, optionally, a destination.
type chunkWriterFeed struct {
	dst io.Writer
	mac *streammac.ChunkWriter
}

func (f chunkWriterFeed) Write(p []byte) (int, error) {
	if _, err := f.mac.Write(p); err != nil {
		return 0, err
	}
	if f.dst == nil {
		return len(p), nil
	}
	return f.dst.Write(p)
}

var _ io.Writer = chunkWriterFeed{}
