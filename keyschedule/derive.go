// Package keyschedule stretches the folded IKM digest into the session's
// working keys via Argon2id followed by HKDF-SHA-256 splits.
package keyschedule

import (
	"crypto/sha256"
	"fmt"
	"io"

	blake2b "github.com/minio/blake2b-simd"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"

	"github.com/purbtool/purb/secret"
)

const (
	// memoryKiB fixes Argon2id's memory cost at 1 GiB, expressed in the KiB
	// unit argon2.IDKey expects.
	memoryKiB = 1 << 20
	// threads is fixed rather than exposed; see DESIGN.md for the rationale.
	threads = 4

	tagSize = 32
	keySize = 32

	macInfo = "MAC"
	encInfo = "ENCRYPT"
	padInfo = "PAD"
)

// Keys holds the session's derived working keys.
type Keys struct {
	EncKey     *secret.Buffer
	MacKey     *secret.Buffer
	EncKeyHash [32]byte
}

// Destroy wipes both derived keys. Safe on a zero Keys value.
func (k Keys) Destroy() {
	k.EncKey.Destroy()
	k.MacKey.Destroy()
}

// Derive stretches argon2Password via Argon2id and splits the resulting tag
// into mac_key/enc_key via HKDF-SHA-256, per the session key schedule.
// timeCost must be at least 4.
func Derive(argon2Password, argon2Salt []byte, timeCost uint32) (Keys, error) {
	if timeCost < 4 {
		return Keys{}, fmt.Errorf("keyschedule: time cost must be at least 4, got %d", timeCost)
	}
	if len(argon2Salt) != 16 {
		return Keys{}, fmt.Errorf("keyschedule: argon2 salt must be 16 bytes, got %d", len(argon2Salt))
	}

	tag := argon2.IDKey(argon2Password, argon2Salt, timeCost, memoryKiB, threads, tagSize)
	defer secret.Wipe(tag)

	macKey, err := hkdfExpand(tag, macInfo, keySize)
	if err != nil {
		return Keys{}, fmt.Errorf("keyschedule: unable to derive mac_key: %w", err)
	}
	encKey, err := hkdfExpand(tag, encInfo, keySize)
	if err != nil {
		secret.Wipe(macKey)
		return Keys{}, fmt.Errorf("keyschedule: unable to derive enc_key: %w", err)
	}

	encKeyHash, err := unkeyedDigest(encKey)
	if err != nil {
		secret.Wipe(macKey)
		secret.Wipe(encKey)
		return Keys{}, fmt.Errorf("keyschedule: unable to hash enc_key: %w", err)
	}

	return Keys{
		EncKey:     secret.NewBuffer(encKey),
		MacKey:     secret.NewBuffer(macKey),
		EncKeyHash: encKeyHash,
	}, nil
}

// DerivePadKey expands the plaintext pad_ikm (8 random bytes, not the
// encrypted form) into the 8-byte pad_key used by the padding oracle. This
// runs after pad_ikm is known mid-pipeline, hence the separate entry point.
func DerivePadKey(padIKM []byte) (uint64, error) {
	raw, err := hkdfExpand(padIKM, padInfo, 8)
	if err != nil {
		return 0, fmt.Errorf("keyschedule: unable to derive pad_key: %w", err)
	}
	defer secret.Wipe(raw)

	var padKey uint64
	for i := 0; i < 8; i++ {
		padKey |= uint64(raw[i]) << (8 * i)
	}
	return padKey, nil
}

func hkdfExpand(secretIn []byte, info string, length int) ([]byte, error) {
	r := hkdf.New(sha256.New, secretIn, nil, []byte(info))
	out := make([]byte, length)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, err
	}
	return out, nil
}

func unkeyedDigest(data []byte) ([32]byte, error) {
	h, err := blake2b.New(&blake2b.Config{Size: 32})
	if err != nil {
		return [32]byte{}, err
	}
	if _, err := h.Write(data); err != nil {
		return [32]byte{}, err
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out, nil
}
