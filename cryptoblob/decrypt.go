package cryptoblob

import (
	"context"
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/purbtool/purb/ikm"
	"github.com/purbtool/purb/ioutil"
	"github.com/purbtool/purb/keyschedule"
	"github.com/purbtool/purb/padding"
	"github.com/purbtool/purb/streammac"
)

// DecryptRequest describes one cryptoblob-to-plaintext operation.
type DecryptRequest struct {
	Input      io.ReadSeeker
	PaddedSize uint64
	Output     io.Writer

	IKM      IKMInput
	TimeCost uint32

	// UnsafeDecrypt releases plaintext even when a MAC tag fails to
	// verify, setting DecryptResult.Warning instead of aborting. Size
	// validation failures still abort. Use only under an explicit operator
	// opt-in.
	UnsafeDecrypt bool

	Progress ioutil.ProgressFunc
}

// DecryptResult reports the outcome of a Decrypt call.
type DecryptResult struct {
	ContentsSize uint64
	Comment      string
	// Warning is set when no keying material was supplied, or (in
	// UnsafeDecrypt mode) when a MAC tag failed to verify.
	Warning         bool
	KeyfileFailures []ikm.PathError
}

// Decrypt derives keying material, then verifies and writes plaintext to
// req.Output, chunk by chunk.
func Decrypt(ctx context.Context, req DecryptRequest) (DecryptResult, error) {
	progress := req.Progress
	if progress == nil {
		progress = ioutil.NoopProgress
	}

	if req.PaddedSize < Layout.MinUnpaddedSize {
		return DecryptResult{}, fmt.Errorf("%w: cryptoblob of %d bytes is smaller than the minimum %d", ErrSizeValidation, req.PaddedSize, Layout.MinUnpaddedSize)
	}

	if _, err := req.Input.Seek(0, io.SeekStart); err != nil {
		return DecryptResult{}, fmt.Errorf("cryptoblob: unable to seek to start: %w", err)
	}
	argon2Salt := make([]byte, Layout.SaltSize)
	if err := ioutil.StrictRead(req.Input, argon2Salt); err != nil {
		return DecryptResult{}, fmt.Errorf("cryptoblob: unable to read argon2 salt: %w", err)
	}

	blake2SaltOffset := int64(req.PaddedSize) - int64(Layout.SaltSize)
	if _, err := req.Input.Seek(blake2SaltOffset, io.SeekStart); err != nil {
		return DecryptResult{}, fmt.Errorf("cryptoblob: unable to seek to blake2 salt: %w", err)
	}
	blake2Salt := make([]byte, Layout.SaltSize)
	if err := ioutil.StrictRead(req.Input, blake2Salt); err != nil {
		return DecryptResult{}, fmt.Errorf("cryptoblob: unable to read blake2 salt: %w", err)
	}
	if _, err := req.Input.Seek(int64(Layout.SaltSize), io.SeekStart); err != nil {
		return DecryptResult{}, fmt.Errorf("cryptoblob: unable to seek back past argon2 salt: %w", err)
	}

	sess, info, err := newSessionWithSalt(ctx, req.IKM, req.TimeCost, argon2Salt, blake2Salt)
	if err != nil {
		return DecryptResult{}, err
	}
	defer sess.destroy()

	encryptedPadIKM := make([]byte, Layout.PadIKMSize)
	if err := ioutil.StrictRead(req.Input, encryptedPadIKM); err != nil {
		return DecryptResult{}, fmt.Errorf("cryptoblob: unable to read encrypted pad ikm: %w", err)
	}
	padIKM := make([]byte, Layout.PadIKMSize)
	if err := sess.engine.XOR(1, padIKM, encryptedPadIKM); err != nil {
		return DecryptResult{}, fmt.Errorf("cryptoblob: unable to decrypt pad ikm: %w", err)
	}
	padKey, err := keyschedule.DerivePadKey(padIKM)
	if err != nil {
		return DecryptResult{}, err
	}

	padSize := padding.Inverse(req.PaddedSize, padKey)
	if padSize > req.PaddedSize {
		return DecryptResult{}, fmt.Errorf("%w: padding size exceeds cryptoblob size", ErrSizeValidation)
	}
	unpaddedSize := req.PaddedSize - padSize
	if unpaddedSize < Layout.MinUnpaddedSize {
		return DecryptResult{}, fmt.Errorf("%w: unpadded size below minimum layout size", ErrSizeValidation)
	}
	encContentsSize := unpaddedSize - Layout.MinUnpaddedSize
	contentsSize, ok := plaintextSize(encContentsSize)
	if !ok {
		return DecryptResult{}, fmt.Errorf("%w: corrupt payload chunk remainder", ErrSizeValidation)
	}

	aad, err := streammac.NewAAD(sess.keys.EncKeyHash[:], argon2Salt, blake2Salt, encryptedPadIKM, req.PaddedSize, padSize, contentsSize)
	if err != nil {
		return DecryptResult{}, err
	}

	warning := info.warning

	padChunk, err := sess.mac.NewChunk(1)
	if err != nil {
		return DecryptResult{}, err
	}
	if _, err := padChunk.Write(encryptedPadIKM); err != nil {
		return DecryptResult{}, fmt.Errorf("cryptoblob: unable to feed pad chunk: %w", err)
	}
	padProgress := ioutil.NewProgress(progress, padSize)
	if err := ioutil.ChunkedCopy(ctx, padChunk, req.Input, padSize, Layout.MaxChunkSize, padProgress); err != nil {
		return DecryptResult{}, fmt.Errorf("cryptoblob: unable to consume padding: %w", err)
	}
	padTag := make([]byte, Layout.MacTagSize)
	if err := ioutil.StrictRead(req.Input, padTag); err != nil {
		return DecryptResult{}, fmt.Errorf("cryptoblob: unable to read pad mac tag: %w", err)
	}
	if err := verifyTag(padChunk, aad, padTag); err != nil {
		if !req.UnsafeDecrypt {
			return DecryptResult{}, err
		}
		warning = true
	}

	encryptedComments := make([]byte, Layout.CommentsSize)
	if err := ioutil.StrictRead(req.Input, encryptedComments); err != nil {
		return DecryptResult{}, fmt.Errorf("cryptoblob: unable to read comments: %w", err)
	}
	commentsChunk, err := sess.mac.NewChunk(2)
	if err != nil {
		return DecryptResult{}, err
	}
	if _, err := commentsChunk.Write(encryptedComments); err != nil {
		return DecryptResult{}, fmt.Errorf("cryptoblob: unable to feed comments chunk: %w", err)
	}
	commentsTag := make([]byte, Layout.MacTagSize)
	if err := ioutil.StrictRead(req.Input, commentsTag); err != nil {
		return DecryptResult{}, fmt.Errorf("cryptoblob: unable to read comments mac tag: %w", err)
	}
	if err := verifyTag(commentsChunk, aad, commentsTag); err != nil {
		if !req.UnsafeDecrypt {
			return DecryptResult{}, err
		}
		warning = true
	}
	commentsPlaintext := make([]byte, Layout.CommentsSize)
	if err := sess.engine.XOR(2, commentsPlaintext, encryptedComments); err != nil {
		return DecryptResult{}, fmt.Errorf("cryptoblob: unable to decrypt comments: %w", err)
	}
	comment := parseCommentsBlock(commentsPlaintext)

	nonceCounter := uint64(2)
	payloadProgress := ioutil.NewProgress(progress, contentsSize)
	plan := ioutil.PlanChunks(contentsSize, Layout.MaxChunkSize)
	var processed uint64
	ciphertext := make([]byte, Layout.MaxChunkSize)
	plaintext := make([]byte, Layout.MaxChunkSize)
	tagBuf := make([]byte, Layout.MacTagSize)
	for _, n := range plan.Sizes() {
		if err := ctx.Err(); err != nil {
			return DecryptResult{}, err
		}

		nonceCounter++
		if err := ioutil.StrictRead(req.Input, ciphertext[:n]); err != nil {
			return DecryptResult{}, fmt.Errorf("cryptoblob: unable to read payload chunk: %w", err)
		}
		chunkMAC, err := sess.mac.NewChunk(nonceCounter)
		if err != nil {
			return DecryptResult{}, err
		}
		if _, err := chunkMAC.Write(ciphertext[:n]); err != nil {
			return DecryptResult{}, fmt.Errorf("cryptoblob: unable to feed payload chunk: %w", err)
		}
		if err := ioutil.StrictRead(req.Input, tagBuf); err != nil {
			return DecryptResult{}, fmt.Errorf("cryptoblob: unable to read payload mac tag: %w", err)
		}
		if err := verifyTag(chunkMAC, aad, tagBuf); err != nil {
			if !req.UnsafeDecrypt {
				return DecryptResult{}, err
			}
			warning = true
		}

		if err := sess.engine.XOR(nonceCounter, plaintext[:n], ciphertext[:n]); err != nil {
			return DecryptResult{}, fmt.Errorf("cryptoblob: unable to decrypt payload chunk: %w", err)
		}
		if err := ioutil.StrictWrite(req.Output, plaintext[:n]); err != nil {
			return DecryptResult{}, fmt.Errorf("cryptoblob: unable to write plaintext chunk: %w", err)
		}

		processed += uint64(n)
		payloadProgress.Update(processed)
	}
	payloadProgress.Done(processed)

	return DecryptResult{
		ContentsSize:    contentsSize,
		Comment:         comment,
		Warning:         warning,
		KeyfileFailures: info.failures,
	}, nil
}

func verifyTag(chunk *streammac.ChunkWriter, aad streammac.AAD, want []byte) error {
	got, err := chunk.Sum(aad)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(got[:], want) != 1 {
		return ErrAuthentication
	}
	return nil
}
