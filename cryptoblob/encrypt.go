package cryptoblob

import (
	"context"
	"fmt"
	"io"

	"github.com/purbtool/purb/ikm"
	"github.com/purbtool/purb/ioutil"
	"github.com/purbtool/purb/keyschedule"
	"github.com/purbtool/purb/padding"
	"github.com/purbtool/purb/streammac"
)

// EncryptRequest describes one plaintext-to-cryptoblob operation.
type EncryptRequest struct {
	Input     io.Reader
	InputSize uint64
	Output    io.Writer

	Comment string

	IKM      IKMInput
	TimeCost uint32

	Progress ioutil.ProgressFunc
}

// EncryptResult reports the outcome of a successful Encrypt call.
type EncryptResult struct {
	PaddedSize uint64
	// Warning is set when no keying material at all was supplied; the
	// operation still proceeds, with keys derived from no secret input.
	Warning bool
	// KeyfileFailures lists keyfile/directory paths that could not be
	// digested; collection continued without them.
	KeyfileFailures []ikm.PathError
}

// Encrypt derives keying material, then writes a complete cryptoblob to
// req.Output: argon2 salt, encrypted pad_ikm, padding and its MAC tag, the
// encrypted comments block and its tag, ciphertext chunks each followed by
// its MAC tag, and the blake2 salt.
func Encrypt(ctx context.Context, req EncryptRequest) (EncryptResult, error) {
	progress := req.Progress
	if progress == nil {
		progress = ioutil.NoopProgress
	}

	blake2Salt, err := randomBytes(Layout.SaltSize)
	if err != nil {
		return EncryptResult{}, err
	}

	sess, info, err := newSession(ctx, req.IKM, req.TimeCost, blake2Salt)
	if err != nil {
		return EncryptResult{}, err
	}
	defer sess.destroy()

	padIKM, err := randomBytes(Layout.PadIKMSize)
	if err != nil {
		return EncryptResult{}, err
	}
	padKey, err := keyschedule.DerivePadKey(padIKM)
	if err != nil {
		return EncryptResult{}, err
	}

	encContentsSize := encryptedContentsSize(req.InputSize)
	unpaddedSize := encContentsSize + Layout.MinUnpaddedSize
	padSize := padding.Forward(unpaddedSize, padKey)
	paddedSize := unpaddedSize + padSize

	commentsBlock, err := buildCommentsBlock(req.Comment)
	if err != nil {
		return EncryptResult{}, err
	}

	encryptedPadIKM := make([]byte, Layout.PadIKMSize)
	if err := sess.engine.XOR(1, encryptedPadIKM, padIKM); err != nil {
		return EncryptResult{}, fmt.Errorf("cryptoblob: unable to encrypt pad ikm: %w", err)
	}

	aad, err := streammac.NewAAD(sess.keys.EncKeyHash[:], sess.argon2Salt, blake2Salt, encryptedPadIKM, paddedSize, padSize, req.InputSize)
	if err != nil {
		return EncryptResult{}, err
	}

	if err := ioutil.StrictWrite(req.Output, sess.argon2Salt); err != nil {
		return EncryptResult{}, fmt.Errorf("cryptoblob: unable to write argon2 salt: %w", err)
	}

	if err := ioutil.StrictWrite(req.Output, encryptedPadIKM); err != nil {
		return EncryptResult{}, fmt.Errorf("cryptoblob: unable to write encrypted pad ikm: %w", err)
	}

	padChunk, err := sess.mac.NewChunk(1)
	if err != nil {
		return EncryptResult{}, err
	}
	if _, err := padChunk.Write(encryptedPadIKM); err != nil {
		return EncryptResult{}, fmt.Errorf("cryptoblob: unable to feed pad chunk: %w", err)
	}
	padProgress := ioutil.NewProgress(progress, padSize)
	if err := ioutil.ChunkedCopy(ctx, chunkWriterFeed{dst: req.Output, mac: padChunk}, randSource, padSize, Layout.MaxChunkSize, padProgress); err != nil {
		return EncryptResult{}, fmt.Errorf("cryptoblob: unable to write padding: %w", err)
	}
	padTag, err := padChunk.Sum(aad)
	if err != nil {
		return EncryptResult{}, err
	}
	if err := ioutil.StrictWrite(req.Output, padTag[:]); err != nil {
		return EncryptResult{}, fmt.Errorf("cryptoblob: unable to write pad mac tag: %w", err)
	}

	encryptedComments := make([]byte, Layout.CommentsSize)
	if err := sess.engine.XOR(2, encryptedComments, commentsBlock); err != nil {
		return EncryptResult{}, fmt.Errorf("cryptoblob: unable to encrypt comments: %w", err)
	}
	if err := ioutil.StrictWrite(req.Output, encryptedComments); err != nil {
		return EncryptResult{}, fmt.Errorf("cryptoblob: unable to write comments: %w", err)
	}
	commentsChunk, err := sess.mac.NewChunk(2)
	if err != nil {
		return EncryptResult{}, err
	}
	if _, err := commentsChunk.Write(encryptedComments); err != nil {
		return EncryptResult{}, fmt.Errorf("cryptoblob: unable to feed comments chunk: %w", err)
	}
	commentsTag, err := commentsChunk.Sum(aad)
	if err != nil {
		return EncryptResult{}, err
	}
	if err := ioutil.StrictWrite(req.Output, commentsTag[:]); err != nil {
		return EncryptResult{}, fmt.Errorf("cryptoblob: unable to write comments mac tag: %w", err)
	}

	nonceCounter := uint64(2)
	payloadProgress := ioutil.NewProgress(progress, req.InputSize)
	plan := ioutil.PlanChunks(req.InputSize, Layout.MaxChunkSize)
	var processed uint64
	plaintext := make([]byte, Layout.MaxChunkSize)
	ciphertext := make([]byte, Layout.MaxChunkSize)
	for _, n := range plan.Sizes() {
		if err := ctx.Err(); err != nil {
			return EncryptResult{}, err
		}

		nonceCounter++
		if err := ioutil.StrictRead(req.Input, plaintext[:n]); err != nil {
			return EncryptResult{}, fmt.Errorf("cryptoblob: unable to read plaintext chunk: %w", err)
		}
		if err := sess.engine.XOR(nonceCounter, ciphertext[:n], plaintext[:n]); err != nil {
			return EncryptResult{}, fmt.Errorf("cryptoblob: unable to encrypt payload chunk: %w", err)
		}
		if err := ioutil.StrictWrite(req.Output, ciphertext[:n]); err != nil {
			return EncryptResult{}, fmt.Errorf("cryptoblob: unable to write payload chunk: %w", err)
		}

		chunkMAC, err := sess.mac.NewChunk(nonceCounter)
		if err != nil {
			return EncryptResult{}, err
		}
		if _, err := chunkMAC.Write(ciphertext[:n]); err != nil {
			return EncryptResult{}, fmt.Errorf("cryptoblob: unable to feed payload chunk: %w", err)
		}
		tag, err := chunkMAC.Sum(aad)
		if err != nil {
			return EncryptResult{}, err
		}
		if err := ioutil.StrictWrite(req.Output, tag[:]); err != nil {
			return EncryptResult{}, fmt.Errorf("cryptoblob: unable to write payload mac tag: %w", err)
		}

		processed += uint64(n)
		payloadProgress.Update(processed)
	}
	payloadProgress.Done(processed)

	if err := ioutil.StrictWrite(req.Output, blake2Salt); err != nil {
		return EncryptResult{}, fmt.Errorf("cryptoblob: unable to write blake2 salt: %w", err)
	}

	return EncryptResult{
		PaddedSize:      paddedSize,
		Warning:         info.warning,
		KeyfileFailures: info.failures,
	}, nil
}
