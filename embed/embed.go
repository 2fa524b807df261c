// Package embed positions cryptoblob bytes inside (or extracts them back
// out of) an arbitrary container file, for plausible-deniability
// steganography. It provides no confidentiality or authenticity of its
// own: the cryptoblob bytes it moves are already a PURB.
package embed

import (
	"context"
	"fmt"
	"io"

	blake2b "github.com/minio/blake2b-simd"

	"github.com/purbtool/purb/ioutil"
)

// Report summarizes one Embed or Extract call.
type Report struct {
	Checksum   [32]byte
	Start, End uint64
}

// EmbedRequest positions Input's bytes into Container starting at
// StartPos. Container must be writable at arbitrary offsets (e.g. an
// *os.File opened O_RDWR).
type EmbedRequest struct {
	Container io.WriterAt
	StartPos  uint64
	Input     io.Reader
	InputSize uint64
	Progress  ioutil.ProgressFunc
}

// Embed writes req.Input's bytes into req.Container at req.StartPos and
// reports the checksum and byte range written.
func Embed(ctx context.Context, req EmbedRequest) (Report, error) {
	progress := req.Progress
	if progress == nil {
		progress = ioutil.NoopProgress
	}

	h, err := blake2b.New(&blake2b.Config{Size: 32})
	if err != nil {
		return Report{}, fmt.Errorf("embed: unable to initialize checksum: %w", err)
	}

	chunkSize := ioutil.MaxChunkSize
	buf := make([]byte, chunkSize)
	p := ioutil.NewProgress(progress, req.InputSize)
	var done uint64
	for done < req.InputSize {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}

		n := chunkSize
		if remaining := req.InputSize - done; remaining < uint64(n) {
			n = int(remaining)
		}

		if err := ioutil.StrictRead(req.Input, buf[:n]); err != nil {
			return Report{}, fmt.Errorf("embed: unable to read input: %w", err)
		}
		if _, err := req.Container.WriteAt(buf[:n], int64(req.StartPos+done)); err != nil {
			return Report{}, fmt.Errorf("embed: unable to write container at offset %d: %w", req.StartPos+done, err)
		}
		if _, err := h.Write(buf[:n]); err != nil {
			return Report{}, fmt.Errorf("embed: unable to update checksum: %w", err)
		}

		done += uint64(n)
		p.Update(done)
	}
	p.Done(done)

	if f, ok := req.Container.(interface{ Sync() error }); ok {
		if err := f.Sync(); err != nil {
			return Report{}, fmt.Errorf("embed: unable to sync container: %w", err)
		}
	}

	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return Report{Checksum: sum, Start: req.StartPos, End: req.StartPos + req.InputSize}, nil
}

// ExtractRequest reads bytes out of Container's [StartPos, EndPos) range
// into Output.
type ExtractRequest struct {
	Container io.ReaderAt
	StartPos  uint64
	EndPos    uint64
	Output    io.Writer
	Progress  ioutil.ProgressFunc
}

// Extract reads req.Container's [StartPos, EndPos) range into req.Output
// and reports the checksum and byte range read.
func Extract(ctx context.Context, req ExtractRequest) (Report, error) {
	if req.EndPos < req.StartPos {
		return Report{}, fmt.Errorf("embed: end position %d precedes start position %d", req.EndPos, req.StartPos)
	}
	progress := req.Progress
	if progress == nil {
		progress = ioutil.NoopProgress
	}

	total := req.EndPos - req.StartPos

	h, err := blake2b.New(&blake2b.Config{Size: 32})
	if err != nil {
		return Report{}, fmt.Errorf("embed: unable to initialize checksum: %w", err)
	}

	chunkSize := ioutil.MaxChunkSize
	buf := make([]byte, chunkSize)
	p := ioutil.NewProgress(progress, total)
	var done uint64
	for done < total {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}

		n := chunkSize
		if remaining := total - done; remaining < uint64(n) {
			n = int(remaining)
		}

		if _, err := req.Container.ReadAt(buf[:n], int64(req.StartPos+done)); err != nil {
			return Report{}, fmt.Errorf("embed: unable to read container at offset %d: %w", req.StartPos+done, err)
		}
		if err := ioutil.StrictWrite(req.Output, buf[:n]); err != nil {
			return Report{}, fmt.Errorf("embed: unable to write output: %w", err)
		}
		if _, err := h.Write(buf[:n]); err != nil {
			return Report{}, fmt.Errorf("embed: unable to update checksum: %w", err)
		}

		done += uint64(n)
		p.Update(done)
	}
	p.Done(done)

	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return Report{Checksum: sum, Start: req.StartPos, End: req.EndPos}, nil
}
