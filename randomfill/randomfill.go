// Package randomfill writes cryptographically random bytes to prepare or
// scrub container files, sharing the chunked-I/O loop (ioutil.ChunkedCopy)
// that the cryptoblob pipeline uses for its padding section.
package randomfill

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/purbtool/purb/ioutil"
)

// Create writes size random bytes to w, in chunks of at most
// ioutil.MaxChunkSize, reporting progress.
func Create(ctx context.Context, w io.Writer, size uint64, progress ioutil.ProgressFunc) error {
	if err := ioutil.ChunkedCopy(ctx, w, rand.Reader, size, ioutil.MaxChunkSize, ioutil.NewProgress(progressOrNoop(progress), size)); err != nil {
		return fmt.Errorf("randomfill: unable to write random content: %w", err)
	}
	return nil
}

// Overwrite writes random bytes over rw's [start, end) range.
func Overwrite(ctx context.Context, rw io.WriteSeeker, start, end uint64, progress ioutil.ProgressFunc) error {
	if end < start {
		return fmt.Errorf("randomfill: end position %d precedes start position %d", end, start)
	}
	if _, err := rw.Seek(int64(start), io.SeekStart); err != nil {
		return fmt.Errorf("randomfill: unable to seek to start position: %w", err)
	}

	size := end - start
	if err := ioutil.ChunkedCopy(ctx, rw, rand.Reader, size, ioutil.MaxChunkSize, ioutil.NewProgress(progressOrNoop(progress), size)); err != nil {
		return fmt.Errorf("randomfill: unable to overwrite content: %w", err)
	}
	return nil
}

func progressOrNoop(p ioutil.ProgressFunc) ioutil.ProgressFunc {
	if p == nil {
		return ioutil.NoopProgress
	}
	return p
}
