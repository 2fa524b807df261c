package ioutil

import (
	"context"
	"fmt"
	"io"
)

// ChunkedCopy copies exactly total bytes from src to dst using chunkSize
// buffers (the last one short if total is not a multiple of chunkSize),
// reporting progress and honoring ctx cancellation at every chunk boundary.
// The cryptoblob pipeline uses it for the padding section and the random
// writer for all of its output; the embed/extract engine and the cryptoblob
// payload stream run their own loops of the same shape.
func ChunkedCopy(ctx context.Context, dst io.Writer, src io.Reader, total uint64, chunkSize int, progress *Progress) error {
	if progress == nil {
		progress = NewProgress(NoopProgress, total)
	}

	buf := make([]byte, chunkSize)
	var done uint64
	for done < total {
		if err := ctx.Err(); err != nil {
			return err
		}

		n := chunkSize
		if remaining := total - done; remaining < uint64(n) {
			n = int(remaining)
		}

		if err := StrictRead(src, buf[:n]); err != nil {
			return fmt.Errorf("chunked copy: read: %w", err)
		}
		if err := StrictWrite(dst, buf[:n]); err != nil {
			return fmt.Errorf("chunked copy: write: %w", err)
		}

		done += uint64(n)
		progress.Update(done)
	}
	progress.Done(done)
	return nil
}
