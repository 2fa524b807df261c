package cryptoblob

import "testing"

func TestChunkSizeRoundTrip(t *testing.T) {
	sizes := []uint64{0, 1, 32, uint64(Layout.MaxChunkSize) - 1, uint64(Layout.MaxChunkSize), uint64(Layout.MaxChunkSize) + 1, 2*uint64(Layout.MaxChunkSize) + 7}

	for _, contents := range sizes {
		enc := encryptedContentsSize(contents)
		got, ok := plaintextSize(enc)
		if !ok {
			t.Fatalf("contents=%d: unexpected corrupt verdict for enc=%d", contents, enc)
		}
		if got != contents {
			t.Fatalf("contents=%d: round trip got %d via enc=%d", contents, got, enc)
		}
	}
}

func TestChunkSizeDetectsCorruptRemainder(t *testing.T) {
	chunkSize := uint64(Layout.MaxChunkSize)
	tagSize := uint64(Layout.MacTagSize)

	for r := uint64(1); r < 1+tagSize; r++ {
		enc := 3*(chunkSize+tagSize) + r
		if _, ok := plaintextSize(enc); ok {
			t.Fatalf("remainder %d should be flagged corrupt", r)
		}
	}
}
