// Package canonicalization implements pre-authentication encoding, used to
// bind the fixed tuple of session values into every per-chunk MAC so that no
// field can be confused with another or with the chunk ciphertext itself.
package canonicalization

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	maxPieceSize  = 64 * 1024
	maxPieceCount = 25
)

// ErrPieceTooLarge is raised when one piece size is larger than the accepted size.
var ErrPieceTooLarge = errors.New("at least one piece is too large")

// ErrTooManyPieces is raised when the pieces count is larger than the accepted count.
var ErrTooManyPieces = errors.New("too many pieces provided")

// Encode builds the canonical form:
//
//	PieceCount (8B LE) || ( PieceLen (8B LE) || Piece (*B) )*
//
// for the supplied pieces, so that a MAC computed over the result cannot be
// reinterpreted under a different split of the same bytes.
func Encode(pieces ...[]byte) ([]byte, error) {
	if len(pieces) == 0 {
		return nil, nil
	}
	if len(pieces) > maxPieceCount {
		return nil, fmt.Errorf("unable to prepare canonical form: %w", ErrTooManyPieces)
	}

	bufLen := 8
	for i := range pieces {
		if len(pieces[i]) > maxPieceSize {
			return nil, fmt.Errorf("unable to prepare canonical form: %w", ErrPieceTooLarge)
		}
		bufLen += 8 + len(pieces[i])
	}

	output := make([]byte, bufLen)
	binary.LittleEndian.PutUint64(output, uint64(len(pieces)))

	offset := 8
	for i := range pieces {
		binary.LittleEndian.PutUint64(output[offset:], uint64(len(pieces[i])))
		offset += 8
		copy(output[offset:], pieces[i])
		offset += len(pieces[i])
	}

	return output, nil
}
