package passphrase

import (
	"fmt"
	"strings"

	"github.com/sethvargo/go-diceware/diceware"
)

const (
	// MinWords is the lowest word count Diceware will generate.
	MinWords = 4
	// MaxWords is the highest word count Diceware will generate.
	MaxWords = 24

	// BasicWords is a 4-word diceware passphrase's word count.
	BasicWords = 4
	// StrongWords is an 8-word diceware passphrase's word count.
	StrongWords = 8
	// ParanoidWords is a 12-word diceware passphrase's word count.
	ParanoidWords = 12
	// MasterWords is a 24-word diceware passphrase's word count.
	MasterWords = 24
)

// Diceware generates a hyphen-joined passphrase of count English words,
// clamped to [MinWords, MaxWords].
func Diceware(count int) (string, error) {
	if count < MinWords {
		count = MinWords
	}
	if count > MaxWords {
		count = MaxWords
	}

	words, err := diceware.Generate(count)
	if err != nil {
		return "", fmt.Errorf("passphrase: unable to generate diceware words: %w", err)
	}
	return strings.Join(words, "-"), nil
}

// Basic generates a 4-word diceware passphrase.
func Basic() (string, error) { return Diceware(BasicWords) }

// Strong generates an 8-word diceware passphrase.
func Strong() (string, error) { return Diceware(StrongWords) }

// Paranoid generates a 12-word diceware passphrase.
func Paranoid() (string, error) { return Diceware(ParanoidWords) }

// Master generates a 24-word diceware passphrase, for long-term master
// secrets an operator is willing to write down.
func Master() (string, error) { return Diceware(MasterWords) }
