package passphrase

import (
	"fmt"

	"github.com/sethvargo/go-password/password"
)

// CharacterProfile controls a character-based passphrase's composition.
type CharacterProfile struct {
	Length      int
	NumDigits   int
	NumSymbols  int
	NoUpper     bool
	AllowRepeat bool
}

var (
	// CharacterProfileParanoid is a 64-character passphrase with 10 digits
	// and 10 symbols, allowing repeated characters.
	CharacterProfileParanoid = &CharacterProfile{Length: 64, NumDigits: 10, NumSymbols: 10, AllowRepeat: true}
	// CharacterProfileStrong is a 32-character passphrase with 10 digits
	// and 10 symbols, allowing repeated characters.
	CharacterProfileStrong = &CharacterProfile{Length: 32, NumDigits: 10, NumSymbols: 10, AllowRepeat: true}
	// CharacterProfileNoSymbol is a 32-character alphanumeric passphrase
	// with 10 digits and no symbols.
	CharacterProfileNoSymbol = &CharacterProfile{Length: 32, NumDigits: 10, NumSymbols: 0, AllowRepeat: true}
)

// GenerateCharacters generates a high-entropy character-based passphrase
// from raw parameters via crypto/rand.
func GenerateCharacters(length, numDigits, numSymbols int, noUpper, allowRepeat bool) (string, error) {
	out, err := password.Generate(length, numDigits, numSymbols, noUpper, allowRepeat)
	if err != nil {
		return "", fmt.Errorf("passphrase: unable to generate character passphrase: %w", err)
	}
	return out, nil
}

// FromCharacterProfile generates a character-based passphrase matching p.
func FromCharacterProfile(p *CharacterProfile) (string, error) {
	return GenerateCharacters(p.Length, p.NumDigits, p.NumSymbols, p.NoUpper, p.AllowRepeat)
}

// ParanoidCharacters generates a 64-character passphrase.
func ParanoidCharacters() (string, error) { return FromCharacterProfile(CharacterProfileParanoid) }

// StrongCharacters generates a 32-character passphrase with symbols.
func StrongCharacters() (string, error) { return FromCharacterProfile(CharacterProfileStrong) }

// NoSymbolCharacters generates a 32-character alphanumeric passphrase.
func NoSymbolCharacters() (string, error) { return FromCharacterProfile(CharacterProfileNoSymbol) }
