package generator

import (
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

// Alphabet is the Base58 alphabet used by Solana addresses
// (digits 1-9, uppercase without O and I, lowercase without l).
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Address returns the Solana address for a public key: the Base58
// encoding of its 32 bytes.
func Address(pub ed25519.PublicKey) string {
	return base58.Encode(pub)
}

// IsValidPattern reports whether every character of the pattern can occur
// in a Base58 address. Patterns with other characters can never match.
func IsValidPattern(pattern string) bool {
	for _, c := range pattern {
		if !strings.ContainsRune(Alphabet, c) {
			return false
		}
	}
	return true
}

// InvalidPatternChars returns the characters of the pattern that cannot
// occur in a Base58 address.
func InvalidPatternChars(pattern string) []rune {
	var invalid []rune
	for _, c := range pattern {
		if !strings.ContainsRune(Alphabet, c) {
			invalid = append(invalid, c)
		}
	}
	return invalid
}

// InvalidPatternError reports a pattern containing characters outside the
// Base58 alphabet.
type InvalidPatternError struct {
	Pattern string
	Chars   []rune
}

// Error returns the validation message including the offending characters.
func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("pattern %q contains invalid Base58 characters (%s)", e.Pattern, string(e.Chars))
}

// CheckPattern validates the pattern against the Base58 alphabet and
// returns an *InvalidPatternError describing any violation.
func CheckPattern(pattern string) error {
	if chars := InvalidPatternChars(pattern); len(chars) > 0 {
		return &InvalidPatternError{Pattern: pattern, Chars: chars}
	}
	return nil
}
