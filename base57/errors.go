package base57

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates Decode was called with an empty string.
	ErrEmptyInput = errors.New("base57: empty input")

	// ErrInvalidCharacter indicates a character outside the alphabet.
	// Returned wrapped in *InvalidCharacterError.
	ErrInvalidCharacter = errors.New("base57: invalid character")

	// ErrOverflow indicates the decoded value exceeds 128 bits.
	ErrOverflow = errors.New("base57: decoded value exceeds 128 bits")
)

// InvalidCharacterError reports a character outside the alphabet and its
// zero-based position, counted in characters rather than bytes.
type InvalidCharacterError struct {
	Char     rune
	Position int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("base57: invalid character %q at position %d", e.Char, e.Position)
}

func (e *InvalidCharacterError) Unwrap() error {
	return ErrInvalidCharacter
}
