// Package base57 implements a positional numeral codec over a 57-character
// alphabet for 128-bit unsigned integers.
//
// The alphabet excludes visually ambiguous characters (0, O, 1, I, l) and is
// ASCII-increasing, so lexicographic comparison of equal-width encodings
// matches numeric comparison. Encoded strings are URL-safe.
package base57

import (
	"unicode"

	"lukechampine.com/uint128"
)

// Alphabet is the ordered 57-character digit set. Index 0 is the zero digit,
// used both for the value zero and as the left-padding filler.
const Alphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const base = 57

// MaxEncodedLen is the natural encoding length of the largest 128-bit value.
const MaxEncodedLen = 22

const invalidDigit = 0xFF

// decodeTable maps every byte to its digit value, or invalidDigit.
// Built once at init; read-only thereafter.
var decodeTable = buildDecodeTable()

// maxQuotient is the largest value that can still be multiplied by the base
// without exceeding 128 bits. Used for overflow detection during decode.
var maxQuotient = uint128.Max.Div64(base)

func buildDecodeTable() [256]byte {
	var table [256]byte
	for i := range table {
		table[i] = invalidDigit
	}
	for i := 0; i < len(Alphabet); i++ {
		table[Alphabet[i]] = byte(i)
	}
	return table
}

// Encode returns the shortest base57 representation of v.
// Zero encodes to a single zero-digit character.
func Encode(v uint128.Uint128) string {
	if v.IsZero() {
		return string(Alphabet[0])
	}

	var buf [MaxEncodedLen]byte
	i := len(buf)
	for !v.IsZero() {
		var r uint64
		v, r = v.QuoRem64(base)
		i--
		buf[i] = Alphabet[r]
	}
	return string(buf[i:])
}

// EncodeToWidth returns v encoded in base57, left-padded with the zero digit
// to width characters. Padding never changes the decoded value. If the
// natural encoding is already width characters or longer, it is returned
// unchanged; the value is never truncated, so the result can exceed width.
func EncodeToWidth(v uint128.Uint128, width int) string {
	digits := Encode(v)
	if width <= len(digits) {
		return digits
	}

	out := make([]byte, width)
	pad := width - len(digits)
	for i := 0; i < pad; i++ {
		out[i] = Alphabet[0]
	}
	copy(out[pad:], digits)
	return string(out)
}

// EncodedLen returns the natural (unpadded) encoding length of v.
func EncodedLen(v uint128.Uint128) int {
	if v.IsZero() {
		return 1
	}

	n := 0
	for !v.IsZero() {
		v = v.Div64(base)
		n++
	}
	return n
}

// Decode interprets s as a most-significant-first base57 numeral and returns
// its value. It fails with ErrEmptyInput for an empty string, with
// *InvalidCharacterError for any character outside the alphabet (including
// all non-ASCII characters), and with ErrOverflow if the value exceeds
// 128 bits. Leading zero digits are accepted and contribute nothing.
func Decode(s string) (uint128.Uint128, error) {
	if s == "" {
		return uint128.Zero, ErrEmptyInput
	}

	result := uint128.Zero
	pos := 0 // position in characters, not bytes
	for _, r := range s {
		if r > unicode.MaxASCII {
			return uint128.Zero, &InvalidCharacterError{Char: r, Position: pos}
		}
		digit := decodeTable[byte(r)]
		if digit == invalidDigit {
			return uint128.Zero, &InvalidCharacterError{Char: r, Position: pos}
		}

		if result.Cmp(maxQuotient) > 0 {
			return uint128.Zero, ErrOverflow
		}
		result = result.Mul64(base)
		sum := result.AddWrap64(uint64(digit))
		if sum.Cmp(result) < 0 {
			return uint128.Zero, ErrOverflow
		}
		result = sum
		pos++
	}
	return result, nil
}
