package id57

import "errors"

var (
	// ErrNegativeValue indicates an input integer less than zero where a
	// non-negative value is required.
	ErrNegativeValue = errors.New("id57: value must be non-negative")

	// ErrNotConvertible indicates a value that cannot be represented as a
	// 128-bit unsigned integer.
	ErrNotConvertible = errors.New("id57: value does not fit 128 bits")

	// ErrClockBeforeEpoch indicates the system clock reported a time before
	// the Unix epoch.
	ErrClockBeforeEpoch = errors.New("id57: system clock is before the unix epoch")

	// ErrWidthExceeded indicates a timestamp too large for the fixed
	// 11-character segment. Returned only in strict mode.
	ErrWidthExceeded = errors.New("id57: timestamp exceeds the fixed identifier width")

	// ErrEntropyFailure indicates the random payload source failed.
	ErrEntropyFailure = errors.New("id57: failed to read random payload")

	// ErrInvalidLength indicates a string passed to Parse is not exactly
	// 33 characters.
	ErrInvalidLength = errors.New("id57: identifier must be exactly 33 characters")
)
