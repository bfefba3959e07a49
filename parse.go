package id57

import (
	"errors"
	"math"
	"time"

	"lukechampine.com/uint128"

	"github.com/dmitrymomot/id57/base57"
)

// ID is a decoded identifier: the timestamp (microseconds since the Unix
// epoch) and the 128-bit payload.
type ID struct {
	Timestamp uint128.Uint128
	Payload   uint128.Uint128
}

// Parse splits a 33-character identifier into its timestamp and payload.
// It fails with ErrInvalidLength for any other length, and propagates
// base57 decode errors (with character positions relative to the full
// identifier).
func Parse(s string) (ID, error) {
	if len(s) != Length {
		return ID{}, ErrInvalidLength
	}

	ts, err := base57.Decode(s[:TimestampWidth])
	if err != nil {
		return ID{}, err
	}
	payload, err := base57.Decode(s[TimestampWidth:])
	if err != nil {
		// The timestamp segment decoded, so it is pure ASCII and the payload
		// segment starts at character TimestampWidth.
		var invalid *base57.InvalidCharacterError
		if errors.As(err, &invalid) {
			invalid.Position += TimestampWidth
		}
		return ID{}, err
	}
	return ID{Timestamp: ts, Payload: payload}, nil
}

// Time returns the timestamp as a wall-clock instant. Returns the zero time
// when the timestamp does not fit int64 microseconds.
func (id ID) Time() time.Time {
	if id.Timestamp.Hi != 0 || id.Timestamp.Lo > math.MaxInt64 {
		return time.Time{}
	}
	return time.UnixMicro(int64(id.Timestamp.Lo))
}

// String re-encodes the identifier in its canonical 33-character form.
func (id ID) String() string {
	return base57.EncodeToWidth(id.Timestamp, TimestampWidth) +
		base57.EncodeToWidth(id.Payload, PayloadWidth)
}
