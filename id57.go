package id57

import (
	"errors"
	"strings"
	"time"

	"lukechampine.com/uint128"

	"github.com/dmitrymomot/id57/base57"
)

// Segment widths of a generated identifier, in base57 characters.
const (
	TimestampWidth = 11
	PayloadWidth   = 22
	Length         = TimestampWidth + PayloadWidth
)

// generator holds the resolved inputs for a single New call.
// It is assembled from defaults and options; no state survives the call.
type generator struct {
	entropy   Entropy
	timestamp uint128.Uint128
	payload   uint128.Uint128
	at        time.Time

	hasTimestamp bool
	hasTime      bool
	hasPayload   bool
	strict       bool
}

// New generates a 33-character sortable identifier: an 11-character base57
// timestamp segment followed by a 22-character base57 payload segment.
//
// By default the timestamp is the current wall-clock time in microseconds
// since the Unix epoch and the payload is a fresh 128-bit random value.
// Either can be pinned with options. The payload segment always fits its
// 22 characters; an explicit timestamp wider than 11 base57 digits silently
// widens the result unless [Strict] is set.
func New(opts ...Option) (string, error) {
	g := generator{entropy: defaultEntropy}
	for _, opt := range opts {
		opt(&g)
	}

	ts := g.timestamp
	switch {
	case g.hasTimestamp:
	case g.hasTime:
		micros := g.at.UnixMicro()
		if micros < 0 {
			return "", ErrNegativeValue
		}
		ts = uint128.From64(uint64(micros))
	default:
		micros := time.Now().UnixMicro()
		if micros < 0 {
			return "", ErrClockBeforeEpoch
		}
		ts = uint128.From64(uint64(micros))
	}

	if g.strict && base57.EncodedLen(ts) > TimestampWidth {
		return "", ErrWidthExceeded
	}

	payload := g.payload
	if !g.hasPayload {
		var err error
		payload, err = g.entropy.Payload()
		if err != nil {
			return "", errors.Join(ErrEntropyFailure, err)
		}
	}

	var b strings.Builder
	b.Grow(Length)
	b.WriteString(base57.EncodeToWidth(ts, TimestampWidth))
	b.WriteString(base57.EncodeToWidth(payload, PayloadWidth))
	return b.String(), nil
}
