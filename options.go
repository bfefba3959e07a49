package id57

import (
	"time"

	"lukechampine.com/uint128"
)

// Option configures identifier generation.
type Option func(*generator)

// WithTimestamp pins the timestamp segment to an explicit value,
// interpreted as microseconds since the Unix epoch.
// Takes precedence over WithTime if both are given.
func WithTimestamp(micros uint128.Uint128) Option {
	return func(g *generator) {
		g.timestamp = micros
		g.hasTimestamp = true
	}
}

// WithTime pins the timestamp segment to t, floor-truncated to microsecond
// resolution. A time before the Unix epoch makes New fail with
// ErrNegativeValue.
func WithTime(t time.Time) Option {
	return func(g *generator) {
		g.at = t
		g.hasTime = true
	}
}

// WithPayload pins the payload segment to an explicit 128-bit value instead
// of drawing one from the entropy source.
func WithPayload(v uint128.Uint128) Option {
	return func(g *generator) {
		g.payload = v
		g.hasPayload = true
	}
}

// WithEntropy sets the random source for the payload segment.
// If nil, the default crypto/rand-backed source is used.
func WithEntropy(e Entropy) Option {
	return func(g *generator) {
		if e != nil {
			g.entropy = e
		}
	}
}

// Strict makes New fail with ErrWidthExceeded when the timestamp does not
// fit the fixed 11-character segment, instead of silently widening the
// identifier beyond 33 characters.
func Strict() Option {
	return func(g *generator) {
		g.strict = true
	}
}
