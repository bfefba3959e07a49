package id57

import (
	"encoding/binary"

	"github.com/google/uuid"
	"lukechampine.com/uint128"
)

// Entropy supplies the 128-bit random payload for new identifiers.
// Implementations must be safe for concurrent use: New may be called from
// multiple goroutines sharing one source.
type Entropy interface {
	Payload() (uint128.Uint128, error)
}

// EntropyFunc adapts a plain function to the Entropy interface.
type EntropyFunc func() (uint128.Uint128, error)

func (f EntropyFunc) Payload() (uint128.Uint128, error) {
	return f()
}

// defaultEntropy draws payloads from random version-4 UUIDs, backed by
// crypto/rand.
var defaultEntropy Entropy = EntropyFunc(func() (uint128.Uint128, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return uint128.Zero, err
	}
	return FromUUID(u), nil
})

// FromUUID returns the 128-bit value of u, interpreting its bytes as a
// big-endian integer. Useful for encoding existing UUIDs into the
// identifier payload space.
func FromUUID(u uuid.UUID) uint128.Uint128 {
	hi := binary.BigEndian.Uint64(u[:8])
	lo := binary.BigEndian.Uint64(u[8:])
	return uint128.New(lo, hi)
}
