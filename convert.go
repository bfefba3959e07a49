package id57

import (
	"math/big"

	"lukechampine.com/uint128"
)

// FromBig converts an arbitrary-precision integer into the 128-bit unsigned
// form the codec operates on. It fails with ErrNegativeValue for negative
// inputs and ErrNotConvertible for nil or values wider than 128 bits. This
// is the single conversion point for callers holding external integer
// representations; the core packages only ever see uint128 values.
func FromBig(i *big.Int) (uint128.Uint128, error) {
	if i == nil {
		return uint128.Zero, ErrNotConvertible
	}
	if i.Sign() < 0 {
		return uint128.Zero, ErrNegativeValue
	}
	if i.BitLen() > 128 {
		return uint128.Zero, ErrNotConvertible
	}
	return uint128.FromBig(i), nil
}
