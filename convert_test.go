package id57_test

import (
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/dmitrymomot/id57"
)

func TestFromBig(t *testing.T) {
	t.Parallel()

	t.Run("converts values within 128 bits", func(t *testing.T) {
		t.Parallel()

		v, err := id57.FromBig(big.NewInt(57))
		require.NoError(t, err)
		assert.True(t, v.Equals64(57))

		maxBig := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
		v, err = id57.FromBig(maxBig)
		require.NoError(t, err)
		assert.True(t, v.Equals(uint128.Max))
	})

	t.Run("rejects negative values", func(t *testing.T) {
		t.Parallel()

		_, err := id57.FromBig(big.NewInt(-1))
		assert.ErrorIs(t, err, id57.ErrNegativeValue)
	})

	t.Run("rejects values wider than 128 bits", func(t *testing.T) {
		t.Parallel()

		tooWide := new(big.Int).Lsh(big.NewInt(1), 128)
		_, err := id57.FromBig(tooWide)
		assert.ErrorIs(t, err, id57.ErrNotConvertible)
	})

	t.Run("rejects nil", func(t *testing.T) {
		t.Parallel()

		_, err := id57.FromBig(nil)
		assert.ErrorIs(t, err, id57.ErrNotConvertible)
	})
}

func TestFromUUID(t *testing.T) {
	t.Parallel()

	t.Run("interprets UUID bytes as a big-endian integer", func(t *testing.T) {
		t.Parallel()

		u := uuid.UUID{}
		u[15] = 1
		assert.True(t, id57.FromUUID(u).Equals64(1))

		u = uuid.UUID{}
		u[0] = 1
		assert.True(t, id57.FromUUID(u).Equals(uint128.New(0, 1<<56)))
	})

	t.Run("matches big.Int interpretation", func(t *testing.T) {
		t.Parallel()

		u := uuid.MustParse("f81d4fae-7dec-11d0-a765-00a0c91e6bf6")
		expected := new(big.Int).SetBytes(u[:])
		assert.Equal(t, expected.String(), id57.FromUUID(u).String())
	})
}
