package base57_test

import (
	"testing"

	"lukechampine.com/uint128"

	"github.com/dmitrymomot/id57/base57"
)

func BenchmarkEncode(b *testing.B) {
	v := uint128.Max
	for i := 0; i < b.N; i++ {
		_ = base57.Encode(v)
	}
}

func BenchmarkEncodeToWidth(b *testing.B) {
	v := uint128.From64(1_700_000_000_000_000)
	for i := 0; i < b.N; i++ {
		_ = base57.EncodeToWidth(v, base57.MaxEncodedLen)
	}
}

func BenchmarkDecode(b *testing.B) {
	s := base57.Encode(uint128.Max)
	for i := 0; i < b.N; i++ {
		_, _ = base57.Decode(s)
	}
}
