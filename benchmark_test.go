package id57_test

import (
	"testing"

	"github.com/dmitrymomot/id57"
)

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = id57.New()
	}
}

func BenchmarkNewParallel(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = id57.New()
		}
	})
}

func BenchmarkParse(b *testing.B) {
	id, err := id57.New()
	if err != nil {
		b.Fatal(err)
	}

	for i := 0; i < b.N; i++ {
		_, _ = id57.Parse(id)
	}
}
