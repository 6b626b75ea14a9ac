package inlinearray

import (
	"testing"
)

func BenchmarkFill(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a := Fill[int, KeepElements](64, 7)
		_ = a
	}
}

func BenchmarkGet(b *testing.B) {
	a := Fill[int, KeepElements](64, 7)
	b.ReportAllocs()
	var sink int
	for i := 0; i < b.N; i++ {
		sink += a.Get(i & 63)
	}
	_ = sink
}

func BenchmarkGetNegative(b *testing.B) {
	a := Fill[int, KeepElements](64, 7)
	b.ReportAllocs()
	var sink int
	for i := 0; i < b.N; i++ {
		sink += a.Get(-1 - (i & 63))
	}
	_ = sink
}

func BenchmarkUnsafeGet(b *testing.B) {
	a := Fill[int, KeepElements](64, 7)
	b.ReportAllocs()
	var sink int
	for i := 0; i < b.N; i++ {
		sink += *a.UnsafeGet(i & 63)
	}
	_ = sink
}

func BenchmarkCopy(b *testing.B) {
	a := Fill[int, KeepElements](64, 7)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		dup := a.Copy()
		_ = dup
	}
}

func BenchmarkContains(b *testing.B) {
	a := Fill[int, KeepElements](64, 7)
	a.Set(-1, 8)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Contains(&a, 8) // worst case: match in the last slot
	}
}
