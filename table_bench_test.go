package linkedmap

import (
	"testing"
)

func newBenchTable(b *testing.B) *Table[int64, int64] {
	tbl, err := New(Int64Hash, Int64Equals, Config[int64, int64]{
		InitialCapacity: 1 << 10,
		AutoResize:      true,
	})
	if err != nil {
		b.Fatal(err)
	}
	return tbl
}

func BenchmarkTable_Put(b *testing.B) {
	tbl := newBenchTable(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tbl.Put(int64(i&0xffff), int64(i))
	}
}

func BenchmarkTable_Get(b *testing.B) {
	tbl := newBenchTable(b)
	for i := int64(0); i < 1<<16; i++ {
		_ = tbl.Put(i, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tbl.Get(int64(i & 0xffff))
	}
}

func BenchmarkTable_Get_AccessOrder(b *testing.B) {
	tbl, err := New(Int64Hash, Int64Equals, Config[int64, int64]{
		InitialCapacity: 1 << 10,
		AutoResize:      true,
		AccessOrder:     true,
	})
	if err != nil {
		b.Fatal(err)
	}
	for i := int64(0); i < 1<<16; i++ {
		_ = tbl.Put(i, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tbl.Get(int64(i & 0xffff))
	}
}
