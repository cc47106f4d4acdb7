package alloc

import (
	"testing"
)

// BenchmarkArena_Allocate measures bump-allocation throughput. The arena is
// reset once it fills, mirroring batch reuse.
func BenchmarkArena_Allocate(b *testing.B) {
	a, err := NewArenaFor[int64](1 << 16)
	if err != nil {
		b.Fatal(err)
	}
	defer a.Release()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := a.Allocate(64); err != nil {
			a.Reset()
		}
	}
}

// BenchmarkHeap_Allocate measures the Go-native allocator for comparison.
func BenchmarkHeap_Allocate(b *testing.B) {
	h := NewHeap[int64]()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := h.Allocate(64); err != nil {
			b.Fatal(err)
		}
	}
}
