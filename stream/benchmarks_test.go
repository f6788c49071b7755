package stream

import (
	"context"
	"io"
	"testing"
)

func BenchmarkHandle_WriteString(b *testing.B) {
	h, err := New(Config{Writer: io.Discard})
	if err != nil {
		b.Fatal(err)
	}
	defer h.Close()

	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.WriteString(ctx, "benchmark message\n")
	}
}

func BenchmarkHandle_WriteString_Parallel(b *testing.B) {
	h, err := New(Config{Writer: io.Discard, QueueSize: 1024})
	if err != nil {
		b.Fatal(err)
	}
	defer h.Close()

	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = h.WriteString(ctx, "benchmark message\n")
		}
	})
}
