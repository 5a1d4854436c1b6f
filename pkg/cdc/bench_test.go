package cdc

import (
	"testing"
)

func benchmarkChunker(b *testing.B, newChunker func() Chunker) {
	data := testData(1<<20, 31)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		c := newChunker()
		buf := data
		for {
			_, rest, found := c.FindChunk(buf)
			if !found {
				break
			}
			buf = rest
		}
	}
}

func BenchmarkBup1MB(b *testing.B) {
	benchmarkChunker(b, func() Chunker { return NewBup() })
}

func BenchmarkGear1MB4KChunks(b *testing.B) {
	benchmarkChunker(b, func() Chunker {
		g, _ := NewGearWithChunkBits(12)
		return g
	})
}

func BenchmarkGear1MB8KChunks(b *testing.B) {
	benchmarkChunker(b, func() Chunker { return NewGear() })
}

func BenchmarkGear1MB64KChunks(b *testing.B) {
	benchmarkChunker(b, func() Chunker {
		g, _ := NewGearWithChunkBits(16)
		return g
	})
}
