package minqueue

import (
	"fmt"
	"testing"
)

func benchmarkInsertN(b *testing.B, width int, algo HashAlgorithmID) {
	rng := newTestRNG(b)
	vals := make([]uint64, 1<<16)
	for i := range vals {
		vals[i] = rng.Uint64()
	}
	q, err := New[uint64](width, WithAlgorithm(algo))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := range b.N {
		q.Insert(vals[i&(len(vals)-1)])
		_, _, _ = q.MinPos()
	}
}

func BenchmarkInsert(b *testing.B) {
	for _, algo := range []HashAlgorithmID{AlgoWyMix, AlgoXXH3, AlgoXXHash64, AlgoMurmur3} {
		for _, width := range []int{11, 31, 255} {
			b.Run(fmt.Sprintf("%s/w%d", algo, width), func(b *testing.B) {
				benchmarkInsertN(b, width, algo)
			})
		}
	}
}

func BenchmarkImplicitInsertHash(b *testing.B) {
	rng := newTestRNG(b)
	hashes := make([]uint64, 1<<16)
	for i := range hashes {
		hashes[i] = rng.Uint64()
	}
	q, err := NewImplicitWithHasher[uint64](31, nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := range b.N {
		q.InsertHash(hashes[i&(len(hashes)-1)])
		_, _ = q.InnerMinPos()
	}
}

func benchmarkWinnowN(b *testing.B, n int) {
	rng := newTestRNG(b)
	data := randomBytes(rng, n, 4)

	b.SetBytes(int64(n))
	b.ResetTimer()
	b.ReportAllocs()
	for range b.N {
		if _, err := Winnow(data, 21, 11); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWinnow64K(b *testing.B) { benchmarkWinnowN(b, 64<<10) }
func BenchmarkWinnow1M(b *testing.B)  { benchmarkWinnowN(b, 1<<20) }
