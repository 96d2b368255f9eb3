package minqueue

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
	"golang.org/x/exp/constraints"

	intbits "github.com/tamirms/minqueue/internal/bits"
)

// Hasher scores elements. The total order of scores decides which element of
// a window is its minimizer, so two queues agree on their minimizers exactly
// when they agree on the hasher (algorithm and seed).
type Hasher[T any] interface {
	Hash(x T) uint64
}

// HasherFunc adapts an ordinary function to the Hasher interface.
type HasherFunc[T any] func(x T) uint64

// Hash returns f(x).
func (f HasherFunc[T]) Hash(x T) uint64 {
	return f(x)
}

// WyHash v4 secret constants.
const (
	wyp0 = 0xa0761d6478bd642f
	wyp1 = 0xe7037ed1a0b428db
	wyp2 = 0x8ebc6af09c88c6e3
	wyp3 = 0x589965cc75374cc3
)

type wyMixHasher[T constraints.Integer] struct {
	seed uint64
}

func (h wyMixHasher[T]) Hash(x T) uint64 {
	v := uint64(x)
	a := v ^ h.seed ^ wyp0
	b := (v<<32 | v>>32) ^ wyp1
	// The second multiplier is forced odd so no seed collapses the fold.
	return intbits.Mix(intbits.Mix(a, b)^wyp2, (h.seed^wyp3)|1)
}

type identityHasher[T constraints.Integer] struct{}

func (identityHasher[T]) Hash(x T) uint64 {
	return uint64(x)
}

type xxh3Hasher struct {
	seed uint64
}

func (h xxh3Hasher) Hash(b []byte) uint64 {
	return xxh3.HashSeed(b, h.seed)
}

type xxhash64Hasher struct {
	digest *xxhash.Digest
	seed   uint64
}

func (h *xxhash64Hasher) Hash(b []byte) uint64 {
	h.digest.ResetWithSeed(h.seed)
	_, _ = h.digest.Write(b) // Digest.Write never fails
	return h.digest.Sum64()
}

func (h *xxhash64Hasher) hashString(s string) uint64 {
	h.digest.ResetWithSeed(h.seed)
	_, _ = h.digest.WriteString(s)
	return h.digest.Sum64()
}

type murmur3Hasher struct {
	seed uint32
}

func (h murmur3Hasher) Hash(b []byte) uint64 {
	return murmur3.Sum64WithSeed(b, h.seed)
}
