package minqueue

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
	"golang.org/x/exp/constraints"

	minerrors "github.com/tamirms/minqueue/errors"
)

// HashAlgorithmID identifies the hash function that orders elements.
// Changing it changes which elements are reported as minimizers, never the
// correctness of the queue.
type HashAlgorithmID uint8

const (
	// AlgoDefault picks AlgoWyMix for integers and AlgoXXH3 for bytes and strings.
	AlgoDefault HashAlgorithmID = iota

	// AlgoWyMix folds a 128-bit multiply, WyHash style. Integers only.
	AlgoWyMix

	// AlgoXXH3 uses seeded 64-bit xxHash3.
	AlgoXXH3

	// AlgoXXHash64 uses seeded 64-bit xxHash (XXH64).
	AlgoXXHash64

	// AlgoMurmur3 uses the low 64 bits of seeded MurmurHash3 x64-128.
	// Only the low 32 bits of the seed reach the hash.
	AlgoMurmur3

	// AlgoIdentity uses the integer value itself as its hash. Integers only.
	// The seed is ignored.
	AlgoIdentity
)

// String returns the algorithm name.
func (a HashAlgorithmID) String() string {
	switch a {
	case AlgoDefault:
		return "default"
	case AlgoWyMix:
		return "wymix"
	case AlgoXXH3:
		return "xxh3"
	case AlgoXXHash64:
		return "xxhash64"
	case AlgoMurmur3:
		return "murmur3"
	case AlgoIdentity:
		return "identity"
	default:
		return "unknown"
	}
}

// ParseHashAlgorithm returns the algorithm whose String is name.
func ParseHashAlgorithm(name string) (HashAlgorithmID, error) {
	for a := AlgoDefault; a <= AlgoIdentity; a++ {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", minerrors.ErrUnknownAlgorithm, name)
}

// IntegerHasher returns a seeded hasher for integer elements.
// Integers are widened to 64 bits; byte-oriented algorithms see them as
// 8 little-endian bytes.
func IntegerHasher[T constraints.Integer](algo HashAlgorithmID, seed uint64) (Hasher[T], error) {
	switch algo {
	case AlgoDefault, AlgoWyMix:
		return wyMixHasher[T]{seed: seed}, nil
	case AlgoIdentity:
		return identityHasher[T]{}, nil
	case AlgoXXH3, AlgoXXHash64, AlgoMurmur3:
		bh, err := BytesHasher(algo, seed)
		if err != nil {
			return nil, err
		}
		return HasherFunc[T](func(x T) uint64 {
			var buf [8]byte
			binary.LittleEndian.PutUint64(buf[:], uint64(x))
			return bh.Hash(buf[:])
		}), nil
	default:
		return nil, fmt.Errorf("%w: %d", minerrors.ErrUnknownAlgorithm, algo)
	}
}

// BytesHasher returns a seeded hasher for byte-slice elements.
// The XXHash64 hasher keeps a reusable digest and is not safe for concurrent use.
func BytesHasher(algo HashAlgorithmID, seed uint64) (Hasher[[]byte], error) {
	switch algo {
	case AlgoDefault, AlgoXXH3:
		return xxh3Hasher{seed: seed}, nil
	case AlgoXXHash64:
		return &xxhash64Hasher{digest: xxhash.NewWithSeed(seed), seed: seed}, nil
	case AlgoMurmur3:
		return murmur3Hasher{seed: foldSeed32(seed)}, nil
	case AlgoWyMix, AlgoIdentity:
		return nil, fmt.Errorf("%w: %s on bytes", minerrors.ErrUnsupportedAlgorithm, algo)
	default:
		return nil, fmt.Errorf("%w: %d", minerrors.ErrUnknownAlgorithm, algo)
	}
}

// StringHasher returns a seeded hasher for string elements. It orders
// strings exactly as BytesHasher orders their bytes.
func StringHasher(algo HashAlgorithmID, seed uint64) (Hasher[string], error) {
	switch algo {
	case AlgoDefault, AlgoXXH3:
		return HasherFunc[string](func(s string) uint64 {
			return xxh3.HashStringSeed(s, seed)
		}), nil
	case AlgoXXHash64:
		h := &xxhash64Hasher{digest: xxhash.NewWithSeed(seed), seed: seed}
		return HasherFunc[string](h.hashString), nil
	case AlgoMurmur3:
		s32 := foldSeed32(seed)
		return HasherFunc[string](func(s string) uint64 {
			return murmur3.Sum64WithSeed([]byte(s), s32)
		}), nil
	case AlgoWyMix, AlgoIdentity:
		return nil, fmt.Errorf("%w: %s on strings", minerrors.ErrUnsupportedAlgorithm, algo)
	default:
		return nil, fmt.Errorf("%w: %d", minerrors.ErrUnknownAlgorithm, algo)
	}
}

func foldSeed32(seed uint64) uint32 {
	return uint32(seed) ^ uint32(seed>>32)
}
