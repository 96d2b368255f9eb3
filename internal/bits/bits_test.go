package bits

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

// TestDivisorMatchesModulo compares Mod against the % operator on random inputs.
func TestDivisorMatchesModulo(t *testing.T) {
	rng := newTestRNG(t)
	const iterations = 100000

	for i := 0; i < iterations; i++ {
		d := rng.Uint32N(math.MaxUint32) + 1 // d in [1, MaxUint32]
		a := rng.Uint32()

		got := NewDivisor(d).Mod(a)
		if want := a % d; got != want {
			t.Fatalf("iter %d: NewDivisor(%d).Mod(%d) = %d, want %d", i, d, a, got, want)
		}
	}
}

// TestDivisorSmallWidths exhaustively checks the widths a window is likely
// to use against every numerator up to 2*width, the range position
// arithmetic produces.
func TestDivisorSmallWidths(t *testing.T) {
	for d := uint32(1); d <= 512; d++ {
		div := NewDivisor(d)
		if div.Get() != d {
			t.Fatalf("Get() = %d, want %d", div.Get(), d)
		}
		for a := uint32(0); a < 2*d+3; a++ {
			if got := div.Mod(a); got != a%d {
				t.Fatalf("NewDivisor(%d).Mod(%d) = %d, want %d", d, a, got, a%d)
			}
		}
	}
}

// TestDivisorEdgeCases tests deterministic edge cases:
// d=1->0, d=MaxUint32, a=0->0, a=MaxUint32.
func TestDivisorEdgeCases(t *testing.T) {
	for _, a := range []uint32{0, 1, math.MaxUint32, 0xDEADBEEF} {
		if got := NewDivisor(1).Mod(a); got != 0 {
			t.Errorf("NewDivisor(1).Mod(0x%X) = %d, want 0", a, got)
		}
	}

	divMax := NewDivisor(math.MaxUint32)
	if got := divMax.Mod(math.MaxUint32); got != 0 {
		t.Errorf("NewDivisor(MaxUint32).Mod(MaxUint32) = %d, want 0", got)
	}
	if got := divMax.Mod(math.MaxUint32 - 1); got != math.MaxUint32-1 {
		t.Errorf("NewDivisor(MaxUint32).Mod(MaxUint32-1) = %d, want %d", got, uint32(math.MaxUint32-1))
	}

	for d := uint32(1); d <= 100; d++ {
		if got := NewDivisor(d).Mod(0); got != 0 {
			t.Errorf("NewDivisor(%d).Mod(0) = %d, want 0", d, got)
		}
	}
}

// TestMixFold checks Mix against the explicit hi^lo definition and that
// multiplying by zero folds to zero.
func TestMixFold(t *testing.T) {
	if got := Mix(0, 0xDEADBEEF); got != 0 {
		t.Errorf("Mix(0, x) = 0x%X, want 0", got)
	}
	if got := Mix(1, 0xDEADBEEF); got != 0xDEADBEEF {
		t.Errorf("Mix(1, x) = 0x%X, want 0xDEADBEEF", got)
	}
	// 2^63 * 4 = 2^65: hi = 2, lo = 0.
	if got := Mix(1<<63, 4); got != 2 {
		t.Errorf("Mix(2^63, 4) = 0x%X, want 2", got)
	}
}
