package minqueue

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

// newTestRNG returns a PCG generator seeded from the test name, so every test
// sees a stable but distinct stream.
func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

// randomBytes returns n deterministic pseudo-random bytes drawn from an
// alphabet of the given size, so that repeated k-grams occur.
func randomBytes(rng *rand.Rand, n, alphabet int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte('a' + rng.IntN(alphabet))
	}
	return buf
}

// refWindow is a brute-force model of the window: it remembers every hash
// inserted since the last reset and answers queries by scanning.
type refWindow struct {
	width  int
	hashes []uint64
}

// window returns the absolute indices of the elements currently in the window.
func (r *refWindow) window() (lo, hi int) {
	hi = len(r.hashes)
	lo = max(0, hi-r.width)
	return lo, hi
}

// relPos converts an absolute insertion index to a window position:
// the newest element is at width-1.
func (r *refWindow) relPos(j int) int {
	return r.width - len(r.hashes) + j
}

// leftmostMin returns the absolute index of the earliest element with the
// smallest hash in the window.
func (r *refWindow) leftmostMin() int {
	lo, hi := r.window()
	best := lo
	for j := lo + 1; j < hi; j++ {
		if r.hashes[j] < r.hashes[best] {
			best = j
		}
	}
	return best
}

// innerMin returns the window positions of the minimal-hash elements whose
// distance to the nearer window edge is maximal, in increasing order.
func (r *refWindow) innerMin() []int {
	lo, hi := r.window()
	minHash := r.hashes[r.leftmostMin()]
	bestCentrality := -1
	var out []int
	for j := lo; j < hi; j++ {
		if r.hashes[j] != minHash {
			continue
		}
		p := r.relPos(j)
		c := min(p, r.width-1-p)
		switch {
		case c > bestCentrality:
			bestCentrality = c
			out = append(out[:0], p)
		case c == bestCentrality:
			out = append(out, p)
		}
	}
	return out
}

// checkMonotone verifies the buffer invariants directly.
func checkMonotone[P any](t *testing.T, w *window[P], step int) {
	t.Helper()
	n := w.deq.Len()
	if n > w.Width() {
		t.Fatalf("step %d: buffer holds %d entries, width %d", step, n, w.Width())
	}
	for i := 1; i < n; i++ {
		if w.deq.At(i-1).hash > w.deq.At(i).hash {
			t.Fatalf("step %d: hashes decrease at buffer index %d: %d > %d",
				step, i, w.deq.At(i-1).hash, w.deq.At(i).hash)
		}
	}
}
