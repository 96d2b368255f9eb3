// Package minqueue computes consecutive minimizers of a stream in amortized
// constant time per element.
//
// A minimizer is the element with the smallest hash among the last Width
// inserted elements. The queues keep a monotone buffer of candidates whose
// hashes are non-decreasing from front to back, so the current minimizer is
// always at the front and each element is pushed and popped at most once.
//
// # Basic Usage
//
// Explicit queue, which stores and returns the elements:
//
//	q, err := minqueue.New[uint64](3) // width 3, seed 3
//	if err != nil {
//	    log.Fatal(err)
//	}
//	q.Insert(1)
//	q.Insert(2)
//	q.Insert(3)
//	m, _ := q.Min() // element with the smallest hash among 1, 2 and 3
//
//	q.Insert(4)
//	m, pos, _ := q.MinPos() // among 2, 3 and 4; pos 0 is the oldest (2)
//
// Implicit queue, which reports positions only:
//
//	q, _ := minqueue.NewImplicitBytes(w)
//	for i := 0; i+k <= len(seq); i++ {
//	    q.Insert(seq[i : i+k])
//	    if i >= w-1 {
//	        pos, _ := q.MinPos()
//	        kmer := seq[i-w+1+pos : i-w+1+pos+k]
//	        ...
//	    }
//	}
//
// # Positions and ties
//
// Positions are relative to the window: 0 is the oldest element and Width-1
// the most recently inserted one. Before the window is full, the elements
// inserted so far occupy the highest positions.
//
// Min and MinPos report the leftmost (earliest inserted) minimizer.
// InnerMinPos reports the minimizer farthest from both window edges, and a
// second one when two minimizers are mirrored about the centre.
//
// # Determinism
//
// The hasher fixes the order of elements. Queues built with the same width,
// algorithm and seed and fed the same input report identical minimizers at
// every step. The default seed is the width.
//
// # Errors and assertions
//
// Querying an empty queue returns errors.ErrEmptyQueue. Building with
// -tags minqueue_debug turns that into a panic and re-checks the monotone
// invariant after every insertion.
//
// # Package Structure
//
//   - Core: window.go (monotone buffer, positions, centrality scan)
//   - Public API: queue.go (Queue), implicit.go (ImplicitQueue)
//   - Hashing: hasher.go (Hasher, implementations), algorithm.go (HashAlgorithmID, factories)
//   - Configuration: options.go (Option, With* functions)
//   - Sampling: winnow.go (Winnow), mapped.go (WinnowFile), batch.go (WinnowAll)
//   - Internals: internal/deque (ring buffer), internal/bits (fastmod divisor, mixing)
//   - Platform: advise_*.go, assert_*.go
package minqueue
