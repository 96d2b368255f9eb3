// Package deque provides a fixed-capacity double-ended ring buffer.
package deque

import "math/bits"

// Ring is a double-ended queue backed by a power-of-two ring buffer.
// Its capacity is fixed at construction; PushBack on a full ring panics.
// The zero value is not usable; construct with New.
type Ring[T any] struct {
	buf   []T
	mask  int
	head  int // index of the front element
	count int
}

// New returns an empty ring holding at least capacity elements.
func New[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	size := 1 << bits.Len(uint(capacity-1))
	return &Ring[T]{
		buf:  make([]T, size),
		mask: size - 1,
	}
}

// Len returns the number of elements in the ring.
func (r *Ring[T]) Len() int { return r.count }

// Cap returns the number of elements the ring can hold.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// At returns a pointer to the i-th element from the front.
// Precondition: 0 <= i < Len().
func (r *Ring[T]) At(i int) *T {
	return &r.buf[(r.head+i)&r.mask]
}

// Front returns a pointer to the front element. Precondition: Len() > 0.
func (r *Ring[T]) Front() *T {
	return &r.buf[r.head]
}

// PushBack appends v at the back.
func (r *Ring[T]) PushBack(v T) {
	if r.count == len(r.buf) {
		panic("deque: push on full ring")
	}
	r.buf[(r.head+r.count)&r.mask] = v
	r.count++
}

// PopFront removes the front element. Precondition: Len() > 0.
func (r *Ring[T]) PopFront() {
	var zero T
	r.buf[r.head] = zero
	r.head = (r.head + 1) & r.mask
	r.count--
}

// Truncate drops elements from the back until Len() == n.
// Precondition: 0 <= n <= Len().
func (r *Ring[T]) Truncate(n int) {
	var zero T
	for r.count > n {
		r.count--
		r.buf[(r.head+r.count)&r.mask] = zero
	}
}

// Clear removes all elements, releasing references held by them.
func (r *Ring[T]) Clear() {
	clear(r.buf)
	r.head = 0
	r.count = 0
}
