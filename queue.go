package minqueue

import (
	"golang.org/x/exp/constraints"
)

// Queue is a monotone queue that reports the minimizer of the last Width
// inserted elements, and where in the window it sits, in constant time.
// Each element is stored alongside its hash until it leaves the window or is
// dominated by a later element with a smaller or equal hash.
//
// A Queue is not safe for concurrent use.
type Queue[T any] struct {
	window[T]
	hasher Hasher[T]
}

// InnerMin is the innermost minimizer of a window, with the mirrored
// candidate when two minimizers are equally far from the window edges.
type InnerMin[T any] struct {
	Value T
	Pos   int

	// AltValue and AltPos are set only when Tied is true. AltPos is the
	// mirror of Pos: Pos + AltPos == Width-1.
	AltValue T
	AltPos   int
	Tied     bool
}

// New creates an empty Queue of integers with the given width.
// By default elements are hashed with AlgoWyMix seeded with the width.
func New[T constraints.Integer](width int, opts ...Option) (*Queue[T], error) {
	if err := validateWidth(width); err != nil {
		return nil, err
	}
	cfg := defaultHashConfig(width, opts)
	h, err := IntegerHasher[T](cfg.algorithm, cfg.seed)
	if err != nil {
		return nil, err
	}
	return NewWithHasher(width, h)
}

// NewBytes creates an empty Queue of byte slices with the given width.
// The queue stores the slices it is given; callers must not modify them
// while they can still be reported.
func NewBytes(width int, opts ...Option) (*Queue[[]byte], error) {
	if err := validateWidth(width); err != nil {
		return nil, err
	}
	cfg := defaultHashConfig(width, opts)
	h, err := BytesHasher(cfg.algorithm, cfg.seed)
	if err != nil {
		return nil, err
	}
	return NewWithHasher(width, h)
}

// NewString creates an empty Queue of strings with the given width.
func NewString(width int, opts ...Option) (*Queue[string], error) {
	if err := validateWidth(width); err != nil {
		return nil, err
	}
	cfg := defaultHashConfig(width, opts)
	h, err := StringHasher(cfg.algorithm, cfg.seed)
	if err != nil {
		return nil, err
	}
	return NewWithHasher(width, h)
}

// NewWithHasher creates an empty Queue with the given width and hasher.
// The hasher defines the ordering of the minimizers. hasher may be nil if
// only InsertWithHash is used.
func NewWithHasher[T any](width int, hasher Hasher[T]) (*Queue[T], error) {
	w, err := newWindow[T](width)
	if err != nil {
		return nil, err
	}
	return &Queue[T]{window: w, hasher: hasher}, nil
}

// Insert adds x to the window and updates the current minimizer.
func (q *Queue[T]) Insert(x T) {
	q.insert(x, q.hasher.Hash(x))
}

// InsertWithHash adds x with a precomputed hash, bypassing the hasher.
func (q *Queue[T]) InsertWithHash(x T, hash uint64) {
	q.insert(x, hash)
}

// Min returns the leftmost minimizer: among the elements with the smallest
// hash, the one inserted first.
func (q *Queue[T]) Min() (T, error) {
	if err := q.checkNonEmpty(); err != nil {
		var zero T
		return zero, err
	}
	return q.deq.Front().payload, nil
}

// MinPos returns the leftmost minimizer and its position in the window,
// where 0 is the oldest element and Width-1 the most recently inserted one.
func (q *Queue[T]) MinPos() (T, int, error) {
	e, pos, err := q.minPos()
	if err != nil {
		var zero T
		return zero, 0, err
	}
	return e.payload, pos, nil
}

// InnerMinPos returns the minimizer closest to the centre of the window.
// When two minimizers are mirrored about the centre, the earlier one is
// returned in Value/Pos and the later one in AltValue/AltPos.
func (q *Queue[T]) InnerMinPos() (InnerMin[T], error) {
	r, err := q.innerMin()
	if err != nil {
		return InnerMin[T]{}, err
	}
	out := InnerMin[T]{
		Value: q.deq.At(r.best).payload,
		Pos:   r.bestPos,
	}
	if r.tied {
		out.AltValue = q.deq.At(r.alt).payload
		out.AltPos = r.altPos
		out.Tied = true
	}
	return out, nil
}
