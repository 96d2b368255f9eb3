package minqueue

import (
	"golang.org/x/exp/constraints"
)

// ImplicitQueue is a monotone queue that reports only the position of the
// minimizer of the last Width inserted elements. It keeps hashes and slots
// but never the elements, so callers recover the minimizer from their own
// stream by position.
//
// An ImplicitQueue is not safe for concurrent use.
type ImplicitQueue[T any] struct {
	window[struct{}]
	hasher Hasher[T]
}

// InnerPos is the position of the innermost minimizer of a window, with the
// mirrored position when two minimizers are equally far from the edges.
type InnerPos struct {
	Pos    int
	AltPos int // set only when Tied is true
	Tied   bool
}

// NewImplicit creates an empty ImplicitQueue of integers with the given width.
func NewImplicit[T constraints.Integer](width int, opts ...Option) (*ImplicitQueue[T], error) {
	if err := validateWidth(width); err != nil {
		return nil, err
	}
	cfg := defaultHashConfig(width, opts)
	h, err := IntegerHasher[T](cfg.algorithm, cfg.seed)
	if err != nil {
		return nil, err
	}
	return NewImplicitWithHasher(width, h)
}

// NewImplicitBytes creates an empty ImplicitQueue of byte slices.
func NewImplicitBytes(width int, opts ...Option) (*ImplicitQueue[[]byte], error) {
	if err := validateWidth(width); err != nil {
		return nil, err
	}
	cfg := defaultHashConfig(width, opts)
	h, err := BytesHasher(cfg.algorithm, cfg.seed)
	if err != nil {
		return nil, err
	}
	return NewImplicitWithHasher(width, h)
}

// NewImplicitString creates an empty ImplicitQueue of strings.
func NewImplicitString(width int, opts ...Option) (*ImplicitQueue[string], error) {
	if err := validateWidth(width); err != nil {
		return nil, err
	}
	cfg := defaultHashConfig(width, opts)
	h, err := StringHasher(cfg.algorithm, cfg.seed)
	if err != nil {
		return nil, err
	}
	return NewImplicitWithHasher(width, h)
}

// NewImplicitWithHasher creates an empty ImplicitQueue with the given width
// and hasher. hasher may be nil if only InsertHash is used.
func NewImplicitWithHasher[T any](width int, hasher Hasher[T]) (*ImplicitQueue[T], error) {
	w, err := newWindow[struct{}](width)
	if err != nil {
		return nil, err
	}
	return &ImplicitQueue[T]{window: w, hasher: hasher}, nil
}

// Insert hashes x and adds it to the window. x is not retained.
func (q *ImplicitQueue[T]) Insert(x T) {
	q.insert(struct{}{}, q.hasher.Hash(x))
}

// InsertHash adds an element by its precomputed hash.
func (q *ImplicitQueue[T]) InsertHash(hash uint64) {
	q.insert(struct{}{}, hash)
}

// MinPos returns the position of the leftmost minimizer, where 0 is the
// oldest element and Width-1 the most recently inserted one.
func (q *ImplicitQueue[T]) MinPos() (int, error) {
	_, pos, err := q.minPos()
	return pos, err
}

// InnerMinPos returns the position of the minimizer closest to the centre
// of the window, and the mirrored position on a tie.
func (q *ImplicitQueue[T]) InnerMinPos() (InnerPos, error) {
	r, err := q.innerMin()
	if err != nil {
		return InnerPos{}, err
	}
	return InnerPos{Pos: r.bestPos, AltPos: r.altPos, Tied: r.tied}, nil
}
