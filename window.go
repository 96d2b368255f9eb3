package minqueue

import (
	"fmt"

	minerrors "github.com/tamirms/minqueue/errors"
	intbits "github.com/tamirms/minqueue/internal/bits"
	"github.com/tamirms/minqueue/internal/deque"
)

// MaxWidth is the largest supported window width. Relative positions are
// computed as (width - slot + entrySlot) in 32 bits, which needs 2*width < 2^32.
const MaxWidth = 1 << 30

// entry is one element of the monotone buffer. The payload is the element
// itself for Queue and struct{} for ImplicitQueue.
type entry[P any] struct {
	payload P
	hash    uint64
	slot    uint32 // cyclic slot in [0, width) occupied at insertion time
}

// window is the monotone sliding-window-minimum core shared by Queue and
// ImplicitQueue.
//
// Invariants after every insert:
//   - hashes are non-decreasing from front to back, earlier ties in front
//   - the buffer holds at most width entries
//   - no entry is older than the last width insertions
//
// A window is not safe for concurrent use.
type window[P any] struct {
	deq    *deque.Ring[entry[P]]
	width  intbits.Divisor
	pos    uint32 // slot the next inserted element will occupy
	filled uint32 // insertions since construction or Clear, saturating at width
}

// innerResult holds indices into the buffer and relative positions chosen by
// innerMin.
type innerResult struct {
	best, bestPos int
	alt, altPos   int
	tied          bool
}

func validateWidth(width int) error {
	if width <= 0 {
		return fmt.Errorf("%w: got %d", minerrors.ErrZeroWidth, width)
	}
	if width > MaxWidth {
		return fmt.Errorf("%w: got %d", minerrors.ErrWidthTooLarge, width)
	}
	return nil
}

func newWindow[P any](width int) (window[P], error) {
	if err := validateWidth(width); err != nil {
		return window[P]{}, err
	}
	return window[P]{
		deq:   deque.New[entry[P]](width),
		width: intbits.NewDivisor(uint32(width)),
	}, nil
}

// Width returns the window width.
func (w *window[P]) Width() int {
	return int(w.width.Get())
}

// Len returns the number of entries currently held in the monotone buffer.
// This is the number of candidate minimizers, not the number of elements in
// the window.
func (w *window[P]) Len() int {
	return w.deq.Len()
}

// IsEmpty reports whether nothing has been inserted since construction or
// the last Clear.
func (w *window[P]) IsEmpty() bool {
	return w.deq.Len() == 0
}

// Full reports whether at least Width elements have been inserted since
// construction or the last Clear, i.e. whether the window is sliding rather
// than filling.
func (w *window[P]) Full() bool {
	return w.filled == w.width.Get()
}

// MultipleMins reports whether more than one element in the window shares
// the minimal hash. It is an O(1) probe to decide whether InnerMinPos is
// worth calling.
func (w *window[P]) MultipleMins() bool {
	return w.deq.Len() >= 2 && w.deq.At(0).hash == w.deq.At(1).hash
}

// MinHash returns the minimal hash in the window.
func (w *window[P]) MinHash() (uint64, error) {
	if err := w.checkNonEmpty(); err != nil {
		return 0, err
	}
	return w.deq.Front().hash, nil
}

// Clear removes all elements and starts a fresh filling phase: positions
// reported after Clear are relative to the elements inserted since.
func (w *window[P]) Clear() {
	w.deq.Clear()
	w.pos = 0
	w.filled = 0
}

func (w *window[P]) insert(payload P, hash uint64) {
	// The front entry occupies the slot about to be overwritten: it has
	// aged out of the window.
	if w.deq.Len() > 0 && w.deq.Front().slot == w.pos {
		w.deq.PopFront()
	}
	i := w.deq.Len()
	for i > 0 && hash < w.deq.At(i-1).hash {
		i--
	}
	w.deq.Truncate(i)
	w.deq.PushBack(entry[P]{payload: payload, hash: hash, slot: w.pos})

	width := w.width.Get()
	w.pos++
	if w.pos == width {
		w.pos = 0
	}
	if w.filled < width {
		w.filled++
	}
	if assertionsEnabled {
		w.checkInvariants()
	}
}

// relPos converts a stored slot to a position in the window:
// 0 is the oldest element, width-1 the most recently inserted.
func (w *window[P]) relPos(slot uint32) int {
	return int(w.width.Mod(w.width.Get() - w.pos + slot))
}

func (w *window[P]) minPos() (*entry[P], int, error) {
	if err := w.checkNonEmpty(); err != nil {
		return nil, 0, err
	}
	front := w.deq.Front()
	return front, w.relPos(front.slot), nil
}

// innerMin selects, among the entries sharing the minimal hash, the one
// farthest from both window edges. Ties sit at the front of the buffer in
// insertion order, and centrality along that order rises then falls, so the
// scan stops at the first entry that is not more central than the best so far.
// Two entries mirrored about the centre are both reported.
func (w *window[P]) innerMin() (innerResult, error) {
	if err := w.checkNonEmpty(); err != nil {
		return innerResult{}, err
	}
	width := w.width.Get()
	start := width - w.pos
	front := w.deq.Front()
	hash := front.hash

	var res innerResult
	bestPos := w.width.Mod(start + front.slot)
	for i := 1; i < w.deq.Len(); i++ {
		e := w.deq.At(i)
		if e.hash != hash {
			break
		}
		pos := w.width.Mod(start + e.slot)
		mirror := width - 1 - pos
		switch {
		case bestPos < mirror:
			res.best = i
			bestPos = pos
		case bestPos == mirror:
			res.bestPos = int(bestPos)
			res.alt = i
			res.altPos = int(pos)
			res.tied = true
			return res, nil
		default:
			res.bestPos = int(bestPos)
			return res, nil
		}
	}
	res.bestPos = int(bestPos)
	return res, nil
}

func (w *window[P]) checkNonEmpty() error {
	if w.deq.Len() == 0 {
		if assertionsEnabled {
			panic(minerrors.ErrEmptyQueue)
		}
		return minerrors.ErrEmptyQueue
	}
	return nil
}

func (w *window[P]) checkInvariants() {
	n := w.deq.Len()
	if n > int(w.width.Get()) {
		panic(fmt.Sprintf("minqueue: buffer holds %d entries, width is %d", n, w.width.Get()))
	}
	for i := 1; i < n; i++ {
		if w.deq.At(i-1).hash > w.deq.At(i).hash {
			panic(fmt.Sprintf("minqueue: hash order violated at buffer index %d", i))
		}
	}
}
