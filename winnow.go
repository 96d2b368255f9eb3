package minqueue

import (
	"fmt"

	minerrors "github.com/tamirms/minqueue/errors"
)

// Fingerprint is a selected k-gram: its byte offset in the input and its hash.
type Fingerprint struct {
	Pos  int
	Hash uint64
}

// WinnowOption is a functional option for configuring Winnow.
type WinnowOption func(*winnowConfig)

type winnowConfig struct {
	hashOpts []Option
	centered bool
}

// WithHashing forwards hash options (seed, algorithm) to the k-gram hasher.
// The seed defaults to the window width.
func WithHashing(opts ...Option) WinnowOption {
	return func(c *winnowConfig) {
		c.hashOpts = append(c.hashOpts, opts...)
	}
}

// WithCentered selects, in every window, the minimizer closest to the centre
// instead of the leftmost one. On a mirrored tie the earlier k-gram wins.
func WithCentered() WinnowOption {
	return func(c *winnowConfig) {
		c.centered = true
	}
}

// Winnow samples data by hashing every k-gram and selecting the minimal hash
// of every window of w consecutive k-grams. A k-gram selected by several
// consecutive windows is reported once. Fingerprints are returned in the
// order they are selected.
//
// Any two inputs sharing a substring of at least k+w-1 bytes share a
// fingerprint for it, provided both were winnowed with the same k, w and
// hash options. Inputs shorter than k+w-1 bytes yield no fingerprints.
func Winnow(data []byte, k, w int, opts ...WinnowOption) ([]Fingerprint, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", minerrors.ErrInvalidGramSize, k)
	}
	cfg := &winnowConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := validateWidth(w); err != nil {
		return nil, err
	}
	hc := defaultHashConfig(w, cfg.hashOpts)
	hasher, err := BytesHasher(hc.algorithm, hc.seed)
	if err != nil {
		return nil, err
	}

	// The queue's ring is sized by w; skip it when no window can fill.
	grams := len(data) - k + 1
	if grams < w {
		return nil, nil
	}
	q, err := NewImplicitWithHasher(w, hasher)
	if err != nil {
		return nil, err
	}

	// A random order selects about 2/(w+1) of the k-grams.
	out := make([]Fingerprint, 0, 2*grams/(w+1)+1)
	last := -1
	for i := range grams {
		q.Insert(data[i : i+k])
		if i < w-1 {
			continue
		}
		var rel int
		if cfg.centered {
			inner, err := q.InnerMinPos()
			if err != nil {
				return nil, err
			}
			rel = inner.Pos
		} else {
			if rel, err = q.MinPos(); err != nil {
				return nil, err
			}
		}
		pos := i - w + 1 + rel
		if pos == last {
			continue
		}
		hash, err := q.MinHash()
		if err != nil {
			return nil, err
		}
		out = append(out, Fingerprint{Pos: pos, Hash: hash})
		last = pos
	}
	return out, nil
}
