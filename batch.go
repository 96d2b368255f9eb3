package minqueue

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// WinnowAll winnows every document on at most workers goroutines and returns
// the fingerprints in input order. workers <= 0 uses GOMAXPROCS.
//
// Each document gets its own queue and hasher; nothing is shared between
// goroutines. The first error, or cancellation of ctx, aborts the batch.
func WinnowAll(ctx context.Context, docs [][]byte, k, w, workers int, opts ...WinnowOption) ([][]Fingerprint, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([][]Fingerprint, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, doc := range docs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fps, err := Winnow(doc, k, w, opts...)
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			out[i] = fps
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The loop may stop early without any goroutine observing cancellation.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
