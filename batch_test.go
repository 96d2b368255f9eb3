package minqueue

import (
	"context"
	"errors"
	"slices"
	"testing"

	minerrors "github.com/tamirms/minqueue/errors"
)

func TestWinnowAllMatchesSequential(t *testing.T) {
	rng := newTestRNG(t)
	docs := make([][]byte, 37)
	for i := range docs {
		docs[i] = randomBytes(rng, rng.IntN(3000), 8)
	}

	for _, workers := range []int{0, 1, 4, 64} {
		got, err := WinnowAll(context.Background(), docs, 5, 9, workers, WithCentered())
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if len(got) != len(docs) {
			t.Fatalf("workers=%d: %d results for %d documents", workers, len(got), len(docs))
		}
		for i, doc := range docs {
			want, err := Winnow(doc, 5, 9, WithCentered())
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(got[i], want) {
				t.Fatalf("workers=%d: document %d differs from sequential winnowing", workers, i)
			}
		}
	}
}

func TestWinnowAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	docs := [][]byte{[]byte("some document text"), []byte("another document")}
	if _, err := WinnowAll(ctx, docs, 3, 3, 2); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestWinnowAllPropagatesErrors(t *testing.T) {
	docs := [][]byte{[]byte("abcdef"), []byte("ghijkl")}
	if _, err := WinnowAll(context.Background(), docs, 0, 3, 2); !errors.Is(err, minerrors.ErrInvalidGramSize) {
		t.Fatalf("error = %v, want ErrInvalidGramSize", err)
	}
}

func TestWinnowAllEmpty(t *testing.T) {
	got, err := WinnowAll(context.Background(), nil, 3, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("%d results for no documents", len(got))
	}
}
