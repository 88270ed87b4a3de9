package brc

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Reduce handles every chunk in its own goroutine and merges the per-chunk
// stores once all of them are done.
func Reduce(ctx context.Context, buf []byte, chunks []Chunk) (*InfoStore, error) {
	eg, ectx := errgroup.WithContext(ctx)

	stores := make([]*InfoStore, len(chunks))
	for i, c := range chunks {
		store := NewInfoStore()
		stores[i] = store
		c := c
		eg.Go(func() error {
			return HandleChunk(ectx, buf, c, store)
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return MergeStores(stores), nil
}

// MergeStores folds l into a single store. Stores in l are consumed.
func MergeStores(l []*InfoStore) *InfoStore {
	if len(l) == 0 {
		return NewInfoStore()
	}
	store := l[0]
	for i := range l[1:] {
		l[i+1].Each(store.Merge)
	}
	return store
}

// Aggregate computes the report for buf using parts concurrent workers.
func Aggregate(ctx context.Context, buf []byte, parts int) (string, error) {
	chunks, err := Planner{Parts: parts}.Plan(buf)
	if err != nil {
		return "", fmt.Errorf("failed to plan chunks: %w", err)
	}

	store, err := Reduce(ctx, buf, chunks)
	if err != nil {
		return "", fmt.Errorf("failed to aggregate: %w", err)
	}
	return Report(store), nil
}
