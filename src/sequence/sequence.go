// Package sequence allocates the human-readable daily identifiers used for
// news and match documents: the DD-MM-YYYY date with dashes stripped, a dash,
// and a two-digit per-day ordinal derived from the number of documents
// already stored for that date ("05-03-2024" with one existing document
// allocates "05032024-02").
package sequence

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Counter is the slice of the store client the allocator needs.
type Counter interface {
	CountByDate(ctx context.Context, collection, date string) (int64, error)
}

// Allocator serializes same-day allocations within the process: the
// per-(collection,date) semaphore is held from the count until the caller
// releases it after the document write, so two in-process creates for the
// same date cannot observe the same count. Across processes the window stays
// open and the caller's existence check remains the conflict safeguard.
type Allocator struct {
	counter Counter

	mu    sync.Mutex
	locks map[string]*semaphore.Weighted
}

func NewAllocator(counter Counter) *Allocator {
	return &Allocator{
		counter: counter,
		locks:   map[string]*semaphore.Weighted{},
	}
}

// Allocate computes the next identifier for the given collection and date.
// The returned release func must be called once the document write finished
// (or was abandoned).
func (a *Allocator) Allocate(ctx context.Context, collection, date string) (string, func(), error) {
	lock := a.lockFor(collection + "/" + date)
	if err := lock.Acquire(ctx, 1); err != nil {
		return "", nil, err
	}

	count, err := a.counter.CountByDate(ctx, collection, date)
	if err != nil {
		lock.Release(1)
		return "", nil, err
	}

	release := sync.OnceFunc(func() { lock.Release(1) })
	return FormatID(date, count+1), release, nil
}

func (a *Allocator) lockFor(key string) *semaphore.Weighted {
	a.mu.Lock()
	defer a.mu.Unlock()

	lock, ok := a.locks[key]
	if !ok {
		lock = semaphore.NewWeighted(1)
		a.locks[key] = lock
	}
	return lock
}

// FormatID renders a date and a per-day sequence number as an identifier,
// zero-padding the sequence to two digits.
func FormatID(date string, seq int64) string {
	return fmt.Sprintf("%s-%02d", strings.ReplaceAll(date, "-", ""), seq)
}
