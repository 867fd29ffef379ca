// apps/solver/internal/store/store.go
//
// Persistence interfaces for the solver service.
//
// Responsibilities:
//   - Word counts backing the ranked candidate list (incremental upsert).
//   - Bookkeeping of ingested corpus sources so each is counted once.
//   - Words the puzzle rejected, pre-excluded from new sessions.
//
// Two implementations: Memory (tests, DB-less runs) and SQLite.

package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by lookups that find nothing.
var ErrNotFound = errors.New("store: not found")

// Counts persists word frequencies.
type Counts interface {
	// AddCounts adds each count to the stored total for its word.
	AddCounts(ctx context.Context, counts map[string]int) error
	// AllCounts returns every stored word and its total.
	AllCounts(ctx context.Context) (map[string]int, error)
	// WordCount returns the total for one word, zero when unknown.
	WordCount(ctx context.Context, word string) (int, error)
}

// Sources tracks corpus files that have already been counted.
type Sources interface {
	SourceSeen(ctx context.Context, name string) (bool, error)
	RecordSource(ctx context.Context, name string, words int) error
}

// Rejected records words the puzzle refused as guesses.
type Rejected interface {
	// RecordInvalid is idempotent.
	RecordInvalid(ctx context.Context, word string) error
	LoadInvalid(ctx context.Context) (map[string]struct{}, error)
}

// Store is the full persistence surface.
type Store interface {
	Counts
	Sources
	Rejected
	Close() error
}
