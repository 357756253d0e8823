package kiosk

import (
	"context"
	"time"
)

// Store is the session storage interface. Implementations hand out copies.
type Store interface {
	Get(ctx context.Context, id string) (*Record, bool, error)
	Put(ctx context.Context, r *Record) error
	Delete(ctx context.Context, id string) error
	// Update runs fn on a copy of record id and stores the result, atomically
	// with respect to other calls on the same store. A missing id returns
	// ErrNotFound. If fn returns an error nothing is written and the error is
	// returned unchanged.
	Update(ctx context.Context, id string, fn func(*Record) error) (*Record, error)
	// Prune removes records last updated before cutoff and returns how many went.
	Prune(ctx context.Context, cutoff time.Time) (int, error)
}
