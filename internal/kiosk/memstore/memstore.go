// Package memstore provides an in-memory implementation of kiosk.Store.
// Sessions live only as long as the process.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/linnemanlabs/guardian/internal/kiosk"
)

// Store holds kiosk sessions in memory.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*kiosk.Record // session ID -> record
}

// New initializes a new in-memory Store.
func New() *Store {
	return &Store{
		sessions: make(map[string]*kiosk.Record),
	}
}

// Get retrieves a session by its ID. Returns a copy.
func (s *Store) Get(_ context.Context, id string) (*kiosk.Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.sessions[id]
	if !ok {
		return nil, false, nil
	}
	cp := *r
	return &cp, true, nil
}

// Put stores a copy of the session.
func (s *Store) Put(_ context.Context, r *kiosk.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	s.sessions[r.ID] = &cp
	return nil
}

// Delete removes a session. Deleting a missing ID is not an error.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Update applies fn to a copy of session id under the write lock and stores
// the result. It never recreates a deleted session.
func (s *Store) Update(_ context.Context, id string, fn func(*kiosk.Record) error) (*kiosk.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.sessions[id]
	if !ok {
		return nil, kiosk.ErrNotFound
	}
	cp := *r
	if err := fn(&cp); err != nil {
		return nil, err
	}
	s.sessions[id] = &cp
	out := cp
	return &out, nil
}

// Prune removes sessions last updated before cutoff.
func (s *Store) Prune(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, r := range s.sessions {
		if r.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n, nil
}

// Len returns the number of stored sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
