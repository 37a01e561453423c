package store

import (
	"context"
	"sort"
	"sync"

	"lateral-intake/internal/application"
)

// MemoryStore is an in-memory ApplicationStore keyed by application id.
// Records are deep-copied on the way in and out so callers never share
// slices with the store's own copy.
type MemoryStore struct {
	mu   sync.RWMutex
	apps map[string]*application.Application
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{apps: make(map[string]*application.Application)}
}

// Put inserts or fully replaces the record keyed by app.ID.
func (s *MemoryStore) Put(_ context.Context, app *application.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apps[app.ID] = app.Clone()
	return nil
}

// Get returns a copy of the record for id, or ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, id string) (*application.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	app, ok := s.apps[id]
	if !ok {
		return nil, ErrNotFound
	}
	return app.Clone(), nil
}

// Delete removes the record for id, or returns ErrNotFound.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.apps[id]; !ok {
		return ErrNotFound
	}
	delete(s.apps, id)
	return nil
}

// ListByUser returns all records owned by userID, newest first.
func (s *MemoryStore) ListByUser(_ context.Context, userID string) ([]*application.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*application.Application
	for _, app := range s.apps {
		if app.UserID == userID {
			out = append(out, app.Clone())
		}
	}
	sortNewestFirst(out)
	return out, nil
}

// List returns every record, newest first.
func (s *MemoryStore) List(_ context.Context) ([]*application.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*application.Application, 0, len(s.apps))
	for _, app := range s.apps {
		out = append(out, app.Clone())
	}
	sortNewestFirst(out)
	return out, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error { return nil }

func sortNewestFirst(apps []*application.Application) {
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].UpdatedAt.After(apps[j].UpdatedAt)
	})
}
